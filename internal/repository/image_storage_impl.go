package repository

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"foodstall-backend/internal/domain/entity"
	domainRepo "foodstall-backend/internal/domain/repository"
)

type localImageStorage struct {
	dir        string
	publicPath string
}

// NewLocalImageStorage stores images under dir and exposes them below publicPath.
func NewLocalImageStorage(dir, publicPath string) (domainRepo.ImageStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &localImageStorage{dir: dir, publicPath: publicPath}, nil
}

func (s *localImageStorage) Save(ctx context.Context, filename string, contentType string, r io.Reader) (*entity.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	target := filepath.Join(s.dir, filepath.Base(filename))
	file, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	size, err := io.Copy(file, r)
	if err != nil {
		os.Remove(target)
		return nil, err
	}

	return &entity.Image{
		URL:         path.Join(s.publicPath, filepath.Base(filename)),
		Filename:    filepath.Base(filename),
		ContentType: contentType,
		Size:        size,
	}, nil
}
