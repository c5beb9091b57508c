package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"foodstall-backend/internal/converter"
	"foodstall-backend/internal/delivery/dto"
	"foodstall-backend/internal/domain/repository"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrUnsupportedImage = errors.New("uploaded file is not an image")
	ErrImageTooLarge    = errors.New("uploaded file is too large")
	ErrEmptyUpload      = errors.New("uploaded file is empty")
)

// Raster formats only. SVG can carry script and is served from the API origin.
var allowedImageTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

type UploadUsecase interface {
	UploadImage(ctx context.Context, r io.Reader) (*dto.ImageResponse, error)
}

type uploadUsecase struct {
	log      *logrus.Logger
	storage  repository.ImageStorage
	maxBytes int64
}

func NewUploadUsecase(log *logrus.Logger, storage repository.ImageStorage, maxBytes int64) UploadUsecase {
	return &uploadUsecase{
		log:      log,
		storage:  storage,
		maxBytes: maxBytes,
	}
}

// UploadImage sniffs the content type from the bytes themselves and stores the
// file under a fresh random name; the client-supplied filename is ignored.
func (u *uploadUsecase) UploadImage(ctx context.Context, r io.Reader) (*dto.ImageResponse, error) {
	data, err := io.ReadAll(io.LimitReader(r, u.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrEmptyUpload
	}
	if int64(len(data)) > u.maxBytes {
		return nil, ErrImageTooLarge
	}

	mtype := mimetype.Detect(data)
	if !mimetype.EqualsAny(mtype.String(), allowedImageTypes...) {
		return nil, ErrUnsupportedImage
	}

	filename := uuid.New().String() + mtype.Extension()
	image, err := u.storage.Save(ctx, filename, mtype.String(), bytes.NewReader(data))
	if err != nil {
		u.log.Warnf("Failed to store image: %+v", err)
		return nil, err
	}

	return converter.ImageToResponse(image), nil
}
