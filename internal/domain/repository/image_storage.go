package repository

import (
	"context"
	"io"

	"foodstall-backend/internal/domain/entity"
)

// ImageStorage persists uploaded image bytes under the given filename.
type ImageStorage interface {
	Save(ctx context.Context, filename string, contentType string, r io.Reader) (*entity.Image, error)
}
