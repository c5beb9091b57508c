package usecase

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrNothingToUpdate   = errors.New("please provide data to update")
	ErrInvalidIdentifier = errors.New("invalid identifier")
)

// isDuplicateKeyError reports a unique constraint violation from either
// gorm's translated error or a raw PostgreSQL 23505.
func isDuplicateKeyError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		return pgErr.Code == "23505"
	}
	return false
}
