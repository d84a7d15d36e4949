package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"usm-backend/models"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// classify maps driver errors onto the store's error taxonomy, keeping the
// original message so handlers can report it.
func classify(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return models.ErrorDuplicateEntry{Message: pgErr.Message}
		case pgForeignKeyViolation:
			return models.ErrorNotFound{Message: pgErr.Message}
		}
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ErrorNotFound{Message: "record not found"}
	}
	return models.ErrorStorage{Message: err.Error()}
}
