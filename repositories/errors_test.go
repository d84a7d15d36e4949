package repositories

import (
	"errors"
	"fmt"
	"testing"

	"usm-backend/models"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestClassifyUniqueViolation(t *testing.T) {
	err := classify(&pgconn.PgError{Code: pgUniqueViolation, Message: "duplicate key value"})

	var dup models.ErrorDuplicateEntry
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "duplicate key value", dup.Message)
}

func TestClassifyForeignKeyViolation(t *testing.T) {
	err := classify(&pgconn.PgError{Code: pgForeignKeyViolation, Message: "violates foreign key constraint"})

	var nf models.ErrorNotFound
	require.ErrorAs(t, err, &nf)
}

func TestClassifyWrappedDriverError(t *testing.T) {
	wrapped := fmt.Errorf("create user: %w", &pgconn.PgError{Code: pgUniqueViolation, Message: "duplicate"})

	var dup models.ErrorDuplicateEntry
	require.ErrorAs(t, classify(wrapped), &dup)
}

func TestClassifyRecordNotFound(t *testing.T) {
	var nf models.ErrorNotFound
	require.ErrorAs(t, classify(gorm.ErrRecordNotFound), &nf)
}

func TestClassifyFallsBackToStorage(t *testing.T) {
	err := classify(errors.New("connection reset"))

	var storage models.ErrorStorage
	require.ErrorAs(t, err, &storage)
	assert.Equal(t, "connection reset", storage.Message)
}
