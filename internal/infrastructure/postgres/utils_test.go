package postgres

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Las columnas de texto opcionales se escriben como NULL cuando vienen vacías
// y se leen con COALESCE(col, ''); este helper cubre el lado de escritura.
func TestNullIfEmpty(t *testing.T) {
	assert.Nil(t, nullIfEmpty(""))

	got := nullIfEmpty("talla única")
	require.NotNil(t, got)
	assert.Equal(t, "talla única", *got)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("connection refused")))
}
