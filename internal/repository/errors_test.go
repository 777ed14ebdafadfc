package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestNormalizeError(t *testing.T) {
	emailTaken := &pgconn.PgError{Code: "23505", ConstraintName: "uq_users_email"}

	tests := []struct {
		name      string
		err       error
		duplicate bool
	}{
		{name: "nil", err: nil},
		{name: "unique violation", err: emailTaken, duplicate: true},
		{name: "wrapped unique violation", err: fmt.Errorf("insert user: %w", emailTaken), duplicate: true},
		{name: "translated by gorm", err: gorm.ErrDuplicatedKey, duplicate: true},
		{name: "other postgres error", err: &pgconn.PgError{Code: "23502"}},
		{name: "not found", err: gorm.ErrRecordNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeError(tt.err)
			assert.Equal(t, tt.duplicate, errors.Is(got, gorm.ErrDuplicatedKey))
			if tt.err != nil {
				assert.ErrorIs(t, got, tt.err)
			} else {
				assert.NoError(t, got)
			}
		})
	}
}
