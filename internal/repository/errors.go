package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolation = "23505"

// normalizeError reports unique constraint violations as gorm.ErrDuplicatedKey
// whether or not the dialector already translated them.
func normalizeError(err error) error {
	if err == nil || errors.Is(err, gorm.ErrDuplicatedKey) {
		return err
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return errors.Join(gorm.ErrDuplicatedKey, err)
	}
	return err
}
