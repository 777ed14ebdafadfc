package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/nurpe/pedidos/internal/model"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a user. An e-mail that is already taken fails with
// gorm.ErrDuplicatedKey.
func (r *UserRepository) Create(ctx context.Context, email, passwordHash string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO users (email, password_hash)
		VALUES (?, ?)
		RETURNING id, email, password_hash, created_at
	`, email, passwordHash).Scan(&user).Error
	if err != nil {
		return nil, normalizeError(err)
	}
	return &user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Raw(`
		SELECT id, email, password_hash, created_at
		FROM users
		WHERE email = ?
		LIMIT 1
	`, email).Scan(&user).Error; err != nil {
		return nil, err
	}
	if user.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &user, nil
}
