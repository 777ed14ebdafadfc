package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/nurpe/pedidos/internal/auth"
	"github.com/nurpe/pedidos/internal/model"
)

type UserStore interface {
	Create(ctx context.Context, email, passwordHash string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

type TokenIssuer interface {
	Issue(user model.User) (string, time.Time, error)
}

type AuthService struct {
	users  UserStore
	tokens TokenIssuer
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      model.User
}

func NewAuthService(users UserStore, tokens TokenIssuer) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

func (s *AuthService) Register(ctx context.Context, email, password string) (*model.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: e-mail e senha são obrigatórios", ErrInvalidInput)
	}

	existing, err := s.users.GetByEmail(ctx, email)
	switch {
	case err == nil && existing != nil:
		return nil, fmt.Errorf("%w: e-mail já cadastrado", ErrConflict)
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user, err := s.users.Create(ctx, email, hash)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, fmt.Errorf("%w: e-mail já cadastrado", ErrConflict)
	}
	return user, err
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: e-mail e senha são obrigatórios", ErrInvalidInput)
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, ErrUnauthorized
	}

	token, expiresAt, err := s.tokens.Issue(*user)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, ExpiresAt: expiresAt, User: *user}, nil
}
