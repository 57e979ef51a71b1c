package repository

import (
	"context"

	"go-medical-console/internal/domain/entity"
)

type AuthRepository interface {
	Login(ctx context.Context, email, password string) (*entity.AuthGrant, error)
	Register(ctx context.Context, payload any) (*entity.AuthGrant, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*entity.User, error)
}
