package repository

import (
	"context"
	"errors"

	"go-medical-console/internal/domain/entity"
	domainRepo "go-medical-console/internal/domain/repository"
	"go-medical-console/internal/infrastructure/api"
	"go-medical-console/pkg/envelope"
)

var ErrMissingToken = errors.New("auth response carries no token")

// authPayload covers both spellings the API uses for the token.
type authPayload struct {
	Token       string       `json:"token"`
	AccessToken string       `json:"access_token"`
	User        *entity.User `json:"user"`
}

func (p *authPayload) grant() *entity.AuthGrant {
	g := &entity.AuthGrant{AccessToken: p.AccessToken}
	if g.AccessToken == "" {
		g.AccessToken = p.Token
	}
	if p.User != nil {
		g.User = *p.User
	}
	return g
}

type authRepository struct {
	client *api.Client
}

func NewAuthRepository(client *api.Client) domainRepo.AuthRepository {
	return &authRepository{client: client}
}

func (r *authRepository) Login(ctx context.Context, email, password string) (*entity.AuthGrant, error) {
	body, err := r.client.Post(ctx, "/login", map[string]string{"email": email, "password": password})
	if err != nil {
		return nil, err
	}
	payload, err := envelope.DecodeOne[authPayload](body)
	if err != nil {
		return nil, err
	}
	grant := payload.grant()
	if grant.AccessToken == "" {
		return nil, ErrMissingToken
	}
	return grant, nil
}

// Register may answer without a token; callers then log in explicitly.
func (r *authRepository) Register(ctx context.Context, payload any) (*entity.AuthGrant, error) {
	body, err := r.client.Post(ctx, "/register", payload)
	if err != nil {
		return nil, err
	}
	decoded, err := envelope.DecodeOne[authPayload](body)
	if err != nil {
		if errors.Is(err, envelope.ErrMalformed) {
			return &entity.AuthGrant{}, nil
		}
		return nil, err
	}
	return decoded.grant(), nil
}

func (r *authRepository) Logout(ctx context.Context) error {
	_, err := r.client.Post(ctx, "/logout", nil)
	return err
}

// mePayload accepts the user either bare or nested under "user".
type mePayload struct {
	entity.User
	Wrapped *entity.User `json:"user"`
}

func (r *authRepository) Me(ctx context.Context) (*entity.User, error) {
	body, err := r.client.Get(ctx, "/user")
	if err != nil {
		return nil, err
	}
	payload, err := envelope.DecodeOne[mePayload](body)
	if err != nil {
		return nil, err
	}
	if payload.Wrapped != nil {
		return payload.Wrapped, nil
	}
	return &payload.User, nil
}
