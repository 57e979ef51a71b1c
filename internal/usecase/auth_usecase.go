package usecase

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go-medical-console/internal/converter"
	"go-medical-console/internal/delivery/dto"
	"go-medical-console/internal/domain/entity"
	"go-medical-console/internal/domain/repository"
	"go-medical-console/internal/infrastructure/api"
	"go-medical-console/internal/service"
	"go-medical-console/pkg/jwt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnknownRole        = errors.New("user has no console role")
)

type AuthUsecase interface {
	// Login opens a console session. A previous session presented with the
	// request is dropped first.
	Login(ctx context.Context, req *dto.LoginRequest, previousSessionID string) (*dto.SessionResponse, error)
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.SessionResponse, error)
	Logout(ctx context.Context, session *entity.Session) error
	Me(ctx context.Context, session *entity.Session) (*dto.UserResponse, error)
}

type authUsecase struct {
	log          *logrus.Logger
	authRepo     repository.AuthRepository
	sessionRepo  repository.SessionRepository
	jwtService   *jwt.JWTService
	auditService service.AuditService
	sessionTTL   time.Duration
}

func NewAuthUsecase(
	log *logrus.Logger,
	authRepo repository.AuthRepository,
	sessionRepo repository.SessionRepository,
	jwtService *jwt.JWTService,
	auditService service.AuditService,
	sessionTTL time.Duration,
) AuthUsecase {
	return &authUsecase{
		log:          log,
		authRepo:     authRepo,
		sessionRepo:  sessionRepo,
		jwtService:   jwtService,
		auditService: auditService,
		sessionTTL:   sessionTTL,
	}
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest, previousSessionID string) (*dto.SessionResponse, error) {
	if previousSessionID != "" {
		if err := u.sessionRepo.Delete(ctx, previousSessionID); err != nil {
			u.log.Warnf("Failed to drop previous session: %+v", err)
		}
	}

	grant, err := u.authRepo.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch api.StatusOf(err) {
		case http.StatusUnauthorized, http.StatusUnprocessableEntity:
			return nil, ErrInvalidCredentials
		}
		u.log.Warnf("Failed to login: %+v", err)
		return nil, err
	}

	res, session, err := u.openSession(ctx, grant)
	if err != nil {
		return nil, err
	}
	u.auditService.LogSession(ctx, session, entity.AuditActionLogin)
	return res, nil
}

// registration is what /register expects: the form plus the role, which
// self registration always sets to patient.
type registration struct {
	*dto.RegisterRequest
	Role string `json:"role"`
}

func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.SessionResponse, error) {
	grant, err := u.authRepo.Register(ctx, registration{RegisterRequest: req, Role: entity.RolePatient})
	if err != nil {
		u.log.Warnf("Failed to register: %+v", err)
		return nil, err
	}

	if grant.AccessToken == "" {
		grant, err = u.authRepo.Login(ctx, req.Email, req.Password)
		if err != nil {
			u.log.Warnf("Failed to login after registration: %+v", err)
			return nil, err
		}
	}

	res, session, err := u.openSession(ctx, grant)
	if err != nil {
		return nil, err
	}
	u.auditService.LogSession(ctx, session, entity.AuditActionRegister)
	return res, nil
}

func (u *authUsecase) openSession(ctx context.Context, grant *entity.AuthGrant) (*dto.SessionResponse, *entity.Session, error) {
	user := grant.User
	if user.ID == 0 || user.Role == "" {
		me, err := u.authRepo.Me(api.WithToken(ctx, grant.AccessToken))
		if err != nil {
			u.log.Warnf("Failed to fetch logged in user: %+v", err)
			return nil, nil, err
		}
		user = *me
	}
	if !entity.IsKnownRole(user.Role) {
		return nil, nil, ErrUnknownRole
	}

	session := &entity.Session{
		ID:          uuid.NewString(),
		AccessToken: grant.AccessToken,
		User:        user,
	}
	if err := u.sessionRepo.Save(ctx, session, u.sessionTTL); err != nil {
		u.log.Warnf("Failed to save session: %+v", err)
		return nil, nil, err
	}

	token, err := u.jwtService.GenerateSessionToken(session.ID, user.ID, user.Role)
	if err != nil {
		u.log.Warnf("Failed to generate session token: %+v", err)
		return nil, nil, err
	}

	return &dto.SessionResponse{
		Token:     token,
		ExpiresIn: int64(u.jwtService.GetAccessExpiry().Seconds()),
		User:      *converter.UserToResponse(&user),
	}, session, nil
}

// Logout revokes the upstream token when possible and always clears the
// session keys.
func (u *authUsecase) Logout(ctx context.Context, session *entity.Session) error {
	if err := u.authRepo.Logout(ctx); err != nil {
		u.log.Warnf("Failed to logout upstream: %+v", err)
	}

	if err := u.sessionRepo.Delete(ctx, session.ID); err != nil {
		u.log.Warnf("Failed to delete session: %+v", err)
		return err
	}

	u.auditService.LogSession(ctx, session, entity.AuditActionLogout)
	return nil
}

// Me refreshes the cached user from the API. When the API cannot be
// reached the cached copy is returned; a rejected token ends the session.
func (u *authUsecase) Me(ctx context.Context, session *entity.Session) (*dto.UserResponse, error) {
	user, err := u.authRepo.Me(ctx)
	if err != nil {
		if api.StatusOf(err) == http.StatusUnauthorized {
			if delErr := u.sessionRepo.Delete(ctx, session.ID); delErr != nil {
				u.log.Warnf("Failed to delete expired session: %+v", delErr)
			} else {
				u.auditService.LogSession(ctx, session, entity.AuditActionLogout)
			}
			return nil, err
		}
		u.log.Warnf("Failed to refresh current user: %+v", err)
		return converter.UserToResponse(&session.User), nil
	}

	if *user != session.User {
		refreshed := *session
		refreshed.User = *user
		if err := u.sessionRepo.Save(ctx, &refreshed, u.sessionTTL); err != nil {
			u.log.Warnf("Failed to refresh session user: %+v", err)
		}
	}
	return converter.UserToResponse(user), nil
}
