package middleware

import (
	"context"
	"net/http"
	"strings"

	"go-medical-console/internal/domain/entity"
	"go-medical-console/internal/domain/repository"
	"go-medical-console/internal/infrastructure/api"
	"go-medical-console/pkg/jwt"
	"go-medical-console/pkg/response"

	"github.com/sirupsen/logrus"
)

type contextKey string

const SessionKey contextKey = "console_session"

type AuthMiddleware struct {
	jwtService  *jwt.JWTService
	sessionRepo repository.SessionRepository
	log         *logrus.Logger
}

func NewAuthMiddleware(jwtService *jwt.JWTService, sessionRepo repository.SessionRepository, log *logrus.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:  jwtService,
		sessionRepo: sessionRepo,
		log:         log,
	}
}

// Authenticate resolves the console token to its session and makes the
// upstream bearer token available to every API call made for the request.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, ok := BearerToken(r)
		if !ok {
			response.Unauthorized(w, "Authentification requise")
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			response.Unauthorized(w, "Session invalide ou expirée")
			return
		}

		session, err := m.sessionRepo.Find(r.Context(), claims.SessionID)
		if err != nil {
			m.log.Warnf("Failed to load session: %+v", err)
			response.InternalServerError(w, "Impossible de vérifier la session")
			return
		}
		if session == nil {
			response.Unauthorized(w, "Session expirée, veuillez vous reconnecter")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
	})
}

// BearerToken extracts the token of an "Authorization: Bearer <token>" header.
func BearerToken(r *http.Request) (string, bool) {
	parts := strings.Fields(r.Header.Get("Authorization"))
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

// WithSession stores the session and its upstream token in ctx.
func WithSession(ctx context.Context, session *entity.Session) context.Context {
	ctx = context.WithValue(ctx, SessionKey, session)
	return api.WithToken(ctx, session.AccessToken)
}

// GetSessionFromContext extracts the console session from context
func GetSessionFromContext(ctx context.Context) (*entity.Session, bool) {
	session, ok := ctx.Value(SessionKey).(*entity.Session)
	return session, ok && session != nil
}
