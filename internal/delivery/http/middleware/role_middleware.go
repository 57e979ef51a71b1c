package middleware

import (
	"net/http"

	"go-medical-console/internal/domain/entity"
	"go-medical-console/pkg/response"
)

// RequireRole lets the request through when the session user holds one of
// roles. It must run after Authenticate.
func RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, ok := GetSessionFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "")
				return
			}

			if !session.HasRole(roles...) {
				response.Forbidden(w, "Vous n'avez pas accès à cette page")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin is a convenience middleware for admin-only endpoints
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(entity.RoleAdmin)(next)
}
