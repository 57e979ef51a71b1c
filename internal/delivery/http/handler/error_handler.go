package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go-medical-console/internal/infrastructure/api"
	"go-medical-console/internal/usecase"
	"go-medical-console/pkg/envelope"
	"go-medical-console/pkg/response"

	"github.com/gorilla/mux"
)

const invalidBody = "Corps de requête invalide"

// writeError maps a usecase or upstream failure to the console answer.
// Upstream 401, 403, 404 and 422 keep their status; anything else the
// remote API did is a 502. fallback is the generic message for the screen.
func writeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrResourceNotFound), errors.Is(err, usecase.ErrAuditLogNotFound):
		response.NotFound(w, "")
		return
	case errors.Is(err, usecase.ErrInvalidStatus):
		response.Error(w, http.StatusBadRequest, "Statut de rendez-vous invalide", nil)
		return
	case errors.Is(err, usecase.ErrInvalidCredentials):
		response.Unauthorized(w, "Email ou mot de passe incorrect")
		return
	case errors.Is(err, usecase.ErrUnknownRole):
		response.Forbidden(w, "Ce compte n'a pas accès à la console")
		return
	}

	var rejected *envelope.RejectedError
	if errors.As(err, &rejected) {
		response.Error(w, http.StatusBadRequest, withDetail(fallback, rejected.Message), nil)
		return
	}

	var httpErr *api.HTTPError
	if errors.As(err, &httpErr) {
		switch httpErr.StatusCode {
		case http.StatusUnauthorized:
			response.Unauthorized(w, withDetail("Session expirée, veuillez vous reconnecter", httpErr.Message))
			return
		case http.StatusForbidden:
			response.Forbidden(w, withDetail("Accès refusé", httpErr.Message))
			return
		case http.StatusNotFound:
			response.NotFound(w, withDetail("Ressource introuvable", httpErr.Message))
			return
		case http.StatusUnprocessableEntity:
			var fields interface{}
			if len(httpErr.Fields) > 0 {
				fields = httpErr.Fields
			}
			response.Error(w, http.StatusUnprocessableEntity, withDetail(fallback, httpErr.Message), fields)
			return
		}
		response.BadGateway(w, withDetail(fallback, httpErr.Message))
		return
	}

	response.BadGateway(w, fallback)
}

func withDetail(message, detail string) string {
	if detail == "" || detail == message {
		return message
	}
	return message + ": " + detail
}

// decodeJSON reads the request body into dst, answering 400 when it is
// not JSON.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		response.Error(w, http.StatusBadRequest, invalidBody, nil)
		return false
	}
	return true
}

func pathID(w http.ResponseWriter, r *http.Request, key string) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)[key], 10, 64)
	if err != nil || id <= 0 {
		response.Error(w, http.StatusBadRequest, "Identifiant invalide", nil)
		return 0, false
	}
	return id, true
}
