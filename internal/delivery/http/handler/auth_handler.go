package handler

import (
	"net/http"

	"go-medical-console/internal/delivery/dto"
	"go-medical-console/internal/delivery/http/middleware"
	"go-medical-console/internal/usecase"
	"go-medical-console/pkg/jwt"
	"go-medical-console/pkg/response"
	"go-medical-console/pkg/validator"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.CustomValidator
	jwtService  *jwt.JWTService
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator, jwtService *jwt.JWTService) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
		jwtService:  jwtService,
	}
}

// Register handles patient self registration
// @Summary Register a patient account
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Register Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	session, err := h.authUsecase.Register(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Erreur lors de l'inscription")
		return
	}

	response.Success(w, http.StatusCreated, "Inscription réussie", session)
}

// Login handles console login
// @Summary Login
// @Description Opens a console session; a token already held by the browser is revoked.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	session, err := h.authUsecase.Login(r.Context(), &req, h.previousSessionID(r))
	if err != nil {
		writeError(w, err, "Connexion impossible")
		return
	}

	response.Success(w, http.StatusOK, "Connexion réussie", session)
}

// previousSessionID reads the session a still valid console token points
// to, if the request carries one.
func (h *AuthHandler) previousSessionID(r *http.Request) string {
	token, ok := middleware.BearerToken(r)
	if !ok {
		return ""
	}
	claims, err := h.jwtService.ValidateToken(token)
	if err != nil {
		return ""
	}
	return claims.SessionID
}

// Logout handles console logout
// @Summary Logout
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	if err := h.authUsecase.Logout(r.Context(), session); err != nil {
		response.InternalServerError(w, "Erreur lors de la déconnexion")
		return
	}

	response.Success(w, http.StatusOK, "Déconnexion réussie", nil)
}

// GetCurrentUser handles getting current user info
// @Summary Get current user
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/me [get]
func (h *AuthHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	user, err := h.authUsecase.Me(r.Context(), session)
	if err != nil {
		writeError(w, err, "Impossible de charger l'utilisateur")
		return
	}

	response.Success(w, http.StatusOK, "", user)
}
