package handler

import (
	"net/http"

	"go-medical-console/internal/delivery/dto"
	"go-medical-console/internal/usecase"
	"go-medical-console/pkg/response"
	"go-medical-console/pkg/validator"
)

// RendezVousHandler serves the appointment routes beyond plain CRUD.
type RendezVousHandler struct {
	rendezVousUsecase usecase.RendezVousUsecase
	validator         *validator.CustomValidator
}

func NewRendezVousHandler(rendezVousUsecase usecase.RendezVousUsecase, validator *validator.CustomValidator) *RendezVousHandler {
	return &RendezVousHandler{
		rendezVousUsecase: rendezVousUsecase,
		validator:         validator,
	}
}

// UpdateStatus sets the appointment status
// @Summary Change rendez-vous status
// @Tags RendezVous
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Rendez-vous ID"
// @Param request body dto.UpdateStatusRequest true "New status"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /rendez-vous/{id}/statut [patch]
func (h *RendezVousHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req dto.UpdateStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	updated, err := h.rendezVousUsecase.UpdateStatus(r.Context(), id, req.Statut)
	if err != nil {
		writeError(w, err, "Erreur lors du changement de statut")
		return
	}

	response.Success(w, http.StatusOK, "Statut mis à jour avec succès", updated)
}

// Statuses lists the status options with their label and calendar color.
func (h *RendezVousHandler) Statuses(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "", h.rendezVousUsecase.Statuses())
}

func (h *RendezVousHandler) ByMedecin(w http.ResponseWriter, r *http.Request) {
	medecinID, ok := pathID(w, r, "medecinId")
	if !ok {
		return
	}

	items, err := h.rendezVousUsecase.ByMedecin(r.Context(), medecinID)
	if err != nil {
		writeError(w, err, "Impossible de charger l'agenda du médecin")
		return
	}

	response.Success(w, http.StatusOK, "", items)
}
