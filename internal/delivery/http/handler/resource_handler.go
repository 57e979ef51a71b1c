package handler

import (
	"net/http"
	"time"

	"go-medical-console/internal/delivery/dto"
	"go-medical-console/internal/listing"
	"go-medical-console/internal/usecase"
	"go-medical-console/pkg/response"
	"go-medical-console/pkg/validator"
)

// ResourceLabels names a resource in the messages shown by the console.
type ResourceLabels struct {
	// Noun is the capitalized singular, e.g. "Spécialité".
	Noun     string
	Feminine bool
	// Plural is the collection with its article, e.g. "des spécialités".
	Plural string
	// Redirect is the list screen a successful form navigates back to.
	Redirect string
}

func (l ResourceLabels) done(verb string) string {
	if l.Feminine {
		verb += "e"
	}
	return l.Noun + " " + verb + " avec succès"
}

func (l ResourceLabels) loadFailed() string {
	if l.Plural == "" {
		return "Erreur lors du chargement de la liste"
	}
	return "Erreur lors du chargement " + l.Plural
}

// ResourceHandler serves the list, detail and form routes of one
// resource. C and U are the create and update form bodies.
type ResourceHandler[T any, C any, U any] struct {
	usecase       usecase.ResourceUsecase[T]
	validator     *validator.CustomValidator
	labels        ResourceLabels
	redirectDelay time.Duration
}

func NewResourceHandler[T any, C any, U any](
	resourceUsecase usecase.ResourceUsecase[T],
	validator *validator.CustomValidator,
	labels ResourceLabels,
	redirectDelay time.Duration,
) *ResourceHandler[T, C, U] {
	return &ResourceHandler[T, C, U]{
		usecase:       resourceUsecase,
		validator:     validator,
		labels:        labels,
		redirectDelay: redirectDelay,
	}
}

// List answers the searched, filtered and paged collection.
func (h *ResourceHandler[T, C, U]) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.usecase.List(r.Context(), dto.ParseListQuery(r.URL.Query()))
	if err != nil {
		writeError(w, err, h.labels.loadFailed())
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "", page.Items, pageMeta(page))
}

func (h *ResourceHandler[T, C, U]) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	item, err := h.usecase.Get(r.Context(), id)
	if err != nil {
		writeError(w, err, "Impossible de charger l'élément")
		return
	}

	response.Success(w, http.StatusOK, "", item)
}

// Create validates the form before anything is sent to the API.
func (h *ResourceHandler[T, C, U]) Create(w http.ResponseWriter, r *http.Request) {
	var req C
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	created, err := h.usecase.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Erreur lors de l'enregistrement")
		return
	}

	response.FormSuccess(w, http.StatusCreated, h.form(h.labels.done("créé"), created))
}

func (h *ResourceHandler[T, C, U]) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req U
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	updated, err := h.usecase.Update(r.Context(), id, &req)
	if err != nil {
		writeError(w, err, "Erreur lors de la mise à jour")
		return
	}

	response.FormSuccess(w, http.StatusOK, h.form(h.labels.done("mis à jour"), updated))
}

// Delete answers with the list as fetched again after the deletion.
func (h *ResourceHandler[T, C, U]) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	page, err := h.usecase.Delete(r.Context(), id)
	if err != nil {
		writeError(w, err, "Erreur lors de la suppression")
		return
	}

	message := h.labels.done("supprimé")
	if page == nil {
		response.Success(w, http.StatusOK, message, nil)
		return
	}
	response.SuccessWithMeta(w, http.StatusOK, message, page.Items, pageMeta(page))
}

func (h *ResourceHandler[T, C, U]) form(message string, data interface{}) response.Form {
	return response.Form{
		Message:         message,
		Data:            data,
		Redirect:        h.labels.Redirect,
		RedirectAfterMs: h.redirectDelay.Milliseconds(),
	}
}

func pageMeta[T any](page *listing.Page[T]) *response.Meta {
	return &response.Meta{
		Page:       page.Page,
		PerPage:    page.PerPage,
		Total:      page.Total,
		TotalPages: page.TotalPages,
	}
}
