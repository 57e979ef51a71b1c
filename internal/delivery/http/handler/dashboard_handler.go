package handler

import (
	"net/http"

	"go-medical-console/internal/delivery/dto"
	"go-medical-console/internal/delivery/http/middleware"
	"go-medical-console/internal/usecase"
	"go-medical-console/pkg/response"
)

type DashboardHandler struct {
	dashboardUsecase usecase.DashboardUsecase
	calendarUsecase  usecase.CalendarUsecase
}

func NewDashboardHandler(dashboardUsecase usecase.DashboardUsecase, calendarUsecase usecase.CalendarUsecase) *DashboardHandler {
	return &DashboardHandler{
		dashboardUsecase: dashboardUsecase,
		calendarUsecase:  calendarUsecase,
	}
}

// GetDashboard handles the home screen of the session role
// @Summary Role dashboard
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	response.Success(w, http.StatusOK, "", h.dashboardUsecase.GetDashboard(r.Context(), session))
}

// GetCalendar handles the appointment calendar
// @Summary Calendar events
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Param medecin_id query int false "Doctor filter"
// @Param statut query string false "Status filter"
// @Param start query string false "First day"
// @Param end query string false "Last day"
// @Success 200 {object} response.Response
// @Failure 502 {object} response.Response
// @Router /calendar/events [get]
func (h *DashboardHandler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	events, err := h.calendarUsecase.GetEvents(r.Context(), dto.ParseCalendarQuery(r.URL.Query()))
	if err != nil {
		writeError(w, err, "Impossible de charger le calendrier")
		return
	}

	response.Success(w, http.StatusOK, "", events)
}
