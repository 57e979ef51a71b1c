package http

import (
	"net/http"

	"go-medical-console/internal/delivery/http/handler"
	"go-medical-console/internal/delivery/http/middleware"
	"go-medical-console/internal/domain/entity"

	"github.com/gorilla/mux"
)

var (
	allRoles   = []string{entity.RoleAdmin, entity.RoleMedecin, entity.RoleSecretaire, entity.RolePatient}
	adminOnly  = []string{entity.RoleAdmin}
	staff      = []string{entity.RoleAdmin, entity.RoleSecretaire}
	clinicians = []string{entity.RoleAdmin, entity.RoleMedecin}
	frontDesk  = []string{entity.RoleAdmin, entity.RoleSecretaire, entity.RoleMedecin}
	bookers    = []string{entity.RoleAdmin, entity.RoleSecretaire, entity.RolePatient}
)

// resourceAccess lists who may read, write and delete one resource.
// remove defaults to write.
type resourceAccess struct {
	path    string
	handler handler.ResourceRoutes
	read    []string
	write   []string
	remove  []string
}

type Router struct {
	router            *mux.Router
	resources         *handler.ResourceHandlers
	authHandler       *handler.AuthHandler
	rendezVousHandler *handler.RendezVousHandler
	dashboardHandler  *handler.DashboardHandler
	auditLogHandler   *handler.AuditLogHandler
	authMiddleware    *middleware.AuthMiddleware
	corsMiddleware    *middleware.CORSMiddleware
	loggingMiddleware *middleware.LoggingMiddleware
}

func NewRouter(
	resources *handler.ResourceHandlers,
	authHandler *handler.AuthHandler,
	rendezVousHandler *handler.RendezVousHandler,
	dashboardHandler *handler.DashboardHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		resources:         resources,
		authHandler:       authHandler,
		rendezVousHandler: rendezVousHandler,
		dashboardHandler:  dashboardHandler,
		auditLogHandler:   auditLogHandler,
		authMiddleware:    authMiddleware,
		corsMiddleware:    corsMiddleware,
		loggingMiddleware: loggingMiddleware,
	}
}

// Setup registers every route and returns the root handler, CORS and
// request logging included.
func (r *Router) Setup() http.Handler {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	protected := api.NewRoute().Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	protected.HandleFunc("/dashboard", r.dashboardHandler.GetDashboard).Methods(http.MethodGet)
	protected.Handle("/calendar/events", only(staff, r.dashboardHandler.GetCalendar)).Methods(http.MethodGet)

	// Appointment routes that must win over /rendez-vous/{id}
	protected.Handle("/rendez-vous/statuts", only(allRoles, r.rendezVousHandler.Statuses)).Methods(http.MethodGet)
	protected.Handle("/rendez-vous/medecin/{medecinId:[0-9]+}", only(frontDesk, r.rendezVousHandler.ByMedecin)).Methods(http.MethodGet)
	protected.Handle("/rendez-vous/{id:[0-9]+}/statut", only(frontDesk, r.rendezVousHandler.UpdateStatus)).Methods(http.MethodPatch)

	for _, res := range r.access() {
		r.registerResource(protected, res)
	}

	// Audit trail (admin)
	admin := protected.PathPrefix("/audit-logs").Subrouter()
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)
	admin.HandleFunc("/{id:[0-9]+}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	return r.corsMiddleware.Handle(r.loggingMiddleware.Handle(r.router))
}

func (r *Router) access() []resourceAccess {
	h := r.resources
	return []resourceAccess{
		{path: "/departements", handler: h.Departements, read: allRoles, write: adminOnly},
		{path: "/specialites", handler: h.Specialites, read: allRoles, write: adminOnly},
		{path: "/medecins", handler: h.Medecins, read: allRoles, write: adminOnly},
		{path: "/secretaires", handler: h.Secretaires, read: adminOnly, write: adminOnly},
		{path: "/users", handler: h.Users, read: adminOnly, write: adminOnly},
		{path: "/patients", handler: h.Patients, read: frontDesk, write: staff},
		{path: "/rendez-vous", handler: h.RendezVous, read: allRoles, write: bookers, remove: staff},
		{path: "/consultations", handler: h.Consultations, read: allRoles, write: clinicians},
		{path: "/comptes-rendus", handler: h.ComptesRendus, read: clinicians, write: clinicians},
		{path: "/dossiers-medicaux", handler: h.DossiersMedicaux, read: clinicians, write: clinicians},
		{path: "/paiements", handler: h.Paiements, read: bookers, write: staff},
		{path: "/disponibilites", handler: h.Disponibilites, read: allRoles, write: clinicians},
	}
}

func (r *Router) registerResource(sub *mux.Router, res resourceAccess) {
	remove := res.remove
	if remove == nil {
		remove = res.write
	}

	sub.Handle(res.path, only(res.read, res.handler.List)).Methods(http.MethodGet)
	sub.Handle(res.path, only(res.write, res.handler.Create)).Methods(http.MethodPost)
	sub.Handle(res.path+"/{id:[0-9]+}", only(res.read, res.handler.Get)).Methods(http.MethodGet)
	sub.Handle(res.path+"/{id:[0-9]+}", only(res.write, res.handler.Update)).Methods(http.MethodPut)
	sub.Handle(res.path+"/{id:[0-9]+}", only(remove, res.handler.Delete)).Methods(http.MethodDelete)
}

func only(roles []string, h http.HandlerFunc) http.Handler {
	return middleware.RequireRole(roles...)(h)
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
