package usecase

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-medical-console/config"
	"go-medical-console/internal/domain/entity"
	"go-medical-console/internal/infrastructure/api"
	"go-medical-console/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var paris = func() *time.Location {
	loc, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		return time.UTC
	}
	return loc
}()

func newTestDashboard(f *fakes, now time.Time) *dashboardUsecase {
	u := NewDashboardUsecase(quietLogger(), f.repositories(), paris).(*dashboardUsecase)
	u.now = func() time.Time { return now }
	return u
}

func sessionFor(role string) *entity.Session {
	return &entity.Session{ID: "s", AccessToken: "t", User: entity.User{ID: 1, Role: role}}
}

func TestAdminDashboardSumsUsersFromStatisticsEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/statistiques/admin" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(`{"success":true,"data":{"general":{"total_medecins":3,"total_patients":10,"total_secretaires":2},"rendez_vous":{"aujourd_hui":4},"finances":{"revenus_total":"980.00"}}}`))
	}))
	defer srv.Close()

	client := api.NewClient(config.APIConfig{BaseURL: srv.URL, Timeout: time.Second}, quietLogger())
	f := newFakes()
	repos := f.repositories()
	repos.Statistics = repository.NewStatisticsRepository(client)

	res := NewDashboardUsecase(quietLogger(), repos, paris).GetDashboard(context.Background(), sessionFor(entity.RoleAdmin))

	require.NotNil(t, res.Admin)
	assert.Equal(t, entity.RoleAdmin, res.Role)
	assert.Equal(t, 13, res.Admin.TotalUsers)
	assert.Equal(t, 2, res.Admin.TotalSecretaires)
	assert.Equal(t, 4, res.Admin.RdvAujourdhui)
	assert.True(t, decimal.NewFromInt(980).Equal(res.Admin.RevenusTotal))
	assert.Nil(t, res.Medecin)
}

func TestAdminDashboardZeroesCountersOnFailure(t *testing.T) {
	f := newFakes()
	f.statistics.adminErr = errUpstream

	res := newTestDashboard(f, time.Now()).GetDashboard(context.Background(), sessionFor(entity.RoleAdmin))

	require.NotNil(t, res.Admin)
	assert.Zero(t, res.Admin.TotalUsers)
	assert.True(t, res.Admin.RevenusTotal.IsZero())
}

func TestMedecinDashboardDerivesTodayPendingAndNext(t *testing.T) {
	f := newFakes()
	f.rendezVous.mine = []entity.RendezVous{
		{ID: 1, Date: "2024-05-01", Heure: "10:00", Statut: "en_attente"},
		{ID: 2, Date: "2024-05-02 00:00:00", Heure: "09:00:00", Statut: "en_attente"},
	}
	f.consultations.mine = []entity.Consultation{{ID: 1}}
	f.patients.mine = []entity.Patient{{ID: 1}, {ID: 2}}

	now := time.Date(2024, 5, 1, 8, 0, 0, 0, paris)
	res := newTestDashboard(f, now).GetDashboard(context.Background(), sessionFor(entity.RoleMedecin))

	require.NotNil(t, res.Medecin)
	assert.Equal(t, 1, res.Medecin.RdvAujourdhui)
	assert.Equal(t, 2, res.Medecin.RdvEnAttente)
	require.NotNil(t, res.Medecin.ProchainRendezVous)
	assert.Equal(t, int64(2), res.Medecin.ProchainRendezVous.ID)
	assert.Equal(t, 1, res.Medecin.TotalConsultations)
	assert.Equal(t, 2, res.Medecin.TotalPatients)
	require.Len(t, res.Medecin.RendezVousDuJour, 1)
}

func TestMedecinPendingCountsConfirmedAndAccentedStatuses(t *testing.T) {
	f := newFakes()
	f.rendezVous.mine = []entity.RendezVous{
		{ID: 1, Date: "2024-05-03", Statut: "confirmé"},
		{ID: 2, Date: "2024-05-04", Statut: "annule"},
		{ID: 3, Date: "2024-05-02", Statut: "termine"},
		{ID: 4, Date: "2024-04-30", Statut: "en_attente"},
	}

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, paris)
	res := newTestDashboard(f, now).GetDashboard(context.Background(), sessionFor(entity.RoleMedecin))

	assert.Equal(t, 2, res.Medecin.RdvEnAttente)
	assert.Zero(t, res.Medecin.RdvAujourdhui)
	assert.Equal(t, int64(3), res.Medecin.ProchainRendezVous.ID)
}

func TestMedecinDashboardSurvivesFailuresAndPanics(t *testing.T) {
	f := newFakes()
	f.rendezVous.mineErr = errUpstream
	f.consultations.panics = true
	f.patients.mineErr = errUpstream

	res := newTestDashboard(f, time.Now()).GetDashboard(context.Background(), sessionFor(entity.RoleMedecin))

	require.NotNil(t, res.Medecin)
	assert.Zero(t, res.Medecin.RdvAujourdhui)
	assert.Zero(t, res.Medecin.TotalConsultations)
	assert.Nil(t, res.Medecin.ProchainRendezVous)
	assert.Equal(t, int32(1), f.consultations.reads.Load())
}

func TestSecretaireDashboardAddsPaymentCounters(t *testing.T) {
	f := newFakes()
	f.rendezVous.items = []entity.RendezVous{
		{ID: 1, Date: "2024-05-01T14:00:00.000000Z", Statut: "confirme"},
		{ID: 2, Date: "2024-05-01", Heure: "09:00", Statut: "annule"},
	}
	f.paiements.items = []entity.Paiement{
		{ID: 1, Montant: decimal.RequireFromString("40.50"), Statut: "valide"},
		{ID: 2, Montant: decimal.RequireFromString("25"), Statut: "validé"},
		{ID: 3, Montant: decimal.RequireFromString("60"), Statut: "en_attente"},
	}

	now := time.Date(2024, 5, 1, 7, 0, 0, 0, paris)
	res := newTestDashboard(f, now).GetDashboard(context.Background(), sessionFor(entity.RoleSecretaire))

	require.NotNil(t, res.Secretaire)
	assert.Equal(t, 2, res.Secretaire.RdvAujourdhui)
	assert.Equal(t, 1, res.Secretaire.RdvEnAttente)
	assert.Equal(t, 3, res.Secretaire.TotalPaiements)
	assert.Equal(t, 1, res.Secretaire.PaiementsEnAttente)
	assert.Equal(t, "65.5", res.Secretaire.MontantEncaisse.String())
	require.Len(t, res.Secretaire.RendezVousDuJour, 2)
	assert.Equal(t, int64(2), res.Secretaire.RendezVousDuJour[0].ID)
}

func TestSecretaireDashboardWithEverythingFailing(t *testing.T) {
	f := newFakes()
	f.rendezVous.err = errUpstream
	f.paiements.panics = true

	res := newTestDashboard(f, time.Now()).GetDashboard(context.Background(), sessionFor(entity.RoleSecretaire))

	require.NotNil(t, res.Secretaire)
	assert.Zero(t, res.Secretaire.TotalRendezVous)
	assert.Zero(t, res.Secretaire.TotalPaiements)
	assert.True(t, res.Secretaire.MontantEncaisse.IsZero())
}

func TestPatientDashboardPrefersSummaryThenFallsBack(t *testing.T) {
	seven := 7
	f := newFakes()
	f.statistics.summary = &entity.PatientSummary{
		Statistiques: entity.PatientCounters{TotalRendezVous: &seven},
	}
	f.rendezVous.mine = []entity.RendezVous{
		{ID: 1, Date: "2024-05-01", Statut: "termine"},
		{ID: 2, Date: "2024-05-09", Statut: "confirme"},
		{ID: 3, Date: "2024-05-06", Statut: "en_attente"},
	}
	f.consultations.mine = []entity.Consultation{{ID: 1}}
	f.paiements.mine = []entity.Paiement{
		{ID: 1, Montant: decimal.RequireFromString("30"), Statut: "valide"},
		{ID: 2, Montant: decimal.RequireFromString("15"), Statut: "annule"},
	}

	now := time.Date(2024, 5, 2, 9, 0, 0, 0, paris)
	res := newTestDashboard(f, now).GetDashboard(context.Background(), sessionFor(entity.RolePatient))

	require.NotNil(t, res.Patient)
	assert.Equal(t, 7, res.Patient.TotalRendezVous)
	assert.Equal(t, 2, res.Patient.RendezVousAVenir)
	assert.Equal(t, 1, res.Patient.TotalConsultations)
	assert.Equal(t, 2, res.Patient.TotalPaiements)
	assert.Equal(t, "30", res.Patient.MontantTotalPaye.String())
	require.NotNil(t, res.Patient.ProchainRendezVous)
	assert.Equal(t, int64(3), res.Patient.ProchainRendezVous.ID)
}

func TestPatientDashboardWhenSummaryFails(t *testing.T) {
	f := newFakes()
	f.statistics.summaryErr = errUpstream
	f.rendezVous.mineErr = errUpstream
	f.consultations.mineErr = errUpstream
	f.paiements.mineErr = errUpstream

	res := newTestDashboard(f, time.Now()).GetDashboard(context.Background(), sessionFor(entity.RolePatient))

	require.NotNil(t, res.Patient)
	assert.Zero(t, res.Patient.TotalRendezVous)
	assert.Nil(t, res.Patient.ProchainRendezVous)
}

func TestDashboardWithoutSession(t *testing.T) {
	res := newTestDashboard(newFakes(), time.Now()).GetDashboard(context.Background(), nil)
	assert.Empty(t, res.Role)
	assert.Nil(t, res.Admin)
}
