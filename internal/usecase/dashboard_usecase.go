package usecase

import (
	"context"
	"sort"
	"time"

	"go-medical-console/internal/delivery/dto"
	"go-medical-console/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/sourcegraph/conc"
)

// DashboardUsecase builds the home screen of each role. It never fails:
// a sub-request that errors or panics contributes zeros.
type DashboardUsecase interface {
	GetDashboard(ctx context.Context, session *entity.Session) *dto.DashboardResponse
}

type dashboardUsecase struct {
	log   *logrus.Logger
	repos Repositories
	loc   *time.Location
	now   func() time.Time
}

func NewDashboardUsecase(log *logrus.Logger, repos Repositories, loc *time.Location) DashboardUsecase {
	return &dashboardUsecase{
		log:   log,
		repos: repos,
		loc:   loc,
		now:   time.Now,
	}
}

func (u *dashboardUsecase) GetDashboard(ctx context.Context, session *entity.Session) *dto.DashboardResponse {
	res := &dto.DashboardResponse{}
	if session == nil {
		return res
	}
	res.Role = session.User.Role

	switch {
	case session.IsAdmin():
		res.Admin = u.admin(ctx)
	case session.IsMedecin():
		res.Medecin = u.medecin(ctx)
	case session.IsSecretaire():
		res.Secretaire = u.secretaire(ctx)
	case session.IsPatient():
		res.Patient = u.patient(ctx)
	}
	return res
}

func (u *dashboardUsecase) today() string {
	return u.now().In(u.loc).Format(time.DateOnly)
}

func (u *dashboardUsecase) admin(ctx context.Context) *dto.AdminDashboard {
	stats, err := u.repos.Statistics.Admin(ctx)
	if err != nil || stats == nil {
		u.log.Warnf("Failed to load admin statistics: %+v", err)
		return &dto.AdminDashboard{}
	}

	return &dto.AdminDashboard{
		TotalUsers:         stats.General.TotalMedecins + stats.General.TotalPatients,
		TotalMedecins:      stats.General.TotalMedecins,
		TotalPatients:      stats.General.TotalPatients,
		TotalSecretaires:   stats.General.TotalSecretaires,
		TotalRendezVous:    stats.General.TotalRendezVous,
		TotalConsultations: stats.General.TotalConsultations,
		TotalDepartements:  stats.General.TotalDepartements,
		TotalSpecialites:   stats.General.TotalSpecialites,
		RdvAujourdhui:      stats.RendezVous.AujourdHui,
		RdvEnAttente:       stats.RendezVous.EnAttente,
		RdvConfirmes:       stats.RendezVous.Confirmes,
		RdvAnnules:         stats.RendezVous.Annules,
		RdvTermines:        stats.RendezVous.Termines,
		RevenusTotal:       stats.Finances.RevenusTotal,
		RevenusMois:        stats.Finances.RevenusMois,
		PaiementsEnAttente: stats.Finances.PaiementsEnAttente,
	}
}

func (u *dashboardUsecase) medecin(ctx context.Context) *dto.MedecinDashboard {
	var rendezVous []entity.RendezVous
	var consultations []entity.Consultation
	var patients []entity.Patient

	var wg conc.WaitGroup
	wg.Go(func() { rendezVous = tolerate(ctx, u.log, "rendez-vous", u.repos.RendezVous.FindMine) })
	wg.Go(func() { consultations = tolerate(ctx, u.log, "consultations", u.repos.Consultations.FindMine) })
	wg.Go(func() { patients = tolerate(ctx, u.log, "patients", u.repos.Patients.FindMine) })
	u.wait(&wg)

	today := u.today()
	return &dto.MedecinDashboard{
		RdvAujourdhui:      len(onDay(rendezVous, today)),
		RdvEnAttente:       countPending(rendezVous),
		TotalRendezVous:    len(rendezVous),
		TotalConsultations: len(consultations),
		TotalPatients:      len(patients),
		ProchainRendezVous: nextAfter(rendezVous, today),
		RendezVousDuJour:   onDay(rendezVous, today),
	}
}

func (u *dashboardUsecase) secretaire(ctx context.Context) *dto.SecretaireDashboard {
	var rendezVous []entity.RendezVous
	var paiements []entity.Paiement

	var wg conc.WaitGroup
	wg.Go(func() { rendezVous = tolerate(ctx, u.log, "rendez-vous", u.repos.RendezVous.FindAll) })
	wg.Go(func() { paiements = tolerate(ctx, u.log, "paiements", u.repos.Paiements.FindAll) })
	u.wait(&wg)

	today := u.today()
	enAttente := 0
	for i := range paiements {
		if paiements[i].IsEnAttente() {
			enAttente++
		}
	}
	return &dto.SecretaireDashboard{
		RdvAujourdhui:      len(onDay(rendezVous, today)),
		RdvEnAttente:       countPending(rendezVous),
		TotalRendezVous:    len(rendezVous),
		TotalPaiements:     len(paiements),
		PaiementsEnAttente: enAttente,
		MontantEncaisse:    sumValide(paiements),
		RendezVousDuJour:   onDay(rendezVous, today),
	}
}

func (u *dashboardUsecase) patient(ctx context.Context) *dto.PatientDashboard {
	var summary *entity.PatientSummary
	var rendezVous []entity.RendezVous
	var consultations []entity.Consultation
	var paiements []entity.Paiement

	var wg conc.WaitGroup
	wg.Go(func() {
		s, err := u.repos.Statistics.PatientSummary(ctx)
		if err != nil {
			u.log.Warnf("Failed to load patient summary: %+v", err)
			return
		}
		summary = s
	})
	wg.Go(func() { rendezVous = tolerate(ctx, u.log, "rendez-vous", u.repos.RendezVous.FindMine) })
	wg.Go(func() { consultations = tolerate(ctx, u.log, "consultations", u.repos.Consultations.FindMine) })
	wg.Go(func() { paiements = tolerate(ctx, u.log, "paiements", u.repos.Paiements.FindMine) })
	u.wait(&wg)

	if summary == nil {
		summary = &entity.PatientSummary{}
	}
	today := u.today()
	counters := summary.Statistiques

	upcoming := 0
	for i := range rendezVous {
		if rendezVous[i].Day() >= today && rendezVous[i].Status().Pending() {
			upcoming++
		}
	}

	res := &dto.PatientDashboard{
		TotalRendezVous:    intOr(counters.TotalRendezVous, len(rendezVous)),
		RendezVousAVenir:   intOr(counters.RendezVousAVenir, upcoming),
		TotalConsultations: intOr(counters.TotalConsultations, len(consultations)),
		TotalPaiements:     intOr(counters.TotalPaiements, len(paiements)),
		MontantTotalPaye:   sumValide(paiements),
		ProchainRendezVous: summary.ProchainRendezVous,
	}
	if counters.MontantTotalPaye != nil {
		res.MontantTotalPaye = *counters.MontantTotalPaye
	}
	if res.ProchainRendezVous == nil {
		res.ProchainRendezVous = nextAfter(rendezVous, today)
	}
	return res
}

func (u *dashboardUsecase) wait(wg *conc.WaitGroup) {
	if r := wg.WaitAndRecover(); r != nil {
		u.log.Warnf("Dashboard request panicked: %v", r.Value)
	}
}

// tolerate turns a failed load into an empty collection.
func tolerate[T any](ctx context.Context, log *logrus.Logger, what string, fetch func(context.Context) ([]T, error)) []T {
	items, err := fetch(ctx)
	if err != nil {
		log.Warnf("Failed to load %s for dashboard: %+v", what, err)
		return []T{}
	}
	return items
}

// onDay returns the appointments dated day, earliest first.
func onDay(items []entity.RendezVous, day string) []entity.RendezVous {
	out := []entity.RendezVous{}
	for i := range items {
		if items[i].Day() == day {
			out = append(out, items[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Time() < out[j].Time() })
	return out
}

func countPending(items []entity.RendezVous) int {
	n := 0
	for i := range items {
		if items[i].Status().Pending() {
			n++
		}
	}
	return n
}

// nextAfter picks the earliest appointment dated strictly after day.
func nextAfter(items []entity.RendezVous, day string) *entity.RendezVous {
	var next *entity.RendezVous
	for i := range items {
		if items[i].Day() <= day {
			continue
		}
		if next == nil || items[i].SortKey() < next.SortKey() {
			next = &items[i]
		}
	}
	return next
}

func sumValide(items []entity.Paiement) decimal.Decimal {
	total := decimal.Zero
	for i := range items {
		if items[i].IsValide() {
			total = total.Add(items[i].Montant)
		}
	}
	return total
}

func intOr(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}
