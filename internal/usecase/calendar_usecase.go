package usecase

import (
	"context"
	"sort"
	"time"

	"go-medical-console/internal/converter"
	"go-medical-console/internal/delivery/dto"
	"go-medical-console/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"github.com/sourcegraph/conc/pool"
)

type CalendarUsecase interface {
	GetEvents(ctx context.Context, query *dto.CalendarQuery) ([]dto.CalendarEvent, error)
}

type calendarUsecase struct {
	log           *logrus.Logger
	repos         Repositories
	eventDuration time.Duration
}

func NewCalendarUsecase(log *logrus.Logger, repos Repositories, eventDuration time.Duration) CalendarUsecase {
	return &calendarUsecase{
		log:           log,
		repos:         repos,
		eventDuration: eventDuration,
	}
}

// GetEvents joins appointments with the patient and doctor collections
// once all three have loaded. Only the appointments are required; names
// that cannot be resolved show as N/A.
func (u *calendarUsecase) GetEvents(ctx context.Context, query *dto.CalendarQuery) ([]dto.CalendarEvent, error) {
	if query == nil {
		query = &dto.CalendarQuery{}
	}

	var rendezVous []entity.RendezVous
	var patients []entity.Patient
	var medecins []entity.Medecin

	p := pool.New().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		items, err := u.repos.RendezVous.FindAll(ctx)
		if err != nil {
			return err
		}
		rendezVous = items
		return nil
	})
	p.Go(func(ctx context.Context) error {
		patients = tolerate(ctx, u.log, "patients", u.repos.Patients.FindAll)
		return nil
	})
	p.Go(func(ctx context.Context) error {
		medecins = tolerate(ctx, u.log, "medecins", u.repos.Medecins.FindAll)
		return nil
	})
	if err := p.Wait(); err != nil {
		u.log.Warnf("Failed to load rendez-vous for calendar: %+v", err)
		return nil, err
	}

	events := make([]dto.CalendarEvent, 0, len(rendezVous))
	for i := range rendezVous {
		r := &rendezVous[i]
		if !inCalendar(r, query) {
			continue
		}
		event, ok := converter.RendezVousToEvent(r,
			converter.PatientName(r, patients),
			converter.MedecinName(r, medecins),
			u.eventDuration,
		)
		if !ok {
			u.log.Debugf("Skipping rendez-vous %d with unreadable date %q", r.ID, r.Date)
			continue
		}
		events = append(events, event)
	}

	sort.SliceStable(events, func(i, j int) bool { return events[i].Start < events[j].Start })
	return events, nil
}

func inCalendar(r *entity.RendezVous, q *dto.CalendarQuery) bool {
	if q.MedecinID > 0 && r.MedecinID != q.MedecinID {
		return false
	}
	if q.Statut != "" && r.Status() != entity.NormalizeStatus(q.Statut) {
		return false
	}
	day := r.Day()
	if start := entity.DatePart(q.Start); start != "" && day < start {
		return false
	}
	if end := entity.DatePart(q.End); end != "" && day > end {
		return false
	}
	return true
}
