package usecase

import (
	"context"
	"errors"
	"io"
	"sync"
	"sync/atomic"

	"go-medical-console/internal/domain/entity"
	"go-medical-console/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var errUpstream = errors.New("upstream down")

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// fakeResource serves fixed collections. With panics set every read
// panics, to exercise recovery.
type fakeResource[T any] struct {
	items   []T
	err     error
	mine    []T
	mineErr error
	panics  bool
	reads   atomic.Int32
	// created is returned by Create; removed by Delete drops the record.
	created *T
	removed func(items []T, id int64) []T
	deleted []int64
}

func (f *fakeResource[T]) FindAll(ctx context.Context) ([]T, error) {
	f.reads.Add(1)
	if f.panics {
		panic("boom")
	}
	if f.err != nil {
		return nil, f.err
	}
	return append([]T(nil), f.items...), nil
}

func (f *fakeResource[T]) FindMine(ctx context.Context) ([]T, error) {
	f.reads.Add(1)
	if f.panics {
		panic("boom")
	}
	if f.mineErr != nil {
		return nil, f.mineErr
	}
	return append([]T(nil), f.mine...), nil
}

func (f *fakeResource[T]) FindByID(ctx context.Context, id int64) (*T, error) {
	return nil, f.err
}

func (f *fakeResource[T]) Create(ctx context.Context, payload any) (*T, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.created, nil
}

func (f *fakeResource[T]) Update(ctx context.Context, id int64, payload any) (*T, error) {
	return nil, f.err
}

func (f *fakeResource[T]) Delete(ctx context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, id)
	if f.removed != nil {
		f.items = f.removed(f.items, id)
	}
	return nil
}

type fakeRendezVous struct {
	fakeResource[entity.RendezVous]
	statusCalls []entity.RendezVousStatus
}

func (f *fakeRendezVous) FindByMedecin(ctx context.Context, medecinID int64) ([]entity.RendezVous, error) {
	var out []entity.RendezVous
	for _, r := range f.items {
		if r.MedecinID == medecinID {
			out = append(out, r)
		}
	}
	return out, f.err
}

func (f *fakeRendezVous) UpdateStatus(ctx context.Context, id int64, status entity.RendezVousStatus) (*entity.RendezVous, error) {
	f.statusCalls = append(f.statusCalls, status)
	return &entity.RendezVous{ID: id, Statut: string(status)}, f.err
}

type fakeStatistics struct {
	admin      *entity.AdminStatistics
	adminErr   error
	summary    *entity.PatientSummary
	summaryErr error
}

func (f *fakeStatistics) Admin(ctx context.Context) (*entity.AdminStatistics, error) {
	return f.admin, f.adminErr
}

func (f *fakeStatistics) PatientSummary(ctx context.Context) (*entity.PatientSummary, error) {
	return f.summary, f.summaryErr
}

type recordedAudit struct {
	action   string
	resource string
	id       string
}

type fakeAudit struct {
	mu      sync.Mutex
	entries []recordedAudit
}

func (f *fakeAudit) add(e recordedAudit) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, e)
}

func (f *fakeAudit) LogSession(ctx context.Context, actor *entity.Session, action string) {
	f.add(recordedAudit{action: action})
}

func (f *fakeAudit) LogCreate(ctx context.Context, actor *entity.Session, resource, resourceID string, newValue interface{}) {
	f.add(recordedAudit{action: entity.AuditActionCreate, resource: resource, id: resourceID})
}

func (f *fakeAudit) LogUpdate(ctx context.Context, actor *entity.Session, resource, resourceID string, newValue interface{}) {
	f.add(recordedAudit{action: entity.AuditActionUpdate, resource: resource, id: resourceID})
}

func (f *fakeAudit) LogDelete(ctx context.Context, actor *entity.Session, resource, resourceID string) {
	f.add(recordedAudit{action: entity.AuditActionDelete, resource: resource, id: resourceID})
}

func (f *fakeAudit) LogStatusChange(ctx context.Context, actor *entity.Session, rendezVousID string, status entity.RendezVousStatus) {
	f.add(recordedAudit{action: entity.AuditActionStatusChange, resource: "rendez-vous", id: rendezVousID})
}

type fakes struct {
	departements  *fakeResource[entity.Departement]
	specialites   *fakeResource[entity.Specialite]
	medecins      *fakeResource[entity.Medecin]
	patients      *fakeResource[entity.Patient]
	rendezVous    *fakeRendezVous
	consultations *fakeResource[entity.Consultation]
	paiements     *fakeResource[entity.Paiement]
	statistics    *fakeStatistics
}

func newFakes() *fakes {
	return &fakes{
		departements:  &fakeResource[entity.Departement]{},
		specialites:   &fakeResource[entity.Specialite]{},
		medecins:      &fakeResource[entity.Medecin]{},
		patients:      &fakeResource[entity.Patient]{},
		rendezVous:    &fakeRendezVous{},
		consultations: &fakeResource[entity.Consultation]{},
		paiements:     &fakeResource[entity.Paiement]{},
		statistics:    &fakeStatistics{},
	}
}

func (f *fakes) repositories() Repositories {
	return Repositories{
		Departements:     f.departements,
		Specialites:      f.specialites,
		Medecins:         f.medecins,
		Secretaires:      &fakeResource[entity.Secretaire]{},
		Patients:         f.patients,
		RendezVous:       f.rendezVous,
		Consultations:    f.consultations,
		ComptesRendus:    &fakeResource[entity.CompteRendu]{},
		Paiements:        f.paiements,
		Disponibilites:   &fakeResource[entity.Disponibilite]{},
		DossiersMedicaux: &fakeResource[entity.DossierMedical]{},
		Users:            &fakeResource[entity.User]{},
		Statistics:       f.statistics,
	}
}

var _ repository.RendezVousRepository = (*fakeRendezVous)(nil)
var _ repository.PatientRepository = (*fakeResource[entity.Patient])(nil)
