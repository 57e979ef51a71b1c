package usecase

import (
	"context"
	"errors"
	"sort"
	"strconv"

	"go-medical-console/internal/delivery/dto"
	"go-medical-console/internal/domain/entity"
	"go-medical-console/internal/domain/repository"
	"go-medical-console/internal/service"

	"github.com/sirupsen/logrus"
)

var ErrInvalidStatus = errors.New("invalid rendez-vous status")

// RendezVousUsecase covers the appointment routes beyond plain CRUD.
type RendezVousUsecase interface {
	// UpdateStatus sets any of the four statuses, whatever the current one.
	UpdateStatus(ctx context.Context, id int64, statut string) (*entity.RendezVous, error)
	Statuses() []dto.StatusOption
	ByMedecin(ctx context.Context, medecinID int64) ([]entity.RendezVous, error)
}

type rendezVousUsecase struct {
	log            *logrus.Logger
	rendezVousRepo repository.RendezVousRepository
	resolver       *relationResolver
	auditService   service.AuditService
}

func NewRendezVousUsecase(log *logrus.Logger, repos Repositories, auditService service.AuditService) RendezVousUsecase {
	return &rendezVousUsecase{
		log:            log,
		rendezVousRepo: repos.RendezVous,
		resolver:       newRelationResolver(log, repos.Patients, repos.Medecins, repos.Specialites, repos.RendezVous),
		auditService:   auditService,
	}
}

func (u *rendezVousUsecase) UpdateStatus(ctx context.Context, id int64, statut string) (*entity.RendezVous, error) {
	status := entity.NormalizeStatus(statut)
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	updated, err := u.rendezVousRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		u.log.Warnf("Failed to update rendez-vous %d status: %+v", id, err)
		return nil, err
	}

	u.auditService.LogStatusChange(ctx, actor(ctx), strconv.FormatInt(id, 10), status)
	return updated, nil
}

func (u *rendezVousUsecase) Statuses() []dto.StatusOption {
	options := make([]dto.StatusOption, len(entity.RendezVousStatuses))
	for i, s := range entity.RendezVousStatuses {
		options[i] = dto.StatusOption{Value: string(s), Label: s.Label(), Color: s.Color()}
	}
	return options
}

// ByMedecin lists a doctor's whole agenda, ordered by date and time.
func (u *rendezVousUsecase) ByMedecin(ctx context.Context, medecinID int64) ([]entity.RendezVous, error) {
	items, err := u.rendezVousRepo.FindByMedecin(ctx, medecinID)
	if err != nil {
		u.log.Warnf("Failed to load rendez-vous of medecin %d: %+v", medecinID, err)
		return nil, err
	}

	items = u.resolver.withRendezVous(ctx, items)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].SortKey() < items[j].SortKey()
	})
	return items, nil
}
