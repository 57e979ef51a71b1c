package repository

import (
	"context"
	"fmt"

	"go-medical-console/internal/domain/entity"
	domainRepo "go-medical-console/internal/domain/repository"
	"go-medical-console/internal/infrastructure/api"
	"go-medical-console/pkg/envelope"
)

type patientRepository struct {
	*remoteResource[entity.Patient]
}

func NewPatientRepository(client *api.Client) domainRepo.PatientRepository {
	return &patientRepository{&remoteResource[entity.Patient]{client: client, path: PathPatients}}
}

func (r *patientRepository) FindMine(ctx context.Context) ([]entity.Patient, error) {
	return r.list(ctx, PathPatients+"/mes-patients")
}

type rendezVousRepository struct {
	*remoteResource[entity.RendezVous]
}

func NewRendezVousRepository(client *api.Client) domainRepo.RendezVousRepository {
	return &rendezVousRepository{&remoteResource[entity.RendezVous]{client: client, path: PathRendezVous}}
}

func (r *rendezVousRepository) FindMine(ctx context.Context) ([]entity.RendezVous, error) {
	return r.list(ctx, PathRendezVous+"/mes-rendez-vous")
}

func (r *rendezVousRepository) FindByMedecin(ctx context.Context, medecinID int64) ([]entity.RendezVous, error) {
	return r.list(ctx, fmt.Sprintf("%s/medecin/%d/all", PathRendezVous, medecinID))
}

func (r *rendezVousRepository) UpdateStatus(ctx context.Context, id int64, status entity.RendezVousStatus) (*entity.RendezVous, error) {
	body, err := r.client.Patch(ctx, r.item(id)+"/statut", map[string]string{"statut": string(status)})
	if err != nil {
		return nil, err
	}
	return echoed[entity.RendezVous](body)
}

type consultationRepository struct {
	*remoteResource[entity.Consultation]
}

func NewConsultationRepository(client *api.Client) domainRepo.ConsultationRepository {
	return &consultationRepository{&remoteResource[entity.Consultation]{client: client, path: PathConsultations}}
}

func (r *consultationRepository) FindMine(ctx context.Context) ([]entity.Consultation, error) {
	return r.list(ctx, PathConsultations+"/mes-consultations")
}

type paiementRepository struct {
	*remoteResource[entity.Paiement]
}

func NewPaiementRepository(client *api.Client) domainRepo.PaiementRepository {
	return &paiementRepository{&remoteResource[entity.Paiement]{client: client, path: PathPaiements}}
}

func (r *paiementRepository) FindMine(ctx context.Context) ([]entity.Paiement, error) {
	return r.list(ctx, PathPaiements+"/mes-paiements")
}

type statisticsRepository struct {
	client *api.Client
}

func NewStatisticsRepository(client *api.Client) domainRepo.StatisticsRepository {
	return &statisticsRepository{client: client}
}

func (r *statisticsRepository) Admin(ctx context.Context) (*entity.AdminStatistics, error) {
	body, err := r.client.Get(ctx, "/statistiques/admin")
	if err != nil {
		return nil, err
	}
	return envelope.DecodeOne[entity.AdminStatistics](body)
}

func (r *statisticsRepository) PatientSummary(ctx context.Context) (*entity.PatientSummary, error) {
	body, err := r.client.Get(ctx, "/dashboard/patient")
	if err != nil {
		return nil, err
	}
	return envelope.DecodeOne[entity.PatientSummary](body)
}
