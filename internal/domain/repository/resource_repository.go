package repository

import (
	"context"

	"go-medical-console/internal/domain/entity"
)

// ResourceRepository is the REST surface shared by every remote resource.
// Create and Update return the record echoed by the server, or nil when
// the server acknowledged the write without one.
type ResourceRepository[T any] interface {
	FindAll(ctx context.Context) ([]T, error)
	FindByID(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, payload any) (*T, error)
	Update(ctx context.Context, id int64, payload any) (*T, error)
	Delete(ctx context.Context, id int64) error
}

type DepartementRepository = ResourceRepository[entity.Departement]
type SpecialiteRepository = ResourceRepository[entity.Specialite]
type MedecinRepository = ResourceRepository[entity.Medecin]
type SecretaireRepository = ResourceRepository[entity.Secretaire]
type CompteRenduRepository = ResourceRepository[entity.CompteRendu]
type DisponibiliteRepository = ResourceRepository[entity.Disponibilite]
type DossierMedicalRepository = ResourceRepository[entity.DossierMedical]
type UserRepository = ResourceRepository[entity.User]

type PatientRepository interface {
	ResourceRepository[entity.Patient]
	// FindMine lists the patients seen by the logged-in doctor.
	FindMine(ctx context.Context) ([]entity.Patient, error)
}

type RendezVousRepository interface {
	ResourceRepository[entity.RendezVous]
	FindMine(ctx context.Context) ([]entity.RendezVous, error)
	FindByMedecin(ctx context.Context, medecinID int64) ([]entity.RendezVous, error)
	UpdateStatus(ctx context.Context, id int64, status entity.RendezVousStatus) (*entity.RendezVous, error)
}

type ConsultationRepository interface {
	ResourceRepository[entity.Consultation]
	FindMine(ctx context.Context) ([]entity.Consultation, error)
}

type PaiementRepository interface {
	ResourceRepository[entity.Paiement]
	FindMine(ctx context.Context) ([]entity.Paiement, error)
}
