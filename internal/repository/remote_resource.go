package repository

import (
	"context"
	"errors"
	"fmt"

	domainRepo "go-medical-console/internal/domain/repository"
	"go-medical-console/internal/infrastructure/api"
	"go-medical-console/pkg/envelope"
)

// Upstream collection paths.
const (
	PathDepartements     = "/departements"
	PathSpecialites      = "/specialites"
	PathMedecins         = "/medecins"
	PathSecretaires      = "/secretaires"
	PathPatients         = "/patients"
	PathRendezVous       = "/rendez-vous"
	PathConsultations    = "/consultations"
	PathComptesRendus    = "/comptes-rendus"
	PathPaiements        = "/paiements"
	PathDisponibilites   = "/disponibilites"
	PathDossiersMedicaux = "/dossiers-medicaux"
	PathUsers            = "/users"
)

// remoteResource implements the plain REST surface of one upstream
// collection. Specific repositories embed it and add their sub-routes.
type remoteResource[T any] struct {
	client *api.Client
	path   string
}

func NewResourceRepository[T any](client *api.Client, path string) domainRepo.ResourceRepository[T] {
	return &remoteResource[T]{client: client, path: path}
}

func (r *remoteResource[T]) FindAll(ctx context.Context) ([]T, error) {
	return r.list(ctx, r.path)
}

func (r *remoteResource[T]) FindByID(ctx context.Context, id int64) (*T, error) {
	body, err := r.client.Get(ctx, r.item(id))
	if err != nil {
		return nil, err
	}
	return envelope.DecodeOne[T](body)
}

func (r *remoteResource[T]) Create(ctx context.Context, payload any) (*T, error) {
	body, err := r.client.Post(ctx, r.path, payload)
	if err != nil {
		return nil, err
	}
	return echoed[T](body)
}

func (r *remoteResource[T]) Update(ctx context.Context, id int64, payload any) (*T, error) {
	body, err := r.client.Put(ctx, r.item(id), payload)
	if err != nil {
		return nil, err
	}
	return echoed[T](body)
}

func (r *remoteResource[T]) Delete(ctx context.Context, id int64) error {
	_, err := r.client.Delete(ctx, r.item(id))
	return err
}

func (r *remoteResource[T]) item(id int64) string {
	return fmt.Sprintf("%s/%d", r.path, id)
}

func (r *remoteResource[T]) list(ctx context.Context, path string) ([]T, error) {
	body, err := r.client.Get(ctx, path)
	if err != nil {
		return nil, err
	}
	res := envelope.Decode[T](body)
	if res.Err != nil {
		return nil, fmt.Errorf("GET %s: %w", path, res.Err)
	}
	return res.Records, nil
}

// echoed reads the record a write answered with. A 2xx without a
// decodable record is still a successful write.
func echoed[T any](body []byte) (*T, error) {
	record, err := envelope.DecodeOne[T](body)
	if errors.Is(err, envelope.ErrMalformed) {
		return nil, nil
	}
	return record, err
}
