package usecase

import (
	"context"

	"go-medical-console/internal/domain/entity"
	"go-medical-console/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"github.com/sourcegraph/conc/pool"
)

// relationResolver fills relations the API did not eager-load by linear
// search through the related collections. Lookups that fail leave the
// records as they are; searching then simply matches fewer fields.
type relationResolver struct {
	log            *logrus.Logger
	patientRepo    repository.PatientRepository
	medecinRepo    repository.MedecinRepository
	specialiteRepo repository.SpecialiteRepository
	rendezVousRepo repository.RendezVousRepository
}

func newRelationResolver(
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	medecinRepo repository.MedecinRepository,
	specialiteRepo repository.SpecialiteRepository,
	rendezVousRepo repository.RendezVousRepository,
) *relationResolver {
	return &relationResolver{
		log:            log,
		patientRepo:    patientRepo,
		medecinRepo:    medecinRepo,
		specialiteRepo: specialiteRepo,
		rendezVousRepo: rendezVousRepo,
	}
}

// people loads patients and doctors concurrently. Either may come back
// nil on failure.
func (r *relationResolver) people(ctx context.Context, needPatients, needMedecins bool) ([]entity.Patient, []entity.Medecin) {
	var patients []entity.Patient
	var medecins []entity.Medecin

	p := pool.New().WithContext(ctx)
	if needPatients {
		p.Go(func(ctx context.Context) error {
			list, err := r.patientRepo.FindAll(ctx)
			if err != nil {
				r.log.Warnf("Failed to load patients for lookup: %+v", err)
				return nil
			}
			patients = list
			return nil
		})
	}
	if needMedecins {
		p.Go(func(ctx context.Context) error {
			list, err := r.medecinRepo.FindAll(ctx)
			if err != nil {
				r.log.Warnf("Failed to load medecins for lookup: %+v", err)
				return nil
			}
			medecins = r.withSpecialites(ctx, list)
			return nil
		})
	}
	_ = p.Wait()

	return patients, medecins
}

func patientComplete(p *entity.Patient) bool {
	return p != nil && p.User != nil
}

func medecinComplete(m *entity.Medecin) bool {
	return m != nil && m.User != nil && m.Specialite != nil
}

// withRendezVous attaches patient and doctor records, doctors with their
// specialty, to appointments that lack them.
func (r *relationResolver) withRendezVous(ctx context.Context, items []entity.RendezVous) []entity.RendezVous {
	needPatients, needMedecins := false, false
	for i := range items {
		needPatients = needPatients || !patientComplete(items[i].Patient)
		needMedecins = needMedecins || !medecinComplete(items[i].Medecin)
	}
	if !needPatients && !needMedecins {
		return items
	}

	patients, medecins := r.people(ctx, needPatients, needMedecins)
	return attachPeople(items, patients, medecins)
}

func attachPeople(items []entity.RendezVous, patients []entity.Patient, medecins []entity.Medecin) []entity.RendezVous {
	for i := range items {
		attachPerson(&items[i], patients, medecins)
	}
	return items
}

func attachPerson(rdv *entity.RendezVous, patients []entity.Patient, medecins []entity.Medecin) {
	if !patientComplete(rdv.Patient) {
		if p := findPatient(patients, rdv.PatientID); p != nil {
			rdv.Patient = p
		}
	}
	if !medecinComplete(rdv.Medecin) {
		if m := findMedecin(medecins, rdv.MedecinID); m != nil {
			rdv.Medecin = m
		}
	}
}

func (r *relationResolver) withSpecialites(ctx context.Context, medecins []entity.Medecin) []entity.Medecin {
	missing := false
	for i := range medecins {
		missing = missing || medecins[i].Specialite == nil
	}
	if !missing {
		return medecins
	}

	specialites, err := r.specialiteRepo.FindAll(ctx)
	if err != nil {
		r.log.Warnf("Failed to load specialites for lookup: %+v", err)
		return medecins
	}
	for i := range medecins {
		if medecins[i].Specialite != nil {
			continue
		}
		for j := range specialites {
			if specialites[j].ID == medecins[i].SpecialiteID {
				medecins[i].Specialite = &specialites[j]
				break
			}
		}
	}
	return medecins
}

func (r *relationResolver) withConsultations(ctx context.Context, items []entity.Consultation) []entity.Consultation {
	missing := false
	for i := range items {
		rdv := items[i].RendezVous
		missing = missing || rdv == nil || !patientComplete(rdv.Patient) || !medecinComplete(rdv.Medecin)
	}
	if !missing {
		return items
	}

	var rendezVous []entity.RendezVous
	var patients []entity.Patient
	var medecins []entity.Medecin
	p := pool.New().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		list, err := r.rendezVousRepo.FindAll(ctx)
		if err != nil {
			r.log.Warnf("Failed to load rendez-vous for lookup: %+v", err)
			return nil
		}
		rendezVous = list
		return nil
	})
	p.Go(func(ctx context.Context) error {
		patients, medecins = r.people(ctx, true, true)
		return nil
	})
	_ = p.Wait()

	rendezVous = attachPeople(rendezVous, patients, medecins)
	for i := range items {
		if items[i].RendezVous == nil {
			for j := range rendezVous {
				if rendezVous[j].ID == items[i].RendezVousID {
					items[i].RendezVous = &rendezVous[j]
					break
				}
			}
			continue
		}
		attachPerson(items[i].RendezVous, patients, medecins)
	}
	return items
}

func (r *relationResolver) withDisponibilites(ctx context.Context, items []entity.Disponibilite) []entity.Disponibilite {
	missing := false
	for i := range items {
		missing = missing || items[i].Medecin == nil || items[i].Medecin.User == nil
	}
	if !missing {
		return items
	}

	_, medecins := r.people(ctx, false, true)
	for i := range items {
		if items[i].Medecin == nil || items[i].Medecin.User == nil {
			if m := findMedecin(medecins, items[i].MedecinID); m != nil {
				items[i].Medecin = m
			}
		}
	}
	return items
}

func (r *relationResolver) withDossiers(ctx context.Context, items []entity.DossierMedical) []entity.DossierMedical {
	missing := false
	for i := range items {
		missing = missing || !patientComplete(items[i].Patient)
	}
	if !missing {
		return items
	}

	patients, _ := r.people(ctx, true, false)
	for i := range items {
		if !patientComplete(items[i].Patient) {
			if p := findPatient(patients, items[i].PatientID); p != nil {
				items[i].Patient = p
			}
		}
	}
	return items
}

func findPatient(patients []entity.Patient, id int64) *entity.Patient {
	for i := range patients {
		if patients[i].ID == id {
			return &patients[i]
		}
	}
	return nil
}

func findMedecin(medecins []entity.Medecin, id int64) *entity.Medecin {
	for i := range medecins {
		if medecins[i].ID == id {
			return &medecins[i]
		}
	}
	return nil
}
