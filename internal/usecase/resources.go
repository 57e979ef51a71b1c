package usecase

import (
	"context"

	"go-medical-console/internal/delivery/dto"
	"go-medical-console/internal/domain/entity"
	"go-medical-console/internal/domain/repository"
	"go-medical-console/internal/listing"
	"go-medical-console/internal/service"

	"github.com/sirupsen/logrus"
)

// Repositories groups the remote repositories the console screens read.
type Repositories struct {
	Departements     repository.DepartementRepository
	Specialites      repository.SpecialiteRepository
	Medecins         repository.MedecinRepository
	Secretaires      repository.SecretaireRepository
	Patients         repository.PatientRepository
	RendezVous       repository.RendezVousRepository
	Consultations    repository.ConsultationRepository
	ComptesRendus    repository.CompteRenduRepository
	Paiements        repository.PaiementRepository
	Disponibilites   repository.DisponibiliteRepository
	DossiersMedicaux repository.DossierMedicalRepository
	Users            repository.UserRepository
	Statistics       repository.StatisticsRepository
}

// ResourceUsecases holds one list/form usecase per screen.
type ResourceUsecases struct {
	Departements     ResourceUsecase[entity.Departement]
	Specialites      ResourceUsecase[entity.Specialite]
	Medecins         ResourceUsecase[entity.Medecin]
	Secretaires      ResourceUsecase[entity.Secretaire]
	Patients         ResourceUsecase[entity.Patient]
	RendezVous       ResourceUsecase[entity.RendezVous]
	Consultations    ResourceUsecase[entity.Consultation]
	ComptesRendus    ResourceUsecase[entity.CompteRendu]
	Paiements        ResourceUsecase[entity.Paiement]
	Disponibilites   ResourceUsecase[entity.Disponibilite]
	DossiersMedicaux ResourceUsecase[entity.DossierMedical]
	Users            ResourceUsecase[entity.User]
}

// Default page sizes of the paginated screens.
const (
	secretairesPerPage = 10
	usersPerPage       = 10
)

func NewResourceUsecases(log *logrus.Logger, repos Repositories, auditService service.AuditService) *ResourceUsecases {
	resolver := newRelationResolver(log, repos.Patients, repos.Medecins, repos.Specialites, repos.RendezVous)

	return &ResourceUsecases{
		Departements: NewResourceUsecase(log, repos.Departements, auditService, ResourceDefinition[entity.Departement]{
			Name: "departements",
			Search: []listing.Field[entity.Departement]{
				func(d *entity.Departement) string { return d.Nom },
				func(d *entity.Departement) string { return d.Description },
			},
			ID: func(d *entity.Departement) int64 { return d.ID },
		}),

		Specialites: NewResourceUsecase(log, repos.Specialites, auditService, ResourceDefinition[entity.Specialite]{
			Name: "specialites",
			Search: []listing.Field[entity.Specialite]{
				func(s *entity.Specialite) string { return s.Nom },
				func(s *entity.Specialite) string { return s.Description },
				func(s *entity.Specialite) string {
					if s.Departement == nil {
						return ""
					}
					return s.Departement.Nom
				},
			},
			Filters: func(q *dto.ListQuery) []listing.Predicate[entity.Specialite] {
				return []listing.Predicate[entity.Specialite]{
					matchID(q.Int64("departement_id"), func(s *entity.Specialite) int64 { return s.DepartementID }),
				}
			},
			ID: func(s *entity.Specialite) int64 { return s.ID },
		}),

		Medecins: NewResourceUsecase(log, repos.Medecins, auditService, ResourceDefinition[entity.Medecin]{
			Name: "medecins",
			Search: []listing.Field[entity.Medecin]{
				func(m *entity.Medecin) string { return userField(m.User, nom) },
				func(m *entity.Medecin) string { return userField(m.User, prenom) },
				func(m *entity.Medecin) string { return userField(m.User, email) },
				func(m *entity.Medecin) string { return userField(m.User, telephone) },
				func(m *entity.Medecin) string { return m.NumeroOrdre },
				func(m *entity.Medecin) string { return m.SpecialiteNom() },
			},
			Filters: func(q *dto.ListQuery) []listing.Predicate[entity.Medecin] {
				return []listing.Predicate[entity.Medecin]{
					matchID(q.Int64("specialite_id"), func(m *entity.Medecin) int64 { return m.SpecialiteID }),
					matchID(q.Int64("departement_id"), func(m *entity.Medecin) int64 { return m.DepartementID() }),
				}
			},
			Load: func(ctx context.Context) ([]entity.Medecin, error) {
				items, err := repos.Medecins.FindAll(ctx)
				if err != nil {
					return nil, err
				}
				return resolver.withSpecialites(ctx, items), nil
			},
			ID: func(m *entity.Medecin) int64 { return m.ID },
		}),

		Secretaires: NewResourceUsecase(log, repos.Secretaires, auditService, ResourceDefinition[entity.Secretaire]{
			Name: "secretaires",
			Search: []listing.Field[entity.Secretaire]{
				func(s *entity.Secretaire) string { return userField(s.User, nom) },
				func(s *entity.Secretaire) string { return userField(s.User, prenom) },
				func(s *entity.Secretaire) string { return userField(s.User, email) },
				func(s *entity.Secretaire) string { return userField(s.User, telephone) },
				func(s *entity.Secretaire) string { return s.NumeroEmploye },
			},
			PerPage: secretairesPerPage,
			ID:      func(s *entity.Secretaire) int64 { return s.ID },
		}),

		Patients: NewResourceUsecase[entity.Patient](log, repos.Patients, auditService, ResourceDefinition[entity.Patient]{
			Name: "patients",
			Search: []listing.Field[entity.Patient]{
				func(p *entity.Patient) string { return userField(p.User, nom) },
				func(p *entity.Patient) string { return userField(p.User, prenom) },
				func(p *entity.Patient) string { return userField(p.User, email) },
				func(p *entity.Patient) string { return userField(p.User, telephone) },
				func(p *entity.Patient) string { return p.NumeroPatient },
			},
			Filters: func(q *dto.ListQuery) []listing.Predicate[entity.Patient] {
				return []listing.Predicate[entity.Patient]{
					matchString(q.String("groupe_sanguin"), func(p *entity.Patient) string { return p.GroupeSanguin() }),
				}
			},
			Load: func(ctx context.Context) ([]entity.Patient, error) {
				if actor(ctx).IsMedecin() {
					return repos.Patients.FindMine(ctx)
				}
				return repos.Patients.FindAll(ctx)
			},
			ID: func(p *entity.Patient) int64 { return p.ID },
		}),

		RendezVous: NewResourceUsecase[entity.RendezVous](log, repos.RendezVous, auditService, ResourceDefinition[entity.RendezVous]{
			Name:    "rendez-vous",
			Search:  rendezVousSearch,
			Filters: rendezVousFilters,
			Load: func(ctx context.Context) ([]entity.RendezVous, error) {
				items, err := loadRendezVous(ctx, repos.RendezVous)
				if err != nil {
					return nil, err
				}
				return resolver.withRendezVous(ctx, items), nil
			},
			ID: func(r *entity.RendezVous) int64 { return r.ID },
		}),

		Consultations: NewResourceUsecase[entity.Consultation](log, repos.Consultations, auditService, ResourceDefinition[entity.Consultation]{
			Name: "consultations",
			Search: []listing.Field[entity.Consultation]{
				func(c *entity.Consultation) string { return patientName(c.RendezVous) },
				func(c *entity.Consultation) string { return medecinName(c.RendezVous) },
				func(c *entity.Consultation) string { return c.Motif },
				func(c *entity.Consultation) string { return c.Diagnostic },
			},
			Filters: func(q *dto.ListQuery) []listing.Predicate[entity.Consultation] {
				return []listing.Predicate[entity.Consultation]{
					matchID(q.Int64("medecin_id"), func(c *entity.Consultation) int64 {
						if c.RendezVous == nil {
							return 0
						}
						return c.RendezVous.MedecinID
					}),
					matchID(q.Int64("patient_id"), func(c *entity.Consultation) int64 {
						if c.RendezVous == nil {
							return 0
						}
						return c.RendezVous.PatientID
					}),
					matchDate(q.String("date"), func(c *entity.Consultation) string { return c.Day() }),
				}
			},
			Load: func(ctx context.Context) ([]entity.Consultation, error) {
				var items []entity.Consultation
				var err error
				if s := actor(ctx); s.IsMedecin() || s.IsPatient() {
					items, err = repos.Consultations.FindMine(ctx)
				} else {
					items, err = repos.Consultations.FindAll(ctx)
				}
				if err != nil {
					return nil, err
				}
				return resolver.withConsultations(ctx, items), nil
			},
			ID: func(c *entity.Consultation) int64 { return c.ID },
		}),

		ComptesRendus: NewResourceUsecase(log, repos.ComptesRendus, auditService, ResourceDefinition[entity.CompteRendu]{
			Name: "comptes-rendus",
			Search: []listing.Field[entity.CompteRendu]{
				func(c *entity.CompteRendu) string { return c.Diagnostic },
				func(c *entity.CompteRendu) string { return c.Traitement },
				func(c *entity.CompteRendu) string { return c.Observations },
			},
			ID: func(c *entity.CompteRendu) int64 { return c.ID },
		}),

		Paiements: NewResourceUsecase[entity.Paiement](log, repos.Paiements, auditService, ResourceDefinition[entity.Paiement]{
			Name: "paiements",
			Search: []listing.Field[entity.Paiement]{
				func(p *entity.Paiement) string { return p.Reference },
				func(p *entity.Paiement) string { return p.ModePaiement },
				func(p *entity.Paiement) string { return p.Statut },
			},
			Filters: func(q *dto.ListQuery) []listing.Predicate[entity.Paiement] {
				return []listing.Predicate[entity.Paiement]{
					matchString(q.String("statut"), func(p *entity.Paiement) string { return p.Statut }),
					matchString(q.String("mode_paiement"), func(p *entity.Paiement) string { return p.ModePaiement }),
					matchDate(q.String("date"), func(p *entity.Paiement) string { return entity.DatePart(p.DatePaiement) }),
				}
			},
			Load: func(ctx context.Context) ([]entity.Paiement, error) {
				if actor(ctx).IsPatient() {
					return repos.Paiements.FindMine(ctx)
				}
				return repos.Paiements.FindAll(ctx)
			},
			ID: func(p *entity.Paiement) int64 { return p.ID },
		}),

		Disponibilites: NewResourceUsecase(log, repos.Disponibilites, auditService, ResourceDefinition[entity.Disponibilite]{
			Name: "disponibilites",
			Search: []listing.Field[entity.Disponibilite]{
				func(d *entity.Disponibilite) string {
					if d.Medecin == nil {
						return ""
					}
					return userField(d.Medecin.User, nom)
				},
				func(d *entity.Disponibilite) string {
					if d.Medecin == nil {
						return ""
					}
					return userField(d.Medecin.User, prenom)
				},
				func(d *entity.Disponibilite) string { return d.JourSemaine },
			},
			Filters: func(q *dto.ListQuery) []listing.Predicate[entity.Disponibilite] {
				return []listing.Predicate[entity.Disponibilite]{
					matchID(q.Int64("medecin_id"), func(d *entity.Disponibilite) int64 { return d.MedecinID }),
					matchDate(q.String("date"), func(d *entity.Disponibilite) string { return entity.DatePart(d.Date) }),
				}
			},
			Load: func(ctx context.Context) ([]entity.Disponibilite, error) {
				items, err := repos.Disponibilites.FindAll(ctx)
				if err != nil {
					return nil, err
				}
				return resolver.withDisponibilites(ctx, items), nil
			},
			ID: func(d *entity.Disponibilite) int64 { return d.ID },
		}),

		DossiersMedicaux: NewResourceUsecase(log, repos.DossiersMedicaux, auditService, ResourceDefinition[entity.DossierMedical]{
			Name: "dossiers-medicaux",
			Search: []listing.Field[entity.DossierMedical]{
				func(d *entity.DossierMedical) string {
					if d.Patient == nil {
						return ""
					}
					return userField(d.Patient.User, nom)
				},
				func(d *entity.DossierMedical) string {
					if d.Patient == nil {
						return ""
					}
					return userField(d.Patient.User, prenom)
				},
				func(d *entity.DossierMedical) string {
					if d.Patient == nil {
						return ""
					}
					return d.Patient.NumeroPatient
				},
				func(d *entity.DossierMedical) string { return d.GroupeSanguin },
			},
			Filters: func(q *dto.ListQuery) []listing.Predicate[entity.DossierMedical] {
				return []listing.Predicate[entity.DossierMedical]{
					matchString(q.String("groupe_sanguin"), func(d *entity.DossierMedical) string { return d.GroupeSanguin }),
				}
			},
			Load: func(ctx context.Context) ([]entity.DossierMedical, error) {
				items, err := repos.DossiersMedicaux.FindAll(ctx)
				if err != nil {
					return nil, err
				}
				return resolver.withDossiers(ctx, items), nil
			},
			ID: func(d *entity.DossierMedical) int64 { return d.ID },
		}),

		Users: NewResourceUsecase(log, repos.Users, auditService, ResourceDefinition[entity.User]{
			Name: "users",
			Search: []listing.Field[entity.User]{
				nom, prenom, email,
				func(u *entity.User) string { return u.Role },
			},
			Filters: func(q *dto.ListQuery) []listing.Predicate[entity.User] {
				return []listing.Predicate[entity.User]{
					matchString(q.String("role"), func(u *entity.User) string { return u.Role }),
				}
			},
			PerPage: usersPerPage,
			ID:      func(u *entity.User) int64 { return u.ID },
		}),
	}
}

var rendezVousSearch = []listing.Field[entity.RendezVous]{
	func(r *entity.RendezVous) string { return patientName(r) },
	func(r *entity.RendezVous) string { return medecinName(r) },
	func(r *entity.RendezVous) string { return r.Medecin.SpecialiteNom() },
	func(r *entity.RendezVous) string { return r.Motif },
	func(r *entity.RendezVous) string { return r.Statut },
}

func rendezVousFilters(q *dto.ListQuery) []listing.Predicate[entity.RendezVous] {
	var byStatus listing.Predicate[entity.RendezVous]
	if raw := q.String("statut"); raw != "" {
		want := entity.NormalizeStatus(raw)
		byStatus = func(r *entity.RendezVous) bool { return r.Status() == want }
	}
	return []listing.Predicate[entity.RendezVous]{
		byStatus,
		matchID(q.Int64("medecin_id"), func(r *entity.RendezVous) int64 { return r.MedecinID }),
		matchID(q.Int64("patient_id"), func(r *entity.RendezVous) int64 { return r.PatientID }),
		matchDate(q.String("date"), func(r *entity.RendezVous) string { return r.Day() }),
	}
}

// loadRendezVous scopes appointments to the session: doctors and patients
// only see their own.
func loadRendezVous(ctx context.Context, repo repository.RendezVousRepository) ([]entity.RendezVous, error) {
	if s := actor(ctx); s.IsMedecin() || s.IsPatient() {
		return repo.FindMine(ctx)
	}
	return repo.FindAll(ctx)
}

func nom(u *entity.User) string       { return u.Nom }
func prenom(u *entity.User) string    { return u.Prenom }
func email(u *entity.User) string     { return u.Email }
func telephone(u *entity.User) string { return u.Telephone }

func userField(u *entity.User, pick func(*entity.User) string) string {
	if u == nil {
		return ""
	}
	return pick(u)
}

func patientName(r *entity.RendezVous) string {
	if r == nil {
		return ""
	}
	return r.Patient.DisplayName()
}

// medecinName searches the raw name, without the "Dr " display prefix.
func medecinName(r *entity.RendezVous) string {
	if r == nil || r.Medecin == nil {
		return ""
	}
	return r.Medecin.User.FullName()
}

func matchID[T any](want int64, get func(*T) int64) listing.Predicate[T] {
	if want <= 0 {
		return nil
	}
	return func(item *T) bool { return get(item) == want }
}

func matchString[T any](want string, get func(*T) string) listing.Predicate[T] {
	if want == "" {
		return nil
	}
	want = entity.Fold(want)
	return func(item *T) bool { return entity.Fold(get(item)) == want }
}

func matchDate[T any](want string, get func(*T) string) listing.Predicate[T] {
	want = entity.DatePart(want)
	if want == "" {
		return nil
	}
	return func(item *T) bool { return get(item) == want }
}
