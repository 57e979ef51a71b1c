package handler

import (
	"net/http"
	"time"

	"go-medical-console/internal/delivery/dto"
	"go-medical-console/internal/domain/entity"
	"go-medical-console/internal/usecase"
	"go-medical-console/pkg/validator"
)

// ResourceRoutes is the route set every resource handler serves.
type ResourceRoutes interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

// ResourceHandlers binds each resource to its form bodies and labels.
type ResourceHandlers struct {
	Departements     ResourceRoutes
	Specialites      ResourceRoutes
	Medecins         ResourceRoutes
	Secretaires      ResourceRoutes
	Patients         ResourceRoutes
	RendezVous       ResourceRoutes
	Consultations    ResourceRoutes
	ComptesRendus    ResourceRoutes
	Paiements        ResourceRoutes
	Disponibilites   ResourceRoutes
	DossiersMedicaux ResourceRoutes
	Users            ResourceRoutes
}

func NewResourceHandlers(uc *usecase.ResourceUsecases, v *validator.CustomValidator, redirectDelay time.Duration) *ResourceHandlers {
	return &ResourceHandlers{
		Departements: NewResourceHandler[entity.Departement, dto.DepartementRequest, dto.DepartementRequest](
			uc.Departements, v, ResourceLabels{Noun: "Département", Plural: "des départements", Redirect: "/departements"}, redirectDelay),
		Specialites: NewResourceHandler[entity.Specialite, dto.SpecialiteRequest, dto.SpecialiteRequest](
			uc.Specialites, v, ResourceLabels{Noun: "Spécialité", Feminine: true, Plural: "des spécialités", Redirect: "/specialites"}, redirectDelay),
		Medecins: NewResourceHandler[entity.Medecin, dto.CreateMedecinRequest, dto.UpdateMedecinRequest](
			uc.Medecins, v, ResourceLabels{Noun: "Médecin", Plural: "des médecins", Redirect: "/medecins"}, redirectDelay),
		Secretaires: NewResourceHandler[entity.Secretaire, dto.CreateSecretaireRequest, dto.UpdateSecretaireRequest](
			uc.Secretaires, v, ResourceLabels{Noun: "Secrétaire", Plural: "des secrétaires", Redirect: "/secretaires"}, redirectDelay),
		Patients: NewResourceHandler[entity.Patient, dto.CreatePatientRequest, dto.UpdatePatientRequest](
			uc.Patients, v, ResourceLabels{Noun: "Patient", Plural: "des patients", Redirect: "/patients"}, redirectDelay),
		RendezVous: NewResourceHandler[entity.RendezVous, dto.RendezVousRequest, dto.RendezVousRequest](
			uc.RendezVous, v, ResourceLabels{Noun: "Rendez-vous", Plural: "des rendez-vous", Redirect: "/rendez-vous"}, redirectDelay),
		Consultations: NewResourceHandler[entity.Consultation, dto.ConsultationRequest, dto.ConsultationRequest](
			uc.Consultations, v, ResourceLabels{Noun: "Consultation", Feminine: true, Plural: "des consultations", Redirect: "/consultations"}, redirectDelay),
		ComptesRendus: NewResourceHandler[entity.CompteRendu, dto.CompteRenduRequest, dto.CompteRenduRequest](
			uc.ComptesRendus, v, ResourceLabels{Noun: "Compte rendu", Plural: "des comptes rendus", Redirect: "/comptes-rendus"}, redirectDelay),
		Paiements: NewResourceHandler[entity.Paiement, dto.PaiementRequest, dto.PaiementRequest](
			uc.Paiements, v, ResourceLabels{Noun: "Paiement", Plural: "des paiements", Redirect: "/paiements"}, redirectDelay),
		Disponibilites: NewResourceHandler[entity.Disponibilite, dto.DisponibiliteRequest, dto.DisponibiliteRequest](
			uc.Disponibilites, v, ResourceLabels{Noun: "Disponibilité", Feminine: true, Plural: "des disponibilités", Redirect: "/disponibilites"}, redirectDelay),
		DossiersMedicaux: NewResourceHandler[entity.DossierMedical, dto.DossierMedicalRequest, dto.DossierMedicalRequest](
			uc.DossiersMedicaux, v, ResourceLabels{Noun: "Dossier médical", Plural: "des dossiers médicaux", Redirect: "/dossiers-medicaux"}, redirectDelay),
		Users: NewResourceHandler[entity.User, dto.CreateUserRequest, dto.UpdateUserRequest](
			uc.Users, v, ResourceLabels{Noun: "Utilisateur", Plural: "des utilisateurs", Redirect: "/users"}, redirectDelay),
	}
}
