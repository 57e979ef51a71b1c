package dto

// Request DTOs

type CreateMedecinRequest struct {
	Nom          string `json:"nom" validate:"required,min=2"`
	Prenom       string `json:"prenom" validate:"required,min=2"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=6"`
	Telephone    string `json:"telephone" validate:"omitempty,min=8,max=20"`
	Adresse      string `json:"adresse" validate:"omitempty"`
	SpecialiteID int64  `json:"specialite_id" validate:"required,gt=0"`
	NumeroOrdre  string `json:"numero_ordre" validate:"required"`
}

type UpdateMedecinRequest struct {
	Nom          string `json:"nom" validate:"required,min=2"`
	Prenom       string `json:"prenom" validate:"required,min=2"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password,omitempty" validate:"omitempty,min=6"`
	Telephone    string `json:"telephone" validate:"omitempty,min=8,max=20"`
	Adresse      string `json:"adresse" validate:"omitempty"`
	SpecialiteID int64  `json:"specialite_id" validate:"required,gt=0"`
	NumeroOrdre  string `json:"numero_ordre" validate:"required"`
}

type CreateSecretaireRequest struct {
	Nom                  string `json:"nom" validate:"required,min=2"`
	Prenom               string `json:"prenom" validate:"required,min=2"`
	Email                string `json:"email" validate:"required,email"`
	Password             string `json:"password" validate:"required,min=6"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
	Telephone            string `json:"telephone" validate:"omitempty,min=8,max=20"`
	Adresse              string `json:"adresse" validate:"omitempty"`
	NumeroEmploye        string `json:"numero_employe" validate:"required"`
}

type UpdateSecretaireRequest struct {
	Nom                  string `json:"nom" validate:"required,min=2"`
	Prenom               string `json:"prenom" validate:"required,min=2"`
	Email                string `json:"email" validate:"required,email"`
	Password             string `json:"password,omitempty" validate:"omitempty,min=6"`
	PasswordConfirmation string `json:"password_confirmation,omitempty" validate:"eqfield=Password"`
	Telephone            string `json:"telephone" validate:"omitempty,min=8,max=20"`
	Adresse              string `json:"adresse" validate:"omitempty"`
	NumeroEmploye        string `json:"numero_employe" validate:"required"`
}

type CreatePatientRequest struct {
	Nom           string `json:"nom" validate:"required,min=2"`
	Prenom        string `json:"prenom" validate:"required,min=2"`
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required,min=6"`
	Telephone     string `json:"telephone" validate:"omitempty,min=8,max=20"`
	Adresse       string `json:"adresse" validate:"omitempty"`
	DateNaissance string `json:"date_naissance" validate:"required,datetime=2006-01-02"`
	Sexe          string `json:"sexe" validate:"required,oneof=M F"`
	NumeroPatient string `json:"numero_patient,omitempty" validate:"omitempty"`
}

type UpdatePatientRequest struct {
	Nom           string `json:"nom" validate:"required,min=2"`
	Prenom        string `json:"prenom" validate:"required,min=2"`
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password,omitempty" validate:"omitempty,min=6"`
	Telephone     string `json:"telephone" validate:"omitempty,min=8,max=20"`
	Adresse       string `json:"adresse" validate:"omitempty"`
	DateNaissance string `json:"date_naissance" validate:"required,datetime=2006-01-02"`
	Sexe          string `json:"sexe" validate:"required,oneof=M F"`
}
