package dto

import "go-medical-console/internal/domain/entity"

// Request DTOs

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type RegisterRequest struct {
	Nom                  string `json:"nom" validate:"required,min=2"`
	Prenom               string `json:"prenom" validate:"required,min=2"`
	Email                string `json:"email" validate:"required,email"`
	Password             string `json:"password" validate:"required,min=6"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
	Telephone            string `json:"telephone" validate:"omitempty,min=8,max=20"`
	Adresse              string `json:"adresse" validate:"omitempty"`
	DateNaissance        string `json:"date_naissance" validate:"omitempty,datetime=2006-01-02"`
	Sexe                 string `json:"sexe" validate:"omitempty,oneof=M F"`
}

// Response DTOs

type SessionResponse struct {
	Token     string       `json:"token"`
	ExpiresIn int64        `json:"expires_in"`
	User      UserResponse `json:"user"`
}

// UserResponse is the cached user with the role booleans the screens
// toggle on.
type UserResponse struct {
	entity.User
	FullName     string `json:"full_name"`
	IsAdmin      bool   `json:"is_admin"`
	IsMedecin    bool   `json:"is_medecin"`
	IsSecretaire bool   `json:"is_secretaire"`
	IsPatient    bool   `json:"is_patient"`
}
