package dto

// Request DTOs

type DepartementRequest struct {
	Nom         string `json:"nom" validate:"required,min=2,max=100"`
	Description string `json:"description" validate:"omitempty,max=1000"`
}

type SpecialiteRequest struct {
	Nom           string `json:"nom" validate:"required,min=2,max=100"`
	Description   string `json:"description" validate:"omitempty,max=1000"`
	DepartementID int64  `json:"departement_id" validate:"required,gt=0"`
}

type CreateUserRequest struct {
	Nom       string `json:"nom" validate:"required,min=2"`
	Prenom    string `json:"prenom" validate:"required,min=2"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	Role      string `json:"role" validate:"required,oneof=admin medecin secretaire patient"`
	Telephone string `json:"telephone" validate:"omitempty,min=8,max=20"`
	Adresse   string `json:"adresse" validate:"omitempty"`
}

type UpdateUserRequest struct {
	Nom       string `json:"nom" validate:"required,min=2"`
	Prenom    string `json:"prenom" validate:"required,min=2"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password,omitempty" validate:"omitempty,min=6"`
	Role      string `json:"role" validate:"required,oneof=admin medecin secretaire patient"`
	Telephone string `json:"telephone" validate:"omitempty,min=8,max=20"`
	Adresse   string `json:"adresse" validate:"omitempty"`
}
