package entity

type Departement struct {
	ID          int64  `json:"id"`
	Nom         string `json:"nom"`
	Description string `json:"description,omitempty"`
}

// Specialite belongs to exactly one Departement.
type Specialite struct {
	ID            int64        `json:"id"`
	Nom           string       `json:"nom"`
	Description   string       `json:"description,omitempty"`
	DepartementID int64        `json:"departement_id"`
	Departement   *Departement `json:"departement,omitempty"`
}
