package entity

type Patient struct {
	ID             int64           `json:"id"`
	UserID         int64           `json:"user_id"`
	NumeroPatient  string          `json:"numero_patient"`
	DateNaissance  string          `json:"date_naissance,omitempty"`
	Sexe           string          `json:"sexe,omitempty"`
	User           *User           `json:"user,omitempty"`
	DossierMedical *DossierMedical `json:"dossier_medical,omitempty"`
}

func (p *Patient) DisplayName() string {
	if p == nil || p.User == nil {
		return ""
	}
	return p.User.FullName()
}

// GroupeSanguin is read from the eager-loaded medical record.
func (p *Patient) GroupeSanguin() string {
	if p == nil || p.DossierMedical == nil {
		return ""
	}
	return p.DossierMedical.GroupeSanguin
}
