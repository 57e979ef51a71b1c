package entity

// Blood groups accepted by the medical record form.
var GroupesSanguins = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

// DossierMedical is the one medical record of a patient.
type DossierMedical struct {
	ID            int64    `json:"id"`
	PatientID     int64    `json:"patient_id"`
	GroupeSanguin string   `json:"groupe_sanguin"`
	Allergies     string   `json:"allergies,omitempty"`
	Antecedents   string   `json:"antecedents,omitempty"`
	CreatedAt     string   `json:"created_at,omitempty"`
	Patient       *Patient `json:"patient,omitempty"`
}
