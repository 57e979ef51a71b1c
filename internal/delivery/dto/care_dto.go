package dto

import "github.com/shopspring/decimal"

// Request DTOs

type RendezVousRequest struct {
	PatientID int64  `json:"patient_id" validate:"required,gt=0"`
	MedecinID int64  `json:"medecin_id" validate:"required,gt=0"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	Heure     string `json:"heure" validate:"required,datetime=15:04"`
	Motif     string `json:"motif" validate:"required,min=3,max=500"`
	Statut    string `json:"statut,omitempty" validate:"omitempty,oneof=en_attente confirme annule termine"`
}

// UpdateStatusRequest also accepts accented and English spellings.
type UpdateStatusRequest struct {
	Statut string `json:"statut" validate:"required"`
}

type ConsultationRequest struct {
	RendezVousID     int64  `json:"rendez_vous_id" validate:"required,gt=0"`
	DateConsultation string `json:"date_consultation" validate:"required,datetime=2006-01-02"`
	Motif            string `json:"motif" validate:"omitempty,max=500"`
	Diagnostic       string `json:"diagnostic" validate:"required,min=3"`
	Notes            string `json:"notes" validate:"omitempty"`
}

type CompteRenduRequest struct {
	ConsultationID int64  `json:"consultation_id" validate:"required,gt=0"`
	Diagnostic     string `json:"diagnostic" validate:"required,min=3"`
	Traitement     string `json:"traitement" validate:"required,min=3"`
	Observations   string `json:"observations" validate:"omitempty"`
}

type PaiementRequest struct {
	ConsultationID int64           `json:"consultation_id" validate:"required,gt=0"`
	Montant        decimal.Decimal `json:"montant" validate:"required,gt=0"`
	ModePaiement   string          `json:"mode_paiement" validate:"required,oneof=especes carte cheque virement assurance"`
	Statut         string          `json:"statut" validate:"required,oneof=en_attente valide annule"`
	DatePaiement   string          `json:"date_paiement" validate:"omitempty,datetime=2006-01-02"`
	Reference      string          `json:"reference" validate:"omitempty,max=100"`
}

type DisponibiliteRequest struct {
	MedecinID   int64  `json:"medecin_id" validate:"required,gt=0"`
	Date        string `json:"date,omitempty" validate:"required_without=JourSemaine,omitempty,datetime=2006-01-02"`
	JourSemaine string `json:"jour_semaine,omitempty" validate:"required_without=Date,omitempty,oneof=lundi mardi mercredi jeudi vendredi samedi dimanche"`
	HeureDebut  string `json:"heure_debut" validate:"required,datetime=15:04"`
	HeureFin    string `json:"heure_fin" validate:"required,datetime=15:04"`
	Recurrent   bool   `json:"recurrent"`
}

type DossierMedicalRequest struct {
	PatientID     int64  `json:"patient_id" validate:"required,gt=0"`
	GroupeSanguin string `json:"groupe_sanguin" validate:"required,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Allergies     string `json:"allergies" validate:"omitempty"`
	Antecedents   string `json:"antecedents" validate:"omitempty"`
}
