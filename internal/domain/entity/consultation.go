package entity

type Consultation struct {
	ID               int64        `json:"id"`
	RendezVousID     int64        `json:"rendez_vous_id"`
	DateConsultation string       `json:"date_consultation,omitempty"`
	Motif            string       `json:"motif,omitempty"`
	Diagnostic       string       `json:"diagnostic,omitempty"`
	Notes            string       `json:"notes,omitempty"`
	RendezVous       *RendezVous  `json:"rendez_vous,omitempty"`
	Paiement         *Paiement    `json:"paiement,omitempty"`
	CompteRendu      *CompteRendu `json:"compte_rendu,omitempty"`
}

// Day falls back to the appointment date when the consultation has none.
func (c *Consultation) Day() string {
	if d := DatePart(c.DateConsultation); d != "" {
		return d
	}
	if c.RendezVous != nil {
		return c.RendezVous.Day()
	}
	return ""
}

// CompteRendu is the one report attached to a consultation.
type CompteRendu struct {
	ID             int64         `json:"id"`
	ConsultationID int64         `json:"consultation_id"`
	Diagnostic     string        `json:"diagnostic,omitempty"`
	Traitement     string        `json:"traitement,omitempty"`
	Observations   string        `json:"observations,omitempty"`
	Consultation   *Consultation `json:"consultation,omitempty"`
}
