package entity

import "github.com/shopspring/decimal"

const (
	PaiementEnAttente = "en_attente"
	PaiementValide    = "valide"
	PaiementAnnule    = "annule"
)

var (
	PaiementStatuts = []string{PaiementEnAttente, PaiementValide, PaiementAnnule}
	ModesPaiement   = []string{"especes", "carte", "cheque", "virement", "assurance"}
)

type Paiement struct {
	ID             int64           `json:"id"`
	ConsultationID int64           `json:"consultation_id"`
	Montant        decimal.Decimal `json:"montant"`
	ModePaiement   string          `json:"mode_paiement"`
	Statut         string          `json:"statut"`
	DatePaiement   string          `json:"date_paiement,omitempty"`
	Reference      string          `json:"reference,omitempty"`
	Consultation   *Consultation   `json:"consultation,omitempty"`
}

func (p *Paiement) StatutNormalise() string {
	return Fold(p.Statut)
}

func (p *Paiement) IsValide() bool {
	return p.StatutNormalise() == PaiementValide
}

func (p *Paiement) IsEnAttente() bool {
	return p.StatutNormalise() == PaiementEnAttente
}
