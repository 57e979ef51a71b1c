package dto

import (
	"go-medical-console/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// DashboardResponse carries the block matching the session role; the
// other blocks are omitted.
type DashboardResponse struct {
	Role       string               `json:"role"`
	Admin      *AdminDashboard      `json:"admin,omitempty"`
	Medecin    *MedecinDashboard    `json:"medecin,omitempty"`
	Secretaire *SecretaireDashboard `json:"secretaire,omitempty"`
	Patient    *PatientDashboard    `json:"patient,omitempty"`
}

type AdminDashboard struct {
	TotalUsers         int             `json:"totalUsers"`
	TotalMedecins      int             `json:"totalMedecins"`
	TotalPatients      int             `json:"totalPatients"`
	TotalSecretaires   int             `json:"totalSecretaires"`
	TotalRendezVous    int             `json:"totalRendezVous"`
	TotalConsultations int             `json:"totalConsultations"`
	TotalDepartements  int             `json:"totalDepartements"`
	TotalSpecialites   int             `json:"totalSpecialites"`
	RdvAujourdhui      int             `json:"rdvAujourdhui"`
	RdvEnAttente       int             `json:"rdvEnAttente"`
	RdvConfirmes       int             `json:"rdvConfirmes"`
	RdvAnnules         int             `json:"rdvAnnules"`
	RdvTermines        int             `json:"rdvTermines"`
	RevenusTotal       decimal.Decimal `json:"revenusTotal"`
	RevenusMois        decimal.Decimal `json:"revenusMois"`
	PaiementsEnAttente int             `json:"paiementsEnAttente"`
}

type MedecinDashboard struct {
	RdvAujourdhui      int                 `json:"rdvAujourdhui"`
	RdvEnAttente       int                 `json:"rdvEnAttente"`
	TotalRendezVous    int                 `json:"totalRendezVous"`
	TotalConsultations int                 `json:"totalConsultations"`
	TotalPatients      int                 `json:"totalPatients"`
	ProchainRendezVous *entity.RendezVous  `json:"prochainRendezVous"`
	RendezVousDuJour   []entity.RendezVous `json:"rendezVousDuJour"`
}

type SecretaireDashboard struct {
	RdvAujourdhui      int                 `json:"rdvAujourdhui"`
	RdvEnAttente       int                 `json:"rdvEnAttente"`
	TotalRendezVous    int                 `json:"totalRendezVous"`
	TotalPaiements     int                 `json:"totalPaiements"`
	PaiementsEnAttente int                 `json:"paiementsEnAttente"`
	MontantEncaisse    decimal.Decimal     `json:"montantEncaisse"`
	RendezVousDuJour   []entity.RendezVous `json:"rendezVousDuJour"`
}

type PatientDashboard struct {
	TotalRendezVous    int                `json:"totalRendezVous"`
	RendezVousAVenir   int                `json:"rendezVousAVenir"`
	TotalConsultations int                `json:"totalConsultations"`
	TotalPaiements     int                `json:"totalPaiements"`
	MontantTotalPaye   decimal.Decimal    `json:"montantTotalPaye"`
	ProchainRendezVous *entity.RendezVous `json:"prochainRendezVous"`
}
