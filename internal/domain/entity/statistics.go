package entity

import "github.com/shopspring/decimal"

// AdminStatistics is the pre-aggregated payload of /statistiques/admin.
// Members the server leaves out decode as zero.
type AdminStatistics struct {
	General    GeneralStatistics    `json:"general"`
	RendezVous RendezVousStatistics `json:"rendez_vous"`
	Finances   FinanceStatistics    `json:"finances"`
}

type GeneralStatistics struct {
	TotalMedecins      int `json:"total_medecins"`
	TotalPatients      int `json:"total_patients"`
	TotalSecretaires   int `json:"total_secretaires"`
	TotalRendezVous    int `json:"total_rendez_vous"`
	TotalConsultations int `json:"total_consultations"`
	TotalDepartements  int `json:"total_departements"`
	TotalSpecialites   int `json:"total_specialites"`
}

type RendezVousStatistics struct {
	AujourdHui int `json:"aujourd_hui"`
	EnAttente  int `json:"en_attente"`
	Confirmes  int `json:"confirmes"`
	Annules    int `json:"annules"`
	Termines   int `json:"termines"`
}

type FinanceStatistics struct {
	RevenusTotal       decimal.Decimal `json:"revenus_total"`
	RevenusMois        decimal.Decimal `json:"revenus_mois"`
	PaiementsEnAttente int             `json:"paiements_en_attente"`
}

// PatientSummary is the payload of /dashboard/patient. Every counter is
// optional; callers fall back to list lengths when one is absent.
type PatientSummary struct {
	Statistiques       PatientCounters `json:"statistiques"`
	ProchainRendezVous *RendezVous     `json:"prochain_rendez_vous,omitempty"`
}

type PatientCounters struct {
	TotalRendezVous    *int             `json:"total_rendez_vous,omitempty"`
	RendezVousAVenir   *int             `json:"rendez_vous_a_venir,omitempty"`
	TotalConsultations *int             `json:"total_consultations,omitempty"`
	TotalPaiements     *int             `json:"total_paiements,omitempty"`
	MontantTotalPaye   *decimal.Decimal `json:"montant_total_paye,omitempty"`
}
