package entity

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

type RendezVousStatus string

const (
	StatusEnAttente RendezVousStatus = "en_attente"
	StatusConfirme  RendezVousStatus = "confirme"
	StatusAnnule    RendezVousStatus = "annule"
	StatusTermine   RendezVousStatus = "termine"
)

// Calendar colors per status.
const (
	ColorEnAttente = "#f0ad4e"
	ColorConfirme  = "#28a745"
	ColorAnnule    = "#dc3545"
	ColorTermine   = "#007bff"
	ColorInconnu   = "#6c757d"
)

// RendezVousStatuses is the fixed set offered by the status picker. Any of
// them may be set from any current status.
var RendezVousStatuses = []RendezVousStatus{StatusEnAttente, StatusConfirme, StatusAnnule, StatusTermine}

func (s RendezVousStatus) IsValid() bool {
	switch s {
	case StatusEnAttente, StatusConfirme, StatusAnnule, StatusTermine:
		return true
	}
	return false
}

func (s RendezVousStatus) Label() string {
	switch s {
	case StatusEnAttente:
		return "En attente"
	case StatusConfirme:
		return "Confirmé"
	case StatusAnnule:
		return "Annulé"
	case StatusTermine:
		return "Terminé"
	default:
		return "Inconnu"
	}
}

func (s RendezVousStatus) Color() string {
	switch s {
	case StatusEnAttente:
		return ColorEnAttente
	case StatusConfirme:
		return ColorConfirme
	case StatusAnnule:
		return ColorAnnule
	case StatusTermine:
		return ColorTermine
	default:
		return ColorInconnu
	}
}

// Pending reports whether the appointment still has to take place.
func (s RendezVousStatus) Pending() bool {
	return s == StatusEnAttente || s == StatusConfirme
}

// Fold lowercases s and strips diacritics, so "Confirmé" folds to "confirme".
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// NormalizeStatus maps accented or English spellings onto the canonical
// values. Unrecognized input is returned folded, and is not IsValid.
func NormalizeStatus(raw string) RendezVousStatus {
	s := strings.TrimSpace(Fold(raw))
	switch s {
	case "en_attente", "en attente", "en-attente", "pending":
		return StatusEnAttente
	case "confirme", "confirmed":
		return StatusConfirme
	case "annule", "cancelled", "canceled":
		return StatusAnnule
	case "termine", "completed", "done":
		return StatusTermine
	}
	return RendezVousStatus(s)
}

type RendezVous struct {
	ID        int64    `json:"id"`
	PatientID int64    `json:"patient_id"`
	MedecinID int64    `json:"medecin_id"`
	Date      string   `json:"date"`
	Heure     string   `json:"heure,omitempty"`
	Motif     string   `json:"motif,omitempty"`
	Statut    string   `json:"statut"`
	Patient   *Patient `json:"patient,omitempty"`
	Medecin   *Medecin `json:"medecin,omitempty"`
}

func (r *RendezVous) Status() RendezVousStatus {
	return NormalizeStatus(r.Statut)
}

// Day is the appointment date as YYYY-MM-DD.
func (r *RendezVous) Day() string {
	return DatePart(r.Date)
}

// Time is the appointment time as HH:MM, read from heure or, failing
// that, from a timestamp in date.
func (r *RendezVous) Time() string {
	if t := TimePart(r.Heure); t != "" {
		return t
	}
	if strings.ContainsAny(strings.TrimSpace(r.Date), " T") {
		return TimePart(r.Date)
	}
	return ""
}

// SortKey orders appointments by date then time.
func (r *RendezVous) SortKey() string {
	return r.Day() + " " + r.Time()
}
