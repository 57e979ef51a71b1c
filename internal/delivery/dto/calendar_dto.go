package dto

import (
	"net/url"
	"strings"

	"github.com/spf13/cast"
)

type CalendarQuery struct {
	MedecinID int64
	Statut    string
	Start     string
	End       string
}

func ParseCalendarQuery(values url.Values) *CalendarQuery {
	return &CalendarQuery{
		MedecinID: cast.ToInt64(values.Get("medecin_id")),
		Statut:    strings.TrimSpace(values.Get("statut")),
		Start:     strings.TrimSpace(values.Get("start")),
		End:       strings.TrimSpace(values.Get("end")),
	}
}

// CalendarEvent is shaped for the calendar widget of the console.
type CalendarEvent struct {
	ID            int64              `json:"id"`
	Title         string             `json:"title"`
	Start         string             `json:"start"`
	End           string             `json:"end,omitempty"`
	AllDay        bool               `json:"allDay"`
	Color         string             `json:"color"`
	ExtendedProps CalendarEventProps `json:"extendedProps"`
}

type CalendarEventProps struct {
	RendezVousID int64  `json:"rendezVousId"`
	PatientNom   string `json:"patientNom"`
	MedecinNom   string `json:"medecinNom"`
	Motif        string `json:"motif,omitempty"`
	Statut       string `json:"statut"`
	StatutLabel  string `json:"statutLabel"`
}

type StatusOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Color string `json:"color"`
}
