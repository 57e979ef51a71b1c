package converter

import (
	"time"

	"go-medical-console/internal/delivery/dto"
	"go-medical-console/internal/domain/entity"
)

// NotAvailable stands in for a name that could not be resolved.
const NotAvailable = "N/A"

const eventLayout = "2006-01-02T15:04:05"

// PatientName prefers the eager-loaded patient, then looks the id up in
// patients.
func PatientName(r *entity.RendezVous, patients []entity.Patient) string {
	if name := r.Patient.DisplayName(); name != "" {
		return name
	}
	for i := range patients {
		if patients[i].ID == r.PatientID {
			if name := patients[i].DisplayName(); name != "" {
				return name
			}
		}
	}
	return NotAvailable
}

// MedecinName prefers the eager-loaded doctor, then looks the id up in
// medecins.
func MedecinName(r *entity.RendezVous, medecins []entity.Medecin) string {
	if name := r.Medecin.DisplayName(); name != "" {
		return name
	}
	for i := range medecins {
		if medecins[i].ID == r.MedecinID {
			if name := medecins[i].DisplayName(); name != "" {
				return name
			}
		}
	}
	return NotAvailable
}

// RendezVousToEvent maps an appointment to a calendar event lasting
// duration. Appointments without a time become all-day events; ok is
// false when the date cannot be read.
func RendezVousToEvent(r *entity.RendezVous, patientName, medecinName string, duration time.Duration) (event dto.CalendarEvent, ok bool) {
	day := r.Day()
	date, err := time.Parse(time.DateOnly, day)
	if err != nil {
		return dto.CalendarEvent{}, false
	}

	status := r.Status()
	event = dto.CalendarEvent{
		ID:    r.ID,
		Title: patientName + " - " + medecinName,
		Color: status.Color(),
		ExtendedProps: dto.CalendarEventProps{
			RendezVousID: r.ID,
			PatientNom:   patientName,
			MedecinNom:   medecinName,
			Motif:        r.Motif,
			Statut:       string(status),
			StatutLabel:  status.Label(),
		},
	}

	clock, err := time.Parse("15:04", r.Time())
	if err != nil {
		event.AllDay = true
		event.Start = date.Format(time.DateOnly)
		return event, true
	}

	start := date.Add(time.Duration(clock.Hour())*time.Hour + time.Duration(clock.Minute())*time.Minute)
	event.Start = start.Format(eventLayout)
	if duration > 0 {
		event.End = start.Add(duration).Format(eventLayout)
	}
	return event, true
}
