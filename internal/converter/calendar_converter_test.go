package converter

import (
	"testing"
	"time"

	"go-medical-console/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRendezVousToEventNormalizesFormats(t *testing.T) {
	cases := []struct {
		name  string
		date  string
		heure string
		start string
		end   string
	}{
		{"plain", "2024-05-01", "09:30", "2024-05-01T09:30:00", "2024-05-01T10:00:00"},
		{"seconds", "2024-05-01", "09:30:00", "2024-05-01T09:30:00", "2024-05-01T10:00:00"},
		{"iso date", "2024-05-01T00:00:00.000000Z", "14:45:00", "2024-05-01T14:45:00", "2024-05-01T15:15:00"},
		{"time inside date", "2024-05-01 08:00:00", "", "2024-05-01T08:00:00", "2024-05-01T08:30:00"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := &entity.RendezVous{ID: 1, Date: tc.date, Heure: tc.heure, Statut: "confirme"}
			event, ok := RendezVousToEvent(r, "Léa Petit", "Dr Paul Martin", 30*time.Minute)
			require.True(t, ok)
			assert.Equal(t, tc.start, event.Start)
			assert.Equal(t, tc.end, event.End)
			assert.False(t, event.AllDay)
		})
	}
}

func TestRendezVousToEventWithoutTimeIsAllDay(t *testing.T) {
	r := &entity.RendezVous{ID: 2, Date: "2024-05-01", Statut: "en_attente"}
	event, ok := RendezVousToEvent(r, "A", "B", 30*time.Minute)
	require.True(t, ok)
	assert.True(t, event.AllDay)
	assert.Equal(t, "2024-05-01", event.Start)
	assert.Empty(t, event.End)
}

func TestRendezVousToEventRejectsUnreadableDate(t *testing.T) {
	_, ok := RendezVousToEvent(&entity.RendezVous{Date: "demain"}, "A", "B", time.Hour)
	assert.False(t, ok)
}

func TestStatusColors(t *testing.T) {
	colors := map[string]string{
		"en_attente": "#f0ad4e",
		"confirmé":   "#28a745",
		"annule":     "#dc3545",
		"Terminé":    "#007bff",
		"reporte":    "#6c757d",
	}
	for statut, color := range colors {
		event, ok := RendezVousToEvent(&entity.RendezVous{Date: "2024-05-01", Heure: "10:00", Statut: statut}, "A", "B", 0)
		require.True(t, ok)
		assert.Equal(t, color, event.Color, statut)
	}
}

func TestNamesResolveFromRelationThenCollectionsThenFallback(t *testing.T) {
	patients := []entity.Patient{{ID: 7, User: &entity.User{Prenom: "Léa", Nom: "Petit"}}}
	medecins := []entity.Medecin{{ID: 3, User: &entity.User{Prenom: "Paul", Nom: "Martin"}}}

	eager := &entity.RendezVous{
		PatientID: 99,
		Patient:   &entity.Patient{User: &entity.User{Prenom: "Marc", Nom: "Roux"}},
	}
	assert.Equal(t, "Marc Roux", PatientName(eager, patients))

	looked := &entity.RendezVous{PatientID: 7, MedecinID: 3}
	assert.Equal(t, "Léa Petit", PatientName(looked, patients))
	assert.Equal(t, "Dr Paul Martin", MedecinName(looked, medecins))

	missing := &entity.RendezVous{PatientID: 8, MedecinID: 4}
	assert.Equal(t, NotAvailable, PatientName(missing, patients))
	assert.Equal(t, NotAvailable, MedecinName(missing, nil))
}
