package usecase

import (
	"context"
	"testing"
	"time"

	"go-medical-console/internal/converter"
	"go-medical-console/internal/delivery/dto"
	"go-medical-console/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendarJoinsNamesAndSortsByStart(t *testing.T) {
	f := clinicFakes()
	uc := NewCalendarUsecase(quietLogger(), f.repositories(), 30*time.Minute)

	events, err := uc.GetEvents(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, events, 3)

	first := events[0]
	assert.Equal(t, int64(100), first.ID)
	assert.Equal(t, "Jean Petit - Dr Paul Martin", first.Title)
	assert.Equal(t, "2024-05-01T09:00:00", first.Start)
	assert.Equal(t, "2024-05-01T09:30:00", first.End)
	assert.Equal(t, entity.ColorEnAttente, first.Color)
	assert.False(t, first.AllDay)

	assert.Equal(t, entity.ColorConfirme, events[1].Color)
	assert.Equal(t, "Confirmé", events[1].ExtendedProps.StatutLabel)

	last := events[2]
	assert.True(t, last.AllDay)
	assert.Equal(t, "2024-05-03", last.Start)
	assert.Equal(t, entity.ColorAnnule, last.Color)
}

func TestCalendarShowsNotAvailableWhenPeopleFail(t *testing.T) {
	f := clinicFakes()
	f.patients.err = errUpstream
	f.medecins.err = errUpstream
	uc := NewCalendarUsecase(quietLogger(), f.repositories(), time.Hour)

	events, err := uc.GetEvents(context.Background(), &dto.CalendarQuery{})
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, converter.NotAvailable+" - "+converter.NotAvailable, events[0].Title)
}

func TestCalendarFailsWithoutAppointments(t *testing.T) {
	f := clinicFakes()
	f.rendezVous.err = errUpstream
	uc := NewCalendarUsecase(quietLogger(), f.repositories(), time.Hour)

	events, err := uc.GetEvents(context.Background(), nil)
	assert.ErrorIs(t, err, errUpstream)
	assert.Nil(t, events)
}

func TestCalendarFilters(t *testing.T) {
	f := clinicFakes()
	f.rendezVous.items = append(f.rendezVous.items, entity.RendezVous{ID: 103, MedecinID: 1, Date: "pas une date"})
	uc := NewCalendarUsecase(quietLogger(), f.repositories(), time.Hour)

	events, err := uc.GetEvents(context.Background(), &dto.CalendarQuery{MedecinID: 1})
	require.NoError(t, err)
	require.Len(t, events, 2)

	events, err = uc.GetEvents(context.Background(), &dto.CalendarQuery{Statut: "Annulé"})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, int64(102), events[0].ID)

	events, err = uc.GetEvents(context.Background(), &dto.CalendarQuery{Start: "2024-05-02T00:00:00", End: "2024-05-02"})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, int64(101), events[0].ID)
}
