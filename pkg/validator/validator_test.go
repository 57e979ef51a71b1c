package validator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupForm struct {
	Email                string `json:"email" validate:"required,email"`
	Password             string `json:"password" validate:"required,min=8"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
}

type paymentForm struct {
	Montant decimal.Decimal `json:"montant" validate:"required,gt=0"`
	Mode    string          `json:"mode_paiement" validate:"required,oneof=especes carte"`
}

func TestFormatValidationErrorsUsesJSONNames(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&signupForm{Email: "pas-un-email", Password: "court", PasswordConfirmation: "autre"})
	require.Error(t, err)

	errs := v.FormatValidationErrors(err)
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "password")
	assert.Equal(t, "Le champ password_confirmation ne correspond pas", errs["password_confirmation"])
}

func TestMatchingPasswordsPass(t *testing.T) {
	v := NewValidator()
	assert.NoError(t, v.Validate(&signupForm{Email: "a@b.fr", Password: "motdepasse", PasswordConfirmation: "motdepasse"}))
}

func TestDecimalAmounts(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Validate(&paymentForm{Montant: decimal.RequireFromString("25.50"), Mode: "carte"}))

	err := v.Validate(&paymentForm{Montant: decimal.RequireFromString("-1"), Mode: "bitcoin"})
	require.Error(t, err)
	errs := v.FormatValidationErrors(err)
	assert.Contains(t, errs, "montant")
	assert.Contains(t, errs["mode_paiement"], "especes carte")
}

type slotForm struct {
	Date        string `json:"date,omitempty" validate:"required_without=JourSemaine,omitempty,datetime=2006-01-02"`
	JourSemaine string `json:"jour_semaine,omitempty" validate:"required_without=Date,omitempty,oneof=lundi mardi"`
}

func TestEitherDateOrWeekday(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Validate(&slotForm{Date: "2024-05-01"}))
	assert.NoError(t, v.Validate(&slotForm{JourSemaine: "mardi"}))

	err := v.Validate(&slotForm{})
	require.Error(t, err)
	errs := v.FormatValidationErrors(err)
	assert.Contains(t, errs["date"], "obligatoire")
	assert.Contains(t, errs["jour_semaine"], "obligatoire")

	err = v.Validate(&slotForm{Date: "01/05/2024"})
	require.Error(t, err)
	assert.Contains(t, v.FormatValidationErrors(err)["date"], "2006-01-02")
}
