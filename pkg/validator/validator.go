package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()

	// Report fields under their JSON names so the console can mark the inputs.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	// Amounts travel as decimals; compare them as floats for gt/gte/lte.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	return &CustomValidator{
		validator: v,
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errors[field] = "Le champ " + field + " est obligatoire"
			case "required_without":
				errors[field] = "Le champ " + field + " est obligatoire lorsque l'autre champ n'est pas renseigné"
			case "email":
				errors[field] = "Le champ " + field + " doit être une adresse email valide"
			case "min":
				errors[field] = "Le champ " + field + " doit contenir au moins " + e.Param() + " caractères"
			case "max":
				errors[field] = "Le champ " + field + " ne doit pas dépasser " + e.Param() + " caractères"
			case "gt":
				errors[field] = "Le champ " + field + " doit être supérieur à " + e.Param()
			case "gte":
				errors[field] = "Le champ " + field + " doit être supérieur ou égal à " + e.Param()
			case "lte":
				errors[field] = "Le champ " + field + " doit être inférieur ou égal à " + e.Param()
			case "oneof":
				errors[field] = "Le champ " + field + " doit valoir l'une des valeurs : " + e.Param()
			case "eqfield":
				errors[field] = "Le champ " + field + " ne correspond pas"
			case "datetime":
				errors[field] = "Le champ " + field + " doit respecter le format " + e.Param()
			default:
				errors[field] = "Le champ " + field + " est invalide"
			}
		}
	}

	return errors
}
