// ABOUTME: Request validation for configurator and lead-capture inputs
// ABOUTME: Struct-tag validation with custom enum rules for the wizard answers

package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Atlas00000/terra-client/backend/models"
)

// ErrInvalidSelection is returned when a wizard answer is not a known enum value
var ErrInvalidSelection = errors.New("invalid selection")

// validate is a singleton validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
	mustRegister("facility", func(fl validator.FieldLevel) bool {
		return models.FacilityType(fl.Field().String()).Valid()
	})
	mustRegister("threat", func(fl validator.FieldLevel) bool {
		return models.ThreatLevel(fl.Field().String()).Valid()
	})
	mustRegister("coverage", func(fl validator.FieldLevel) bool {
		return models.CoverageArea(fl.Field().String()).Valid()
	})
}

func mustRegister(tag string, fn validator.Func) {
	if err := validate.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("registering %s validation: %v", tag, err))
	}
}

// sanitizeForLog removes control characters from strings to prevent log injection
// when including user input in error messages
func sanitizeForLog(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 32 || r == 127 {
			return -1
		}
		return r
	}, s)
}

// ValidateConfigurationInput checks that all three wizard answers are present and known
func ValidateConfigurationInput(in models.ConfigurationInput) error {
	if err := validate.Struct(in); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// ParseConfigurationInput builds and validates an input from raw strings
func ParseConfigurationInput(facility, threat, coverage string) (models.ConfigurationInput, error) {
	in := models.ConfigurationInput{
		FacilityType: models.FacilityType(strings.TrimSpace(facility)),
		ThreatLevel:  models.ThreatLevel(strings.TrimSpace(threat)),
		CoverageArea: models.CoverageArea(strings.TrimSpace(coverage)),
	}
	return in, ValidateConfigurationInput(in)
}

func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	for _, e := range validationErrs {
		field := e.Field()
		value := sanitizeForLog(fmt.Sprintf("%v", e.Value()))
		switch e.Tag() {
		case "required":
			return fmt.Errorf("%w: %s is required", ErrInvalidSelection, field)
		case "facility", "threat", "coverage":
			return fmt.Errorf("%w: unknown %s %q", ErrInvalidSelection, e.Tag(), value)
		default:
			return fmt.Errorf("%w: %s failed %s", ErrInvalidSelection, field, e.Tag())
		}
	}
	return err
}
