package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/PotionCraft_Go/internal/catalog"
	"github.com/osse101/PotionCraft_Go/internal/domain"
)

// Custom validation tags
const (
	TagArtTag    = "arttag"
	TagClaimKind = "claimkind"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	_ = v.RegisterValidation(TagArtTag, validateArtTag)
	_ = v.RegisterValidation(TagClaimKind, validateClaimKind)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map
// This prevents leaking internal struct names and provides cleaner error messages
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "gt":
			errs[field] = fmt.Sprintf("Must be greater than %s", e.Param())
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s characters", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s characters", e.Param())
		case "excludesall":
			errs[field] = "Contains invalid characters"
		case TagArtTag:
			errs[field] = "Unknown style"
		case TagClaimKind:
			errs[field] = "Must be inventory or worldpool"
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// validateArtTag accepts an empty style or one from the tag vocabulary
func validateArtTag(fl validator.FieldLevel) bool {
	style := strings.TrimSpace(fl.Field().String())
	if style == "" {
		return true
	}
	return catalog.IsArtTag(strings.ToLower(style))
}

func validateClaimKind(fl validator.FieldLevel) bool {
	return domain.ClaimKind(fl.Field().String()).Valid()
}
