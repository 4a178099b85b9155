package handler

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/bibliotech/catalog-api/internal/core/domain"
)

// dateLayout is the wire format for publication dates.
const dateLayout = "2006-01-02"

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
// Validation is non-short-circuiting: every violated field is reported.
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to
// echo.Echo.Validator. Two custom validations are registered:
//
//	notfuture  – a dateLayout string that must not be after today
//	imageurl   – an HTTP(S) URL with a recognized image extension
func NewValidator() *echoValidator {
	v := validator.New()

	_ = v.RegisterValidation("notfuture", func(fl validator.FieldLevel) bool {
		d, err := time.Parse(dateLayout, fl.Field().String())
		if err != nil {
			// format violations belong to the datetime tag
			return true
		}
		return !d.After(time.Now().UTC())
	})

	_ = v.RegisterValidation("imageurl", func(fl validator.FieldLevel) bool {
		return domain.ValidImageURL(fl.Field().String())
	})

	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface. On failure it returns a
// *domain.ValidationError carrying one message per violated field.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			msgs := make([]string, 0, len(ve))
			for _, fe := range ve {
				msgs = append(msgs, fieldError(fe))
			}
			return domain.NewValidationError(msgs...)
		}
		return err
	}
	return nil
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := jsonFieldName(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s cannot exceed %s characters", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "datetime":
		return fmt.Sprintf("%s must be a valid date (%s)", field, fe.Param())
	case "notfuture":
		return field + " cannot be in the future"
	case "imageurl":
		return field + " must be an HTTP(S) URL ending in jpg, jpeg, png, gif or webp"
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}

// jsonFieldName lower-cases the first rune of a struct field so messages
// read like the wire names (DisplayName → displayName).
func jsonFieldName(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}
