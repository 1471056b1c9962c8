package bookingflow

import (
	"fmt"
	"reflect"
	"strings"

	"shujia/models"

	"github.com/go-playground/validator/v10"
)

// Violation is one field-level schema failure, addressed by the field's json
// path so clients can attach it to the offending input.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v Violation) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

// Violations is the complete ordered list of schema failures for one submit.
type Violations []Violation

func (v Violations) Error() string {
	if len(v) == 0 {
		return ""
	}
	messages := make([]string, 0, len(v))
	for _, violation := range v {
		messages = append(messages, violation.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

// Validator checks booking and payment records against their schemas.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()
	// Report violations by json tag so field paths match the wire shape.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v}
}

// ValidateBookingForm runs the full booking schema over the record and
// returns every violation. An empty result means the record may be persisted.
func (v *Validator) ValidateBookingForm(form models.BookingFormData) Violations {
	return v.translate(v.validate.Struct(form))
}

// ValidatePayment requires a proof file and a non-empty service id list.
func (v *Validator) ValidatePayment(sub models.PaymentSubmission) Violations {
	return v.translate(v.validate.Struct(sub))
}

func (v *Validator) translate(err error) Violations {
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return Violations{{Field: "", Message: err.Error()}}
	}

	var violations Violations
	for _, fieldErr := range validationErrs {
		message := fieldErr.Error()

		switch fieldErr.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", fieldErr.Field())
		case "email":
			message = fmt.Sprintf("%s must be a valid email address", fieldErr.Field())
		case "oneof":
			message = fmt.Sprintf("%s must be one of: %s", fieldErr.Field(), fieldErr.Param())
		case "datetime":
			message = fmt.Sprintf("%s must be a date in %s format", fieldErr.Field(), fieldErr.Param())
		case "min":
			message = fmt.Sprintf("%s must contain at least %s entry", fieldErr.Field(), fieldErr.Param())
		}

		violations = append(violations, Violation{
			Field:   fieldErr.Field(),
			Message: message,
		})
	}
	return violations
}
