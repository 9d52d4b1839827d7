package domain

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance. Struct validation via tags is
// the only schema check in the system; everything upstream of it (the text
// parser) is best-effort and never fails.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// "required" alone accepts whitespace-only strings; titles like "   "
	// must be rejected.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return v
}

// Validate checks the input against its schema tags. Violations are returned
// as a *ValidationError keyed by lowercased field name.
func (t *TaskInput) Validate() error {
	err := validate.Struct(t)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[strings.ToLower(fe.Field())] = validationMessage(fe)
	}
	return &ValidationError{Fields: fields}
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "must not be empty"
	case "datetime":
		return "must be a date in YYYY-MM-DD form"
	case "url":
		return "must be a valid URL"
	default:
		return "failed " + fe.Tag() + " validation"
	}
}
