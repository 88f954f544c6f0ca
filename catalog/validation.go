package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// registering a static tag with a valid func can't fail
	_ = v.RegisterValidation("title", validateTitle)

	return v
}

func validateTitle(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// validateTemplate returns nil or ErrInvalidTemplate joined with one error per violated field.
func validateTemplate(t Template) error {
	err := validate.Struct(t)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Join(ErrInvalidTemplate, err)
	}

	details := make([]error, 0, len(fieldErrs)+1)
	details = append(details, ErrInvalidTemplate)

	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "title":
			details = append(details, fmt.Errorf("%s must not be blank", fe.Field()))
		case "gte":
			details = append(details, fmt.Errorf("%s must be greater than or equal to %s", fe.Field(), fe.Param()))
		default:
			details = append(details, fmt.Errorf("%s is invalid", fe.Field()))
		}
	}

	return errors.Join(details...)
}
