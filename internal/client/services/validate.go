package services

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/thentamil/novelreader/internal/client/api"
)

// newValidator builds the validator shared by the services, reporting field
// names by their json tag so client-side failures look exactly like the
// server's validation errors.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validatePayload checks p before dispatch. Failures come back as *api.Error
// with status 400 and per-field messages, the same shape a server rejection
// would have.
func validatePayload(v *validator.Validate, p any) error {
	err := v.Struct(p)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make([]api.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, api.FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
	}

	return &api.Error{
		Status:  http.StatusBadRequest,
		Message: "validation failed",
		Errors:  fields,
		Code:    "VALIDATION",
	}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

// messageResponse is the payload of endpoints that answer with a
// confirmation message only.
type messageResponse struct {
	Message string `json:"message"`
}
