package api

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"etherlite-site/pkg/models"
)

var registerOnce sync.Once

// RegisterValidators adds the custom rules used by the contact form to gin's
// validator and reports fields by their JSON names.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
	})
}

var fieldLabels = map[string]string{
	models.FieldFirstName: "First Name",
	models.FieldLastName:  "Last Name",
	models.FieldEmail:     "Email Address",
	models.FieldCompany:   "Company",
	models.FieldJobTitle:  "Job Title",
	models.FieldMessage:   "Message",
}

// validateContact returns one message per invalid field, or nil.
func validateContact(data *models.ContactFormData) map[string]string {
	return fieldErrors(binding.Validator.ValidateStruct(data))
}

func fieldErrors(err error) map[string]string {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"form": err.Error()}
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		if _, seen := out[field]; seen {
			continue
		}
		label, ok := fieldLabels[field]
		if !ok {
			label = field
		}
		switch fe.Tag() {
		case "required", "notblank":
			out[field] = fmt.Sprintf("%s is required", label)
		case "email":
			out[field] = fmt.Sprintf("%s must be a valid email address", label)
		default:
			out[field] = fmt.Sprintf("%s is invalid", label)
		}
	}
	return out
}
