package dto

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const NonFieldErrorsKey = "non_field_errors"

// ValidationErrors maps a wire field name to its failure messages.
type ValidationErrors map[string][]string

func (e ValidationErrors) Add(field, message string) {
	e[field] = append(e[field], message)
}

func (e ValidationErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+strings.Join(e[field], " "))
	}
	return strings.Join(parts, "; ")
}

func InvalidPKError(field string, id uint) ValidationErrors {
	return ValidationErrors{field: {fmt.Sprintf("Invalid pk \"%d\" - object does not exist.", id)}}
}

// Validatable is implemented by every request DTO. Field rules run alongside
// the binding tags; object rules only run once every field is valid.
type Validatable interface {
	validateFields() ValidationErrors
	validateObject() ValidationErrors
}

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonFieldName)
	}
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// Bind decodes the JSON body into req and validates it. A nil result means req
// is safe to persist.
func Bind(c *gin.Context, req Validatable) ValidationErrors {
	errs := ValidationErrors{}

	if err := c.ShouldBindJSON(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return decodeErrors(err)
		}
		for _, fe := range fieldErrs {
			errs.Add(fe.Field(), fieldMessage(fe))
		}
	}

	for field, messages := range req.validateFields() {
		if _, failed := errs[field]; !failed {
			errs[field] = messages
		}
	}
	if len(errs) > 0 {
		return errs
	}

	if objErrs := req.validateObject(); len(objErrs) > 0 {
		return objErrs
	}
	return nil
}

func decodeErrors(err error) ValidationErrors {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return ValidationErrors{typeErr.Field: {
			fmt.Sprintf("Incorrect type. Expected %s, received %s.", typeErr.Type.Kind(), typeErr.Value),
		}}
	}
	return ValidationErrors{NonFieldErrorsKey: {"Invalid JSON payload."}}
}

func fieldMessage(fe validator.FieldError) string {
	isString := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "max", "lte":
		if isString {
			return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
		}
		return fmt.Sprintf("Ensure this value is less than or equal to %s.", fe.Param())
	case "min", "gte":
		if isString {
			return fmt.Sprintf("Ensure this field has at least %s characters.", fe.Param())
		}
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", fe.Param())
	case "uuid":
		return "Must be a valid UUID."
	default:
		return "Invalid value."
	}
}
