package validator // import "github.com/Xunop/e-livraria/internal/validator"

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/Xunop/e-livraria/internal/model"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report fields by the name the client used.
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"query", "json"} {
			name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return f.Name
	})
	validate.RegisterValidation("sortmode", validateSortMode)
	validate.RegisterValidation("viewmode", validateViewMode)
}

func validateSortMode(fl validator.FieldLevel) bool {
	value := strings.ToLower(strings.TrimSpace(fl.Field().String()))
	return string(model.ParseSortMode(value)) == value
}

func validateViewMode(fl validator.FieldLevel) bool {
	value := strings.ToLower(strings.TrimSpace(fl.Field().String()))
	return value == string(model.ViewList) || value == string(model.ViewGrid)
}

func ValidateListBooksRequest(req *model.ListBooksRequest) error {
	if req == nil {
		return errors.New("request is nil")
	}
	return validateStruct(req)
}

func ValidateViewModeRequest(req *model.ViewModeRequest) error {
	if req == nil {
		return errors.New("request is nil")
	}
	return validateStruct(req)
}

// validateStruct joins every failed rule into one readable error.
func validateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}

	messages := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		messages = append(messages, message(fe))
	}
	return errors.New(strings.Join(messages, "; "))
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "max":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s accepts at most %s values", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "gtefield":
		return fmt.Sprintf("%s must not be lower than min_price", field)
	case "sortmode":
		return fmt.Sprintf("%s must be one of relevance, price_asc, price_desc, rating_desc, recent", field)
	case "viewmode":
		return fmt.Sprintf("%s must be list or grid", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
