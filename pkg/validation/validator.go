package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// CustomValidator adapts go-playground/validator to echo's Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// New builds the validator used by the HTTP surface. Field names in
// validation failures follow the json tag, so error maps are keyed the way
// the wire format spells the fields.
func New() *CustomValidator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	registerNullTypes(v)

	// Rules are critical: the server must not start without them.
	if err := registerRules(v); err != nil {
		panic("registering validation rules: " + err.Error())
	}

	return &CustomValidator{validator: v}
}
