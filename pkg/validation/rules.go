package validation

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// registerRules registers the struct-tag rules used by the request DTOs.
func registerRules(v *validator.Validate) error {
	return v.RegisterValidation("decimal", hasPrecisionScale)
}

// hasPrecisionScale enforces `decimal=P.S`: at most S fractional digits and
// at most P significant digits overall, matching a NUMERIC(P,S) column.
func hasPrecisionScale(fl validator.FieldLevel) bool {
	precision, scale, ok := parsePrecisionScale(fl.Param())
	if !ok {
		return false
	}

	var s string
	switch fl.Field().Kind() {
	case reflect.Float32, reflect.Float64:
		s = strconv.FormatFloat(fl.Field().Float(), 'f', -1, 64)
	default:
		return false
	}

	s = strings.TrimPrefix(s, "-")
	intPart, fracPart, _ := strings.Cut(s, ".")
	if len(fracPart) > scale {
		return false
	}

	intDigits := len(intPart)
	if intPart == "0" {
		intDigits = 0
	}
	return intDigits+len(fracPart) <= precision
}

func parsePrecisionScale(param string) (precision, scale int, ok bool) {
	left, right, found := strings.Cut(param, ".")
	if !found {
		return 0, 0, false
	}
	var err error
	if precision, err = strconv.Atoi(left); err != nil {
		return 0, 0, false
	}
	if scale, err = strconv.Atoi(right); err != nil {
		return 0, 0, false
	}
	return precision, scale, true
}
