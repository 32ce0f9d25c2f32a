package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Dimension rule messages. The height text claims 2 decimal places while the
// rule enforces 3; kept verbatim until product confirms the intended
// precision.
var dimensionMessages = map[string]string{
	"length": "Length must be greater than 0 and have at most 2 decimal places",
	"width":  "Width must be greater than 0 and have at most 2 decimal places",
	"height": "Height must be greater than 0 and have at most 2 decimal places",
	"weight": "Weight must be greater than 0 and have at most 3 decimal places",
}

// Messages converts a validation failure into the field-keyed error map
// returned with a 400 response.
func Messages(err error) map[string][]string {
	out := make(map[string][]string)

	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		out["request"] = []string{"Request is not valid"}
		return out
	}

	for _, fe := range errs {
		out[fe.Field()] = append(out[fe.Field()], messageFor(fe))
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	if msg, found := dimensionMessages[fe.Field()]; found {
		return msg
	}

	name := title(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", name)
	case "max":
		return fmt.Sprintf("%s must not exceed %s characters", name, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", name, fe.Param())
	default:
		return fmt.Sprintf("%s is not valid", name)
	}
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
