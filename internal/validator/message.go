package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required":    "{field} is required",
		"gt":          "{field} must be greater than {param}",
		"gte":         "{field} must be greater than or equal to {param}",
		"lte":         "{field} must be less than or equal to {param}",
		"max":         "{field} must be at most {param} characters",
		"gtefield":    "{field} must be on or after {param}",
		"budgetlevel": "{field} must be one of low, medium, high, other",
	}
)

func message(err error) string {
	var valErrors val.ValidationErrors

	if errors.As(err, &valErrors) {
		for _, valErr := range valErrors {
			errStr := messages[valErr.Tag()]
			if errStr != "" {
				errStr = strings.ReplaceAll(errStr, "{field}", valErr.Field())
				errStr = strings.ReplaceAll(errStr, "{param}", paramName(valErr))

				return errStr
			}
		}

		return valErrors.Error()
	}

	return err.Error()
}

// paramName turns field references (gtefield=StartDate) into json names
func paramName(fe val.FieldError) string {
	if fe.Tag() == "gtefield" {
		switch fe.Param() {
		case "StartDate":
			return "start_date"
		}
	}
	return fe.Param()
}
