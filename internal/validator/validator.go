package validator

import (
	"reflect"
	"strings"

	val "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/alexivanou/travel-planner/internal/failure"
	"github.com/alexivanou/travel-planner/internal/model"
)

var validate *val.Validate

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	// Report json names so messages match the request payload
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	validate.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	if err := validate.RegisterValidation("budgetlevel", budgetLevel); err != nil {
		panic(err)
	}
}

func budgetLevel(fl val.FieldLevel) bool {
	switch strings.ToLower(fl.Field().String()) {
	case "", model.BudgetLow, model.BudgetMedium, model.BudgetHigh, model.BudgetOther:
		return true
	}
	return false
}

// ValidateStruct checks the validate tags of data and returns a validation
// failure describing the first violated rule.
func ValidateStruct(data any) error {
	if err := validate.Struct(data); err != nil {
		return failure.Validation(message(err))
	}
	return nil
}
