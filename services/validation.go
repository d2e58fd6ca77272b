package services

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var (
	validate   *validator.Validate
	translator ut.Translator
)

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	english := en.New()
	uni := ut.New(english, english)
	translator, _ = uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(validate, translator)

	// Report errors under the form field names used by the templates.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// HouseInput is the parsed admin house form.
type HouseInput struct {
	Title       string   `form:"title" validate:"required,max=200"`
	Description string   `form:"description" validate:"max=5000"`
	Address     string   `form:"address" validate:"required,max=300"`
	Price       float64  `form:"price" validate:"gt=0"`
	Status      string   `form:"status" validate:"required,oneof=presale available sold"`
	Bedrooms    int      `form:"bedrooms" validate:"gte=0,lte=50"`
	Bathrooms   int      `form:"bathrooms" validate:"gte=0,lte=50"`
	Area        float64  `form:"area" validate:"gte=0"`
	LandSize    float64  `form:"land_size" validate:"gte=0"`
	Images      []string `form:"images" validate:"max=30,dive,url"`
	Lat         *float64 `form:"lat" validate:"omitnil,latitude"`
	Lng         *float64 `form:"lng" validate:"omitnil,longitude"`
}

// LoginInput is the login form.
type LoginInput struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required,min=8,alphanum"`
}

// ProjectInput is the new project form.
type ProjectInput struct {
	Name            string  `form:"name" validate:"required,max=200"`
	Address         string  `form:"address" validate:"max=300"`
	StartDate       string  `form:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EstimatedBudget float64 `form:"estimated_budget" validate:"gte=0"`
	ExpectedProfit  float64 `form:"expected_profit" validate:"gte=0"`
}

// ExpenseInput, PayrollInput and MaterialPurchaseInput are the add-entry
// forms on the project detail tabs.
type ExpenseInput struct {
	Description string  `form:"description" validate:"required,max=300"`
	Amount      float64 `form:"amount" validate:"gt=0"`
	Date        string  `form:"date" validate:"omitempty,datetime=2006-01-02"`
}

type PayrollInput struct {
	Week    string  `form:"week" validate:"max=50"`
	Worker  string  `form:"worker" validate:"required,max=200"`
	Salary  float64 `form:"salary" validate:"gte=0"`
	Payment float64 `form:"payment" validate:"gte=0"`
	Notes   string  `form:"notes" validate:"max=500"`
}

type MaterialPurchaseInput struct {
	Material string  `form:"material" validate:"required,max=200"`
	Quantity float64 `form:"quantity" validate:"gte=0"`
	Price    float64 `form:"price" validate:"gte=0"`
	Unit     string  `form:"unit" validate:"max=50"`
	Details  string  `form:"details" validate:"max=500"`
}

// Validate checks v against its struct tags and returns field name =>
// message. A nil map means the input is valid.
func Validate(v any) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"_": err.Error()}
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		// dive errors are reported as images[2]; keep them on the form field.
		if i := strings.IndexByte(field, '['); i >= 0 {
			field = field[:i]
		}
		if _, exists := out[field]; !exists {
			out[field] = fe.Translate(translator)
		}
	}
	return out
}
