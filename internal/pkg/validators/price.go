package validators

import (
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var maxPrice = decimal.NewFromInt(1000)

// PriceValidation validates a recipe price: non-negative, below 1000 and
// carrying at most two decimal places.
func PriceValidation(fl validator.FieldLevel) bool {
	price, ok := fl.Field().Interface().(decimal.Decimal)
	if !ok {
		return false
	}
	if price.IsNegative() {
		return false
	}
	if price.GreaterThanOrEqual(maxPrice) {
		return false
	}
	return price.Exponent() >= -2
}
