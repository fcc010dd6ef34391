package catalog

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// EffectivePrice is the list price after the discount percentage is applied,
// rounded to the nearest whole unit. Out-of-range discounts are clamped so
// the result can never exceed the list price or go negative.
func EffectivePrice(price, discount float64) float64 {
	if discount < 0 {
		discount = 0
	}
	if discount > 100 {
		discount = 100
	}
	v := math.Round(price - price*discount/100)
	if v < 0 {
		return 0
	}
	return v
}

var pricePrinter = message.NewPrinter(language.French)

// FormatPrice renders an amount for display, with French digit grouping and
// the currency code appended ("12 500 FCFA").
func FormatPrice(amount float64, currency string) string {
	if currency == "" {
		currency = "FCFA"
	}
	return pricePrinter.Sprintf("%v %s", number.Decimal(amount, number.MaxFractionDigits(0)), currency)
}
