// README: Common money value object used for display across modules.
package types

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

const CurrencyGBP = "GBP"

type Money struct {
	Amount   float64
	Currency string
}

func GBP(amount float64) Money {
	return Money{Amount: amount, Currency: CurrencyGBP}
}

// String rounds to two decimal places, e.g. "£74.00".
func (m Money) String() string {
	var fixed string
	if math.IsNaN(m.Amount) || math.IsInf(m.Amount, 0) {
		fixed = strconv.FormatFloat(m.Amount, 'f', 2, 64)
	} else {
		fixed = decimal.NewFromFloat(m.Amount).StringFixed(2)
	}
	switch m.Currency {
	case CurrencyGBP, "":
		return "£" + fixed
	default:
		return fixed + " " + m.Currency
	}
}
