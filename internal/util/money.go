package util

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// FormatBRL renders an amount in Brazilian reais, e.g. "R$ 1.234,56".
// Period groups thousands and comma separates two decimal places.
func FormatBRL(v decimal.Decimal) string {
	v = v.Round(2)
	sign := ""
	if v.IsNegative() {
		sign = "-"
		v = v.Neg()
	}

	units := v.Truncate(0)
	cents := v.Sub(units).Shift(2).IntPart()
	grouped := strings.ReplaceAll(humanize.BigComma(units.BigInt()), ",", ".")
	return fmt.Sprintf("R$ %s%s,%02d", sign, grouped, cents)
}
