package chart

import (
	"math/big"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatOmega renders a multiplicity for humans.
// Values with at most maxDigits decimal digits that fit in int64 are printed
// exactly with digit grouping ("92,378"); anything longer switches to
// three significant digits in e-notation ("1.23e+45").
func FormatOmega(v *big.Int, maxDigits int) string {
	if v == nil {
		return "0"
	}
	if v.IsInt64() && len(v.String()) <= maxDigits {
		return message.NewPrinter(language.English).Sprintf("%d", v.Int64())
	}

	return new(big.Float).SetInt(v).Text('e', 2)
}

// formatPercent renders p ∈ [0,1] as a percentage with two decimals.
func formatPercent(p float64) string {
	return message.NewPrinter(language.English).Sprintf("%.2f%%", p*100)
}
