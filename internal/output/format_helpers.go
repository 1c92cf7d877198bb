package output

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatCurrency formats a decimal as en-US currency: "$1,440.00", "-$12.34".
func FormatCurrency(amount decimal.Decimal) string {
	r := amount.Round(2)
	sign := ""
	if r.IsNegative() {
		sign = "-"
		r = r.Neg()
	}
	whole := r.Truncate(0)
	cents := r.Sub(whole).StringFixed(2)[1:]
	p := message.NewPrinter(language.AmericanEnglish)
	return sign + "$" + p.Sprintf("%d", whole.IntPart()) + cents
}

// FormatRate formats a per-unit price with six decimals.
func FormatRate(rate decimal.Decimal) string { return "$" + rate.StringFixed(6) }

// FormatPercentage formats a percentage value with one decimal: "3.5%".
func FormatPercentage(pct decimal.Decimal) string { return pct.StringFixed(1) + "%" }

// FormatQuantity formats a usage quantity with grouping and two decimals.
func FormatQuantity(q decimal.Decimal) string {
	s := FormatCurrency(q)
	if s[0] == '-' {
		return "-" + s[2:]
	}
	return s[1:]
}
