package utils

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatMoney renders an amount with thousand separators and two decimals,
// prefixed by the currency code: "EUR 1,234.50".
func FormatMoney(amount decimal.Decimal, currency string) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}
	fixed := amount.StringFixed(2)
	whole, frac, _ := strings.Cut(fixed, ".")
	n, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return strings.TrimSpace(currency + " " + sign + fixed)
	}
	out := sign + formatThousand(n) + "." + frac
	if c := strings.TrimSpace(currency); c != "" {
		return c + " " + out
	}
	return out
}

func formatThousand(n int64) string {
	if n == 0 {
		return "0"
	}
	str := strconv.FormatInt(n, 10)
	var out strings.Builder
	for i, c := range str {
		if i != 0 && (len(str)-i)%3 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(c)
	}
	return out.String()
}
