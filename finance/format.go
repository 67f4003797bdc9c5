package finance

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

const rupee = "₹"

// FormatCurrency renders an amount in Indian Rupees with no decimals and
// Indian digit grouping: the last three digits, then groups of two
// (₹12,34,567). Fractions are rounded half away from zero. Negative
// amounts keep their sign even when they round to zero (-0.4 is "-₹0").
func FormatCurrency(amount float64) string {
	switch {
	case math.IsNaN(amount):
		return rupee + "NaN"
	case math.IsInf(amount, 1):
		return rupee + "∞"
	case math.IsInf(amount, -1):
		return "-" + rupee + "∞"
	}

	d := decimal.NewFromFloat(amount).Round(0)
	sign := ""
	if math.Signbit(amount) {
		sign = "-"
	}

	return sign + rupee + groupIndian(d.Abs().String())
}

func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}

	return strings.Join(append(groups, tail), ",")
}
