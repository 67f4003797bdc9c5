// Package finance holds the pure calculation functions behind every
// summary, scenario and quote. Nothing here performs I/O or validates
// input: invalid arguments produce invalid (possibly non-finite) output.
package finance

import (
	"maps"
	"math"
	"slices"
)

// Breakdown maps a category name to a monthly amount.
type Breakdown map[string]float64

// Total sums every value in the breakdown in key order, so equal
// breakdowns always produce the same float. A nil breakdown totals 0.
func (b Breakdown) Total() float64 {
	total := 0.0
	for _, k := range slices.Sorted(maps.Keys(b)) {
		total += b[k]
	}
	return total
}

// Round rounds half toward positive infinity, so -2.5 becomes -2 and 2.5
// becomes 3. NaN and infinities are returned unchanged.
func Round(x float64) float64 {
	r := math.Floor(x)
	if x-r >= 0.5 {
		r++
	}
	return r
}

// MonthlySavings returns income minus expenses. Negative results mean
// overspending.
func MonthlySavings(income, expenses float64) float64 {
	return income - expenses
}

// DebtToIncomeRatio returns monthly debt payments as a percentage of gross
// monthly income. A zero income yields NaN or ±Inf; callers decide how to
// present that.
func DebtToIncomeRatio(debtPayments, income float64) float64 {
	return (debtPayments / income) * 100
}

// SavingsRate returns savings as a percentage of income, or 0 when income
// is not positive.
func SavingsRate(savings, income float64) float64 {
	if income > 0 {
		return savings / income * 100
	}
	return 0
}

// NetWorth returns total assets minus total liabilities.
func NetWorth(assets, liabilities Breakdown) float64 {
	return assets.Total() - liabilities.Total()
}

// FutureValue projects a balance compounded monthly over years, adding the
// contribution at the start of every month before that month's growth.
// The loop is deliberate: results must match the month-by-month iteration,
// not the closed form.
func FutureValue(principal, contribution, annualRate float64, years int) float64 {
	monthlyRate := annualRate / 100 / 12
	months := years * 12

	value := principal
	for i := 0; i < months; i++ {
		value = (value + contribution) * (1 + monthlyRate)
	}

	return Round(value)
}

// EMI returns the rounded equated monthly installment for an amortized loan.
// A zero annual rate divides zero by zero and returns NaN.
func EMI(principal, annualRate float64, tenureMonths int) float64 {
	i := annualRate / 12 / 100
	growth := math.Pow(1+i, float64(tenureMonths))
	emi := principal * i * growth / (growth - 1)

	return Round(emi)
}

// IsFinite reports whether x is neither NaN nor an infinity.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
