package finance

import "math"

// Section80CLimit caps the deduction eligible under Section 80C.
const Section80CLimit = 150000

// DefaultSlabRate applies to tax slab labels missing from TaxSlabs.
const DefaultSlabRate = 20

// Section80CKeys are the investment categories counted towards the
// deduction. Every other key is ignored.
var Section80CKeys = []string{"ppf", "elss", "lifeInsurance", "epf", "nps"}

// TaxSlabs maps an income band label to its flat marginal rate in percent.
var TaxSlabs = map[string]float64{
	"0-2.5L":   0,
	"2.5-5L":   5,
	"5-7.5L":   10,
	"7.5-10L":  15,
	"10-12.5L": 20,
	"12.5-15L": 25,
	"15L+":     30,
}

// SlabRate returns the marginal rate for a slab label.
func SlabRate(slab string) float64 {
	if rate, ok := TaxSlabs[slab]; ok {
		return rate
	}
	return DefaultSlabRate
}

// Section80CBenefit estimates the annual tax saved by 80C investments: the
// eligible sum, capped at Section80CLimit, times the slab's flat rate.
func Section80CBenefit(investments Breakdown, slab string) float64 {
	eligible := 0.0
	for _, key := range Section80CKeys {
		eligible += investments[key]
	}
	eligible = math.Min(Section80CLimit, eligible)

	return Round(eligible * SlabRate(slab) / 100)
}

// TaxBracket is one row of a progressive tax table. Rate is a fraction.
type TaxBracket struct {
	Limit float64
	Rate  float64
}

// DefaultTaxBrackets is the simplified 2024-25 salary income tax table.
var DefaultTaxBrackets = []TaxBracket{
	{Limit: 300000, Rate: 0},
	{Limit: 600000, Rate: 0.05},
	{Limit: 900000, Rate: 0.1},
	{Limit: 1200000, Rate: 0.15},
	{Limit: 1500000, Rate: 0.2},
	{Limit: math.Inf(1), Rate: 0.3},
}

// MonthlyIncomeTax walks the brackets in order, taxing at most each
// bracket's limit at its rate until the annual income is used up, and
// returns a twelfth of the annual tax.
//
// Each bracket consumes up to its full limit rather than the width between
// consecutive limits. This is a different calculation from
// Section80CBenefit and the two must not be substituted for each other.
func MonthlyIncomeTax(annualIncome float64, brackets []TaxBracket) float64 {
	tax := 0.0
	remaining := annualIncome

	for _, bracket := range brackets {
		if remaining <= 0 {
			break
		}
		taxable := math.Min(remaining, bracket.Limit)
		tax += taxable * bracket.Rate
		remaining -= taxable
	}

	return tax / 12
}
