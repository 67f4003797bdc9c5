package service

import (
	"context"
	"fmt"
	"math"

	"finsage/domain"
	"finsage/finance"
)

// ScenarioService runs the what-if simulations. The profile is optional:
// without one the simulations use their built-in assumptions.
type ScenarioService struct {
	profiles *ProfileService
}

func NewScenarioService(profiles *ProfileService) *ScenarioService {
	return &ScenarioService{profiles: profiles}
}

func yearLabels(years int) []string {
	labels := make([]string, years+1)
	for i := range labels {
		labels[i] = fmt.Sprintf("Year %d", i)
	}
	return labels
}

func validateYears(field string, years int) error {
	if years <= 0 || years > MaxSimulationYears {
		return invalid(field, "must be between 1 and %d", MaxSimulationYears)
	}
	return nil
}

func validateAmount(field string, v float64) error {
	if !finance.IsFinite(v) || v < 0 || v > MaxAmount {
		return invalid(field, "must be a non-negative amount")
	}
	return nil
}

// loadProfile returns the user's stored finances, or nil when there is no
// user or the user has not saved a profile yet.
func (s *ScenarioService) loadProfile(ctx context.Context, userID string) (*domain.Finances, error) {
	if userID == "" || s.profiles == nil {
		return nil, nil
	}
	f, err := s.profiles.GetFinances(ctx, userID)
	if err != nil {
		return nil, err
	}
	if f.UpdatedAt == "" && f.Income.Total() == 0 && f.TotalExpenses() == 0 {
		return nil, nil
	}
	return &f, nil
}

// Career projects annual income on both salaries with the same growth rate
// and accumulates the yearly savings each path leaves.
func (s *ScenarioService) Career(ctx context.Context, userID string, in domain.CareerScenarioInput) (domain.CareerScenarioResult, error) {
	if err := validateAmount("currentSalary", in.CurrentSalary); err != nil {
		return domain.CareerScenarioResult{}, err
	}
	if in.CurrentSalary == 0 {
		return domain.CareerScenarioResult{}, invalid("currentSalary", "must be greater than zero")
	}
	if err := validateAmount("newSalary", in.NewSalary); err != nil {
		return domain.CareerScenarioResult{}, err
	}
	if err := validateYears("yearsToSimulate", in.YearsToSimulate); err != nil {
		return domain.CareerScenarioResult{}, err
	}
	if !finance.IsFinite(in.AnnualGrowthRate) || in.AnnualGrowthRate <= -100 {
		return domain.CareerScenarioResult{}, invalid("annualGrowthRate", "must be greater than -100")
	}

	profile, err := s.loadProfile(ctx, userID)
	if err != nil {
		return domain.CareerScenarioResult{}, err
	}

	currentExpenses := in.CurrentSalary * DefaultExpenseShare
	if profile != nil {
		currentExpenses = profile.TotalExpenses()
	}
	newExpenses := currentExpenses * (in.NewSalary / in.CurrentSalary) * NewExpenseScale

	n := in.YearsToSimulate
	res := domain.CareerScenarioResult{
		Labels:         yearLabels(n),
		CurrentIncome:  make([]float64, n+1),
		NewIncome:      make([]float64, n+1),
		CurrentSavings: make([]float64, n+1),
		NewSavings:     make([]float64, n+1),
	}

	var currentTotal, newTotal float64
	for year := 0; year <= n; year++ {
		growth := math.Pow(1+in.AnnualGrowthRate/100, float64(year))
		res.CurrentIncome[year] = in.CurrentSalary * growth * 12
		res.NewIncome[year] = in.NewSalary * growth * 12

		currentTotal += (res.CurrentIncome[year]/12 - currentExpenses) * 12
		newTotal += (res.NewIncome[year]/12 - newExpenses) * 12
		res.CurrentSavings[year] = currentTotal
		res.NewSavings[year] = newTotal
	}

	res.IncomeDifference = res.NewIncome[n] - res.CurrentIncome[n]
	res.SavingsDifference = res.NewSavings[n] - res.CurrentSavings[n]

	return res, nil
}

// Investment compares the year-end balances of two strategies fed the same
// monthly amount. Values are recorded before each year's growth, so year 0
// is always zero.
func (s *ScenarioService) Investment(in domain.InvestmentScenarioInput) (domain.InvestmentScenarioResult, error) {
	returns := make(map[string]float64, len(DefaultExpectedReturns))
	for k, v := range DefaultExpectedReturns {
		returns[k] = v
	}
	for k, v := range in.ExpectedReturns {
		if !finance.IsFinite(v) {
			return domain.InvestmentScenarioResult{}, invalid("expectedReturns."+k, "is not a valid rate")
		}
		returns[k] = v
	}

	currentRate, ok := returns[in.CurrentStrategy]
	if !ok {
		return domain.InvestmentScenarioResult{}, invalid("currentStrategy", "unknown strategy %q", in.CurrentStrategy)
	}
	newRate, ok := returns[in.NewStrategy]
	if !ok {
		return domain.InvestmentScenarioResult{}, invalid("newStrategy", "unknown strategy %q", in.NewStrategy)
	}
	if err := validateAmount("monthlyAmount", in.MonthlyAmount); err != nil {
		return domain.InvestmentScenarioResult{}, err
	}
	if err := validateYears("yearsToSimulate", in.YearsToSimulate); err != nil {
		return domain.InvestmentScenarioResult{}, err
	}

	n := in.YearsToSimulate
	res := domain.InvestmentScenarioResult{
		Labels:        yearLabels(n),
		CurrentValues: projectYearly(in.MonthlyAmount, currentRate, n),
		NewValues:     projectYearly(in.MonthlyAmount, newRate, n),
	}

	res.CurrentFinalAmount = res.CurrentValues[n]
	res.NewFinalAmount = res.NewValues[n]
	res.FinalAmountDifference = res.NewFinalAmount - res.CurrentFinalAmount

	yearly := in.MonthlyAmount * 12
	switch in.NewStrategy {
	case "elss":
		res.TaxBenefits.ELSS = finance.Section80CBenefit(finance.Breakdown{"elss": yearly}, ScenarioTaxSlab)
	case "nps":
		res.TaxBenefits.NPS = finance.Section80CBenefit(finance.Breakdown{"nps": yearly}, ScenarioTaxSlab)
	}

	return res, nil
}

func projectYearly(monthly, rate float64, years int) []float64 {
	values := make([]float64, years+1)
	amount := 0.0
	for year := 0; year <= years; year++ {
		values[year] = amount
		amount = finance.FutureValue(amount, monthly, rate, 1)
	}
	return values
}

// Purchase compares the cumulative cost of buying on a loan with renting
// over the loan tenure.
func (s *ScenarioService) Purchase(ctx context.Context, userID string, in domain.PurchaseScenarioInput) (domain.PurchaseScenarioResult, error) {
	for field, v := range map[string]float64{
		"itemCost":    in.ItemCost,
		"downPayment": in.DownPayment,
		"monthlyRent": in.MonthlyRent,
	} {
		if err := validateAmount(field, v); err != nil {
			return domain.PurchaseScenarioResult{}, err
		}
	}
	if in.DownPayment > in.ItemCost {
		return domain.PurchaseScenarioResult{}, invalid("downPayment", "cannot exceed the item cost")
	}
	if err := validateYears("loanTenureYears", in.LoanTenureYears); err != nil {
		return domain.PurchaseScenarioResult{}, err
	}
	if !finance.IsFinite(in.InterestRate) || in.InterestRate < 0 || in.InterestRate > MaxInterestRate {
		return domain.PurchaseScenarioResult{}, invalid("interestRate", "must be between 0 and %.0f", MaxInterestRate)
	}

	profile, err := s.loadProfile(ctx, userID)
	if err != nil {
		return domain.PurchaseScenarioResult{}, err
	}

	n := in.LoanTenureYears
	loan := in.ItemCost - in.DownPayment
	emi := monthlyInstallment(loan, in.InterestRate, n*12)

	res := domain.PurchaseScenarioResult{
		Labels:       yearLabels(n),
		BuyingCosts:  make([]float64, n+1),
		RentingCosts: make([]float64, n+1),
		MonthlyEMI:   emi,
	}
	res.BuyingCosts[0] = in.DownPayment

	remaining := loan
	maintenance := in.ItemCost * MaintenanceRate
	for year := 1; year <= n; year++ {
		yearlyEMI := emi * 12
		interest := remaining * (in.InterestRate / 100)
		remaining -= math.Min(yearlyEMI-interest, remaining)
		res.TotalInterestPaid += interest

		res.BuyingCosts[year] = res.BuyingCosts[year-1] + yearlyEMI + maintenance
		res.RentingCosts[year] = res.RentingCosts[year-1] + in.MonthlyRent*12
	}

	res.TotalCostOfBuying = res.BuyingCosts[n]
	res.TotalCostOfRenting = res.RentingCosts[n]
	res.CostDifference = res.TotalCostOfBuying - res.TotalCostOfRenting

	if profile != nil {
		res.CurrentMonthlySavings = finance.MonthlySavings(profile.Income.Total(), profile.TotalExpenses())
	}
	res.NewMonthlySavings = res.CurrentMonthlySavings - emi
	if in.ItemType == "property" {
		res.NewMonthlySavings += in.MonthlyRent
	}
	res.SavingsReduction = res.CurrentMonthlySavings - res.NewMonthlySavings

	res.BreakEvenYear = breakEven(res.BuyingCosts, res.RentingCosts)

	return res, nil
}

// breakEven returns the first year buying costs no more than renting, or -1.
func breakEven(buying, renting []float64) int {
	for i, cost := range buying {
		if cost <= renting[i] {
			return i
		}
	}
	return -1
}
