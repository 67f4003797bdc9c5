package service

import (
	"context"

	"finsage/domain"
	"finsage/finance"
)

// SavingsCushionMonths is how many months of savings the dashboard counts
// as a liquid asset in net worth.
const SavingsCushionMonths = 6

type SummaryService struct {
	profiles *ProfileService
	brackets []finance.TaxBracket
}

// NewSummaryService builds summaries with the default tax table.
func NewSummaryService(profiles *ProfileService) *SummaryService {
	return &SummaryService{profiles: profiles, brackets: finance.DefaultTaxBrackets}
}

// ForUser loads the user's profile and summarizes it.
func (s *SummaryService) ForUser(ctx context.Context, userID string) (domain.Summary, error) {
	finances, err := s.profiles.GetFinances(ctx, userID)
	if err != nil {
		return domain.Summary{}, err
	}
	return s.Summarize(finances), nil
}

// Summarize computes the dashboard figures for a profile.
func (s *SummaryService) Summarize(f domain.Finances) domain.Summary {
	income := f.Income.Total()
	fixed := f.FixedExpenses.Total()
	variable := f.VariableExpenses.Total()
	expenses := fixed + variable
	investments := f.Investments.Total()
	loans := f.Loans.Total()

	savings := finance.MonthlySavings(income, expenses)

	assets := finance.Breakdown{
		"investments": investments,
		"savings":     savings * SavingsCushionMonths,
	}
	liabilities := finance.Breakdown{"loans": loans}

	monthlyTax := finance.MonthlyIncomeTax(f.Income["salary"]*12, s.brackets)
	afterTaxIncome := income - monthlyTax
	afterTaxSavings := afterTaxIncome - expenses

	summary := domain.Summary{
		TotalIncome:           income,
		TotalFixedExpenses:    fixed,
		TotalVariableExpenses: variable,
		TotalExpenses:         expenses,
		TotalInvestments:      investments,
		TotalLoans:            loans,
		MonthlySavings:        savings,
		DebtToIncomeRatio:     finiteOrNil(finance.DebtToIncomeRatio(loans, income)),
		NetWorth:              finance.NetWorth(assets, liabilities),
		MonthlyTax:            monthlyTax,
		AfterTaxIncome:        afterTaxIncome,
		AfterTaxSavings:       afterTaxSavings,
		SavingsRate:           finance.SavingsRate(savings, income),
		AfterTaxSavingsRate:   finance.SavingsRate(afterTaxSavings, afterTaxIncome),
		UpdatedAt:             f.UpdatedAt,
	}

	summary.Formatted = map[string]string{
		"totalIncome":     finance.FormatCurrency(income),
		"totalExpenses":   finance.FormatCurrency(expenses),
		"monthlySavings":  finance.FormatCurrency(savings),
		"netWorth":        finance.FormatCurrency(summary.NetWorth),
		"monthlyTax":      finance.FormatCurrency(monthlyTax),
		"afterTaxSavings": finance.FormatCurrency(afterTaxSavings),
	}

	return summary
}

// finiteOrNil drops NaN and infinities so they never reach a JSON encoder.
func finiteOrNil(x float64) *float64 {
	if !finance.IsFinite(x) {
		return nil
	}
	return &x
}
