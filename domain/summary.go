package domain

// Summary is the computed view of a profile shown on the dashboard.
type Summary struct {
	TotalIncome           float64 `json:"totalIncome"`
	TotalFixedExpenses    float64 `json:"totalFixedExpenses"`
	TotalVariableExpenses float64 `json:"totalVariableExpenses"`
	TotalExpenses         float64 `json:"totalExpenses"`
	TotalInvestments      float64 `json:"totalInvestments"`
	TotalLoans            float64 `json:"totalLoans"`
	MonthlySavings        float64 `json:"monthlySavings"`

	// DebtToIncomeRatio is nil when income is zero.
	DebtToIncomeRatio *float64 `json:"debtToIncomeRatio"`

	NetWorth            float64 `json:"netWorth"`
	MonthlyTax          float64 `json:"monthlyTax"`
	AfterTaxIncome      float64 `json:"afterTaxIncome"`
	AfterTaxSavings     float64 `json:"afterTaxSavings"`
	SavingsRate         float64 `json:"savingsRate"`
	AfterTaxSavingsRate float64 `json:"afterTaxSavingsRate"`

	Formatted map[string]string `json:"formatted"`
	UpdatedAt string            `json:"updatedAt,omitempty"`
}
