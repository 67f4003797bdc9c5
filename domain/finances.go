package domain

import "finsage/finance"

// Finances is the per-user profile document. Field names follow the
// stored document layout.
type Finances struct {
	Income           finance.Breakdown `json:"income"`
	FixedExpenses    finance.Breakdown `json:"fixedExpenses"`
	VariableExpenses finance.Breakdown `json:"variableExpenses"`
	Investments      finance.Breakdown `json:"investments"`
	Loans            finance.Breakdown `json:"loans"`
	UpdatedAt        string            `json:"updatedAt,omitempty"`
}

// Default category keys used to seed an empty profile.
var (
	IncomeCategories          = []string{"salary", "business", "rental", "investments", "other"}
	FixedExpenseCategories    = []string{"rent", "mortgage", "utilities", "insurance", "subscriptions", "education", "other"}
	VariableExpenseCategories = []string{"groceries", "dining", "entertainment", "shopping", "transportation", "healthcare", "travel", "other"}
	InvestmentCategories      = []string{"equity", "mutual_funds", "fd", "ppf", "epf", "nps", "gold", "real_estate", "crypto", "other"}
	LoanCategories            = []string{"home", "car", "education", "personal", "credit_card", "other"}
)

// EmptyFinances returns a profile with every default category set to zero.
func EmptyFinances() Finances {
	return Finances{
		Income:           zeroed(IncomeCategories),
		FixedExpenses:    zeroed(FixedExpenseCategories),
		VariableExpenses: zeroed(VariableExpenseCategories),
		Investments:      zeroed(InvestmentCategories),
		Loans:            zeroed(LoanCategories),
	}
}

// Sections returns the five breakdowns keyed by their document field name.
func (f Finances) Sections() map[string]finance.Breakdown {
	return map[string]finance.Breakdown{
		"income":           f.Income,
		"fixedExpenses":    f.FixedExpenses,
		"variableExpenses": f.VariableExpenses,
		"investments":      f.Investments,
		"loans":            f.Loans,
	}
}

// TotalExpenses is fixed plus variable expenses.
func (f Finances) TotalExpenses() float64 {
	return f.FixedExpenses.Total() + f.VariableExpenses.Total()
}

func zeroed(keys []string) finance.Breakdown {
	b := make(finance.Breakdown, len(keys))
	for _, k := range keys {
		b[k] = 0
	}
	return b
}

// FinancialPreferences captures the advisory profile of a user.
type FinancialPreferences struct {
	RiskTolerance   string  `json:"riskTolerance"`
	InvestmentGoals string  `json:"investmentGoals"`
	SavingsTarget   float64 `json:"savingsTarget"`
}

// Preferences is the per-user settings document.
type Preferences struct {
	TwoFactorEnabled     bool                 `json:"twoFactorEnabled"`
	EmailNotifications   bool                 `json:"emailNotifications"`
	FinancialPreferences FinancialPreferences `json:"financialPreferences"`
	LastUpdated          string               `json:"lastUpdated,omitempty"`
}

// DefaultPreferences mirrors the settings a new user starts with.
func DefaultPreferences() Preferences {
	return Preferences{
		FinancialPreferences: FinancialPreferences{
			RiskTolerance:   "moderate",
			InvestmentGoals: "retirement",
			SavingsTarget:   1000,
		},
	}
}

// Clone returns a deep copy so stored documents never alias caller maps.
func (f Finances) Clone() Finances {
	f.Income = cloneBreakdown(f.Income)
	f.FixedExpenses = cloneBreakdown(f.FixedExpenses)
	f.VariableExpenses = cloneBreakdown(f.VariableExpenses)
	f.Investments = cloneBreakdown(f.Investments)
	f.Loans = cloneBreakdown(f.Loans)
	return f
}

func cloneBreakdown(b finance.Breakdown) finance.Breakdown {
	if b == nil {
		return nil
	}
	out := make(finance.Breakdown, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}
