package domain

// CareerScenarioInput compares staying on the current salary with a move
// to a new one.
type CareerScenarioInput struct {
	CurrentSalary    float64 `json:"currentSalary"`
	NewSalary        float64 `json:"newSalary"`
	YearsToSimulate  int     `json:"yearsToSimulate"`
	AnnualGrowthRate float64 `json:"annualGrowthRate"`
}

type CareerScenarioResult struct {
	Labels            []string  `json:"labels"`
	CurrentIncome     []float64 `json:"currentIncome"`
	NewIncome         []float64 `json:"newIncome"`
	CurrentSavings    []float64 `json:"currentSavings"`
	NewSavings        []float64 `json:"newSavings"`
	IncomeDifference  float64   `json:"incomeDifference"`
	SavingsDifference float64   `json:"savingsDifference"`
}

// InvestmentScenarioInput compares two strategies fed by the same monthly
// amount. ExpectedReturns overrides the default annual return per strategy.
type InvestmentScenarioInput struct {
	CurrentStrategy string             `json:"currentStrategy"`
	NewStrategy     string             `json:"newStrategy"`
	MonthlyAmount   float64            `json:"monthlyAmount"`
	YearsToSimulate int                `json:"yearsToSimulate"`
	ExpectedReturns map[string]float64 `json:"expectedReturns,omitempty"`
}

type TaxBenefits struct {
	ELSS float64 `json:"elss"`
	NPS  float64 `json:"nps"`
}

type InvestmentScenarioResult struct {
	Labels                []string    `json:"labels"`
	CurrentValues         []float64   `json:"currentValues"`
	NewValues             []float64   `json:"newValues"`
	CurrentFinalAmount    float64     `json:"currentFinalAmount"`
	NewFinalAmount        float64     `json:"newFinalAmount"`
	FinalAmountDifference float64     `json:"finalAmountDifference"`
	TaxBenefits           TaxBenefits `json:"taxBenefits"`
}

// PurchaseScenarioInput compares buying with a loan against renting.
type PurchaseScenarioInput struct {
	ItemType        string  `json:"itemType"`
	ItemCost        float64 `json:"itemCost"`
	DownPayment     float64 `json:"downPayment"`
	LoanTenureYears int     `json:"loanTenureYears"`
	InterestRate    float64 `json:"interestRate"`
	MonthlyRent     float64 `json:"monthlyRent"`
}

type PurchaseScenarioResult struct {
	Labels                []string  `json:"labels"`
	BuyingCosts           []float64 `json:"buyingCosts"`
	RentingCosts          []float64 `json:"rentingCosts"`
	MonthlyEMI            float64   `json:"monthlyEMI"`
	TotalInterestPaid     float64   `json:"totalInterestPaid"`
	TotalCostOfBuying     float64   `json:"totalCostOfBuying"`
	TotalCostOfRenting    float64   `json:"totalCostOfRenting"`
	CostDifference        float64   `json:"costDifference"`
	CurrentMonthlySavings float64   `json:"currentMonthlySavings"`
	NewMonthlySavings     float64   `json:"newMonthlySavings"`
	SavingsReduction      float64   `json:"savingsReduction"`
	BreakEvenYear         int       `json:"breakEvenYear"`
}
