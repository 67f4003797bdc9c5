package domain

import "finsage/finance"

// AdviceRequest is the profile digest sent to the advisor.
type AdviceRequest struct {
	Income           float64           `json:"income"`
	FixedExpenses    float64           `json:"fixedExpenses"`
	VariableExpenses float64           `json:"variableExpenses"`
	Investments      finance.Breakdown `json:"investments"`
	Loans            finance.Breakdown `json:"loans"`
	Goals            string            `json:"goals,omitempty"`
}

// ScenarioAdviceRequest carries free-form scenario parameters.
type ScenarioAdviceRequest struct {
	Current  map[string]any `json:"current,omitempty"`
	Scenario map[string]any `json:"scenario"`
}

type Transaction struct {
	ID            string  `json:"id,omitempty"`
	Date          string  `json:"date"`
	Amount        float64 `json:"amount"`
	Category      string  `json:"category"`
	PaymentMethod string  `json:"paymentMethod,omitempty"`
	Description   string  `json:"description,omitempty"`
}

type HistoricalDecision struct {
	Type        string  `json:"type"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date,omitempty"`
	Outcome     string  `json:"outcome,omitempty"`
}

// AdviceResponse wraps advisor text. Fallback is set when the text is the
// canned message rather than generated output.
type AdviceResponse struct {
	Text     string `json:"text"`
	Fallback bool   `json:"fallback"`
	Cached   bool   `json:"cached"`
}

// SpendingSummary aggregates a list of transactions.
type SpendingSummary struct {
	Total           float64            `json:"total"`
	Average         float64            `json:"average"`
	Count           int                `json:"count"`
	TopCategory     string             `json:"topCategory"`
	LargestCategory string             `json:"largestCategory"`
	AverageMonthly  float64            `json:"averageMonthly"`
	CategoryTotals  map[string]float64 `json:"categoryTotals"`
	MethodTotals    map[string]float64 `json:"paymentMethodTotals"`
	MonthlySpending [12]float64        `json:"monthlySpending"`
}
