package domain

// LoanInput describes an amortized loan to quote.
type LoanInput struct {
	Amount       float64 `json:"amount"`
	InterestRate float64 `json:"interestRate"`
	TermMonths   int     `json:"termMonths"`
}

// AmortizationYear aggregates one year of installments.
type AmortizationYear struct {
	Year           int     `json:"year"`
	PrincipalPaid  float64 `json:"principalPaid"`
	InterestPaid   float64 `json:"interestPaid"`
	ClosingBalance float64 `json:"closingBalance"`
}

// LoanResult is a quote with its yearly amortization schedule.
type LoanResult struct {
	MonthlyPayment float64            `json:"monthlyPayment"`
	TotalPayment   float64            `json:"totalPayment"`
	TotalInterest  float64            `json:"totalInterest"`
	Schedule       []AmortizationYear `json:"schedule"`
}
