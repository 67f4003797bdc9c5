package service

import (
	"math"

	"github.com/sirupsen/logrus"

	"finsage/domain"
	"finsage/finance"
)

// roundTo2Decimals rounds a schedule amount to paise.
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

// monthlyInstallment is finance.EMI with the zero-rate case answered as an
// even split of the principal.
func monthlyInstallment(principal, annualRate float64, tenureMonths int) float64 {
	if annualRate == 0 {
		return finance.Round(principal / float64(tenureMonths))
	}
	return finance.EMI(principal, annualRate, tenureMonths)
}

type LoanService struct {
	logger *logrus.Logger
}

// NewLoanService creates a new LoanService.
func NewLoanService(logger *logrus.Logger) *LoanService {
	return &LoanService{logger: logger}
}

// Quote validates input and returns the installment, totals and a yearly
// amortization schedule.
func (s *LoanService) Quote(input domain.LoanInput) (domain.LoanResult, error) {
	if err := validateLoanInput(input); err != nil {
		return domain.LoanResult{}, err
	}

	payment := monthlyInstallment(input.Amount, input.InterestRate, input.TermMonths)
	if payment <= 0 {
		return domain.LoanResult{}, invalid("amount", "is too small to repay over %d months", input.TermMonths)
	}
	schedule, total := amortize(input.Amount, input.InterestRate, input.TermMonths, payment)

	result := domain.LoanResult{
		MonthlyPayment: payment,
		TotalPayment:   roundTo2Decimals(total),
		TotalInterest:  roundTo2Decimals(total - input.Amount),
		Schedule:       schedule,
	}

	s.logger.WithFields(logrus.Fields{
		"amount":  input.Amount,
		"rate":    input.InterestRate,
		"term":    input.TermMonths,
		"payment": payment,
	}).Debug("loan quoted")

	return result, nil
}

func validateLoanInput(input domain.LoanInput) error {
	switch {
	case !finance.IsFinite(input.Amount) || input.Amount <= 0:
		return invalid("amount", "must be greater than zero")
	case input.Amount > MaxLoanAmount:
		return invalid("amount", "exceeds the maximum of %.2f", MaxLoanAmount)
	case !finance.IsFinite(input.InterestRate) || input.InterestRate < 0:
		return invalid("interestRate", "must not be negative")
	case input.InterestRate > MaxInterestRate:
		return invalid("interestRate", "exceeds the maximum of %.2f%%", MaxInterestRate)
	case input.TermMonths < MinTermMonths:
		return invalid("termMonths", "must be at least %d", MinTermMonths)
	case input.TermMonths > MaxTermMonths:
		return invalid("termMonths", "exceeds the maximum of %d months", MaxTermMonths)
	}
	return nil
}

// amortize walks the loan month by month. The last installment clears
// whatever balance the rounded payment left behind.
func amortize(principal, annualRate float64, months int, payment float64) ([]domain.AmortizationYear, float64) {
	monthlyRate := annualRate / 100 / 12
	balance := principal
	total := 0.0

	schedule := make([]domain.AmortizationYear, 0, (months+11)/12)
	var year domain.AmortizationYear

	for m := 1; m <= months; m++ {
		interest := balance * monthlyRate
		paid := math.Min(payment-interest, balance)
		if m == months {
			paid = balance
		}

		balance -= paid
		total += paid + interest

		year.PrincipalPaid += paid
		year.InterestPaid += interest

		if m%12 == 0 || m == months {
			year.Year = (m + 11) / 12
			year.PrincipalPaid = roundTo2Decimals(year.PrincipalPaid)
			year.InterestPaid = roundTo2Decimals(year.InterestPaid)
			year.ClosingBalance = roundTo2Decimals(balance)
			schedule = append(schedule, year)
			year = domain.AmortizationYear{}
		}
	}

	return schedule, total
}
