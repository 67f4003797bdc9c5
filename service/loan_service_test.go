package service

import (
	"errors"
	"io"
	"math"
	"testing"

	"github.com/sirupsen/logrus"

	"finsage/domain"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestQuote_WithInterest(t *testing.T) {
	service := NewLoanService(quietLogger())

	input := domain.LoanInput{
		Amount:       1000000,
		InterestRate: 7.5,
		TermMonths:   240,
	}

	result, err := service.Quote(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.MonthlyPayment != 8056 {
		t.Errorf("expected 8056, got %v", result.MonthlyPayment)
	}

	if len(result.Schedule) != 20 {
		t.Fatalf("expected 20 schedule years, got %d", len(result.Schedule))
	}

	last := result.Schedule[len(result.Schedule)-1]
	if last.Year != 20 || last.ClosingBalance != 0 {
		t.Errorf("expected loan cleared in year 20, got %+v", last)
	}

	principal := 0.0
	for _, y := range result.Schedule {
		principal += y.PrincipalPaid
	}
	if math.Abs(principal-input.Amount) > 0.5 {
		t.Errorf("expected principal paid %.2f, got %.2f", input.Amount, principal)
	}

	if math.Abs(result.TotalPayment-result.TotalInterest-input.Amount) > 0.01 {
		t.Errorf("total payment %.2f does not equal amount plus interest %.2f", result.TotalPayment, result.TotalInterest)
	}
}

func TestQuote_ZeroInterest(t *testing.T) {
	service := NewLoanService(quietLogger())

	result, err := service.Quote(domain.LoanInput{
		Amount:       1200,
		InterestRate: 0,
		TermMonths:   12,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := 100.0
	if result.MonthlyPayment != expected {
		t.Errorf("expected %.2f, got %.2f", expected, result.MonthlyPayment)
	}
	if result.TotalInterest != 0 {
		t.Errorf("expected no interest, got %.2f", result.TotalInterest)
	}
}

func TestQuote_PartialLastYear(t *testing.T) {
	service := NewLoanService(quietLogger())

	result, err := service.Quote(domain.LoanInput{Amount: 50000, InterestRate: 12, TermMonths: 18})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Schedule) != 2 {
		t.Fatalf("expected 2 schedule years, got %d", len(result.Schedule))
	}
	if result.Schedule[1].Year != 2 || result.Schedule[1].ClosingBalance != 0 {
		t.Errorf("unexpected final year %+v", result.Schedule[1])
	}
}

func TestQuote_Invalid(t *testing.T) {
	service := NewLoanService(quietLogger())

	tests := []struct {
		name  string
		input domain.LoanInput
		field string
	}{
		{"zero amount", domain.LoanInput{Amount: 0, InterestRate: 10, TermMonths: 12}, "amount"},
		{"amount too large", domain.LoanInput{Amount: MaxLoanAmount + 1, InterestRate: 10, TermMonths: 12}, "amount"},
		{"nan amount", domain.LoanInput{Amount: math.NaN(), InterestRate: 10, TermMonths: 12}, "amount"},
		{"negative rate", domain.LoanInput{Amount: 1000, InterestRate: -1, TermMonths: 12}, "interestRate"},
		{"rate too large", domain.LoanInput{Amount: 1000, InterestRate: MaxInterestRate + 1, TermMonths: 12}, "interestRate"},
		{"zero term", domain.LoanInput{Amount: 1000, InterestRate: 10, TermMonths: 0}, "termMonths"},
		{"term too long", domain.LoanInput{Amount: 1000, InterestRate: 10, TermMonths: MaxTermMonths + 1}, "termMonths"},
		{"installment rounds to zero", domain.LoanInput{Amount: 100, InterestRate: 1, TermMonths: 600}, "amount"},
		{"zero rate installment rounds to zero", domain.LoanInput{Amount: 100, InterestRate: 0, TermMonths: 600}, "amount"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.Quote(tc.input)

			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if vErr.Field != tc.field {
				t.Errorf("expected field %s, got %s", tc.field, vErr.Field)
			}
		})
	}
}
