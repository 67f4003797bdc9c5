package service

import (
	"context"
	"reflect"
	"testing"

	"finsage/domain"
	"finsage/finance"
)

func TestSummarize(t *testing.T) {
	s := NewSummaryService(nil)

	summary := s.Summarize(domain.Finances{
		Income:           finance.Breakdown{"salary": 100000, "rental": 20000},
		FixedExpenses:    finance.Breakdown{"rent": 25000},
		VariableExpenses: finance.Breakdown{"dining": 5000},
		Investments:      finance.Breakdown{"ppf": 200000},
		Loans:            finance.Breakdown{"car": 30000},
	})

	if summary.TotalIncome != 120000 || summary.TotalExpenses != 30000 {
		t.Errorf("unexpected totals %+v", summary)
	}
	if summary.MonthlySavings != 90000 {
		t.Errorf("expected savings 90000, got %v", summary.MonthlySavings)
	}
	if summary.DebtToIncomeRatio == nil || *summary.DebtToIncomeRatio != 25 {
		t.Errorf("expected DTI 25, got %v", summary.DebtToIncomeRatio)
	}

	// 200000 + 90000*6 - 30000
	if summary.NetWorth != 710000 {
		t.Errorf("expected net worth 710000, got %v", summary.NetWorth)
	}

	// salary of 12L a year
	if summary.MonthlyTax != 5000 {
		t.Errorf("expected monthly tax 5000, got %v", summary.MonthlyTax)
	}
	if summary.AfterTaxSavings != 85000 {
		t.Errorf("expected after-tax savings 85000, got %v", summary.AfterTaxSavings)
	}
	if summary.SavingsRate != 75 {
		t.Errorf("expected savings rate 75, got %v", summary.SavingsRate)
	}
	if summary.Formatted["netWorth"] != "₹7,10,000" {
		t.Errorf("unexpected formatted net worth %q", summary.Formatted["netWorth"])
	}
}

func TestSummarize_Deterministic(t *testing.T) {
	s := NewSummaryService(nil)
	f := domain.Finances{
		Income:           finance.Breakdown{"salary": 0.1, "rental": 0.2, "other": 0.3},
		FixedExpenses:    finance.Breakdown{"rent": 0.3, "utilities": 0.2, "insurance": 0.1},
		VariableExpenses: finance.Breakdown{"dining": 0.1, "travel": 0.2, "groceries": 0.3},
		Investments:      finance.Breakdown{"ppf": 0.1, "elss": 0.2, "gold": 0.3},
		Loans:            finance.Breakdown{"car": 0.1, "home": 0.2, "personal": 0.3},
	}

	want := s.Summarize(f)
	for i := 0; i < 500; i++ {
		if got := s.Summarize(f); !reflect.DeepEqual(got, want) {
			t.Fatalf("iteration %d: expected %+v, got %+v", i, want, got)
		}
	}
}

func TestSummarize_ZeroIncome(t *testing.T) {
	s := NewSummaryService(nil)

	summary := s.Summarize(domain.Finances{Loans: finance.Breakdown{"home": 10000}})

	if summary.DebtToIncomeRatio != nil {
		t.Errorf("expected nil DTI, got %v", *summary.DebtToIncomeRatio)
	}
	if summary.SavingsRate != 0 || summary.AfterTaxSavingsRate != 0 {
		t.Errorf("expected zero rates, got %v and %v", summary.SavingsRate, summary.AfterTaxSavingsRate)
	}
}

func TestSummaryForUser(t *testing.T) {
	profiles := newTestProfileService()
	s := NewSummaryService(profiles)
	ctx := context.Background()

	if _, err := profiles.SaveFinances(ctx, "u1", domain.Finances{Income: finance.Breakdown{"salary": 50000}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	summary, err := s.ForUser(ctx, "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.TotalIncome != 50000 || summary.UpdatedAt == "" {
		t.Errorf("unexpected summary %+v", summary)
	}
}
