package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"finsage/domain"
	"finsage/finance"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestCareer_DefaultExpenses(t *testing.T) {
	s := NewScenarioService(newTestProfileService())

	res, err := s.Career(context.Background(), "", domain.CareerScenarioInput{
		CurrentSalary:   100000,
		NewSalary:       150000,
		YearsToSimulate: 2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(res.Labels) != 3 || res.Labels[2] != "Year 2" {
		t.Errorf("unexpected labels %v", res.Labels)
	}

	// 70% of salary spent now; new expenses scale with salary at 90%.
	wantCurrent := []float64{360000, 720000, 1080000}
	wantNew := []float64{666000, 1332000, 1998000}
	for i := range wantCurrent {
		if !almostEqual(res.CurrentSavings[i], wantCurrent[i]) || !almostEqual(res.NewSavings[i], wantNew[i]) {
			t.Errorf("year %d: got %v/%v, want %v/%v", i, res.CurrentSavings[i], res.NewSavings[i], wantCurrent[i], wantNew[i])
		}
	}

	if !almostEqual(res.IncomeDifference, 600000) {
		t.Errorf("expected income difference 600000, got %v", res.IncomeDifference)
	}
	if !almostEqual(res.SavingsDifference, 918000) {
		t.Errorf("expected savings difference 918000, got %v", res.SavingsDifference)
	}
}

func TestCareer_UsesStoredExpenses(t *testing.T) {
	profiles := newTestProfileService()
	s := NewScenarioService(profiles)
	ctx := context.Background()

	_, err := profiles.SaveFinances(ctx, "u1", domain.Finances{
		Income:           finance.Breakdown{"salary": 100000},
		FixedExpenses:    finance.Breakdown{"rent": 20000},
		VariableExpenses: finance.Breakdown{"dining": 10000},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	res, err := s.Career(ctx, "u1", domain.CareerScenarioInput{
		CurrentSalary:    100000,
		NewSalary:        100000,
		YearsToSimulate:  1,
		AnnualGrowthRate: 10,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !almostEqual(res.CurrentIncome[1], 1320000) {
		t.Errorf("expected grown income 1320000, got %v", res.CurrentIncome[1])
	}
	// year 0: (100000-30000)*12, year 1: (110000-30000)*12
	if !almostEqual(res.CurrentSavings[1], 840000+960000) {
		t.Errorf("unexpected cumulative savings %v", res.CurrentSavings[1])
	}
}

func TestCareer_Invalid(t *testing.T) {
	s := NewScenarioService(nil)

	inputs := []domain.CareerScenarioInput{
		{CurrentSalary: 0, NewSalary: 1, YearsToSimulate: 1},
		{CurrentSalary: 1, NewSalary: -1, YearsToSimulate: 1},
		{CurrentSalary: 1, NewSalary: 1, YearsToSimulate: 0},
		{CurrentSalary: 1, NewSalary: 1, YearsToSimulate: 1, AnnualGrowthRate: -100},
	}

	for _, in := range inputs {
		_, err := s.Career(context.Background(), "", in)

		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Errorf("%+v: expected ValidationError, got %v", in, err)
		}
	}
}

func TestInvestment(t *testing.T) {
	s := NewScenarioService(nil)

	res, err := s.Investment(domain.InvestmentScenarioInput{
		CurrentStrategy: "fd",
		NewStrategy:     "elss",
		MonthlyAmount:   5000,
		YearsToSimulate: 3,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.CurrentValues[0] != 0 || res.NewValues[0] != 0 {
		t.Errorf("expected year 0 to be empty")
	}

	year1 := finance.FutureValue(0, 5000, 14, 1)
	if res.NewValues[1] != year1 {
		t.Errorf("expected %v, got %v", year1, res.NewValues[1])
	}
	if res.NewValues[2] != finance.FutureValue(year1, 5000, 14, 1) {
		t.Errorf("expected year 2 to compound from year 1")
	}

	if res.FinalAmountDifference != res.NewFinalAmount-res.CurrentFinalAmount {
		t.Errorf("inconsistent difference")
	}

	// 60000 a year at the default 20% rate
	if res.TaxBenefits.ELSS != 12000 || res.TaxBenefits.NPS != 0 {
		t.Errorf("unexpected tax benefits %+v", res.TaxBenefits)
	}
}

func TestInvestment_CustomReturns(t *testing.T) {
	s := NewScenarioService(nil)

	res, err := s.Investment(domain.InvestmentScenarioInput{
		CurrentStrategy: "fd",
		NewStrategy:     "crypto",
		MonthlyAmount:   1000,
		YearsToSimulate: 1,
		ExpectedReturns: map[string]float64{"crypto": 12, "fd": 0},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.NewFinalAmount != 12809 {
		t.Errorf("expected 12809, got %v", res.NewFinalAmount)
	}
	if res.CurrentFinalAmount != 12000 {
		t.Errorf("expected 12000, got %v", res.CurrentFinalAmount)
	}
}

func TestInvestment_UnknownStrategy(t *testing.T) {
	s := NewScenarioService(nil)

	_, err := s.Investment(domain.InvestmentScenarioInput{
		CurrentStrategy: "fd",
		NewStrategy:     "lottery",
		MonthlyAmount:   1000,
		YearsToSimulate: 5,
	})

	var vErr *ValidationError
	if !errors.As(err, &vErr) || vErr.Field != "newStrategy" {
		t.Errorf("expected newStrategy validation error, got %v", err)
	}
}

func TestPurchase(t *testing.T) {
	s := NewScenarioService(nil)

	res, err := s.Purchase(context.Background(), "", domain.PurchaseScenarioInput{
		ItemType:        "property",
		ItemCost:        5000000,
		DownPayment:     1000000,
		LoanTenureYears: 20,
		InterestRate:    7.5,
		MonthlyRent:     25000,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	emi := finance.EMI(4000000, 7.5, 240)
	if res.MonthlyEMI != emi {
		t.Errorf("expected EMI %v, got %v", emi, res.MonthlyEMI)
	}

	if res.BuyingCosts[0] != 1000000 || res.RentingCosts[0] != 0 {
		t.Errorf("unexpected initial costs %v/%v", res.BuyingCosts[0], res.RentingCosts[0])
	}
	if !almostEqual(res.BuyingCosts[1], 1000000+emi*12+50000) {
		t.Errorf("unexpected first year buying cost %v", res.BuyingCosts[1])
	}
	if res.TotalCostOfRenting != 25000*12*20 {
		t.Errorf("unexpected renting total %v", res.TotalCostOfRenting)
	}

	if res.BreakEvenYear != -1 {
		t.Errorf("expected no break-even, got %d", res.BreakEvenYear)
	}

	if res.CurrentMonthlySavings != 0 || !almostEqual(res.SavingsReduction, emi-25000) {
		t.Errorf("unexpected savings impact %+v", res)
	}
	if res.TotalInterestPaid <= 0 {
		t.Errorf("expected interest to accrue")
	}
}

func TestPurchase_BreakEvenAtStart(t *testing.T) {
	s := NewScenarioService(nil)

	res, err := s.Purchase(context.Background(), "", domain.PurchaseScenarioInput{
		ItemType:        "car",
		ItemCost:        600000,
		LoanTenureYears: 5,
		InterestRate:    0,
		MonthlyRent:     15000,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.MonthlyEMI != 10000 {
		t.Errorf("expected zero-rate EMI 10000, got %v", res.MonthlyEMI)
	}
	if res.BreakEvenYear != 0 {
		t.Errorf("expected break-even at year 0, got %d", res.BreakEvenYear)
	}
	if res.NewMonthlySavings != -10000 {
		t.Errorf("rent only offsets property purchases, got %v", res.NewMonthlySavings)
	}
}

func TestPurchase_DownPaymentTooLarge(t *testing.T) {
	s := NewScenarioService(nil)

	_, err := s.Purchase(context.Background(), "", domain.PurchaseScenarioInput{
		ItemCost:        100,
		DownPayment:     200,
		LoanTenureYears: 1,
		InterestRate:    5,
	})

	var vErr *ValidationError
	if !errors.As(err, &vErr) || vErr.Field != "downPayment" {
		t.Errorf("expected downPayment validation error, got %v", err)
	}
}
