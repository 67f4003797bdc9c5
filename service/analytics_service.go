package service

import (
	"time"

	"finsage/domain"
	"finsage/finance"
)

var transactionDateLayouts = []string{"2006-01-02", time.RFC3339}

type AnalyticsService struct{}

func NewAnalyticsService() *AnalyticsService {
	return &AnalyticsService{}
}

// SummarizeSpending aggregates transactions by category, payment method
// and calendar month. Ties for the top category or the largest transaction
// go to the one seen last.
func (s *AnalyticsService) SummarizeSpending(transactions []domain.Transaction) (domain.SpendingSummary, error) {
	summary := domain.SpendingSummary{
		Count:          len(transactions),
		CategoryTotals: make(map[string]float64),
		MethodTotals:   make(map[string]float64),
	}

	var order []string
	largest := 0.0

	for i, tx := range transactions {
		if !finance.IsFinite(tx.Amount) || tx.Amount < 0 {
			return domain.SpendingSummary{}, invalid("transactions", "transaction %d has an invalid amount", i)
		}
		month, err := transactionMonth(tx.Date)
		if err != nil {
			return domain.SpendingSummary{}, invalid("transactions", "transaction %d has an invalid date %q", i, tx.Date)
		}

		if _, seen := summary.CategoryTotals[tx.Category]; !seen {
			order = append(order, tx.Category)
		}
		summary.CategoryTotals[tx.Category] += tx.Amount
		summary.MethodTotals[tx.PaymentMethod] += tx.Amount
		summary.MonthlySpending[month] += tx.Amount
		summary.Total += tx.Amount

		if tx.Amount >= largest {
			largest = tx.Amount
			summary.LargestCategory = tx.Category
		}
	}

	summary.Average = summary.Total / float64(max(summary.Count, 1))

	top := 0.0
	for _, c := range order {
		if summary.CategoryTotals[c] >= top {
			top = summary.CategoryTotals[c]
			summary.TopCategory = c
		}
	}

	active, activeTotal := 0, 0.0
	for _, m := range summary.MonthlySpending {
		if m > 0 {
			active++
			activeTotal += m
		}
	}
	summary.AverageMonthly = activeTotal / float64(max(active, 1))

	return summary, nil
}

func transactionMonth(date string) (int, error) {
	var (
		t   time.Time
		err error
	)
	for _, layout := range transactionDateLayouts {
		if t, err = time.Parse(layout, date); err == nil {
			return int(t.Month()) - 1, nil
		}
	}
	return 0, err
}
