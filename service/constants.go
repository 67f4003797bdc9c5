package service

import "time"

const (
	MaxLoanAmount   = 1_000_000_000.0
	MaxInterestRate = 1000.0 // percent per year
	MaxTermMonths   = 600    // 50 years
	MinTermMonths   = 1

	// Scenario limits.
	MaxSimulationYears = 50
	MaxAmount          = 1e12

	// Purchase scenario assumptions.
	MaintenanceRate = 0.01 // of item cost, per year

	// Career scenario assumptions.
	DefaultExpenseShare = 0.7 // of salary when no profile is stored
	NewExpenseScale     = 0.9

	// ScenarioTaxSlab is the slab label the investment scenario prices its
	// ELSS/NPS benefit at. It is not in the slab table, so the default rate
	// applies.
	ScenarioTaxSlab = "10L+"

	DefaultAdviceTTL = time.Hour
	MaxQuestionLen   = 2000
)

// DefaultExpectedReturns is the annual return in percent assumed per
// investment strategy.
var DefaultExpectedReturns = map[string]float64{
	"fd":         5.5,
	"sip":        12,
	"elss":       14,
	"nps":        10,
	"stocks":     15,
	"gold":       8,
	"realestate": 9,
}

// Canned advisor answers used when generation is disabled or fails.
const (
	FallbackAdvice   = "Sorry, I couldn't generate financial advice at this moment. Please try again later."
	FallbackScenario = "Sorry, I couldn't simulate this scenario at this moment. Please try again later."
	FallbackSpending = "Sorry, I couldn't analyze your spending behavior at this moment. Please try again later."
	FallbackBackward = "Sorry, I couldn't analyze these past decisions at this moment. Please try again later."
	FallbackQuestion = "Sorry, I couldn't process your question at this moment. Please try again later."

	NoDecisionsMessage = "Please enter at least one past financial decision to analyze."
)
