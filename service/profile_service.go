package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"finsage/domain"
	"finsage/finance"
	"finsage/repository"
)

// timestampLayout matches JavaScript's Date.toISOString.
const timestampLayout = "2006-01-02T15:04:05.000Z"

var (
	riskTolerances  = map[string]bool{"conservative": true, "moderate": true, "aggressive": true}
	investmentGoals = map[string]bool{"retirement": true, "education": true, "home": true, "wealth": true}
)

type ProfileService struct {
	repo   repository.ProfileRepository
	logger *logrus.Logger
	now    func() time.Time
}

// NewProfileService creates a ProfileService backed by repo.
func NewProfileService(repo repository.ProfileRepository, logger *logrus.Logger) *ProfileService {
	return &ProfileService{repo: repo, logger: logger, now: time.Now}
}

// GetFinances returns the stored profile, or a zeroed profile with the
// default categories when the user has none yet.
func (s *ProfileService) GetFinances(ctx context.Context, userID string) (domain.Finances, error) {
	if userID == "" {
		return domain.Finances{}, invalid("userID", "is required")
	}

	finances, err := s.repo.GetFinances(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return domain.EmptyFinances(), nil
	}
	if err != nil {
		return domain.Finances{}, fmt.Errorf("load finances: %w", err)
	}

	return fillSections(finances), nil
}

// SaveFinances validates and stores the whole profile, stamping UpdatedAt.
func (s *ProfileService) SaveFinances(ctx context.Context, userID string, finances domain.Finances) (domain.Finances, error) {
	if userID == "" {
		return domain.Finances{}, invalid("userID", "is required")
	}
	if err := validateFinances(finances); err != nil {
		return domain.Finances{}, err
	}

	finances = fillSections(finances.Clone())
	finances.UpdatedAt = s.now().UTC().Format(timestampLayout)

	if err := s.repo.SaveFinances(ctx, userID, finances); err != nil {
		return domain.Finances{}, fmt.Errorf("save finances: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"user":   userID,
		"income": finances.Income.Total(),
	}).Info("finances saved")

	return finances, nil
}

// GetPreferences returns stored preferences or the defaults.
func (s *ProfileService) GetPreferences(ctx context.Context, userID string) (domain.Preferences, error) {
	if userID == "" {
		return domain.Preferences{}, invalid("userID", "is required")
	}

	prefs, err := s.repo.GetPreferences(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return domain.DefaultPreferences(), nil
	}
	if err != nil {
		return domain.Preferences{}, fmt.Errorf("load preferences: %w", err)
	}

	return withDefaultPreferences(prefs), nil
}

// SavePreferences fills empty fields with defaults, validates the choices
// and stamps LastUpdated.
func (s *ProfileService) SavePreferences(ctx context.Context, userID string, prefs domain.Preferences) (domain.Preferences, error) {
	if userID == "" {
		return domain.Preferences{}, invalid("userID", "is required")
	}

	prefs = withDefaultPreferences(prefs)
	fp := prefs.FinancialPreferences

	if !riskTolerances[fp.RiskTolerance] {
		return domain.Preferences{}, invalid("riskTolerance", "unknown value %q", fp.RiskTolerance)
	}
	if !investmentGoals[fp.InvestmentGoals] {
		return domain.Preferences{}, invalid("investmentGoals", "unknown value %q", fp.InvestmentGoals)
	}
	if !finance.IsFinite(fp.SavingsTarget) || fp.SavingsTarget < 0 {
		return domain.Preferences{}, invalid("savingsTarget", "must be a non-negative number")
	}

	prefs.LastUpdated = s.now().UTC().Format(timestampLayout)

	if err := s.repo.SavePreferences(ctx, userID, prefs); err != nil {
		return domain.Preferences{}, fmt.Errorf("save preferences: %w", err)
	}

	return prefs, nil
}

func validateFinances(f domain.Finances) error {
	for section, b := range f.Sections() {
		for key, v := range b {
			if key == "" {
				return invalid(section, "category name is required")
			}
			if !finance.IsFinite(v) || v < 0 {
				return invalid(section+"."+key, "must be a non-negative number")
			}
		}
	}
	return nil
}

// fillSections replaces missing sections with empty breakdowns.
func fillSections(f domain.Finances) domain.Finances {
	for _, b := range []*finance.Breakdown{&f.Income, &f.FixedExpenses, &f.VariableExpenses, &f.Investments, &f.Loans} {
		if *b == nil {
			*b = finance.Breakdown{}
		}
	}
	return f
}

func withDefaultPreferences(p domain.Preferences) domain.Preferences {
	def := domain.DefaultPreferences().FinancialPreferences
	if p.FinancialPreferences.RiskTolerance == "" {
		p.FinancialPreferences.RiskTolerance = def.RiskTolerance
	}
	if p.FinancialPreferences.InvestmentGoals == "" {
		p.FinancialPreferences.InvestmentGoals = def.InvestmentGoals
	}
	return p
}
