package repository

import (
	"context"
	"errors"

	"finsage/domain"
)

// ErrNotFound is returned when a user has no stored document.
var ErrNotFound = errors.New("document not found")

// Collection names shared by every backend.
const (
	FinancesCollection    = "userFinances"
	PreferencesCollection = "userPreferences"
)

// ProfileRepository stores one finances document and one preferences
// document per user id.
type ProfileRepository interface {
	GetFinances(ctx context.Context, userID string) (domain.Finances, error)
	SaveFinances(ctx context.Context, userID string, finances domain.Finances) error
	GetPreferences(ctx context.Context, userID string) (domain.Preferences, error)
	SavePreferences(ctx context.Context, userID string, prefs domain.Preferences) error
}

// financesDocument is the stored envelope around a finances profile.
type financesDocument struct {
	Finances domain.Finances `json:"finances"`
}
