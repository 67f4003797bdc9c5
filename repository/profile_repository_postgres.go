package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"finsage/domain"
)

const userDocumentsSchema = `
	CREATE TABLE IF NOT EXISTS user_documents (
		collection TEXT NOT NULL,
		user_id    TEXT NOT NULL,
		body       JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		PRIMARY KEY (collection, user_id)
	)`

// PostgresProfileRepository stores documents as JSONB rows keyed by
// (collection, user_id).
type PostgresProfileRepository struct {
	db     *sql.DB
	logger *logrus.Logger
}

func NewPostgresProfileRepository(db *sql.DB, logger *logrus.Logger) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db, logger: logger}
}

// EnsureSchema creates the documents table when it does not exist.
func (r *PostgresProfileRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, userDocumentsSchema); err != nil {
		return fmt.Errorf("failed to create user_documents: %w", err)
	}
	return nil
}

func (r *PostgresProfileRepository) GetFinances(ctx context.Context, userID string) (domain.Finances, error) {
	var doc financesDocument
	if err := r.load(ctx, FinancesCollection, userID, &doc); err != nil {
		return domain.Finances{}, err
	}
	return doc.Finances, nil
}

func (r *PostgresProfileRepository) SaveFinances(ctx context.Context, userID string, finances domain.Finances) error {
	return r.store(ctx, FinancesCollection, userID, financesDocument{Finances: finances})
}

func (r *PostgresProfileRepository) GetPreferences(ctx context.Context, userID string) (domain.Preferences, error) {
	var prefs domain.Preferences
	if err := r.load(ctx, PreferencesCollection, userID, &prefs); err != nil {
		return domain.Preferences{}, err
	}
	return prefs, nil
}

func (r *PostgresProfileRepository) SavePreferences(ctx context.Context, userID string, prefs domain.Preferences) error {
	return r.store(ctx, PreferencesCollection, userID, prefs)
}

func (r *PostgresProfileRepository) load(ctx context.Context, collection, userID string, dst any) error {
	query := `
		SELECT body
		FROM user_documents
		WHERE collection = $1 AND user_id = $2`

	var raw []byte
	err := r.db.QueryRowContext(ctx, query, collection, userID).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return translatePQError(err, collection)
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("failed to decode %s document: %w", collection, err)
	}
	return nil
}

func (r *PostgresProfileRepository) store(ctx context.Context, collection, userID string, doc any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode %s document: %w", collection, err)
	}

	query := `
		INSERT INTO user_documents (collection, user_id, body, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (collection, user_id)
		DO UPDATE SET body = EXCLUDED.body, updated_at = EXCLUDED.updated_at`

	if _, err := r.db.ExecContext(ctx, query, collection, userID, raw); err != nil {
		return translatePQError(err, collection)
	}

	r.logger.WithFields(logrus.Fields{
		"collection": collection,
		"user_id":    userID,
	}).Debug("document stored")
	return nil
}

func translatePQError(err error, collection string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Name() {
		case "undefined_table":
			return fmt.Errorf("user_documents table missing, run with schema creation enabled: %w", err)
		case "invalid_text_representation", "invalid_json_text":
			return fmt.Errorf("corrupt %s document: %w", collection, err)
		}
	}
	return fmt.Errorf("failed to access %s document: %w", collection, err)
}
