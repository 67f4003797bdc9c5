package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"finsage/domain"
)

// RedisProfileRepository keeps each document as a JSON string under
// "<collection>:<userID>".
type RedisProfileRepository struct {
	client *redis.Client
}

func NewRedisProfileRepository(client *redis.Client) *RedisProfileRepository {
	return &RedisProfileRepository{client: client}
}

func documentKey(collection, userID string) string {
	return collection + ":" + userID
}

func (r *RedisProfileRepository) GetFinances(ctx context.Context, userID string) (domain.Finances, error) {
	var doc financesDocument
	if err := r.load(ctx, documentKey(FinancesCollection, userID), &doc); err != nil {
		return domain.Finances{}, err
	}
	return doc.Finances, nil
}

func (r *RedisProfileRepository) SaveFinances(ctx context.Context, userID string, finances domain.Finances) error {
	return r.store(ctx, documentKey(FinancesCollection, userID), financesDocument{Finances: finances})
}

func (r *RedisProfileRepository) GetPreferences(ctx context.Context, userID string) (domain.Preferences, error) {
	var prefs domain.Preferences
	if err := r.load(ctx, documentKey(PreferencesCollection, userID), &prefs); err != nil {
		return domain.Preferences{}, err
	}
	return prefs, nil
}

func (r *RedisProfileRepository) SavePreferences(ctx context.Context, userID string, prefs domain.Preferences) error {
	return r.store(ctx, documentKey(PreferencesCollection, userID), prefs)
}

func (r *RedisProfileRepository) load(ctx context.Context, key string, dst any) error {
	raw, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return nil
}

func (r *RedisProfileRepository) store(ctx context.Context, key string, doc any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := r.client.Set(ctx, key, raw, 0).Err(); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}
