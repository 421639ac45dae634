package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"trivia-quiz-service/internal/domain"
)

// ResultStore keeps submitted results as JSON with an expiry:
// SET quiz:result:{resultID} {json} EX ttl
type ResultStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewResultStore(client *redis.Client, ttl time.Duration) *ResultStore {
	return &ResultStore{client: client, ttl: ttl}
}

func (s *ResultStore) SaveResult(ctx context.Context, result domain.Result) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	if err := s.client.Set(ctx, s.key(result.ID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("store result: %w", err)
	}
	return nil
}

func (s *ResultStore) GetResult(ctx context.Context, resultID string) (domain.Result, error) {
	data, err := s.client.Get(ctx, s.key(resultID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Result{}, domain.ErrResultNotFound
	}
	if err != nil {
		return domain.Result{}, fmt.Errorf("load result: %w", err)
	}
	var result domain.Result
	if err := json.Unmarshal(data, &result); err != nil {
		return domain.Result{}, fmt.Errorf("unmarshal result: %w", err)
	}
	return result, nil
}

func (s *ResultStore) key(resultID string) string {
	return "quiz:result:" + resultID
}
