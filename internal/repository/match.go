package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/othello-backend/internal/apperror"
	"github.com/rocketscienceinc/othello-backend/internal/entity"
)

const (
	matchKeyPrefix = "match:"
	latestMatchKey = "match-latest"
)

type MatchRepository interface {
	CreateOrUpdate(ctx context.Context, match *entity.Match) error
	GetByID(ctx context.Context, id string) (*entity.Match, error)
	GetLatest(ctx context.Context) (*entity.Match, error)
	DeleteByID(ctx context.Context, id string) error
}

type dbMatch struct {
	client *redis.Client
	ttl    time.Duration
}

// NewMatchRepository stores snapshots that expire after ttl; zero keeps them forever.
func NewMatchRepository(client *redis.Client, ttl time.Duration) MatchRepository {
	return &dbMatch{
		client: client,
		ttl:    ttl,
	}
}

func (that *dbMatch) CreateOrUpdate(ctx context.Context, match *entity.Match) error {
	matchJSON, err := json.Marshal(match)
	if err != nil {
		return fmt.Errorf("could not marshal match: %w", err)
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, matchKeyPrefix+match.ID, matchJSON, that.ttl)
		pipe.Set(ctx, latestMatchKey, match.ID, that.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to set match: %w", err)
	}

	return nil
}

func (that *dbMatch) GetByID(ctx context.Context, id string) (*entity.Match, error) {
	response, err := that.client.Get(ctx, matchKeyPrefix+id).Result()
	if errors.Is(err, redis.Nil) {
		return &entity.Match{}, apperror.ErrMatchNotFound
	}

	if err != nil {
		return &entity.Match{}, fmt.Errorf("failed to get match by id: %w", err)
	}

	var existingMatch entity.Match
	if err = json.Unmarshal([]byte(response), &existingMatch); err != nil {
		return &entity.Match{}, fmt.Errorf("failed to unmarshal match: %w", err)
	}

	return &existingMatch, nil
}

// GetLatest returns the most recently saved match.
func (that *dbMatch) GetLatest(ctx context.Context) (*entity.Match, error) {
	id, err := that.client.Get(ctx, latestMatchKey).Result()
	if errors.Is(err, redis.Nil) {
		return &entity.Match{}, apperror.ErrMatchNotFound
	}

	if err != nil {
		return &entity.Match{}, fmt.Errorf("failed to get latest match id: %w", err)
	}

	return that.GetByID(ctx, id)
}

func (that *dbMatch) DeleteByID(ctx context.Context, id string) error {
	deleted, err := that.client.Del(ctx, matchKeyPrefix+id).Result()
	if err != nil {
		return fmt.Errorf("failed to delete match by id: %w", err)
	}

	if deleted == 0 {
		return apperror.ErrMatchNotFound
	}

	return nil
}
