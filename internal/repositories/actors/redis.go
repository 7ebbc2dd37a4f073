package actors

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/hol-api/internal/entities/hol"
	"github.com/KirkDiggler/hol-api/internal/errors"
	"github.com/KirkDiggler/hol-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/hol-api/internal/redis"
)

const (
	actorKeyPrefix = "actor:"

	errActorNil     = "actor cannot be nil"
	errActorIDEmpty = "actor ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis actor repository
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed actor repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Actor == nil {
		return nil, errors.InvalidArgument(errActorNil)
	}
	if input.Actor.ID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}

	actor := *input.Actor
	now := r.clock.Now()
	if actor.CreatedAt.IsZero() {
		actor.CreatedAt = now
	}
	actor.UpdatedAt = now

	data, err := json.Marshal(&actor)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal actor")
	}

	created, err := r.client.SetNX(ctx, actorKeyPrefix+actor.ID, data, 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create actor")
	}
	if !created {
		return nil, errors.AlreadyExistsf("actor with ID %s already exists", actor.ID)
	}

	return &CreateOutput{Actor: &actor}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}

	result, err := r.client.Get(ctx, actorKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("actor with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get actor")
	}

	var actor hol.Actor
	if err := json.Unmarshal([]byte(result), &actor); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal actor")
	}

	return &GetOutput{Actor: &actor}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Actor == nil {
		return nil, errors.InvalidArgument(errActorNil)
	}
	if input.Actor.ID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}

	actor := *input.Actor
	actor.UpdatedAt = r.clock.Now()

	data, err := json.Marshal(&actor)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal actor")
	}

	// XX: only overwrite an actor that still exists
	updated, err := r.client.SetXX(ctx, actorKeyPrefix+actor.ID, data, 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update actor")
	}
	if !updated {
		return nil, errors.NotFoundf("actor with ID %s not found", actor.ID)
	}

	return &UpdateOutput{Actor: &actor}, nil
}
