package packs

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/hol-api/internal/entities/hol"
	"github.com/KirkDiggler/hol-api/internal/errors"
	"github.com/KirkDiggler/hol-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/hol-api/internal/redis"
)

const (
	packKeyPrefix = "pack:"
	packIndexKey  = "pack:index"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis pack repository
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

// NewRedis creates a new Redis-backed pack repository
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

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument("pack ID cannot be empty")
	}

	result, err := r.client.Get(ctx, packKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("pack %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get pack")
	}

	var pack hol.Pack
	if err := json.Unmarshal([]byte(result), &pack); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal pack")
	}

	return &GetOutput{Pack: &pack}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Pack == nil {
		return nil, errors.InvalidArgument("pack cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Pack.Name, vb)
	errors.ValidateRequired("package", input.Pack.Package, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	pack := *input.Pack
	pack.ID = hol.PackID(pack.Package, pack.Name)
	if pack.CreatedAt.IsZero() {
		pack.CreatedAt = r.clock.Now()
	}

	data, err := json.Marshal(&pack)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal pack")
	}

	created, err := r.client.SetNX(ctx, packKeyPrefix+pack.ID, data, 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create pack")
	}
	if !created {
		return nil, errors.AlreadyExistsf("pack %s already exists", pack.ID)
	}

	if err := r.client.SAdd(ctx, packIndexKey, pack.ID).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to index pack")
	}

	slog.InfoContext(ctx, "created pack",
		"pack_id", pack.ID,
		"document_type", pack.DocumentType)

	return &CreateOutput{Pack: &pack}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	ids, err := r.client.SMembers(ctx, packIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list packs")
	}
	sort.Strings(ids)

	out := make([]*hol.Pack, 0, len(ids))
	for _, id := range ids {
		got, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				r.client.SRem(ctx, packIndexKey, id)
				continue
			}
			return nil, err
		}
		out = append(out, got.Pack)
	}

	return &ListOutput{Packs: out}, nil
}

func (r *redisRepository) SetLocked(ctx context.Context, input SetLockedInput) (*SetLockedOutput, error) {
	got, err := r.Get(ctx, GetInput{ID: input.ID})
	if err != nil {
		return nil, err
	}

	pack := got.Pack
	pack.Locked = input.Locked

	data, err := json.Marshal(pack)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal pack")
	}

	updated, err := r.client.SetXX(ctx, packKeyPrefix+pack.ID, data, 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update pack")
	}
	if !updated {
		return nil, errors.NotFoundf("pack %s not found", pack.ID)
	}

	slog.DebugContext(ctx, "pack lock changed",
		"pack_id", pack.ID,
		"locked", pack.Locked)

	return &SetLockedOutput{Pack: pack}, nil
}
