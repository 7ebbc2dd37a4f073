package items

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
	itemKeyPrefix   = "item:"
	packIndexPrefix = "item:pack:"
	worldIndexKey   = "item:world"

	errItemNil     = "item cannot be nil"
	errItemIDEmpty = "item ID cannot be empty"
	errPackIDEmpty = "pack ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis item repository
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

// NewRedis creates a new Redis-backed item repository
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

func indexKey(pack string) string {
	if pack == "" {
		return worldIndexKey
	}
	return packIndexPrefix + pack
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Item == nil {
		return nil, errors.InvalidArgument(errItemNil)
	}
	if input.Item.ID == "" {
		return nil, errors.InvalidArgument(errItemIDEmpty)
	}

	key := itemKeyPrefix + input.Item.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("item with ID %s already exists", input.Item.ID)
	}

	item := input.Item.Clone()
	now := r.clock.Now()
	if item.CreatedAt.IsZero() {
		item.CreatedAt = now
	}
	item.UpdatedAt = now

	data, err := json.Marshal(item)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal item")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, indexKey(item.Pack), item.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create item")
	}

	return &CreateOutput{Item: item}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errItemIDEmpty)
	}

	item, err := r.get(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &GetOutput{Item: item}, nil
}

func (r *redisRepository) get(ctx context.Context, id string) (*hol.Item, error) {
	result, err := r.client.Get(ctx, itemKeyPrefix+id).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("item with ID %s not found", id)
		}
		return nil, errors.Wrapf(err, "failed to get item")
	}

	var item hol.Item
	if err := json.Unmarshal([]byte(result), &item); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal item")
	}

	return &item, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Item == nil {
		return nil, errors.InvalidArgument(errItemNil)
	}
	if input.Item.ID == "" {
		return nil, errors.InvalidArgument(errItemIDEmpty)
	}

	existing, err := r.get(ctx, input.Item.ID)
	if err != nil {
		return nil, err
	}

	item := input.Item.Clone()
	item.CreatedAt = existing.CreatedAt
	item.UpdatedAt = r.clock.Now()

	data, err := json.Marshal(item)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal item")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, itemKeyPrefix+item.ID, data, 0)

	if existing.Pack != item.Pack {
		pipe.SRem(ctx, indexKey(existing.Pack), item.ID)
		pipe.SAdd(ctx, indexKey(item.Pack), item.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to update item")
	}

	return &UpdateOutput{Item: item}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errItemIDEmpty)
	}

	existing, err := r.get(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, itemKeyPrefix+input.ID)
	pipe.SRem(ctx, indexKey(existing.Pack), input.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete item")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) ListByPack(ctx context.Context, input ListByPackInput) (*ListByPackOutput, error) {
	if input.PackID == "" {
		return nil, errors.InvalidArgument(errPackIDEmpty)
	}

	items, err := r.listByIndex(ctx, indexKey(input.PackID))
	if err != nil {
		return nil, err
	}

	return &ListByPackOutput{Items: items}, nil
}

func (r *redisRepository) DeleteByPack(ctx context.Context, input DeleteByPackInput) (*DeleteByPackOutput, error) {
	if input.PackID == "" {
		return nil, errors.InvalidArgument(errPackIDEmpty)
	}

	key := indexKey(input.PackID)
	ids, err := r.client.SMembers(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get items from index %s", key)
	}

	pipe := r.client.TxPipeline()
	for _, id := range ids {
		pipe.Del(ctx, itemKeyPrefix+id)
	}
	pipe.Del(ctx, key)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to clear pack %s", input.PackID)
	}

	slog.InfoContext(ctx, "cleared pack",
		"pack_id", input.PackID,
		"deleted", len(ids))

	return &DeleteByPackOutput{Deleted: len(ids)}, nil
}

func (r *redisRepository) ListWorld(ctx context.Context, _ ListWorldInput) (*ListWorldOutput, error) {
	items, err := r.listByIndex(ctx, worldIndexKey)
	if err != nil {
		return nil, err
	}

	return &ListWorldOutput{Items: items}, nil
}

// listByIndex loads every item in an index set, dropping ids whose document
// has gone away
func (r *redisRepository) listByIndex(ctx context.Context, key string) ([]*hol.Item, error) {
	ids, err := r.client.SMembers(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get items from index %s", key)
	}

	items := make([]*hol.Item, 0, len(ids))
	for _, id := range ids {
		item, err := r.get(ctx, id)
		if err != nil {
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "item not found, cleaning up index",
					"item_id", id,
					"index_key", key)
				r.client.SRem(ctx, key, id)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get item %s", id)
		}
		items = append(items, item)
	}

	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.Before(items[j].CreatedAt)
		}
		return items[i].ID < items[j].ID
	})

	return items, nil
}
