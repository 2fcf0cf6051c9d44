package playersave

import (
	"context"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/codequest/internal/errors"
	"github.com/KirkDiggler/codequest/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/codequest/internal/redis"
)

// SaveKeyPrefix prefixes every save key: player_save:{slot}
const SaveKeyPrefix = "player_save:"

// RedisConfig holds the configuration for the Redis repository
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		c.Clock = clock.New()
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a save store backed by Redis. Saves never expire.
func NewRedisRepository(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Load(ctx context.Context, input LoadInput) (*LoadOutput, error) {
	if input.Slot == "" {
		return nil, errors.InvalidArgument(errSlotEmpty)
	}

	data, err := r.client.Get(ctx, r.buildKey(input.Slot)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("save %q not found", input.Slot)
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to load save from Redis")
	}

	player, err := decode(input.Slot, data)
	if err != nil {
		return nil, err
	}

	return &LoadOutput{Player: player}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateSave(input); err != nil {
		return nil, err
	}

	snapshot := input.Player.Clone()
	snapshot.SavedAt = r.clock.Now()

	data, err := encode(&snapshot)
	if err != nil {
		return nil, err
	}

	if err := r.client.Set(ctx, r.buildKey(input.Slot), data, 0).Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to store save in Redis")
	}

	return &SaveOutput{SavedAt: snapshot.SavedAt}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.Slot == "" {
		return nil, errors.InvalidArgument(errSlotEmpty)
	}

	n, err := r.client.Del(ctx, r.buildKey(input.Slot)).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to delete save from Redis")
	}

	return &DeleteOutput{Deleted: n > 0}, nil
}

func (r *redisRepository) buildKey(slot string) string {
	return SaveKeyPrefix + slot
}
