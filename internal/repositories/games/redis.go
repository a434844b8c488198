package games

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/KirkDiggler/wolfbot/internal/domain/game"
	apperr "github.com/KirkDiggler/wolfbot/internal/errors"
	"github.com/redis/go-redis/v9"
)

// DefaultKey is where the game document lives unless configured otherwise
const DefaultKey = "wolfbot:game"

// envelope is the stored value: the document plus its version
type envelope struct {
	Version Version         `json:"version"`
	Game    json.RawMessage `json:"game"`
}

// RedisRepoConfig holds configuration for the redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
	Key    string // Optional, defaults to DefaultKey
}

type redisRepo struct {
	client redis.UniversalClient
	key    string
}

// NewRedisRepository creates a repository storing the game under one key
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil || cfg.Client == nil {
		panic("redis client is required")
	}

	key := cfg.Key
	if key == "" {
		key = DefaultKey
	}
	return &redisRepo{
		client: cfg.Client,
		key:    key,
	}
}

// NewRedis creates a redis repository at key
func NewRedis(client redis.UniversalClient, key string) Repository {
	return NewRedisRepository(&RedisRepoConfig{
		Client: client,
		Key:    key,
	})
}

func (r *redisRepo) Load(ctx context.Context) (g *game.Game, version Version, err error) {
	defer func(start time.Time) { observe(backendRedis, opLoad, start, err) }(time.Now())

	raw, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, NoVersion, apperr.Persistence(nil, "no game stored").WithMeta("key", r.key)
	}
	if err != nil {
		return nil, NoVersion, apperr.Persistence(err, "failed to get game from redis").WithMeta("key", r.key)
	}

	env, err := decodeEnvelope(raw)
	if err != nil {
		return nil, NoVersion, apperr.Wrap(err, "failed to load game").WithMeta("key", r.key)
	}
	g, err = decodeGame(env.Game)
	if err != nil {
		return nil, NoVersion, apperr.Wrap(err, "failed to load game").WithMeta("key", r.key)
	}
	return g, env.Version, nil
}

func (r *redisRepo) Save(ctx context.Context, g *game.Game, expected Version) (version Version, err error) {
	defer func(start time.Time) { observe(backendRedis, opSave, start, err) }(time.Now())

	data, err := encodeGame(g)
	if err != nil {
		return NoVersion, err
	}
	next := versionOf(data)
	value, err := json.Marshal(envelope{Version: next, Game: data})
	if err != nil {
		return NoVersion, apperr.Persistence(err, "failed to encode game envelope")
	}

	err = r.client.Watch(ctx, func(tx *redis.Tx) error {
		current := NoVersion
		raw, err := tx.Get(ctx, r.key).Bytes()
		switch {
		case errors.Is(err, redis.Nil):
		case err != nil:
			return apperr.Persistence(err, "failed to get game from redis").WithMeta("key", r.key)
		default:
			env, err := decodeEnvelope(raw)
			if err != nil {
				return err
			}
			current = env.Version
		}

		if !matches(expected, current) {
			return apperr.ConcurrentModificationf("game changed since it was loaded").WithMeta("key", r.key)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, r.key, value, 0)
			return nil
		})
		return err
	}, r.key)

	switch {
	case err == nil:
		return next, nil
	case errors.Is(err, redis.TxFailedErr):
		storeConflictsTotal.WithLabelValues(backendRedis).Inc()
		return NoVersion, apperr.ConcurrentModificationf("game changed during save").WithMeta("key", r.key)
	case apperr.IsConcurrentModification(err):
		storeConflictsTotal.WithLabelValues(backendRedis).Inc()
		return NoVersion, err
	case apperr.IsPersistence(err):
		return NoVersion, err
	default:
		return NoVersion, apperr.Persistence(err, "failed to save game to redis").WithMeta("key", r.key)
	}
}

func (r *redisRepo) Exists(ctx context.Context) (bool, error) {
	n, err := r.client.Exists(ctx, r.key).Result()
	if err != nil {
		return false, apperr.Persistence(err, "failed to check game in redis").WithMeta("key", r.key)
	}
	return n > 0, nil
}

func decodeEnvelope(raw []byte) (envelope, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return envelope{}, apperr.Persistence(err, "failed to parse game envelope")
	}
	if len(env.Game) == 0 {
		return envelope{}, apperr.Persistence(nil, "game envelope has no document")
	}
	return env, nil
}
