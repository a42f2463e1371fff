package cache

//go:generate mockgen -source=redis.go -destination=mocks/mock_redis.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
	"github.com/vfg2006/campaign-pacing-api/internal/domain"
)

const pacingKeyPrefix = "pacing:v1:"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PacingCache memoiza resultados do motor de pacing pela entrada completa
type PacingCache interface {
	Get(ctx context.Context, input domain.PacingInput) (*domain.PacingResult, error)
	Set(ctx context.Context, input domain.PacingInput, result *domain.PacingResult) error
}

type redisPacingCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisClient aceita tanto uma URL redis:// quanto um endereço host:porta
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	var client *redis.Client
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		client = redis.NewClient(&redis.Options{Addr: redisURL})
	} else {
		client = redis.NewClient(opts)
	}

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("erro ao conectar no redis: %w", err)
	}

	return client, nil
}

func NewPacingCache(client *redis.Client, ttl time.Duration) PacingCache {
	return &redisPacingCache{
		client: client,
		ttl:    ttl,
	}
}

// Get retorna nil, nil quando não há entrada para o input
func (c *redisPacingCache) Get(ctx context.Context, input domain.PacingInput) (*domain.PacingResult, error) {
	key, err := PacingKey(input)
	if err != nil {
		return nil, err
	}

	payload, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao ler pacing do cache: %w", err)
	}

	var result domain.PacingResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, fmt.Errorf("erro ao decodificar pacing do cache: %w", err)
	}

	return &result, nil
}

func (c *redisPacingCache) Set(ctx context.Context, input domain.PacingInput, result *domain.PacingResult) error {
	key, err := PacingKey(input)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("erro ao codificar pacing: %w", err)
	}

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("erro ao gravar pacing no cache: %w", err)
	}

	return nil
}

// PacingKey deriva a chave do cache a partir do input serializado
func PacingKey(input domain.PacingInput) (string, error) {
	encoded, err := json.Marshal(input)
	if err != nil {
		return "", fmt.Errorf("erro ao codificar input de pacing: %w", err)
	}

	return pacingKeyPrefix + strconv.FormatUint(xxhash.Sum64(encoded), 16), nil
}
