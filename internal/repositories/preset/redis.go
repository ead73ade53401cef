package preset

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/fkoehler/spielstand/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	presetKeyPrefix = "preset:"
	presetsKey      = "presets"
)

// ErrPresetNotFound is returned when a preset is not found
var ErrPresetNotFound = errors.New("preset not found")

// Config holds configuration for the Redis preset repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed preset repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SavePreset persists a preset to Redis
func (r *redisRepository) SavePreset(ctx context.Context, input *SavePresetInput) error {
	if input == nil || input.Preset == nil {
		return errors.New("input and preset cannot be nil")
	}

	if input.Preset.Name == "" {
		return errors.New("preset name cannot be empty")
	}

	presetJSON, err := json.Marshal(input.Preset)
	if err != nil {
		return fmt.Errorf("failed to marshal preset: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, fmt.Sprintf("%s%s", presetKeyPrefix, input.Preset.Name), presetJSON, 0)
	pipe.SAdd(ctx, presetsKey, input.Preset.Name)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save preset: %w", err)
	}

	return nil
}

// GetPreset retrieves a preset by name from Redis
func (r *redisRepository) GetPreset(ctx context.Context, input *GetPresetInput) (*models.Preset, error) {
	if input == nil || input.Name == "" {
		return nil, errors.New("input and preset name cannot be empty")
	}

	presetJSON, err := r.client.Get(ctx, fmt.Sprintf("%s%s", presetKeyPrefix, input.Name)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrPresetNotFound
		}
		return nil, fmt.Errorf("failed to get preset: %w", err)
	}

	var preset models.Preset
	if err := json.Unmarshal([]byte(presetJSON), &preset); err != nil {
		return nil, fmt.Errorf("failed to unmarshal preset: %w", err)
	}

	return &preset, nil
}

// ListPresets retrieves all saved presets from Redis, sorted by name
func (r *redisRepository) ListPresets(ctx context.Context, input *ListPresetsInput) (*ListPresetsOutput, error) {
	names, err := r.client.SMembers(ctx, presetsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get preset names: %w", err)
	}

	presets := make([]*models.Preset, 0, len(names))
	for _, name := range names {
		preset, err := r.GetPreset(ctx, &GetPresetInput{Name: name})
		if err != nil {
			if errors.Is(err, ErrPresetNotFound) {
				continue
			}
			return nil, err
		}
		presets = append(presets, preset)
	}

	sort.Slice(presets, func(i, j int) bool {
		return presets[i].Name < presets[j].Name
	})

	return &ListPresetsOutput{
		Presets: presets,
	}, nil
}

// DeletePreset removes a preset from Redis
func (r *redisRepository) DeletePreset(ctx context.Context, input *DeletePresetInput) error {
	if input == nil || input.Name == "" {
		return errors.New("input and preset name cannot be empty")
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, fmt.Sprintf("%s%s", presetKeyPrefix, input.Name))
	pipe.SRem(ctx, presetsKey, input.Name)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete preset: %w", err)
	}

	return nil
}
