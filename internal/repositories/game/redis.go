package game

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fkoehler/spielstand/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	sessionKeyPrefix  = "session:"
	roundsKeyPrefix   = "session:rounds:"
	pausedSessionsKey = "sessions:paused"
)

// ErrSessionNotFound is returned when a session is not found
var ErrSessionNotFound = errors.New("session not found")

// ErrRoundOutOfSequence is returned when an upserted round would leave
// a gap in the round numbers
var ErrRoundOutOfSequence = errors.New("round number out of sequence")

// Config holds configuration for the Redis game repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed session repository
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

// UpsertSession persists a session row to Redis and maintains the
// paused-sessions index
func (r *redisRepository) UpsertSession(ctx context.Context, input *UpsertSessionInput) error {
	if input == nil || input.Session == nil {
		return errors.New("input and session cannot be nil")
	}

	sessionJSON, err := json.Marshal(input.Session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	pipe := r.client.Pipeline()

	sessionKey := fmt.Sprintf("%s%s", sessionKeyPrefix, input.Session.ID)
	pipe.Set(ctx, sessionKey, sessionJSON, 0)

	if input.Session.Status == models.SessionStatusPaused {
		pipe.SAdd(ctx, pausedSessionsKey, input.Session.ID)
	} else {
		pipe.SRem(ctx, pausedSessionsKey, input.Session.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// GetSession retrieves a session by ID from Redis
func (r *redisRepository) GetSession(ctx context.Context, input *GetSessionInput) (*models.GameSession, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	sessionKey := fmt.Sprintf("%s%s", sessionKeyPrefix, input.SessionID)
	sessionJSON, err := r.client.Get(ctx, sessionKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session models.GameSession
	if err := json.Unmarshal([]byte(sessionJSON), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &session, nil
}

// UpsertRound persists one round in the session's round list. A round
// numbered past the end of the list must extend it by exactly one.
func (r *redisRepository) UpsertRound(ctx context.Context, input *UpsertRoundInput) error {
	if input == nil || input.SessionID == "" || input.Round == nil {
		return errors.New("input, session ID and round cannot be empty")
	}

	roundJSON, err := json.Marshal(input.Round)
	if err != nil {
		return fmt.Errorf("failed to marshal round: %w", err)
	}

	roundsKey := fmt.Sprintf("%s%s", roundsKeyPrefix, input.SessionID)

	length, err := r.client.LLen(ctx, roundsKey).Result()
	if err != nil {
		return fmt.Errorf("failed to get round count: %w", err)
	}

	switch {
	case input.Round.Number >= 1 && int64(input.Round.Number) <= length:
		if err := r.client.LSet(ctx, roundsKey, int64(input.Round.Number-1), roundJSON).Err(); err != nil {
			return fmt.Errorf("failed to update round %d: %w", input.Round.Number, err)
		}
	case int64(input.Round.Number) == length+1:
		if err := r.client.RPush(ctx, roundsKey, roundJSON).Err(); err != nil {
			return fmt.Errorf("failed to append round %d: %w", input.Round.Number, err)
		}
	default:
		return fmt.Errorf("%w: round %d with %d rounds stored", ErrRoundOutOfSequence, input.Round.Number, length)
	}

	return nil
}

// RemoveLastRound drops the most recent round of a session
func (r *redisRepository) RemoveLastRound(ctx context.Context, input *RemoveLastRoundInput) error {
	if input == nil || input.SessionID == "" {
		return errors.New("input and session ID cannot be empty")
	}

	roundsKey := fmt.Sprintf("%s%s", roundsKeyPrefix, input.SessionID)
	if err := r.client.RPop(ctx, roundsKey).Err(); err != nil {
		if err == redis.Nil {
			// Nothing stored; removing is already done
			return nil
		}
		return fmt.Errorf("failed to remove last round: %w", err)
	}

	return nil
}

// LoadRounds retrieves all rounds of a session ordered by round number
func (r *redisRepository) LoadRounds(ctx context.Context, input *LoadRoundsInput) (*LoadRoundsOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	roundsKey := fmt.Sprintf("%s%s", roundsKeyPrefix, input.SessionID)
	rows, err := r.client.LRange(ctx, roundsKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load rounds: %w", err)
	}

	rounds := make([]*models.Round, 0, len(rows))
	for i, row := range rows {
		var round models.Round
		if err := json.Unmarshal([]byte(row), &round); err != nil {
			return nil, fmt.Errorf("failed to unmarshal round at position %d: %w", i+1, err)
		}
		rounds = append(rounds, &round)
	}

	return &LoadRoundsOutput{
		Rounds: rounds,
	}, nil
}

// ListPausedSessions retrieves summaries of all paused sessions
func (r *redisRepository) ListPausedSessions(ctx context.Context, input *ListPausedSessionsInput) (*ListPausedSessionsOutput, error) {
	sessionIDs, err := r.client.SMembers(ctx, pausedSessionsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get paused session IDs: %w", err)
	}

	summaries := make([]*SessionSummary, 0, len(sessionIDs))
	for _, sessionID := range sessionIDs {
		session, err := r.GetSession(ctx, &GetSessionInput{SessionID: sessionID})
		if err != nil {
			if errors.Is(err, ErrSessionNotFound) {
				// Session row was deleted without cleaning the index
				continue
			}
			return nil, err
		}

		roundsKey := fmt.Sprintf("%s%s", roundsKeyPrefix, sessionID)
		roundCount, err := r.client.LLen(ctx, roundsKey).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to get round count for session %s: %w", sessionID, err)
		}

		summaries = append(summaries, &SessionSummary{
			SessionID:  session.ID,
			Kind:       session.Kind,
			PlayerIDs:  session.PlayerIDs,
			RoundCount: int(roundCount),
			UpdatedAt:  session.UpdatedAt,
		})
	}

	return &ListPausedSessionsOutput{
		Summaries: summaries,
	}, nil
}

// DeleteSessionCompletely removes a session and all its rounds
func (r *redisRepository) DeleteSessionCompletely(ctx context.Context, input *DeleteSessionInput) error {
	if input == nil || input.SessionID == "" {
		return errors.New("input and session ID cannot be empty")
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, fmt.Sprintf("%s%s", sessionKeyPrefix, input.SessionID))
	pipe.Del(ctx, fmt.Sprintf("%s%s", roundsKeyPrefix, input.SessionID))
	pipe.SRem(ctx, pausedSessionsKey, input.SessionID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}
