package session

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/jsamuelsen11/kanban-engine/internal/domain"
	"github.com/jsamuelsen11/kanban-engine/internal/domain/session"
	"github.com/jsamuelsen11/kanban-engine/internal/ports"
)

// RelayName identifies the relay in health results.
const RelayName = "session-relay"

var (
	_ Relay               = (*RedisRelay)(nil)
	_ ports.HealthChecker = (*RedisRelay)(nil)
)

// RelayMessage is the pub/sub payload for one session change.
type RelayMessage struct {
	Kind    session.EventKind `json:"kind"`
	OwnerID string            `json:"owner_id"`
	Origin  string            `json:"origin"`
}

// RedisRelay shares session changes over a Redis pub/sub channel. Messages
// this relay published are not delivered back to it.
type RedisRelay struct {
	rc      *redis.Client
	channel string
	origin  string
	logger  *slog.Logger
}

// NewRedisRelay creates a relay on channel.
func NewRedisRelay(rc *redis.Client, channel string, logger *slog.Logger) *RedisRelay {
	return &RedisRelay{
		rc:      rc,
		channel: channel,
		origin:  uuid.NewString(),
		logger:  logger,
	}
}

// Publish sends msg stamped with this relay's origin.
func (r *RedisRelay) Publish(ctx context.Context, msg RelayMessage) error {
	msg.Origin = r.origin
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encoding relay message: %w", err)
	}
	if err := r.rc.Publish(ctx, r.channel, data).Err(); err != nil {
		return fmt.Errorf("publishing to %s: %w: %w", r.channel, domain.ErrUnavailable, err)
	}
	return nil
}

// Subscribe delivers messages from other origins until ctx is done.
// It returns once the subscription is closed.
func (r *RedisRelay) Subscribe(ctx context.Context, deliver func(RelayMessage)) error {
	sub := r.rc.Subscribe(ctx, r.channel)
	defer sub.Close()

	// Wait for the confirmation so publishes after this point are seen.
	if _, err := sub.Receive(ctx); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("subscribing to %s: %w: %w", r.channel, domain.ErrUnavailable, err)
	}

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case m, ok := <-ch:
			if !ok {
				return nil
			}
			var msg RelayMessage
			if err := json.Unmarshal([]byte(m.Payload), &msg); err != nil {
				r.logger.WarnContext(ctx, "dropping malformed session message", slog.Any("error", err))
				continue
			}
			if msg.Origin == r.origin {
				continue
			}
			deliver(msg)
		}
	}
}

// Name implements ports.HealthChecker.
func (r *RedisRelay) Name() string { return RelayName }

// HealthCheck pings Redis.
func (r *RedisRelay) HealthCheck(ctx context.Context) error {
	return r.rc.Ping(ctx).Err()
}
