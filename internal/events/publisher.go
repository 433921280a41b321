// Package events publishes side-channel notifications to Redis channels.
// Consumers (the Gateway SSE forwarder, audit tooling) subscribe out of band;
// publishing is always non-fatal to the operation that triggered it.
package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Channel names.
const (
	ChannelApplicationSubmitted = "EVENT_APPLICATION_SUBMITTED"
	ChannelJobAlertsSent        = "EVENT_JOB_ALERTS_SENT"
)

// Publisher emits an event payload on a named channel.
type Publisher interface {
	Publish(ctx context.Context, channel string, payload any) error
}

// RedisPublisher publishes JSON-encoded payloads via Redis pub/sub.
type RedisPublisher struct {
	rdb *redis.Client
}

// NewRedisPublisher returns a Publisher backed by the given Redis client.
func NewRedisPublisher(rdb *redis.Client) *RedisPublisher {
	return &RedisPublisher{rdb: rdb}
}

// Publish JSON-encodes payload and publishes it on channel.
func (p *RedisPublisher) Publish(ctx context.Context, channel string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", channel, err)
	}
	if err := p.rdb.Publish(ctx, channel, data).Err(); err != nil {
		return fmt.Errorf("publish %s: %w", channel, err)
	}
	return nil
}
