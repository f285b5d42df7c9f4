package authservice

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisEventSink publishes events as JSON on a Redis channel named after
// the topic. Pub/sub delivers only to currently connected subscribers,
// which matches the best-effort contract of the sink.
type redisEventSink struct {
	client *redis.Client
}

func NewRedisEventSink(client *redis.Client) EventSink {
	return &redisEventSink{client: client}
}

func (s *redisEventSink) Publish(topic string, message any) error {
	payload, err := json.Marshal(message)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return s.client.Publish(ctx, topic, payload).Err()
}
