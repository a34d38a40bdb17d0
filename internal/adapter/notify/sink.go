// Package notify delivers domain events to the outside world after the
// transition that produced them has committed. Delivery is best effort:
// nothing here ever reports a failure back to the caller.
package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/hireflow-backend/internal/domain"
)

// publisher is the subset of *redis.Client the sink uses.
type publisher interface {
	Publish(ctx context.Context, channel string, message any) *redis.IntCmd
}

// RedisSink queues events in memory and publishes them as JSON on a Redis
// channel from a single background worker. A full queue drops the event.
type RedisSink struct {
	pub     publisher
	channel string
	timeout time.Duration
	queue   chan domain.Event
	log     *slog.Logger
}

// NewRedisSink creates a sink with a queue of bufferSize events.
// Run must be started for events to leave the queue.
func NewRedisSink(log *slog.Logger, pub publisher, channel string, bufferSize int, timeout time.Duration) *RedisSink {
	return &RedisSink{
		pub:     pub,
		channel: channel,
		timeout: timeout,
		queue:   make(chan domain.Event, bufferSize),
		log:     log.With("component", "notify.redis"),
	}
}

// Notify enqueues the event without blocking.
func (s *RedisSink) Notify(ctx context.Context, event domain.Event) {
	select {
	case s.queue <- event:
	default:
		s.log.WarnContext(ctx, "notification queue full, event dropped",
			slog.String("event_id", event.ID.String()),
			slog.String("event_type", event.Type.String()),
		)
	}
}

// Run publishes queued events until ctx is cancelled, then flushes what is
// already queued and returns.
func (s *RedisSink) Run(ctx context.Context) error {
	s.log.Info("notification dispatcher started", slog.String("channel", s.channel))
	for {
		select {
		case event := <-s.queue:
			s.publish(ctx, event)
		case <-ctx.Done():
			s.drain()
			s.log.Info("notification dispatcher stopped")
			return nil
		}
	}
}

func (s *RedisSink) drain() {
	for {
		select {
		case event := <-s.queue:
			s.publish(context.Background(), event)
		default:
			return
		}
	}
}

func (s *RedisSink) publish(ctx context.Context, event domain.Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		s.log.Warn("marshal event", slog.String("event_id", event.ID.String()), slog.String("error", err.Error()))
		return
	}

	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
	defer cancel()

	if err := s.pub.Publish(pubCtx, s.channel, payload).Err(); err != nil {
		s.log.Warn("publish event",
			slog.String("event_id", event.ID.String()),
			slog.String("event_type", event.Type.String()),
			slog.String("error", err.Error()),
		)
		return
	}
	s.log.Debug("event published",
		slog.String("event_id", event.ID.String()),
		slog.String("event_type", event.Type.String()),
	)
}

// LogSink writes events to the log. It is used when Redis is not configured.
type LogSink struct {
	log *slog.Logger
}

// NewLogSink creates a LogSink.
func NewLogSink(log *slog.Logger) *LogSink {
	return &LogSink{log: log.With("component", "notify.log")}
}

// Notify logs the event at Info.
func (s *LogSink) Notify(ctx context.Context, event domain.Event) {
	s.log.InfoContext(ctx, "event",
		slog.String("event_id", event.ID.String()),
		slog.String("event_type", event.Type.String()),
		slog.String("entity_type", event.EntityType.String()),
		slog.String("entity_id", event.EntityID.String()),
		slog.Int("recipients", len(event.Recipients)),
	)
}
