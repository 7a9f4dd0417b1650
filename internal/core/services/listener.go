// internal/core/services/listener.go
package services

import (
	"context"
	"encoding/json"
	"log/slog"

	"inference-back/internal/core/model"
	"inference-back/internal/core/ports"
	"inference-back/internal/observability"
)

// MessageListenerService ingests result messages from the shared central
// channel and completes the matching inferences. It runs for the lifetime of
// the process, decoupled from the request path.
type MessageListenerService struct {
	ports ports.Ports
	log   *slog.Logger
}

func NewMessageListenerService(p ports.Ports, log *slog.Logger) *MessageListenerService {
	if log == nil {
		log = slog.Default()
	}
	return &MessageListenerService{ports: p, log: log}
}

// Subscribe establishes the standing subscription. It must complete before
// any worker is expected to publish a result.
func (s *MessageListenerService) Subscribe(ctx context.Context, channel string) error {
	return s.ports.MessageService.Subscribe(ctx, channel)
}

// ListenAndUpdate blocks until one message arrives on channel, persists the
// result and marks the inference completed. Failures are logged and dropped:
// one bad or late message, or a transient transport error, must never halt
// the listener. Delivery is at-most-once; there is no retry or requeue.
//
// The returned error is non-nil only when the context was cancelled;
// everything else is swallowed.
func (s *MessageListenerService) ListenAndUpdate(ctx context.Context, channel string) error {
	payload, err := s.ports.MessageService.WaitForMessage(ctx, channel)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		s.drop(channel, nil, "wait", err)
		return nil
	}

	var update model.ResultUpdate
	if err := json.Unmarshal(payload, &update); err != nil {
		s.drop(channel, payload, "bad_payload", err)
		return nil
	}

	if err := s.ports.Database.UpdateResult(ctx, update); err != nil {
		s.drop(channel, payload, "store_result", err)
		return nil
	}

	if err := s.ports.Database.UpdateInferenceStatus(ctx, update.InferenceID, model.StatusCompleted); err != nil {
		s.drop(channel, payload, "update_status", err)
		return nil
	}

	observability.ResultsProcessed.Inc()
	return nil
}

// Run subscribes and processes messages until ctx is cancelled.
func (s *MessageListenerService) Run(ctx context.Context, channel string) error {
	if err := s.Subscribe(ctx, channel); err != nil {
		return err
	}
	s.log.Info("listening for results", "channel", channel)
	for {
		if err := s.ListenAndUpdate(ctx, channel); err != nil {
			return err
		}
	}
}

func (s *MessageListenerService) drop(channel string, payload []byte, reason string, err error) {
	observability.ListenerFailures.WithLabelValues(reason).Inc()
	s.log.Error("dropping result message",
		"channel", channel,
		"reason", reason,
		"payload", string(payload),
		"error", err,
	)
}
