// internal/adapters/messaging/postgres.go
package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"inference-back/internal/core/model"
)

// PostgresMessageService implements ports.MessageServicePort on Postgres
// NOTIFY/LISTEN. Publishing goes through a pool shared with the request path;
// listening uses a dedicated connection owned by the single listener
// goroutine, since WaitForNotification parks the whole connection.
//
// NOTIFY gives at-most-once delivery with no ordering guarantee across
// channels, which is exactly the bus contract this service assumes.
type PostgresMessageService struct {
	pool     *pgxpool.Pool
	listener *pgx.Conn
}

func NewPostgresMessageService(ctx context.Context, dsn string) (*PostgresMessageService, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create notify pool: %w", err)
	}
	listener, err := pgx.Connect(ctx, dsn)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to open listener connection: %w", err)
	}
	return &PostgresMessageService{pool: pool, listener: listener}, nil
}

// encodeRequestPayload renders a letter's content as the wire payload a
// model worker will decode.
func encodeRequestPayload(content model.InferenceCreation) (string, error) {
	payload, err := json.Marshal(content)
	if err != nil {
		return "", fmt.Errorf("failed to encode request letter: %w", err)
	}
	return string(payload), nil
}

// listenStatement builds the LISTEN command, quoting the channel name as an
// identifier since LISTEN takes no bind parameters.
func listenStatement(channel string) string {
	return "listen " + pgx.Identifier{channel}.Sanitize()
}

// SendMessage publishes the letter's content on its channel and returns once
// the bus has accepted it.
func (s *PostgresMessageService) SendMessage(ctx context.Context, letter model.RequestLetter) error {
	payload, err := encodeRequestPayload(letter.Content)
	if err != nil {
		return err
	}
	if _, err := s.pool.Exec(ctx, "select pg_notify($1, $2)", letter.PublishingChannel, payload); err != nil {
		return fmt.Errorf("failed to publish on %q: %w", letter.PublishingChannel, err)
	}
	return nil
}

// Subscribe starts listening on channel. Safe to call once at startup before
// any message is expected.
func (s *PostgresMessageService) Subscribe(ctx context.Context, channel string) error {
	if _, err := s.listener.Exec(ctx, listenStatement(channel)); err != nil {
		return fmt.Errorf("failed to subscribe to %q: %w", channel, err)
	}
	return nil
}

// WaitForMessage blocks until a notification arrives on channel and returns
// its payload. Notifications for other subscribed channels are discarded.
func (s *PostgresMessageService) WaitForMessage(ctx context.Context, channel string) ([]byte, error) {
	for {
		notification, err := s.listener.WaitForNotification(ctx)
		if err != nil {
			return nil, err
		}
		if notification.Channel == channel {
			return []byte(notification.Payload), nil
		}
	}
}

func (s *PostgresMessageService) Close(ctx context.Context) error {
	s.pool.Close()
	return s.listener.Close(ctx)
}
