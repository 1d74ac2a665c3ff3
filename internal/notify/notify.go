// Package notify is the outbound notification sink: best-effort chat message
// delivery through the Telegram Bot API. Sends are queued on a worker pool
// and guarded by a circuit breaker; failures are logged and dropped, never
// surfaced to the state transition that triggered the message.
package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/avkuzmin/wbcashback/internal/metrics"
	"github.com/avkuzmin/wbcashback/pkg/clients"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

const (
	apiURL      = "https://api.telegram.org"
	poolSize    = 4
	sendTimeout = 2 * time.Second
)

type sendMessageRequest struct {
	ChatID    int64  `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

type Service struct {
	url     string
	client  clients.HTTPClientI
	breaker *gobreaker.CircuitBreaker
	pool    WorkerPoolI
	timeout time.Duration
}

func New(token string, client clients.HTTPClientI) *Service {
	return &Service{
		url:     fmt.Sprintf("%s/bot%s/sendMessage", apiURL, token),
		client:  client,
		breaker: newBreaker(),
		pool:    NewWorkerPool(poolSize),
		timeout: sendTimeout,
	}
}

func newBreaker() *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "telegram-notify",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			zap.L().Warn("circuit breaker state change",
				zap.String("name", name), zap.String("from", from.String()), zap.String("to", to.String()))
		},
	})
}

// Notify queues one message for delivery and returns immediately.
func (s *Service) Notify(telegramID int64, text string) {
	task := func() error {
		s.send(telegramID, text)
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	if err := s.pool.AddTask(ctx, task); err != nil {
		metrics.NotificationsFailed.Inc()
		zap.L().Warn("notification dropped, queue full", zap.Int64("telegram_id", telegramID))
	}
}

func (s *Service) send(telegramID int64, text string) {
	_, err := s.breaker.Execute(func() (any, error) {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		status, _, err := s.client.PostJSON(ctx, s.url, sendMessageRequest{
			ChatID:    telegramID,
			Text:      text,
			ParseMode: "HTML",
		})
		if err != nil {
			return nil, err
		}
		if status >= 400 {
			return nil, fmt.Errorf("sendMessage returned status %d", status)
		}
		return nil, nil
	})
	if err != nil {
		metrics.NotificationsFailed.Inc()
		zap.L().Warn("notification delivery failed",
			zap.Int64("telegram_id", telegramID), zap.Error(err))
		return
	}
	metrics.NotificationsSent.Inc()
}

func (s *Service) Close() {
	s.pool.Close()
}
