// Package reminder nudges users whose orders sit in an intake state for too
// long. Each order is reminded at most once.
package reminder

import (
	"context"
	"fmt"
	"time"

	orderrepo "github.com/avkuzmin/wbcashback/internal/repo/order-repo"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const runTimeout = time.Minute

type OrderRepo interface {
	FindStaleIntake(ctx context.Context, olderThan time.Time) ([]orderrepo.StaleIntake, error)
	MarkReminded(ctx context.Context, ids []int) error
}

type Notifier interface {
	Notify(telegramID int64, text string)
}

type Service struct {
	orders   OrderRepo
	notifier Notifier
	cron     *cron.Cron
	spec     string
	maxAge   time.Duration
}

func New(orders OrderRepo, notifier Notifier, spec string, maxAge time.Duration) *Service {
	return &Service{
		orders:   orders,
		notifier: notifier,
		cron:     cron.New(),
		spec:     spec,
		maxAge:   maxAge,
	}
}

func (s *Service) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.run); err != nil {
		return fmt.Errorf("can't schedule reminder job: %w", err)
	}
	s.cron.Start()
	zap.L().Info("reminder job scheduled", zap.String("spec", s.spec))
	return nil
}

func (s *Service) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Service) run() {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	stale, err := s.orders.FindStaleIntake(ctx, time.Now().Add(-s.maxAge))
	if err != nil {
		zap.L().Error("reminder scan failed", zap.Error(err))
		return
	}
	if len(stale) == 0 {
		return
	}

	ids := make([]int, 0, len(stale))
	for _, order := range stale {
		s.notifier.Notify(order.TelegramID, reminderText(order))
		ids = append(ids, order.OrderID)
	}

	if err := s.orders.MarkReminded(ctx, ids); err != nil {
		zap.L().Error("can't mark orders reminded", zap.Error(err))
	}
}

func reminderText(order orderrepo.StaleIntake) string {
	step := map[string]string{
		"ordered":     "скриншот заказа из личного кабинета",
		"check_wait":  "скриншот чека",
		"number_wait": "номер чека текстом",
	}[order.Status]
	return fmt.Sprintf("⏰ Заказ на товар <b>%s</b> ждёт продолжения: отправьте %s.", order.ProductName, step)
}
