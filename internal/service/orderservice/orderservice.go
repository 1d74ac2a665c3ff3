package orderservice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/avkuzmin/wbcashback/internal/domain"
	"github.com/avkuzmin/wbcashback/internal/metrics"
	"go.uber.org/zap"
)

type OrderRepo interface {
	CreateIfAbsent(ctx context.Context, userID, productID int) (*domain.Order, bool, error)
}

type ProductRepo interface {
	FindByIDs(ctx context.Context, ids []int) ([]domain.Product, error)
}

type CartRepo interface {
	Clear(ctx context.Context, userID int) error
}

type UserRepo interface {
	FindByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error)
}

// Notifier delivers a fire-and-forget chat message. Implementations never
// return an error: delivery failures stay inside the sink.
type Notifier interface {
	Notify(telegramID int64, text string)
}

type Service struct {
	orders   OrderRepo
	products ProductRepo
	carts    CartRepo
	users    UserRepo
	notifier Notifier
}

func New(orders OrderRepo, products ProductRepo, carts CartRepo, users UserRepo, notifier Notifier) *Service {
	return &Service{
		orders:   orders,
		products: products,
		carts:    carts,
		users:    users,
		notifier: notifier,
	}
}

var (
	ErrUserNotFound = errors.New("user not found")
	ErrNoProducts   = errors.New("no products selected")
)

// CreateBatch creates one order per requested product that the user has not
// ordered before. Duplicates are skipped silently. When at least one order
// was created the whole cart is cleared; when none were, nothing is touched.
// Either way the user gets exactly one notification.
func (s *Service) CreateBatch(ctx context.Context, telegramID int64, productIDs []int) ([]string, error) {
	if len(productIDs) == 0 {
		return nil, ErrNoProducts
	}

	user, err := s.users.FindByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	products, err := s.products.FindByIDs(ctx, dedup(productIDs))
	if err != nil {
		return nil, err
	}

	var createdNames []string
	for _, product := range products {
		_, created, err := s.orders.CreateIfAbsent(ctx, user.ID, product.ID)
		if err != nil {
			zap.L().Error("can't create order", zap.Int("product_id", product.ID), zap.Error(err))
			return nil, err
		}
		if created {
			createdNames = append(createdNames, product.Name)
		}
	}

	if len(createdNames) == 0 {
		s.notifier.Notify(telegramID, "⚠️ Эти товары уже были заказаны.")
		return nil, nil
	}

	if err := s.carts.Clear(ctx, user.ID); err != nil {
		zap.L().Error("can't clear cart after order", zap.Error(err))
		return nil, err
	}

	metrics.OrdersCreated.Add(float64(len(createdNames)))
	s.notifier.Notify(telegramID, batchMessage(createdNames))
	return createdNames, nil
}

func batchMessage(names []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "✅ <b>Заказ принят!</b> (%d шт.)\n\n", len(names))
	for _, name := range names {
		fmt.Fprintf(&b, "• %s\n", name)
	}
	b.WriteString("\nЖдите проверки!")
	return b.String()
}

func dedup(ids []int) []int {
	seen := make(map[int]struct{}, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
