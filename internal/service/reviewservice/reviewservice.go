package reviewservice

import (
	"context"

	"github.com/avkuzmin/wbcashback/internal/domain"
	"github.com/avkuzmin/wbcashback/internal/metrics"
	"github.com/avkuzmin/wbcashback/internal/pg"
	"go.uber.org/zap"
)

type OrderRepo interface {
	FindByIDs(ctx context.Context, ids []int) ([]domain.Order, error)
	FindByStatus(ctx context.Context, status string, includeArchived bool) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, ids []int, status string) error
	SetArchived(ctx context.Context, ids []int, archived bool) error
}

type ProductRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Product, error)
}

type UserRepo interface {
	AddBalance(ctx context.Context, userID int, amount float64) error
}

// Service implements the manual operator review: payout, rejection and the
// archive visibility flag.
type Service struct {
	orders    OrderRepo
	products  ProductRepo
	users     UserRepo
	txManager pg.TXManager
}

func New(orders OrderRepo, products ProductRepo, users UserRepo, txManager pg.TXManager) *Service {
	return &Service{
		orders:    orders,
		products:  products,
		users:     users,
		txManager: txManager,
	}
}

// Approve pays out every order in the batch that is not already approved.
// Cashback is computed from the product's current price and percent at
// payout time. The status flip and the balance credit commit together, so a
// repeated approval of the same selection never double-credits.
func (s *Service) Approve(ctx context.Context, orderIDs []int) (int, error) {
	orders, err := s.orders.FindByIDs(ctx, orderIDs)
	if err != nil {
		return 0, err
	}

	paid := 0
	for _, order := range orders {
		if order.Status == domain.ApprovedStatus {
			continue
		}

		product, err := s.products.FindByID(ctx, order.ProductID)
		if err != nil {
			return paid, err
		}
		if product == nil {
			zap.L().Warn("order references missing product, skipping payout",
				zap.Int("order_id", order.ID), zap.Int("product_id", order.ProductID))
			continue
		}

		cashback := product.Cashback()
		orderID := order.ID
		userID := order.UserID
		err = s.txManager.Begin(ctx, func(ctx context.Context) error {
			if err := s.orders.UpdateStatus(ctx, []int{orderID}, domain.ApprovedStatus); err != nil {
				return err
			}
			return s.users.AddBalance(ctx, userID, float64(cashback))
		})
		if err != nil {
			zap.L().Error("payout failed", zap.Int("order_id", orderID), zap.Error(err))
			return paid, err
		}
		metrics.PayoutsApproved.Inc()
		paid++
	}
	return paid, nil
}

// Reject flips the batch to rejected. No balance effect.
func (s *Service) Reject(ctx context.Context, orderIDs []int) error {
	return s.orders.UpdateStatus(ctx, orderIDs, domain.RejectedStatus)
}

// SetArchived toggles visibility only; archived orders stay payable.
func (s *Service) SetArchived(ctx context.Context, orderIDs []int, archived bool) error {
	return s.orders.SetArchived(ctx, orderIDs, archived)
}

func (s *Service) ListByStatus(ctx context.Context, status string, includeArchived bool) ([]domain.Order, error) {
	orders, err := s.orders.FindByStatus(ctx, status, includeArchived)
	if err != nil {
		zap.L().Error("failed to list orders", zap.Error(err))
		return nil, err
	}
	return orders, nil
}
