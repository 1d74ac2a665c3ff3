package catalogservice

import (
	"context"

	"github.com/avkuzmin/wbcashback/internal/domain"
	"go.uber.org/zap"
)

type ProductRepo interface {
	FindActive(ctx context.Context) ([]domain.Product, error)
	FindByIDs(ctx context.Context, ids []int) ([]domain.Product, error)
}

type OrderRepo interface {
	FindByUserID(ctx context.Context, userID int) ([]domain.Order, error)
}

type UserRepo interface {
	FindByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error)
}

type Service struct {
	products ProductRepo
	orders   OrderRepo
	users    UserRepo
}

func New(products ProductRepo, orders OrderRepo, users UserRepo) *Service {
	return &Service{
		products: products,
		orders:   orders,
		users:    users,
	}
}

// OrderEntry is one row of the user's order history on the catalog page.
type OrderEntry struct {
	Order       domain.Order
	ProductName string
}

type View struct {
	Products  []domain.Product
	User      *domain.User
	Orders    []OrderEntry
	BoughtIDs map[int]bool
}

// GetView assembles the catalog page model. telegramID 0 or an unknown id
// yields the anonymous view, not an error.
func (s *Service) GetView(ctx context.Context, telegramID int64) (*View, error) {
	view := &View{BoughtIDs: make(map[int]bool)}

	products, err := s.products.FindActive(ctx)
	if err != nil {
		zap.L().Error("failed to get catalog products", zap.Error(err))
		return nil, err
	}
	view.Products = products

	if telegramID == 0 {
		return view, nil
	}
	user, err := s.users.FindByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return view, nil
	}
	view.User = user

	orders, err := s.orders.FindByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	names := make(map[int]string)
	productIDs := make([]int, 0, len(orders))
	for _, order := range orders {
		view.BoughtIDs[order.ProductID] = true
		productIDs = append(productIDs, order.ProductID)
	}
	if len(productIDs) > 0 {
		ordered, err := s.products.FindByIDs(ctx, productIDs)
		if err != nil {
			return nil, err
		}
		for _, p := range ordered {
			names[p.ID] = p.Name
		}
	}
	for _, order := range orders {
		view.Orders = append(view.Orders, OrderEntry{Order: order, ProductName: names[order.ProductID]})
	}
	return view, nil
}
