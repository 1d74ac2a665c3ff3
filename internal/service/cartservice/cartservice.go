package cartservice

import (
	"context"
	"errors"

	"github.com/avkuzmin/wbcashback/internal/domain"
	"go.uber.org/zap"
)

type CartRepo interface {
	Add(ctx context.Context, userID, productID int) error
	Remove(ctx context.Context, userID, productID int) error
	FindProducts(ctx context.Context, userID int) ([]domain.Product, error)
	Clear(ctx context.Context, userID int) error
}

type UserRepo interface {
	GetOrCreate(ctx context.Context, telegramID int64, username string) (*domain.User, error)
	FindByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error)
}

type ProductRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Product, error)
}

type Service struct {
	carts    CartRepo
	users    UserRepo
	products ProductRepo
}

func New(carts CartRepo, users UserRepo, products ProductRepo) *Service {
	return &Service{
		carts:    carts,
		users:    users,
		products: products,
	}
}

const (
	AddAction    = "add"
	RemoveAction = "remove"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrUnknownAction   = errors.New("unknown cart action")
)

// Get returns the cart contents and the user's payment details. Any failure
// degrades to an empty cart: the consuming UI treats the cart as best-effort.
func (s *Service) Get(ctx context.Context, telegramID int64) ([]domain.Product, string) {
	user, err := s.users.FindByTelegramID(ctx, telegramID)
	if err != nil || user == nil {
		return nil, ""
	}
	products, err := s.carts.FindProducts(ctx, user.ID)
	if err != nil {
		zap.L().Error("failed to get cart", zap.Error(err))
		return nil, ""
	}
	return products, user.PaymentDetails
}

// Update applies an idempotent add or remove. The user record is created on
// first reference, same as on first chat contact.
func (s *Service) Update(ctx context.Context, telegramID int64, productID int, action string) error {
	user, err := s.users.GetOrCreate(ctx, telegramID, "")
	if err != nil {
		return err
	}

	switch action {
	case AddAction:
		product, err := s.products.FindByID(ctx, productID)
		if err != nil {
			return err
		}
		if product == nil {
			return ErrProductNotFound
		}
		return s.carts.Add(ctx, user.ID, product.ID)
	case RemoveAction:
		return s.carts.Remove(ctx, user.ID, productID)
	default:
		return ErrUnknownAction
	}
}
