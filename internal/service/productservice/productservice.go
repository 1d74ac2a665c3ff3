package productservice

import (
	"context"
	"errors"

	"github.com/avkuzmin/wbcashback/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	FindAll(ctx context.Context, includeArchived bool) ([]domain.Product, error)
	FindByID(ctx context.Context, id int) (*domain.Product, error)
	Save(ctx context.Context, product *domain.Product) error
	Update(ctx context.Context, product *domain.Product) error
	SetArchived(ctx context.Context, ids []int, archived bool) error
}

// Service is the admin-side product management: the catalog itself is
// read-only for the bot and webapp paths.
type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidPercent  = errors.New("cashback percent must be between 0 and 100")
)

func (s *Service) List(ctx context.Context, includeArchived bool) ([]domain.Product, error) {
	products, err := s.repo.FindAll(ctx, includeArchived)
	if err != nil {
		zap.L().Error("failed to list products", zap.Error(err))
		return nil, err
	}
	return products, nil
}

func (s *Service) Create(ctx context.Context, product *domain.Product) error {
	if product.CashbackPercent < 0 || product.CashbackPercent > 100 {
		return ErrInvalidPercent
	}
	return s.repo.Save(ctx, product)
}

func (s *Service) Update(ctx context.Context, product *domain.Product) error {
	if product.CashbackPercent < 0 || product.CashbackPercent > 100 {
		return ErrInvalidPercent
	}
	existing, err := s.repo.FindByID(ctx, product.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrProductNotFound
	}
	return s.repo.Update(ctx, product)
}

func (s *Service) SetArchived(ctx context.Context, ids []int, archived bool) error {
	return s.repo.SetArchived(ctx, ids, archived)
}
