package userservice

import (
	"context"
	"errors"

	"github.com/avkuzmin/wbcashback/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	GetOrCreate(ctx context.Context, telegramID int64, username string) (*domain.User, error)
	FindByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error)
	UpdatePaymentDetails(ctx context.Context, telegramID int64, details string) (bool, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

var ErrUserNotFound = errors.New("user not found")

// Register ensures a user record exists for the chat identity. Called on
// every /start; an existing user is returned untouched.
func (s *Service) Register(ctx context.Context, telegramID int64, username string) (*domain.User, error) {
	user, err := s.repo.GetOrCreate(ctx, telegramID, username)
	if err != nil {
		zap.L().Error("can't register user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (s *Service) GetByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error) {
	user, err := s.repo.FindByTelegramID(ctx, telegramID)
	if err != nil {
		zap.L().Error("failed to get user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (s *Service) SaveDetails(ctx context.Context, telegramID int64, details string) error {
	updated, err := s.repo.UpdatePaymentDetails(ctx, telegramID, details)
	if err != nil {
		zap.L().Error("failed to save payment details", zap.Error(err))
		return err
	}
	if !updated {
		return ErrUserNotFound
	}
	return nil
}
