package withdrawalservice

import (
	"context"
	"errors"

	"github.com/avkuzmin/wbcashback/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	Create(ctx context.Context, w *domain.WithdrawalRequest) (*domain.WithdrawalRequest, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.WithdrawalRequest, error)
	FindAll(ctx context.Context) ([]domain.WithdrawalRequest, error)
	UpdateStatus(ctx context.Context, ids []int, status string) error
}

type UserRepo interface {
	FindByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error)
}

type Service struct {
	repo  Repo
	users UserRepo
}

func New(repo Repo, users UserRepo) *Service {
	return &Service{
		repo:  repo,
		users: users,
	}
}

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrNoPaymentDetails    = errors.New("payment details not set")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrUnknownStatus       = errors.New("unknown withdrawal status")
)

// Create files a withdrawal request with a snapshot of the user's payment
// details. The balance is validated but NOT debited: the actual transfer is
// manual bookkeeping outside this system.
func (s *Service) Create(ctx context.Context, telegramID int64, amount float64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	user, err := s.users.FindByTelegramID(ctx, telegramID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if user.PaymentDetails == "" {
		return ErrNoPaymentDetails
	}
	if amount > user.Balance {
		return ErrInsufficientBalance
	}

	withdrawal := &domain.WithdrawalRequest{
		UserID:         user.ID,
		Amount:         amount,
		PaymentDetails: user.PaymentDetails,
		Status:         domain.WithdrawalPending,
	}
	if _, err := s.repo.Create(ctx, withdrawal); err != nil {
		zap.L().Error("failed to create withdrawal request", zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) List(ctx context.Context) ([]domain.WithdrawalRequest, error) {
	withdrawals, err := s.repo.FindAll(ctx)
	if err != nil {
		zap.L().Error("failed to fetch withdrawals", zap.Error(err))
		return nil, err
	}
	return withdrawals, nil
}

func (s *Service) SetStatus(ctx context.Context, ids []int, status string) error {
	switch status {
	case domain.WithdrawalPending, domain.WithdrawalPaid, domain.WithdrawalRejected:
	default:
		return ErrUnknownStatus
	}
	return s.repo.UpdateStatus(ctx, ids, status)
}
