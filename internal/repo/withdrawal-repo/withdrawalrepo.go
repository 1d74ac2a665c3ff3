package withdrawalrepo

import (
	"context"

	"github.com/avkuzmin/wbcashback/internal/domain"
	"github.com/avkuzmin/wbcashback/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, w *domain.WithdrawalRequest) (*domain.WithdrawalRequest, error) {
	query := `
        INSERT INTO withdrawal_requests (user_id, amount, payment_details, status)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, w.UserID, w.Amount, w.PaymentDetails, w.Status).
		Scan(&w.ID, &w.CreatedAt)
	if err != nil {
		zap.L().Error("can't create withdrawal request", zap.Error(err))
		return nil, err
	}
	return w, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.WithdrawalRequest, error) {
	query := `
        SELECT id, user_id, amount, payment_details, status, created_at
        FROM withdrawal_requests
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	return r.collect(ctx, query, userID)
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.WithdrawalRequest, error) {
	query := `
        SELECT id, user_id, amount, payment_details, status, created_at
        FROM withdrawal_requests
        ORDER BY created_at DESC
    `
	return r.collect(ctx, query)
}

func (r *Repository) collect(ctx context.Context, query string, args ...any) ([]domain.WithdrawalRequest, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get withdrawal requests", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var withdrawals []domain.WithdrawalRequest
	for rows.Next() {
		var w domain.WithdrawalRequest
		err := rows.Scan(&w.ID, &w.UserID, &w.Amount, &w.PaymentDetails, &w.Status, &w.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan withdrawal row", zap.Error(err))
			return nil, err
		}
		withdrawals = append(withdrawals, w)
	}
	return withdrawals, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, ids []int, status string) error {
	query := `
        UPDATE withdrawal_requests
        SET status = $1
        WHERE id = ANY($2)
    `
	_, err := r.db.Exec(ctx, query, status, ids)
	if err != nil {
		zap.L().Error("failed to update withdrawal status", zap.Error(err))
		return err
	}
	return nil
}
