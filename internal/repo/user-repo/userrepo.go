package userrepo

import (
	"context"
	"errors"

	"github.com/avkuzmin/wbcashback/internal/domain"
	"github.com/avkuzmin/wbcashback/internal/pg"
	"github.com/jackc/pgx/v5"
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

func (repo *Repository) FindByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error) {
	query := `
        SELECT id, telegram_id, username, balance, payment_details, created_at
        FROM users
        WHERE telegram_id = $1
    `
	var user domain.User
	err := repo.db.QueryRow(ctx, query, telegramID).
		Scan(&user.ID, &user.TelegramID, &user.Username, &user.Balance, &user.PaymentDetails, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

// GetOrCreate inserts the user on first contact. The no-op upsert makes the
// query return the existing row instead of failing on the unique telegram_id.
func (repo *Repository) GetOrCreate(ctx context.Context, telegramID int64, username string) (*domain.User, error) {
	query := `
        INSERT INTO users (telegram_id, username)
        VALUES ($1, $2)
        ON CONFLICT (telegram_id) DO UPDATE SET telegram_id = EXCLUDED.telegram_id
        RETURNING id, telegram_id, username, balance, payment_details, created_at
    `
	var user domain.User
	err := repo.db.QueryRow(ctx, query, telegramID, username).
		Scan(&user.ID, &user.TelegramID, &user.Username, &user.Balance, &user.PaymentDetails, &user.CreatedAt)
	if err != nil {
		zap.L().Error("can't get or create user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) UpdatePaymentDetails(ctx context.Context, telegramID int64, details string) (bool, error) {
	query := `
        UPDATE users
        SET payment_details = $1
        WHERE telegram_id = $2
    `
	tag, err := repo.db.Exec(ctx, query, details, telegramID)
	if err != nil {
		zap.L().Error("can't update payment details", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (repo *Repository) AddBalance(ctx context.Context, userID int, amount float64) error {
	query := `
        UPDATE users
        SET balance = balance + $1
        WHERE id = $2
    `
	_, err := repo.db.Exec(ctx, query, amount, userID)
	if err != nil {
		zap.L().Error("can't add balance", zap.Error(err))
		return err
	}
	return nil
}

func (repo *Repository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	query := `
        SELECT id, telegram_id, username, balance, payment_details, created_at
        FROM users
        WHERE id = $1
    `
	var user domain.User
	err := repo.db.QueryRow(ctx, query, id).
		Scan(&user.ID, &user.TelegramID, &user.Username, &user.Balance, &user.PaymentDetails, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user by id", zap.Error(err))
		return nil, err
	}
	return &user, nil
}
