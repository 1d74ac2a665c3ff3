package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/avkuzmin/wbcashback/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()
	return repo, mockDB
}

func userRow(u domain.User) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "telegram_id", "username", "balance", "payment_details", "created_at"}).
		AddRow(u.ID, u.TelegramID, u.Username, u.Balance, u.PaymentDetails, u.CreatedAt)
}

func TestRepository_FindByTelegramID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	query := regexp.QuoteMeta("WHERE telegram_id = $1")

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name: "User exists",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(int64(100)).
					WillReturnRows(userRow(domain.User{ID: 1, TelegramID: 100, Username: "ivan", CreatedAt: now}))
			},
			result: &domain.User{ID: 1, TelegramID: 100, Username: "ivan", CreatedAt: now},
		},
		{
			name: "User does not exist",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(int64(100)).
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(int64(100)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			user, err := repo.FindByTelegramID(context.Background(), 100)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, user)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_GetOrCreate(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("ON CONFLICT (telegram_id) DO UPDATE SET telegram_id = EXCLUDED.telegram_id")).
		WithArgs(int64(100), "ivan").
		WillReturnRows(userRow(domain.User{ID: 1, TelegramID: 100, Username: "ivan", CreatedAt: now}))

	user, err := repo.GetOrCreate(context.Background(), 100, "ivan")
	assert.NoError(t, err)
	assert.Equal(t, &domain.User{ID: 1, TelegramID: 100, Username: "ivan", CreatedAt: now}, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdatePaymentDetails(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta("SET payment_details = $1")

	tests := []struct {
		name            string
		mockSetup       func()
		expectErr       bool
		expectedUpdated bool
	}{
		{
			name: "Details updated",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs("4276 **** 1234", int64(100)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			expectedUpdated: true,
		},
		{
			name: "No such user",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs("4276 **** 1234", int64(100)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectedUpdated: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs("4276 **** 1234", int64(100)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			updated, err := repo.UpdatePaymentDetails(context.Background(), 100, "4276 **** 1234")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectedUpdated, updated)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_AddBalance(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("SET balance = balance + $1")).
		WithArgs(float64(150), 1).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, repo.AddBalance(context.Background(), 1, 150))
	assert.NoError(t, mock.ExpectationsWereMet())
}
