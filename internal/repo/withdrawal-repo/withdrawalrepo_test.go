package withdrawalrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/avkuzmin/wbcashback/internal/domain"
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

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	query := regexp.QuoteMeta("INSERT INTO withdrawal_requests (user_id, amount, payment_details, status)")

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Request created",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "created_at"}).AddRow(7, now)
				mock.ExpectQuery(query).
					WithArgs(1, 500.0, "4276 **** 1234", domain.WithdrawalPending).
					WillReturnRows(rows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(1, 500.0, "4276 **** 1234", domain.WithdrawalPending).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			w, err := repo.Create(context.Background(), &domain.WithdrawalRequest{
				UserID:         1,
				Amount:         500,
				PaymentDetails: "4276 **** 1234",
				Status:         domain.WithdrawalPending,
			})
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, w)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 7, w.ID)
				assert.Equal(t, now, w.CreatedAt)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindAll(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	rows := pgxmock.NewRows([]string{"id", "user_id", "amount", "payment_details", "status", "created_at"}).
		AddRow(1, 1, 500.0, "4276 **** 1234", domain.WithdrawalPending, now)
	mock.ExpectQuery(regexp.QuoteMeta("FROM withdrawal_requests")).WillReturnRows(rows)

	withdrawals, err := repo.FindAll(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []domain.WithdrawalRequest{
		{ID: 1, UserID: 1, Amount: 500, PaymentDetails: "4276 **** 1234", Status: domain.WithdrawalPending, CreatedAt: now},
	}, withdrawals)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE withdrawal_requests")).
		WithArgs(domain.WithdrawalPaid, []int{1, 2}).
		WillReturnResult(pgxmock.NewResult("UPDATE", 2))

	assert.NoError(t, repo.UpdateStatus(context.Background(), []int{1, 2}, domain.WithdrawalPaid))
	assert.NoError(t, mock.ExpectationsWereMet())
}
