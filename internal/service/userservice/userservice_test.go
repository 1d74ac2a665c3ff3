package userservice

import (
	"context"
	"errors"
	"testing"

	"github.com/avkuzmin/wbcashback/internal/domain"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo)
	defer ctrl.Finish()
	return service, repo
}

func TestRegister(t *testing.T) {
	service, repo := NewMock(t)
	ctx := context.Background()
	user := &domain.User{ID: 1, TelegramID: 100, Username: "ivan"}

	repo.EXPECT().GetOrCreate(gomock.Any(), int64(100), "ivan").Return(user, nil)
	got, err := service.Register(ctx, 100, "ivan")
	assert.NoError(t, err)
	assert.Equal(t, user, got)

	repo.EXPECT().GetOrCreate(gomock.Any(), int64(100), "ivan").Return(nil, errors.New("some error"))
	got, err = service.Register(ctx, 100, "ivan")
	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestSaveDetails(t *testing.T) {
	service, repo := NewMock(t)
	ctx := context.Background()

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Details saved",
			prepareMock: func() {
				repo.EXPECT().UpdatePaymentDetails(gomock.Any(), int64(100), "4276 **** 1234").Return(true, nil)
			},
		},
		{
			name: "Unknown user",
			prepareMock: func() {
				repo.EXPECT().UpdatePaymentDetails(gomock.Any(), int64(100), "4276 **** 1234").Return(false, nil)
			},
			expectedError: ErrUserNotFound,
		},
		{
			name: "Repo failure",
			prepareMock: func() {
				repo.EXPECT().UpdatePaymentDetails(gomock.Any(), int64(100), "4276 **** 1234").Return(false, errors.New("some error"))
			},
			expectedError: errors.New("some error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			err := service.SaveDetails(ctx, 100, "4276 **** 1234")
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetByTelegramID(t *testing.T) {
	service, repo := NewMock(t)
	user := &domain.User{ID: 1, TelegramID: 100}
	repo.EXPECT().FindByTelegramID(gomock.Any(), int64(100)).Return(user, nil)

	got, err := service.GetByTelegramID(context.Background(), 100)
	assert.NoError(t, err)
	assert.Equal(t, user, got)
}
