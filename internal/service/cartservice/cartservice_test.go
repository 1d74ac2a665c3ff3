package cartservice

import (
	"context"
	"errors"
	"testing"

	"github.com/avkuzmin/wbcashback/internal/domain"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockCartRepo, *MockUserRepo, *MockProductRepo) {
	ctrl := gomock.NewController(t)
	carts := NewMockCartRepo(ctrl)
	users := NewMockUserRepo(ctrl)
	products := NewMockProductRepo(ctrl)
	service := New(carts, users, products)
	defer ctrl.Finish()
	return service, carts, users, products
}

func TestGet(t *testing.T) {
	service, carts, users, _ := NewMock(t)
	ctx := context.Background()
	user := &domain.User{ID: 1, TelegramID: 100, PaymentDetails: "4276 **** 1234"}

	tests := []struct {
		name             string
		prepareMock      func()
		expectedProducts []domain.Product
		expectedDetails  string
	}{
		{
			name: "Cart with items and details",
			prepareMock: func() {
				users.EXPECT().FindByTelegramID(gomock.Any(), int64(100)).Return(user, nil)
				carts.EXPECT().FindProducts(gomock.Any(), 1).Return([]domain.Product{
					{ID: 5, Name: "Футболка", Price: 990},
				}, nil)
			},
			expectedProducts: []domain.Product{{ID: 5, Name: "Футболка", Price: 990}},
			expectedDetails:  "4276 **** 1234",
		},
		{
			name: "Unknown user degrades to an empty cart",
			prepareMock: func() {
				users.EXPECT().FindByTelegramID(gomock.Any(), int64(100)).Return(nil, nil)
			},
		},
		{
			name: "Repo failure degrades to an empty cart",
			prepareMock: func() {
				users.EXPECT().FindByTelegramID(gomock.Any(), int64(100)).Return(user, nil)
				carts.EXPECT().FindProducts(gomock.Any(), 1).Return(nil, errors.New("some error"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			products, details := service.Get(ctx, 100)
			assert.Equal(t, tt.expectedProducts, products)
			assert.Equal(t, tt.expectedDetails, details)
		})
	}
}

func TestUpdate(t *testing.T) {
	service, carts, users, products := NewMock(t)
	ctx := context.Background()
	user := &domain.User{ID: 1, TelegramID: 100}

	tests := []struct {
		name          string
		action        string
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "Add an existing product",
			action: AddAction,
			prepareMock: func() {
				users.EXPECT().GetOrCreate(gomock.Any(), int64(100), "").Return(user, nil)
				products.EXPECT().FindByID(gomock.Any(), 5).Return(&domain.Product{ID: 5}, nil)
				carts.EXPECT().Add(gomock.Any(), 1, 5).Return(nil)
			},
		},
		{
			name:   "Add an unknown product",
			action: AddAction,
			prepareMock: func() {
				users.EXPECT().GetOrCreate(gomock.Any(), int64(100), "").Return(user, nil)
				products.EXPECT().FindByID(gomock.Any(), 5).Return(nil, nil)
			},
			expectedError: ErrProductNotFound,
		},
		{
			name:   "Remove skips the product lookup",
			action: RemoveAction,
			prepareMock: func() {
				users.EXPECT().GetOrCreate(gomock.Any(), int64(100), "").Return(user, nil)
				carts.EXPECT().Remove(gomock.Any(), 1, 5).Return(nil)
			},
		},
		{
			name:   "Unknown action",
			action: "toggle",
			prepareMock: func() {
				users.EXPECT().GetOrCreate(gomock.Any(), int64(100), "").Return(user, nil)
			},
			expectedError: ErrUnknownAction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			err := service.Update(ctx, 100, 5, tt.action)
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
