package catalogservice

import (
	"context"
	"errors"
	"testing"

	"github.com/avkuzmin/wbcashback/internal/domain"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockProductRepo, *MockOrderRepo, *MockUserRepo) {
	ctrl := gomock.NewController(t)
	products := NewMockProductRepo(ctrl)
	orders := NewMockOrderRepo(ctrl)
	users := NewMockUserRepo(ctrl)
	service := New(products, orders, users)
	defer ctrl.Finish()
	return service, products, orders, users
}

func TestGetView(t *testing.T) {
	catalog := []domain.Product{
		{ID: 1, Name: "Футболка", WBPrice: 990},
		{ID: 2, Name: "Кроссовки", WBPrice: 4500},
	}
	user := &domain.User{ID: 1, TelegramID: 100, Balance: 250}

	tests := []struct {
		name          string
		telegramID    int64
		prepareMock   func(products *MockProductRepo, orders *MockOrderRepo, users *MockUserRepo)
		check         func(t *testing.T, view *View)
		expectedError bool
	}{
		{
			name:       "Anonymous view for zero id",
			telegramID: 0,
			prepareMock: func(products *MockProductRepo, orders *MockOrderRepo, users *MockUserRepo) {
				products.EXPECT().FindActive(gomock.Any()).Return(catalog, nil)
			},
			check: func(t *testing.T, view *View) {
				assert.Equal(t, catalog, view.Products)
				assert.Nil(t, view.User)
				assert.Empty(t, view.Orders)
			},
		},
		{
			name:       "Anonymous view for unknown user",
			telegramID: 100,
			prepareMock: func(products *MockProductRepo, orders *MockOrderRepo, users *MockUserRepo) {
				products.EXPECT().FindActive(gomock.Any()).Return(catalog, nil)
				users.EXPECT().FindByTelegramID(gomock.Any(), int64(100)).Return(nil, nil)
			},
			check: func(t *testing.T, view *View) {
				assert.Equal(t, catalog, view.Products)
				assert.Nil(t, view.User)
			},
		},
		{
			name:       "Known user with order history",
			telegramID: 100,
			prepareMock: func(products *MockProductRepo, orders *MockOrderRepo, users *MockUserRepo) {
				products.EXPECT().FindActive(gomock.Any()).Return(catalog, nil)
				users.EXPECT().FindByTelegramID(gomock.Any(), int64(100)).Return(user, nil)
				orders.EXPECT().FindByUserID(gomock.Any(), 1).Return([]domain.Order{
					{ID: 10, ProductID: 1, Status: domain.ApprovedStatus},
					{ID: 11, ProductID: 2, Status: domain.OrderedStatus},
				}, nil)
				products.EXPECT().FindByIDs(gomock.Any(), []int{1, 2}).Return(catalog, nil)
			},
			check: func(t *testing.T, view *View) {
				assert.Equal(t, user, view.User)
				assert.Equal(t, map[int]bool{1: true, 2: true}, view.BoughtIDs)
				assert.Len(t, view.Orders, 2)
				assert.Equal(t, "Футболка", view.Orders[0].ProductName)
				assert.Equal(t, "Кроссовки", view.Orders[1].ProductName)
			},
		},
		{
			name:       "Known user without orders",
			telegramID: 100,
			prepareMock: func(products *MockProductRepo, orders *MockOrderRepo, users *MockUserRepo) {
				products.EXPECT().FindActive(gomock.Any()).Return(catalog, nil)
				users.EXPECT().FindByTelegramID(gomock.Any(), int64(100)).Return(user, nil)
				orders.EXPECT().FindByUserID(gomock.Any(), 1).Return(nil, nil)
			},
			check: func(t *testing.T, view *View) {
				assert.Equal(t, user, view.User)
				assert.Empty(t, view.Orders)
				assert.Empty(t, view.BoughtIDs)
			},
		},
		{
			name:       "Catalog query failed",
			telegramID: 100,
			prepareMock: func(products *MockProductRepo, orders *MockOrderRepo, users *MockUserRepo) {
				products.EXPECT().FindActive(gomock.Any()).Return(nil, errors.New("db down"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, products, orders, users := NewMock(t)
			tt.prepareMock(products, orders, users)

			view, err := service.GetView(context.Background(), tt.telegramID)
			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, view)
				return
			}
			assert.NoError(t, err)
			tt.check(t, view)
		})
	}
}
