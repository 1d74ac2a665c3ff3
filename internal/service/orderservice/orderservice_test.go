package orderservice

import (
	"context"
	"errors"
	"testing"

	"github.com/avkuzmin/wbcashback/internal/domain"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockOrderRepo, *MockProductRepo, *MockCartRepo, *MockUserRepo, *MockNotifier) {
	ctrl := gomock.NewController(t)
	orders := NewMockOrderRepo(ctrl)
	products := NewMockProductRepo(ctrl)
	carts := NewMockCartRepo(ctrl)
	users := NewMockUserRepo(ctrl)
	notifier := NewMockNotifier(ctrl)
	service := New(orders, products, carts, users, notifier)
	defer ctrl.Finish()
	return service, orders, products, carts, users, notifier
}

func TestCreateBatch(t *testing.T) {
	service, orders, products, carts, users, notifier := NewMock(t)
	ctx := context.Background()
	user := &domain.User{ID: 1, TelegramID: 100}
	catalog := []domain.Product{
		{ID: 5, Name: "Футболка"},
		{ID: 6, Name: "Кепка"},
	}

	tests := []struct {
		name          string
		productIDs    []int
		prepareMock   func()
		expectedNames []string
		expectedError error
	}{
		{
			name:       "All orders created, cart cleared",
			productIDs: []int{5, 6},
			prepareMock: func() {
				users.EXPECT().FindByTelegramID(gomock.Any(), int64(100)).Return(user, nil)
				products.EXPECT().FindByIDs(gomock.Any(), []int{5, 6}).Return(catalog, nil)
				orders.EXPECT().CreateIfAbsent(gomock.Any(), 1, 5).Return(&domain.Order{ID: 1}, true, nil)
				orders.EXPECT().CreateIfAbsent(gomock.Any(), 1, 6).Return(&domain.Order{ID: 2}, true, nil)
				carts.EXPECT().Clear(gomock.Any(), 1).Return(nil)
				notifier.EXPECT().Notify(int64(100), gomock.Any())
			},
			expectedNames: []string{"Футболка", "Кепка"},
		},
		{
			name:       "Duplicate ids are collapsed before lookup",
			productIDs: []int{5, 5, 5},
			prepareMock: func() {
				users.EXPECT().FindByTelegramID(gomock.Any(), int64(100)).Return(user, nil)
				products.EXPECT().FindByIDs(gomock.Any(), []int{5}).Return(catalog[:1], nil)
				orders.EXPECT().CreateIfAbsent(gomock.Any(), 1, 5).Return(&domain.Order{ID: 1}, true, nil)
				carts.EXPECT().Clear(gomock.Any(), 1).Return(nil)
				notifier.EXPECT().Notify(int64(100), gomock.Any())
			},
			expectedNames: []string{"Футболка"},
		},
		{
			name:       "Partial duplicates still clear the cart",
			productIDs: []int{5, 6},
			prepareMock: func() {
				users.EXPECT().FindByTelegramID(gomock.Any(), int64(100)).Return(user, nil)
				products.EXPECT().FindByIDs(gomock.Any(), []int{5, 6}).Return(catalog, nil)
				orders.EXPECT().CreateIfAbsent(gomock.Any(), 1, 5).Return(nil, false, nil)
				orders.EXPECT().CreateIfAbsent(gomock.Any(), 1, 6).Return(&domain.Order{ID: 2}, true, nil)
				carts.EXPECT().Clear(gomock.Any(), 1).Return(nil)
				notifier.EXPECT().Notify(int64(100), gomock.Any())
			},
			expectedNames: []string{"Кепка"},
		},
		{
			name:       "All duplicates: no cart clear, duplicate notification",
			productIDs: []int{5, 6},
			prepareMock: func() {
				users.EXPECT().FindByTelegramID(gomock.Any(), int64(100)).Return(user, nil)
				products.EXPECT().FindByIDs(gomock.Any(), []int{5, 6}).Return(catalog, nil)
				orders.EXPECT().CreateIfAbsent(gomock.Any(), 1, 5).Return(nil, false, nil)
				orders.EXPECT().CreateIfAbsent(gomock.Any(), 1, 6).Return(nil, false, nil)
				notifier.EXPECT().Notify(int64(100), "⚠️ Эти товары уже были заказаны.")
			},
			expectedNames: nil,
		},
		{
			name:          "Empty selection",
			productIDs:    nil,
			prepareMock:   func() {},
			expectedError: ErrNoProducts,
		},
		{
			name:       "Unknown user",
			productIDs: []int{5},
			prepareMock: func() {
				users.EXPECT().FindByTelegramID(gomock.Any(), int64(100)).Return(nil, nil)
			},
			expectedError: ErrUserNotFound,
		},
		{
			name:       "Order creation failure aborts the batch",
			productIDs: []int{5},
			prepareMock: func() {
				users.EXPECT().FindByTelegramID(gomock.Any(), int64(100)).Return(user, nil)
				products.EXPECT().FindByIDs(gomock.Any(), []int{5}).Return(catalog[:1], nil)
				orders.EXPECT().CreateIfAbsent(gomock.Any(), 1, 5).Return(nil, false, errors.New("some error"))
			},
			expectedError: errors.New("some error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			names, err := service.CreateBatch(ctx, 100, tt.productIDs)
			assert.Equal(t, tt.expectedNames, names)
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBatchMessage(t *testing.T) {
	msg := batchMessage([]string{"Футболка", "Кепка"})
	assert.Contains(t, msg, "(2 шт.)")
	assert.Contains(t, msg, "• Футболка")
	assert.Contains(t, msg, "• Кепка")
	assert.Contains(t, msg, "Ждите проверки!")
}
