package webapp

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avkuzmin/wbcashback/internal/domain"
	"github.com/avkuzmin/wbcashback/internal/service/catalogservice"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*WebAppHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestCatalog(t *testing.T) {
	view := &catalogservice.View{
		Products: []domain.Product{
			{ID: 1, Name: "Футболка", WBPrice: 990, CashbackPercent: 50, Price: 490},
		},
		User: &domain.User{ID: 1, TelegramID: 100, Balance: 245.5},
		Orders: []catalogservice.OrderEntry{
			{Order: domain.Order{ID: 10, ProductID: 1, Status: domain.ReceivedStatus}, ProductName: "Футболка"},
		},
		BoughtIDs: map[int]bool{1: true},
	}

	tests := []struct {
		name         string
		target       string
		prepareMock  func(service *MockService)
		expectedCode int
		contains     []string
	}{
		{
			name:   "Catalog rendered for a known user",
			target: "/webapp/?user_id=100",
			prepareMock: func(service *MockService) {
				service.EXPECT().GetView(gomock.Any(), int64(100)).Return(view, nil)
			},
			expectedCode: http.StatusOK,
			contains:     []string{"Футболка", "245.50", "received"},
		},
		{
			name:   "Anonymous view without user_id",
			target: "/webapp/",
			prepareMock: func(service *MockService) {
				service.EXPECT().GetView(gomock.Any(), int64(0)).
					Return(&catalogservice.View{Products: view.Products, BoughtIDs: map[int]bool{}}, nil)
			},
			expectedCode: http.StatusOK,
			contains:     []string{"Футболка"},
		},
		{
			name:   "Service failure",
			target: "/webapp/?user_id=100",
			prepareMock: func(service *MockService) {
				service.EXPECT().GetView(gomock.Any(), int64(100)).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			w := httptest.NewRecorder()
			handler.Catalog(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			for _, fragment := range tt.contains {
				assert.Contains(t, w.Body.String(), fragment)
			}
		})
	}
}
