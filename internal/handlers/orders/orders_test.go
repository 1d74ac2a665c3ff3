package orders

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	orderservice "github.com/avkuzmin/wbcashback/internal/service/orderservice"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*OrderHandler, *MockService, *MockWithdrawalService) {
	ctrl := gomock.NewController(t)
	orderService := NewMockService(ctrl)
	withdrawalService := NewMockWithdrawalService(ctrl)
	handler := New(orderService, withdrawalService)
	defer ctrl.Finish()
	return handler, orderService, withdrawalService
}

func TestCreateOrder(t *testing.T) {
	handler, orderService, _ := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "Batch created",
			body: `{"user_id":100,"products":"1,2,3"}`,
			prepareMock: func() {
				orderService.EXPECT().CreateBatch(gomock.Any(), int64(100), []int{1, 2, 3}).
					Return([]string{"Футболка"}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"success":true,"message":"Заказ создан"}`,
		},
		{
			name: "Everything was a duplicate",
			body: `{"user_id":100,"products":"1"}`,
			prepareMock: func() {
				orderService.EXPECT().CreateBatch(gomock.Any(), int64(100), []int{1}).Return(nil, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"success":true,"message":"Дубликаты"}`,
		},
		{
			name:         "Invalid JSON",
			body:         `{`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"success":false,"error":"Invalid JSON"}`,
		},
		{
			name:         "Missing user id",
			body:         `{"products":"1"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"success":false,"error":"User ID is required"}`,
		},
		{
			name:         "Garbage product list",
			body:         `{"user_id":100,"products":"a, ,b"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"success":false,"error":"No products selected"}`,
		},
		{
			name: "Unknown user",
			body: `{"user_id":100,"products":"1"}`,
			prepareMock: func() {
				orderService.EXPECT().CreateBatch(gomock.Any(), int64(100), []int{1}).
					Return(nil, orderservice.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"success":false,"error":"User not found"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := httptest.NewRequest(http.MethodPost, "/api/create-order/", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.CreateOrder(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestParseProductIDs(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, parseProductIDs("1,2,3"))
	assert.Equal(t, []int{1, 3}, parseProductIDs(" 1 , x, 3 ,"))
	assert.Nil(t, parseProductIDs(""))
}

func TestRequestWithdrawal(t *testing.T) {
	handler, _, withdrawalService := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedBody string
	}{
		{
			name: "Request accepted",
			body: `{"user_id":100,"amount":500}`,
			prepareMock: func() {
				withdrawalService.EXPECT().Create(gomock.Any(), int64(100), 500.0).Return(nil)
			},
			expectedBody: `{"ok":true}`,
		},
		{
			name: "Validation failure",
			body: `{"user_id":100,"amount":1000000}`,
			prepareMock: func() {
				withdrawalService.EXPECT().Create(gomock.Any(), int64(100), 1000000.0).
					Return(orderservice.ErrUserNotFound)
			},
			expectedBody: `{"ok":false}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := httptest.NewRequest(http.MethodPost, "/api/request-withdrawal/", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.RequestWithdrawal(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
