package admin

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/avkuzmin/wbcashback/internal/domain"
	"github.com/avkuzmin/wbcashback/internal/service/withdrawalservice"
	"github.com/avkuzmin/wbcashback/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

const testPassword = "operator-pass"

func NewMock(t *testing.T) (*AdminHandler, *MockReviewService, *MockWithdrawalService, *MockProductService) {
	ctrl := gomock.NewController(t)
	review := NewMockReviewService(ctrl)
	withdrawal := NewMockWithdrawalService(ctrl)
	product := NewMockProductService(ctrl)

	hash, err := auth.HashPassword(testPassword)
	assert.NoError(t, err)
	handler := New(review, withdrawal, product, auth.NewJWTService("test-secret"), Credentials{
		Login:        "admin",
		PasswordHash: hash,
	})
	defer ctrl.Finish()
	return handler, review, withdrawal, product
}

func TestLogin(t *testing.T) {
	handler, _, _, _ := NewMock(t)

	tests := []struct {
		name         string
		body         string
		expectedCode int
	}{
		{
			name:         "Valid credentials",
			body:         `{"login":"admin","password":"` + testPassword + `"}`,
			expectedCode: http.StatusOK,
		},
		{
			name:         "Wrong password",
			body:         `{"login":"admin","password":"nope"}`,
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Wrong login",
			body:         `{"login":"root","password":"` + testPassword + `"}`,
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Invalid JSON",
			body:         `{`,
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.Login(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				assert.Contains(t, w.Body.String(), "token")
			}
		})
	}
}

func TestApproveOrders(t *testing.T) {
	handler, review, _, _ := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "Batch approved",
			body: `{"ids":[1,2]}`,
			prepareMock: func() {
				review.EXPECT().Approve(gomock.Any(), []int{1, 2}).Return(2, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"paid":2}`,
		},
		{
			name:         "Empty id list",
			body:         `{"ids":[]}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"Invalid request body"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := httptest.NewRequest(http.MethodPost, "/api/admin/orders/approve", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.ApproveOrders(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestListOrders(t *testing.T) {
	handler, review, _, _ := NewMock(t)

	review.EXPECT().ListByStatus(gomock.Any(), domain.ReceivedStatus, false).
		Return([]domain.Order{{ID: 1, UserID: 2, ProductID: 3, Status: domain.ReceivedStatus}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/orders/", nil)
	w := httptest.NewRecorder()

	handler.ListOrders(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"received"`)
}

func TestSetWithdrawalStatus(t *testing.T) {
	handler, _, withdrawal, _ := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Status updated",
			body: `{"ids":[1],"status":"paid"}`,
			prepareMock: func() {
				withdrawal.EXPECT().SetStatus(gomock.Any(), []int{1}, "paid").Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Unknown status",
			body: `{"ids":[1],"status":"done"}`,
			prepareMock: func() {
				withdrawal.EXPECT().SetStatus(gomock.Any(), []int{1}, "done").
					Return(withdrawalservice.ErrUnknownStatus)
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := httptest.NewRequest(http.MethodPost, "/api/admin/withdrawals/status", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.SetWithdrawalStatus(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestCreateProduct(t *testing.T) {
	handler, _, _, product := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Product created",
			body: `{"name":"Футболка","wb_price":1500,"cashback_percent":50,"price":990,"active":true}`,
			prepareMock: func() {
				product.EXPECT().Create(gomock.Any(), &domain.Product{
					Name: "Футболка", WBPrice: 1500, CashbackPercent: 50, Price: 990, Active: true,
				}).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Missing name",
			body:         `{"wb_price":1500}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := httptest.NewRequest(http.MethodPost, "/api/admin/products/", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.CreateProduct(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
