package productservice

import (
	"context"
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

func TestCreate(t *testing.T) {
	service, repo := NewMock(t)
	ctx := context.Background()

	tests := []struct {
		name          string
		product       *domain.Product
		prepareMock   func()
		expectedError error
	}{
		{
			name:    "Product created",
			product: &domain.Product{Name: "Футболка", CashbackPercent: 50},
			prepareMock: func() {
				repo.EXPECT().Save(gomock.Any(), &domain.Product{Name: "Футболка", CashbackPercent: 50}).Return(nil)
			},
		},
		{
			name:          "Percent above 100",
			product:       &domain.Product{Name: "Футболка", CashbackPercent: 101},
			prepareMock:   func() {},
			expectedError: ErrInvalidPercent,
		},
		{
			name:          "Negative percent",
			product:       &domain.Product{Name: "Футболка", CashbackPercent: -1},
			prepareMock:   func() {},
			expectedError: ErrInvalidPercent,
		},
		{
			name:    "Boundary percents are valid",
			product: &domain.Product{Name: "Футболка", CashbackPercent: 100},
			prepareMock: func() {
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			err := service.Create(ctx, tt.product)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdate(t *testing.T) {
	service, repo := NewMock(t)
	ctx := context.Background()
	product := &domain.Product{ID: 5, Name: "Футболка", CashbackPercent: 50}

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Product updated",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 5).Return(&domain.Product{ID: 5}, nil)
				repo.EXPECT().Update(gomock.Any(), product).Return(nil)
			},
		},
		{
			name: "Unknown product",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 5).Return(nil, nil)
			},
			expectedError: ErrProductNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			err := service.Update(ctx, product)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestList(t *testing.T) {
	service, repo := NewMock(t)
	expected := []domain.Product{{ID: 1, Name: "Футболка"}}
	repo.EXPECT().FindAll(gomock.Any(), true).Return(expected, nil)

	got, err := service.List(context.Background(), true)
	assert.NoError(t, err)
	assert.Equal(t, expected, got)
}
