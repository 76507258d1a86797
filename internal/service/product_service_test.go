package service

import (
	"context"
	"testing"

	"bakery-api/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductRepository is a mock implementation of ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product *model.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) GetAll(ctx context.Context, limit int) ([]model.Product, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, product *model.Product) (bool, error) {
	args := m.Called(ctx, product)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func TestProductService_Create_Success(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockRepo := new(MockProductRepository)
	service := NewProductService(mockRepo, logger)

	req := &model.ProductRequest{Name: "Baguette", Price: 1.50, Category: "bread"}
	mockRepo.On("Create", ctx, mock.AnythingOfType("*model.Product")).Return(nil)

	product, err := service.Create(ctx, req)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, product.ID)
	assert.Equal(t, "Baguette", product.Name)
	assert.Equal(t, 1.50, product.Price)
	assert.True(t, product.Available, "availability should default to true")

	mockRepo.AssertExpectations(t)
}

func TestProductService_Create_ExplicitUnavailable(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockRepo := new(MockProductRepository)
	service := NewProductService(mockRepo, logger)

	available := false
	req := &model.ProductRequest{Name: "Roscón", Price: 25, Category: "seasonal", Available: &available}
	mockRepo.On("Create", ctx, mock.AnythingOfType("*model.Product")).Return(nil)

	product, err := service.Create(ctx, req)

	require.NoError(t, err)
	assert.False(t, product.Available)
}

func TestProductService_Create_ValidationErrors(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	tests := []struct {
		name     string
		req      *model.ProductRequest
		wantCode string
	}{
		{"nil request", nil, model.ErrCodeMissingField},
		{"missing name", &model.ProductRequest{Price: 1, Category: "bread"}, model.ErrCodeMissingField},
		{"missing category", &model.ProductRequest{Name: "Baguette", Price: 1}, model.ErrCodeMissingField},
		{"negative price", &model.ProductRequest{Name: "Baguette", Price: -0.5, Category: "bread"}, model.ErrCodeInvalidPrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockProductRepository)
			service := NewProductService(mockRepo, logger)

			_, err := service.Create(ctx, tt.req)

			var domainErr *model.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, tt.wantCode, domainErr.Code)
			mockRepo.AssertNotCalled(t, "Create")
		})
	}
}

func TestProductService_GetByID_NotFound(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockRepo := new(MockProductRepository)
	service := NewProductService(mockRepo, logger)

	id := uuid.New()
	mockRepo.On("GetByID", ctx, id).Return(nil, nil)

	_, err := service.GetByID(ctx, id)

	var domainErr *model.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, model.ErrCodeProductNotFound, domainErr.Code)
	assert.Contains(t, domainErr.Message, id.String())
}

func TestProductService_Update(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		service := NewProductService(mockRepo, logger)

		id := uuid.New()
		req := &model.ProductRequest{Name: "Sourdough", Price: 4.80, Category: "bread"}
		mockRepo.On("Update", ctx, mock.AnythingOfType("*model.Product")).Return(true, nil)

		product, err := service.Update(ctx, id, req)

		require.NoError(t, err)
		assert.Equal(t, id, product.ID)
		assert.Equal(t, 4.80, product.Price)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		service := NewProductService(mockRepo, logger)

		id := uuid.New()
		req := &model.ProductRequest{Name: "Sourdough", Price: 4.80, Category: "bread"}
		mockRepo.On("Update", ctx, mock.AnythingOfType("*model.Product")).Return(false, nil)

		_, err := service.Update(ctx, id, req)

		var domainErr *model.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, model.ErrCodeProductNotFound, domainErr.Code)
	})
}

func TestProductService_Delete(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		service := NewProductService(mockRepo, logger)

		id := uuid.New()
		mockRepo.On("Delete", ctx, id).Return(true, nil)

		assert.NoError(t, service.Delete(ctx, id))
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		service := NewProductService(mockRepo, logger)

		id := uuid.New()
		mockRepo.On("Delete", ctx, id).Return(false, nil)

		err := service.Delete(ctx, id)

		var domainErr *model.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, model.ErrCodeProductNotFound, domainErr.Code)
	})
}

func TestProductService_GetAll(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockRepo := new(MockProductRepository)
	service := NewProductService(mockRepo, logger)

	stored := []model.Product{
		{ID: uuid.New(), Name: "Baguette", Price: 1.50, Category: "bread", Available: true},
	}
	mockRepo.On("GetAll", ctx, 1000).Return(stored, nil)

	products, err := service.GetAll(ctx)

	require.NoError(t, err)
	assert.Equal(t, stored, products)
}
