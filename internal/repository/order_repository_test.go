package repository

import (
	"context"
	"testing"
	"time"

	"bakery-api/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(createdAt time.Time, status model.OrderStatus, total float64) *model.Order {
	return &model.Order{
		ID:           uuid.New(),
		CustomerID:   uuid.New(),
		CustomerName: "Ana",
		CreatedAt:    createdAt,
		DeliveryDate: time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC),
		Status:       status,
		Lines: []model.OrderLine{
			{ProductID: uuid.New(), ProductName: "Baguette", Quantity: 2, UnitPrice: total / 2, Subtotal: total},
		},
		Total: total,
	}
}

func TestOrderRepository_CreateAndGetByID(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	repo := NewOrderRepository(pool, zerolog.Nop())

	order := &model.Order{
		ID:           uuid.New(),
		CustomerID:   uuid.New(),
		CustomerName: "Ana",
		CreatedAt:    time.Now().UTC().Truncate(time.Millisecond),
		DeliveryDate: time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC),
		Status:       model.StatusPending,
		Lines: []model.OrderLine{
			{ProductID: uuid.New(), ProductName: "Baguette", Quantity: 2, UnitPrice: 3.00, Subtotal: 6.00},
			{ProductID: uuid.New(), ProductName: "Tarta", Quantity: 1, UnitPrice: 5.50, Subtotal: 5.50},
		},
		Total: 11.50,
	}
	require.NoError(t, repo.Create(ctx, order))

	got, err := repo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, order.ID, got.ID)
	assert.Equal(t, order.CustomerID, got.CustomerID)
	assert.Equal(t, "Ana", got.CustomerName)
	assert.Equal(t, model.StatusPending, got.Status)
	assert.Equal(t, 11.50, got.Total)
	require.Len(t, got.Lines, 2)
	assert.Equal(t, order.Lines[0], got.Lines[0])
	assert.Equal(t, order.Lines[1], got.Lines[1])
	assert.WithinDuration(t, order.CreatedAt, got.CreatedAt, time.Second)
	assert.Equal(t, order.DeliveryDate, got.DeliveryDate.UTC())
}

func TestOrderRepository_GetByID_NotFound(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewOrderRepository(pool, zerolog.Nop())

	got, err := repo.GetByID(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestOrderRepository_GetAll_NewestFirst(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	repo := NewOrderRepository(pool, zerolog.Nop())

	base := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	oldest := newTestOrder(base, model.StatusPending, 10)
	middle := newTestOrder(base.Add(1*time.Hour), model.StatusPending, 20)
	newest := newTestOrder(base.Add(2*time.Hour), model.StatusPending, 30)

	// Insert out of order to make sure sorting comes from the query.
	for _, o := range []*model.Order{middle, newest, oldest} {
		require.NoError(t, repo.Create(ctx, o))
	}

	orders, err := repo.GetAll(ctx, DefaultListLimit)
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, newest.ID, orders[0].ID)
	assert.Equal(t, middle.ID, orders[1].ID)
	assert.Equal(t, oldest.ID, orders[2].ID)
}

func TestOrderRepository_UpdateStatus(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	repo := NewOrderRepository(pool, zerolog.Nop())

	order := newTestOrder(time.Now().UTC(), model.StatusPending, 11.50)
	require.NoError(t, repo.Create(ctx, order))

	found, err := repo.UpdateStatus(ctx, order.ID, model.StatusCompleted)
	require.NoError(t, err)
	assert.True(t, found)

	got, err := repo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, got.Status)
	// Everything else is untouched.
	assert.Equal(t, order.Total, got.Total)
	assert.Equal(t, order.Lines, got.Lines)
	assert.Equal(t, order.CustomerName, got.CustomerName)
}

func TestOrderRepository_UpdateStatus_NotFound(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewOrderRepository(pool, zerolog.Nop())

	found, err := repo.UpdateStatus(context.Background(), uuid.New(), model.StatusCancelled)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestOrderRepository_Delete(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	repo := NewOrderRepository(pool, zerolog.Nop())

	order := newTestOrder(time.Now().UTC(), model.StatusPending, 11.50)
	require.NoError(t, repo.Create(ctx, order))

	found, err := repo.Delete(ctx, order.ID)
	require.NoError(t, err)
	assert.True(t, found)

	found, err = repo.Delete(ctx, order.ID)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestOrderRepository_CountsAndRevenue(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	repo := NewOrderRepository(pool, zerolog.Nop())

	now := time.Now().UTC()
	orders := []*model.Order{
		newTestOrder(now, model.StatusPending, 3),
		newTestOrder(now, model.StatusPending, 4),
		newTestOrder(now, model.StatusInProgress, 7),
		newTestOrder(now, model.StatusCompleted, 10),
		newTestOrder(now, model.StatusCompleted, 5),
	}
	for _, o := range orders {
		require.NoError(t, repo.Create(ctx, o))
	}

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)

	pending, err := repo.CountByStatus(ctx, model.StatusPending)
	require.NoError(t, err)
	assert.Equal(t, int64(2), pending)

	inProgress, err := repo.CountByStatus(ctx, model.StatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, int64(1), inProgress)

	completed, err := repo.CountByStatus(ctx, model.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, int64(2), completed)

	// Revenue counts completed orders only.
	revenue, err := repo.SumTotalByStatus(ctx, model.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, 15.0, revenue)
}

func TestOrderRepository_SumTotalByStatus_Empty(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewOrderRepository(pool, zerolog.Nop())

	revenue, err := repo.SumTotalByStatus(context.Background(), model.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, 0.0, revenue)
}
