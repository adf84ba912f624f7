package store

import (
	"context"
	"testing"
	"time"

	"github.com/junaidrashid-git/storefront-api/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreContract(t *testing.T) {
	runContract(t, func(*testing.T) Store { return NewMemoryStore() })
}

func TestMemoryStoreOrdersByClock(t *testing.T) {
	s := NewMemoryStore()
	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return clock }

	older := &models.Product{Name: "Old", Price: decimal.NewFromInt(1), Category: "X"}
	require.NoError(t, s.CreateProduct(context.Background(), older))

	clock = clock.Add(-time.Hour) // a row stamped earlier lists after
	backdated := &models.Product{Name: "Backdated", Price: decimal.NewFromInt(1), Category: "X"}
	require.NoError(t, s.CreateProduct(context.Background(), backdated))

	list, err := s.ListProducts(context.Background(), models.ProductFilter{})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, older.ID, list[0].ID)
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	s := NewMemoryStore()
	p := &models.Product{Name: "Tee", Price: decimal.NewFromInt(1), Category: "X", Sizes: models.StringList{"S"}}
	require.NoError(t, s.CreateProduct(context.Background(), p))

	got, err := s.ProductByID(context.Background(), p.ID)
	require.NoError(t, err)
	got.Sizes[0] = "XL"

	again, err := s.ProductByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StringList{"S"}, again.Sizes)
}

func TestMemoryStoreOrderItemsAreCopies(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	buyer := &models.User{Email: "a@x.com", Name: "A", Role: models.RoleCustomer, PasswordHash: "h"}
	require.NoError(t, s.CreateUser(ctx, buyer))
	item := models.OrderItem{ProductID: "p", ProductName: "Tee", Quantity: 1, Price: decimal.NewFromInt(5)}
	require.NoError(t, s.CreateOrder(ctx, &models.Order{UserID: buyer.ID, Items: models.OrderItems{item}, ShippingAddress: "x"}))

	mine, err := s.OrdersByUser(ctx, buyer.ID)
	require.NoError(t, err)
	mine[0].Items[0].Quantity = 99

	all, err := s.AllOrders(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, all[0].Items[0].Quantity)
	all[0].Items[0].ProductName = "Changed"

	again, err := s.OrdersByUser(ctx, buyer.ID)
	require.NoError(t, err)
	got := again[0].Items[0]
	assert.Equal(t, 1, got.Quantity)
	assert.Equal(t, "Tee", got.ProductName)
	assert.True(t, item.Price.Equal(got.Price))
}
