package store

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/junaidrashid-git/storefront-api/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

// runContract exercises the behaviour every Store must share.
func runContract(t *testing.T, newStore func(t *testing.T) Store) {
	ctx := context.Background()

	t.Run("users", func(t *testing.T) {
		s := newStore(t)
		user := &models.User{Email: "a@x.com", Name: "A", Role: models.RoleCustomer, PasswordHash: "h"}
		require.NoError(t, s.CreateUser(ctx, user))
		assert.NotEmpty(t, user.ID)

		byEmail, err := s.UserByEmail(ctx, "a@x.com")
		require.NoError(t, err)
		assert.Equal(t, user.ID, byEmail.ID)
		assert.Equal(t, "h", byEmail.PasswordHash)

		byID, err := s.UserByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "a@x.com", byID.Email)
		assert.False(t, byID.CreatedAt.IsZero())

		err = s.CreateUser(ctx, &models.User{Email: "a@x.com", Name: "B", Role: models.RoleCustomer, PasswordHash: "h2"})
		assert.ErrorIs(t, err, ErrDuplicateEmail)

		_, err = s.UserByEmail(ctx, "A@x.com")
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = s.UserByID(ctx, uuid.NewString())
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = s.UserByID(ctx, "not-a-uuid")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("products", func(t *testing.T) {
		s := newStore(t)
		blouse := &models.Product{
			Name:     "Silk Blouse",
			Price:    decimal.RequireFromString("89.5"),
			Category: "Tops",
			Sizes:    models.StringList{"S", "M"},
			Stock:    3,
		}
		dress := &models.Product{Name: "Linen Dress", Price: decimal.NewFromInt(120), Category: "Dresses"}
		pct := &models.Product{Name: "100%_Cotton Tee", Price: decimal.NewFromInt(20), Category: "Tops"}
		for _, p := range []*models.Product{blouse, dress, pct} {
			require.NoError(t, s.CreateProduct(ctx, p))
		}

		all, err := s.ListProducts(ctx, models.ProductFilter{})
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, pct.ID, all[0].ID, "newest first")
		assert.Equal(t, blouse.ID, all[2].ID)

		tops, err := s.ListProducts(ctx, models.ProductFilter{Category: "Tops"})
		require.NoError(t, err)
		assert.Len(t, tops, 2)

		everything, err := s.ListProducts(ctx, models.ProductFilter{Category: models.CategoryAll})
		require.NoError(t, err)
		assert.Len(t, everything, 3)

		lower, err := s.ListProducts(ctx, models.ProductFilter{Search: "silk", Category: "tops"})
		require.NoError(t, err)
		assert.Empty(t, lower, "category is case-sensitive")

		found, err := s.ListProducts(ctx, models.ProductFilter{Search: "BLOU"})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, blouse.ID, found[0].ID)

		literal, err := s.ListProducts(ctx, models.ProductFilter{Search: "%_"})
		require.NoError(t, err)
		require.Len(t, literal, 1)
		assert.Equal(t, pct.ID, literal[0].ID)

		got, err := s.ProductByID(ctx, blouse.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, got.Stock)
		assert.True(t, got.Price.Equal(decimal.RequireFromString("89.5")))
		assert.Equal(t, models.StringList{"S", "M"}, got.Sizes)
		assert.Equal(t, models.StringList{}, got.Colors)

		categories, err := s.Categories(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"Dresses", "Tops"}, categories)
	})

	t.Run("partial update", func(t *testing.T) {
		s := newStore(t)
		p := &models.Product{
			Name:        "Silk Blouse",
			Description: "soft",
			Price:       decimal.NewFromInt(90),
			Category:    "Tops",
			Colors:      models.StringList{"Black"},
			ImageURL:    "/img/blouse.jpg",
			Stock:       3,
		}
		require.NoError(t, s.CreateProduct(ctx, p))

		updated, err := s.UpdateProduct(ctx, p.ID, models.ProductInput{Stock: ptr(7)})
		require.NoError(t, err)
		assert.Equal(t, 7, updated.Stock)
		assert.Equal(t, "Silk Blouse", updated.Name)
		assert.Equal(t, "soft", updated.Description)
		assert.Equal(t, "/img/blouse.jpg", updated.ImageURL)
		assert.Equal(t, models.StringList{"Black"}, updated.Colors)
		assert.True(t, updated.Price.Equal(decimal.NewFromInt(90)))

		updated, err = s.UpdateProduct(ctx, p.ID, models.ProductInput{
			Price:  ptr(decimal.RequireFromString("75.25")),
			Colors: ptr(models.StringList{"Ivory", "Black"}),
		})
		require.NoError(t, err)
		assert.True(t, updated.Price.Equal(decimal.RequireFromString("75.25")))
		assert.Equal(t, models.StringList{"Ivory", "Black"}, updated.Colors)
		assert.Equal(t, 7, updated.Stock)

		unchanged, err := s.UpdateProduct(ctx, p.ID, models.ProductInput{})
		require.NoError(t, err)
		assert.Equal(t, updated.Name, unchanged.Name)

		_, err = s.UpdateProduct(ctx, uuid.NewString(), models.ProductInput{Stock: ptr(1)})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		s := newStore(t)
		p := &models.Product{Name: "Scarf", Price: decimal.NewFromInt(10), Category: "Accessories"}
		require.NoError(t, s.CreateProduct(ctx, p))

		require.NoError(t, s.DeleteProduct(ctx, p.ID))
		require.NoError(t, s.DeleteProduct(ctx, p.ID))
		require.NoError(t, s.DeleteProduct(ctx, uuid.NewString()))

		_, err := s.ProductByID(ctx, p.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("orders", func(t *testing.T) {
		s := newStore(t)
		alice := &models.User{Email: "alice@x.com", Name: "Alice", Role: models.RoleCustomer, PasswordHash: "h"}
		bob := &models.User{Email: "bob@x.com", Name: "Bob", Role: models.RoleCustomer, PasswordHash: "h"}
		require.NoError(t, s.CreateUser(ctx, alice))
		require.NoError(t, s.CreateUser(ctx, bob))

		item := models.OrderItem{ProductID: uuid.NewString(), ProductName: "Scarf", Quantity: 2, Price: decimal.NewFromInt(10), Size: "M", Color: "Red"}
		first := &models.Order{UserID: alice.ID, Items: models.OrderItems{item}, Total: decimal.NewFromInt(20), Status: models.OrderStatusPending, ShippingAddress: "1 Main St"}
		second := &models.Order{UserID: bob.ID, Items: models.OrderItems{item}, Total: decimal.NewFromInt(20), Status: models.OrderStatusPending, ShippingAddress: "2 Main St"}
		third := &models.Order{UserID: alice.ID, Items: models.OrderItems{item}, Total: decimal.NewFromInt(20), Status: models.OrderStatusPending, ShippingAddress: "1 Main St"}
		for _, o := range []*models.Order{first, second, third} {
			require.NoError(t, s.CreateOrder(ctx, o))
			assert.NotEmpty(t, o.ID)
		}

		mine, err := s.OrdersByUser(ctx, alice.ID)
		require.NoError(t, err)
		require.Len(t, mine, 2)
		assert.Equal(t, third.ID, mine[0].ID)
		assert.Equal(t, first.ID, mine[1].ID)
		assert.Equal(t, models.OrderItems{item}[0].ProductName, mine[0].Items[0].ProductName)
		assert.Equal(t, models.OrderStatusPending, mine[0].Status)

		all, err := s.AllOrders(ctx)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, third.ID, all[0].ID)
		assert.Equal(t, models.Purchaser{Name: "Bob", Email: "bob@x.com"}, all[1].Users)
		assert.Equal(t, models.Purchaser{Name: "Alice", Email: "alice@x.com"}, all[2].Users)

		none, err := s.OrdersByUser(ctx, uuid.NewString())
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("amounts are kept in cents", func(t *testing.T) {
		s := newStore(t)
		p := &models.Product{Name: "Tee", Price: decimal.RequireFromString("89.555"), Category: "Tops"}
		require.NoError(t, s.CreateProduct(ctx, p))
		assert.True(t, decimal.RequireFromString("89.56").Equal(p.Price), "got %s", p.Price)

		stored, err := s.ProductByID(ctx, p.ID)
		require.NoError(t, err)
		assert.True(t, p.Price.Equal(stored.Price), "returned %s, stored %s", p.Price, stored.Price)

		updated, err := s.UpdateProduct(ctx, p.ID, models.ProductInput{Price: ptr(decimal.RequireFromString("10.005"))})
		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("10.01").Equal(updated.Price), "got %s", updated.Price)

		buyer := &models.User{Email: "c@x.com", Name: "C", Role: models.RoleCustomer, PasswordHash: "h"}
		require.NoError(t, s.CreateUser(ctx, buyer))
		items := models.OrderItems{
			{ProductID: p.ID, ProductName: "Tee", Quantity: 1, Price: decimal.RequireFromString("19.999")},
			{ProductID: p.ID, ProductName: "Tee", Quantity: 3, Price: decimal.RequireFromString("0.333")},
		}
		order := &models.Order{UserID: buyer.ID, Items: items, Total: models.SumItems(items), Status: models.OrderStatusPending, ShippingAddress: "x"}
		require.NoError(t, s.CreateOrder(ctx, order))
		assert.True(t, decimal.RequireFromString("20.99").Equal(order.Total), "got %s", order.Total)

		mine, err := s.OrdersByUser(ctx, buyer.ID)
		require.NoError(t, err)
		require.Len(t, mine, 1)
		assert.True(t, order.Total.Equal(mine[0].Total), "returned %s, stored %s", order.Total, mine[0].Total)
		assert.True(t, models.SumItems(mine[0].Items).Equal(mine[0].Total))
		assert.True(t, decimal.RequireFromString("20").Equal(mine[0].Items[0].Price))
	})

	t.Run("ping", func(t *testing.T) {
		assert.NoError(t, newStore(t).Ping(ctx))
	})
}
