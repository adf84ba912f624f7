package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/storefront-api/auth"
	orderControllers "github.com/junaidrashid-git/storefront-api/controllers/order"
	"github.com/junaidrashid-git/storefront-api/models"
	"github.com/junaidrashid-git/storefront-api/routes"
	"github.com/junaidrashid-git/storefront-api/services"
	"github.com/junaidrashid-git/storefront-api/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func newServer(t *testing.T) (*API, store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	mem := store.NewMemoryStore()
	feed := orderControllers.NewFeed()
	svc := services.New(mem, auth.NewTokenIssuer("client-secret", 0), feed)
	srv := httptest.NewServer(routes.NewRouter(svc, feed))
	t.Cleanup(srv.Close)
	t.Cleanup(feed.Close)
	return NewAPI(srv.URL, srv.Client()), mem
}

func TestShopperFlow(t *testing.T) {
	api, mem := newServer(t)
	ctx := context.Background()
	_, err := services.ProvisionAdmin(ctx, mem, "admin@shop.test", "adminpw", "Admin")
	require.NoError(t, err)

	admin := NewApp(api)
	adminUser, err := admin.Login(ctx, "admin@shop.test", "adminpw")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, adminUser.Role)
	assert.True(t, admin.Session.IsAdmin())

	blouse, err := api.CreateProduct(ctx, admin.Session.Token(), models.ProductInput{
		Name:     ptr("Silk Blouse"),
		Price:    ptr(decimal.RequireFromString("89.5")),
		Category: ptr("Tops"),
		Stock:    ptr(3),
		Sizes:    ptr(models.StringList{"S", "M"}),
	})
	require.NoError(t, err)

	shopper := NewApp(api)
	_, err = shopper.Register(ctx, "a@x.com", "secret1", "A")
	require.NoError(t, err)
	assert.False(t, shopper.Session.IsAdmin())

	listed, err := api.Products(ctx, models.ProductFilter{Category: "Tops"})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, blouse.ID, listed[0].ID)

	shopper.Cart.AddItem(listed[0], 2, "M", "Black")
	shopper.Cart.AddItem(listed[0], 1, "M", "Black")
	require.Equal(t, 3, shopper.Cart.Count())

	order, err := shopper.Checkout(ctx, "1 Main St")
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("268.5").Equal(order.Total))
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, 0, shopper.Cart.Count())
	assert.True(t, shopper.Cart.Total().IsZero())

	mine, err := api.MyOrders(ctx, shopper.Session.Token())
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, order.ID, mine[0].ID)

	all, err := api.AllOrders(ctx, admin.Session.Token())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "a@x.com", all[0].Users.Email)

	_, err = api.AllOrders(ctx, shopper.Session.Token())
	assertStatus(t, err, http.StatusForbidden)
}

func TestCheckoutPreconditions(t *testing.T) {
	api, _ := newServer(t)
	ctx := context.Background()
	app := NewApp(api)

	_, err := app.Checkout(ctx, "addr")
	assert.ErrorIs(t, err, ErrNotSignedIn)

	_, err = app.Register(ctx, "b@x.com", "pw", "B")
	require.NoError(t, err)
	_, err = app.Checkout(ctx, "addr")
	assert.ErrorIs(t, err, ErrEmptyCart)

	app.Cart.AddItem(models.Product{ID: "p", Name: "Tee", Price: decimal.NewFromInt(5)}, 1, "", "")
	_, err = app.Checkout(ctx, "  ")
	assertStatus(t, err, http.StatusBadRequest)
	assert.Equal(t, 1, app.Cart.Count(), "a rejected order keeps the cart")
}

func TestRefreshAndLogout(t *testing.T) {
	api, _ := newServer(t)
	ctx := context.Background()
	app := NewApp(api)

	_, err := app.Refresh(ctx)
	assert.ErrorIs(t, err, ErrNotSignedIn)

	registered, err := app.Register(ctx, "c@x.com", "pw", "C")
	require.NoError(t, err)
	me, err := app.Refresh(ctx)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, me.ID)

	app.Cart.AddItem(models.Product{ID: "p", Price: decimal.NewFromInt(1)}, 1, "", "")
	app.Logout()
	_, ok := app.Session.User()
	assert.False(t, ok)
	assert.Empty(t, app.Session.Token())
	assert.Equal(t, 0, app.Cart.Count())

	app.Session.Set(me, "not-a-token")
	_, err = app.Refresh(ctx)
	assertStatus(t, err, http.StatusUnauthorized)
	assert.Empty(t, app.Session.Token())
}

func TestAPIErrors(t *testing.T) {
	api, _ := newServer(t)
	ctx := context.Background()

	_, err := api.Login(ctx, "ghost@x.com", "pw")
	assertStatus(t, err, http.StatusUnauthorized)
	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Invalid credentials", apiErr.Message)

	_, err = api.Product(ctx, "missing")
	assertStatus(t, err, http.StatusNotFound)

	err = api.DeleteProduct(ctx, "", "missing")
	assertStatus(t, err, http.StatusUnauthorized)

	categories, err := api.Categories(ctx)
	require.NoError(t, err)
	assert.Empty(t, categories)
}

func assertStatus(t *testing.T, err error, status int) {
	t.Helper()
	var apiErr *Error
	if assert.True(t, errors.As(err, &apiErr), "want *Error, got %v", err) {
		assert.Equal(t, status, apiErr.Status)
	}
}
