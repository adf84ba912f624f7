package client

import (
	"context"
	"errors"
	"net/http"

	"github.com/junaidrashid-git/storefront-api/cart"
	"github.com/junaidrashid-git/storefront-api/models"
	"github.com/junaidrashid-git/storefront-api/services"
)

var (
	ErrNotSignedIn = errors.New("client: not signed in")
	ErrEmptyCart   = errors.New("client: cart is empty")
)

// App is the shopper's client state: one session and one cart, both reset
// on logout.
type App struct {
	API     *API
	Session *Session
	Cart    *cart.Cart
}

func NewApp(api *API) *App {
	return &App{API: api, Session: &Session{}, Cart: cart.New()}
}

func (a *App) Register(ctx context.Context, email, password, name string) (models.User, error) {
	s, err := a.API.Register(ctx, email, password, name)
	if err != nil {
		return models.User{}, err
	}
	a.Session.Set(s.User, s.Token)
	return s.User, nil
}

func (a *App) Login(ctx context.Context, email, password string) (models.User, error) {
	s, err := a.API.Login(ctx, email, password)
	if err != nil {
		return models.User{}, err
	}
	a.Session.Set(s.User, s.Token)
	return s.User, nil
}

// Refresh re-reads the account behind the stored token. A rejected token
// signs the session out.
func (a *App) Refresh(ctx context.Context) (models.User, error) {
	token := a.Session.Token()
	if token == "" {
		return models.User{}, ErrNotSignedIn
	}
	user, err := a.API.Me(ctx, token)
	if err != nil {
		var apiErr *Error
		if errors.As(err, &apiErr) && (apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusNotFound) {
			a.Session.Reset()
		}
		return models.User{}, err
	}
	a.Session.Set(user, token)
	return user, nil
}

func (a *App) Logout() {
	a.Session.Reset()
	a.Cart.Clear()
}

// Checkout places the cart as an order and empties the cart once the
// order is accepted.
func (a *App) Checkout(ctx context.Context, shippingAddress string) (models.Order, error) {
	token := a.Session.Token()
	if token == "" {
		return models.Order{}, ErrNotSignedIn
	}
	items := a.Cart.OrderItems()
	if len(items) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	order, err := a.API.PlaceOrder(ctx, token, services.PlaceOrderInput{Items: items, ShippingAddress: shippingAddress})
	if err != nil {
		return models.Order{}, err
	}
	a.Cart.Clear()
	return order, nil
}
