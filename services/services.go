// Package services holds the storefront's operations: authentication,
// catalog management and order placement. Handlers stay thin and call in
// here; every error returned is an *apperr.Error.
package services

import (
	"errors"
	"log"

	"github.com/junaidrashid-git/storefront-api/apperr"
	"github.com/junaidrashid-git/storefront-api/auth"
	"github.com/junaidrashid-git/storefront-api/store"
)

// Services bundles everything the HTTP layer needs.
type Services struct {
	Auth     *AuthService
	Products *ProductService
	Orders   *OrderService
	Tokens   *auth.TokenIssuer
	Store    store.Store
}

func New(s store.Store, tokens *auth.TokenIssuer, notifier OrderNotifier) *Services {
	return &Services{
		Auth:     NewAuthService(s, tokens),
		Products: NewProductService(s),
		Orders:   NewOrderService(s, notifier),
		Tokens:   tokens,
		Store:    s,
	}
}

// unavailable logs the cause of a store failure and hides it from clients.
func unavailable(err error, msg string) error {
	log.Printf("❌ %s: %v", msg, err)
	return apperr.Wrap(err, msg)
}

func isNotFound(err error) bool { return errors.Is(err, store.ErrNotFound) }

// nonNil keeps empty listings serialising as [] rather than null.
func nonNil[T any](rows []T) []T {
	if rows == nil {
		return []T{}
	}
	return rows
}
