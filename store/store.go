// Package store is the single persistence contract for users, products
// and orders. Every write is one atomic statement, so a caller never sees a
// half-written row.
package store

import (
	"context"
	"errors"

	"github.com/junaidrashid-git/storefront-api/models"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

type Store interface {
	// CreateUser assigns ID and CreatedAt. Returns ErrDuplicateEmail when the
	// email is taken.
	CreateUser(ctx context.Context, user *models.User) error
	UserByEmail(ctx context.Context, email string) (models.User, error)
	UserByID(ctx context.Context, id string) (models.User, error)

	// ListProducts returns matches newest first.
	ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error)
	ProductByID(ctx context.Context, id string) (models.Product, error)
	CreateProduct(ctx context.Context, product *models.Product) error
	// UpdateProduct changes only the supplied fields and returns the row
	// as stored.
	UpdateProduct(ctx context.Context, id string, input models.ProductInput) (models.Product, error)
	// DeleteProduct succeeds whether or not the product existed.
	DeleteProduct(ctx context.Context, id string) error
	Categories(ctx context.Context) ([]string, error)

	CreateOrder(ctx context.Context, order *models.Order) error
	// OrdersByUser and AllOrders return newest first.
	OrdersByUser(ctx context.Context, userID string) ([]models.Order, error)
	AllOrders(ctx context.Context) ([]models.PurchasedOrder, error)

	Ping(ctx context.Context) error
}
