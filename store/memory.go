package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/junaidrashid-git/storefront-api/models"
)

// MemoryStore keeps everything in process memory. It backs DEV_MODE and
// tests and mirrors the Postgres store's semantics.
type MemoryStore struct {
	mu       sync.Mutex
	seq      int64
	users    map[string]models.User
	products map[string]stamped[models.Product]
	orders   map[string]stamped[models.Order]
	now      func() time.Time
}

// stamped remembers insertion order so rows created within the same clock
// tick still list newest first.
type stamped[T any] struct {
	seq int64
	row T
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:    make(map[string]models.User),
		products: make(map[string]stamped[models.Product]),
		orders:   make(map[string]stamped[models.Order]),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (m *MemoryStore) CreateUser(_ context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == user.Email {
			return ErrDuplicateEmail
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.Role == "" {
		user.Role = models.RoleCustomer
	}
	user.CreatedAt = m.now()
	m.users[user.ID] = *user
	return nil
}

func (m *MemoryStore) UserByEmail(_ context.Context, email string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}

func (m *MemoryStore) UserByID(_ context.Context, id string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return u, nil
}

func (m *MemoryStore) ListProducts(_ context.Context, filter models.ProductFilter) ([]models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	search := strings.ToLower(filter.Search)

	var matches []stamped[models.Product]
	for _, p := range m.products {
		if search != "" && !strings.Contains(strings.ToLower(p.row.Name), search) {
			continue
		}
		if filter.HasCategory() && p.row.Category != filter.Category {
			continue
		}
		matches = append(matches, stamped[models.Product]{seq: p.seq, row: cloneProduct(p.row)})
	}
	return newestFirst(matches, func(p models.Product) time.Time { return p.CreatedAt }), nil
}

func (m *MemoryStore) ProductByID(_ context.Context, id string) (models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[id]
	if !ok {
		return models.Product{}, ErrNotFound
	}
	return cloneProduct(p.row), nil
}

func (m *MemoryStore) CreateProduct(_ context.Context, product *models.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if product.ID == "" {
		product.ID = uuid.NewString()
	}
	if product.Sizes == nil {
		product.Sizes = models.StringList{}
	}
	if product.Colors == nil {
		product.Colors = models.StringList{}
	}
	product.Price = models.RoundMoney(product.Price)
	product.CreatedAt = m.now()
	m.seq++
	m.products[product.ID] = stamped[models.Product]{seq: m.seq, row: cloneProduct(*product)}
	return nil
}

func (m *MemoryStore) UpdateProduct(_ context.Context, id string, input models.ProductInput) (models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[id]
	if !ok {
		return models.Product{}, ErrNotFound
	}
	input.Apply(&p.row)
	p.row = cloneProduct(p.row)
	m.products[id] = p
	return cloneProduct(p.row), nil
}

func (m *MemoryStore) DeleteProduct(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.products, id)
	return nil
}

func (m *MemoryStore) Categories(_ context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	seen := make(map[string]bool)
	categories := []string{}
	for _, p := range m.products {
		if !seen[p.row.Category] {
			seen[p.row.Category] = true
			categories = append(categories, p.row.Category)
		}
	}
	sort.Strings(categories)
	return categories, nil
}

func (m *MemoryStore) CreateOrder(_ context.Context, order *models.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	if order.Status == "" {
		order.Status = models.OrderStatusPending
	}
	order.RoundAmounts()
	order.CreatedAt = m.now()
	m.seq++
	row := cloneOrder(*order)
	m.orders[order.ID] = stamped[models.Order]{seq: m.seq, row: row}
	return nil
}

func (m *MemoryStore) OrdersByUser(_ context.Context, userID string) ([]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var matches []stamped[models.Order]
	for _, o := range m.orders {
		if o.row.UserID == userID {
			matches = append(matches, o)
		}
	}
	orders := newestFirst(matches, func(o models.Order) time.Time { return o.CreatedAt })
	for i := range orders {
		orders[i] = cloneOrder(orders[i])
	}
	return orders, nil
}

func (m *MemoryStore) AllOrders(_ context.Context) ([]models.PurchasedOrder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var joined []stamped[models.Order]
	for _, o := range m.orders {
		// inner join: orders whose user vanished are dropped
		if _, ok := m.users[o.row.UserID]; ok {
			joined = append(joined, o)
		}
	}
	orders := newestFirst(joined, func(o models.Order) time.Time { return o.CreatedAt })

	shaped := make([]models.PurchasedOrder, 0, len(orders))
	for _, o := range orders {
		u := m.users[o.UserID]
		shaped = append(shaped, models.PurchasedOrder{
			Order: cloneOrder(o),
			Users: models.Purchaser{Name: u.Name, Email: u.Email},
		})
	}
	return shaped, nil
}

func (m *MemoryStore) Ping(context.Context) error { return nil }

func newestFirst[T any](rows []stamped[T], createdAt func(T) time.Time) []T {
	sort.Slice(rows, func(i, j int) bool {
		ti, tj := createdAt(rows[i].row), createdAt(rows[j].row)
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return rows[i].seq > rows[j].seq
	})
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.row)
	}
	return out
}

func cloneProduct(p models.Product) models.Product {
	p.Sizes = append(models.StringList{}, p.Sizes...)
	p.Colors = append(models.StringList{}, p.Colors...)
	return p
}

func cloneOrder(o models.Order) models.Order {
	o.Items = append(models.OrderItems{}, o.Items...)
	return o
}
