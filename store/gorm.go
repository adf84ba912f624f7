package store

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/junaidrashid-git/storefront-api/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore keeps everything in Postgres through GORM.
type GormStore struct {
	db *gorm.DB
}

// OpenPostgres connects to dsn with unique-violation translation turned on.
func OpenPostgres(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Migrate creates or updates the users, products and orders tables.
func (s *GormStore) Migrate() error {
	return s.db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Order{},
	)
}

func (s *GormStore) CreateUser(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (s *GormStore) UserByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	return user, notFound(err)
}

func (s *GormStore) UserByID(ctx context.Context, id string) (models.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return models.User{}, ErrNotFound
	}
	var user models.User
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	return user, notFound(err)
}

func (s *GormStore) ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	query := s.db.WithContext(ctx).Model(&models.Product{})
	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+escapeLike(filter.Search)+"%")
	}
	if filter.HasCategory() {
		query = query.Where("category = ?", filter.Category)
	}

	products := []models.Product{}
	if err := query.Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *GormStore) ProductByID(ctx context.Context, id string) (models.Product, error) {
	if _, err := uuid.Parse(id); err != nil {
		return models.Product{}, ErrNotFound
	}
	var product models.Product
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&product).Error
	return product, notFound(err)
}

func (s *GormStore) CreateProduct(ctx context.Context, product *models.Product) error {
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
	return s.db.WithContext(ctx).Create(product).Error
}

func (s *GormStore) UpdateProduct(ctx context.Context, id string, input models.ProductInput) (models.Product, error) {
	if input.Empty() {
		return s.ProductByID(ctx, id)
	}
	if _, err := uuid.Parse(id); err != nil {
		return models.Product{}, ErrNotFound
	}

	var product models.Product
	res := s.db.WithContext(ctx).
		Model(&product).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(input.Columns())
	if res.Error != nil {
		return models.Product{}, res.Error
	}
	if res.RowsAffected == 0 {
		return models.Product{}, ErrNotFound
	}
	return product, nil
}

func (s *GormStore) DeleteProduct(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return nil
	}
	return s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Product{}).Error
}

func (s *GormStore) Categories(ctx context.Context) ([]string, error) {
	categories := []string{}
	err := s.db.WithContext(ctx).
		Model(&models.Product{}).
		Distinct("category").
		Order("category").
		Pluck("category", &categories).Error
	return categories, err
}

func (s *GormStore) CreateOrder(ctx context.Context, order *models.Order) error {
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	order.RoundAmounts()
	return s.db.WithContext(ctx).Omit(clause.Associations).Create(order).Error
}

func (s *GormStore) OrdersByUser(ctx context.Context, userID string) ([]models.Order, error) {
	orders := []models.Order{}
	if _, err := uuid.Parse(userID); err != nil {
		return orders, nil
	}
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (s *GormStore) AllOrders(ctx context.Context) ([]models.PurchasedOrder, error) {
	var orders []models.Order
	err := s.db.WithContext(ctx).
		InnerJoins("User").
		Order("orders.created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}

	shaped := make([]models.PurchasedOrder, 0, len(orders))
	for _, o := range orders {
		p := models.PurchasedOrder{Order: o}
		if o.User != nil {
			p.Users = models.Purchaser{Name: o.User.Name, Email: o.User.Email}
		}
		p.Order.User = nil
		shaped = append(shaped, p)
	}
	return shaped, nil
}

func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match literally inside a LIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
