package services

import (
	"context"
	"strings"

	"github.com/junaidrashid-git/storefront-api/apperr"
	"github.com/junaidrashid-git/storefront-api/auth"
	"github.com/junaidrashid-git/storefront-api/models"
	"github.com/junaidrashid-git/storefront-api/store"
)

type ProductService struct {
	store store.Store
}

func NewProductService(s store.Store) *ProductService {
	return &ProductService{store: s}
}

func (s *ProductService) List(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	products, err := s.store.ListProducts(ctx, filter)
	if err != nil {
		return nil, unavailable(err, "Failed to fetch products")
	}
	return nonNil(products), nil
}

func (s *ProductService) Get(ctx context.Context, id string) (models.Product, error) {
	if strings.TrimSpace(id) == "" {
		return models.Product{}, apperr.NewValidation("Product ID required")
	}
	product, err := s.store.ProductByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return models.Product{}, apperr.NewNotFound("Product not found")
		}
		return models.Product{}, unavailable(err, "Failed to retrieve product")
	}
	return product, nil
}

func (s *ProductService) Categories(ctx context.Context) ([]string, error) {
	categories, err := s.store.Categories(ctx)
	if err != nil {
		return nil, unavailable(err, "Failed to fetch categories")
	}
	return nonNil(categories), nil
}

// Create adds a product. Name, price and category are required; the rest
// default to empty or zero.
func (s *ProductService) Create(ctx context.Context, caller auth.Principal, in models.ProductInput) (models.Product, error) {
	if err := requireAdmin(caller); err != nil {
		return models.Product{}, err
	}
	if in.Name == nil || strings.TrimSpace(*in.Name) == "" ||
		in.Price == nil ||
		in.Category == nil || strings.TrimSpace(*in.Category) == "" {
		return models.Product{}, apperr.NewValidation("Name, price and category required")
	}
	if err := validateAmounts(in); err != nil {
		return models.Product{}, err
	}

	var product models.Product
	in.Apply(&product)
	if err := s.store.CreateProduct(ctx, &product); err != nil {
		return models.Product{}, unavailable(err, "Failed to create product")
	}
	return product, nil
}

// Update changes only the fields present in the input.
func (s *ProductService) Update(ctx context.Context, caller auth.Principal, id string, in models.ProductInput) (models.Product, error) {
	if err := requireAdmin(caller); err != nil {
		return models.Product{}, err
	}
	if strings.TrimSpace(id) == "" {
		return models.Product{}, apperr.NewValidation("Product ID required")
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return models.Product{}, apperr.NewValidation("Name cannot be empty")
	}
	if in.Category != nil && strings.TrimSpace(*in.Category) == "" {
		return models.Product{}, apperr.NewValidation("Category cannot be empty")
	}
	if err := validateAmounts(in); err != nil {
		return models.Product{}, err
	}

	product, err := s.store.UpdateProduct(ctx, id, in)
	if err != nil {
		if isNotFound(err) {
			return models.Product{}, apperr.NewNotFound("Product not found")
		}
		return models.Product{}, unavailable(err, "Failed to update product")
	}
	return product, nil
}

// Delete removes a product; deleting an unknown id still succeeds.
func (s *ProductService) Delete(ctx context.Context, caller auth.Principal, id string) error {
	if err := requireAdmin(caller); err != nil {
		return err
	}
	if strings.TrimSpace(id) == "" {
		return apperr.NewValidation("Product ID required")
	}
	if err := s.store.DeleteProduct(ctx, id); err != nil {
		return unavailable(err, "Failed to delete product")
	}
	return nil
}

func validateAmounts(in models.ProductInput) error {
	if in.Price != nil {
		if in.Price.IsNegative() {
			return apperr.NewValidation("Price cannot be negative")
		}
		if !models.IsCents(*in.Price) {
			return apperr.NewValidation("Price cannot have more than two decimals")
		}
		if in.Price.GreaterThan(models.MaxPrice) {
			return apperr.NewValidation("Price is too large")
		}
	}
	if in.Stock != nil && *in.Stock < 0 {
		return apperr.NewValidation("Stock cannot be negative")
	}
	return nil
}

func requireAdmin(caller auth.Principal) error {
	if caller.UserID == "" {
		return apperr.NewAuth("Unauthorized")
	}
	if !caller.IsAdmin() {
		return apperr.NewForbidden("Forbidden")
	}
	return nil
}
