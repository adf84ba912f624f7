package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Clients treat price and total as numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

type Product struct {
	ID          string          `gorm:"primaryKey;type:uuid" json:"id"`
	Name        string          `gorm:"not null" json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `gorm:"type:NUMERIC(10,2);not null" json:"price"`
	Category    string          `gorm:"index;not null" json:"category"`
	Sizes       StringList      `gorm:"type:JSONB;not null;default:'[]'" json:"sizes"`
	Colors      StringList      `gorm:"type:JSONB;not null;default:'[]'" json:"colors"`
	ImageURL    string          `json:"image_url"`
	Stock       int             `gorm:"not null;default:0" json:"stock"`
	CreatedAt   time.Time       `gorm:"index" json:"created_at"`
}

// ProductInput carries a create or update payload. A nil field was not
// supplied by the caller and must be left untouched on update.
type ProductInput struct {
	ID          string           `json:"id,omitempty"`
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Sizes       *StringList      `json:"sizes,omitempty"`
	Colors      *StringList      `json:"colors,omitempty"`
	ImageURL    *string          `json:"image_url,omitempty"`
	Stock       *int             `json:"stock,omitempty"`
}

// Empty reports whether no field would change.
func (in ProductInput) Empty() bool {
	return in.Name == nil && in.Description == nil && in.Price == nil && in.Category == nil &&
		in.Sizes == nil && in.Colors == nil && in.ImageURL == nil && in.Stock == nil
}

// Apply copies every supplied field onto p.
func (in ProductInput) Apply(p *Product) {
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Price != nil {
		p.Price = RoundMoney(*in.Price)
	}
	if in.Category != nil {
		p.Category = *in.Category
	}
	if in.Sizes != nil {
		p.Sizes = *in.Sizes
	}
	if in.Colors != nil {
		p.Colors = *in.Colors
	}
	if in.ImageURL != nil {
		p.ImageURL = *in.ImageURL
	}
	if in.Stock != nil {
		p.Stock = *in.Stock
	}
}

// Columns returns the supplied fields keyed by column name.
func (in ProductInput) Columns() map[string]interface{} {
	updates := make(map[string]interface{})
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.Price != nil {
		updates["price"] = RoundMoney(*in.Price)
	}
	if in.Category != nil {
		updates["category"] = *in.Category
	}
	if in.Sizes != nil {
		updates["sizes"] = *in.Sizes
	}
	if in.Colors != nil {
		updates["colors"] = *in.Colors
	}
	if in.ImageURL != nil {
		updates["image_url"] = *in.ImageURL
	}
	if in.Stock != nil {
		updates["stock"] = *in.Stock
	}
	return updates
}

// ProductFilter narrows a catalog listing. CategoryAll disables the
// category filter, as does an empty Category.
type ProductFilter struct {
	Search   string
	Category string
}

const CategoryAll = "all"

func (f ProductFilter) HasCategory() bool {
	return f.Category != "" && f.Category != CategoryAll
}
