package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog entry. Rating is a denormalized average over
// ProductRating rows and is recomputed after every rating write; it is
// never the source of truth. ViewsCount and SoldCount are monotonically
// incremented counters maintained with atomic storage-level updates.
type Product struct {
	ID          uuid.UUID        `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Price       float64          `json:"price"`
	Rating      float64          `json:"rating"`
	CategoryID  uuid.UUID        `json:"category_id"`
	Category    *Category        `json:"category,omitempty"`
	Images      []ProductImage   `json:"images"`
	Variants    []ProductVariant `json:"variants"`
	ViewsCount  int64            `json:"views_count"`
	SoldCount   int64            `json:"sold_count"`
	CreatedAt   time.Time        `json:"created_at"`
}

// ProductImage is one entry of a product's ordered image list. The list is
// replaced wholesale on product update.
type ProductImage struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"-"`
	URL       string    `json:"url"`
	Position  int       `json:"position"`
}

// ProductVariant is a purchasable variation of a product with its own price.
// Variants are replaced wholesale on product update.
type ProductVariant struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"-"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
}

// VariantByID returns the variant with the given ID, or nil.
func (p *Product) VariantByID(id uuid.UUID) *ProductVariant {
	for i := range p.Variants {
		if p.Variants[i].ID == id {
			return &p.Variants[i]
		}
	}

	return nil
}
