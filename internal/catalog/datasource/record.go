package datasource

import (
	"fmt"

	"github.com/samuelokello/teahouse/internal/catalog/domain"
)

// ProductRecord is the persisted shape of a catalog item. It is a superset
// of the domain Product: the extra columns carry storefront metadata that
// the domain layer never sees.
type ProductRecord struct {
	ID                   int     `json:"id" gorm:"primaryKey"`
	Title                string  `json:"title" gorm:"not null"`
	Description          string  `json:"description"`
	Category             string  `json:"category" gorm:"index"`
	Price                float64 `json:"price" gorm:"not null"`
	DiscountPercentage   float64 `json:"discount_percentage" gorm:"default:0"`
	Rating               float64 `json:"rating"`
	Stock                int     `json:"stock" gorm:"not null;default:0"`
	Brand                string  `json:"brand"`
	SKU                  string  `json:"sku" gorm:"uniqueIndex"`
	Weight               float64 `json:"weight"`
	WarrantyInformation  string  `json:"warranty_information"`
	ShippingInformation  string  `json:"shipping_information"`
	AvailabilityStatus   string  `json:"availability_status"`
	ReturnPolicy         string  `json:"return_policy"`
	MinimumOrderQuantity int     `json:"minimum_order_quantity" gorm:"default:1"`
	Thumbnail            string  `json:"thumbnail"`
}

// TableName specifies the table name
func (ProductRecord) TableName() string {
	return "products"
}

// ToDomain converts a persisted record into the domain Product. Storage-only
// columns are dropped; the favourite flag is UI-local state and is never
// derived from storage.
func ToDomain(r ProductRecord) domain.Product {
	return domain.Product{
		ID:          r.ID,
		Title:       r.Title,
		Price:       r.Price,
		Description: r.Description,
		Category:    r.Category,
		Image:       r.Thumbnail,
		Rating:      r.Rating,
		Count:       r.Stock,
		IsFavourite: false,
	}
}

// ToRecord converts a domain Product into its persisted shape. Storage-only
// columns receive fixed defaults, so record -> domain -> record is not an
// identity on those columns.
func ToRecord(p domain.Product) ProductRecord {
	status := "Out of Stock"
	if p.Count > 0 {
		status = "In Stock"
	}
	return ProductRecord{
		ID:                   p.ID,
		Title:                p.Title,
		Description:          p.Description,
		Category:             p.Category,
		Price:                p.Price,
		DiscountPercentage:   0,
		Rating:               p.Rating,
		Stock:                p.Count,
		Brand:                "",
		SKU:                  fmt.Sprintf("SKU-%d", p.ID),
		Weight:               0,
		WarrantyInformation:  "",
		ShippingInformation:  "",
		AvailabilityStatus:   status,
		ReturnPolicy:         "",
		MinimumOrderQuantity: 1,
		Thumbnail:            p.Image,
	}
}

// RecordsToDomain applies ToDomain element-wise, preserving order.
func RecordsToDomain(records []ProductRecord) []domain.Product {
	products := make([]domain.Product, 0, len(records))
	for _, r := range records {
		products = append(products, ToDomain(r))
	}
	return products
}

// ProductsToRecords applies ToRecord element-wise, preserving order.
func ProductsToRecords(products []domain.Product) []ProductRecord {
	records := make([]ProductRecord, 0, len(products))
	for _, p := range products {
		records = append(records, ToRecord(p))
	}
	return records
}
