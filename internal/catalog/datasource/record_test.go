package datasource

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/samuelokello/teahouse/internal/catalog/domain"
)

func TestToRecord_ToDomain_RoundTripIsIdentityOnDomainFields(t *testing.T) {
	product := domain.Product{
		ID:          7,
		Title:       "Матча Церемониальная",
		Price:       950.0,
		Description: "Высший сорт порошкового зелёного чая",
		Category:    "Зелёный чай",
		Image:       "/static/images/tea_green.jpg",
		Rating:      4.9,
		Count:       28,
	}

	back := ToDomain(ToRecord(product))

	assert.Equal(t, product, back)
}

func TestToDomain_ToRecord_ResetsStorageOnlyFields(t *testing.T) {
	record := ProductRecord{
		ID:                   3,
		Title:                "Улун Те Гуань Инь",
		Description:          "Классический китайский улун",
		Category:             "Улун",
		Price:                650.0,
		DiscountPercentage:   12.5,
		Rating:               4.7,
		Stock:                78,
		Brand:                "Tea House",
		SKU:                  "LEGACY-3",
		Weight:               0.25,
		WarrantyInformation:  "none",
		ShippingInformation:  "ships in 2 days",
		AvailabilityStatus:   "Low Stock",
		ReturnPolicy:         "30 days",
		MinimumOrderQuantity: 5,
		Thumbnail:            "/static/images/tea_oolong.jpg",
	}

	back := ToRecord(ToDomain(record))

	// Shared fields survive the round trip.
	assert.Equal(t, record.ID, back.ID)
	assert.Equal(t, record.Title, back.Title)
	assert.Equal(t, record.Price, back.Price)
	assert.Equal(t, record.Stock, back.Stock)
	assert.Equal(t, record.Thumbnail, back.Thumbnail)

	// Storage-only fields are reset to defaults, not preserved.
	assert.NotEqual(t, record, back)
	assert.Equal(t, 0.0, back.DiscountPercentage)
	assert.Equal(t, "", back.Brand)
	assert.Equal(t, "SKU-3", back.SKU)
	assert.Equal(t, 0.0, back.Weight)
	assert.Equal(t, "", back.WarrantyInformation)
	assert.Equal(t, "", back.ShippingInformation)
	assert.Equal(t, "", back.ReturnPolicy)
	assert.Equal(t, 1, back.MinimumOrderQuantity)
	assert.Equal(t, "In Stock", back.AvailabilityStatus)
}

func TestToDomain_FavouriteIsNeverDerivedFromStorage(t *testing.T) {
	product := ToDomain(ProductRecord{ID: 1, Title: "Сенча", Stock: 95})

	assert.False(t, product.IsFavourite)
}

func TestToRecord_AvailabilityStatusDerivedFromCount(t *testing.T) {
	assert.Equal(t, "In Stock", ToRecord(domain.Product{ID: 1, Count: 1}).AvailabilityStatus)
	assert.Equal(t, "Out of Stock", ToRecord(domain.Product{ID: 2, Count: 0}).AvailabilityStatus)
}

func TestSliceMappers_PreserveOrder(t *testing.T) {
	products := []domain.Product{
		{ID: 10, Title: "Ассам"},
		{ID: 2, Title: "Пуэр Шу 2015"},
		{ID: 5, Title: "Да Хун Пао"},
	}

	records := ProductsToRecords(products)
	back := RecordsToDomain(records)

	assert.Len(t, records, 3)
	for i, p := range products {
		assert.Equal(t, p.ID, records[i].ID)
		assert.Equal(t, p.Title, back[i].Title)
	}
}
