package entities

// PriceEntry lists the product in the standard price catalog at the policy premium.
type PriceEntry struct {
	ID               string
	ProductID        string
	PriceCatalogID   string
	UnitPrice        float64
	IsActive         bool
	UseStandardPrice bool
}

func (p PriceEntry) Fields() Record {
	return Record{
		"product_id":         p.ProductID,
		"price_catalog_id":   p.PriceCatalogID,
		"unit_price":         p.UnitPrice,
		"is_active":          p.IsActive,
		"use_standard_price": p.UseStandardPrice,
	}
}
