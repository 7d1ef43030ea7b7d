package entities

import (
	"fmt"
	"time"
)

// ProductFamilyInsurance is the family every designed product belongs to.
const ProductFamilyInsurance = "Insurance"

// Product is the catalog item a policy is sold as.
type Product struct {
	ID          string
	Name        string
	Code        string
	Description string
	Family      string
	IsActive    bool
}

// NewProductCode derives a product code from the policy type and a timestamp.
// Codes are not guaranteed unique; the timestamp only makes collisions unlikely.
func NewProductCode(policyType PolicyType, at time.Time) string {
	return fmt.Sprintf("INS_%s_%d", policyType, at.UnixMilli())
}

func (p Product) Fields() Record {
	return Record{
		"name":         p.Name,
		"product_code": p.Code,
		"description":  p.Description,
		"family":       p.Family,
		"is_active":    p.IsActive,
	}
}

func ProductFromRecord(r Record) Product {
	return Product{
		ID:          r.ID(),
		Name:        r.String("name"),
		Code:        r.String("product_code"),
		Description: r.String("description"),
		Family:      r.String("family"),
		IsActive:    r.Bool("is_active"),
	}
}
