package entities

import "time"

// Coverage is a line item of insured risk attached to a policy.
type Coverage struct {
	ID                string
	InsurancePolicyID string
	CoverageType      string
	CoverageAmount    float64
	Deductible        float64
	Premium           float64
	IsOptional        bool
	Description       string
	EffectiveDate     time.Time
	ExpirationDate    time.Time
}

func (c Coverage) Fields() Record {
	return Record{
		"insurance_policy_id": c.InsurancePolicyID,
		"coverage_type":       c.CoverageType,
		"coverage_amount":     c.CoverageAmount,
		"deductible":          c.Deductible,
		"premium":             c.Premium,
		"is_optional":         c.IsOptional,
		"description":         c.Description,
		"effective_date":      c.EffectiveDate,
		"expiration_date":     c.ExpirationDate,
	}
}
