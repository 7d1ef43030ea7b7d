package entities

// DesignRequest is the already-decoded "design an insurance policy" intent.
//
// Pointer fields distinguish "absent" from a zero value: the validator reports
// a missing pricing model or term block, and the orchestrator applies
// defaults for a missing deductible, grace period or participant active flag.
type DesignRequest struct {
	PolicyName      string
	PolicyType      PolicyType
	AccountID       string
	ProductID       string
	Description     string
	CoverageOptions []CoverageOption
	PricingModel    *PricingModel
	PolicyTerms     *PolicyTerms
	Participants    []ParticipantInput
}

type CoverageOption struct {
	CoverageType        string
	CoverageAmount      float64
	Deductible          *float64
	Premium             float64
	IsOptional          bool
	CoverageDescription string
}

type PricingModel struct {
	TotalPremiumAmount       float64
	PremiumFrequency         PremiumFrequency
	PremiumCalculationMethod PremiumCalculationMethod
}

// PolicyTerms carries raw date strings; they are parsed during validation.
type PolicyTerms struct {
	TermStartDate           string
	TermEndDate             string
	TermType                string
	RenewalChannel          RenewalChannel
	CancellationProcessType string
	GracePeriodDays         *int
}

type ParticipantInput struct {
	ContactID             string
	Role                  ParticipantRole
	RelationshipToInsured string
	IsActive              *bool
}
