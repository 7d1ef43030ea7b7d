package entities

import "time"

// DesignStep names an orchestration step in item outcomes.
type DesignStep string

const (
	DesignStepProduct     DesignStep = "product"
	DesignStepPolicy      DesignStep = "policy"
	DesignStepCoverage    DesignStep = "coverage"
	DesignStepParticipant DesignStep = "participant"
	DesignStepPriceEntry  DesignStep = "price_entry"
)

// ItemOutcome records what happened to a single best-effort write.
type ItemOutcome struct {
	Step       DesignStep `json:"step"`
	ObjectKind ObjectKind `json:"objectKind"`
	Index      int        `json:"index"`
	Success    bool       `json:"success"`
	ID         string     `json:"id,omitempty"`
	Reason     string     `json:"reason,omitempty"`
}

// DesignResult is returned by a successful design operation.
type DesignResult struct {
	InsurancePolicyID    string
	ProductID            string
	CoverageCount        int
	ParticipantCount     int
	ConfigurationSummary ConfigurationSummary
	Metadata             DesignMetadata
}

type DesignMetadata struct {
	CreatedAt      time.Time
	PolicyType     PolicyType
	ObjectsTouched []ObjectKind
	ProductReused  bool
	PriceEntryID   string
	ItemOutcomes   []ItemOutcome
}

// Failures returns the outcomes of best-effort writes that did not succeed.
func (m DesignMetadata) Failures() []ItemOutcome {
	out := make([]ItemOutcome, 0)
	for _, o := range m.ItemOutcomes {
		if !o.Success {
			out = append(out, o)
		}
	}
	return out
}

// ConfigurationSummary is the cross-entity report assembled after a design.
type ConfigurationSummary struct {
	PolicyOverview           PolicyOverview           `json:"policyOverview"`
	ProductInformation       ProductInformation       `json:"productInformation"`
	CoverageConfiguration    CoverageConfiguration    `json:"coverageConfiguration"`
	ParticipantConfiguration ParticipantConfiguration `json:"participantConfiguration"`
	PricingConfiguration     PricingConfiguration     `json:"pricingConfiguration"`
	Compliance               ComplianceInformation    `json:"compliance"`
}

type PolicyOverview struct {
	ID                 string           `json:"id"`
	Name               string           `json:"name"`
	PolicyType         PolicyType       `json:"policyType"`
	Status             PolicyStatus     `json:"status"`
	TotalPremiumAmount float64          `json:"totalPremiumAmount"`
	PremiumFrequency   PremiumFrequency `json:"premiumFrequency"`
	TermStartDate      string           `json:"termStartDate"`
	TermEndDate        string           `json:"termEndDate"`
}

type ProductInformation struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Code     string `json:"code"`
	Family   string `json:"family"`
	IsActive bool   `json:"isActive"`
}

type CoverageConfiguration struct {
	Count                 int      `json:"count"`
	CoverageTypes         []string `json:"coverageTypes"`
	TotalCoverageAmount   float64  `json:"totalCoverageAmount"`
	TotalCoveragePremium  float64  `json:"totalCoveragePremium"`
	OptionalCoverageCount int      `json:"optionalCoverageCount"`
}

type ParticipantConfiguration struct {
	Count       int               `json:"count"`
	ActiveCount int               `json:"activeCount"`
	Roles       []ParticipantRole `json:"roles"`
}

type PricingConfiguration struct {
	HasPriceEntry     bool                     `json:"hasPriceEntry"`
	CalculationMethod PremiumCalculationMethod `json:"calculationMethod"`
	PremiumFrequency  PremiumFrequency         `json:"premiumFrequency"`
}

type ComplianceInformation struct {
	Label       string       `json:"label"`
	ObjectsUsed []ObjectKind `json:"objectsUsed"`
	Compliant   bool         `json:"compliant"`
}
