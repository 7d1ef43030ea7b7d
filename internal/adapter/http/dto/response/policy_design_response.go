package response

import (
	"time"

	"insurance_designer/internal/domain/entities"
)

type DesignMetadataResponse struct {
	CreatedAt      time.Time              `json:"createdAt"`
	PolicyType     string                 `json:"policyType"`
	ObjectsTouched []string               `json:"objectsTouched"`
	ProductReused  bool                   `json:"productReused"`
	PriceEntryID   *string                `json:"priceEntryId"`
	ItemOutcomes   []entities.ItemOutcome `json:"itemOutcomes"`
	Failures       []entities.ItemOutcome `json:"failures"`
}

type PolicyDesignResponse struct {
	Success              bool                          `json:"success"`
	InsurancePolicyID    string                        `json:"insurancePolicyId"`
	ProductID            string                        `json:"productId"`
	CoverageCount        int                           `json:"coverageCount"`
	ParticipantCount     int                           `json:"participantCount"`
	ConfigurationSummary entities.ConfigurationSummary `json:"configurationSummary"`
	Metadata             DesignMetadataResponse        `json:"metadata"`
}

func FromDesignResult(r entities.DesignResult) PolicyDesignResponse {
	touched := make([]string, 0, len(r.Metadata.ObjectsTouched))
	for _, k := range r.Metadata.ObjectsTouched {
		touched = append(touched, string(k))
	}
	outcomes := r.Metadata.ItemOutcomes
	if outcomes == nil {
		outcomes = []entities.ItemOutcome{}
	}

	var priceEntryID *string
	if r.Metadata.PriceEntryID != "" {
		id := r.Metadata.PriceEntryID
		priceEntryID = &id
	}

	return PolicyDesignResponse{
		Success:              true,
		InsurancePolicyID:    r.InsurancePolicyID,
		ProductID:            r.ProductID,
		CoverageCount:        r.CoverageCount,
		ParticipantCount:     r.ParticipantCount,
		ConfigurationSummary: r.ConfigurationSummary,
		Metadata: DesignMetadataResponse{
			CreatedAt:      r.Metadata.CreatedAt,
			PolicyType:     string(r.Metadata.PolicyType),
			ObjectsTouched: touched,
			ProductReused:  r.Metadata.ProductReused,
			PriceEntryID:   priceEntryID,
			ItemOutcomes:   outcomes,
			Failures:       r.Metadata.Failures(),
		},
	}
}
