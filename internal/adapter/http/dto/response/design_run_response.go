package response

import (
	"time"

	"insurance_designer/internal/domain/entities"
)

type DesignRunResponse struct {
	ID                    string                 `json:"id"`
	PolicyID              string                 `json:"policyId"`
	ProductID             string                 `json:"productId"`
	PolicyType            string                 `json:"policyType"`
	CoveragesRequested    int                    `json:"coveragesRequested"`
	CoveragesCreated      int                    `json:"coveragesCreated"`
	ParticipantsRequested int                    `json:"participantsRequested"`
	ParticipantsCreated   int                    `json:"participantsCreated"`
	PriceEntryID          string                 `json:"priceEntryId,omitempty"`
	ItemOutcomes          []entities.ItemOutcome `json:"itemOutcomes"`
	CreatedAt             time.Time              `json:"createdAt"`
}

func FromDesignRun(r entities.DesignRun) DesignRunResponse {
	outcomes := r.ItemOutcomes
	if outcomes == nil {
		outcomes = []entities.ItemOutcome{}
	}
	return DesignRunResponse{
		ID:                    r.ID,
		PolicyID:              r.PolicyID,
		ProductID:             r.ProductID,
		PolicyType:            string(r.PolicyType),
		CoveragesRequested:    r.CoveragesRequested,
		CoveragesCreated:      r.CoveragesCreated,
		ParticipantsRequested: r.ParticipantsRequested,
		ParticipantsCreated:   r.ParticipantsCreated,
		PriceEntryID:          r.PriceEntryID,
		ItemOutcomes:          outcomes,
		CreatedAt:             r.CreatedAt,
	}
}

func FromDesignRuns(runs []entities.DesignRun) []DesignRunResponse {
	out := make([]DesignRunResponse, 0, len(runs))
	for _, r := range runs {
		out = append(out, FromDesignRun(r))
	}
	return out
}
