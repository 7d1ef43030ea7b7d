package entities

import "time"

// DesignRun is the audit trail of one successful design operation.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (policy_id-index): policy_id
//
// Runs are write-once; they never feed back into the orchestration.
type DesignRun struct {
	ID                    string        `json:"id"`
	PolicyID              string        `json:"policy_id"`
	ProductID             string        `json:"product_id"`
	PolicyType            PolicyType    `json:"policy_type"`
	CoveragesRequested    int           `json:"coverages_requested"`
	CoveragesCreated      int           `json:"coverages_created"`
	ParticipantsRequested int           `json:"participants_requested"`
	ParticipantsCreated   int           `json:"participants_created"`
	PriceEntryID          string        `json:"price_entry_id,omitempty"`
	ItemOutcomes          []ItemOutcome `json:"item_outcomes,omitempty"`
	CreatedAt             time.Time     `json:"created_at"`
}
