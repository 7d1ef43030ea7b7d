package response

import (
	"insurance_designer/internal/domain/entities"
)

type PolicyListSummaryResponse struct {
	ByStatus       map[string]int `json:"byStatus"`
	AveragePremium *float64       `json:"averagePremium"`
}

type PolicyListResponse struct {
	Success     bool                      `json:"success"`
	TotalCount  int                       `json:"totalCount"`
	Records     []entities.Record         `json:"records"`
	PolicyTypes []string                  `json:"policyTypes"`
	Summary     PolicyListSummaryResponse `json:"summary"`
}

func FromPolicyList(l entities.PolicyList) PolicyListResponse {
	byStatus := make(map[string]int, len(l.Summary.ByStatus))
	for s, n := range l.Summary.ByStatus {
		byStatus[string(s)] = n
	}
	records := l.Records
	if records == nil {
		records = []entities.Record{}
	}
	types := l.PolicyTypes
	if types == nil {
		types = []string{}
	}
	return PolicyListResponse{
		Success:     true,
		TotalCount:  l.TotalCount,
		Records:     records,
		PolicyTypes: types,
		Summary: PolicyListSummaryResponse{
			ByStatus:       byStatus,
			AveragePremium: l.Summary.AveragePremium,
		},
	}
}

type PolicyDetailsSummaryResponse struct {
	CoverageCount        int     `json:"coverageCount"`
	ParticipantCount     int     `json:"participantCount"`
	TotalCoverageAmount  float64 `json:"totalCoverageAmount"`
	TotalCoveragePremium float64 `json:"totalCoveragePremium"`
}

type PolicyDetailsResponse struct {
	Success      bool                         `json:"success"`
	Policy       entities.Record              `json:"policy"`
	Coverages    []entities.Record            `json:"coverages"`
	Participants []entities.Record            `json:"participants"`
	Summary      PolicyDetailsSummaryResponse `json:"summary"`
}

func FromPolicyDetails(d entities.PolicyDetails) PolicyDetailsResponse {
	coverages := d.Coverages
	if coverages == nil {
		coverages = []entities.Record{}
	}
	participants := d.Participants
	if participants == nil {
		participants = []entities.Record{}
	}
	return PolicyDetailsResponse{
		Success:      true,
		Policy:       d.Policy,
		Coverages:    coverages,
		Participants: participants,
		Summary: PolicyDetailsSummaryResponse{
			CoverageCount:        d.Summary.CoverageCount,
			ParticipantCount:     d.Summary.ParticipantCount,
			TotalCoverageAmount:  d.Summary.TotalCoverageAmount,
			TotalCoveragePremium: d.Summary.TotalCoveragePremium,
		},
	}
}
