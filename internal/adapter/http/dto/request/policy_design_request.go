package request

import (
	"strings"

	"insurance_designer/internal/domain/entities"
)

type CoverageOptionRequest struct {
	CoverageType        string   `json:"coverageType" example:"Liability"`
	CoverageAmount      float64  `json:"coverageAmount" example:"50000"`
	Deductible          *float64 `json:"deductible,omitempty" example:"500"`
	Premium             float64  `json:"premium" example:"500"`
	IsOptional          bool     `json:"isOptional"`
	CoverageDescription string   `json:"coverageDescription"`
}

type PricingModelRequest struct {
	TotalPremiumAmount       float64 `json:"totalPremiumAmount" example:"500"`
	PremiumFrequency         string  `json:"premiumFrequency" example:"Monthly"`
	PremiumCalculationMethod string  `json:"premiumCalculationMethod" example:"Fixed"`
}

type PolicyTermsRequest struct {
	TermStartDate           string `json:"termStartDate" example:"2025-01-01"`
	TermEndDate             string `json:"termEndDate" example:"2026-01-01"`
	TermType                string `json:"termType" example:"Annual"`
	RenewalChannel          string `json:"renewalChannel" example:"Automatic"`
	CancellationProcessType string `json:"cancellationProcessType" example:"standard"`
	GracePeriodDays         *int   `json:"gracePeriodDays,omitempty" example:"30"`
}

type ParticipantRequest struct {
	ContactID             string `json:"contactId"`
	Role                  string `json:"role" example:"Primary Insured"`
	RelationshipToInsured string `json:"relationshipToInsured,omitempty" example:"Self"`
	IsActive              *bool  `json:"isActive,omitempty"`
}

// PolicyDesignRequest is the body of POST /v1/policies/design.
//
// Required-field checks happen in the use case so that every rejection carries
// the same INVALID_INPUT shape.
type PolicyDesignRequest struct {
	PolicyName      string                  `json:"policyName" example:"Test Auto"`
	PolicyType      string                  `json:"policyType" example:"Auto"`
	AccountID       string                  `json:"accountId" example:"A1"`
	ProductID       string                  `json:"productId,omitempty"`
	Description     string                  `json:"description,omitempty"`
	CoverageOptions []CoverageOptionRequest `json:"coverageOptions"`
	PricingModel    *PricingModelRequest    `json:"pricingModel"`
	PolicyTerms     *PolicyTermsRequest     `json:"policyTerms"`
	Participants    []ParticipantRequest    `json:"participants,omitempty"`
}

func (r PolicyDesignRequest) ToEntity() entities.DesignRequest {
	out := entities.DesignRequest{
		PolicyName:  r.PolicyName,
		PolicyType:  entities.PolicyType(strings.TrimSpace(r.PolicyType)),
		AccountID:   r.AccountID,
		ProductID:   r.ProductID,
		Description: r.Description,
	}

	out.CoverageOptions = make([]entities.CoverageOption, 0, len(r.CoverageOptions))
	for _, c := range r.CoverageOptions {
		out.CoverageOptions = append(out.CoverageOptions, entities.CoverageOption{
			CoverageType:        c.CoverageType,
			CoverageAmount:      c.CoverageAmount,
			Deductible:          c.Deductible,
			Premium:             c.Premium,
			IsOptional:          c.IsOptional,
			CoverageDescription: c.CoverageDescription,
		})
	}

	if r.PricingModel != nil {
		out.PricingModel = &entities.PricingModel{
			TotalPremiumAmount:       r.PricingModel.TotalPremiumAmount,
			PremiumFrequency:         entities.PremiumFrequency(r.PricingModel.PremiumFrequency),
			PremiumCalculationMethod: entities.PremiumCalculationMethod(r.PricingModel.PremiumCalculationMethod),
		}
	}
	if r.PolicyTerms != nil {
		out.PolicyTerms = &entities.PolicyTerms{
			TermStartDate:           r.PolicyTerms.TermStartDate,
			TermEndDate:             r.PolicyTerms.TermEndDate,
			TermType:                r.PolicyTerms.TermType,
			RenewalChannel:          entities.RenewalChannel(r.PolicyTerms.RenewalChannel),
			CancellationProcessType: r.PolicyTerms.CancellationProcessType,
			GracePeriodDays:         r.PolicyTerms.GracePeriodDays,
		}
	}

	if len(r.Participants) > 0 {
		out.Participants = make([]entities.ParticipantInput, 0, len(r.Participants))
		for _, p := range r.Participants {
			out.Participants = append(out.Participants, entities.ParticipantInput{
				ContactID:             p.ContactID,
				Role:                  entities.ParticipantRole(p.Role),
				RelationshipToInsured: p.RelationshipToInsured,
				IsActive:              p.IsActive,
			})
		}
	}
	return out
}
