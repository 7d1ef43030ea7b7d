package usecase

import (
	"sort"
	"time"

	"insurance_designer/internal/domain/entities"
)

const complianceLabel = "Insurance policy configured with standard policy administration objects"

// DesignSnapshot is everything a design call created or reused.
type DesignSnapshot struct {
	Policy       entities.InsurancePolicy
	Product      entities.Product
	Coverages    []entities.Coverage
	Participants []entities.Participant
	PriceEntry   *entities.PriceEntry
	ObjectsUsed  []entities.ObjectKind
}

// BuildConfigurationSummary derives the cross-entity report. It performs no I/O.
func BuildConfigurationSummary(s DesignSnapshot) entities.ConfigurationSummary {
	return entities.ConfigurationSummary{
		PolicyOverview: entities.PolicyOverview{
			ID:                 s.Policy.ID,
			Name:               s.Policy.Name,
			PolicyType:         s.Policy.PolicyType,
			Status:             s.Policy.Status,
			TotalPremiumAmount: s.Policy.TotalPremiumAmount,
			PremiumFrequency:   s.Policy.PremiumFrequency,
			TermStartDate:      formatDate(s.Policy.TermStartDate),
			TermEndDate:        formatDate(s.Policy.TermEndDate),
		},
		ProductInformation: entities.ProductInformation{
			ID:       s.Product.ID,
			Name:     s.Product.Name,
			Code:     s.Product.Code,
			Family:   s.Product.Family,
			IsActive: s.Product.IsActive,
		},
		CoverageConfiguration:    summarizeCoverages(s.Coverages),
		ParticipantConfiguration: summarizeParticipants(s.Participants),
		PricingConfiguration: entities.PricingConfiguration{
			HasPriceEntry:     s.PriceEntry != nil,
			CalculationMethod: s.Policy.PremiumCalculationMethod,
			PremiumFrequency:  s.Policy.PremiumFrequency,
		},
		Compliance: entities.ComplianceInformation{
			Label:       complianceLabel,
			ObjectsUsed: append([]entities.ObjectKind{}, s.ObjectsUsed...),
			Compliant:   true,
		},
	}
}

func summarizeCoverages(coverages []entities.Coverage) entities.CoverageConfiguration {
	out := entities.CoverageConfiguration{Count: len(coverages)}
	types := map[string]struct{}{}
	for _, c := range coverages {
		types[c.CoverageType] = struct{}{}
		out.TotalCoverageAmount += c.CoverageAmount
		out.TotalCoveragePremium += c.Premium
		if c.IsOptional {
			out.OptionalCoverageCount++
		}
	}
	out.CoverageTypes = sortedKeys(types)
	return out
}

func summarizeParticipants(participants []entities.Participant) entities.ParticipantConfiguration {
	out := entities.ParticipantConfiguration{Count: len(participants)}
	roles := map[string]struct{}{}
	for _, p := range participants {
		roles[string(p.Role)] = struct{}{}
		if p.IsActive {
			out.ActiveCount++
		}
	}
	out.Roles = make([]entities.ParticipantRole, 0, len(roles))
	for _, r := range sortedKeys(roles) {
		out.Roles = append(out.Roles, entities.ParticipantRole(r))
	}
	return out
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.DateOnly)
}
