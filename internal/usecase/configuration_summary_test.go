package usecase

import (
	"testing"
	"time"

	"insurance_designer/internal/domain/entities"
)

func TestBuildConfigurationSummary(t *testing.T) {
	t.Run("empty aggregates are zero", func(t *testing.T) {
		s := BuildConfigurationSummary(DesignSnapshot{
			Policy:      entities.InsurancePolicy{ID: "pol-1", Status: entities.PolicyStatusInForce},
			Product:     entities.Product{ID: "prod-1"},
			ObjectsUsed: []entities.ObjectKind{entities.ObjectProduct, entities.ObjectPolicy},
		})

		cov := s.CoverageConfiguration
		if cov.Count != 0 || cov.TotalCoverageAmount != 0 || cov.TotalCoveragePremium != 0 || cov.OptionalCoverageCount != 0 {
			t.Fatalf("expected zero coverage aggregates, got %+v", cov)
		}
		if cov.CoverageTypes == nil || len(cov.CoverageTypes) != 0 {
			t.Fatalf("expected empty coverage types, got %v", cov.CoverageTypes)
		}
		if s.ParticipantConfiguration.Count != 0 || len(s.ParticipantConfiguration.Roles) != 0 {
			t.Fatalf("expected zero participants, got %+v", s.ParticipantConfiguration)
		}
		if s.PricingConfiguration.HasPriceEntry {
			t.Fatalf("expected no price entry")
		}
		if s.PolicyOverview.TermStartDate != "" {
			t.Fatalf("expected empty date for zero time, got %q", s.PolicyOverview.TermStartDate)
		}
		if !s.Compliance.Compliant || s.Compliance.Label == "" || len(s.Compliance.ObjectsUsed) != 2 {
			t.Fatalf("unexpected compliance block: %+v", s.Compliance)
		}
	})

	t.Run("aggregates coverages and participants", func(t *testing.T) {
		start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		s := BuildConfigurationSummary(DesignSnapshot{
			Policy: entities.InsurancePolicy{
				ID:                       "pol-1",
				Name:                     "Home Plus",
				PolicyType:               entities.PolicyTypeHome,
				TermStartDate:            start,
				TermEndDate:              start.AddDate(1, 0, 0),
				PremiumCalculationMethod: entities.PremiumCalculationRated,
				PremiumFrequency:         entities.PremiumFrequencyAnnual,
			},
			Coverages: []entities.Coverage{
				{CoverageType: "Fire", CoverageAmount: 100000, Premium: 800},
				{CoverageType: "Flood", CoverageAmount: 50000, Premium: 400, IsOptional: true},
				{CoverageType: "Fire", CoverageAmount: 10000, Premium: 50},
			},
			Participants: []entities.Participant{
				{Role: entities.ParticipantRoleSecondaryInsured, IsActive: true},
				{Role: entities.ParticipantRoleBeneficiary, IsActive: false},
				{Role: entities.ParticipantRoleBeneficiary, IsActive: true},
			},
			PriceEntry: &entities.PriceEntry{ID: "pe-1"},
		})

		cov := s.CoverageConfiguration
		if cov.Count != 3 || cov.TotalCoverageAmount != 160000 || cov.TotalCoveragePremium != 1250 || cov.OptionalCoverageCount != 1 {
			t.Fatalf("unexpected coverage aggregates: %+v", cov)
		}
		if len(cov.CoverageTypes) != 2 || cov.CoverageTypes[0] != "Fire" || cov.CoverageTypes[1] != "Flood" {
			t.Fatalf("expected distinct sorted types, got %v", cov.CoverageTypes)
		}

		par := s.ParticipantConfiguration
		if par.Count != 3 || par.ActiveCount != 2 {
			t.Fatalf("unexpected participant aggregates: %+v", par)
		}
		if len(par.Roles) != 2 || par.Roles[0] != entities.ParticipantRoleBeneficiary {
			t.Fatalf("expected distinct sorted roles, got %v", par.Roles)
		}

		if s.PolicyOverview.TermStartDate != "2025-01-01" || s.PolicyOverview.TermEndDate != "2026-01-01" {
			t.Fatalf("unexpected term dates: %+v", s.PolicyOverview)
		}
		if !s.PricingConfiguration.HasPriceEntry || s.PricingConfiguration.CalculationMethod != entities.PremiumCalculationRated {
			t.Fatalf("unexpected pricing block: %+v", s.PricingConfiguration)
		}
	})
}
