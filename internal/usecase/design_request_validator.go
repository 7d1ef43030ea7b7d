package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"insurance_designer/internal/domain/entities"
	"insurance_designer/internal/usecase/interfaces"
)

// TermDates are the parsed policy term boundaries.
type TermDates struct {
	Start time.Time
	End   time.Time
}

// DesignRequestValidator checks a design request before any write is issued.
//
// Checks run in a fixed order and stop at the first failure. The only gateway
// traffic is read-only lookups of the referenced account and contacts.
type DesignRequestValidator struct {
	gateway interfaces.IRecordGateway
}

func NewDesignRequestValidator(gateway interfaces.IRecordGateway) *DesignRequestValidator {
	return &DesignRequestValidator{gateway: gateway}
}

func (v *DesignRequestValidator) Validate(ctx context.Context, req entities.DesignRequest) (TermDates, error) {
	if strings.TrimSpace(req.PolicyName) == "" {
		return TermDates{}, invalidInput("policyName is required")
	}
	if strings.TrimSpace(string(req.PolicyType)) == "" {
		return TermDates{}, invalidInput("policyType is required")
	}
	if !req.PolicyType.Valid() {
		return TermDates{}, invalidInput(fmt.Sprintf("policyType %q is not supported", req.PolicyType))
	}

	accountID := strings.TrimSpace(req.AccountID)
	if accountID == "" {
		return TermDates{}, invalidInput("accountId is required")
	}
	if err := v.mustExist(ctx, entities.ObjectAccount, accountID); err != nil {
		return TermDates{}, err
	}

	if len(req.CoverageOptions) == 0 {
		return TermDates{}, invalidInput("at least one coverage option is required")
	}
	if req.PricingModel == nil || req.PricingModel.TotalPremiumAmount <= 0 {
		return TermDates{}, invalidInput("pricingModel.totalPremiumAmount must be greater than zero")
	}
	// Frequency, calculation method and renewal channel are optional.
	if f := req.PricingModel.PremiumFrequency; f != "" && !f.Valid() {
		return TermDates{}, invalidInput(fmt.Sprintf("pricingModel.premiumFrequency %q is not supported", f))
	}
	if m := req.PricingModel.PremiumCalculationMethod; m != "" && !m.Valid() {
		return TermDates{}, invalidInput(fmt.Sprintf("pricingModel.premiumCalculationMethod %q is not supported", m))
	}

	terms := req.PolicyTerms
	if terms == nil || strings.TrimSpace(terms.TermStartDate) == "" || strings.TrimSpace(terms.TermEndDate) == "" {
		return TermDates{}, invalidInput("policyTerms.termStartDate and policyTerms.termEndDate are required")
	}
	start, err := parseTermDate(terms.TermStartDate)
	if err != nil {
		return TermDates{}, invalidInput(fmt.Sprintf("policyTerms.termStartDate %q is not a valid date", terms.TermStartDate))
	}
	end, err := parseTermDate(terms.TermEndDate)
	if err != nil {
		return TermDates{}, invalidInput(fmt.Sprintf("policyTerms.termEndDate %q is not a valid date", terms.TermEndDate))
	}
	if !start.Before(end) {
		return TermDates{}, invalidInput("policyTerms.termStartDate must be before policyTerms.termEndDate")
	}
	if c := terms.RenewalChannel; c != "" && !c.Valid() {
		return TermDates{}, invalidInput(fmt.Sprintf("policyTerms.renewalChannel %q is not supported", c))
	}

	for i, p := range req.Participants {
		if !p.Role.Valid() {
			return TermDates{}, invalidInput(fmt.Sprintf("participants[%d].role %q is not supported", i, p.Role))
		}
	}

	for i, p := range req.Participants {
		contactID := strings.TrimSpace(p.ContactID)
		if contactID == "" {
			return TermDates{}, invalidInput(fmt.Sprintf("participants[%d].contactId is required", i))
		}
		if err := v.mustExist(ctx, entities.ObjectContact, contactID); err != nil {
			return TermDates{}, err
		}
	}

	return TermDates{Start: start, End: end}, nil
}

func (v *DesignRequestValidator) mustExist(ctx context.Context, kind entities.ObjectKind, id string) error {
	rec, err := v.gateway.FindOne(ctx, kind, entities.Record{"id": id})
	if err != nil {
		return fmt.Errorf("%w: lookup %s %s: %v", ErrInternal, kind, id, err)
	}
	if rec == nil {
		return fmt.Errorf("%w: %s %s does not exist", ErrNotFound, kind, id)
	}
	return nil
}

// parseTermDate accepts calendar dates (2006-01-02) and full RFC 3339 timestamps.
func parseTermDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func invalidInput(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, msg)
}
