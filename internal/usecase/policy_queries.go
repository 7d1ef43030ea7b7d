package usecase

import (
	"insurance_designer/internal/domain/entities"

	"github.com/huandu/go-sqlbuilder"
)

// Query strings are built with placeholders and then interpolated by the
// flavor's escaper, so caller-supplied values never reach the query text raw.
var queryFlavor = sqlbuilder.PostgreSQL

var (
	policyListColumns = []string{
		"id", "name", "policy_type", "status", "total_premium_amount", "premium_frequency",
		"term_start_date", "term_end_date", "account_id", "product_id", "created_at",
	}
	policyDetailColumns = append(append([]string{}, policyListColumns...),
		"premium_calculation_method", "term_type", "renewal_channel", "cancellation_process", "grace_period_days",
	)
	coverageColumns = []string{
		"id", "insurance_policy_id", "coverage_type", "coverage_amount", "deductible", "premium",
		"is_optional", "description", "effective_date", "expiration_date", "created_at",
	}
	participantColumns = []string{
		"id", "insurance_policy_id", "contact_id", "role", "relationship_to_insured", "is_active", "created_at",
	}
)

func interpolate(sb *sqlbuilder.SelectBuilder) (string, error) {
	query, args := sb.BuildWithFlavor(queryFlavor)
	return queryFlavor.Interpolate(query, args)
}

func listPoliciesQuery(policyType string, limit int) (string, error) {
	statuses := make([]interface{}, 0, len(entities.ListableStatuses))
	for _, s := range entities.ListableStatuses {
		statuses = append(statuses, string(s))
	}

	sb := queryFlavor.NewSelectBuilder()
	sb.Select(policyListColumns...).From(string(entities.ObjectPolicy))
	sb.Where(sb.In("status", statuses...))
	if policyType != "" {
		sb.Where(sb.Equal("policy_type", policyType))
	}
	sb.OrderBy("created_at DESC")
	sb.Limit(limit)
	return interpolate(sb)
}

func policyByIDQuery(policyID string) (string, error) {
	sb := queryFlavor.NewSelectBuilder()
	sb.Select(policyDetailColumns...).From(string(entities.ObjectPolicy))
	sb.Where(sb.Equal("id", policyID))
	sb.Limit(1)
	return interpolate(sb)
}

func coveragesByPolicyIDQuery(policyID string) (string, error) {
	sb := queryFlavor.NewSelectBuilder()
	sb.Select(coverageColumns...).From(string(entities.ObjectCoverage))
	sb.Where(sb.Equal("insurance_policy_id", policyID))
	sb.OrderBy("created_at ASC")
	return interpolate(sb)
}

func participantsByPolicyIDQuery(policyID string) (string, error) {
	sb := queryFlavor.NewSelectBuilder()
	sb.Select(participantColumns...).From(string(entities.ObjectParticipant))
	sb.Where(sb.Equal("insurance_policy_id", policyID))
	sb.OrderBy("created_at ASC")
	return interpolate(sb)
}

func standardPriceCatalogQuery() (string, error) {
	sb := queryFlavor.NewSelectBuilder()
	sb.Select("id", "name").From(string(entities.ObjectPriceCatalog))
	sb.Where(sb.Equal("is_standard", true))
	sb.Limit(1)
	return interpolate(sb)
}
