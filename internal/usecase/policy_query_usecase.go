package usecase

//go:generate mockgen -source=policy_query_usecase.go -destination=../adapter/http/handlers/mocks/mock_policy_query_usecase.go -package=mocks

import (
	"context"
	"fmt"
	"strings"

	"insurance_designer/internal/domain/entities"
	"insurance_designer/internal/usecase/interfaces"
	"insurance_designer/pkg/metrics"
	"insurance_designer/pkg/tracing"

	"github.com/rs/zerolog/log"
)

const DefaultListLimit = 50

// IPolicyQueryUseCase exposes the read paths over designed policies.

type IPolicyQueryUseCase interface {
	List(ctx context.Context, policyType string, limit int) (entities.PolicyList, error)
	Details(ctx context.Context, policyID string) (entities.PolicyDetails, error)
}

type PolicyQueryUseCase struct {
	gateway interfaces.IRecordGateway
}

var _ IPolicyQueryUseCase = (*PolicyQueryUseCase)(nil)

func NewPolicyQueryUseCase(gateway interfaces.IRecordGateway) *PolicyQueryUseCase {
	return &PolicyQueryUseCase{gateway: gateway}
}

func (u *PolicyQueryUseCase) List(ctx context.Context, policyType string, limit int) (out entities.PolicyList, err error) {
	ctx, span := tracing.StartSpan(ctx, "usecase.PolicyQueryUseCase.List")
	defer span.End()
	defer observeQuery("list", &err)

	policyType = strings.TrimSpace(policyType)
	if limit <= 0 {
		limit = DefaultListLimit
	}

	query, err := listPoliciesQuery(policyType, limit)
	if err != nil {
		return entities.PolicyList{}, fmt.Errorf("%w: build list query: %v", ErrInternal, err)
	}
	res, err := u.gateway.Query(ctx, query)
	if err != nil {
		log.Error().Err(err).Str("policy_type", policyType).Msg("[policy][query] list failed")
		return entities.PolicyList{}, fmt.Errorf("%w: list policies: %v", ErrInternal, err)
	}

	records := res.Records
	if records == nil {
		records = []entities.Record{}
	}
	total := res.TotalSize
	if total < len(records) {
		total = len(records)
	}

	byStatus := make(map[entities.PolicyStatus]int, len(entities.ListableStatuses))
	for _, s := range entities.ListableStatuses {
		byStatus[s] = 0
	}
	types := map[string]struct{}{}
	premiumSum := 0.0
	for _, rec := range records {
		if t := rec.String("policy_type"); t != "" {
			types[t] = struct{}{}
		}
		if s := rec.String("status"); s != "" {
			byStatus[entities.PolicyStatus(s)]++
		}
		premiumSum += rec.Float("total_premium_amount")
	}

	var average *float64
	if len(records) > 0 {
		avg := premiumSum / float64(len(records))
		average = &avg
	}

	return entities.PolicyList{
		TotalCount:  total,
		Records:     records,
		PolicyTypes: sortedKeys(types),
		Summary: entities.PolicyListSummary{
			ByStatus:       byStatus,
			AveragePremium: average,
		},
	}, nil
}

func (u *PolicyQueryUseCase) Details(ctx context.Context, policyID string) (out entities.PolicyDetails, err error) {
	ctx, span := tracing.StartSpan(ctx, "usecase.PolicyQueryUseCase.Details")
	defer span.End()
	defer observeQuery("details", &err)

	policyID = strings.TrimSpace(policyID)
	if policyID == "" {
		return entities.PolicyDetails{}, invalidInput("policyId is required")
	}

	policies, err := u.run(ctx, "policy", func() (string, error) { return policyByIDQuery(policyID) })
	if err != nil {
		return entities.PolicyDetails{}, err
	}
	if len(policies) == 0 {
		return entities.PolicyDetails{}, fmt.Errorf("%w: policy %s does not exist", ErrNotFound, policyID)
	}

	coverages, err := u.run(ctx, "coverages", func() (string, error) { return coveragesByPolicyIDQuery(policyID) })
	if err != nil {
		return entities.PolicyDetails{}, err
	}
	participants, err := u.run(ctx, "participants", func() (string, error) { return participantsByPolicyIDQuery(policyID) })
	if err != nil {
		return entities.PolicyDetails{}, err
	}

	summary := entities.PolicyDetailsSummary{
		CoverageCount:    len(coverages),
		ParticipantCount: len(participants),
	}
	for _, c := range coverages {
		summary.TotalCoverageAmount += c.Float("coverage_amount")
		summary.TotalCoveragePremium += c.Float("premium")
	}

	return entities.PolicyDetails{
		Policy:       policies[0],
		Coverages:    coverages,
		Participants: participants,
		Summary:      summary,
	}, nil
}

func (u *PolicyQueryUseCase) run(ctx context.Context, what string, build func() (string, error)) ([]entities.Record, error) {
	query, err := build()
	if err != nil {
		return nil, fmt.Errorf("%w: build %s query: %v", ErrInternal, what, err)
	}
	res, err := u.gateway.Query(ctx, query)
	if err != nil {
		log.Error().Err(err).Str("query", what).Msg("[policy][query] gateway query failed")
		return nil, fmt.Errorf("%w: query %s: %v", ErrInternal, what, err)
	}
	if res.Records == nil {
		return []entities.Record{}, nil
	}
	return res.Records, nil
}

func observeQuery(operation string, err *error) {
	metrics.QueryOperationsTotal.WithLabelValues(operation, designOutcome(*err)).Inc()
}
