package usecase

//go:generate mockgen -source=policy_design_usecase.go -destination=../adapter/http/handlers/mocks/mock_policy_design_usecase.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"insurance_designer/internal/domain/entities"
	"insurance_designer/internal/usecase/interfaces"
	"insurance_designer/pkg/metrics"
	"insurance_designer/pkg/tracing"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrNotFound        = errors.New("not found")
	ErrGatewayRejected = errors.New("record gateway rejected the write")
	ErrInternal        = errors.New("internal error")

	// ErrUnsupportedOperation is an ErrInvalidInput: callers asked for an
	// operation this service does not implement.
	ErrUnsupportedOperation = fmt.Errorf("%w: unsupported operation", ErrInvalidInput)
)

// IPolicyDesignUseCase turns a single design intent into the dependent
// product, policy, coverage, participant and price entry records.
//
// Steps:
//   - product and policy are fatal: any failure aborts the design
//   - coverages, participants and the price entry are best-effort: failed items
//     are skipped, logged and reported in the result metadata
//
// Nothing is rolled back; a policy whose coverages all failed is still returned.

type IPolicyDesignUseCase interface {
	Design(ctx context.Context, req entities.DesignRequest) (entities.DesignResult, error)
	Clone(ctx context.Context, policyID string) (entities.DesignResult, error)
}

type PolicyDesignUseCase struct {
	gateway     interfaces.IRecordGateway
	validator   *DesignRequestValidator
	runs        interfaces.IDesignRunRepository
	concurrency int
	now         func() time.Time
}

var _ IPolicyDesignUseCase = (*PolicyDesignUseCase)(nil)

type PolicyDesignOption func(*PolicyDesignUseCase)

// WithDesignRunRepository enables the audit trail of successful designs.
func WithDesignRunRepository(repo interfaces.IDesignRunRepository) PolicyDesignOption {
	return func(u *PolicyDesignUseCase) {
		u.runs = repo
	}
}

// WithItemConcurrency bounds how many coverage or participant writes are in
// flight at once. Values below 1 mean sequential.
func WithItemConcurrency(n int) PolicyDesignOption {
	return func(u *PolicyDesignUseCase) {
		if n < 1 {
			n = 1
		}
		u.concurrency = n
	}
}

func WithClock(now func() time.Time) PolicyDesignOption {
	return func(u *PolicyDesignUseCase) {
		if now != nil {
			u.now = now
		}
	}
}

func NewPolicyDesignUseCase(gateway interfaces.IRecordGateway, opts ...PolicyDesignOption) *PolicyDesignUseCase {
	u := &PolicyDesignUseCase{
		gateway:     gateway,
		validator:   NewDesignRequestValidator(gateway),
		concurrency: 1,
		now:         func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *PolicyDesignUseCase) Design(ctx context.Context, req entities.DesignRequest) (result entities.DesignResult, err error) {
	ctx, span := tracing.StartSpan(ctx, "usecase.PolicyDesignUseCase.Design")
	defer span.End()
	defer func() {
		metrics.DesignOperationsTotal.WithLabelValues(designOutcome(err)).Inc()
	}()

	log.Info().
		Str("policy_type", string(req.PolicyType)).
		Str("account_id", req.AccountID).
		Int("coverages", len(req.CoverageOptions)).
		Int("participants", len(req.Participants)).
		Msg("[policy][usecase] design start")

	terms, err := u.validator.Validate(ctx, req)
	if err != nil {
		log.Warn().Err(err).Msg("[policy][usecase] design request rejected")
		return entities.DesignResult{}, err
	}

	product, reused, err := u.resolveProduct(ctx, req)
	if err != nil {
		log.Error().Err(err).Str("product_id", req.ProductID).Msg("[policy][usecase] product step failed")
		return entities.DesignResult{}, normalizeDesignError(err)
	}

	policy, err := u.createPolicy(ctx, req, terms, product.ID)
	if err != nil {
		log.Error().Err(err).Str("product_id", product.ID).Msg("[policy][usecase] policy step failed")
		return entities.DesignResult{}, normalizeDesignError(err)
	}

	coverages, coverageOutcomes := u.createCoverages(ctx, policy, req.CoverageOptions)
	participants, participantOutcomes := u.createParticipants(ctx, policy, req.Participants)
	priceEntry, priceOutcome := u.createPriceEntry(ctx, product, policy)

	touched := objectsTouched(len(coverages), len(participants), priceEntry != nil)
	summary := BuildConfigurationSummary(DesignSnapshot{
		Policy:       policy,
		Product:      product,
		Coverages:    coverages,
		Participants: participants,
		PriceEntry:   priceEntry,
		ObjectsUsed:  touched,
	})

	outcomes := make([]entities.ItemOutcome, 0, len(coverageOutcomes)+len(participantOutcomes)+1)
	outcomes = append(outcomes, coverageOutcomes...)
	outcomes = append(outcomes, participantOutcomes...)
	outcomes = append(outcomes, priceOutcome)

	result = entities.DesignResult{
		InsurancePolicyID:    policy.ID,
		ProductID:            product.ID,
		CoverageCount:        len(coverages),
		ParticipantCount:     len(participants),
		ConfigurationSummary: summary,
		Metadata: entities.DesignMetadata{
			CreatedAt:      u.now(),
			PolicyType:     policy.PolicyType,
			ObjectsTouched: touched,
			ProductReused:  reused,
			ItemOutcomes:   outcomes,
		},
	}
	if priceEntry != nil {
		result.Metadata.PriceEntryID = priceEntry.ID
	}

	u.recordRun(ctx, req, result)

	log.Info().
		Str("policy_id", policy.ID).
		Str("product_id", product.ID).
		Int("coverages_created", len(coverages)).
		Int("participants_created", len(participants)).
		Bool("price_entry", priceEntry != nil).
		Msg("[policy][usecase] design success")
	return result, nil
}

// Clone is declared by the calling interface but intentionally unimplemented.
func (u *PolicyDesignUseCase) Clone(_ context.Context, _ string) (entities.DesignResult, error) {
	return entities.DesignResult{}, UnsupportedOperation("clone")
}

// UnsupportedOperation builds the error returned for clone and for unknown
// operation names alike.
func UnsupportedOperation(name string) error {
	return fmt.Errorf("%w: %s", ErrUnsupportedOperation, strings.TrimSpace(name))
}

func (u *PolicyDesignUseCase) resolveProduct(ctx context.Context, req entities.DesignRequest) (entities.Product, bool, error) {
	ctx, span := tracing.StartSpan(ctx, "usecase.PolicyDesignUseCase.resolveProduct")
	defer span.End()

	if id := strings.TrimSpace(req.ProductID); id != "" {
		rec, err := u.gateway.FindOne(ctx, entities.ObjectProduct, entities.Record{"id": id})
		if err != nil {
			return entities.Product{}, false, fmt.Errorf("load product %s: %w", id, err)
		}
		if rec == nil {
			return entities.Product{}, false, fmt.Errorf("%w: product %s does not exist", ErrNotFound, id)
		}
		product := entities.ProductFromRecord(rec)
		if product.ID == "" {
			product.ID = id
		}
		log.Info().Str("product_id", id).Msg("[policy][usecase] reusing existing product")
		return product, true, nil
	}

	product := entities.Product{
		Name:        strings.TrimSpace(req.PolicyName),
		Code:        entities.NewProductCode(req.PolicyType, u.now()),
		Description: productDescription(req),
		Family:      entities.ProductFamilyInsurance,
		IsActive:    true,
	}
	id, err := u.createRecord(ctx, entities.ObjectProduct, product.Fields())
	if err != nil {
		return entities.Product{}, false, fmt.Errorf("create product: %w", err)
	}
	product.ID = id
	return product, false, nil
}

func (u *PolicyDesignUseCase) createPolicy(ctx context.Context, req entities.DesignRequest, terms TermDates, productID string) (entities.InsurancePolicy, error) {
	ctx, span := tracing.StartSpan(ctx, "usecase.PolicyDesignUseCase.createPolicy")
	defer span.End()

	grace := entities.DefaultGracePeriodDays
	if req.PolicyTerms.GracePeriodDays != nil {
		grace = *req.PolicyTerms.GracePeriodDays
	}

	policy := entities.InsurancePolicy{
		Name:                     strings.TrimSpace(req.PolicyName),
		ProductID:                productID,
		AccountID:                strings.TrimSpace(req.AccountID),
		PolicyType:               req.PolicyType,
		Status:                   entities.PolicyStatusInForce,
		TotalPremiumAmount:       req.PricingModel.TotalPremiumAmount,
		PremiumFrequency:         req.PricingModel.PremiumFrequency,
		PremiumCalculationMethod: req.PricingModel.PremiumCalculationMethod,
		TermStartDate:            terms.Start,
		TermEndDate:              terms.End,
		TermType:                 req.PolicyTerms.TermType,
		RenewalChannel:           req.PolicyTerms.RenewalChannel,
		CancellationProcess:      req.PolicyTerms.CancellationProcessType,
		GracePeriodDays:          grace,
	}
	id, err := u.createRecord(ctx, entities.ObjectPolicy, policy.Fields())
	if err != nil {
		return entities.InsurancePolicy{}, fmt.Errorf("create policy: %w", err)
	}
	policy.ID = id
	return policy, nil
}

func (u *PolicyDesignUseCase) createCoverages(ctx context.Context, policy entities.InsurancePolicy, options []entities.CoverageOption) ([]entities.Coverage, []entities.ItemOutcome) {
	ctx, span := tracing.StartSpan(ctx, "usecase.PolicyDesignUseCase.createCoverages")
	defer span.End()

	planned := make([]entities.Coverage, len(options))
	for i, opt := range options {
		deductible := 0.0
		if opt.Deductible != nil {
			deductible = *opt.Deductible
		}
		planned[i] = entities.Coverage{
			InsurancePolicyID: policy.ID,
			CoverageType:      opt.CoverageType,
			CoverageAmount:    opt.CoverageAmount,
			Deductible:        deductible,
			Premium:           opt.Premium,
			IsOptional:        opt.IsOptional,
			Description:       opt.CoverageDescription,
			EffectiveDate:     policy.TermStartDate,
			ExpirationDate:    policy.TermEndDate,
		}
	}

	outcomes := u.createEach(ctx, entities.DesignStepCoverage, entities.ObjectCoverage, len(planned), func(i int) entities.Record {
		return planned[i].Fields()
	})

	created := make([]entities.Coverage, 0, len(planned))
	for i, o := range outcomes {
		if o.Success {
			c := planned[i]
			c.ID = o.ID
			created = append(created, c)
		}
	}
	return created, outcomes
}

func (u *PolicyDesignUseCase) createParticipants(ctx context.Context, policy entities.InsurancePolicy, inputs []entities.ParticipantInput) ([]entities.Participant, []entities.ItemOutcome) {
	if len(inputs) == 0 {
		return []entities.Participant{}, nil
	}
	ctx, span := tracing.StartSpan(ctx, "usecase.PolicyDesignUseCase.createParticipants")
	defer span.End()

	planned := make([]entities.Participant, len(inputs))
	for i, in := range inputs {
		active := true
		if in.IsActive != nil {
			active = *in.IsActive
		}
		planned[i] = entities.Participant{
			InsurancePolicyID:     policy.ID,
			ContactID:             strings.TrimSpace(in.ContactID),
			Role:                  in.Role,
			RelationshipToInsured: in.RelationshipToInsured,
			IsActive:              active,
		}
	}

	outcomes := u.createEach(ctx, entities.DesignStepParticipant, entities.ObjectParticipant, len(planned), func(i int) entities.Record {
		return planned[i].Fields()
	})

	created := make([]entities.Participant, 0, len(planned))
	for i, o := range outcomes {
		if o.Success {
			p := planned[i]
			p.ID = o.ID
			created = append(created, p)
		}
	}
	return created, outcomes
}

// createEach issues one create per item, at most u.concurrency at a time, and
// returns the outcomes slotted by input index.
func (u *PolicyDesignUseCase) createEach(ctx context.Context, step entities.DesignStep, kind entities.ObjectKind, n int, fields func(i int) entities.Record) []entities.ItemOutcome {
	outcomes := make([]entities.ItemOutcome, n)

	var g errgroup.Group
	g.SetLimit(u.concurrency)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			id, err := u.createRecord(ctx, kind, fields(i))
			outcome := entities.ItemOutcome{Step: step, ObjectKind: kind, Index: i, Success: err == nil, ID: id}
			if err != nil {
				outcome.Reason = err.Error()
				metrics.DesignItemFailuresTotal.WithLabelValues(string(kind)).Inc()
				log.Warn().Err(err).Str("object_kind", string(kind)).Int("index", i).Msg("[policy][usecase] skipping failed item")
			}
			outcomes[i] = outcome
			return nil
		})
	}
	_ = g.Wait()
	return outcomes
}

func (u *PolicyDesignUseCase) createPriceEntry(ctx context.Context, product entities.Product, policy entities.InsurancePolicy) (*entities.PriceEntry, entities.ItemOutcome) {
	ctx, span := tracing.StartSpan(ctx, "usecase.PolicyDesignUseCase.createPriceEntry")
	defer span.End()

	outcome := entities.ItemOutcome{Step: entities.DesignStepPriceEntry, ObjectKind: entities.ObjectPriceEntry}
	skip := func(reason string) (*entities.PriceEntry, entities.ItemOutcome) {
		outcome.Reason = reason
		metrics.DesignItemFailuresTotal.WithLabelValues(string(entities.ObjectPriceEntry)).Inc()
		log.Warn().Str("product_id", product.ID).Str("reason", reason).Msg("[policy][usecase] no price entry created")
		return nil, outcome
	}

	query, err := standardPriceCatalogQuery()
	if err != nil {
		return skip(fmt.Sprintf("build standard price catalog query: %v", err))
	}
	res, err := u.gateway.Query(ctx, query)
	if err != nil {
		return skip(fmt.Sprintf("lookup standard price catalog: %v", err))
	}
	if len(res.Records) == 0 || res.Records[0].ID() == "" {
		return skip("standard price catalog not found")
	}

	entry := entities.PriceEntry{
		ProductID:        product.ID,
		PriceCatalogID:   res.Records[0].ID(),
		UnitPrice:        policy.TotalPremiumAmount,
		IsActive:         true,
		UseStandardPrice: false,
	}
	id, err := u.createRecord(ctx, entities.ObjectPriceEntry, entry.Fields())
	if err != nil {
		return skip(err.Error())
	}
	entry.ID = id
	outcome.Success = true
	outcome.ID = id
	return &entry, outcome
}

// createRecord issues one create and turns a store-side rejection into ErrGatewayRejected.
func (u *PolicyDesignUseCase) createRecord(ctx context.Context, kind entities.ObjectKind, fields entities.Record) (string, error) {
	res, err := u.gateway.Create(ctx, kind, fields)
	if err != nil {
		return "", err
	}
	if !res.Success {
		reason := strings.Join(res.Errors, "; ")
		if reason == "" {
			reason = "no error details"
		}
		return "", fmt.Errorf("%w: %s: %s", ErrGatewayRejected, kind, reason)
	}
	if strings.TrimSpace(res.ID) == "" {
		return "", fmt.Errorf("%w: %s: created without id", ErrGatewayRejected, kind)
	}
	return res.ID, nil
}

func (u *PolicyDesignUseCase) recordRun(ctx context.Context, req entities.DesignRequest, result entities.DesignResult) {
	if u.runs == nil {
		return
	}
	run := entities.DesignRun{
		ID:                    uuid.NewString(),
		PolicyID:              result.InsurancePolicyID,
		ProductID:             result.ProductID,
		PolicyType:            result.Metadata.PolicyType,
		CoveragesRequested:    len(req.CoverageOptions),
		CoveragesCreated:      result.CoverageCount,
		ParticipantsRequested: len(req.Participants),
		ParticipantsCreated:   result.ParticipantCount,
		PriceEntryID:          result.Metadata.PriceEntryID,
		ItemOutcomes:          result.Metadata.ItemOutcomes,
		CreatedAt:             result.Metadata.CreatedAt,
	}
	if _, err := u.runs.Create(ctx, run); err != nil {
		log.Warn().Err(err).Str("policy_id", run.PolicyID).Msg("[policy][usecase] design run not recorded")
	}
}

func objectsTouched(coverages, participants int, priceEntry bool) []entities.ObjectKind {
	out := []entities.ObjectKind{entities.ObjectProduct, entities.ObjectPolicy}
	if coverages > 0 {
		out = append(out, entities.ObjectCoverage)
	}
	if participants > 0 {
		out = append(out, entities.ObjectParticipant)
	}
	if priceEntry {
		out = append(out, entities.ObjectPriceEntry)
	}
	return out
}

func productDescription(req entities.DesignRequest) string {
	if d := strings.TrimSpace(req.Description); d != "" {
		return d
	}
	return fmt.Sprintf("%s insurance product for %s", req.PolicyType, strings.TrimSpace(req.PolicyName))
}

// normalizeDesignError keeps validation and lookup errors as they are and
// folds everything else into ErrInternal with the original message.
func normalizeDesignError(err error) error {
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrNotFound), errors.Is(err, ErrInternal):
		return err
	default:
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}
}

func designOutcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	default:
		return "internal"
	}
}
