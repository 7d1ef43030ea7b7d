package entities

import "time"

// PolicyType is the line of business of an insurance policy.
type PolicyType string

const (
	PolicyTypeAuto       PolicyType = "Auto"
	PolicyTypeHome       PolicyType = "Home"
	PolicyTypeLife       PolicyType = "Life"
	PolicyTypeHealth     PolicyType = "Health"
	PolicyTypeCommercial PolicyType = "Commercial"
	PolicyTypeUmbrella   PolicyType = "Umbrella"
)

var policyTypes = []PolicyType{
	PolicyTypeAuto,
	PolicyTypeHome,
	PolicyTypeLife,
	PolicyTypeHealth,
	PolicyTypeCommercial,
	PolicyTypeUmbrella,
}

func (t PolicyType) Valid() bool {
	return oneOf(t, policyTypes)
}

func oneOf[T comparable](v T, allowed []T) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}

// PolicyStatus is the lifecycle status stored on the policy record.
//
// Newly designed policies are always created "In Force"; the other values
// only matter to the read paths.
type PolicyStatus string

const (
	PolicyStatusInForce   PolicyStatus = "In Force"
	PolicyStatusPending   PolicyStatus = "Pending"
	PolicyStatusSuspended PolicyStatus = "Suspended"
)

// ListableStatuses are the statuses returned by the policy list query.
var ListableStatuses = []PolicyStatus{PolicyStatusInForce, PolicyStatusPending, PolicyStatusSuspended}

type PremiumFrequency string

const (
	PremiumFrequencyMonthly    PremiumFrequency = "Monthly"
	PremiumFrequencyQuarterly  PremiumFrequency = "Quarterly"
	PremiumFrequencySemiAnnual PremiumFrequency = "Semi-Annual"
	PremiumFrequencyAnnual     PremiumFrequency = "Annual"
)

var premiumFrequencies = []PremiumFrequency{
	PremiumFrequencyMonthly,
	PremiumFrequencyQuarterly,
	PremiumFrequencySemiAnnual,
	PremiumFrequencyAnnual,
}

func (f PremiumFrequency) Valid() bool {
	return oneOf(f, premiumFrequencies)
}

type PremiumCalculationMethod string

const (
	PremiumCalculationFixed      PremiumCalculationMethod = "Fixed"
	PremiumCalculationRated      PremiumCalculationMethod = "Rated"
	PremiumCalculationUsageBased PremiumCalculationMethod = "Usage-Based"
)

var premiumCalculationMethods = []PremiumCalculationMethod{
	PremiumCalculationFixed,
	PremiumCalculationRated,
	PremiumCalculationUsageBased,
}

func (m PremiumCalculationMethod) Valid() bool {
	return oneOf(m, premiumCalculationMethods)
}

type RenewalChannel string

const (
	RenewalChannelAutomatic RenewalChannel = "Automatic"
	RenewalChannelManual    RenewalChannel = "Manual"
	RenewalChannelAgent     RenewalChannel = "Agent"
)

var renewalChannels = []RenewalChannel{RenewalChannelAutomatic, RenewalChannelManual, RenewalChannelAgent}

func (c RenewalChannel) Valid() bool {
	return oneOf(c, renewalChannels)
}

// DefaultGracePeriodDays applies when the request leaves the grace period empty.
const DefaultGracePeriodDays = 30

// InsurancePolicy is the central contract record created by a design operation.
type InsurancePolicy struct {
	ID                       string
	Name                     string
	ProductID                string
	AccountID                string
	PolicyType               PolicyType
	Status                   PolicyStatus
	TotalPremiumAmount       float64
	PremiumFrequency         PremiumFrequency
	PremiumCalculationMethod PremiumCalculationMethod
	TermStartDate            time.Time
	TermEndDate              time.Time
	TermType                 string
	RenewalChannel           RenewalChannel
	CancellationProcess      string
	GracePeriodDays          int
}

func (p InsurancePolicy) Fields() Record {
	return Record{
		"name":                       p.Name,
		"product_id":                 p.ProductID,
		"account_id":                 p.AccountID,
		"policy_type":                string(p.PolicyType),
		"status":                     string(p.Status),
		"total_premium_amount":       p.TotalPremiumAmount,
		"premium_frequency":          string(p.PremiumFrequency),
		"premium_calculation_method": string(p.PremiumCalculationMethod),
		"term_start_date":            p.TermStartDate,
		"term_end_date":              p.TermEndDate,
		"term_type":                  p.TermType,
		"renewal_channel":            string(p.RenewalChannel),
		"cancellation_process":       p.CancellationProcess,
		"grace_period_days":          p.GracePeriodDays,
	}
}
