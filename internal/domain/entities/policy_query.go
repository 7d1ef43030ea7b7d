package entities

// PolicyList is the result of listing policies.
//
// AveragePremium is nil when no records matched; a mean over zero records is
// reported as absent instead of a non-numeric value.
type PolicyList struct {
	TotalCount  int
	Records     []Record
	PolicyTypes []string
	Summary     PolicyListSummary
}

type PolicyListSummary struct {
	ByStatus       map[PolicyStatus]int
	AveragePremium *float64
}

// PolicyDetails bundles one policy with its dependent records.
type PolicyDetails struct {
	Policy       Record
	Coverages    []Record
	Participants []Record
	Summary      PolicyDetailsSummary
}

type PolicyDetailsSummary struct {
	CoverageCount        int
	ParticipantCount     int
	TotalCoverageAmount  float64
	TotalCoveragePremium float64
}
