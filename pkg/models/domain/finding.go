package domain

// Status is the outcome of one audit rule, ordered by severity.
// StatusPending means the rule had insufficient data to decide; it is not a
// failure.
type Status int

const (
	StatusPending Status = iota
	StatusPass
	StatusWarning
	StatusFail
)

func (s Status) String() string {
	switch s {
	case StatusPass:
		return "PASS"
	case StatusWarning:
		return "WARNING"
	case StatusFail:
		return "FAIL"
	default:
		return "PENDING"
	}
}

// Worst returns the more severe of the two statuses on the
// PASS < WARNING < FAIL lattice.
func (s Status) Worst(other Status) Status {
	if other > s {
		return other
	}
	return s
}

// SubFinding is one row of a detailed finding, e.g. a single certificate or a
// single aggregated line-item group.
type SubFinding struct {
	Label   string
	Status  Status
	Details string
}

// Finding is the outcome of one audit rule. ID is stable per rule category;
// Recommendation is only set when the status is not PASS.
type Finding struct {
	ID             string
	Title          string
	Description    string
	Status         Status
	Details        string
	Recommendation string
	SubFindings    []SubFinding
}
