package campaign

import "time"

// State is the campaign driver's lifecycle state. A run moves forward through
// the states in order and never revisits one; Failed is terminal and reachable
// from anywhere on a fatal error.
type State string

const (
	StateIdle             State = "idle"
	StateValidatingConfig State = "validating_config"
	StateSearching        State = "searching"
	StateProcessing       State = "processing"
	StateCompleted        State = "completed"
	StateFailed           State = "failed"
)

// Outcome classifies what happened to a single candidate.
type Outcome string

const (
	OutcomeSent    Outcome = "sent"
	OutcomeSkipped Outcome = "skipped"
	OutcomeFailed  Outcome = "failed"
)

// Progress is reported after each candidate finishes processing. It is
// observational only and has no effect on control flow.
type Progress struct {
	Index         int
	Total         int
	CandidateName string
}

// Fraction returns completion as (index+1)/total.
func (p Progress) Fraction() float64 {
	if p.Total == 0 {
		return 0
	}
	return float64(p.Index+1) / float64(p.Total)
}

// CandidateResult captures the per-candidate processing detail for the run
// report shown on the dashboard.
type CandidateResult struct {
	Name      string
	URL       string
	Emails    []string
	Instagram string
	Outcome   Outcome
	Error     string
}

// Report summarizes a single campaign run.
type Report struct {
	RunID      string
	Query      string
	NumResults int
	State      State
	StartedAt  time.Time
	FinishedAt time.Time
	Candidates []CandidateResult
	EmailsSent int
}
