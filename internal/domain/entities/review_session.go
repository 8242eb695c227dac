package entities

import "time"

// ReviewState is the state of the substitution review state machine:
//
//	idle -> presenting(i) -> applying(i) -> presenting(i+1) | done
type ReviewState string

const (
	ReviewStateIdle       ReviewState = "idle"
	ReviewStatePresenting ReviewState = "presenting"
	ReviewStateApplying   ReviewState = "applying"
	ReviewStateDone       ReviewState = "done"
)

// ReviewPrompt is the question put to the user for one candidate.
type ReviewPrompt struct {
	Index     int                   `json:"index"`
	Total     int                   `json:"total"`
	Candidate SubstitutionCandidate `json:"candidate"`
}

// ReviewSession is an interactive substitution review bound to one list.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (list_id-index): list_id
type ReviewSession struct {
	ID         string                  `json:"id"`
	ListID     int64                   `json:"list_id"`
	State      ReviewState             `json:"state"`
	Index      int                     `json:"index"`
	Candidates []SubstitutionCandidate `json:"candidates"`
	Outcome    *Outcome                `json:"outcome,omitempty"`
	Error      string                  `json:"error,omitempty"`
	CreatedAt  time.Time               `json:"created_at"`
	UpdatedAt  time.Time               `json:"updated_at"`
}

// Prompt returns the pending question while the session is presenting.
func (s ReviewSession) Prompt() (ReviewPrompt, bool) {
	if s.State != ReviewStatePresenting || s.Index < 0 || s.Index >= len(s.Candidates) {
		return ReviewPrompt{}, false
	}
	return ReviewPrompt{Index: s.Index, Total: len(s.Candidates), Candidate: s.Candidates[s.Index]}, true
}

func (s ReviewSession) Done() bool {
	return s.State == ReviewStateDone
}
