package entities

// SubstitutionCandidate is a server-recommended swap of a list product for a
// more sustainable one.
//
// Savings is signed: positive means the substitute is cheaper, negative means
// it costs more. ScoreImprovement is never negative. Candidates are ephemeral and
// never persisted on their own.
type SubstitutionCandidate struct {
	Original         Product `json:"original"`
	Substitute       Product `json:"substitute"`
	Reason           string  `json:"reason"`
	Savings          float64 `json:"savings"`
	ScoreImprovement float64 `json:"score_improvement"`
}

// IsImprovement reports whether the substitute scores strictly higher.
func (c SubstitutionCandidate) IsImprovement() bool {
	return c.Substitute.EcoScore > c.Original.EcoScore
}

// CandidateResultKind is the final disposition of one candidate in a review.
type CandidateResultKind string

const (
	CandidateSkipped CandidateResultKind = "skipped"
	CandidateApplied CandidateResultKind = "applied"
	CandidateFailed  CandidateResultKind = "failed"
)

// FailureReason explains why an accepted candidate was not applied.
type FailureReason string

const (
	FailureNone         FailureReason = ""
	FailureItemNotFound FailureReason = "item_not_found"
	FailureRemoveFailed FailureReason = "remove_failed"
	// FailureAddFailed means the substitute could not be added but the original
	// item was restored.
	FailureAddFailed FailureReason = "add_failed"
	// FailureOrphaned means the original item was removed and neither the
	// substitute nor the original could be added back.
	FailureOrphaned FailureReason = "orphaned"
)

// CandidateResult records what happened to a single candidate.
type CandidateResult struct {
	Index     int                   `json:"index"`
	Candidate SubstitutionCandidate `json:"candidate"`
	Kind      CandidateResultKind   `json:"kind"`
	Reason    FailureReason         `json:"reason,omitempty"`
	ItemID    int64                 `json:"item_id,omitempty"`
	Quantity  int                   `json:"quantity,omitempty"`
	Detail    string                `json:"detail,omitempty"`
}

// OrphanedItem is a list line that was removed during a substitution and could
// not be recreated. It must be surfaced to the user for repair.
type OrphanedItem struct {
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	Detail      string `json:"detail,omitempty"`
}

// Outcome summarizes a substitution review run.
//
// AcceptedCount, TotalSavings and TotalScoreImprovement only include candidates
// whose remove+add both succeeded. FailedCount counts accepted candidates whose
// mutation did not fully succeed.
type Outcome struct {
	NoCandidates          bool              `json:"no_candidates"`
	AcceptedCount         int               `json:"accepted_count"`
	RejectedCount         int               `json:"rejected_count"`
	FailedCount           int               `json:"failed_count"`
	TotalSavings          float64           `json:"total_savings"`
	TotalScoreImprovement float64           `json:"total_score_improvement"`
	Results               []CandidateResult `json:"results,omitempty"`
	Orphaned              []OrphanedItem    `json:"orphaned,omitempty"`
	List                  *ShoppingList     `json:"list,omitempty"`
}

// Record folds a candidate result into the running accumulators.
func (o *Outcome) Record(r CandidateResult) {
	o.Results = append(o.Results, r)
	switch r.Kind {
	case CandidateApplied:
		o.AcceptedCount++
		o.TotalSavings += r.Candidate.Savings
		o.TotalScoreImprovement += r.Candidate.ScoreImprovement
	case CandidateFailed:
		o.FailedCount++
	default:
		o.RejectedCount++
	}
}
