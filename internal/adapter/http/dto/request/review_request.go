package request

// StartReviewQuery selects the substitution mode. Aggressive mode lets the
// service propose swaps with smaller score gains.
type StartReviewQuery struct {
	Aggressive bool `form:"aggressive"`
}

// ReviewDecisionRequest answers the pending prompt of a review session.
//
// Accept is a pointer so that a missing field is rejected instead of being
// read as a reject.
type ReviewDecisionRequest struct {
	Accept *bool `json:"accept" binding:"required"`
}
