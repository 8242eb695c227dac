package response

import (
	"time"

	"liquiverde_bff/internal/domain/entities"
)

// ReviewPromptResponse is the question currently awaiting a decision.
//
// CostsMore is set when the substitute is more expensive (negative savings),
// in which case Savings reads as an extra cost.
type ReviewPromptResponse struct {
	Index            int             `json:"index"`
	Total            int             `json:"total"`
	Original         ProductResponse `json:"original"`
	Substitute       ProductResponse `json:"substitute"`
	Reason           string          `json:"reason"`
	Savings          float64         `json:"savings"`
	CostsMore        bool            `json:"costs_more"`
	ScoreImprovement float64         `json:"score_improvement"`
}

type ReviewSessionResponse struct {
	ID             string                `json:"id"`
	ListID         int64                 `json:"list_id"`
	State          string                `json:"state"`
	Index          int                   `json:"index"`
	CandidateCount int                   `json:"candidate_count"`
	Prompt         *ReviewPromptResponse `json:"prompt,omitempty"`
	Outcome        *entities.Outcome     `json:"outcome,omitempty"`
	Error          string                `json:"error,omitempty"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

func FromReviewSession(s entities.ReviewSession) ReviewSessionResponse {
	res := ReviewSessionResponse{
		ID:             s.ID,
		ListID:         s.ListID,
		State:          string(s.State),
		Index:          s.Index,
		CandidateCount: len(s.Candidates),
		Outcome:        s.Outcome,
		Error:          s.Error,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
	if p, ok := s.Prompt(); ok {
		res.Prompt = &ReviewPromptResponse{
			Index:            p.Index,
			Total:            p.Total,
			Original:         FromProduct(p.Candidate.Original),
			Substitute:       FromProduct(p.Candidate.Substitute),
			Reason:           p.Candidate.Reason,
			Savings:          p.Candidate.Savings,
			CostsMore:        p.Candidate.Savings < 0,
			ScoreImprovement: p.Candidate.ScoreImprovement,
		}
	}
	return res
}

func FromReviewSessions(sessions []entities.ReviewSession) []ReviewSessionResponse {
	out := make([]ReviewSessionResponse, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, FromReviewSession(s))
	}
	return out
}
