package response

import (
	"testing"

	"liquiverde_bff/internal/domain/entities"
)

func TestFromReviewSession(t *testing.T) {
	candidates := []entities.SubstitutionCandidate{
		{Original: entities.Product{ID: 1, EcoScore: 40}, Substitute: entities.Product{ID: 2, EcoScore: 70}, Savings: 150, ScoreImprovement: 30},
		{Original: entities.Product{ID: 3, EcoScore: 50}, Substitute: entities.Product{ID: 4, EcoScore: 65}, Savings: -300, ScoreImprovement: 15},
	}

	t.Run("presenting exposes prompt", func(t *testing.T) {
		res := FromReviewSession(entities.ReviewSession{ID: "s-1", ListID: 9, State: entities.ReviewStatePresenting, Index: 1, Candidates: candidates})
		if res.Prompt == nil {
			t.Fatalf("expected prompt")
		}
		if res.Prompt.Index != 1 || res.Prompt.Total != 2 || res.Prompt.Substitute.ID != 4 {
			t.Fatalf("unexpected prompt: %+v", res.Prompt)
		}
		if !res.Prompt.CostsMore {
			t.Fatalf("negative savings should be flagged as extra cost")
		}
		if res.CandidateCount != 2 || res.State != "presenting" {
			t.Fatalf("unexpected response: %+v", res)
		}
	})

	t.Run("applying and done have no prompt", func(t *testing.T) {
		for _, st := range []entities.ReviewState{entities.ReviewStateApplying, entities.ReviewStateDone} {
			res := FromReviewSession(entities.ReviewSession{ID: "s-1", State: st, Candidates: candidates, Outcome: &entities.Outcome{AcceptedCount: 1}})
			if res.Prompt != nil {
				t.Fatalf("state %s should not expose a prompt", st)
			}
			if res.Outcome == nil || res.Outcome.AcceptedCount != 1 {
				t.Fatalf("unexpected outcome: %+v", res.Outcome)
			}
		}
	})
}
