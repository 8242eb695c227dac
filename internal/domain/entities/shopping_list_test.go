package entities

import "testing"

func TestShoppingList_FindItemByProduct(t *testing.T) {
	list := ShoppingList{
		Items: []ListItem{
			{ID: 10, Product: Product{ID: 1}, Quantity: 2},
			{ID: 11, Product: Product{ID: 2}, Quantity: 1},
			{ID: 12, Product: Product{ID: 1}, Quantity: 5},
		},
	}

	t.Run("first match by list order", func(t *testing.T) {
		it, ok := list.FindItemByProduct(1, nil)
		if !ok || it.ID != 10 {
			t.Fatalf("expected item 10, got %+v ok=%v", it, ok)
		}
	})

	t.Run("skips consumed items", func(t *testing.T) {
		it, ok := list.FindItemByProduct(1, map[int64]bool{10: true})
		if !ok || it.ID != 12 {
			t.Fatalf("expected item 12, got %+v ok=%v", it, ok)
		}
	})

	t.Run("not found", func(t *testing.T) {
		if _, ok := list.FindItemByProduct(99, nil); ok {
			t.Fatalf("expected no match")
		}
		if list.HasProduct(99) {
			t.Fatalf("expected HasProduct false")
		}
	})
}

func TestOutcome_Record(t *testing.T) {
	var o Outcome
	o.Record(CandidateResult{Kind: CandidateApplied, Candidate: SubstitutionCandidate{Savings: 100, ScoreImprovement: 20}})
	o.Record(CandidateResult{Kind: CandidateApplied, Candidate: SubstitutionCandidate{Savings: -50, ScoreImprovement: 5}})
	o.Record(CandidateResult{Kind: CandidateFailed, Reason: FailureItemNotFound, Candidate: SubstitutionCandidate{Savings: 999, ScoreImprovement: 99}})
	o.Record(CandidateResult{Kind: CandidateSkipped, Candidate: SubstitutionCandidate{Savings: 7, ScoreImprovement: 7}})

	if o.AcceptedCount != 2 || o.FailedCount != 1 || o.RejectedCount != 1 {
		t.Fatalf("unexpected counts: %+v", o)
	}
	if o.TotalSavings != 50 {
		t.Fatalf("expected savings 50, got %v", o.TotalSavings)
	}
	if o.TotalScoreImprovement != 25 {
		t.Fatalf("expected score improvement 25, got %v", o.TotalScoreImprovement)
	}
	if len(o.Results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(o.Results))
	}
}

func TestSubstitutionCandidate_IsImprovement(t *testing.T) {
	c := SubstitutionCandidate{Original: Product{EcoScore: 50}, Substitute: Product{EcoScore: 70}}
	if !c.IsImprovement() {
		t.Fatalf("expected improvement")
	}
	c.Substitute.EcoScore = 50
	if c.IsImprovement() {
		t.Fatalf("equal scores must not count as improvement")
	}
}

func TestReviewSession_Prompt(t *testing.T) {
	s := ReviewSession{
		State:      ReviewStatePresenting,
		Index:      1,
		Candidates: []SubstitutionCandidate{{Reason: "a"}, {Reason: "b"}},
	}
	p, ok := s.Prompt()
	if !ok || p.Index != 1 || p.Total != 2 || p.Candidate.Reason != "b" {
		t.Fatalf("unexpected prompt: %+v ok=%v", p, ok)
	}

	s.State = ReviewStateApplying
	if _, ok := s.Prompt(); ok {
		t.Fatalf("expected no prompt while applying")
	}
}
