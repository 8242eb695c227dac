package entities

import "testing"

func TestComputeBudget(t *testing.T) {
	cases := []struct {
		name        string
		list        ShoppingList
		utilization float64
		status      BudgetStatus
		remaining   float64
	}{
		{name: "near budget", list: ShoppingList{Budget: 100000, TotalCost: 85000}, utilization: 85, status: BudgetStatusNear, remaining: 15000},
		{name: "over budget", list: ShoppingList{Budget: 100000, TotalCost: 120000}, utilization: 120, status: BudgetStatusOver, remaining: -20000},
		{name: "well under budget", list: ShoppingList{Budget: 100000, TotalCost: 40000}, utilization: 40, status: BudgetStatusOK, remaining: 60000},
		{name: "exactly at threshold", list: ShoppingList{Budget: 100, TotalCost: 80}, utilization: 80, status: BudgetStatusOK, remaining: 20},
		{name: "exactly at budget", list: ShoppingList{Budget: 100, TotalCost: 100}, utilization: 100, status: BudgetStatusNear, remaining: 0},
		{name: "no budget", list: ShoppingList{TotalCost: 5000}, utilization: 0, status: BudgetStatusOK},
		{name: "negative budget", list: ShoppingList{Budget: -10, TotalCost: 5000}, utilization: 0, status: BudgetStatusOK},
		{name: "empty list", list: ShoppingList{Budget: 1000}, utilization: 0, status: BudgetStatusOK, remaining: 1000},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeBudget(tc.list)
			if got.UtilizationPercent != tc.utilization {
				t.Fatalf("expected utilization %v, got %v", tc.utilization, got.UtilizationPercent)
			}
			if got.Status != tc.status {
				t.Fatalf("expected status %s, got %s", tc.status, got.Status)
			}
			if got.Remaining != tc.remaining {
				t.Fatalf("expected remaining %v, got %v", tc.remaining, got.Remaining)
			}
		})
	}
}

func TestComputeBudget_Deterministic(t *testing.T) {
	list := ShoppingList{Budget: 30000, TotalCost: 27500}
	first := ComputeBudget(list)
	for i := 0; i < 10; i++ {
		if got := ComputeBudget(list); got != first {
			t.Fatalf("expected identical summaries, got %+v and %+v", first, got)
		}
	}
}

func TestBandForEcoScore(t *testing.T) {
	cases := map[float64]EcoScoreBand{
		95: EcoScoreExcellent,
		80: EcoScoreExcellent,
		79: EcoScoreGood,
		60: EcoScoreGood,
		45: EcoScoreFair,
		10: EcoScorePoor,
	}
	for score, want := range cases {
		if got := BandForEcoScore(score); got != want {
			t.Fatalf("score %v: expected %s, got %s", score, want, got)
		}
	}
}
