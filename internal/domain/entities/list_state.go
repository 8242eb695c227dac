package entities

import "time"

// ListState is the server-confirmed snapshot of a list plus its derived budget
// view. It is replaced wholesale on every refresh and never edited in place.
type ListState struct {
	List      ShoppingList  `json:"list"`
	Budget    BudgetSummary `json:"budget"`
	FetchedAt time.Time     `json:"fetched_at"`
}

func NewListState(list ShoppingList, fetchedAt time.Time) ListState {
	return ListState{List: list, Budget: ComputeBudget(list), FetchedAt: fetchedAt}
}

// OptimizationReport pairs the optimizer summary with the list as re-fetched
// after the optimizer rewrote it.
type OptimizationReport struct {
	Result OptimizationResult `json:"result"`
	State  ListState          `json:"state"`
}
