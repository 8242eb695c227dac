package entities

// BudgetStatus is the three-tier budget indicator shown next to a list.
type BudgetStatus string

const (
	BudgetStatusOK   BudgetStatus = "ok"
	BudgetStatusNear BudgetStatus = "near"
	BudgetStatusOver BudgetStatus = "over"
)

const nearBudgetThreshold = 80.0

// BudgetSummary holds presentation-ready budget metrics for a list.
type BudgetSummary struct {
	HasBudget          bool         `json:"has_budget"`
	Budget             float64      `json:"budget"`
	TotalCost          float64      `json:"total_cost"`
	Remaining          float64      `json:"remaining"`
	UtilizationPercent float64      `json:"utilization_percent"`
	Status             BudgetStatus `json:"status"`
}

// UtilizationPercent is totalCost/budget*100, or 0 when either side is missing
// or budget is not positive.
func UtilizationPercent(totalCost, budget float64) float64 {
	if totalCost == 0 || budget <= 0 {
		return 0
	}
	return totalCost / budget * 100
}

// StatusForUtilization maps a utilization percentage to its tier.
func StatusForUtilization(utilization float64) BudgetStatus {
	switch {
	case utilization > 100:
		return BudgetStatusOver
	case utilization > nearBudgetThreshold:
		return BudgetStatusNear
	default:
		return BudgetStatusOK
	}
}

// ComputeBudget derives the budget summary of a list. It is pure.
func ComputeBudget(list ShoppingList) BudgetSummary {
	utilization := UtilizationPercent(list.TotalCost, list.Budget)
	summary := BudgetSummary{
		HasBudget:          list.Budget > 0,
		Budget:             list.Budget,
		TotalCost:          list.TotalCost,
		UtilizationPercent: utilization,
		Status:             StatusForUtilization(utilization),
	}
	if summary.HasBudget {
		summary.Remaining = list.Budget - list.TotalCost
	}
	return summary
}
