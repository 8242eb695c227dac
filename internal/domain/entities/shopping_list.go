package entities

// ShoppingList is the aggregate owned by a user account.
//
// Domain notes:
//   - The shopping service is the source of truth; the BFF never patches item
//     prices or scores locally and always re-fetches after a write.
//   - Budget is 0 when the list has no budget.
//   - AverageEcoScore is the per-product average computed by the service.
type ShoppingList struct {
	ID              int64      `json:"id"`
	Name            string     `json:"name"`
	Budget          float64    `json:"budget"`
	IsOptimized     bool       `json:"is_optimized"`
	TotalCost       float64    `json:"total_cost"`
	TotalSavings    float64    `json:"total_savings"`
	AverageEcoScore float64    `json:"total_eco_score"`
	TotalCarbon     float64    `json:"total_carbon"`
	Items           []ListItem `json:"items,omitempty"`
}

// ListItem is one line of a shopping list.
//
// OriginalProductID is history only: it records which product a substitution
// replaced and is never used to navigate the list.
type ListItem struct {
	ID                int64   `json:"id"`
	Product           Product `json:"product"`
	Quantity          int     `json:"quantity"`
	IsSubstituted     bool    `json:"is_substituted"`
	OriginalProductID *int64  `json:"original_product_id,omitempty"`
	Subtotal          float64 `json:"subtotal"`
}

// FindItemByProduct returns the first item, in list order, whose product id
// matches and whose id is not in skip.
func (l ShoppingList) FindItemByProduct(productID int64, skip map[int64]bool) (ListItem, bool) {
	for _, it := range l.Items {
		if it.Product.ID != productID {
			continue
		}
		if skip[it.ID] {
			continue
		}
		return it, true
	}
	return ListItem{}, false
}

// HasProduct reports whether any item references productID.
func (l ShoppingList) HasProduct(productID int64) bool {
	_, ok := l.FindItemByProduct(productID, nil)
	return ok
}

// OptimizationResult is the summary returned by the budget optimizer.
type OptimizationResult struct {
	SelectedItems   int     `json:"selected_items"`
	TotalCost       float64 `json:"total_cost"`
	AverageEcoScore float64 `json:"average_eco_score"`
	Savings         float64 `json:"savings"`
	BudgetUsage     float64 `json:"budget_usage,omitempty"`
}
