package response

import (
	"time"

	"liquiverde_bff/internal/domain/entities"
)

// ProductResponse adds the display band to a catalog product.
type ProductResponse struct {
	entities.Product
	EcoScoreBand string `json:"eco_score_band"`
}

func FromProduct(p entities.Product) ProductResponse {
	return ProductResponse{Product: p, EcoScoreBand: string(entities.BandForEcoScore(p.EcoScore))}
}

func FromProducts(ps []entities.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromProduct(p))
	}
	return out
}

type ProductSubstituteResponse struct {
	Product           ProductResponse `json:"product"`
	Score             float64         `json:"score"`
	ScoreImprovement  float64         `json:"score_improvement"`
	PriceDifference   float64         `json:"price_difference"`
	SavingsPercentage float64         `json:"savings_percentage"`
	Reason            string          `json:"recommendation_reason"`
}

func FromProductSubstitutes(subs []entities.ProductSubstitute) []ProductSubstituteResponse {
	out := make([]ProductSubstituteResponse, 0, len(subs))
	for _, s := range subs {
		out = append(out, ProductSubstituteResponse{
			Product:           FromProduct(s.Product),
			Score:             s.Score,
			ScoreImprovement:  s.ScoreImprovement,
			PriceDifference:   s.PriceDifference,
			SavingsPercentage: s.SavingsPercentage,
			Reason:            s.Reason,
		})
	}
	return out
}

type ListItemResponse struct {
	ID                int64           `json:"id"`
	Product           ProductResponse `json:"product"`
	Quantity          int             `json:"quantity"`
	IsSubstituted     bool            `json:"is_substituted"`
	OriginalProductID *int64          `json:"original_product_id,omitempty"`
	Subtotal          float64         `json:"subtotal"`
}

// ShoppingListResponse is a list as shown by the browser: the server-confirmed
// list plus its budget indicator. Budget is null for lists without one.
type ShoppingListResponse struct {
	ID              int64                  `json:"id"`
	Name            string                 `json:"name"`
	Budget          *float64               `json:"budget"`
	IsOptimized     bool                   `json:"is_optimized"`
	TotalCost       float64                `json:"total_cost"`
	TotalSavings    float64                `json:"total_savings"`
	AverageEcoScore float64                `json:"average_eco_score"`
	EcoScoreBand    string                 `json:"eco_score_band"`
	TotalCarbon     float64                `json:"total_carbon"`
	Items           []ListItemResponse     `json:"items"`
	BudgetSummary   entities.BudgetSummary `json:"budget_summary"`
	FetchedAt       time.Time              `json:"fetched_at"`
}

func FromListState(s entities.ListState) ShoppingListResponse {
	l := s.List
	res := ShoppingListResponse{
		ID:              l.ID,
		Name:            l.Name,
		IsOptimized:     l.IsOptimized,
		TotalCost:       l.TotalCost,
		TotalSavings:    l.TotalSavings,
		AverageEcoScore: l.AverageEcoScore,
		EcoScoreBand:    string(entities.BandForEcoScore(l.AverageEcoScore)),
		TotalCarbon:     l.TotalCarbon,
		Items:           make([]ListItemResponse, 0, len(l.Items)),
		BudgetSummary:   s.Budget,
		FetchedAt:       s.FetchedAt,
	}
	if s.Budget.HasBudget {
		budget := l.Budget
		res.Budget = &budget
	}
	for _, it := range l.Items {
		res.Items = append(res.Items, ListItemResponse{
			ID:                it.ID,
			Product:           FromProduct(it.Product),
			Quantity:          it.Quantity,
			IsSubstituted:     it.IsSubstituted,
			OriginalProductID: it.OriginalProductID,
			Subtotal:          it.Subtotal,
		})
	}
	return res
}

func FromListStates(states []entities.ListState) []ShoppingListResponse {
	out := make([]ShoppingListResponse, 0, len(states))
	for _, s := range states {
		out = append(out, FromListState(s))
	}
	return out
}

type OptimizationResponse struct {
	Result entities.OptimizationResult `json:"result"`
	List   ShoppingListResponse        `json:"list"`
}

func FromOptimizationReport(r entities.OptimizationReport) OptimizationResponse {
	return OptimizationResponse{Result: r.Result, List: FromListState(r.State)}
}
