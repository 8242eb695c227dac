package request

import (
	"strings"

	"liquiverde_bff/internal/domain/entities"
)

const defaultItemQuantity = 1

type CreateShoppingListRequest struct {
	Name   string  `json:"name" binding:"required"`
	Budget float64 `json:"budget" binding:"required"`
}

func (r CreateShoppingListRequest) ResolveName() string {
	return strings.TrimSpace(r.Name)
}

// UpdateShoppingListRequest renames a list and/or changes its budget. Absent
// fields are left untouched.
type UpdateShoppingListRequest struct {
	Name   *string  `json:"name"`
	Budget *float64 `json:"budget"`
}

func (r UpdateShoppingListRequest) ResolveName() *string {
	if r.Name == nil {
		return nil
	}
	name := strings.TrimSpace(*r.Name)
	return &name
}

type AddItemRequest struct {
	ProductID int64 `json:"product_id" binding:"required"`
	Quantity  *int  `json:"quantity"`
}

// ResolveQuantity defaults to one unit when quantity is omitted.
func (r AddItemRequest) ResolveQuantity() int {
	if r.Quantity == nil {
		return defaultItemQuantity
	}
	return *r.Quantity
}

type UpdateItemQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

// ProductQuery carries the filters of GET /products.
type ProductQuery struct {
	Category    string   `form:"category"`
	Search      string   `form:"search"`
	MinEcoScore *float64 `form:"min_eco_score"`
	Skip        int      `form:"skip"`
	Limit       int      `form:"limit"`
}

func (q ProductQuery) ToFilter() entities.ProductFilter {
	return entities.ProductFilter{
		Category:    strings.TrimSpace(q.Category),
		Search:      strings.TrimSpace(q.Search),
		MinEcoScore: q.MinEcoScore,
		Skip:        q.Skip,
		Limit:       q.Limit,
	}
}

type SubstitutesQuery struct {
	MaxResults int `form:"max_results"`
}
