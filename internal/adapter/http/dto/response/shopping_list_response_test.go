package response

import (
	"encoding/json"
	"testing"
	"time"

	"liquiverde_bff/internal/domain/entities"
)

func TestFromListState(t *testing.T) {
	now := time.Now().UTC()

	t.Run("with budget", func(t *testing.T) {
		list := entities.ShoppingList{
			ID: 1, Name: "weekly", Budget: 1000, TotalCost: 875, AverageEcoScore: 72,
			Items: []entities.ListItem{{ID: 10, Product: entities.Product{ID: 3, Name: "Milk", EcoScore: 85}, Quantity: 2, Subtotal: 875}},
		}
		res := FromListState(entities.NewListState(list, now))

		if res.Budget == nil || *res.Budget != 1000 {
			t.Fatalf("expected budget 1000, got %v", res.Budget)
		}
		if res.BudgetSummary.Status != entities.BudgetStatusNear || res.BudgetSummary.UtilizationPercent != 87.5 {
			t.Fatalf("unexpected budget summary: %+v", res.BudgetSummary)
		}
		if res.EcoScoreBand != "good" || res.Items[0].Product.EcoScoreBand != "excellent" {
			t.Fatalf("unexpected bands: list=%s item=%s", res.EcoScoreBand, res.Items[0].Product.EcoScoreBand)
		}
		if !res.FetchedAt.Equal(now) {
			t.Fatalf("unexpected fetched_at: %v", res.FetchedAt)
		}
	})

	t.Run("without budget renders null and empty items", func(t *testing.T) {
		res := FromListState(entities.NewListState(entities.ShoppingList{ID: 2, Name: "empty"}, now))
		raw, err := json.Marshal(res)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		var body map[string]any
		_ = json.Unmarshal(raw, &body)
		if v, ok := body["budget"]; !ok || v != nil {
			t.Fatalf("expected budget null, got %v", body["budget"])
		}
		if items, ok := body["items"].([]any); !ok || len(items) != 0 {
			t.Fatalf("expected empty items array, got %v", body["items"])
		}
	})
}

func TestFromProduct_FlattensFields(t *testing.T) {
	raw, err := json.Marshal(FromProduct(entities.Product{ID: 5, Name: "Oats", Price: 1990, EcoScore: 41}))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var body map[string]any
	_ = json.Unmarshal(raw, &body)
	if body["id"].(float64) != 5 || body["name"] != "Oats" || body["eco_score_band"] != "fair" {
		t.Fatalf("unexpected body: %s", raw)
	}
}
