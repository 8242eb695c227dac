package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"liquiverde_bff/internal/domain/entities"
	mock_interfaces "liquiverde_bff/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestShoppingListUseCase_Validations(t *testing.T) {
	uc := NewShoppingListUseCase(nil, nil, nil)
	ctx := context.Background()
	empty := "  "
	negative := -1.0

	cases := []struct {
		name string
		call func() error
		want error
	}{
		{"create empty name", func() error { _, err := uc.CreateShoppingList(ctx, " ", 10); return err }, ErrInvalidListName},
		{"create zero budget", func() error { _, err := uc.CreateShoppingList(ctx, "weekly", 0); return err }, ErrInvalidBudget},
		{"update nothing", func() error { _, err := uc.UpdateShoppingList(ctx, 1, nil, nil); return err }, ErrNothingToUpdate},
		{"update blank name", func() error { _, err := uc.UpdateShoppingList(ctx, 1, &empty, nil); return err }, ErrInvalidListName},
		{"update negative budget", func() error { _, err := uc.UpdateShoppingList(ctx, 1, nil, &negative); return err }, ErrInvalidBudget},
		{"add zero quantity", func() error { _, err := uc.AddItem(ctx, 1, 2, 0); return err }, ErrInvalidQuantity},
		{"add bad product", func() error { _, err := uc.AddItem(ctx, 1, 0, 1); return err }, ErrInvalidProductID},
		{"update qty bad item", func() error { _, err := uc.UpdateItemQuantity(ctx, 1, 0, 1); return err }, ErrInvalidItemID},
		{"remove bad list", func() error { _, err := uc.RemoveItem(ctx, 0, 1); return err }, ErrInvalidListID},
		{"optimize bad list", func() error { _, err := uc.Optimize(ctx, -3); return err }, ErrInvalidListID},
		{"product bad id", func() error { _, err := uc.GetProduct(ctx, 0); return err }, ErrInvalidProductID},
		{"products no gateway", func() error { _, err := uc.ListProducts(ctx, entities.ProductFilter{}); return err }, ErrGatewayMisconfigured},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.call(); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestShoppingListUseCase_AddItemRefreshes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gw := mock_interfaces.NewMockIShoppingGateway(ctrl)
	notifier := mock_interfaces.NewMockIListNotifier(ctrl)
	uc := NewShoppingListUseCase(gw, nil, notifier)

	list := entities.ShoppingList{ID: 5, Budget: 100000, TotalCost: 85000, Items: []entities.ListItem{{ID: 1, Product: entities.Product{ID: 3}, Quantity: 2}}}
	gomock.InOrder(
		gw.EXPECT().AddItem(gomock.Any(), int64(5), int64(3), 2).Return(entities.ListItem{ID: 1}, nil),
		gw.EXPECT().GetShoppingList(gomock.Any(), int64(5)).Return(list, nil),
		notifier.EXPECT().NotifyList(int64(5), ListEventUpdated, gomock.Any()),
	)

	state, err := uc.AddItem(context.Background(), 5, 3, 2)
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if state.List.ID != 5 || state.Budget.Status != entities.BudgetStatusNear || state.Budget.UtilizationPercent != 85 {
		t.Fatalf("unexpected state: %+v", state)
	}
	if state.FetchedAt.IsZero() {
		t.Fatalf("expected fetched_at to be set")
	}
}

func TestShoppingListUseCase_GatewayErrors(t *testing.T) {
	t.Run("404 maps to list not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIShoppingGateway(ctrl)
		uc := NewShoppingListUseCase(gw, nil, nil)

		gw.EXPECT().GetShoppingList(gomock.Any(), int64(9)).Return(entities.ShoppingList{}, &statusErr{status: http.StatusNotFound, detail: "Shopping list not found"})

		_, err := uc.Refresh(context.Background(), 9)
		if !errors.Is(err, ErrListNotFound) {
			t.Fatalf("expected ErrListNotFound, got %v", err)
		}
	})

	t.Run("422 keeps server detail", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIShoppingGateway(ctrl)
		uc := NewShoppingListUseCase(gw, nil, nil)

		gw.EXPECT().AddItem(gomock.Any(), int64(1), int64(2), 1).Return(entities.ListItem{}, &statusErr{status: http.StatusUnprocessableEntity, detail: "quantity too large"})

		_, err := uc.AddItem(context.Background(), 1, 2, 1)
		if !errors.Is(err, ErrGatewayRejected) {
			t.Fatalf("expected ErrGatewayRejected, got %v", err)
		}
		var gwErr *GatewayError
		if !errors.As(err, &gwErr) || gwErr.Action != "add item" || gwErr.Detail != "quantity too large" {
			t.Fatalf("unexpected gateway error: %+v", gwErr)
		}
	})

	t.Run("transport error is unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIShoppingGateway(ctrl)
		uc := NewShoppingListUseCase(gw, nil, nil)

		gw.EXPECT().ListCategories(gomock.Any()).Return(nil, errors.New("dial tcp: refused"))

		_, err := uc.ListCategories(context.Background())
		if !errors.Is(err, ErrGatewayUnavailable) {
			t.Fatalf("expected ErrGatewayUnavailable, got %v", err)
		}
	})
}

func TestShoppingListUseCase_Optimize(t *testing.T) {
	t.Run("requires a budget", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIShoppingGateway(ctrl)
		uc := NewShoppingListUseCase(gw, nil, nil)

		gw.EXPECT().GetShoppingList(gomock.Any(), int64(2)).Return(entities.ShoppingList{ID: 2}, nil)

		_, err := uc.Optimize(context.Background(), 2)
		if !errors.Is(err, ErrBudgetRequired) {
			t.Fatalf("expected ErrBudgetRequired, got %v", err)
		}
	})

	t.Run("busy list is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIShoppingGateway(ctrl)
		guard := NewListGuard()
		uc := NewShoppingListUseCase(gw, guard, nil)

		if err := guard.TryAcquire(2, "substitution review"); err != nil {
			t.Fatalf("acquire: %v", err)
		}
		_, err := uc.Optimize(context.Background(), 2)
		if !errors.Is(err, ErrListBusy) {
			t.Fatalf("expected ErrListBusy, got %v", err)
		}
	})

	t.Run("runs with list budget and refreshes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIShoppingGateway(ctrl)
		guard := NewListGuard()
		uc := NewShoppingListUseCase(gw, guard, nil)

		list := entities.ShoppingList{ID: 2, Budget: 5000, TotalCost: 6000}
		optimized := entities.ShoppingList{ID: 2, Budget: 5000, TotalCost: 4800, IsOptimized: true}
		gomock.InOrder(
			gw.EXPECT().GetShoppingList(gomock.Any(), int64(2)).Return(list, nil),
			gw.EXPECT().Optimize(gomock.Any(), int64(2), 5000.0).Return(entities.OptimizationResult{SelectedItems: 3, TotalCost: 4800, AverageEcoScore: 72}, nil),
			gw.EXPECT().GetShoppingList(gomock.Any(), int64(2)).Return(optimized, nil),
		)

		report, err := uc.Optimize(context.Background(), 2)
		if err != nil {
			t.Fatalf("expected nil err, got %v", err)
		}
		if report.Result.SelectedItems != 3 || !report.State.List.IsOptimized || report.State.Budget.Status != entities.BudgetStatusNear {
			t.Fatalf("unexpected report: %+v", report)
		}
		if _, busy := guard.Holder(2); busy {
			t.Fatalf("guard should be released")
		}
	})
}

func TestShoppingListUseCase_RequestSubstitutions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gw := mock_interfaces.NewMockIShoppingGateway(ctrl)
	uc := NewShoppingListUseCase(gw, nil, nil)

	good1 := entities.SubstitutionCandidate{Original: entities.Product{ID: 1, EcoScore: 40}, Substitute: entities.Product{ID: 2, EcoScore: 60}}
	equal := entities.SubstitutionCandidate{Original: entities.Product{ID: 3, EcoScore: 60}, Substitute: entities.Product{ID: 4, EcoScore: 60}}
	good2 := entities.SubstitutionCandidate{Original: entities.Product{ID: 5, EcoScore: 10}, Substitute: entities.Product{ID: 6, EcoScore: 90}}

	gw.EXPECT().Substitute(gomock.Any(), int64(4), true).Return([]entities.SubstitutionCandidate{good1, equal, good2}, nil)

	got, err := uc.RequestSubstitutions(context.Background(), 4, true)
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if len(got) != 2 || got[0].Original.ID != 1 || got[1].Original.ID != 5 {
		t.Fatalf("expected server order without non-improving candidates, got %+v", got)
	}
}

func TestShoppingListUseCase_DeleteWhileBusy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gw := mock_interfaces.NewMockIShoppingGateway(ctrl)
	guard := NewListGuard()
	uc := NewShoppingListUseCase(gw, guard, nil)

	_ = guard.TryAcquire(6, "optimize")
	if err := uc.DeleteShoppingList(context.Background(), 6); !errors.Is(err, ErrListBusy) {
		t.Fatalf("expected ErrListBusy, got %v", err)
	}

	guard.Release(6)
	gw.EXPECT().DeleteShoppingList(gomock.Any(), int64(6)).Return(nil)
	if err := uc.DeleteShoppingList(context.Background(), 6); err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if _, busy := guard.Holder(6); busy {
		t.Fatalf("guard should be released after delete")
	}
}

func TestShoppingListUseCase_DeleteHoldsGuard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gw := mock_interfaces.NewMockIShoppingGateway(ctrl)
	guard := NewListGuard()
	uc := NewShoppingListUseCase(gw, guard, nil)

	var startErr error
	gw.EXPECT().DeleteShoppingList(gomock.Any(), int64(6)).DoAndReturn(func(_ context.Context, _ int64) error {
		// a review starting while the DELETE is in flight must be refused
		startErr = guard.TryAcquire(6, "substitution review")
		return nil
	})

	if err := uc.DeleteShoppingList(context.Background(), 6); err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if !errors.Is(startErr, ErrListBusy) {
		t.Fatalf("expected ErrListBusy during delete, got %v", startErr)
	}
	if _, busy := guard.Holder(6); busy {
		t.Fatalf("guard should be released after delete")
	}

	t.Run("failed delete releases the guard", func(t *testing.T) {
		gw.EXPECT().DeleteShoppingList(gomock.Any(), int64(6)).Return(&statusErr{status: 404, detail: "Shopping list not found"})
		if err := uc.DeleteShoppingList(context.Background(), 6); !errors.Is(err, ErrListNotFound) {
			t.Fatalf("expected ErrListNotFound, got %v", err)
		}
		if _, busy := guard.Holder(6); busy {
			t.Fatalf("guard should be released after failed delete")
		}
	})
}

func TestShoppingListUseCase_ProductPassthroughs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gw := mock_interfaces.NewMockIShoppingGateway(ctrl)
	uc := NewShoppingListUseCase(gw, nil, nil)

	gw.EXPECT().ListProducts(gomock.Any(), entities.ProductFilter{Category: "dairy", Limit: defaultProductLimit}).Return([]entities.Product{{ID: 1}}, nil)
	gw.EXPECT().GetProductSubstitutes(gomock.Any(), int64(1), maxSubstituteCount).Return(nil, nil)

	products, err := uc.ListProducts(context.Background(), entities.ProductFilter{Category: " dairy "})
	if err != nil || len(products) != 1 {
		t.Fatalf("unexpected products: %+v err=%v", products, err)
	}
	if _, err := uc.GetProductSubstitutes(context.Background(), 1, 1000); err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
}
