package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"liquiverde_bff/internal/adapter/http/handlers/mocks"
	"liquiverde_bff/internal/domain/entities"
	"liquiverde_bff/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func listState(id int64, budget, total float64) entities.ListState {
	return entities.NewListState(entities.ShoppingList{ID: id, Name: "weekly", Budget: budget, TotalCost: total}, time.Now().UTC())
}

func newListRouter(uc *mocks.MockIShoppingListUseCase) *gin.Engine {
	h := NewShoppingListHandler(uc)
	r := gin.New()
	r.GET("/v1/shopping-lists", h.ListShoppingLists)
	r.POST("/v1/shopping-lists", h.CreateShoppingList)
	r.GET("/v1/shopping-lists/:id", h.GetShoppingList)
	r.PATCH("/v1/shopping-lists/:id", h.UpdateShoppingList)
	r.DELETE("/v1/shopping-lists/:id", h.DeleteShoppingList)
	r.POST("/v1/shopping-lists/:id/items", h.AddItem)
	r.PATCH("/v1/shopping-lists/:id/items/:item_id", h.UpdateItemQuantity)
	r.DELETE("/v1/shopping-lists/:id/items/:item_id", h.RemoveItem)
	r.POST("/v1/shopping-lists/:id/optimize", h.Optimize)
	return r
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestShoppingListHandler_GetShoppingList(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIShoppingListUseCase(ctrl)

		w := doJSON(newListRouter(uc), http.MethodGet, "/v1/shopping-lists/abc", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIShoppingListUseCase(ctrl)
		uc.EXPECT().Refresh(gomock.Any(), int64(7)).Return(entities.ListState{}, &usecase.GatewayError{Action: "load list", Kind: usecase.ErrListNotFound})

		w := doJSON(newListRouter(uc), http.MethodGet, "/v1/shopping-lists/7", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["code"] != "SHOPPING_LIST_NOT_FOUND" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("success with budget summary", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIShoppingListUseCase(ctrl)
		uc.EXPECT().Refresh(gomock.Any(), int64(7)).Return(listState(7, 1000, 1250), nil)

		w := doJSON(newListRouter(uc), http.MethodGet, "/v1/shopping-lists/7", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		summary, _ := body["budget_summary"].(map[string]any)
		if summary["status"] != "over" || summary["utilization_percent"].(float64) != 125 {
			t.Fatalf("unexpected budget summary: %v", body["budget_summary"])
		}
	})
}

func TestShoppingListHandler_CreateShoppingList(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing budget", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIShoppingListUseCase(ctrl)

		w := doJSON(newListRouter(uc), http.MethodPost, "/v1/shopping-lists", `{"name":"weekly"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase validation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIShoppingListUseCase(ctrl)
		uc.EXPECT().CreateShoppingList(gomock.Any(), "", -5.0).Return(entities.ListState{}, usecase.ErrInvalidListName)

		w := doJSON(newListRouter(uc), http.MethodPost, "/v1/shopping-lists", `{"name":"   ","budget":-5}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIShoppingListUseCase(ctrl)
		uc.EXPECT().CreateShoppingList(gomock.Any(), "weekly", 5000.0).Return(listState(11, 5000, 0), nil)

		w := doJSON(newListRouter(uc), http.MethodPost, "/v1/shopping-lists", `{"name":" weekly ","budget":5000}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["id"].(float64) != 11 || body["budget"].(float64) != 5000 {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestShoppingListHandler_UpdateAndDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("update budget only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIShoppingListUseCase(ctrl)
		uc.EXPECT().UpdateShoppingList(gomock.Any(), int64(3), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, name *string, budget *float64) (entities.ListState, error) {
				if name != nil || budget == nil || *budget != 800 {
					t.Errorf("unexpected update name=%v budget=%v", name, budget)
				}
				return listState(3, 800, 0), nil
			})

		w := doJSON(newListRouter(uc), http.MethodPatch, "/v1/shopping-lists/3", `{"budget":800}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("delete busy list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIShoppingListUseCase(ctrl)
		uc.EXPECT().DeleteShoppingList(gomock.Any(), int64(3)).Return(usecase.ErrListBusy)

		w := doJSON(newListRouter(uc), http.MethodDelete, "/v1/shopping-lists/3", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIShoppingListUseCase(ctrl)
		uc.EXPECT().DeleteShoppingList(gomock.Any(), int64(3)).Return(nil)

		w := doJSON(newListRouter(uc), http.MethodDelete, "/v1/shopping-lists/3", "")
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestShoppingListHandler_Items(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("add defaults quantity to one", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIShoppingListUseCase(ctrl)
		uc.EXPECT().AddItem(gomock.Any(), int64(4), int64(9), 1).Return(listState(4, 0, 1990), nil)

		w := doJSON(newListRouter(uc), http.MethodPost, "/v1/shopping-lists/4/items", `{"product_id":9}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("add rejected by service shows its detail", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIShoppingListUseCase(ctrl)
		uc.EXPECT().AddItem(gomock.Any(), int64(4), int64(9), 2).
			Return(entities.ListState{}, &usecase.GatewayError{Action: "add item", Kind: usecase.ErrGatewayRejected, Detail: "quantity: must be positive"})

		w := doJSON(newListRouter(uc), http.MethodPost, "/v1/shopping-lists/4/items", `{"product_id":9,"quantity":2}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["message"] != "add item: quantity: must be positive" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("update quantity invalid item id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIShoppingListUseCase(ctrl)

		w := doJSON(newListRouter(uc), http.MethodPatch, "/v1/shopping-lists/4/items/0", `{"quantity":3}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("update quantity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIShoppingListUseCase(ctrl)
		uc.EXPECT().UpdateItemQuantity(gomock.Any(), int64(4), int64(40), 3).Return(listState(4, 0, 0), nil)

		w := doJSON(newListRouter(uc), http.MethodPatch, "/v1/shopping-lists/4/items/40", `{"quantity":3}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("remove while service is down", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIShoppingListUseCase(ctrl)
		uc.EXPECT().RemoveItem(gomock.Any(), int64(4), int64(40)).
			Return(entities.ListState{}, &usecase.GatewayError{Action: "remove item", Kind: usecase.ErrGatewayUnavailable, Err: errors.New("connection refused")})

		w := doJSON(newListRouter(uc), http.MethodDelete, "/v1/shopping-lists/4/items/40", "")
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}

func TestShoppingListHandler_Optimize(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("budget required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIShoppingListUseCase(ctrl)
		uc.EXPECT().Optimize(gomock.Any(), int64(2)).Return(entities.OptimizationReport{}, usecase.ErrBudgetRequired)

		w := doJSON(newListRouter(uc), http.MethodPost, "/v1/shopping-lists/2/optimize", "")
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIShoppingListUseCase(ctrl)
		uc.EXPECT().Optimize(gomock.Any(), int64(2)).Return(entities.OptimizationReport{
			Result: entities.OptimizationResult{SelectedItems: 3, TotalCost: 900},
			State:  listState(2, 1000, 900),
		}, nil)

		w := doJSON(newListRouter(uc), http.MethodPost, "/v1/shopping-lists/2/optimize", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		result, _ := body["result"].(map[string]any)
		if result["selected_items"].(float64) != 3 {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}
