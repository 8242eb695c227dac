package shoppingapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"liquiverde_bff/internal/domain/entities"

	"github.com/golang-jwt/jwt/v5"
)

func TestClient_GetShoppingList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/shopping-lists/7" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer static-token" {
			t.Errorf("unexpected auth header %q", got)
		}
		_, _ = io.WriteString(w, `{
			"id": 7, "name": "weekly", "budget": null, "is_optimized": false,
			"total_cost": 2000, "total_savings": 0, "total_eco_score": 55.5, "total_carbon": 1.2,
			"items": [{"id": 70, "product": {"id": 3, "name": "Milk", "brand": null, "price": 1000, "eco_score": 55.5, "image_url": null},
			           "quantity": 2, "is_substituted": false, "subtotal": 2000}]
		}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/api/", time.Second, NewStaticTokenSource("static-token"))
	list, err := c.GetShoppingList(context.Background(), 7)
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if list.Budget != 0 || list.AverageEcoScore != 55.5 || len(list.Items) != 1 {
		t.Fatalf("unexpected list: %+v", list)
	}
	if it := list.Items[0]; it.ID != 70 || it.Product.ID != 3 || it.Quantity != 2 || it.Subtotal != 2000 {
		t.Fatalf("unexpected item: %+v", it)
	}
}

func TestClient_AddItemAndSubstitute(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/shopping-lists/4/items":
			var body map[string]any
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Errorf("decode body: %v", err)
			}
			if body["product_id"].(float64) != 9 || body["quantity"].(float64) != 3 {
				t.Errorf("unexpected body: %v", body)
			}
			_, _ = io.WriteString(w, `{"message": "Item added successfully", "item_id": 55}`)
		case r.Method == http.MethodPost && r.URL.Path == "/api/shopping-lists/4/substitute":
			if r.URL.Query().Get("aggressive") != "true" {
				t.Errorf("expected aggressive=true, got %q", r.URL.RawQuery)
			}
			_, _ = io.WriteString(w, `{"message": "1 products substituted", "substitutions": [
				{"original": {"id": 1, "name": "A", "price": 1000, "eco_score": 50},
				 "substitute": {"id": 2, "name": "B", "price": 900, "eco_score": 70},
				 "reason": "better score", "savings": 100, "score_improvement": 20}]}`)
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/api", time.Second, nil)

	item, err := c.AddItem(context.Background(), 4, 9, 3)
	if err != nil || item.ID != 55 || item.Quantity != 3 || item.Product.ID != 9 {
		t.Fatalf("unexpected item: %+v err=%v", item, err)
	}

	cands, err := c.Substitute(context.Background(), 4, true)
	if err != nil || len(cands) != 1 {
		t.Fatalf("unexpected candidates: %+v err=%v", cands, err)
	}
	want := entities.SubstitutionCandidate{
		Original:         entities.Product{ID: 1, Name: "A", Price: 1000, EcoScore: 50},
		Substitute:       entities.Product{ID: 2, Name: "B", Price: 900, EcoScore: 70},
		Reason:           "better score",
		Savings:          100,
		ScoreImprovement: 20,
	}
	if cands[0] != want {
		t.Fatalf("expected %+v, got %+v", want, cands[0])
	}
}

func TestClient_Optimize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"message": "List optimized successfully", "selected_items": 4, "total_cost": 4800,
			"total_eco_score": 71.5, "savings": 200, "optimization_details": {"budget_usage": 96}}`)
	}))
	defer srv.Close()

	res, err := NewClient(srv.URL, time.Second, nil).Optimize(context.Background(), 1, 5000)
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if res.SelectedItems != 4 || res.AverageEcoScore != 71.5 || res.BudgetUsage != 96 || res.Savings != 200 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestClient_Errors(t *testing.T) {
	t.Run("string detail", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{"detail": "Shopping list not found"}`)
		}))
		defer srv.Close()

		err := NewClient(srv.URL, time.Second, nil).RemoveItem(context.Background(), 1, 2)
		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected APIError, got %v", err)
		}
		if apiErr.RemoteStatus() != http.StatusNotFound || apiErr.RemoteDetail() != "Shopping list not found" {
			t.Fatalf("unexpected error: %+v", apiErr)
		}
	})

	t.Run("validation detail", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = io.WriteString(w, `{"detail": [{"loc": ["body", "quantity"], "msg": "field required", "type": "missing"}]}`)
		}))
		defer srv.Close()

		err := NewClient(srv.URL, time.Second, nil).UpdateItemQuantity(context.Background(), 1, 2, 3)
		var apiErr *APIError
		if !errors.As(err, &apiErr) || apiErr.Detail != "quantity: field required" {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("transport failure has no status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := srv.URL
		srv.Close()

		_, err := NewClient(url, time.Second, nil).ListCategories(context.Background())
		var apiErr *APIError
		if !errors.As(err, &apiErr) || apiErr.RemoteStatus() != 0 {
			t.Fatalf("expected transport APIError, got %v", err)
		}
	})
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "demo", "exp": exp.Unix()})
	s, err := tok.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return s
}

func TestTokenSource_LoginAndCache(t *testing.T) {
	var logins int32
	token := signedToken(t, time.Now().Add(time.Hour))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			atomic.AddInt32(&logins, 1)
			if err := r.ParseForm(); err != nil {
				t.Errorf("parse form: %v", err)
			}
			if r.PostForm.Get("username") != "demo" || r.PostForm.Get("password") != "secret" {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = io.WriteString(w, `{"detail": "Incorrect username or password"}`)
				return
			}
			_, _ = io.WriteString(w, `{"access_token": "`+token+`", "token_type": "bearer"}`)
		case "/api/products/categories":
			if r.Header.Get("Authorization") != "Bearer "+token {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			_, _ = io.WriteString(w, `[{"name": "dairy", "count": 3}]`)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	ts := NewLoginTokenSource(srv.URL+"/api", "demo", "secret", nil)
	c := NewClient(srv.URL+"/api", time.Second, ts)

	for i := 0; i < 3; i++ {
		cats, err := c.ListCategories(context.Background())
		if err != nil || len(cats) != 1 || cats[0].Name != "dairy" {
			t.Fatalf("unexpected categories: %+v err=%v", cats, err)
		}
	}
	if n := atomic.LoadInt32(&logins); n != 1 {
		t.Fatalf("expected a single login, got %d", n)
	}

	t.Run("bad credentials", func(t *testing.T) {
		bad := NewLoginTokenSource(srv.URL+"/api", "demo", "wrong", nil)
		_, err := bad.Token(context.Background())
		var apiErr *APIError
		if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusUnauthorized || !strings.Contains(apiErr.Detail, "Incorrect") {
			t.Fatalf("expected 401 APIError, got %v", err)
		}
	})
}

func TestTokenSource_RenewsNearExpiry(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	var logins int32
	token := signedToken(t, now.Add(10*time.Minute))
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&logins, 1)
		_, _ = io.WriteString(w, `{"access_token": "`+token+`"}`)
	}))
	defer srv.Close()

	ts := NewLoginTokenSource(srv.URL, "demo", "secret", nil)
	ts.now = func() time.Time { return now }

	if _, err := ts.Token(context.Background()); err != nil {
		t.Fatalf("token: %v", err)
	}
	ts.now = func() time.Time { return now.Add(9 * time.Minute) }
	if _, err := ts.Token(context.Background()); err != nil {
		t.Fatalf("token: %v", err)
	}
	if n := atomic.LoadInt32(&logins); n != 1 {
		t.Fatalf("expected cached token, got %d logins", n)
	}

	ts.now = func() time.Time { return now.Add(10*time.Minute - 10*time.Second) }
	if _, err := ts.Token(context.Background()); err != nil {
		t.Fatalf("token: %v", err)
	}
	if n := atomic.LoadInt32(&logins); n != 2 {
		t.Fatalf("expected renewal inside expiry skew, got %d logins", n)
	}
}

func TestTokenSource_MissingCredentials(t *testing.T) {
	ts := NewLoginTokenSource("http://localhost", "", "", nil)
	if _, err := ts.Token(context.Background()); !errors.Is(err, ErrMissingCredentials) {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
}
