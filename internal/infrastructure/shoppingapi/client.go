package shoppingapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"liquiverde_bff/internal/domain/entities"
	"liquiverde_bff/internal/usecase/interfaces"
)

const (
	defaultTimeout = 10 * time.Second
	maxBodyBytes   = 4 << 20
)

// Client talks to the shopping service REST API (products, lists, optimizer,
// substitutions).
type Client struct {
	baseURL string
	tokens  *TokenSource
	http    *http.Client
}

var _ interfaces.IShoppingGateway = (*Client)(nil)

// NewClient creates a reusable client. baseURL includes the /api prefix.
// tokens may be nil for unauthenticated deployments.
func NewClient(baseURL string, timeout time.Duration, tokens *TokenSource) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) ListProducts(ctx context.Context, filter entities.ProductFilter) ([]entities.Product, error) {
	q := url.Values{}
	if filter.Category != "" {
		q.Set("category", filter.Category)
	}
	if filter.Search != "" {
		q.Set("search", filter.Search)
	}
	if filter.MinEcoScore != nil {
		q.Set("min_eco_score", strconv.FormatFloat(*filter.MinEcoScore, 'f', -1, 64))
	}
	if filter.Skip > 0 {
		q.Set("skip", strconv.Itoa(filter.Skip))
	}
	if filter.Limit > 0 {
		q.Set("limit", strconv.Itoa(filter.Limit))
	}

	var out []entities.Product
	if err := c.do(ctx, http.MethodGet, "/products/", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListCategories(ctx context.Context) ([]entities.Category, error) {
	var out []entities.Category
	if err := c.do(ctx, http.MethodGet, "/products/categories", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetProduct(ctx context.Context, productID int64) (entities.Product, error) {
	var out entities.Product
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d", productID), nil, nil, &out); err != nil {
		return entities.Product{}, err
	}
	return out, nil
}

func (c *Client) GetSustainability(ctx context.Context, productID int64) (entities.SustainabilityScore, error) {
	var out entities.SustainabilityScore
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d/sustainability", productID), nil, nil, &out); err != nil {
		return entities.SustainabilityScore{}, err
	}
	return out, nil
}

func (c *Client) GetProductSubstitutes(ctx context.Context, productID int64, maxResults int) ([]entities.ProductSubstitute, error) {
	q := url.Values{}
	if maxResults > 0 {
		q.Set("max_results", strconv.Itoa(maxResults))
	}
	var out []entities.ProductSubstitute
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d/substitutes", productID), q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListShoppingLists(ctx context.Context) ([]entities.ShoppingList, error) {
	var out []shoppingListPayload
	if err := c.do(ctx, http.MethodGet, "/shopping-lists/", nil, nil, &out); err != nil {
		return nil, err
	}
	lists := make([]entities.ShoppingList, 0, len(out))
	for _, p := range out {
		lists = append(lists, p.toEntity())
	}
	return lists, nil
}

func (c *Client) GetShoppingList(ctx context.Context, listID int64) (entities.ShoppingList, error) {
	var out shoppingListPayload
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/shopping-lists/%d", listID), nil, nil, &out); err != nil {
		return entities.ShoppingList{}, err
	}
	return out.toEntity(), nil
}

func (c *Client) CreateShoppingList(ctx context.Context, name string, budget float64) (entities.ShoppingList, error) {
	body := map[string]any{"name": name}
	if budget > 0 {
		body["budget"] = budget
	}
	var out shoppingListPayload
	if err := c.do(ctx, http.MethodPost, "/shopping-lists/", nil, body, &out); err != nil {
		return entities.ShoppingList{}, err
	}
	return out.toEntity(), nil
}

func (c *Client) UpdateShoppingList(ctx context.Context, listID int64, name *string, budget *float64) error {
	body := map[string]any{}
	if name != nil {
		body["name"] = *name
	}
	if budget != nil {
		body["budget"] = *budget
	}
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/shopping-lists/%d", listID), nil, body, nil)
}

func (c *Client) DeleteShoppingList(ctx context.Context, listID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/shopping-lists/%d", listID), nil, nil, nil)
}

// AddItem adds productID to the list. When the product is already listed the
// service merges the quantities into the existing line.
func (c *Client) AddItem(ctx context.Context, listID, productID int64, quantity int) (entities.ListItem, error) {
	body := map[string]any{"product_id": productID, "quantity": quantity}
	var out struct {
		Message string `json:"message"`
		ItemID  int64  `json:"item_id"`
	}
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/shopping-lists/%d/items", listID), nil, body, &out); err != nil {
		return entities.ListItem{}, err
	}
	return entities.ListItem{ID: out.ItemID, Product: entities.Product{ID: productID}, Quantity: quantity}, nil
}

func (c *Client) UpdateItemQuantity(ctx context.Context, listID, itemID int64, quantity int) error {
	body := map[string]any{"quantity": quantity}
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/shopping-lists/%d/items/%d", listID, itemID), nil, body, nil)
}

func (c *Client) RemoveItem(ctx context.Context, listID, itemID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/shopping-lists/%d/items/%d", listID, itemID), nil, nil, nil)
}

func (c *Client) Optimize(ctx context.Context, listID int64, budget float64) (entities.OptimizationResult, error) {
	body := map[string]any{"budget": budget}
	var out optimizationPayload
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/shopping-lists/%d/optimize", listID), nil, body, &out); err != nil {
		return entities.OptimizationResult{}, err
	}
	return out.toEntity(), nil
}

func (c *Client) Substitute(ctx context.Context, listID int64, aggressive bool) ([]entities.SubstitutionCandidate, error) {
	q := url.Values{}
	if aggressive {
		q.Set("aggressive", "true")
	}
	var out struct {
		Substitutions []entities.SubstitutionCandidate `json:"substitutions"`
	}
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/shopping-lists/%d/substitute", listID), q, nil, &out); err != nil {
		return nil, err
	}
	return out.Substitutions, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload any, v any) error {
	err := c.doOnce(ctx, method, path, query, payload, v)
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized && c.tokens != nil && c.tokens.static == "" {
		log.Printf("[shopping][client] unauthorized, renewing token method=%s path=%s", method, path)
		c.tokens.Invalidate()
		return c.doOnce(ctx, method, path, query, payload, v)
	}
	return err
}

func (c *Client) doOnce(ctx context.Context, method, path string, query url.Values, payload any, v any) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal payload: %w", err)
		}
		body = bytes.NewReader(b)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return err
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("[shopping][client] request failed method=%s path=%s err=%v", method, path, err)
		return &APIError{Method: method, Path: path, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return &APIError{Method: method, Path: path, Err: fmt.Errorf("read response: %w", err)}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail := parseDetail(raw)
		log.Printf("[shopping][client] non-2xx method=%s path=%s status=%d detail=%q elapsed=%s", method, path, resp.StatusCode, detail, time.Since(start))
		return &APIError{Method: method, Path: path, StatusCode: resp.StatusCode, Detail: detail}
	}

	if v == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode response %s %s: %w", method, path, err)
	}
	return nil
}

// shoppingListPayload mirrors the list resource. budget is null for lists
// created without one.
type shoppingListPayload struct {
	ID            int64               `json:"id"`
	Name          string              `json:"name"`
	Budget        *float64            `json:"budget"`
	IsOptimized   bool                `json:"is_optimized"`
	TotalCost     float64             `json:"total_cost"`
	TotalSavings  float64             `json:"total_savings"`
	TotalEcoScore float64             `json:"total_eco_score"`
	TotalCarbon   float64             `json:"total_carbon"`
	Items         []entities.ListItem `json:"items"`
}

func (p shoppingListPayload) toEntity() entities.ShoppingList {
	l := entities.ShoppingList{
		ID:              p.ID,
		Name:            p.Name,
		IsOptimized:     p.IsOptimized,
		TotalCost:       p.TotalCost,
		TotalSavings:    p.TotalSavings,
		AverageEcoScore: p.TotalEcoScore,
		TotalCarbon:     p.TotalCarbon,
		Items:           p.Items,
	}
	if p.Budget != nil {
		l.Budget = *p.Budget
	}
	return l
}

// optimizationPayload accepts both average_eco_score and total_eco_score for
// the average score of the selection.
type optimizationPayload struct {
	SelectedItems   int      `json:"selected_items"`
	TotalCost       float64  `json:"total_cost"`
	AverageEcoScore *float64 `json:"average_eco_score"`
	TotalEcoScore   *float64 `json:"total_eco_score"`
	Savings         float64  `json:"savings"`
	Details         struct {
		BudgetUsage float64 `json:"budget_usage"`
	} `json:"optimization_details"`
}

func (p optimizationPayload) toEntity() entities.OptimizationResult {
	r := entities.OptimizationResult{
		SelectedItems: p.SelectedItems,
		TotalCost:     p.TotalCost,
		Savings:       p.Savings,
		BudgetUsage:   p.Details.BudgetUsage,
	}
	switch {
	case p.AverageEcoScore != nil:
		r.AverageEcoScore = *p.AverageEcoScore
	case p.TotalEcoScore != nil:
		r.AverageEcoScore = *p.TotalEcoScore
	}
	return r
}
