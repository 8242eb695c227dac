package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"liquiverde_bff/internal/domain/entities"
	"liquiverde_bff/internal/usecase/interfaces"
)

var (
	ErrInvalidListID        = errors.New("invalid shopping list id")
	ErrInvalidListName      = errors.New("invalid shopping list name")
	ErrInvalidBudget        = errors.New("budget must be greater than zero")
	ErrInvalidQuantity      = errors.New("quantity must be at least 1")
	ErrInvalidProductID     = errors.New("invalid product id")
	ErrInvalidItemID        = errors.New("invalid list item id")
	ErrInvalidFilter        = errors.New("invalid product filter")
	ErrNothingToUpdate      = errors.New("nothing to update")
	ErrBudgetRequired       = errors.New("shopping list has no budget")
	ErrGatewayMisconfigured = errors.New("shopping gateway not configured")
)

const (
	defaultProductLimit    = 100
	maxProductLimit        = 500
	defaultSubstituteCount = 5
	maxSubstituteCount     = 20

	ListEventUpdated = "list.updated"
	ListEventDeleted = "list.deleted"
)

// IShoppingListUseCase is the list aggregate plus the product catalog
// passthroughs used by the browser.
//
// Rules:
//   - Every write is followed by a full re-fetch of the list; the returned
//     ListState is always what the shopping service reports.
//   - Optimize and substitution review never run concurrently on the same list.

type IShoppingListUseCase interface {
	ListProducts(ctx context.Context, filter entities.ProductFilter) ([]entities.Product, error)
	ListCategories(ctx context.Context) ([]entities.Category, error)
	GetProduct(ctx context.Context, productID int64) (entities.Product, error)
	GetSustainability(ctx context.Context, productID int64) (entities.SustainabilityScore, error)
	GetProductSubstitutes(ctx context.Context, productID int64, maxResults int) ([]entities.ProductSubstitute, error)

	ListShoppingLists(ctx context.Context) ([]entities.ListState, error)
	Refresh(ctx context.Context, listID int64) (entities.ListState, error)
	CreateShoppingList(ctx context.Context, name string, budget float64) (entities.ListState, error)
	UpdateShoppingList(ctx context.Context, listID int64, name *string, budget *float64) (entities.ListState, error)
	DeleteShoppingList(ctx context.Context, listID int64) error

	AddItem(ctx context.Context, listID, productID int64, quantity int) (entities.ListState, error)
	UpdateItemQuantity(ctx context.Context, listID, itemID int64, quantity int) (entities.ListState, error)
	RemoveItem(ctx context.Context, listID, itemID int64) (entities.ListState, error)

	Optimize(ctx context.Context, listID int64) (entities.OptimizationReport, error)
	RequestSubstitutions(ctx context.Context, listID int64, aggressive bool) ([]entities.SubstitutionCandidate, error)
}

type ShoppingListUseCase struct {
	gateway  interfaces.IShoppingGateway
	guard    *ListGuard
	notifier interfaces.IListNotifier
	now      func() time.Time
}

var _ IShoppingListUseCase = (*ShoppingListUseCase)(nil)

// NewShoppingListUseCase wires the list aggregate. notifier may be nil.
func NewShoppingListUseCase(gateway interfaces.IShoppingGateway, guard *ListGuard, notifier interfaces.IListNotifier) *ShoppingListUseCase {
	if guard == nil {
		guard = NewListGuard()
	}
	return &ShoppingListUseCase{
		gateway:  gateway,
		guard:    guard,
		notifier: notifier,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (u *ShoppingListUseCase) ListProducts(ctx context.Context, filter entities.ProductFilter) ([]entities.Product, error) {
	if u.gateway == nil {
		return nil, ErrGatewayMisconfigured
	}
	filter.Category = strings.TrimSpace(filter.Category)
	filter.Search = strings.TrimSpace(filter.Search)
	if filter.Skip < 0 || filter.Limit < 0 {
		return nil, ErrInvalidFilter
	}
	if filter.MinEcoScore != nil && (*filter.MinEcoScore < 0 || *filter.MinEcoScore > 100) {
		return nil, ErrInvalidFilter
	}
	if filter.Limit == 0 {
		filter.Limit = defaultProductLimit
	}
	if filter.Limit > maxProductLimit {
		filter.Limit = maxProductLimit
	}

	products, err := u.gateway.ListProducts(ctx, filter)
	if err != nil {
		log.Printf("[shopping][usecase] list products failed category=%q search=%q err=%v", filter.Category, filter.Search, err)
		return nil, mapGatewayError("list products", err, nil)
	}
	return products, nil
}

func (u *ShoppingListUseCase) ListCategories(ctx context.Context) ([]entities.Category, error) {
	if u.gateway == nil {
		return nil, ErrGatewayMisconfigured
	}
	categories, err := u.gateway.ListCategories(ctx)
	if err != nil {
		return nil, mapGatewayError("list categories", err, nil)
	}
	return categories, nil
}

func (u *ShoppingListUseCase) GetProduct(ctx context.Context, productID int64) (entities.Product, error) {
	if productID <= 0 {
		return entities.Product{}, ErrInvalidProductID
	}
	if u.gateway == nil {
		return entities.Product{}, ErrGatewayMisconfigured
	}
	p, err := u.gateway.GetProduct(ctx, productID)
	if err != nil {
		return entities.Product{}, mapGatewayError("load product", err, ErrProductNotFound)
	}
	return p, nil
}

func (u *ShoppingListUseCase) GetSustainability(ctx context.Context, productID int64) (entities.SustainabilityScore, error) {
	if productID <= 0 {
		return entities.SustainabilityScore{}, ErrInvalidProductID
	}
	if u.gateway == nil {
		return entities.SustainabilityScore{}, ErrGatewayMisconfigured
	}
	s, err := u.gateway.GetSustainability(ctx, productID)
	if err != nil {
		return entities.SustainabilityScore{}, mapGatewayError("load sustainability", err, ErrProductNotFound)
	}
	return s, nil
}

func (u *ShoppingListUseCase) GetProductSubstitutes(ctx context.Context, productID int64, maxResults int) ([]entities.ProductSubstitute, error) {
	if productID <= 0 {
		return nil, ErrInvalidProductID
	}
	if u.gateway == nil {
		return nil, ErrGatewayMisconfigured
	}
	if maxResults <= 0 {
		maxResults = defaultSubstituteCount
	}
	if maxResults > maxSubstituteCount {
		maxResults = maxSubstituteCount
	}
	subs, err := u.gateway.GetProductSubstitutes(ctx, productID, maxResults)
	if err != nil {
		return nil, mapGatewayError("load substitutes", err, ErrProductNotFound)
	}
	return subs, nil
}

func (u *ShoppingListUseCase) ListShoppingLists(ctx context.Context) ([]entities.ListState, error) {
	if u.gateway == nil {
		return nil, ErrGatewayMisconfigured
	}
	lists, err := u.gateway.ListShoppingLists(ctx)
	if err != nil {
		log.Printf("[shopping][usecase] list shopping lists failed err=%v", err)
		return nil, mapGatewayError("list shopping lists", err, nil)
	}
	now := u.now()
	out := make([]entities.ListState, 0, len(lists))
	for _, l := range lists {
		out = append(out, entities.NewListState(l, now))
	}
	return out, nil
}

// Refresh re-fetches the whole list. There is no incremental patching.
func (u *ShoppingListUseCase) Refresh(ctx context.Context, listID int64) (entities.ListState, error) {
	if listID <= 0 {
		return entities.ListState{}, ErrInvalidListID
	}
	if u.gateway == nil {
		return entities.ListState{}, ErrGatewayMisconfigured
	}
	list, err := u.gateway.GetShoppingList(ctx, listID)
	if err != nil {
		log.Printf("[shopping][usecase] refresh failed list_id=%d err=%v", listID, err)
		return entities.ListState{}, mapGatewayError("load shopping list", err, ErrListNotFound)
	}
	return entities.NewListState(list, u.now()), nil
}

func (u *ShoppingListUseCase) CreateShoppingList(ctx context.Context, name string, budget float64) (entities.ListState, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.ListState{}, ErrInvalidListName
	}
	if budget <= 0 {
		return entities.ListState{}, ErrInvalidBudget
	}
	if u.gateway == nil {
		return entities.ListState{}, ErrGatewayMisconfigured
	}

	created, err := u.gateway.CreateShoppingList(ctx, name, budget)
	if err != nil {
		log.Printf("[shopping][usecase] create list failed name=%q err=%v", name, err)
		return entities.ListState{}, mapGatewayError("create shopping list", err, nil)
	}
	log.Printf("[shopping][usecase] list created list_id=%d budget=%.2f", created.ID, budget)
	return u.refreshAfterWrite(ctx, created.ID)
}

func (u *ShoppingListUseCase) UpdateShoppingList(ctx context.Context, listID int64, name *string, budget *float64) (entities.ListState, error) {
	if listID <= 0 {
		return entities.ListState{}, ErrInvalidListID
	}
	if name == nil && budget == nil {
		return entities.ListState{}, ErrNothingToUpdate
	}
	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			return entities.ListState{}, ErrInvalidListName
		}
		name = &trimmed
	}
	if budget != nil && *budget <= 0 {
		return entities.ListState{}, ErrInvalidBudget
	}
	if u.gateway == nil {
		return entities.ListState{}, ErrGatewayMisconfigured
	}

	if err := u.gateway.UpdateShoppingList(ctx, listID, name, budget); err != nil {
		log.Printf("[shopping][usecase] update list failed list_id=%d err=%v", listID, err)
		return entities.ListState{}, mapGatewayError("update shopping list", err, ErrListNotFound)
	}
	return u.refreshAfterWrite(ctx, listID)
}

func (u *ShoppingListUseCase) DeleteShoppingList(ctx context.Context, listID int64) error {
	if listID <= 0 {
		return ErrInvalidListID
	}
	if u.gateway == nil {
		return ErrGatewayMisconfigured
	}
	if err := u.guard.TryAcquire(listID, "delete"); err != nil {
		return err
	}
	defer u.guard.Release(listID)

	if err := u.gateway.DeleteShoppingList(ctx, listID); err != nil {
		log.Printf("[shopping][usecase] delete list failed list_id=%d err=%v", listID, err)
		return mapGatewayError("delete shopping list", err, ErrListNotFound)
	}
	log.Printf("[shopping][usecase] list deleted list_id=%d", listID)
	u.notify(listID, ListEventDeleted, map[string]int64{"list_id": listID})
	return nil
}

func (u *ShoppingListUseCase) AddItem(ctx context.Context, listID, productID int64, quantity int) (entities.ListState, error) {
	if listID <= 0 {
		return entities.ListState{}, ErrInvalidListID
	}
	if productID <= 0 {
		return entities.ListState{}, ErrInvalidProductID
	}
	if quantity < 1 {
		return entities.ListState{}, ErrInvalidQuantity
	}
	if u.gateway == nil {
		return entities.ListState{}, ErrGatewayMisconfigured
	}

	if _, err := u.gateway.AddItem(ctx, listID, productID, quantity); err != nil {
		log.Printf("[shopping][usecase] add item failed list_id=%d product_id=%d err=%v", listID, productID, err)
		return entities.ListState{}, mapGatewayError("add item", err, ErrListNotFound)
	}
	return u.refreshAfterWrite(ctx, listID)
}

func (u *ShoppingListUseCase) UpdateItemQuantity(ctx context.Context, listID, itemID int64, quantity int) (entities.ListState, error) {
	if listID <= 0 {
		return entities.ListState{}, ErrInvalidListID
	}
	if itemID <= 0 {
		return entities.ListState{}, ErrInvalidItemID
	}
	if quantity < 1 {
		return entities.ListState{}, ErrInvalidQuantity
	}
	if u.gateway == nil {
		return entities.ListState{}, ErrGatewayMisconfigured
	}

	if err := u.gateway.UpdateItemQuantity(ctx, listID, itemID, quantity); err != nil {
		log.Printf("[shopping][usecase] update quantity failed list_id=%d item_id=%d err=%v", listID, itemID, err)
		return entities.ListState{}, mapGatewayError("update item quantity", err, ErrItemNotFound)
	}
	return u.refreshAfterWrite(ctx, listID)
}

func (u *ShoppingListUseCase) RemoveItem(ctx context.Context, listID, itemID int64) (entities.ListState, error) {
	if listID <= 0 {
		return entities.ListState{}, ErrInvalidListID
	}
	if itemID <= 0 {
		return entities.ListState{}, ErrInvalidItemID
	}
	if u.gateway == nil {
		return entities.ListState{}, ErrGatewayMisconfigured
	}

	if err := u.gateway.RemoveItem(ctx, listID, itemID); err != nil {
		log.Printf("[shopping][usecase] remove item failed list_id=%d item_id=%d err=%v", listID, itemID, err)
		return entities.ListState{}, mapGatewayError("remove item", err, ErrItemNotFound)
	}
	return u.refreshAfterWrite(ctx, listID)
}

// Optimize runs the budget optimizer for listID using the list's own budget.
func (u *ShoppingListUseCase) Optimize(ctx context.Context, listID int64) (entities.OptimizationReport, error) {
	if listID <= 0 {
		return entities.OptimizationReport{}, ErrInvalidListID
	}
	if u.gateway == nil {
		return entities.OptimizationReport{}, ErrGatewayMisconfigured
	}
	if err := u.guard.TryAcquire(listID, "optimize"); err != nil {
		log.Printf("[shopping][usecase] optimize rejected list_id=%d err=%v", listID, err)
		return entities.OptimizationReport{}, err
	}
	defer u.guard.Release(listID)

	state, err := u.Refresh(ctx, listID)
	if err != nil {
		return entities.OptimizationReport{}, err
	}
	if !state.Budget.HasBudget {
		return entities.OptimizationReport{}, ErrBudgetRequired
	}

	log.Printf("[shopping][usecase] optimize start list_id=%d budget=%.2f items=%d", listID, state.List.Budget, len(state.List.Items))
	result, err := u.gateway.Optimize(ctx, listID, state.List.Budget)
	if err != nil {
		log.Printf("[shopping][usecase] optimize failed list_id=%d err=%v", listID, err)
		return entities.OptimizationReport{}, mapGatewayError("optimize list", err, ErrListNotFound)
	}
	log.Printf("[shopping][usecase] optimize done list_id=%d selected=%d total_cost=%.2f avg_eco=%.1f", listID, result.SelectedItems, result.TotalCost, result.AverageEcoScore)

	refreshed, err := u.refreshAfterWrite(ctx, listID)
	if err != nil {
		return entities.OptimizationReport{Result: result}, err
	}
	return entities.OptimizationReport{Result: result, State: refreshed}, nil
}

// RequestSubstitutions returns the server candidates in server order, minus any
// whose substitute does not strictly improve the eco-score.
func (u *ShoppingListUseCase) RequestSubstitutions(ctx context.Context, listID int64, aggressive bool) ([]entities.SubstitutionCandidate, error) {
	if listID <= 0 {
		return nil, ErrInvalidListID
	}
	if u.gateway == nil {
		return nil, ErrGatewayMisconfigured
	}
	candidates, err := u.gateway.Substitute(ctx, listID, aggressive)
	if err != nil {
		log.Printf("[shopping][usecase] substitutions failed list_id=%d err=%v", listID, err)
		return nil, mapGatewayError("request substitutions", err, ErrListNotFound)
	}

	out := make([]entities.SubstitutionCandidate, 0, len(candidates))
	for _, c := range candidates {
		if !c.IsImprovement() {
			log.Printf("[shopping][usecase] dropping non-improving candidate list_id=%d original=%d substitute=%d", listID, c.Original.ID, c.Substitute.ID)
			continue
		}
		out = append(out, c)
	}
	log.Printf("[shopping][usecase] substitutions list_id=%d received=%d kept=%d aggressive=%v", listID, len(candidates), len(out), aggressive)
	return out, nil
}

func (u *ShoppingListUseCase) refreshAfterWrite(ctx context.Context, listID int64) (entities.ListState, error) {
	state, err := u.Refresh(ctx, listID)
	if err != nil {
		return entities.ListState{}, err
	}
	u.notify(listID, ListEventUpdated, state)
	return state, nil
}

func (u *ShoppingListUseCase) notify(listID int64, eventType string, payload any) {
	if u.notifier == nil {
		return
	}
	u.notifier.NotifyList(listID, eventType, payload)
}
