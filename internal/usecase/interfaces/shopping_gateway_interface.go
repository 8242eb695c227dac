package interfaces

import (
	"context"
	"liquiverde_bff/internal/domain/entities"
)

// IShoppingGateway abstracts the external shopping service (products, lists,
// optimization and substitution endpoints).
//
// The service is the authority for every list mutation. Writes are atomic on
// the service side: they either apply fully or return an error.

type IShoppingGateway interface {
	ListProducts(ctx context.Context, filter entities.ProductFilter) ([]entities.Product, error)
	ListCategories(ctx context.Context) ([]entities.Category, error)
	GetProduct(ctx context.Context, productID int64) (entities.Product, error)
	GetSustainability(ctx context.Context, productID int64) (entities.SustainabilityScore, error)
	GetProductSubstitutes(ctx context.Context, productID int64, maxResults int) ([]entities.ProductSubstitute, error)

	ListShoppingLists(ctx context.Context) ([]entities.ShoppingList, error)
	GetShoppingList(ctx context.Context, listID int64) (entities.ShoppingList, error)
	CreateShoppingList(ctx context.Context, name string, budget float64) (entities.ShoppingList, error)
	UpdateShoppingList(ctx context.Context, listID int64, name *string, budget *float64) error
	DeleteShoppingList(ctx context.Context, listID int64) error

	AddItem(ctx context.Context, listID, productID int64, quantity int) (entities.ListItem, error)
	UpdateItemQuantity(ctx context.Context, listID, itemID int64, quantity int) error
	RemoveItem(ctx context.Context, listID, itemID int64) error

	Optimize(ctx context.Context, listID int64, budget float64) (entities.OptimizationResult, error)
	Substitute(ctx context.Context, listID int64, aggressive bool) ([]entities.SubstitutionCandidate, error)
}
