package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CustomerRepo interface {
	Create(ctx context.Context, c *Customer) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)
	List(ctx context.Context) ([]Customer, error)
	Count(ctx context.Context) (int64, error)
}

type ProductRepo interface {
	Create(ctx context.Context, p *Product) error
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Product, error)
	List(ctx context.Context) ([]Product, error)
	RestockBelow(ctx context.Context, threshold, amount int) ([]Product, error)
}

type OrderRepo interface {
	// CreateWithProducts persists the order and its product links in one
	// transaction; nothing is visible unless everything is.
	CreateWithProducts(ctx context.Context, o *Order, products []Product) error
	List(ctx context.Context) ([]Order, error)
	ListSince(ctx context.Context, since time.Time) ([]Order, error)
	Count(ctx context.Context) (int64, error)
	SumTotals(ctx context.Context) (decimal.Decimal, error)
}
