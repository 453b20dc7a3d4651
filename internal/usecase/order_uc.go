package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/phenrril/crmcell/internal/domain"
)

type OrderInput struct {
	CustomerID uuid.UUID   `json:"customer_id"`
	ProductIDs []uuid.UUID `json:"product_ids"`
	OrderDate  *time.Time  `json:"order_date"`
}

type OrderResult struct {
	OK      bool          `json:"ok"`
	Message string        `json:"message,omitempty"`
	Order   *domain.Order `json:"order,omitempty"`
}

type OrderUC struct {
	Orders    domain.OrderRepo
	Products  domain.ProductRepo
	Customers domain.CustomerRepo
}

// Create resolves the customer and every product before anything is
// written; the order, its links and its total become visible together or
// not at all.
func (uc *OrderUC) Create(ctx context.Context, in OrderInput) (*OrderResult, error) {
	customer, err := uc.Customers.FindByID(ctx, in.CustomerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &OrderResult{OK: false, Message: "Invalid customer ID."}, nil
		}
		return nil, err
	}

	if len(in.ProductIDs) == 0 {
		return &OrderResult{OK: false, Message: "Select at least one product."}, nil
	}

	products, err := uc.Products.FindByIDs(ctx, in.ProductIDs)
	if err != nil {
		return nil, err
	}
	if missing := missingIDs(in.ProductIDs, products); len(missing) > 0 {
		return &OrderResult{
			OK:      false,
			Message: fmt.Sprintf("Invalid product ID(s): %s", strings.Join(missing, ", ")),
		}, nil
	}

	when := time.Now()
	if in.OrderDate != nil {
		when = *in.OrderDate
	}

	order := &domain.Order{
		ID:          uuid.New(),
		CustomerID:  customer.ID,
		OrderDate:   when,
		TotalAmount: domain.SumPrices(products),
	}
	if err := uc.Orders.CreateWithProducts(ctx, order, products); err != nil {
		return nil, err
	}
	order.Customer = *customer
	order.Products = products

	return &OrderResult{OK: true, Message: "Order created successfully.", Order: order}, nil
}

// missingIDs returns the requested ids with no matching product, sorted
// and deduplicated.
func missingIDs(requested []uuid.UUID, found []domain.Product) []string {
	have := make(map[uuid.UUID]struct{}, len(found))
	for _, p := range found {
		have[p.ID] = struct{}{}
	}
	seen := make(map[uuid.UUID]struct{}, len(requested))
	var missing []string
	for _, id := range requested {
		if _, ok := have[id]; ok {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		missing = append(missing, id.String())
	}
	sort.Strings(missing)
	return missing
}

func (uc *OrderUC) List(ctx context.Context) ([]domain.Order, error) {
	return uc.Orders.List(ctx)
}

// ListSince returns orders with order_date at or after since (inclusive).
func (uc *OrderUC) ListSince(ctx context.Context, since time.Time) ([]domain.Order, error) {
	return uc.Orders.ListSince(ctx, since)
}
