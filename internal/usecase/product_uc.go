package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/phenrril/crmcell/internal/domain"
)

type ProductInput struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Stock *int            `json:"stock"`
}

type ProductResult struct {
	OK      bool            `json:"ok"`
	Message string          `json:"message,omitempty"`
	Product *domain.Product `json:"product,omitempty"`
}

type RestockResult struct {
	OK       bool             `json:"ok"`
	Message  string           `json:"message"`
	Products []domain.Product `json:"products"`
}

type ProductUC struct {
	Products domain.ProductRepo
}

func (uc *ProductUC) Create(ctx context.Context, in ProductInput) (*ProductResult, error) {
	name := strings.TrimSpace(in.Name)
	stock := 0
	if in.Stock != nil {
		stock = *in.Stock
	}

	var msgs []string
	if name == "" {
		msgs = append(msgs, "Name is required.")
	}
	if !in.Price.IsPositive() {
		msgs = append(msgs, "Price must be a positive number.")
	}
	if stock < 0 {
		msgs = append(msgs, "Stock cannot be negative.")
	}
	if len(msgs) > 0 {
		return &ProductResult{OK: false, Message: strings.Join(msgs, "; ")}, nil
	}

	p := &domain.Product{
		ID:    uuid.New(),
		Name:  name,
		Price: domain.Quantize(in.Price),
		Stock: stock,
	}
	if err := uc.Products.Create(ctx, p); err != nil {
		return nil, err
	}
	return &ProductResult{OK: true, Message: "Product created successfully.", Product: p}, nil
}

// RestockLowStock tops up every product whose stock is under threshold.
func (uc *ProductUC) RestockLowStock(ctx context.Context, threshold, amount int) (*RestockResult, error) {
	updated, err := uc.Products.RestockBelow(ctx, threshold, amount)
	if err != nil {
		return nil, err
	}
	return &RestockResult{
		OK:       true,
		Message:  fmt.Sprintf("%d low-stock products restocked.", len(updated)),
		Products: updated,
	}, nil
}

func (uc *ProductUC) List(ctx context.Context) ([]domain.Product, error) {
	return uc.Products.List(ctx)
}
