package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/phenrril/crmcell/internal/domain"
)

type fakeCustomerRepo struct {
	customers []domain.Customer
}

func (f *fakeCustomerRepo) Create(_ context.Context, c *domain.Customer) error {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	f.customers = append(f.customers, *c)
	return nil
}

func (f *fakeCustomerRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, c := range f.customers {
		if strings.EqualFold(c.Email, strings.TrimSpace(email)) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCustomerRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.Customer, error) {
	for i := range f.customers {
		if f.customers[i].ID == id {
			c := f.customers[i]
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeCustomerRepo) List(_ context.Context) ([]domain.Customer, error) {
	out := make([]domain.Customer, 0, len(f.customers))
	for i := len(f.customers) - 1; i >= 0; i-- {
		out = append(out, f.customers[i])
	}
	return out, nil
}

func (f *fakeCustomerRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.customers)), nil
}

type fakeProductRepo struct {
	products []domain.Product
}

func (f *fakeProductRepo) Create(_ context.Context, p *domain.Product) error {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	f.products = append(f.products, *p)
	return nil
}

func (f *fakeProductRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]domain.Product, error) {
	want := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	var out []domain.Product
	for _, p := range f.products {
		if _, ok := want[p.ID]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) List(_ context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, 0, len(f.products))
	for i := len(f.products) - 1; i >= 0; i-- {
		out = append(out, f.products[i])
	}
	return out, nil
}

func (f *fakeProductRepo) RestockBelow(_ context.Context, threshold, amount int) ([]domain.Product, error) {
	updated := []domain.Product{}
	for i := range f.products {
		if f.products[i].Stock < threshold {
			f.products[i].Stock += amount
			updated = append(updated, f.products[i])
		}
	}
	return updated, nil
}

type fakeOrderRepo struct {
	orders []domain.Order
}

func (f *fakeOrderRepo) CreateWithProducts(_ context.Context, o *domain.Order, products []domain.Product) error {
	stored := *o
	stored.Products = products
	f.orders = append(f.orders, stored)
	return nil
}

func (f *fakeOrderRepo) List(_ context.Context) ([]domain.Order, error) {
	out := make([]domain.Order, 0, len(f.orders))
	for i := len(f.orders) - 1; i >= 0; i-- {
		out = append(out, f.orders[i])
	}
	return out, nil
}

func (f *fakeOrderRepo) ListSince(_ context.Context, since time.Time) ([]domain.Order, error) {
	out := []domain.Order{}
	for i := len(f.orders) - 1; i >= 0; i-- {
		if !f.orders[i].OrderDate.Before(since) {
			out = append(out, f.orders[i])
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.orders)), nil
}

func (f *fakeOrderRepo) SumTotals(_ context.Context) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, o := range f.orders {
		total = total.Add(o.TotalAmount)
	}
	return total, nil
}
