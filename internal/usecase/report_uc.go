package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/phenrril/crmcell/internal/domain"
)

type Report struct {
	Customers int64           `json:"customers"`
	Orders    int64           `json:"orders"`
	Revenue   decimal.Decimal `json:"revenue"`
}

type ReportUC struct {
	Customers domain.CustomerRepo
	Orders    domain.OrderRepo
}

func (uc *ReportUC) Summary(ctx context.Context) (*Report, error) {
	customers, err := uc.Customers.Count(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := uc.Orders.Count(ctx)
	if err != nil {
		return nil, err
	}
	revenue, err := uc.Orders.SumTotals(ctx)
	if err != nil {
		return nil, err
	}
	return &Report{Customers: customers, Orders: orders, Revenue: revenue}, nil
}
