package postgres

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/phenrril/crmcell/internal/domain"
)

type OrderRepo struct{ db *gorm.DB }

func NewOrderRepo(db *gorm.DB) *OrderRepo { return &OrderRepo{db: db} }

func (r *OrderRepo) CreateWithProducts(ctx context.Context, o *domain.Order, products []domain.Product) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(o).Error; err != nil {
			return err
		}
		// Omit("Products.*") writes only the join rows, never the product rows.
		if err := tx.Model(o).Omit("Products.*").Association("Products").Append(&products); err != nil {
			return err
		}
		return nil
	})
}

func (r *OrderRepo) List(ctx context.Context) ([]domain.Order, error) {
	var list []domain.Order
	if err := r.db.WithContext(ctx).
		Preload("Customer").Preload("Products").
		Order("order_date desc, id desc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *OrderRepo) ListSince(ctx context.Context, since time.Time) ([]domain.Order, error) {
	var list []domain.Order
	if err := r.db.WithContext(ctx).
		Preload("Customer").Preload("Products").
		Where("order_date >= ?", since).
		Order("order_date desc, id desc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *OrderRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Order{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *OrderRepo) SumTotals(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	if err := r.db.WithContext(ctx).Model(&domain.Order{}).
		Select("COALESCE(SUM(total_amount), 0)").Scan(&total).Error; err != nil {
		return decimal.Zero, err
	}
	return total, nil
}
