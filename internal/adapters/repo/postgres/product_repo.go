package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/phenrril/crmcell/internal/domain"
)

type ProductRepo struct{ db *gorm.DB }

func NewProductRepo(db *gorm.DB) *ProductRepo { return &ProductRepo{db: db} }

func (r *ProductRepo) Create(ctx context.Context, p *domain.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ProductRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Product, error) {
	if len(ids) == 0 {
		return []domain.Product{}, nil
	}
	var list []domain.Product
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *ProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	var list []domain.Product
	if err := r.db.WithContext(ctx).Order("created_at desc, id desc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// RestockBelow bumps the stock of every product under threshold by amount
// and returns the updated rows.
func (r *ProductRepo) RestockBelow(ctx context.Context, threshold, amount int) ([]domain.Product, error) {
	updated := []domain.Product{}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var low []domain.Product
		if err := tx.Where("stock < ?", threshold).Find(&low).Error; err != nil {
			return err
		}
		if len(low) == 0 {
			return nil
		}
		ids := make([]uuid.UUID, 0, len(low))
		for _, p := range low {
			ids = append(ids, p.ID)
		}
		if err := tx.Model(&domain.Product{}).Where("id IN ?", ids).
			UpdateColumn("stock", gorm.Expr("stock + ?", amount)).Error; err != nil {
			return err
		}
		return tx.Where("id IN ?", ids).Order("created_at desc, id desc").Find(&updated).Error
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
