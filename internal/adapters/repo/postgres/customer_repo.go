package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/phenrril/crmcell/internal/domain"
)

type CustomerRepo struct{ db *gorm.DB }

func NewCustomerRepo(db *gorm.DB) *CustomerRepo { return &CustomerRepo{db: db} }

func (r *CustomerRepo) Create(ctx context.Context, c *domain.Customer) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrConflict
		}
		return err
	}
	return nil
}

func (r *CustomerRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	e := strings.ToLower(strings.TrimSpace(email))
	if e == "" {
		return false, nil
	}
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Customer{}).
		Where("LOWER(email) = ?", e).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *CustomerRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	var c domain.Customer
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepo) List(ctx context.Context) ([]domain.Customer, error) {
	var list []domain.Customer
	if err := r.db.WithContext(ctx).Order("created_at desc, id desc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *CustomerRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Customer{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
