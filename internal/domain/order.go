package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Order struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CustomerID uuid.UUID `gorm:"type:uuid;index;not null" json:"customer_id"`
	Customer   Customer  `json:"customer"`
	Products   []Product `gorm:"many2many:order_products" json:"products"`
	OrderDate  time.Time `gorm:"index" json:"order_date"`
	// TotalAmount is derived from product prices at creation time, never
	// accepted from a client.
	TotalAmount decimal.Decimal `gorm:"type:decimal(12,2)" json:"total_amount"`
	CreatedAt   time.Time       `json:"created_at"`
}
