package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sale status lifecycle: pending -> completed or pending -> cancelled.
const (
	SaleStatusPending   = "pending"
	SaleStatusCompleted = "completed"
	SaleStatusCancelled = "cancelled"
)

type Sale struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"userId"`

	Reference  string     `gorm:"uniqueIndex;not null" json:"reference"`
	CustomerID *uuid.UUID `gorm:"type:uuid;index" json:"customerId"`

	Subtotal float64 `gorm:"type:decimal(10,2);not null" json:"subtotal"`
	Tax      float64 `gorm:"type:decimal(10,2);default:0.0" json:"tax"`
	Total    float64 `gorm:"type:decimal(10,2);not null" json:"total"`

	PaymentMethod string `gorm:"not null" json:"paymentMethod"`
	Status        string `gorm:"type:varchar(20);default:'pending'" json:"status"`
	Notes         string `json:"notes"`

	Items []SaleItem `gorm:"foreignKey:SaleID" json:"items"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *Sale) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}

// SaleItem snapshots the product name and unit price at sale time so the
// line stays meaningful if the product is later renamed or repriced.
type SaleItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	SaleID    uuid.UUID `gorm:"type:uuid;index;not null" json:"saleId"`
	ProductID uuid.UUID `gorm:"type:uuid;index;not null" json:"productId"`

	ProductName string  `gorm:"not null" json:"productName"`
	Quantity    int     `gorm:"not null" json:"quantity"`
	UnitPrice   float64 `gorm:"type:decimal(10,2);not null" json:"unitPrice"`
	TotalPrice  float64 `gorm:"type:decimal(10,2);not null" json:"totalPrice"`
}

func (i *SaleItem) BeforeCreate(tx *gorm.DB) (err error) {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return
}
