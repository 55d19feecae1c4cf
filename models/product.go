package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Product struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"userId"`

	Name        string  `gorm:"not null" json:"name"`
	Description string  `json:"description"`
	Price       float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	CostPrice   *float64 `gorm:"type:decimal(10,2)" json:"costPrice"`

	Quantity    int `gorm:"default:0" json:"quantity"`
	MinQuantity int `gorm:"default:0" json:"minQuantity"`

	Category   *string    `json:"category"`
	SupplierID *uuid.UUID `gorm:"type:uuid;index" json:"supplierId"`
	Barcode    *string    `gorm:"index" json:"barcode"`

	SaleItems []SaleItem `gorm:"foreignKey:ProductID" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}

// IsLowStock reports whether the product is at or below its restock threshold.
func (p *Product) IsLowStock() bool {
	return p.Quantity <= p.MinQuantity
}
