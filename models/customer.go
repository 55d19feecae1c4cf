package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Customer struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"userId"`

	Name    string  `gorm:"not null" json:"name"`
	Phone   string  `gorm:"not null;index:idx_user_phone" json:"phone"`
	Email   *string `json:"email"`
	Address *string `json:"address"`
	Notes   string  `json:"notes"`

	// Running totals maintained by completed sales. TotalPurchases only
	// ever grows except when a pending sale is cancelled or deleted.
	TotalPurchases float64    `gorm:"type:decimal(10,2);default:0.0" json:"totalPurchases"`
	LastPurchase   *time.Time `json:"lastPurchase"`

	IsActive bool `gorm:"default:true" json:"isActive"`

	Sales []Sale `gorm:"foreignKey:CustomerID" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c *Customer) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}
