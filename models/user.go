package models

import (
	"time"

	"omex-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is the authenticated business account. Every other row in the
// database is partitioned by its id (tenant key).
type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Email    string    `gorm:"uniqueIndex;not null" json:"email"`
	Password string    `gorm:"not null" json:"-"`

	BusinessName string `gorm:"not null" json:"businessName"`
	Phone        string `json:"phone"`
	Currency     string `gorm:"type:varchar(8);default:'XOF'" json:"currency"`

	LowStockAlerts        bool `gorm:"default:true" json:"lowStockAlerts"`
	WhatsAppNotifications bool `gorm:"default:false" json:"whatsAppNotifications"`
	SMSNotifications      bool `gorm:"default:false" json:"smsNotifications"`

	LastLogin *time.Time `json:"lastLogin"`
	IsActive  bool       `gorm:"default:true" json:"isActive"`

	Products  []Product  `gorm:"foreignKey:UserID" json:"-"`
	Customers []Customer `gorm:"foreignKey:UserID" json:"-"`
	Sales     []Sale     `gorm:"foreignKey:UserID" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Initialize UUID and hash password before creating
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	hashed, err := utils.HashPassword(u.Password)
	if err != nil {
		return err
	}
	u.Password = hashed
	return
}
