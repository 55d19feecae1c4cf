package store

import (
	"errors"

	"omex-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserPatch covers the business profile fields. Id, email and creation
// time are immutable after registration.
type UserPatch struct {
	BusinessName          *string `json:"businessName"`
	Phone                 *string `json:"phone"`
	Currency              *string `json:"currency"`
	LowStockAlerts        *bool   `json:"lowStockAlerts"`
	WhatsAppNotifications *bool   `json:"whatsAppNotifications"`
	SMSNotifications      *bool   `json:"smsNotifications"`
}

func (s *Store) GetUser(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := withRetry(func() error {
		return s.db.First(&user, "id = ?", id).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "user", ID: id}
		}
		return nil, err
	}
	return &user, nil
}

func (s *Store) UpdateUser(id uuid.UUID, patch UserPatch) (*models.User, error) {
	user, err := s.GetUser(id)
	if err != nil {
		return nil, err
	}

	if patch.BusinessName != nil {
		if *patch.BusinessName == "" {
			return nil, &ValidationError{Field: "businessName", Reason: "must not be empty"}
		}
		user.BusinessName = *patch.BusinessName
	}
	if patch.Phone != nil {
		user.Phone = *patch.Phone
	}
	if patch.Currency != nil {
		user.Currency = *patch.Currency
	}
	if patch.LowStockAlerts != nil {
		user.LowStockAlerts = *patch.LowStockAlerts
	}
	if patch.WhatsAppNotifications != nil {
		user.WhatsAppNotifications = *patch.WhatsAppNotifications
	}
	if patch.SMSNotifications != nil {
		user.SMSNotifications = *patch.SMSNotifications
	}

	err = withRetry(func() error {
		return s.db.Save(user).Error
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}
