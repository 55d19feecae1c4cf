package store

import (
	"errors"

	"omex-backend/models"
	"omex-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CustomerFilter struct {
	Name     *string // substring match
	Phone    *string
	IsActive *bool

	OrderByCreatedAt bool
}

type CustomerPatch struct {
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email"`
	Address  *string `json:"address"`
	Notes    *string `json:"notes"`
	IsActive *bool   `json:"isActive"`
}

func (s *Store) CreateCustomer(userID uuid.UUID, c *models.Customer) error {
	if c.Name == "" {
		return &ValidationError{Field: "name", Reason: "required"}
	}
	if c.Phone == "" {
		return &ValidationError{Field: "phone", Reason: "required"}
	}
	if !utils.ValidatePhone(c.Phone) {
		return &ValidationError{Field: "phone", Reason: "invalid format"}
	}
	if c.UserID != uuid.Nil && c.UserID != userID {
		return &AuthorizationError{Reason: "user_id does not match authenticated tenant"}
	}

	// One phone number per tenant
	var existing models.Customer
	err := s.db.Where("user_id = ? AND phone = ?", userID, c.Phone).First(&existing).Error
	if err == nil {
		return &ValidationError{Field: "phone", Reason: "already registered for another customer"}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	c.UserID = userID
	c.TotalPurchases = 0
	c.IsActive = true
	return withRetry(func() error {
		return s.db.Create(c).Error
	})
}

func (s *Store) GetCustomer(userID, id uuid.UUID) (*models.Customer, error) {
	var customer models.Customer
	err := withRetry(func() error {
		return s.db.Where("user_id = ? AND id = ?", userID, id).First(&customer).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "customer", ID: id}
		}
		return nil, err
	}
	return &customer, nil
}

func (s *Store) ListCustomers(userID uuid.UUID, filter CustomerFilter) ([]models.Customer, error) {
	query := s.db.Where("user_id = ?", userID)
	if filter.Name != nil {
		query = query.Where("name LIKE ?", "%"+*filter.Name+"%")
	}
	if filter.Phone != nil {
		query = query.Where("phone = ?", *filter.Phone)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	if filter.OrderByCreatedAt {
		query = query.Order("created_at DESC")
	}

	var customers []models.Customer
	err := withRetry(func() error {
		return query.Find(&customers).Error
	})
	if err != nil {
		return nil, err
	}
	return customers, nil
}

func (s *Store) UpdateCustomer(userID, id uuid.UUID, patch CustomerPatch) (*models.Customer, error) {
	customer, err := s.GetCustomer(userID, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		if *patch.Name == "" {
			return nil, &ValidationError{Field: "name", Reason: "must not be empty"}
		}
		customer.Name = *patch.Name
	}
	if patch.Phone != nil {
		if !utils.ValidatePhone(*patch.Phone) {
			return nil, &ValidationError{Field: "phone", Reason: "invalid format"}
		}
		if customer.Phone != *patch.Phone {
			var existing models.Customer
			err := s.db.Where("user_id = ? AND phone = ?", userID, *patch.Phone).First(&existing).Error
			if err == nil {
				return nil, &ValidationError{Field: "phone", Reason: "already registered for another customer"}
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
		}
		customer.Phone = *patch.Phone
	}
	if patch.Email != nil {
		customer.Email = patch.Email
	}
	if patch.Address != nil {
		customer.Address = patch.Address
	}
	if patch.Notes != nil {
		customer.Notes = *patch.Notes
	}
	if patch.IsActive != nil {
		customer.IsActive = *patch.IsActive
	}

	err = withRetry(func() error {
		return s.db.Save(customer).Error
	})
	if err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *Store) DeleteCustomer(userID, id uuid.UUID) error {
	result := s.db.Where("user_id = ? AND id = ?", userID, id).Delete(&models.Customer{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &NotFoundError{Entity: "customer", ID: id}
	}
	return nil
}
