package store

import (
	"errors"

	"omex-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductFilter is a conjunction of optional predicates. Nil fields are
// not applied. Results are always scoped to the tenant.
type ProductFilter struct {
	Category *string
	MinPrice *float64
	MaxPrice *float64
	LowStock bool
	Barcode  *string

	OrderByCreatedAt bool
}

// ProductPatch carries the updatable fields only. Id, owner and creation
// time are not representable here, so they can never change through an
// update.
type ProductPatch struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	Price       *float64   `json:"price"`
	CostPrice   *float64   `json:"costPrice"`
	Quantity    *int       `json:"quantity"`
	MinQuantity *int       `json:"minQuantity"`
	Category    *string    `json:"category"`
	SupplierID  *uuid.UUID `json:"supplierId"`
	Barcode     *string    `json:"barcode"`
}

func validateProduct(name string, price float64, quantity, minQuantity int) error {
	if name == "" {
		return &ValidationError{Field: "name", Reason: "required"}
	}
	if price < 0 {
		return &ValidationError{Field: "price", Reason: "must not be negative"}
	}
	if quantity < 0 {
		return &ValidationError{Field: "quantity", Reason: "must not be negative"}
	}
	if minQuantity < 0 {
		return &ValidationError{Field: "minQuantity", Reason: "must not be negative"}
	}
	return nil
}

// CreateProduct inserts a product owned by userID. The owner id is always
// injected here, never trusted from the payload.
func (s *Store) CreateProduct(userID uuid.UUID, p *models.Product) error {
	if err := validateProduct(p.Name, p.Price, p.Quantity, p.MinQuantity); err != nil {
		return err
	}
	if p.CostPrice != nil && *p.CostPrice < 0 {
		return &ValidationError{Field: "costPrice", Reason: "must not be negative"}
	}
	// The owner id is injected from the authenticated session; a payload
	// claiming another tenant is rejected outright.
	if p.UserID != uuid.Nil && p.UserID != userID {
		return &AuthorizationError{Reason: "user_id does not match authenticated tenant"}
	}
	p.UserID = userID
	return withRetry(func() error {
		return s.db.Create(p).Error
	})
}

func (s *Store) GetProduct(userID, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := withRetry(func() error {
		return s.db.Where("user_id = ? AND id = ?", userID, id).First(&product).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "product", ID: id}
		}
		return nil, err
	}
	return &product, nil
}

func (s *Store) ListProducts(userID uuid.UUID, filter ProductFilter) ([]models.Product, error) {
	query := s.db.Where("user_id = ?", userID)
	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}
	if filter.Barcode != nil {
		query = query.Where("barcode = ?", *filter.Barcode)
	}
	if filter.LowStock {
		query = query.Where("quantity <= min_quantity")
	}
	if filter.OrderByCreatedAt {
		query = query.Order("created_at DESC")
	}

	var products []models.Product
	err := withRetry(func() error {
		return query.Find(&products).Error
	})
	if err != nil {
		return nil, err
	}
	return products, nil
}

// UpdateProduct applies a partial update. Fields absent from the patch
// are untouched.
func (s *Store) UpdateProduct(userID, id uuid.UUID, patch ProductPatch) (*models.Product, error) {
	product, err := s.GetProduct(userID, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		if *patch.Name == "" {
			return nil, &ValidationError{Field: "name", Reason: "must not be empty"}
		}
		product.Name = *patch.Name
	}
	if patch.Description != nil {
		product.Description = *patch.Description
	}
	if patch.Price != nil {
		if *patch.Price < 0 {
			return nil, &ValidationError{Field: "price", Reason: "must not be negative"}
		}
		product.Price = *patch.Price
	}
	if patch.CostPrice != nil {
		if *patch.CostPrice < 0 {
			return nil, &ValidationError{Field: "costPrice", Reason: "must not be negative"}
		}
		product.CostPrice = patch.CostPrice
	}
	if patch.Quantity != nil {
		if *patch.Quantity < 0 {
			return nil, &ValidationError{Field: "quantity", Reason: "must not be negative"}
		}
		product.Quantity = *patch.Quantity
	}
	if patch.MinQuantity != nil {
		if *patch.MinQuantity < 0 {
			return nil, &ValidationError{Field: "minQuantity", Reason: "must not be negative"}
		}
		product.MinQuantity = *patch.MinQuantity
	}
	if patch.Category != nil {
		product.Category = patch.Category
	}
	if patch.SupplierID != nil {
		product.SupplierID = patch.SupplierID
	}
	if patch.Barcode != nil {
		product.Barcode = patch.Barcode
	}

	err = withRetry(func() error {
		return s.db.Save(product).Error
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (s *Store) DeleteProduct(userID, id uuid.UUID) error {
	result := s.db.Where("user_id = ? AND id = ?", userID, id).Delete(&models.Product{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &NotFoundError{Entity: "product", ID: id}
	}
	return nil
}
