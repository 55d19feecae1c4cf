package store

import (
	"errors"
	"time"

	"omex-backend/models"
	"omex-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SaleItemInput is one requested line of a new sale. Unit price is read
// from the product at sale time, not from the caller.
type SaleItemInput struct {
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
}

type CreateSaleInput struct {
	CustomerID    *uuid.UUID      `json:"customerId"`
	Items         []SaleItemInput `json:"items"`
	Tax           float64         `json:"tax"`
	PaymentMethod string          `json:"paymentMethod"`
	Notes         string          `json:"notes"`
}

type SaleFilter struct {
	Status     *string
	CustomerID *uuid.UUID
	From       *time.Time
	To         *time.Time

	OrderByCreatedAt bool
	Limit            int
}

// CreateSale runs the whole multi-row protocol in one transaction:
// stock check, sale + item inserts, stock decrements and customer stats.
// Inventory effects happen at creation time so stock is reserved while
// the sale is still pending; cancelling restores it.
func (s *Store) CreateSale(userID uuid.UUID, input CreateSaleInput) (*models.Sale, error) {
	if len(input.Items) == 0 {
		return nil, &ValidationError{Field: "items", Reason: "at least one item required"}
	}
	if input.Tax < 0 {
		return nil, &ValidationError{Field: "tax", Reason: "must not be negative"}
	}
	if input.PaymentMethod == "" {
		return nil, &ValidationError{Field: "paymentMethod", Reason: "required"}
	}
	for _, item := range input.Items {
		if item.Quantity < 1 {
			return nil, &ValidationError{Field: "quantity", Reason: "must be at least 1"}
		}
	}

	var sale models.Sale
	err := s.db.Transaction(func(tx *gorm.DB) error {
		// Validate customer ownership before touching anything
		if input.CustomerID != nil {
			var customer models.Customer
			if err := tx.Where("user_id = ? AND id = ?", userID, *input.CustomerID).
				First(&customer).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &NotFoundError{Entity: "customer", ID: *input.CustomerID}
				}
				return err
			}
		}

		var subtotal float64
		var saleItems []models.SaleItem

		for _, item := range input.Items {
			var product models.Product
			if err := tx.Where("user_id = ? AND id = ?", userID, item.ProductID).
				First(&product).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &NotFoundError{Entity: "product", ID: item.ProductID}
				}
				return err
			}

			if product.Quantity < item.Quantity {
				return &InsufficientStockError{
					ProductID:   product.ID,
					ProductName: product.Name,
					Requested:   item.Quantity,
					Available:   product.Quantity,
				}
			}

			itemTotal := product.Price * float64(item.Quantity)
			subtotal += itemTotal

			saleItems = append(saleItems, models.SaleItem{
				ProductID:   product.ID,
				ProductName: product.Name,
				Quantity:    item.Quantity,
				UnitPrice:   product.Price,
				TotalPrice:  itemTotal,
			})
		}

		total := subtotal + input.Tax
		now := time.Now()

		sale = models.Sale{
			UserID:        userID,
			Reference:     "VTE-" + now.Format("20060102") + "-" + utils.GenerateRandomString(6),
			CustomerID:    input.CustomerID,
			Subtotal:      subtotal,
			Tax:           input.Tax,
			Total:         total,
			PaymentMethod: input.PaymentMethod,
			Status:        models.SaleStatusPending,
			Notes:         input.Notes,
			Items:         saleItems,
		}

		if err := tx.Create(&sale).Error; err != nil {
			return err
		}

		// Guarded decrement: the WHERE clause re-checks availability so a
		// concurrent sale of the same product cannot drive stock negative.
		for _, item := range saleItems {
			result := tx.Model(&models.Product{}).
				Where("id = ? AND quantity >= ?", item.ProductID, item.Quantity).
				Update("quantity", gorm.Expr("quantity - ?", item.Quantity))
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return &InsufficientStockError{
					ProductID:   item.ProductID,
					ProductName: item.ProductName,
					Requested:   item.Quantity,
				}
			}
		}

		if input.CustomerID != nil {
			if err := tx.Model(&models.Customer{}).Where("id = ?", *input.CustomerID).
				Updates(map[string]interface{}{
					"total_purchases": gorm.Expr("total_purchases + ?", total),
					"last_purchase":   now,
				}).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	return &sale, nil
}

func (s *Store) GetSale(userID, id uuid.UUID) (*models.Sale, error) {
	var sale models.Sale
	err := withRetry(func() error {
		return s.db.Preload("Items").
			Where("user_id = ? AND id = ?", userID, id).First(&sale).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "sale", ID: id}
		}
		return nil, err
	}
	return &sale, nil
}

func (s *Store) ListSales(userID uuid.UUID, filter SaleFilter) ([]models.Sale, error) {
	query := s.db.Preload("Items").Where("user_id = ?", userID)
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.CustomerID != nil {
		query = query.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.From != nil {
		query = query.Where("created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("created_at <= ?", *filter.To)
	}
	if filter.OrderByCreatedAt {
		query = query.Order("created_at DESC")
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var sales []models.Sale
	err := withRetry(func() error {
		return query.Find(&sales).Error
	})
	if err != nil {
		return nil, err
	}
	return sales, nil
}

// SalePatch covers the only fields that stay mutable after creation.
// Amounts and items are derived at creation and the status moves through
// the explicit complete/cancel transitions, so none of them appear here.
type SalePatch struct {
	PaymentMethod *string `json:"paymentMethod"`
	Notes         *string `json:"notes"`
}

// UpdateSale applies a partial update to a sale's descriptive fields.
func (s *Store) UpdateSale(userID, id uuid.UUID, patch SalePatch) (*models.Sale, error) {
	sale, err := s.GetSale(userID, id)
	if err != nil {
		return nil, err
	}

	if patch.PaymentMethod != nil {
		if *patch.PaymentMethod == "" {
			return nil, &ValidationError{Field: "paymentMethod", Reason: "must not be empty"}
		}
		sale.PaymentMethod = *patch.PaymentMethod
	}
	if patch.Notes != nil {
		sale.Notes = *patch.Notes
	}

	err = withRetry(func() error {
		return s.db.Model(&models.Sale{}).Where("id = ?", sale.ID).
			Updates(map[string]interface{}{
				"payment_method": sale.PaymentMethod,
				"notes":          sale.Notes,
			}).Error
	})
	if err != nil {
		return nil, err
	}
	return sale, nil
}

// CompleteSale moves a pending sale to completed. Stock and customer
// totals were already adjusted at creation, so this is a pure status
// change.
func (s *Store) CompleteSale(userID, id uuid.UUID) (*models.Sale, error) {
	var sale models.Sale
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Items").
			Where("user_id = ? AND id = ?", userID, id).First(&sale).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Entity: "sale", ID: id}
			}
			return err
		}
		if sale.Status != models.SaleStatusPending {
			return ErrIllegalTransition
		}

		// Guarded flip: the status predicate makes sure only one of two
		// concurrent transitions wins, same pattern as the stock decrement
		// in CreateSale.
		result := tx.Model(&models.Sale{}).
			Where("id = ? AND status = ?", sale.ID, models.SaleStatusPending).
			Update("status", models.SaleStatusCompleted)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrIllegalTransition
		}
		sale.Status = models.SaleStatusCompleted
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &sale, nil
}

// CancelSale moves a pending sale to cancelled and undoes its side
// effects: every decremented product quantity is restored and the
// customer's running total is rolled back.
func (s *Store) CancelSale(userID, id uuid.UUID) (*models.Sale, error) {
	var sale models.Sale
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Items").
			Where("user_id = ? AND id = ?", userID, id).First(&sale).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Entity: "sale", ID: id}
			}
			return err
		}
		if sale.Status != models.SaleStatusPending {
			return ErrIllegalTransition
		}

		// Flip the status before compensating so a concurrent cancel loses
		// the guarded update and can never restore the same stock twice.
		result := tx.Model(&models.Sale{}).
			Where("id = ? AND status = ?", sale.ID, models.SaleStatusPending).
			Update("status", models.SaleStatusCancelled)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrIllegalTransition
		}

		if err := restoreSaleEffects(tx, &sale); err != nil {
			return err
		}

		sale.Status = models.SaleStatusCancelled
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &sale, nil
}

// DeleteSale removes a sale and its items. A pending sale still holds a
// stock reservation, so deleting it compensates the same way cancelling
// does. Completed and cancelled sales are erased as-is.
func (s *Store) DeleteSale(userID, id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var sale models.Sale
		if err := tx.Preload("Items").
			Where("user_id = ? AND id = ?", userID, id).First(&sale).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Entity: "sale", ID: id}
			}
			return err
		}

		if sale.Status == models.SaleStatusPending {
			// Claim the reservation release through the same guarded flip
			// as CancelSale; losing it means another transaction already
			// compensated (or completed the sale) and we must not.
			result := tx.Model(&models.Sale{}).
				Where("id = ? AND status = ?", sale.ID, models.SaleStatusPending).
				Update("status", models.SaleStatusCancelled)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 1 {
				if err := restoreSaleEffects(tx, &sale); err != nil {
					return err
				}
			}
		}

		if err := tx.Where("sale_id = ?", sale.ID).Delete(&models.SaleItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&sale).Error
	})
}

func restoreSaleEffects(tx *gorm.DB, sale *models.Sale) error {
	for _, item := range sale.Items {
		if err := tx.Model(&models.Product{}).
			Where("id = ?", item.ProductID).
			Update("quantity", gorm.Expr("quantity + ?", item.Quantity)).Error; err != nil {
			return err
		}
	}
	if sale.CustomerID != nil {
		if err := tx.Model(&models.Customer{}).Where("id = ?", *sale.CustomerID).
			Update("total_purchases", gorm.Expr("total_purchases - ?", sale.Total)).Error; err != nil {
			return err
		}
	}
	return nil
}
