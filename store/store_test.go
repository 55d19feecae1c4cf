package store

import (
	"testing"

	"omex-backend/models"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) (*Store, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Customer{},
		&models.Sale{},
		&models.SaleItem{},
		&models.StockAlertLog{},
	))

	return New(db), db
}

// createUser inserts a tenant directly, skipping the bcrypt hook to keep
// tests fast.
func createUser(t *testing.T, db *gorm.DB, email string) uuid.UUID {
	t.Helper()
	user := models.User{
		ID:           uuid.New(),
		Email:        email,
		Password:     "irrelevant",
		BusinessName: "Test Business",
		IsActive:     true,
	}
	require.NoError(t, db.Session(&gorm.Session{SkipHooks: true}).Create(&user).Error)
	return user.ID
}

func createProduct(t *testing.T, s *Store, userID uuid.UUID, name string, price float64, quantity int) *models.Product {
	t.Helper()
	product := models.Product{
		Name:        name,
		Price:       price,
		Quantity:    quantity,
		MinQuantity: 2,
	}
	require.NoError(t, s.CreateProduct(userID, &product))
	return &product
}

func createCustomer(t *testing.T, s *Store, userID uuid.UUID, name, phone string) *models.Customer {
	t.Helper()
	customer := models.Customer{
		Name:  name,
		Phone: phone,
	}
	require.NoError(t, s.CreateCustomer(userID, &customer))
	return &customer
}
