package controllers

import (
	"net/http"
	"time"

	"omex-backend/models"
	"omex-backend/store"
	"omex-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type DashboardController struct {
	DB    *gorm.DB
	Store *store.Store
}

func NewDashboardController(db *gorm.DB, s *store.Store) *DashboardController {
	return &DashboardController{DB: db, Store: s}
}

type DashboardOverview struct {
	TotalProducts  int64            `json:"totalProducts"`
	LowStockCount  int64            `json:"lowStockCount"`
	TotalCustomers int64            `json:"totalCustomers"`
	TotalSales     int64            `json:"totalSales"`
	MonthlyRevenue float64          `json:"monthlyRevenue"`
	InventoryValue float64          `json:"inventoryValue"`
	LowStock       []models.Product `json:"lowStock"`
	RecentSales    []models.Sale    `json:"recentSales"`
}

func (d *DashboardController) GetDashboardOverview(c *gin.Context) {
	userID, ok := tenantID(c)
	if !ok {
		return
	}

	var overview DashboardOverview

	d.DB.Model(&models.Product{}).Where("user_id = ?", userID).Count(&overview.TotalProducts)
	d.DB.Model(&models.Product{}).Where("user_id = ? AND quantity <= min_quantity", userID).
		Count(&overview.LowStockCount)
	d.DB.Model(&models.Customer{}).Where("user_id = ?", userID).Count(&overview.TotalCustomers)
	d.DB.Model(&models.Sale{}).Where("user_id = ? AND status <> ?", userID, models.SaleStatusCancelled).
		Count(&overview.TotalSales)

	// This month's revenue from non-cancelled sales
	now := time.Now()
	firstOfMonth := utils.BeginningOfMonth(now)
	d.DB.Model(&models.Sale{}).
		Where("user_id = ? AND status <> ? AND created_at >= ?", userID, models.SaleStatusCancelled, firstOfMonth).
		Select("COALESCE(SUM(total), 0)").Scan(&overview.MonthlyRevenue)

	// Stock valued at selling price
	d.DB.Model(&models.Product{}).Where("user_id = ?", userID).
		Select("COALESCE(SUM(price * quantity), 0)").Scan(&overview.InventoryValue)

	lowStock, err := d.Store.ListProducts(userID, store.ProductFilter{LowStock: true})
	if err != nil {
		respondStoreError(c, err)
		return
	}
	overview.LowStock = lowStock

	recentSales, err := d.Store.ListSales(userID, store.SaleFilter{
		OrderByCreatedAt: true,
		Limit:            5,
	})
	if err != nil {
		respondStoreError(c, err)
		return
	}
	overview.RecentSales = recentSales

	c.JSON(http.StatusOK, overview)
}
