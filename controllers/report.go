// controllers/report.go
package controllers

import (
	"net/http"
	"time"

	"omex-backend/models"
	"omex-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReportController handles all reporting functions
type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

// AnalyticsSummary represents the Analytics data
type AnalyticsSummary struct {
	CurrentMonthRevenue   float64           `json:"currentMonthRevenue"`
	MonthGrowth           float64           `json:"monthGrowth"`
	CurrentQuarterRevenue float64           `json:"currentQuarterRevenue"`
	QuarterGrowth         float64           `json:"quarterGrowth"`
	CurrentYearRevenue    float64           `json:"currentYearRevenue"`
	YearGrowth            float64           `json:"yearGrowth"`
	TopProducts           []ProductSummary  `json:"topProducts"`
	TopCustomers          []CustomerSummary `json:"topCustomers"`
}

type ProductSummary struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

type CustomerSummary struct {
	Name  string  `json:"name"`
	Spent float64 `json:"spent"`
}

func (r *ReportController) revenueBetween(userID uuid.UUID, from, to time.Time) float64 {
	var revenue float64
	r.DB.Model(&models.Sale{}).
		Where("user_id = ? AND status <> ? AND created_at >= ? AND created_at < ?",
			userID, models.SaleStatusCancelled, from, to).
		Select("COALESCE(SUM(total), 0)").Scan(&revenue)
	return revenue
}

func growth(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}

func (r *ReportController) GetReportAnalytics(c *gin.Context) {
	userID, ok := tenantID(c)
	if !ok {
		return
	}

	now := time.Now()
	summary := AnalyticsSummary{}

	monthStart := utils.BeginningOfMonth(now)
	prevMonthStart := utils.BeginningOfMonth(monthStart.AddDate(0, 0, -1))
	summary.CurrentMonthRevenue = r.revenueBetween(userID, monthStart, now)
	summary.MonthGrowth = growth(summary.CurrentMonthRevenue,
		r.revenueBetween(userID, prevMonthStart, monthStart))

	quarterStart := utils.BeginningOfQuarter(now)
	prevQuarterStart := utils.BeginningOfQuarter(quarterStart.AddDate(0, 0, -1))
	summary.CurrentQuarterRevenue = r.revenueBetween(userID, quarterStart, now)
	summary.QuarterGrowth = growth(summary.CurrentQuarterRevenue,
		r.revenueBetween(userID, prevQuarterStart, quarterStart))

	yearStart := utils.BeginningOfYear(now)
	prevYearStart := utils.BeginningOfYear(yearStart.AddDate(0, 0, -1))
	summary.CurrentYearRevenue = r.revenueBetween(userID, yearStart, now)
	summary.YearGrowth = growth(summary.CurrentYearRevenue,
		r.revenueBetween(userID, prevYearStart, yearStart))

	// Top products by revenue across non-cancelled sales
	r.DB.Raw(`
        SELECT si.product_name AS name,
               SUM(si.quantity) AS quantity,
               SUM(si.total_price) AS revenue
        FROM sale_items si
        JOIN sales s ON s.id = si.sale_id
        WHERE s.user_id = ? AND s.status <> ?
        GROUP BY si.product_name
        ORDER BY revenue DESC
        LIMIT 5
    `, userID, models.SaleStatusCancelled).Scan(&summary.TopProducts)

	// Top customers by running purchase total
	r.DB.Raw(`
        SELECT name, total_purchases AS spent
        FROM customers
        WHERE user_id = ?
        ORDER BY total_purchases DESC
        LIMIT 5
    `, userID).Scan(&summary.TopCustomers)

	c.JSON(http.StatusOK, summary)
}
