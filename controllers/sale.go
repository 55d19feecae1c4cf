package controllers

import (
	"net/http"
	"time"

	"omex-backend/store"
	"omex-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SaleController struct {
	Store *store.Store
}

func NewSaleController(s *store.Store) *SaleController {
	return &SaleController{Store: s}
}

func (sc *SaleController) CreateSale(c *gin.Context) {
	userID, ok := tenantID(c)
	if !ok {
		return
	}

	var input store.CreateSaleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	sale, err := sc.Store.CreateSale(userID, input)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, sale)
}

func (sc *SaleController) GetSales(c *gin.Context) {
	userID, ok := tenantID(c)
	if !ok {
		return
	}

	filter := store.SaleFilter{OrderByCreatedAt: true}
	if status := c.Query("status"); status != "" {
		filter.Status = &status
	}
	if customerID := c.Query("customerId"); customerID != "" {
		if id, err := uuid.Parse(customerID); err == nil {
			filter.CustomerID = &id
		}
	}
	if from := c.Query("from"); from != "" {
		if t, err := time.Parse(time.RFC3339, from); err == nil {
			filter.From = &t
		}
	}
	if to := c.Query("to"); to != "" {
		if t, err := time.Parse(time.RFC3339, to); err == nil {
			filter.To = &t
		}
	}

	sales, err := sc.Store.ListSales(userID, filter)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, sales)
}

func (sc *SaleController) GetSale(c *gin.Context) {
	userID, ok := tenantID(c)
	if !ok {
		return
	}

	saleUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid sale ID format")
		return
	}

	sale, err := sc.Store.GetSale(userID, saleUUID)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, sale)
}

// UpdateSale edits a sale's payment method or notes; amounts, items and
// status are not editable through this route
func (sc *SaleController) UpdateSale(c *gin.Context) {
	userID, ok := tenantID(c)
	if !ok {
		return
	}

	saleUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid sale ID format")
		return
	}

	var patch store.SalePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	sale, err := sc.Store.UpdateSale(userID, saleUUID, patch)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, sale)
}

// CompleteSale finalizes a pending sale
func (sc *SaleController) CompleteSale(c *gin.Context) {
	userID, ok := tenantID(c)
	if !ok {
		return
	}

	saleUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid sale ID format")
		return
	}

	sale, err := sc.Store.CompleteSale(userID, saleUUID)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, sale)
}

// CancelSale cancels a pending sale and restores the reserved stock
func (sc *SaleController) CancelSale(c *gin.Context) {
	userID, ok := tenantID(c)
	if !ok {
		return
	}

	saleUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid sale ID format")
		return
	}

	sale, err := sc.Store.CancelSale(userID, saleUUID)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, sale)
}

func (sc *SaleController) DeleteSale(c *gin.Context) {
	userID, ok := tenantID(c)
	if !ok {
		return
	}

	saleUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid sale ID format")
		return
	}

	if err := sc.Store.DeleteSale(userID, saleUUID); err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Sale deleted successfully"})
}
