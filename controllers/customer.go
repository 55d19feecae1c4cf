package controllers

import (
	"net/http"

	"omex-backend/models"
	"omex-backend/store"
	"omex-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CustomerController struct {
	Store *store.Store
}

func NewCustomerController(s *store.Store) *CustomerController {
	return &CustomerController{Store: s}
}

// CreateCustomerInput defines the expected JSON structure for creating a customer
type CreateCustomerInput struct {
	Name    string  `json:"name" binding:"required"`
	Phone   string  `json:"phone" binding:"required"`
	Email   *string `json:"email"`
	Address *string `json:"address"`
	Notes   string  `json:"notes"`
}

func (ct *CustomerController) CreateCustomer(c *gin.Context) {
	userID, ok := tenantID(c)
	if !ok {
		return
	}

	var input CreateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	customer := models.Customer{
		Name:    input.Name,
		Phone:   input.Phone,
		Email:   input.Email,
		Address: input.Address,
		Notes:   input.Notes,
	}

	if err := ct.Store.CreateCustomer(userID, &customer); err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, customer)
}

func (ct *CustomerController) GetCustomers(c *gin.Context) {
	userID, ok := tenantID(c)
	if !ok {
		return
	}

	filter := store.CustomerFilter{OrderByCreatedAt: true}
	if name := c.Query("name"); name != "" {
		filter.Name = &name
	}
	if phone := c.Query("phone"); phone != "" {
		filter.Phone = &phone
	}

	customers, err := ct.Store.ListCustomers(userID, filter)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, customers)
}

func (ct *CustomerController) GetCustomer(c *gin.Context) {
	userID, ok := tenantID(c)
	if !ok {
		return
	}

	customerUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	customer, err := ct.Store.GetCustomer(userID, customerUUID)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, customer)
}

func (ct *CustomerController) UpdateCustomer(c *gin.Context) {
	userID, ok := tenantID(c)
	if !ok {
		return
	}

	customerUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	var patch store.CustomerPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	customer, err := ct.Store.UpdateCustomer(userID, customerUUID, patch)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, customer)
}

func (ct *CustomerController) DeleteCustomer(c *gin.Context) {
	userID, ok := tenantID(c)
	if !ok {
		return
	}

	customerUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	if err := ct.Store.DeleteCustomer(userID, customerUUID); err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}
