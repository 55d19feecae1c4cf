package controllers

import (
	"net/http"
	"strconv"

	"omex-backend/models"
	"omex-backend/store"
	"omex-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProductController struct {
	Store *store.Store
}

func NewProductController(s *store.Store) *ProductController {
	return &ProductController{Store: s}
}

// CreateProductInput defines the expected JSON structure for creating a product
type CreateProductInput struct {
	Name        string     `json:"name" binding:"required"`
	Description string     `json:"description"`
	Price       float64    `json:"price" binding:"min=0"`
	CostPrice   *float64   `json:"costPrice"`
	Quantity    int        `json:"quantity" binding:"min=0"`
	MinQuantity int        `json:"minQuantity" binding:"min=0"`
	Category    *string    `json:"category"`
	SupplierID  *uuid.UUID `json:"supplierId"`
	Barcode     *string    `json:"barcode"`
}

func (p *ProductController) CreateProduct(c *gin.Context) {
	userID, ok := tenantID(c)
	if !ok {
		return
	}

	var input CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	product := models.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		CostPrice:   input.CostPrice,
		Quantity:    input.Quantity,
		MinQuantity: input.MinQuantity,
		Category:    input.Category,
		SupplierID:  input.SupplierID,
		Barcode:     input.Barcode,
	}

	if err := p.Store.CreateProduct(userID, &product); err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, product)
}

func (p *ProductController) GetProducts(c *gin.Context) {
	userID, ok := tenantID(c)
	if !ok {
		return
	}

	filter := store.ProductFilter{OrderByCreatedAt: true}
	if category := c.Query("category"); category != "" {
		filter.Category = &category
	}
	if barcode := c.Query("barcode"); barcode != "" {
		filter.Barcode = &barcode
	}
	if minPrice := c.Query("minPrice"); minPrice != "" {
		if v, err := strconv.ParseFloat(minPrice, 64); err == nil {
			filter.MinPrice = &v
		}
	}
	if maxPrice := c.Query("maxPrice"); maxPrice != "" {
		if v, err := strconv.ParseFloat(maxPrice, 64); err == nil {
			filter.MaxPrice = &v
		}
	}
	if c.Query("lowStock") == "true" {
		filter.LowStock = true
	}

	products, err := p.Store.ListProducts(userID, filter)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

func (p *ProductController) GetProduct(c *gin.Context) {
	userID, ok := tenantID(c)
	if !ok {
		return
	}

	productUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	product, err := p.Store.GetProduct(userID, productUUID)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

func (p *ProductController) UpdateProduct(c *gin.Context) {
	userID, ok := tenantID(c)
	if !ok {
		return
	}

	productUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	var patch store.ProductPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	product, err := p.Store.UpdateProduct(userID, productUUID, patch)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

func (p *ProductController) DeleteProduct(c *gin.Context) {
	userID, ok := tenantID(c)
	if !ok {
		return
	}

	productUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	if err := p.Store.DeleteProduct(userID, productUUID); err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
