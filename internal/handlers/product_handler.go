package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "vendstock/internal/errors"
	"vendstock/internal/pagination"
	"vendstock/internal/services"
)

// ProductHandler handles product stock and ledger requests.
type ProductHandler struct {
	inventoryService services.InventoryServicer
	auditService     services.AuditServicer
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(inventoryService services.InventoryServicer, auditService services.AuditServicer) *ProductHandler {
	return &ProductHandler{inventoryService: inventoryService, auditService: auditService}
}

// StockProductRequest represents the request payload for stocking a product.
// Quantity is the absolute stock level to set, not a delta.
type StockProductRequest struct {
	Name     string `json:"name" binding:"required,entity_name,max=50"`
	Quantity *int   `json:"quantity" binding:"required,gte=0"`
	Stored   string `json:"stored" binding:"required,entity_name,max=50"`
}

// UpdateProductRequest represents the request payload for updating a product.
type UpdateProductRequest struct {
	Name     string `json:"name" binding:"required,entity_name,max=50"`
	Quantity *int   `json:"quantity" binding:"required,gte=0"`
	Stored   string `json:"stored" binding:"required,entity_name,max=50"`
}

// PurchaseRequest represents the request payload for purchasing a product.
type PurchaseRequest struct {
	Quantity int `json:"quantity" binding:"required,gt=0"`
}

// ListProductsQuery holds the query parameters for listing products.
type ListProductsQuery struct {
	pagination.PageRequest
	Machine string `form:"machine" binding:"omitempty,max=50"`
}

// HistoryQuery holds the query parameters for listing stock history.
type HistoryQuery struct {
	pagination.PageRequest
	MachineID uint `form:"machine_id" binding:"required"`
	ProductID uint `form:"product_id" binding:"required"`
}

// StockProduct handles stocking a product in a machine
// @Summary     Stock a product
// @Description Set the stock level for a product in a machine; the first call inserts the product, later calls overwrite its quantity
// @Tags        products
// @Accept      json
// @Produce     json
// @Param       request body StockProductRequest true "Product details"
// @Success     201 {object} models.Product "Stocked product"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Machine not found"
// @Failure     503 {object} ErrorResponse "Transaction failure"
// @Router      /products [post]
func (h *ProductHandler) StockProduct(c *gin.Context) {
	var req StockProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	product, err := h.inventoryService.StockProduct(req.Name, *req.Quantity, req.Stored)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("STOCK_PRODUCT", "product", product.ID, c.ClientIP(),
		map[string]interface{}{"name": req.Name, "quantity": *req.Quantity, "stored": req.Stored})

	c.JSON(http.StatusCreated, gin.H{"product": product})
}

// GetProduct handles retrieving a single product by ID
// @Summary     Get a product
// @Description Get a product by its ID
// @Tags        products
// @Produce     json
// @Param       id path int true "Product ID"
// @Success     200 {object} models.Product "Product"
// @Failure     404 {object} ErrorResponse "Product not found"
// @Router      /products/{id} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	product, err := h.inventoryService.GetProductByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": product})
}

// ListProducts handles listing products, optionally filtered by machine name
// @Summary     List products
// @Description List products, optionally filtered by the machine they are stocked in; an unknown machine name yields an empty page
// @Tags        products
// @Produce     json
// @Param       machine query string false "Machine name filter"
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size"
// @Success     200 {object} pagination.PageResponse[models.Product] "Products"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	var query ListProductsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var (
		products interface{}
		err      error
	)
	if query.Machine != "" {
		products, err = h.inventoryService.ListProductsByMachine(query.Machine, query.PageRequest)
	} else {
		products, err = h.inventoryService.ListProducts(query.PageRequest)
	}
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

// UpdateProduct handles updating a product
// @Summary     Update a product
// @Description Replace a product's name, quantity, and machine
// @Tags        products
// @Accept      json
// @Produce     json
// @Param       id path int true "Product ID"
// @Param       request body UpdateProductRequest true "Product details"
// @Success     200 {object} models.Product "Updated product"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Product or machine not found"
// @Router      /products/{id} [put]
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	product, err := h.inventoryService.UpdateProduct(id, req.Name, *req.Quantity, req.Stored)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("UPDATE_PRODUCT", "product", product.ID, c.ClientIP(),
		map[string]interface{}{"name": req.Name, "quantity": *req.Quantity, "stored": req.Stored})

	c.JSON(http.StatusOK, gin.H{"product": product})
}

// DeleteProduct handles deleting a product
// @Summary     Delete a product
// @Description Delete a product; its stock-history rows are retained
// @Tags        products
// @Produce     json
// @Param       id path int true "Product ID"
// @Success     204 "Product deleted"
// @Failure     404 {object} ErrorResponse "Product not found"
// @Router      /products/{id} [delete]
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.inventoryService.DeleteProduct(id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("DELETE_PRODUCT", "product", id, c.ClientIP(), nil)

	c.Status(http.StatusNoContent)
}

// PurchaseProduct handles purchasing units of a product
// @Summary     Purchase a product
// @Description Atomically decrement a product's stock and record a ledger entry with the post-decrement quantity
// @Tags        products
// @Accept      json
// @Produce     json
// @Param       id path int true "Product ID"
// @Param       request body PurchaseRequest true "Purchase quantity"
// @Success     200 {object} models.Product "Product after purchase"
// @Failure     400 {object} ErrorResponse "Invalid input or insufficient stock"
// @Failure     404 {object} ErrorResponse "Product or machine not found"
// @Failure     503 {object} ErrorResponse "Transaction failure"
// @Router      /products/{id}/purchase [post]
func (h *ProductHandler) PurchaseProduct(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	product, err := h.inventoryService.PurchaseProduct(id, req.Quantity)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("PURCHASE_PRODUCT", "product", product.ID, c.ClientIP(),
		map[string]interface{}{"quantity": req.Quantity, "remaining": product.Quantity})

	c.JSON(http.StatusOK, gin.H{"product": product})
}

// ListStockHistory handles listing the stock ledger for a machine/product pair
// @Summary     List stock history
// @Description List the stock ledger for a machine/product pair in ascending timestamp order; a pair with no events yields an empty page
// @Tags        stock-history
// @Produce     json
// @Param       machine_id query int true "Machine ID"
// @Param       product_id query int true "Product ID"
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size"
// @Success     200 {object} pagination.PageResponse[models.StockHistory] "Ledger entries"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /stock-history [get]
func (h *ProductHandler) ListStockHistory(c *gin.Context) {
	var query HistoryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	history, err := h.inventoryService.ListStockHistory(query.MachineID, query.ProductID, query.PageRequest)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, history)
}
