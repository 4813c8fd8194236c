package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "vendstock/internal/errors"
	"vendstock/internal/models"
	"vendstock/internal/pagination"
	"vendstock/internal/services"
)

// --- mock inventory service ---

type mockInventoryService struct {
	stockProductFn          func(name string, quantity int, stored string) (*models.Product, error)
	purchaseProductFn       func(id uint, quantity int) (*models.Product, error)
	getProductByIDFn        func(id uint) (*models.Product, error)
	listProductsFn          func(page pagination.PageRequest) (*pagination.PageResponse[models.Product], error)
	listProductsByMachineFn func(machineName string, page pagination.PageRequest) (*pagination.PageResponse[models.Product], error)
	updateProductFn         func(id uint, name string, quantity int, stored string) (*models.Product, error)
	deleteProductFn         func(id uint) error
	listStockHistoryFn      func(machineID, productID uint, page pagination.PageRequest) (*pagination.PageResponse[models.StockHistory], error)
}

func (m *mockInventoryService) StockProduct(name string, quantity int, stored string) (*models.Product, error) {
	if m.stockProductFn != nil {
		return m.stockProductFn(name, quantity, stored)
	}
	return &models.Product{}, nil
}

func (m *mockInventoryService) PurchaseProduct(id uint, quantity int) (*models.Product, error) {
	if m.purchaseProductFn != nil {
		return m.purchaseProductFn(id, quantity)
	}
	return &models.Product{}, nil
}

func (m *mockInventoryService) GetProductByID(id uint) (*models.Product, error) {
	if m.getProductByIDFn != nil {
		return m.getProductByIDFn(id)
	}
	return &models.Product{}, nil
}

func (m *mockInventoryService) ListProducts(page pagination.PageRequest) (*pagination.PageResponse[models.Product], error) {
	if m.listProductsFn != nil {
		return m.listProductsFn(page)
	}
	resp := pagination.NewPageResponse([]models.Product{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockInventoryService) ListProductsByMachine(machineName string, page pagination.PageRequest) (*pagination.PageResponse[models.Product], error) {
	if m.listProductsByMachineFn != nil {
		return m.listProductsByMachineFn(machineName, page)
	}
	resp := pagination.NewPageResponse([]models.Product{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockInventoryService) UpdateProduct(id uint, name string, quantity int, stored string) (*models.Product, error) {
	if m.updateProductFn != nil {
		return m.updateProductFn(id, name, quantity, stored)
	}
	return &models.Product{}, nil
}

func (m *mockInventoryService) DeleteProduct(id uint) error {
	if m.deleteProductFn != nil {
		return m.deleteProductFn(id)
	}
	return nil
}

func (m *mockInventoryService) ListStockHistory(machineID, productID uint, page pagination.PageRequest) (*pagination.PageResponse[models.StockHistory], error) {
	if m.listStockHistoryFn != nil {
		return m.listStockHistoryFn(machineID, productID, page)
	}
	resp := pagination.NewPageResponse([]models.StockHistory{}, 1, 20, 0)
	return &resp, nil
}

var _ services.InventoryServicer = (*mockInventoryService)(nil)

func setupProductRouter(handler *ProductHandler) *gin.Engine {
	r := gin.New()
	r.POST("/products", handler.StockProduct)
	r.GET("/products", handler.ListProducts)
	r.GET("/products/:id", handler.GetProduct)
	r.PUT("/products/:id", handler.UpdateProduct)
	r.DELETE("/products/:id", handler.DeleteProduct)
	r.POST("/products/:id/purchase", handler.PurchaseProduct)
	r.GET("/stock-history", handler.ListStockHistory)
	return r
}

// --- tests ---

func TestProductHandler_StockProduct(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		svc := &mockInventoryService{
			stockProductFn: func(name string, quantity int, stored string) (*models.Product, error) {
				return &models.Product{
					Base:     models.Base{ID: 1},
					Name:     name,
					Quantity: quantity,
					Stored:   stored,
				}, nil
			},
		}
		handler := NewProductHandler(svc, &mockAuditService{})
		r := setupProductRouter(handler)

		rec := doRequest(r, "POST", "/products", `{"name":"Cola","quantity":10,"stored":"M1"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		product := result["product"].(map[string]interface{})
		if product["quantity"].(float64) != 10 {
			t.Errorf("expected quantity=10, got %v", product["quantity"])
		}
	})

	t.Run("accepts zero quantity", func(t *testing.T) {
		svc := &mockInventoryService{
			stockProductFn: func(name string, quantity int, stored string) (*models.Product, error) {
				return &models.Product{Base: models.Base{ID: 1}, Name: name, Quantity: quantity, Stored: stored}, nil
			},
		}
		handler := NewProductHandler(svc, &mockAuditService{})
		r := setupProductRouter(handler)

		rec := doRequest(r, "POST", "/products", `{"name":"Cola","quantity":0,"stored":"M1"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("returns 400 on negative quantity", func(t *testing.T) {
		handler := NewProductHandler(&mockInventoryService{}, &mockAuditService{})
		r := setupProductRouter(handler)

		rec := doRequest(r, "POST", "/products", `{"name":"Cola","quantity":-1,"stored":"M1"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on missing quantity", func(t *testing.T) {
		handler := NewProductHandler(&mockInventoryService{}, &mockAuditService{})
		r := setupProductRouter(handler)

		rec := doRequest(r, "POST", "/products", `{"name":"Cola","stored":"M1"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 404 on unknown machine", func(t *testing.T) {
		svc := &mockInventoryService{
			stockProductFn: func(_ string, _ int, _ string) (*models.Product, error) {
				return nil, apperrors.ErrMachineNotFound
			},
		}
		handler := NewProductHandler(svc, &mockAuditService{})
		r := setupProductRouter(handler)

		rec := doRequest(r, "POST", "/products", `{"name":"Cola","quantity":10,"stored":"Nowhere"}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "MACHINE_NOT_FOUND")
	})
}

func TestProductHandler_PurchaseProduct(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		svc := &mockInventoryService{
			purchaseProductFn: func(id uint, quantity int) (*models.Product, error) {
				return &models.Product{
					Base:     models.Base{ID: id},
					Name:     "Cola",
					Quantity: 10 - quantity,
					Stored:   "M1",
				}, nil
			},
		}
		handler := NewProductHandler(svc, &mockAuditService{})
		r := setupProductRouter(handler)

		rec := doRequest(r, "POST", "/products/1/purchase", `{"quantity":3}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		product := result["product"].(map[string]interface{})
		if product["quantity"].(float64) != 7 {
			t.Errorf("expected quantity=7, got %v", product["quantity"])
		}
	})

	t.Run("returns 400 on insufficient stock", func(t *testing.T) {
		svc := &mockInventoryService{
			purchaseProductFn: func(_ uint, _ int) (*models.Product, error) {
				return nil, apperrors.ErrInsufficientStock
			},
		}
		handler := NewProductHandler(svc, &mockAuditService{})
		r := setupProductRouter(handler)

		rec := doRequest(r, "POST", "/products/1/purchase", `{"quantity":100}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INSUFFICIENT_STOCK")
	})

	t.Run("returns 400 on zero quantity", func(t *testing.T) {
		handler := NewProductHandler(&mockInventoryService{}, &mockAuditService{})
		r := setupProductRouter(handler)

		rec := doRequest(r, "POST", "/products/1/purchase", `{"quantity":0}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 404 when product not found", func(t *testing.T) {
		svc := &mockInventoryService{
			purchaseProductFn: func(_ uint, _ int) (*models.Product, error) {
				return nil, apperrors.ErrProductNotFound
			},
		}
		handler := NewProductHandler(svc, &mockAuditService{})
		r := setupProductRouter(handler)

		rec := doRequest(r, "POST", "/products/999/purchase", `{"quantity":1}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "PRODUCT_NOT_FOUND")
	})

	t.Run("returns 503 on transaction failure", func(t *testing.T) {
		svc := &mockInventoryService{
			purchaseProductFn: func(_ uint, _ int) (*models.Product, error) {
				return nil, apperrors.ErrTransactionFailure
			},
		}
		handler := NewProductHandler(svc, &mockAuditService{})
		r := setupProductRouter(handler)

		rec := doRequest(r, "POST", "/products/1/purchase", `{"quantity":1}`)

		if rec.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "TRANSACTION_FAILURE")
	})
}

func TestProductHandler_ListProducts(t *testing.T) {
	t.Run("returns 200 with all products", func(t *testing.T) {
		svc := &mockInventoryService{
			listProductsFn: func(_ pagination.PageRequest) (*pagination.PageResponse[models.Product], error) {
				resp := pagination.NewPageResponse([]models.Product{
					{Base: models.Base{ID: 1}, Name: "Cola", Stored: "M1"},
					{Base: models.Base{ID: 2}, Name: "Water", Stored: "M2"},
				}, 1, 20, 2)
				return &resp, nil
			},
		}
		handler := NewProductHandler(svc, &mockAuditService{})
		r := setupProductRouter(handler)

		rec := doRequest(r, "GET", "/products", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		data := result["data"].([]interface{})
		if len(data) != 2 {
			t.Errorf("expected 2 products, got %d", len(data))
		}
	})

	t.Run("filters by machine query param", func(t *testing.T) {
		var gotMachine string
		svc := &mockInventoryService{
			listProductsByMachineFn: func(machineName string, _ pagination.PageRequest) (*pagination.PageResponse[models.Product], error) {
				gotMachine = machineName
				resp := pagination.NewPageResponse([]models.Product{
					{Base: models.Base{ID: 1}, Name: "Cola", Stored: machineName},
				}, 1, 20, 1)
				return &resp, nil
			},
		}
		handler := NewProductHandler(svc, &mockAuditService{})
		r := setupProductRouter(handler)

		rec := doRequest(r, "GET", "/products?machine=M1", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotMachine != "M1" {
			t.Errorf("expected machine filter M1, got %q", gotMachine)
		}
		result := parseJSON(t, rec)
		if result["total_items"].(float64) != 1 {
			t.Errorf("expected total_items=1, got %v", result["total_items"])
		}
	})
}

func TestProductHandler_GetProduct(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		svc := &mockInventoryService{
			getProductByIDFn: func(id uint) (*models.Product, error) {
				return &models.Product{Base: models.Base{ID: id}, Name: "Cola", Quantity: 10, Stored: "M1"}, nil
			},
		}
		handler := NewProductHandler(svc, &mockAuditService{})
		r := setupProductRouter(handler)

		rec := doRequest(r, "GET", "/products/1", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		product := result["product"].(map[string]interface{})
		if product["stored"] != "M1" {
			t.Errorf("expected stored=M1, got %v", product["stored"])
		}
	})

	t.Run("returns 404 when not found", func(t *testing.T) {
		svc := &mockInventoryService{
			getProductByIDFn: func(_ uint) (*models.Product, error) {
				return nil, apperrors.ErrProductNotFound
			},
		}
		handler := NewProductHandler(svc, &mockAuditService{})
		r := setupProductRouter(handler)

		rec := doRequest(r, "GET", "/products/999", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestProductHandler_UpdateProduct(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		svc := &mockInventoryService{
			updateProductFn: func(id uint, name string, quantity int, stored string) (*models.Product, error) {
				return &models.Product{Base: models.Base{ID: id}, Name: name, Quantity: quantity, Stored: stored}, nil
			},
		}
		handler := NewProductHandler(svc, &mockAuditService{})
		r := setupProductRouter(handler)

		rec := doRequest(r, "PUT", "/products/1", `{"name":"Cola Zero","quantity":12,"stored":"M1"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		product := result["product"].(map[string]interface{})
		if product["name"] != "Cola Zero" {
			t.Errorf("expected name=Cola Zero, got %v", product["name"])
		}
	})

	t.Run("returns 404 on unknown machine", func(t *testing.T) {
		svc := &mockInventoryService{
			updateProductFn: func(_ uint, _ string, _ int, _ string) (*models.Product, error) {
				return nil, apperrors.ErrMachineNotFound
			},
		}
		handler := NewProductHandler(svc, &mockAuditService{})
		r := setupProductRouter(handler)

		rec := doRequest(r, "PUT", "/products/1", `{"name":"Cola","quantity":10,"stored":"Nowhere"}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestProductHandler_DeleteProduct(t *testing.T) {
	t.Run("returns 204 on success", func(t *testing.T) {
		handler := NewProductHandler(&mockInventoryService{}, &mockAuditService{})
		r := setupProductRouter(handler)

		rec := doRequest(r, "DELETE", "/products/1", "")

		if rec.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", rec.Code)
		}
	})

	t.Run("returns 404 when not found", func(t *testing.T) {
		svc := &mockInventoryService{
			deleteProductFn: func(_ uint) error {
				return apperrors.ErrProductNotFound
			},
		}
		handler := NewProductHandler(svc, &mockAuditService{})
		r := setupProductRouter(handler)

		rec := doRequest(r, "DELETE", "/products/999", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestProductHandler_ListStockHistory(t *testing.T) {
	t.Run("returns 200 with ledger entries", func(t *testing.T) {
		svc := &mockInventoryService{
			listStockHistoryFn: func(machineID, productID uint, _ pagination.PageRequest) (*pagination.PageResponse[models.StockHistory], error) {
				resp := pagination.NewPageResponse([]models.StockHistory{
					{Base: models.Base{ID: 1}, MachineID: machineID, ProductID: productID, Quantity: 10},
					{Base: models.Base{ID: 2}, MachineID: machineID, ProductID: productID, Quantity: 7},
				}, 1, 20, 2)
				return &resp, nil
			},
		}
		handler := NewProductHandler(svc, &mockAuditService{})
		r := setupProductRouter(handler)

		rec := doRequest(r, "GET", "/stock-history?machine_id=1&product_id=1", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		data := result["data"].([]interface{})
		if len(data) != 2 {
			t.Errorf("expected 2 ledger entries, got %d", len(data))
		}
	})

	t.Run("returns 400 on missing machine_id", func(t *testing.T) {
		handler := NewProductHandler(&mockInventoryService{}, &mockAuditService{})
		r := setupProductRouter(handler)

		rec := doRequest(r, "GET", "/stock-history?product_id=1", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 200 with empty page for quiet pair", func(t *testing.T) {
		handler := NewProductHandler(&mockInventoryService{}, &mockAuditService{})
		r := setupProductRouter(handler)

		rec := doRequest(r, "GET", "/stock-history?machine_id=5&product_id=9", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["total_items"].(float64) != 0 {
			t.Errorf("expected total_items=0, got %v", result["total_items"])
		}
	})
}
