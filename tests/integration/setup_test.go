package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"vendstock/internal/handlers"
	"vendstock/internal/logger"
	"vendstock/internal/middleware"
	"vendstock/internal/models"
	"vendstock/internal/services"
	"vendstock/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.Machine{},
		&models.Product{},
		&models.StockHistory{},
		&models.AuditLog{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	// Services
	machineService := services.NewMachineService(db)
	inventoryService := services.NewInventoryService(db)
	auditService := services.NewAuditService(db)

	// Handlers
	machineHandler := handlers.NewMachineHandler(machineService, auditService)
	productHandler := handlers.NewProductHandler(inventoryService, auditService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	machines := v1.Group("/machines")
	machines.POST("", machineHandler.RegisterMachine)
	machines.GET("", machineHandler.ListMachines)
	machines.GET("/:id", machineHandler.GetMachine)
	machines.PUT("/:id", machineHandler.UpdateMachine)
	machines.DELETE("/:id", machineHandler.DeleteMachine)

	products := v1.Group("/products")
	products.POST("", productHandler.StockProduct)
	products.GET("", productHandler.ListProducts)
	products.GET("/:id", productHandler.GetProduct)
	products.PUT("/:id", productHandler.UpdateProduct)
	products.DELETE("/:id", productHandler.DeleteProduct)
	products.POST("/:id/purchase", productHandler.PurchaseProduct)

	v1.GET("/stock-history", productHandler.ListStockHistory)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// registerMachine registers a machine and returns its ID.
func (app *testApp) registerMachine(t *testing.T, name, location string) float64 {
	t.Helper()
	body := fmt.Sprintf(`{"name":%q,"location":%q}`, name, location)
	rec := app.request("POST", "/api/v1/machines", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("register machine failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	machine := result["machine"].(map[string]interface{})
	return machine["id"].(float64)
}

// stockProduct stocks a product in a machine and returns its ID.
func (app *testApp) stockProduct(t *testing.T, name string, quantity int, stored string) float64 {
	t.Helper()
	body := fmt.Sprintf(`{"name":%q,"quantity":%d,"stored":%q}`, name, quantity, stored)
	rec := app.request("POST", "/api/v1/products", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("stock product failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	product := result["product"].(map[string]interface{})
	return product["id"].(float64)
}
