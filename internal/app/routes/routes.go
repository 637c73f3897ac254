package routes

import (
	"time"

	_ "sternkern-rent-nexus/docs"
	"sternkern-rent-nexus/internal/app/controllers"
	"sternkern-rent-nexus/internal/app/middleware"
	"sternkern-rent-nexus/internal/domain/services/container"
	"sternkern-rent-nexus/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRouter initializes and returns the configured router
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	// CORS for the admin dashboard frontend
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	serviceContainer := container.NewServiceContainer(db, cfg)
	middleware.InitAuthMiddleware(cfg, db)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	registerRoutes(r, serviceContainer)
	return r
}

// registerRoutes configures all API routes
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	api := r.Group("/api")
	registerPublicRoutes(api, container)
	registerAuthenticatedRoutes(api, container)
}

// registerPublicRoutes registers routes that need no token
func registerPublicRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// 10 requests per second per IP, burst 20
	api.Use(middleware.IPRateLimiter(10, 20))

	api.GET("/ping", controllers.HandleHealthFunc(container, "ping"))
	api.GET("/health", controllers.HandleHealthFunc(container, "ping")) // Docker health check compatibility

	healthGroup := api.Group("/health")
	healthGroup.GET("/status", controllers.HandleHealthFunc(container, "status"))
	healthGroup.GET("/cache-stats", controllers.HandleHealthFunc(container, "cacheStats"))

	// Login is throttled harder than the rest of the public surface
	api.POST("/auth/login", middleware.PathRateLimiter(2, 5), controllers.HandleJWTFunc(container, "login"))
}

// registerAuthenticatedRoutes registers routes behind the token check
func registerAuthenticatedRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	auth := api.Group("/")
	auth.Use(middleware.Authenticate())

	// 30 requests per second per IP, burst 50
	auth.Use(middleware.IPRateLimiter(30, 50))

	// Unit routes
	unitGroup := auth.Group("/units")
	unitGroup.Use(middleware.RequireCapability(middleware.CapManageUnits))
	{
		unitGroup.GET("", middleware.Cache(middleware.CacheConfig{Expiration: 30 * time.Second}), controllers.HandleUnitFunc(container, "getUnits"))
		unitGroup.GET("/vacant", controllers.HandleUnitFunc(container, "getVacantUnits"))
		unitGroup.GET("/audit", controllers.HandleUnitFunc(container, "auditOccupancy"))
		unitGroup.GET("/:id", middleware.Cache(middleware.CacheConfig{Expiration: 30 * time.Second}), controllers.HandleUnitFunc(container, "getUnit"))
		unitGroup.POST("", controllers.HandleUnitFunc(container, "createUnit"))
		unitGroup.PUT("/:id", controllers.HandleUnitFunc(container, "updateUnit"))
		unitGroup.DELETE("/:id", controllers.HandleUnitFunc(container, "deleteUnit"))
	}

	// Tenant routes
	tenantGroup := auth.Group("/tenants")
	tenantGroup.Use(middleware.RequireCapability(middleware.CapManageTenants))
	{
		tenantGroup.GET("", middleware.Cache(middleware.CacheConfig{Expiration: 30 * time.Second}), controllers.HandleTenantFunc(container, "getTenants"))
		tenantGroup.GET("/:id", controllers.HandleTenantFunc(container, "getTenant"))
		tenantGroup.POST("", controllers.HandleTenantFunc(container, "createTenant"))
		tenantGroup.PUT("/:id", controllers.HandleTenantFunc(container, "updateTenant"))
		tenantGroup.POST("/shift", controllers.HandleTenantFunc(container, "shiftTenant"))
		tenantGroup.POST("/vacate/:house_number", controllers.HandleTenantFunc(container, "vacateTenant"))
	}

	// Invoice routes
	invoiceGroup := auth.Group("/invoices")
	invoiceGroup.Use(middleware.RequireCapability(middleware.CapGenerateInvoices))
	{
		invoiceGroup.GET("", middleware.Cache(middleware.CacheConfig{Expiration: 30 * time.Second}), controllers.HandleInvoiceFunc(container, "getInvoices"))
		invoiceGroup.GET("/:id", controllers.HandleInvoiceFunc(container, "getInvoice"))
		invoiceGroup.POST("", controllers.HandleInvoiceFunc(container, "generateInvoice"))
		invoiceGroup.POST("/bulk", controllers.HandleInvoiceFunc(container, "generateBulkInvoices"))
		invoiceGroup.POST("/:id/pay", controllers.HandleInvoiceFunc(container, "markInvoicePaid"))
	}

	// Payment routes
	paymentGroup := auth.Group("/payments")
	paymentGroup.Use(middleware.RequireCapability(middleware.CapRecordPayments))
	{
		paymentGroup.GET("", middleware.Cache(middleware.CacheConfig{Expiration: 30 * time.Second}), controllers.HandlePaymentFunc(container, "getPayments"))
		paymentGroup.GET("/house/:house_number", controllers.HandlePaymentFunc(container, "getPaymentsByHouse"))
		paymentGroup.POST("", controllers.HandlePaymentFunc(container, "recordPayment"))
	}

	// Billing routes, read-only derived views
	billingGroup := auth.Group("/billing")
	billingGroup.Use(middleware.RequireCapability(middleware.CapViewBilling))
	{
		billingGroup.GET("/summary", controllers.HandleBillingFunc(container, "getRentSummary"))
		billingGroup.GET("/arrears/:house_number", controllers.HandleBillingFunc(container, "getPreviousArrears"))
		billingGroup.GET("/outstanding", controllers.HandleBillingFunc(container, "getOutstandingTotal"))
	}

	// Maintenance routes
	maintenanceGroup := auth.Group("/maintenance")
	maintenanceGroup.Use(middleware.RequireCapability(middleware.CapManageMaintenance))
	{
		maintenanceGroup.GET("", middleware.Cache(middleware.CacheConfig{Expiration: 30 * time.Second}), controllers.HandleMaintenanceFunc(container, "getMaintenanceRequests"))
		maintenanceGroup.GET("/:id", controllers.HandleMaintenanceFunc(container, "getMaintenanceRequest"))
		maintenanceGroup.POST("", controllers.HandleMaintenanceFunc(container, "createMaintenanceRequest"))
		maintenanceGroup.PUT("/:id/status", controllers.HandleMaintenanceFunc(container, "updateMaintenanceStatus"))
	}

	// Utility routes
	utilityGroup := auth.Group("/utilities")
	utilityGroup.Use(middleware.RequireCapability(middleware.CapManageUtilities))
	{
		utilityGroup.GET("", middleware.Cache(middleware.CacheConfig{Expiration: 30 * time.Second}), controllers.HandleUtilityFunc(container, "getUtilities"))
		utilityGroup.GET("/house/:house_number", controllers.HandleUtilityFunc(container, "getUtilitiesByHouse"))
		utilityGroup.POST("", controllers.HandleUtilityFunc(container, "createUtility"))
		utilityGroup.DELETE("/:id", controllers.HandleUtilityFunc(container, "deleteUtility"))
	}

	// Inventory routes
	inventoryGroup := auth.Group("/inventory")
	inventoryGroup.Use(middleware.RequireCapability(middleware.CapManageInventory))
	{
		inventoryGroup.GET("", middleware.Cache(middleware.CacheConfig{Expiration: 1 * time.Minute}), controllers.HandleInventoryFunc(container, "getItems"))
		inventoryGroup.GET("/:id", controllers.HandleInventoryFunc(container, "getItem"))
		inventoryGroup.POST("", controllers.HandleInventoryFunc(container, "createItem"))
		inventoryGroup.PUT("/:id", controllers.HandleInventoryFunc(container, "updateItem"))
		inventoryGroup.DELETE("/:id", controllers.HandleInventoryFunc(container, "deleteItem"))
	}

	// Report routes
	reportGroup := auth.Group("/reports")
	reportGroup.Use(middleware.RequireCapability(middleware.CapViewReports))
	{
		reportGroup.GET("/dashboard", controllers.HandleReportFunc(container, "getDashboardStats"))
		reportGroup.GET("/activity", middleware.CacheByParams(30*time.Second, "limit"), controllers.HandleReportFunc(container, "getRecentActivity"))
	}

	// CSV exports are landlord-only, rate limited per client and path
	exportGroup := reportGroup.Group("/export")
	exportGroup.Use(middleware.RequireCapability(middleware.CapExportReports))
	exportGroup.Use(middleware.CombinedRateLimiter(1, 3))
	{
		exportGroup.GET("/revenue", controllers.HandleReportFunc(container, "exportMonthlyRevenue"))
		exportGroup.GET("/statements", controllers.HandleReportFunc(container, "exportTenantStatements"))
		exportGroup.GET("/maintenance", controllers.HandleReportFunc(container, "exportMaintenanceCosts"))
		exportGroup.GET("/occupancy", controllers.HandleReportFunc(container, "exportOccupancyAnalysis"))
	}
}
