package container

import (
	"log"
	"sync"

	"sternkern-rent-nexus/internal/domain/services"
	"sternkern-rent-nexus/internal/infrastructure/config"

	"gorm.io/gorm"
)

// ServiceContainer wires all services together
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config

	// Auth
	jwtService services.InterfaceJWTService

	// Cache
	redisService services.InterfaceRedisService

	// Core consistency/billing services
	occupancyService services.InterfaceOccupancyService
	tenantService    services.InterfaceTenantService
	billingService   services.InterfaceBillingService
	invoiceService   services.InterfaceInvoiceService

	// Supporting business services
	unitService        services.InterfaceUnitService
	paymentService     services.InterfacePaymentService
	maintenanceService services.InterfaceMaintenanceService
	utilityService     services.InterfaceUtilityService
	inventoryService   services.InterfaceInventoryService
	reportService      services.InterfaceReportService

	mu sync.RWMutex
}

// NewServiceContainer creates a new service container
func NewServiceContainer(db *gorm.DB, cfg *config.Config) *ServiceContainer {
	if db == nil {
		panic("database connection is nil")
	}

	if cfg == nil {
		panic("config is nil")
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
	}
	container.initializeServices()
	return container
}

// initializeServices initializes all services in dependency order
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Auth
	c.jwtService = services.NewJWTService(c.config, c.db)

	// Cache - best effort, business services work without it
	c.redisService = services.NewRedisService(c.config)
	if err := c.redisService.Ping(); err != nil {
		log.Printf("Redis unavailable, derived-view caching disabled: %v", err)
	}

	// Core: the tracker first, the assignment service depends on it
	c.occupancyService = services.NewOccupancyService(c.db, c.config)
	c.tenantService = services.NewTenantService(c.db, c.config, c.occupancyService)
	c.billingService = services.NewBillingService(c.db, c.config)
	c.invoiceService = services.NewInvoiceService(c.db, c.config)

	// Supporting services
	c.unitService = services.NewUnitService(c.db, c.config)
	c.paymentService = services.NewPaymentService(c.db, c.config)
	c.maintenanceService = services.NewMaintenanceService(c.db, c.config)
	c.utilityService = services.NewUtilityService(c.db, c.config)
	c.inventoryService = services.NewInventoryService(c.db, c.config)
	c.reportService = services.NewReportService(c.db, c.config)
}

// GetService returns the named service
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "jwt":
		return c.jwtService
	case "redis":
		return c.redisService
	case "occupancy":
		return c.occupancyService
	case "tenant":
		return c.tenantService
	case "billing":
		return c.billingService
	case "invoice":
		return c.invoiceService
	case "unit":
		return c.unitService
	case "payment":
		return c.paymentService
	case "maintenance":
		return c.maintenanceService
	case "utility":
		return c.utilityService
	case "inventory":
		return c.inventoryService
	case "report":
		return c.reportService
	default:
		return nil
	}
}

// GetDB returns the database connection
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}
