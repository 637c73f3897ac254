package services

import (
	"testing"
	"time"

	"sternkern-rent-nexus/internal/domain/models"
	"sternkern-rent-nexus/internal/infrastructure/config"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory store with the full schema migrated
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Unit{},
		&models.Tenant{},
		&models.Invoice{},
		&models.Payment{},
		&models.Maintenance{},
		&models.Utility{},
		&models.InventoryItem{},
	))

	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecretKey:            "test-secret",
		DefaultLandlordPassword: "admin123",
	}
}

func seedUnit(t *testing.T, db *gorm.DB, house string, rent int64, status string) *models.Unit {
	t.Helper()

	unit := &models.Unit{
		HouseNumber:     house,
		Bedrooms:        2,
		RentAmount:      decimal.NewFromInt(rent),
		OccupancyStatus: status,
	}
	require.NoError(t, db.Create(unit).Error)
	return unit
}

func seedTenant(t *testing.T, db *gorm.DB, name, house string) *models.Tenant {
	t.Helper()

	tenant := &models.Tenant{
		TenantName:    name,
		ContactNumber: "0712000000",
	}
	if house != "" {
		tenant.HouseNumber = &house
	}
	require.NoError(t, db.Create(tenant).Error)
	return tenant
}

func seedInvoice(t *testing.T, db *gorm.DB, house string, month time.Time, amountDue int64) *models.Invoice {
	t.Helper()

	invoice := &models.Invoice{
		InvoiceLabel:  newInvoiceLabel(),
		HouseNumber:   house,
		BillingMonth:  month,
		RentAmount:    decimal.NewFromInt(amountDue),
		AmountDue:     decimal.NewFromInt(amountDue),
		PaymentStatus: models.InvoiceUnpaid,
		DateGenerated: month,
	}
	require.NoError(t, db.Create(invoice).Error)
	return invoice
}

func seedPayment(t *testing.T, db *gorm.DB, house string, amount int64, date time.Time) *models.Payment {
	t.Helper()

	payment := &models.Payment{
		HouseNumber:   house,
		AmountPaid:    decimal.NewFromInt(amount),
		PaymentMethod: models.PaymentMPesa,
		PaymentDate:   date,
	}
	require.NoError(t, db.Create(payment).Error)
	return payment
}

func monthDate(year int, month time.Month) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}
