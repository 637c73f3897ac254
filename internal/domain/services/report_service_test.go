package services

import (
	"testing"
	"time"

	"sternkern-rent-nexus/internal/domain/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReportService(t *testing.T) *ReportService {
	t.Helper()
	return NewReportService(newTestDB(t), testConfig()).(*ReportService)
}

func TestOccupancyRate(t *testing.T) {
	assert.Equal(t, 0, OccupancyRate(0, 0))
	assert.Equal(t, 0, OccupancyRate(0, 10))
	assert.Equal(t, 75, OccupancyRate(3, 4))
	assert.Equal(t, 67, OccupancyRate(2, 3))
	assert.Equal(t, 100, OccupancyRate(5, 5))
}

func TestExportMonthlyRevenueFormat(t *testing.T) {
	svc := newReportService(t)

	seedPayment(t, svc.DB, "A1", 600, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC))
	seedPayment(t, svc.DB, "B2", 400, time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC))

	export, err := svc.ExportMonthlyRevenue()
	require.NoError(t, err)

	assert.Equal(t, FileMonthlyRevenue, export.Filename)
	// Headers unquoted, strings JSON-quoted, decimals bare
	assert.Equal(t, "Month,Revenue\n\"2024-01\",1000\n", string(export.Data))
}

func TestExportMonthlyRevenueSortsMonths(t *testing.T) {
	svc := newReportService(t)

	seedPayment(t, svc.DB, "A1", 200, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC))
	seedPayment(t, svc.DB, "A1", 100, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC))

	export, err := svc.ExportMonthlyRevenue()
	require.NoError(t, err)
	assert.Equal(t, "Month,Revenue\n\"2024-01\",100\n\"2024-03\",200\n", string(export.Data))
}

func TestExportsAreDeterministic(t *testing.T) {
	svc := newReportService(t)

	seedUnit(t, svc.DB, "A1", 25000, models.OccupancyOccupied)
	seedTenant(t, svc.DB, "Jane Wanjiku", "A1")
	seedPayment(t, svc.DB, "A1", 25000, time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC))

	first, err := svc.ExportOccupancyAnalysis()
	require.NoError(t, err)
	second, err := svc.ExportOccupancyAnalysis()
	require.NoError(t, err)

	assert.Equal(t, first.Data, second.Data)
}

func TestDashboardStats(t *testing.T) {
	svc := newReportService(t)
	svc.now = func() time.Time { return time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC) }

	seedUnit(t, svc.DB, "A1", 25000, models.OccupancyOccupied)
	seedUnit(t, svc.DB, "B2", 30000, models.OccupancyOccupied)
	seedUnit(t, svc.DB, "C3", 12000, models.OccupancyUnoccupied)
	seedUnit(t, svc.DB, "D4", 15000, models.OccupancyUnoccupied)
	seedTenant(t, svc.DB, "Jane Wanjiku", "A1")
	seedTenant(t, svc.DB, "Peter Kamau", "B2")

	seedPayment(t, svc.DB, "A1", 25000, time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC))
	seedPayment(t, svc.DB, "B2", 30000, time.Date(2024, 12, 5, 0, 0, 0, 0, time.UTC))

	seedInvoice(t, svc.DB, "A1", monthDate(2024, 11), 2000) // overdue
	seedInvoice(t, svc.DB, "B2", monthDate(2025, 1), 30000) // current cycle

	require.NoError(t, svc.DB.Create(&models.Maintenance{
		HouseNumber:       "A1",
		Description:       "Leaking tap",
		Status:            models.MaintenancePending,
		DateOfMaintenance: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
	}).Error)

	stats, err := svc.GetDashboardStats()
	require.NoError(t, err)

	assert.Equal(t, 4, stats.TotalUnits)
	assert.Equal(t, 2, stats.OccupiedUnits)
	assert.Equal(t, 2, stats.VacantUnits)
	assert.EqualValues(t, 2, stats.TotalTenants)
	assert.Equal(t, 50, stats.OccupancyRate)
	assert.True(t, stats.MonthlyRevenue.Equal(decimal.NewFromInt(25000)), "got %s", stats.MonthlyRevenue)
	assert.True(t, stats.TotalRevenue.Equal(decimal.NewFromInt(55000)))
	assert.True(t, stats.OutstandingTotal.Equal(decimal.NewFromInt(32000)))
	assert.EqualValues(t, 1, stats.OverdueInvoices)
	assert.EqualValues(t, 1, stats.PendingMaintenance)
}

func TestRecentActivityMergedAndLimited(t *testing.T) {
	svc := newReportService(t)

	seedPayment(t, svc.DB, "A1", 25000, time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC))
	require.NoError(t, svc.DB.Create(&models.Maintenance{
		HouseNumber:       "B2",
		Description:       "Broken window",
		Status:            models.MaintenancePending,
		DateOfMaintenance: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
	}).Error)

	items, err := svc.GetRecentActivity(6)
	require.NoError(t, err)
	require.Len(t, items, 2)

	// Newest first regardless of source
	assert.Equal(t, "maintenance", items[0].Type)
	assert.Equal(t, "payment", items[1].Type)
}

func TestExportTenantStatementsColumns(t *testing.T) {
	svc := newReportService(t)

	payment := &models.Payment{
		TenantName:    "Jane Wanjiku",
		HouseNumber:   "A1",
		AmountPaid:    decimal.NewFromInt(25000),
		PaymentMethod: models.PaymentMPesa,
		PaymentDate:   time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, svc.DB.Create(payment).Error)

	export, err := svc.ExportTenantStatements()
	require.NoError(t, err)

	assert.Equal(t, FileTenantStatements, export.Filename)
	assert.Equal(t,
		"Tenant,House,Amount,Method,Date\n\"Jane Wanjiku\",\"A1\",25000,\"M-Pesa\",\"2025-01-05\"\n",
		string(export.Data))
}
