package services

import (
	"testing"

	"sternkern-rent-nexus/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTenantService(t *testing.T) (*TenantService, *OccupancyService) {
	t.Helper()
	db := newTestDB(t)
	cfg := testConfig()
	occupancy := NewOccupancyService(db, cfg).(*OccupancyService)
	tenant := NewTenantService(db, cfg, occupancy).(*TenantService)
	return tenant, occupancy
}

func requireUnitStatus(t *testing.T, svc *TenantService, house, want string) {
	t.Helper()
	var unit models.Unit
	require.NoError(t, svc.DB.Where("house_number = ?", house).First(&unit).Error)
	require.Equal(t, want, unit.OccupancyStatus)
}

func TestAddTenantOccupiesUnit(t *testing.T) {
	svc, _ := newTenantService(t)
	seedUnit(t, svc.DB, "A1", 25000, models.OccupancyUnoccupied)

	tenant := &models.Tenant{TenantName: "Jane Wanjiku"}
	require.NoError(t, svc.AddTenant(tenant, "A1"))

	requireUnitStatus(t, svc, "A1", models.OccupancyOccupied)
	require.NotNil(t, tenant.HouseNumber)
	assert.Equal(t, "A1", *tenant.HouseNumber)
}

func TestAddTenantRejectsNonVacantUnit(t *testing.T) {
	svc, _ := newTenantService(t)
	seedUnit(t, svc.DB, "A1", 25000, models.OccupancyOccupied)

	err := svc.AddTenant(&models.Tenant{TenantName: "Jane Wanjiku"}, "A1")
	assert.Error(t, err)

	seedUnit(t, svc.DB, "M1", 10000, models.OccupancyUnderMaintenance)
	err = svc.AddTenant(&models.Tenant{TenantName: "Peter Kamau"}, "M1")
	assert.Error(t, err)
}

func TestAddTenantRejectsUnknownUnit(t *testing.T) {
	svc, _ := newTenantService(t)

	err := svc.AddTenant(&models.Tenant{TenantName: "Jane Wanjiku"}, "Z9")
	assert.Error(t, err)
}

func TestShiftTenantMovesBindingAndStatuses(t *testing.T) {
	svc, _ := newTenantService(t)
	seedUnit(t, svc.DB, "A1", 25000, models.OccupancyUnoccupied)
	seedUnit(t, svc.DB, "B2", 30000, models.OccupancyUnoccupied)

	require.NoError(t, svc.AddTenant(&models.Tenant{TenantName: "Jane Wanjiku"}, "A1"))
	require.NoError(t, svc.ShiftTenant("A1", "B2"))

	requireUnitStatus(t, svc, "A1", models.OccupancyUnoccupied)
	requireUnitStatus(t, svc, "B2", models.OccupancyOccupied)

	tenant, err := svc.GetTenantByHouse("B2")
	require.NoError(t, err)
	assert.Equal(t, "Jane Wanjiku", tenant.TenantName)
}

func TestShiftTenantRoundTrip(t *testing.T) {
	svc, occupancy := newTenantService(t)
	seedUnit(t, svc.DB, "A1", 25000, models.OccupancyUnoccupied)
	seedUnit(t, svc.DB, "B2", 30000, models.OccupancyUnoccupied)

	require.NoError(t, svc.AddTenant(&models.Tenant{TenantName: "Jane Wanjiku"}, "A1"))
	require.NoError(t, svc.ShiftTenant("A1", "B2"))
	require.NoError(t, svc.ShiftTenant("B2", "A1"))

	requireUnitStatus(t, svc, "A1", models.OccupancyOccupied)
	requireUnitStatus(t, svc, "B2", models.OccupancyUnoccupied)

	mismatches, err := occupancy.Audit()
	require.NoError(t, err)
	assert.Empty(t, mismatches)
}

func TestShiftTenantRejectsOccupiedTarget(t *testing.T) {
	svc, _ := newTenantService(t)
	seedUnit(t, svc.DB, "A1", 25000, models.OccupancyUnoccupied)
	seedUnit(t, svc.DB, "B2", 30000, models.OccupancyUnoccupied)

	require.NoError(t, svc.AddTenant(&models.Tenant{TenantName: "Jane Wanjiku"}, "A1"))
	require.NoError(t, svc.AddTenant(&models.Tenant{TenantName: "Peter Kamau"}, "B2"))

	err := svc.ShiftTenant("A1", "B2")
	assert.Error(t, err)

	// Nothing moved
	requireUnitStatus(t, svc, "A1", models.OccupancyOccupied)
	requireUnitStatus(t, svc, "B2", models.OccupancyOccupied)
}

func TestShiftTenantRejectsSameUnit(t *testing.T) {
	svc, _ := newTenantService(t)
	seedUnit(t, svc.DB, "A1", 25000, models.OccupancyUnoccupied)
	require.NoError(t, svc.AddTenant(&models.Tenant{TenantName: "Jane Wanjiku"}, "A1"))

	assert.Error(t, svc.ShiftTenant("A1", "A1"))
}

func TestVacateTenantFreesUnit(t *testing.T) {
	svc, occupancy := newTenantService(t)
	seedUnit(t, svc.DB, "A1", 25000, models.OccupancyUnoccupied)
	require.NoError(t, svc.AddTenant(&models.Tenant{TenantName: "Jane Wanjiku"}, "A1"))

	require.NoError(t, svc.VacateTenant("A1"))

	requireUnitStatus(t, svc, "A1", models.OccupancyUnoccupied)
	_, err := svc.GetTenantByHouse("A1")
	assert.Error(t, err)

	mismatches, err := occupancy.Audit()
	require.NoError(t, err)
	assert.Empty(t, mismatches)
}

func TestUpdateTenantIgnoresHouseNumber(t *testing.T) {
	svc, _ := newTenantService(t)
	seedUnit(t, svc.DB, "A1", 25000, models.OccupancyUnoccupied)

	tenant := &models.Tenant{TenantName: "Jane Wanjiku"}
	require.NoError(t, svc.AddTenant(tenant, "A1"))

	updated, err := svc.UpdateTenant(tenant.ID, map[string]interface{}{
		"tenant_name":  "Jane W. Kamau",
		"house_number": "B2",
	})
	require.NoError(t, err)

	assert.Equal(t, "Jane W. Kamau", updated.TenantName)
	require.NotNil(t, updated.HouseNumber)
	assert.Equal(t, "A1", *updated.HouseNumber)
}

func TestOccupancyAuditFlagsDrift(t *testing.T) {
	svc, occupancy := newTenantService(t)
	seedUnit(t, svc.DB, "A1", 25000, models.OccupancyOccupied) // no tenant row
	seedUnit(t, svc.DB, "M1", 10000, models.OccupancyUnderMaintenance)

	mismatches, err := occupancy.Audit()
	require.NoError(t, err)
	require.Len(t, mismatches, 1)
	assert.Equal(t, "A1", mismatches[0].HouseNumber)
	assert.Equal(t, models.OccupancyUnoccupied, mismatches[0].ExpectedStatus)
}
