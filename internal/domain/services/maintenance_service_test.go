package services

import (
	"testing"
	"time"

	"sternkern-rent-nexus/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMaintenanceService(t *testing.T) *MaintenanceService {
	t.Helper()
	return NewMaintenanceService(newTestDB(t), testConfig()).(*MaintenanceService)
}

func createRequest(t *testing.T, svc *MaintenanceService) *models.Maintenance {
	t.Helper()
	m := &models.Maintenance{
		HouseNumber:       "A1",
		Description:       "Leaking kitchen tap",
		DateOfMaintenance: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, svc.CreateMaintenance(m))
	return m
}

func TestCreateMaintenanceDefaultsToPending(t *testing.T) {
	svc := newMaintenanceService(t)

	m := createRequest(t, svc)
	assert.Equal(t, models.MaintenancePending, m.Status)
}

func TestUpdateStatusForwardOnly(t *testing.T) {
	svc := newMaintenanceService(t)
	m := createRequest(t, svc)

	updated, err := svc.UpdateStatus(m.ID, models.MaintenanceInProgress)
	require.NoError(t, err)
	assert.Equal(t, models.MaintenanceInProgress, updated.Status)

	updated, err = svc.UpdateStatus(m.ID, models.MaintenanceCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.MaintenanceCompleted, updated.Status)

	// No moving back
	_, err = svc.UpdateStatus(m.ID, models.MaintenancePending)
	assert.Error(t, err)
	_, err = svc.UpdateStatus(m.ID, models.MaintenanceInProgress)
	assert.Error(t, err)
}

func TestUpdateStatusSameStatusAllowed(t *testing.T) {
	svc := newMaintenanceService(t)
	m := createRequest(t, svc)

	_, err := svc.UpdateStatus(m.ID, models.MaintenancePending)
	assert.NoError(t, err)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	svc := newMaintenanceService(t)
	m := createRequest(t, svc)

	_, err := svc.UpdateStatus(m.ID, "Cancelled")
	assert.Error(t, err)
}

func TestPendingCount(t *testing.T) {
	svc := newMaintenanceService(t)
	createRequest(t, svc)
	m := createRequest(t, svc)

	_, err := svc.UpdateStatus(m.ID, models.MaintenanceCompleted)
	require.NoError(t, err)

	count, err := svc.PendingCount()
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}
