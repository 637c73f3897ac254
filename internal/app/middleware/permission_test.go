package middleware

import (
	"testing"

	"sternkern-rent-nexus/internal/domain/models"

	"github.com/stretchr/testify/assert"
)

func TestLandlordHasEveryCapability(t *testing.T) {
	caps := []Capability{
		CapManageUnits, CapManageTenants, CapGenerateInvoices,
		CapRecordPayments, CapManageMaintenance, CapManageUtilities,
		CapManageInventory, CapViewBilling, CapViewReports, CapExportReports,
	}
	for _, cap := range caps {
		assert.True(t, HasCapability(models.RoleLandlord, cap), string(cap))
	}
}

func TestCaretakerCannotExport(t *testing.T) {
	assert.True(t, HasCapability(models.RoleCaretaker, CapManageTenants))
	assert.True(t, HasCapability(models.RoleCaretaker, CapViewReports))
	assert.False(t, HasCapability(models.RoleCaretaker, CapExportReports))
}

func TestTenantIsReadOnly(t *testing.T) {
	assert.True(t, HasCapability(models.RoleTenant, CapViewBilling))
	assert.True(t, HasCapability(models.RoleTenant, CapViewReports))
	assert.False(t, HasCapability(models.RoleTenant, CapManageUnits))
	assert.False(t, HasCapability(models.RoleTenant, CapRecordPayments))
}

func TestUnknownRoleHasNothing(t *testing.T) {
	assert.False(t, HasCapability("auditor", CapViewReports))
	assert.False(t, HasCapability("", CapViewBilling))
}
