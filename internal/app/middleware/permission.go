package middleware

import (
	"sternkern-rent-nexus/internal/domain/models"
	"sternkern-rent-nexus/internal/error/response"

	"github.com/gin-gonic/gin"
)

// Capability names what an endpoint requires. Role gating is decided here,
// once, at the access-control boundary; handlers carry no role conditionals.
type Capability string

const (
	CapManageUnits       Capability = "manage_units"
	CapManageTenants     Capability = "manage_tenants"
	CapGenerateInvoices  Capability = "generate_invoices"
	CapRecordPayments    Capability = "record_payments"
	CapManageMaintenance Capability = "manage_maintenance"
	CapManageUtilities   Capability = "manage_utilities"
	CapManageInventory   Capability = "manage_inventory"
	CapViewBilling       Capability = "view_billing"
	CapViewReports       Capability = "view_reports"
	CapExportReports     Capability = "export_reports"
)

// roleCapabilities is the single capability table keyed by role.
// landlord: everything. caretaker: day-to-day operations, no exports.
// tenant: read-only billing/report views.
var roleCapabilities = map[string]map[Capability]bool{
	models.RoleLandlord: {
		CapManageUnits:       true,
		CapManageTenants:     true,
		CapGenerateInvoices:  true,
		CapRecordPayments:    true,
		CapManageMaintenance: true,
		CapManageUtilities:   true,
		CapManageInventory:   true,
		CapViewBilling:       true,
		CapViewReports:       true,
		CapExportReports:     true,
	},
	models.RoleCaretaker: {
		CapManageUnits:       true,
		CapManageTenants:     true,
		CapGenerateInvoices:  true,
		CapRecordPayments:    true,
		CapManageMaintenance: true,
		CapManageUtilities:   true,
		CapManageInventory:   true,
		CapViewBilling:       true,
		CapViewReports:       true,
	},
	models.RoleTenant: {
		CapViewBilling: true,
		CapViewReports: true,
	},
}

// HasCapability reports whether a role grants a capability
func HasCapability(role string, cap Capability) bool {
	caps, ok := roleCapabilities[role]
	if !ok {
		return false
	}
	return caps[cap]
}

// RequireCapability gates a route group on one capability. Must run after
// Authenticate has set the role in the context.
func RequireCapability(cap Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextRole)
		if !HasCapability(role, cap) {
			response.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
