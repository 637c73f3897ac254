package models

import "github.com/shopspring/decimal"

// Tenant represents a person renting a unit. HouseNumber is nil until
// the tenant is bound to a unit and references units.house_number after.
type Tenant struct {
	BaseModel
	TenantName    string          `gorm:"type:varchar(100);not null" json:"tenant_name"`
	ContactNumber string          `gorm:"type:varchar(30)" json:"contact_number"`
	Email         string          `gorm:"type:varchar(100)" json:"email"`
	HouseNumber   *string         `gorm:"type:varchar(20);index" json:"house_number"`
	// Cached carry-over balance kept for display. Derived figures are always
	// recomputed from invoice/payment history and never read this field.
	Arrears decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"arrears"`
}
