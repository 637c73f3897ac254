package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Maintenance statuses, forward-only: Pending -> In Progress -> Completed
const (
	MaintenancePending    = "Pending"
	MaintenanceInProgress = "In Progress"
	MaintenanceCompleted  = "Completed"
)

// Maintenance is a repair/upkeep request against a unit
type Maintenance struct {
	BaseModel
	HouseNumber       string          `gorm:"type:varchar(20);index;not null" json:"house_number"`
	Description       string          `gorm:"type:varchar(500);not null" json:"description"`
	Status            string          `gorm:"type:varchar(20);not null;default:'Pending'" json:"status"`
	ContractorName    string          `gorm:"type:varchar(100)" json:"contractor_name"`
	Cost              decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"cost"`
	DateOfMaintenance time.Time       `gorm:"type:date;not null" json:"date_of_maintenance"`
}
