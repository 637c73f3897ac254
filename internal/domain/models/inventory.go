package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem is a furnishing or appliance tracked against a unit
type InventoryItem struct {
	BaseModel
	ItemName       string          `gorm:"type:varchar(100);not null" json:"item_name"`
	ItemCategory   string          `gorm:"type:varchar(50)" json:"item_category"`
	HouseNumber    string          `gorm:"type:varchar(20);index" json:"house_number"`
	Quantity       int             `gorm:"not null;default:1" json:"quantity"`
	Condition      string          `gorm:"type:varchar(30)" json:"condition"` // New, Good, Fair, Needs Repair
	PurchaseDate   *time.Time      `gorm:"type:date" json:"purchase_date,omitempty"`
	PurchasePrice  decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"purchase_price"`
	WarrantyExpiry *time.Time      `gorm:"type:date" json:"warranty_expiry,omitempty"`
	Notes          string          `gorm:"type:varchar(500)" json:"notes"`
}

// TableName overrides the default pluralization
func (InventoryItem) TableName() string {
	return "inventory"
}
