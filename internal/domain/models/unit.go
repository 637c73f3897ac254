package models

import "github.com/shopspring/decimal"

// Occupancy statuses. Occupied must hold exactly when a tenant row
// references the unit's house number.
const (
	OccupancyOccupied         = "Occupied"
	OccupancyUnoccupied       = "Unoccupied"
	OccupancyUnderMaintenance = "Under Maintenance"
)

// Unit represents a rentable dwelling identified by its house number
type Unit struct {
	BaseModel
	HouseNumber     string          `gorm:"type:varchar(20);unique;not null" json:"house_number"` // natural key, e.g. "A1"
	Bedrooms        int             `gorm:"not null;default:1" json:"bedrooms"`
	RentAmount      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"rent_amount"` // live rent, KSh
	OccupancyStatus string          `gorm:"type:varchar(20);not null;default:'Unoccupied'" json:"occupancy_status"`
}
