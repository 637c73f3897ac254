package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Utility records per-unit utility charges for a billing month
type Utility struct {
	BaseModel
	HouseNumber    string          `gorm:"type:varchar(20);index;not null" json:"house_number"`
	TenantName     string          `gorm:"type:varchar(100)" json:"tenant_name"`
	Electricity    decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"electricity"`
	Water          decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"water"`
	Garbage        decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"garbage"`
	OtherUtilities decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"other_utilities"`
	BillingMonth   time.Time       `gorm:"type:date;not null" json:"billing_month"`
}
