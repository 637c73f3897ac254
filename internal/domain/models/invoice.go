package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice payment statuses
const (
	InvoiceUnpaid  = "Unpaid"
	InvoicePaid    = "Paid"
	InvoiceOverdue = "Overdue"
)

// Invoice is one billing cycle's charge for a unit. TenantName is a
// denormalized snapshot taken at generation time, not a live join.
// BillingMonth is stored first-of-month.
type Invoice struct {
	BaseModel
	InvoiceLabel   string          `gorm:"column:invoice_id;type:varchar(40)" json:"invoice_id"` // human label
	HouseNumber    string          `gorm:"type:varchar(20);index;not null" json:"house_number"`
	TenantName     string          `gorm:"type:varchar(100)" json:"tenant_name"`
	BillingMonth   time.Time       `gorm:"type:date;not null" json:"billing_month"`
	RentAmount     decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"rent_amount"`
	Electricity    decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"electricity"`
	Water          decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"water"`
	Garbage        decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"garbage"`
	OtherUtilities decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"other_utilities"`
	AmountDue      decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"amount_due"` // rent + utilities
	PaymentStatus  string          `gorm:"type:varchar(20);not null;default:'Unpaid'" json:"payment_status"`
	DateGenerated  time.Time       `gorm:"not null" json:"date_generated"`
}
