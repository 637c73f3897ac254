package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment methods
const (
	PaymentMPesa        = "M-Pesa"
	PaymentBankTransfer = "Bank Transfer"
	PaymentCash         = "Cash"
	PaymentCheck        = "Check"
)

// Payment is an append-only record of money received. Never mutated or
// deleted. InvoiceID optionally links the payment to one invoice.
type Payment struct {
	BaseModel
	TenantName    string          `gorm:"type:varchar(100)" json:"tenant_name"`
	HouseNumber   string          `gorm:"type:varchar(20);index;not null" json:"house_number"`
	AmountPaid    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount_paid"`
	PaymentMethod string          `gorm:"type:varchar(20);not null" json:"payment_method"`
	InvoiceID     *uint           `gorm:"index" json:"invoice_id,omitempty"`
	PaymentDate   time.Time       `gorm:"type:date;not null;index" json:"payment_date"`
}
