package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"sternkern-rent-nexus/internal/domain/models"
	"sternkern-rent-nexus/internal/infrastructure/config"
	"sternkern-rent-nexus/pkg/logger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ErrDuplicateInvoice is returned when an invoice already exists for the
// unit and billing month.
var ErrDuplicateInvoice = errors.New("invoice already exists for this unit and billing month")

// SingleInvoiceInput is the operator-supplied invoice form. Rent is
// pre-filled from the unit's live rent by the caller but editable.
type SingleInvoiceInput struct {
	TenantName     string
	HouseNumber    string
	RentAmount     decimal.Decimal
	Electricity    decimal.Decimal
	Water          decimal.Decimal
	Garbage        decimal.Decimal
	OtherUtilities decimal.Decimal
	BillingMonth   time.Time
}

// BulkResult summarizes one bulk generation run
type BulkResult struct {
	Created int      `json:"created"`
	Skipped []string `json:"skipped,omitempty"` // houses already invoiced for the month
}

// InterfaceInvoiceService defines the invoice generator interface
type InterfaceInvoiceService interface {
	GetAllInvoices(page, pageSize int) ([]models.Invoice, int64, error)
	GetInvoiceByID(id uint) (*models.Invoice, error)
	GenerateSingle(input SingleInvoiceInput) (*models.Invoice, error)
	GenerateBulk(billingMonth time.Time) (*BulkResult, error)
	MarkPaid(id uint) (*models.Invoice, error)
}

// InvoiceService produces invoice records for a billing period. Uniqueness
// on (house_number, billing_month) is enforced here: single-mode rejects a
// duplicate, bulk-mode skips houses already invoiced so a re-run converges.
type InvoiceService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(db *gorm.DB, cfg *config.Config) InterfaceInvoiceService {
	return &InvoiceService{
		DB:     db,
		Config: cfg,
	}
}

// firstOfMonth normalizes a billing date to the first-of-month convention
func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// newInvoiceLabel mints a short human label, e.g. "INV-3F2A9C41"
func newInvoiceLabel() string {
	id := uuid.New().String()
	return "INV-" + strings.ToUpper(id[:8])
}

func (s *InvoiceService) invoiceExists(houseNumber string, billingMonth time.Time) (bool, error) {
	var count int64
	if err := s.DB.Model(&models.Invoice{}).
		Where("house_number = ? AND billing_month = ?", houseNumber, billingMonth).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// 1. GetAllInvoices returns invoices with pagination, newest cycle first
func (s *InvoiceService) GetAllInvoices(page, pageSize int) ([]models.Invoice, int64, error) {
	var invoices []models.Invoice
	var total int64

	if err := s.DB.Model(&models.Invoice{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := s.DB.Limit(pageSize).Offset(offset).
		Order("billing_month desc, house_number asc").
		Find(&invoices).Error; err != nil {
		return nil, 0, err
	}

	return invoices, total, nil
}

// 2. GetInvoiceByID returns an invoice by row id
func (s *InvoiceService) GetInvoiceByID(id uint) (*models.Invoice, error) {
	var invoice models.Invoice
	if err := s.DB.First(&invoice, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("invoice not found")
		}
		return nil, err
	}
	return &invoice, nil
}

// 3. GenerateSingle inserts one Unpaid invoice from operator-supplied
// fields. Blank utility amounts default to zero.
func (s *InvoiceService) GenerateSingle(input SingleInvoiceInput) (*models.Invoice, error) {
	if input.HouseNumber == "" {
		return nil, errors.New("house number is required")
	}
	month := firstOfMonth(input.BillingMonth)

	exists, err := s.invoiceExists(input.HouseNumber, month)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: %s %s", ErrDuplicateInvoice, input.HouseNumber, month.Format("2006-01"))
	}

	amountDue := input.RentAmount.
		Add(input.Electricity).
		Add(input.Water).
		Add(input.Garbage).
		Add(input.OtherUtilities)

	invoice := &models.Invoice{
		InvoiceLabel:   newInvoiceLabel(),
		HouseNumber:    input.HouseNumber,
		TenantName:     input.TenantName,
		BillingMonth:   month,
		RentAmount:     input.RentAmount,
		Electricity:    input.Electricity,
		Water:          input.Water,
		Garbage:        input.Garbage,
		OtherUtilities: input.OtherUtilities,
		AmountDue:      amountDue,
		PaymentStatus:  models.InvoiceUnpaid,
		DateGenerated:  time.Now(),
	}

	if err := s.DB.Create(invoice).Error; err != nil {
		return nil, err
	}
	return invoice, nil
}

// 4. GenerateBulk synthesizes one invoice per tenant with a bound unit,
// using each unit's live rent and zero utilities for the selected month.
// Tenants without a bound unit are skipped; an empty batch writes nothing.
func (s *InvoiceService) GenerateBulk(billingMonth time.Time) (*BulkResult, error) {
	month := firstOfMonth(billingMonth)

	var tenants []models.Tenant
	if err := s.DB.Where("house_number IS NOT NULL").Find(&tenants).Error; err != nil {
		return nil, err
	}

	var units []models.Unit
	if err := s.DB.Find(&units).Error; err != nil {
		return nil, err
	}
	rentByHouse := make(map[string]decimal.Decimal, len(units))
	for _, u := range units {
		rentByHouse[u.HouseNumber] = u.RentAmount
	}

	result := &BulkResult{}
	batch := make([]models.Invoice, 0, len(tenants))
	for _, t := range tenants {
		if t.HouseNumber == nil || *t.HouseNumber == "" {
			continue
		}
		house := *t.HouseNumber

		exists, err := s.invoiceExists(house, month)
		if err != nil {
			return nil, err
		}
		if exists {
			result.Skipped = append(result.Skipped, house)
			continue
		}

		rent := rentByHouse[house]
		batch = append(batch, models.Invoice{
			InvoiceLabel:  newInvoiceLabel(),
			HouseNumber:   house,
			TenantName:    t.TenantName,
			BillingMonth:  month,
			RentAmount:    rent,
			AmountDue:     rent,
			PaymentStatus: models.InvoiceUnpaid,
			DateGenerated: time.Now(),
		})
	}

	// No eligible tenants: no-op, not an error
	if len(batch) == 0 {
		return result, nil
	}

	if err := s.DB.Create(&batch).Error; err != nil {
		return nil, err
	}
	result.Created = len(batch)
	logger.Info("bulk invoice run for %s: %d created, %d skipped", month.Format("2006-01"), result.Created, len(result.Skipped))
	return result, nil
}

// 5. MarkPaid settles an invoice: status Paid, amount due zeroed
func (s *InvoiceService) MarkPaid(id uint) (*models.Invoice, error) {
	invoice, err := s.GetInvoiceByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.DB.Model(invoice).Updates(map[string]interface{}{
		"payment_status": models.InvoicePaid,
		"amount_due":     decimal.Zero,
	}).Error; err != nil {
		return nil, err
	}

	return s.GetInvoiceByID(id)
}
