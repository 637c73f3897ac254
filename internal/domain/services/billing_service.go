package services

import (
	"time"

	"sternkern-rent-nexus/internal/domain/models"
	"sternkern-rent-nexus/internal/infrastructure/config"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// placeholder rendered when an occupied unit has no matching tenant row.
// The join is best-effort, not enforced at query time.
const missingField = "—"

// RentRow is one unit's line in the rent summary:
// balance = previous_arrears + current_rent - latest_paid_amount
type RentRow struct {
	HouseNumber         string          `json:"house_number"`
	TenantName          string          `json:"tenant_name"`
	Contact             string          `json:"contact"`
	PreviousArrears     decimal.Decimal `json:"previous_arrears"`
	CurrentRent         decimal.Decimal `json:"current_rent"`
	LatestPaidAmount    decimal.Decimal `json:"latest_paid_amount"`
	LatestPaymentMethod string          `json:"latest_payment_method"`
	Balance             decimal.Decimal `json:"balance"`
}

// InterfaceBillingService defines the billing aggregator interface
type InterfaceBillingService interface {
	RentSummary() ([]RentRow, error)
	PreviousArrears(houseNumber string) (decimal.Decimal, error)
	OutstandingTotal() (decimal.Decimal, error)
}

// BillingService computes per-unit balances from invoice history, live rent
// and the latest payment. All figures are recomputed on every call; the
// cached tenants.arrears column is never consulted.
type BillingService struct {
	DB     *gorm.DB
	Config *config.Config

	// now is injectable so month-boundary arithmetic is testable
	now func() time.Time
}

// NewBillingService creates a new billing service
func NewBillingService(db *gorm.DB, cfg *config.Config) InterfaceBillingService {
	return &BillingService{
		DB:     db,
		Config: cfg,
		now:    time.Now,
	}
}

// monthStart returns the first day of the current calendar month
func (s *BillingService) monthStart() time.Time {
	now := s.now()
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// 1. RentSummary builds one row per occupied unit
func (s *BillingService) RentSummary() ([]RentRow, error) {
	var units []models.Unit
	if err := s.DB.Where("occupancy_status = ?", models.OccupancyOccupied).
		Order("house_number asc").
		Find(&units).Error; err != nil {
		return nil, err
	}
	if len(units) == 0 {
		return []RentRow{}, nil
	}

	houses := make([]string, 0, len(units))
	for _, u := range units {
		houses = append(houses, u.HouseNumber)
	}

	var tenants []models.Tenant
	if err := s.DB.Where("house_number IN ?", houses).Find(&tenants).Error; err != nil {
		return nil, err
	}
	tenantByHouse := make(map[string]models.Tenant, len(tenants))
	for _, t := range tenants {
		if t.HouseNumber != nil {
			tenantByHouse[*t.HouseNumber] = t
		}
	}

	// Latest payment per house: payment_date desc with id desc as the
	// tie-break, so equal-date payments resolve deterministically.
	var payments []models.Payment
	if err := s.DB.Where("house_number IN ?", houses).
		Order("payment_date desc, id desc").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	latestByHouse := make(map[string]models.Payment, len(houses))
	for _, p := range payments {
		if _, ok := latestByHouse[p.HouseNumber]; !ok {
			latestByHouse[p.HouseNumber] = p
		}
	}

	// Carry-over arrears: invoices strictly before the current month start
	// with a positive amount due. The current cycle's own invoice is the
	// current bill, not a carry-over.
	monthStart := s.monthStart()
	var invoices []models.Invoice
	if err := s.DB.Where("house_number IN ? AND billing_month < ? AND amount_due > 0", houses, monthStart).
		Find(&invoices).Error; err != nil {
		return nil, err
	}
	arrearsByHouse := make(map[string]decimal.Decimal, len(houses))
	for _, inv := range invoices {
		arrearsByHouse[inv.HouseNumber] = arrearsByHouse[inv.HouseNumber].Add(inv.AmountDue)
	}

	rows := make([]RentRow, 0, len(units))
	for _, u := range units {
		row := RentRow{
			HouseNumber:         u.HouseNumber,
			TenantName:          missingField,
			Contact:             missingField,
			PreviousArrears:     arrearsByHouse[u.HouseNumber],
			CurrentRent:         u.RentAmount,
			LatestPaymentMethod: missingField,
		}
		if t, ok := tenantByHouse[u.HouseNumber]; ok {
			row.TenantName = t.TenantName
			if t.ContactNumber != "" {
				row.Contact = t.ContactNumber
			}
		}
		if p, ok := latestByHouse[u.HouseNumber]; ok {
			row.LatestPaidAmount = p.AmountPaid
			row.LatestPaymentMethod = p.PaymentMethod
		}
		row.Balance = row.PreviousArrears.Add(row.CurrentRent).Sub(row.LatestPaidAmount)
		rows = append(rows, row)
	}
	return rows, nil
}

// 2. PreviousArrears sums amount_due of one unit's invoices dated strictly
// before the current month start
func (s *BillingService) PreviousArrears(houseNumber string) (decimal.Decimal, error) {
	var invoices []models.Invoice
	if err := s.DB.Where("house_number = ? AND billing_month < ? AND amount_due > 0", houseNumber, s.monthStart()).
		Find(&invoices).Error; err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, inv := range invoices {
		total = total.Add(inv.AmountDue)
	}
	return total, nil
}

// 3. OutstandingTotal sums amount_due across all invoices
func (s *BillingService) OutstandingTotal() (decimal.Decimal, error) {
	var invoices []models.Invoice
	if err := s.DB.Select("amount_due").Find(&invoices).Error; err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, inv := range invoices {
		total = total.Add(inv.AmountDue)
	}
	return total, nil
}
