package services

import (
	"errors"
	"time"

	"sternkern-rent-nexus/internal/domain/models"
	"sternkern-rent-nexus/internal/infrastructure/config"

	"gorm.io/gorm"
)

// InterfacePaymentService defines the payment service interface
type InterfacePaymentService interface {
	GetAllPayments(page, pageSize int) ([]models.Payment, int64, error)
	GetPaymentsByHouse(houseNumber string) ([]models.Payment, error)
	RecordPayment(payment *models.Payment) error
	LatestPayment(houseNumber string) (*models.Payment, error)
	MonthlyRevenue(monthStart time.Time) ([]models.Payment, error)
}

// PaymentService records and reads payments. The payments table is
// append-only: rows are created when money is received and never mutated.
type PaymentService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewPaymentService creates a new payment service
func NewPaymentService(db *gorm.DB, cfg *config.Config) InterfacePaymentService {
	return &PaymentService{
		DB:     db,
		Config: cfg,
	}
}

func validMethod(method string) bool {
	switch method {
	case models.PaymentMPesa, models.PaymentBankTransfer, models.PaymentCash, models.PaymentCheck:
		return true
	}
	return false
}

// 1. GetAllPayments returns payments with pagination, newest first
func (s *PaymentService) GetAllPayments(page, pageSize int) ([]models.Payment, int64, error) {
	var payments []models.Payment
	var total int64

	if err := s.DB.Model(&models.Payment{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := s.DB.Limit(pageSize).Offset(offset).
		Order("payment_date desc, id desc").
		Find(&payments).Error; err != nil {
		return nil, 0, err
	}

	return payments, total, nil
}

// 2. GetPaymentsByHouse returns one unit's full payment history, newest first
func (s *PaymentService) GetPaymentsByHouse(houseNumber string) ([]models.Payment, error) {
	var payments []models.Payment
	if err := s.DB.Where("house_number = ?", houseNumber).
		Order("payment_date desc, id desc").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// 3. RecordPayment appends one payment row
func (s *PaymentService) RecordPayment(payment *models.Payment) error {
	if payment.HouseNumber == "" {
		return errors.New("house number is required")
	}
	if !payment.AmountPaid.IsPositive() {
		return errors.New("payment amount must be positive")
	}
	if !validMethod(payment.PaymentMethod) {
		return errors.New("invalid payment method: " + payment.PaymentMethod)
	}
	if payment.PaymentDate.IsZero() {
		payment.PaymentDate = time.Now()
	}

	return s.DB.Create(payment).Error
}

// 4. LatestPayment returns the unit's most recent payment. Equal dates
// resolve by highest row id.
func (s *PaymentService) LatestPayment(houseNumber string) (*models.Payment, error) {
	var payment models.Payment
	if err := s.DB.Where("house_number = ?", houseNumber).
		Order("payment_date desc, id desc").
		First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

// 5. MonthlyRevenue returns the payments falling inside the calendar month
// starting at monthStart
func (s *PaymentService) MonthlyRevenue(monthStart time.Time) ([]models.Payment, error) {
	nextMonth := monthStart.AddDate(0, 1, 0)

	var payments []models.Payment
	if err := s.DB.Where("payment_date >= ? AND payment_date < ?", monthStart, nextMonth).
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}
