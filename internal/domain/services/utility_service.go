package services

import (
	"errors"

	"sternkern-rent-nexus/internal/domain/models"
	"sternkern-rent-nexus/internal/infrastructure/config"

	"gorm.io/gorm"
)

// InterfaceUtilityService defines the utility record service interface
type InterfaceUtilityService interface {
	GetAllUtilities(page, pageSize int) ([]models.Utility, int64, error)
	GetUtilitiesByHouse(houseNumber string) ([]models.Utility, error)
	CreateUtility(u *models.Utility) error
	DeleteUtility(id uint) error
}

// UtilityService manages per-unit utility charge records
type UtilityService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewUtilityService creates a new utility service
func NewUtilityService(db *gorm.DB, cfg *config.Config) InterfaceUtilityService {
	return &UtilityService{
		DB:     db,
		Config: cfg,
	}
}

// 1. GetAllUtilities returns utility records with pagination
func (s *UtilityService) GetAllUtilities(page, pageSize int) ([]models.Utility, int64, error) {
	var utilities []models.Utility
	var total int64

	if err := s.DB.Model(&models.Utility{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := s.DB.Limit(pageSize).Offset(offset).
		Order("billing_month desc, house_number asc").
		Find(&utilities).Error; err != nil {
		return nil, 0, err
	}

	return utilities, total, nil
}

// 2. GetUtilitiesByHouse returns one unit's utility history
func (s *UtilityService) GetUtilitiesByHouse(houseNumber string) ([]models.Utility, error) {
	var utilities []models.Utility
	if err := s.DB.Where("house_number = ?", houseNumber).
		Order("billing_month desc").
		Find(&utilities).Error; err != nil {
		return nil, err
	}
	return utilities, nil
}

// 3. CreateUtility records utility charges for a unit and month
func (s *UtilityService) CreateUtility(u *models.Utility) error {
	if u.HouseNumber == "" {
		return errors.New("house number is required")
	}
	if u.BillingMonth.IsZero() {
		return errors.New("billing month is required")
	}

	return s.DB.Create(u).Error
}

// 4. DeleteUtility removes a utility record
func (s *UtilityService) DeleteUtility(id uint) error {
	var u models.Utility
	if err := s.DB.First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("utility record not found")
		}
		return err
	}
	return s.DB.Delete(&u).Error
}
