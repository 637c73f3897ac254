package services

import (
	"errors"

	"sternkern-rent-nexus/internal/domain/models"
	"sternkern-rent-nexus/internal/infrastructure/config"

	"gorm.io/gorm"
)

// InterfaceUnitService defines the unit CRUD service interface
type InterfaceUnitService interface {
	GetAllUnits(page, pageSize int) ([]models.Unit, int64, error)
	GetUnitByID(id uint) (*models.Unit, error)
	GetUnitByHouse(houseNumber string) (*models.Unit, error)
	CreateUnit(unit *models.Unit) error
	UpdateUnit(id uint, updates map[string]interface{}) (*models.Unit, error)
	DeleteUnit(id uint) error
}

// UnitService manages the unit records themselves. Occupancy status is
// normally owned by the assignment service; the manual status override in
// UpdateUnit is kept for parity with the operator dialog and is a known
// consistency risk surfaced by the occupancy audit.
type UnitService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewUnitService creates a new unit service
func NewUnitService(db *gorm.DB, cfg *config.Config) InterfaceUnitService {
	return &UnitService{
		DB:     db,
		Config: cfg,
	}
}

// 1. GetAllUnits returns units with pagination
func (s *UnitService) GetAllUnits(page, pageSize int) ([]models.Unit, int64, error) {
	var units []models.Unit
	var total int64

	if err := s.DB.Model(&models.Unit{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := s.DB.Limit(pageSize).Offset(offset).Order("house_number asc").Find(&units).Error; err != nil {
		return nil, 0, err
	}

	return units, total, nil
}

// 2. GetUnitByID returns a unit by row id
func (s *UnitService) GetUnitByID(id uint) (*models.Unit, error) {
	var unit models.Unit
	if err := s.DB.First(&unit, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("unit not found")
		}
		return nil, err
	}
	return &unit, nil
}

// 3. GetUnitByHouse returns a unit by its natural key
func (s *UnitService) GetUnitByHouse(houseNumber string) (*models.Unit, error) {
	var unit models.Unit
	if err := s.DB.Where("house_number = ?", houseNumber).First(&unit).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("unit not found: " + houseNumber)
		}
		return nil, err
	}
	return &unit, nil
}

// 4. CreateUnit creates a new unit with a unique house number
func (s *UnitService) CreateUnit(unit *models.Unit) error {
	if unit.HouseNumber == "" {
		return errors.New("house number is required")
	}
	if unit.RentAmount.IsNegative() {
		return errors.New("rent amount must not be negative")
	}

	var count int64
	if err := s.DB.Model(&models.Unit{}).Where("house_number = ?", unit.HouseNumber).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return errors.New("house number already exists: " + unit.HouseNumber)
	}

	if unit.OccupancyStatus == "" {
		unit.OccupancyStatus = models.OccupancyUnoccupied
	}

	return s.DB.Create(unit).Error
}

// 5. UpdateUnit updates unit fields
func (s *UnitService) UpdateUnit(id uint, updates map[string]interface{}) (*models.Unit, error) {
	unit, err := s.GetUnitByID(id)
	if err != nil {
		return nil, err
	}

	if houseNumber, ok := updates["house_number"].(string); ok && houseNumber != unit.HouseNumber {
		// The house number is the natural key tenant/invoice/payment rows
		// reference; renaming it would orphan them
		return nil, errors.New("house number cannot be changed")
	}

	if err := s.DB.Model(unit).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetUnitByID(id)
}

// 6. DeleteUnit removes a unit that has no tenant bound to it
func (s *UnitService) DeleteUnit(id uint) error {
	unit, err := s.GetUnitByID(id)
	if err != nil {
		return err
	}

	var tenantCount int64
	if err := s.DB.Model(&models.Tenant{}).Where("house_number = ?", unit.HouseNumber).Count(&tenantCount).Error; err != nil {
		return err
	}
	if tenantCount > 0 {
		return errors.New("unit has a tenant and cannot be deleted")
	}

	return s.DB.Delete(unit).Error
}
