package services

import (
	"errors"

	"sternkern-rent-nexus/internal/domain/models"
	"sternkern-rent-nexus/internal/infrastructure/config"

	"gorm.io/gorm"
)

// InterfaceInventoryService defines the inventory service interface
type InterfaceInventoryService interface {
	GetAllItems(page, pageSize int) ([]models.InventoryItem, int64, error)
	GetItemByID(id uint) (*models.InventoryItem, error)
	CreateItem(item *models.InventoryItem) error
	UpdateItem(id uint, updates map[string]interface{}) (*models.InventoryItem, error)
	DeleteItem(id uint) error
}

// InventoryService manages furnishings and appliances tracked per unit
type InventoryService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewInventoryService creates a new inventory service
func NewInventoryService(db *gorm.DB, cfg *config.Config) InterfaceInventoryService {
	return &InventoryService{
		DB:     db,
		Config: cfg,
	}
}

// 1. GetAllItems returns inventory items with pagination
func (s *InventoryService) GetAllItems(page, pageSize int) ([]models.InventoryItem, int64, error) {
	var items []models.InventoryItem
	var total int64

	if err := s.DB.Model(&models.InventoryItem{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := s.DB.Limit(pageSize).Offset(offset).
		Order("item_name asc").
		Find(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// 2. GetItemByID returns an inventory item by row id
func (s *InventoryService) GetItemByID(id uint) (*models.InventoryItem, error) {
	var item models.InventoryItem
	if err := s.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("inventory item not found")
		}
		return nil, err
	}
	return &item, nil
}

// 3. CreateItem adds an inventory item
func (s *InventoryService) CreateItem(item *models.InventoryItem) error {
	if item.ItemName == "" {
		return errors.New("item name is required")
	}
	if item.Quantity <= 0 {
		item.Quantity = 1
	}

	return s.DB.Create(item).Error
}

// 4. UpdateItem updates inventory item fields
func (s *InventoryService) UpdateItem(id uint, updates map[string]interface{}) (*models.InventoryItem, error) {
	item, err := s.GetItemByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.DB.Model(item).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetItemByID(id)
}

// 5. DeleteItem removes an inventory item
func (s *InventoryService) DeleteItem(id uint) error {
	item, err := s.GetItemByID(id)
	if err != nil {
		return err
	}
	return s.DB.Delete(item).Error
}
