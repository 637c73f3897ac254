package controllers

import (
	"strconv"
	"time"

	"sternkern-rent-nexus/internal/domain/models"
	"sternkern-rent-nexus/internal/domain/services"
	"sternkern-rent-nexus/internal/domain/services/container"
	"sternkern-rent-nexus/internal/error/code"
	"sternkern-rent-nexus/internal/error/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// InterfaceInventoryController defines the inventory controller interface
type InterfaceInventoryController interface {
	GetItems()
	GetItem()
	CreateItem()
	UpdateItem()
	DeleteItem()
}

// InventoryController handles inventory requests
type InventoryController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewInventoryController creates a new inventory controller
func NewInventoryController(ctx *gin.Context, container *container.ServiceContainer) *InventoryController {
	return &InventoryController{
		Ctx:       ctx,
		Container: container,
	}
}

// InventoryRequest represents an inventory item
type InventoryRequest struct {
	ItemName      string          `json:"item_name" binding:"required" example:"Refrigerator"`
	ItemCategory  string          `json:"item_category" example:"Appliance"`
	HouseNumber   string          `json:"house_number" example:"A1"`
	Quantity      int             `json:"quantity" example:"1"`
	Condition     string          `json:"condition" example:"Good"`
	PurchaseDate  string          `json:"purchase_date" example:"2024-06-15"`
	PurchasePrice decimal.Decimal `json:"purchase_price" example:"45000"`
	Notes         string          `json:"notes" example:"Serial no. KX-2291"`
}

// UpdateInventoryRequest represents an inventory item update
type UpdateInventoryRequest struct {
	ItemName     string `json:"item_name" example:"Refrigerator"`
	ItemCategory string `json:"item_category" example:"Appliance"`
	HouseNumber  string `json:"house_number" example:"B2"`
	Quantity     *int   `json:"quantity" example:"2"`
	Condition    string `json:"condition" example:"Needs Repair"`
	Notes        string `json:"notes" example:"Door seal worn"`
}

// GetItems lists all inventory items
// @Summary      List inventory
// @Description  Get all inventory items with pagination
// @Tags         Inventory
// @Accept       json
// @Produce      json
// @Param        page query int false "Page number, default 1"
// @Param        page_size query int false "Page size, default 10"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /inventory [get]
func (c *InventoryController) GetItems() {
	page, _ := strconv.Atoi(c.Ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.Ctx.DefaultQuery("page_size", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	inventoryService := c.Container.GetService("inventory").(services.InterfaceInventoryService)
	items, total, err := inventoryService.GetAllItems(page, pageSize)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to list inventory", nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"total":       total,
		"page":        page,
		"page_size":   pageSize,
		"total_pages": (total + int64(pageSize) - 1) / int64(pageSize),
		"data":        items,
	})
}

// GetItem returns one inventory item
// @Summary      Get inventory item
// @Description  Get an inventory item by ID
// @Tags         Inventory
// @Accept       json
// @Produce      json
// @Param        id path int true "Inventory item ID"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /inventory/{id} [get]
func (c *InventoryController) GetItem() {
	idUint, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "invalid inventory item id")
		return
	}

	inventoryService := c.Container.GetService("inventory").(services.InterfaceInventoryService)
	item, err := inventoryService.GetItemByID(uint(idUint))
	if err != nil {
		if err.Error() == "inventory item not found" {
			response.NotFound(c.Ctx, err.Error())
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to get inventory item", nil)
		return
	}

	response.Success(c.Ctx, item)
}

// CreateItem adds an inventory item
// @Summary      Create inventory item
// @Description  Add a furnishing or appliance to the inventory
// @Tags         Inventory
// @Accept       json
// @Produce      json
// @Param        request body InventoryRequest true "Inventory fields"
// @Security     BearerAuth
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /inventory [post]
func (c *InventoryController) CreateItem() {
	var req InventoryRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request parameters", nil)
		return
	}

	item := &models.InventoryItem{
		ItemName:      req.ItemName,
		ItemCategory:  req.ItemCategory,
		HouseNumber:   req.HouseNumber,
		Quantity:      req.Quantity,
		Condition:     req.Condition,
		PurchasePrice: req.PurchasePrice,
		Notes:         req.Notes,
	}
	if req.PurchaseDate != "" {
		date, err := time.Parse("2006-01-02", req.PurchaseDate)
		if err != nil {
			response.ParamError(c.Ctx, "purchase_date must be YYYY-MM-DD")
			return
		}
		item.PurchaseDate = &date
	}

	inventoryService := c.Container.GetService("inventory").(services.InterfaceInventoryService)
	if err := inventoryService.CreateItem(item); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrValidation, err.Error(), nil)
		return
	}

	invalidateDerivedViews(c.Container)
	response.Created(c.Ctx, item)
}

// UpdateItem updates inventory item fields
// @Summary      Update inventory item
// @Description  Update an inventory item's fields
// @Tags         Inventory
// @Accept       json
// @Produce      json
// @Param        id path int true "Inventory item ID"
// @Param        request body UpdateInventoryRequest true "Fields to update"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /inventory/{id} [put]
func (c *InventoryController) UpdateItem() {
	idUint, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "invalid inventory item id")
		return
	}

	var req UpdateInventoryRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request parameters", nil)
		return
	}

	updates := make(map[string]interface{})
	if req.ItemName != "" {
		updates["item_name"] = req.ItemName
	}
	if req.ItemCategory != "" {
		updates["item_category"] = req.ItemCategory
	}
	if req.HouseNumber != "" {
		updates["house_number"] = req.HouseNumber
	}
	if req.Quantity != nil {
		updates["quantity"] = *req.Quantity
	}
	if req.Condition != "" {
		updates["condition"] = req.Condition
	}
	if req.Notes != "" {
		updates["notes"] = req.Notes
	}

	inventoryService := c.Container.GetService("inventory").(services.InterfaceInventoryService)
	item, err := inventoryService.UpdateItem(uint(idUint), updates)
	if err != nil {
		if err.Error() == "inventory item not found" {
			response.NotFound(c.Ctx, err.Error())
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to update inventory item", nil)
		return
	}

	invalidateDerivedViews(c.Container)
	response.Success(c.Ctx, item)
}

// DeleteItem removes an inventory item
// @Summary      Delete inventory item
// @Description  Delete an inventory item by ID
// @Tags         Inventory
// @Accept       json
// @Produce      json
// @Param        id path int true "Inventory item ID"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /inventory/{id} [delete]
func (c *InventoryController) DeleteItem() {
	idUint, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "invalid inventory item id")
		return
	}

	inventoryService := c.Container.GetService("inventory").(services.InterfaceInventoryService)
	if err := inventoryService.DeleteItem(uint(idUint)); err != nil {
		if err.Error() == "inventory item not found" {
			response.NotFound(c.Ctx, err.Error())
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to delete inventory item", nil)
		return
	}

	invalidateDerivedViews(c.Container)
	response.Success(c.Ctx, nil)
}

// HandleInventoryFunc returns a Gin handler for inventory requests
func HandleInventoryFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewInventoryController(ctx, container)

		switch method {
		case "getItems":
			controller.GetItems()
		case "getItem":
			controller.GetItem()
		case "createItem":
			controller.CreateItem()
		case "updateItem":
			controller.UpdateItem()
		case "deleteItem":
			controller.DeleteItem()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}
