package controllers

import (
	"strconv"

	"sternkern-rent-nexus/internal/domain/models"
	"sternkern-rent-nexus/internal/domain/services"
	"sternkern-rent-nexus/internal/domain/services/container"
	"sternkern-rent-nexus/internal/error/code"
	"sternkern-rent-nexus/internal/error/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// InterfaceUnitController defines the unit controller interface
type InterfaceUnitController interface {
	GetUnits()
	GetUnit()
	GetVacantUnits()
	CreateUnit()
	UpdateUnit()
	DeleteUnit()
	AuditOccupancy()
}

// UnitController handles unit requests
type UnitController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewUnitController creates a new unit controller
func NewUnitController(ctx *gin.Context, container *container.ServiceContainer) *UnitController {
	return &UnitController{
		Ctx:       ctx,
		Container: container,
	}
}

// UnitRequest represents a unit creation request
type UnitRequest struct {
	HouseNumber     string          `json:"house_number" binding:"required" example:"A1"`
	Bedrooms        int             `json:"bedrooms" example:"2"`
	RentAmount      decimal.Decimal `json:"rent_amount" example:"25000"`
	OccupancyStatus string          `json:"occupancy_status" example:"Unoccupied"`
}

// UpdateUnitRequest represents a unit update request
type UpdateUnitRequest struct {
	Bedrooms        *int             `json:"bedrooms" example:"3"`
	RentAmount      *decimal.Decimal `json:"rent_amount" example:"28000"`
	OccupancyStatus string           `json:"occupancy_status" example:"Under Maintenance"`
}

// GetUnits lists all units
// @Summary      List units
// @Description  Get all units with pagination
// @Tags         Unit
// @Accept       json
// @Produce      json
// @Param        page query int false "Page number, default 1"
// @Param        page_size query int false "Page size, default 10"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /units [get]
func (c *UnitController) GetUnits() {
	page, _ := strconv.Atoi(c.Ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.Ctx.DefaultQuery("page_size", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	unitService := c.Container.GetService("unit").(services.InterfaceUnitService)
	units, total, err := unitService.GetAllUnits(page, pageSize)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to list units", nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"total":       total,
		"page":        page,
		"page_size":   pageSize,
		"total_pages": (total + int64(pageSize) - 1) / int64(pageSize),
		"data":        units,
	})
}

// GetUnit returns one unit
// @Summary      Get unit
// @Description  Get a unit by ID
// @Tags         Unit
// @Accept       json
// @Produce      json
// @Param        id path int true "Unit ID"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /units/{id} [get]
func (c *UnitController) GetUnit() {
	idUint, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "invalid unit id")
		return
	}

	unitService := c.Container.GetService("unit").(services.InterfaceUnitService)
	unit, err := unitService.GetUnitByID(uint(idUint))
	if err != nil {
		if err.Error() == "unit not found" {
			response.NotFound(c.Ctx, err.Error())
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to get unit", nil)
		return
	}

	response.Success(c.Ctx, unit)
}

// GetVacantUnits lists Unoccupied units for the assignment dialogs
// @Summary      List vacant units
// @Description  Get all Unoccupied units ordered by house number
// @Tags         Unit
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /units/vacant [get]
func (c *UnitController) GetVacantUnits() {
	occupancyService := c.Container.GetService("occupancy").(services.InterfaceOccupancyService)
	units, err := occupancyService.ListVacant()
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to list vacant units", nil)
		return
	}

	response.Success(c.Ctx, units)
}

// CreateUnit creates a new unit
// @Summary      Create unit
// @Description  Create a new unit with a unique house number
// @Tags         Unit
// @Accept       json
// @Produce      json
// @Param        request body UnitRequest true "Unit fields, house number is the natural key"
// @Security     BearerAuth
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /units [post]
func (c *UnitController) CreateUnit() {
	var req UnitRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request parameters", nil)
		return
	}

	unit := &models.Unit{
		HouseNumber:     req.HouseNumber,
		Bedrooms:        req.Bedrooms,
		RentAmount:      req.RentAmount,
		OccupancyStatus: req.OccupancyStatus,
	}

	unitService := c.Container.GetService("unit").(services.InterfaceUnitService)
	if err := unitService.CreateUnit(unit); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrUnitAlreadyExist, err.Error(), nil)
		return
	}

	invalidateDerivedViews(c.Container)
	response.Created(c.Ctx, unit)
}

// UpdateUnit updates unit fields. The house number is immutable.
// @Summary      Update unit
// @Description  Update bedrooms, rent or occupancy status of a unit
// @Tags         Unit
// @Accept       json
// @Produce      json
// @Param        id path int true "Unit ID"
// @Param        request body UpdateUnitRequest true "Fields to update"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /units/{id} [put]
func (c *UnitController) UpdateUnit() {
	idUint, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "invalid unit id")
		return
	}

	var req UpdateUnitRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request parameters", nil)
		return
	}

	updates := make(map[string]interface{})
	if req.Bedrooms != nil {
		updates["bedrooms"] = *req.Bedrooms
	}
	if req.RentAmount != nil {
		updates["rent_amount"] = *req.RentAmount
	}
	if req.OccupancyStatus != "" {
		updates["occupancy_status"] = req.OccupancyStatus
	}

	unitService := c.Container.GetService("unit").(services.InterfaceUnitService)
	unit, err := unitService.UpdateUnit(uint(idUint), updates)
	if err != nil {
		if err.Error() == "unit not found" {
			response.NotFound(c.Ctx, err.Error())
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrValidation, err.Error(), nil)
		return
	}

	invalidateDerivedViews(c.Container)
	response.Success(c.Ctx, unit)
}

// DeleteUnit removes a unit with no tenant bound to it
// @Summary      Delete unit
// @Description  Delete a unit that currently has no tenant
// @Tags         Unit
// @Accept       json
// @Produce      json
// @Param        id path int true "Unit ID"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /units/{id} [delete]
func (c *UnitController) DeleteUnit() {
	idUint, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "invalid unit id")
		return
	}

	unitService := c.Container.GetService("unit").(services.InterfaceUnitService)
	if err := unitService.DeleteUnit(uint(idUint)); err != nil {
		if err.Error() == "unit not found" {
			response.NotFound(c.Ctx, err.Error())
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrUnitOccupied, err.Error(), nil)
		return
	}

	invalidateDerivedViews(c.Container)
	response.Success(c.Ctx, nil)
}

// AuditOccupancy reports units whose status disagrees with the tenant table
// @Summary      Audit occupancy
// @Description  List units whose occupancy status does not match the tenant table
// @Tags         Unit
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /units/audit [get]
func (c *UnitController) AuditOccupancy() {
	occupancyService := c.Container.GetService("occupancy").(services.InterfaceOccupancyService)
	mismatches, err := occupancyService.Audit()
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to audit occupancy", nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"consistent": len(mismatches) == 0,
		"mismatches": mismatches,
	})
}

// HandleUnitFunc returns a Gin handler for unit requests
func HandleUnitFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewUnitController(ctx, container)

		switch method {
		case "getUnits":
			controller.GetUnits()
		case "getUnit":
			controller.GetUnit()
		case "getVacantUnits":
			controller.GetVacantUnits()
		case "createUnit":
			controller.CreateUnit()
		case "updateUnit":
			controller.UpdateUnit()
		case "deleteUnit":
			controller.DeleteUnit()
		case "auditOccupancy":
			controller.AuditOccupancy()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}
