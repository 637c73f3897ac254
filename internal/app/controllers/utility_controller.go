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

// InterfaceUtilityController defines the utility controller interface
type InterfaceUtilityController interface {
	GetUtilities()
	GetUtilitiesByHouse()
	CreateUtility()
	DeleteUtility()
}

// UtilityController handles utility record requests
type UtilityController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewUtilityController creates a new utility controller
func NewUtilityController(ctx *gin.Context, container *container.ServiceContainer) *UtilityController {
	return &UtilityController{
		Ctx:       ctx,
		Container: container,
	}
}

// UtilityRequest represents a utility charge record
type UtilityRequest struct {
	HouseNumber    string          `json:"house_number" binding:"required" example:"A1"`
	TenantName     string          `json:"tenant_name" example:"Jane Wanjiku"`
	Electricity    decimal.Decimal `json:"electricity" example:"1200"`
	Water          decimal.Decimal `json:"water" example:"500"`
	Garbage        decimal.Decimal `json:"garbage" example:"300"`
	OtherUtilities decimal.Decimal `json:"other_utilities" example:"0"`
	BillingMonth   string          `json:"billing_month" binding:"required" example:"2025-01"`
}

// GetUtilities lists all utility records
// @Summary      List utilities
// @Description  Get all utility records with pagination, newest month first
// @Tags         Utility
// @Accept       json
// @Produce      json
// @Param        page query int false "Page number, default 1"
// @Param        page_size query int false "Page size, default 10"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /utilities [get]
func (c *UtilityController) GetUtilities() {
	page, _ := strconv.Atoi(c.Ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.Ctx.DefaultQuery("page_size", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	utilityService := c.Container.GetService("utility").(services.InterfaceUtilityService)
	utilities, total, err := utilityService.GetAllUtilities(page, pageSize)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to list utilities", nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"total":       total,
		"page":        page,
		"page_size":   pageSize,
		"total_pages": (total + int64(pageSize) - 1) / int64(pageSize),
		"data":        utilities,
	})
}

// GetUtilitiesByHouse returns one unit's utility history
// @Summary      List utilities by house
// @Description  Get one unit's utility records, newest month first
// @Tags         Utility
// @Accept       json
// @Produce      json
// @Param        house_number path string true "House number"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /utilities/house/{house_number} [get]
func (c *UtilityController) GetUtilitiesByHouse() {
	houseNumber := c.Ctx.Param("house_number")
	if houseNumber == "" {
		response.ParamError(c.Ctx, "house number is required")
		return
	}

	utilityService := c.Container.GetService("utility").(services.InterfaceUtilityService)
	utilities, err := utilityService.GetUtilitiesByHouse(houseNumber)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to list utilities", nil)
		return
	}

	response.Success(c.Ctx, utilities)
}

// CreateUtility records utility charges for a unit and month
// @Summary      Create utility record
// @Description  Record utility charges for a unit and billing month
// @Tags         Utility
// @Accept       json
// @Produce      json
// @Param        request body UtilityRequest true "Utility fields"
// @Security     BearerAuth
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /utilities [post]
func (c *UtilityController) CreateUtility() {
	var req UtilityRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request parameters", nil)
		return
	}

	month, err := parseBillingMonth(req.BillingMonth)
	if err != nil {
		response.ParamError(c.Ctx, "billing_month must be YYYY-MM")
		return
	}

	u := &models.Utility{
		HouseNumber:    req.HouseNumber,
		TenantName:     req.TenantName,
		Electricity:    req.Electricity,
		Water:          req.Water,
		Garbage:        req.Garbage,
		OtherUtilities: req.OtherUtilities,
		BillingMonth:   month,
	}

	utilityService := c.Container.GetService("utility").(services.InterfaceUtilityService)
	if err := utilityService.CreateUtility(u); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrValidation, err.Error(), nil)
		return
	}

	invalidateDerivedViews(c.Container)
	response.Created(c.Ctx, u)
}

// DeleteUtility removes a utility record
// @Summary      Delete utility record
// @Description  Delete a utility record by ID
// @Tags         Utility
// @Accept       json
// @Produce      json
// @Param        id path int true "Utility record ID"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /utilities/{id} [delete]
func (c *UtilityController) DeleteUtility() {
	idUint, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "invalid utility record id")
		return
	}

	utilityService := c.Container.GetService("utility").(services.InterfaceUtilityService)
	if err := utilityService.DeleteUtility(uint(idUint)); err != nil {
		if err.Error() == "utility record not found" {
			response.NotFound(c.Ctx, err.Error())
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to delete utility record", nil)
		return
	}

	invalidateDerivedViews(c.Container)
	response.Success(c.Ctx, nil)
}

// HandleUtilityFunc returns a Gin handler for utility requests
func HandleUtilityFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewUtilityController(ctx, container)

		switch method {
		case "getUtilities":
			controller.GetUtilities()
		case "getUtilitiesByHouse":
			controller.GetUtilitiesByHouse()
		case "createUtility":
			controller.CreateUtility()
		case "deleteUtility":
			controller.DeleteUtility()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}
