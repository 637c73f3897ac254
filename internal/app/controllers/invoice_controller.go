package controllers

import (
	"errors"
	"strconv"
	"time"

	"sternkern-rent-nexus/internal/domain/services"
	"sternkern-rent-nexus/internal/domain/services/container"
	"sternkern-rent-nexus/internal/error/code"
	"sternkern-rent-nexus/internal/error/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// InterfaceInvoiceController defines the invoice controller interface
type InterfaceInvoiceController interface {
	GetInvoices()
	GetInvoice()
	GenerateInvoice()
	GenerateBulkInvoices()
	MarkInvoicePaid()
}

// InvoiceController handles invoice generation requests
type InvoiceController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewInvoiceController creates a new invoice controller
func NewInvoiceController(ctx *gin.Context, container *container.ServiceContainer) *InvoiceController {
	return &InvoiceController{
		Ctx:       ctx,
		Container: container,
	}
}

// InvoiceRequest represents a single-invoice generation request.
// billing_month takes "2006-01" format; utility amounts default to zero.
type InvoiceRequest struct {
	TenantName     string          `json:"tenant_name" example:"Jane Wanjiku"`
	HouseNumber    string          `json:"house_number" binding:"required" example:"A1"`
	RentAmount     decimal.Decimal `json:"rent_amount" example:"25000"`
	Electricity    decimal.Decimal `json:"electricity" example:"1200"`
	Water          decimal.Decimal `json:"water" example:"500"`
	Garbage        decimal.Decimal `json:"garbage" example:"300"`
	OtherUtilities decimal.Decimal `json:"other_utilities" example:"0"`
	BillingMonth   string          `json:"billing_month" binding:"required" example:"2025-01"`
}

// BulkInvoiceRequest represents a bulk generation request for one month
type BulkInvoiceRequest struct {
	BillingMonth string `json:"billing_month" binding:"required" example:"2025-01"`
}

// parseBillingMonth accepts "2006-01" and "2006-01-02" date strings
func parseBillingMonth(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01", value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

// GetInvoices lists all invoices
// @Summary      List invoices
// @Description  Get all invoices with pagination, newest billing cycle first
// @Tags         Invoice
// @Accept       json
// @Produce      json
// @Param        page query int false "Page number, default 1"
// @Param        page_size query int false "Page size, default 10"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /invoices [get]
func (c *InvoiceController) GetInvoices() {
	page, _ := strconv.Atoi(c.Ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.Ctx.DefaultQuery("page_size", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	invoiceService := c.Container.GetService("invoice").(services.InterfaceInvoiceService)
	invoices, total, err := invoiceService.GetAllInvoices(page, pageSize)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to list invoices", nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"total":       total,
		"page":        page,
		"page_size":   pageSize,
		"total_pages": (total + int64(pageSize) - 1) / int64(pageSize),
		"data":        invoices,
	})
}

// GetInvoice returns one invoice
// @Summary      Get invoice
// @Description  Get an invoice by ID
// @Tags         Invoice
// @Accept       json
// @Produce      json
// @Param        id path int true "Invoice ID"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /invoices/{id} [get]
func (c *InvoiceController) GetInvoice() {
	idUint, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "invalid invoice id")
		return
	}

	invoiceService := c.Container.GetService("invoice").(services.InterfaceInvoiceService)
	invoice, err := invoiceService.GetInvoiceByID(uint(idUint))
	if err != nil {
		if err.Error() == "invoice not found" {
			response.NotFound(c.Ctx, err.Error())
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to get invoice", nil)
		return
	}

	response.Success(c.Ctx, invoice)
}

// GenerateInvoice creates one invoice from operator-supplied fields
// @Summary      Generate invoice
// @Description  Generate a single invoice for a unit and billing month
// @Tags         Invoice
// @Accept       json
// @Produce      json
// @Param        request body InvoiceRequest true "Invoice fields"
// @Security     BearerAuth
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse "Invoice already exists for the unit and month"
// @Failure      500  {object}  ErrorResponse
// @Router       /invoices [post]
func (c *InvoiceController) GenerateInvoice() {
	var req InvoiceRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request parameters", nil)
		return
	}

	month, err := parseBillingMonth(req.BillingMonth)
	if err != nil {
		response.ParamError(c.Ctx, "billing_month must be YYYY-MM")
		return
	}

	invoiceService := c.Container.GetService("invoice").(services.InterfaceInvoiceService)
	invoice, err := invoiceService.GenerateSingle(services.SingleInvoiceInput{
		TenantName:     req.TenantName,
		HouseNumber:    req.HouseNumber,
		RentAmount:     req.RentAmount,
		Electricity:    req.Electricity,
		Water:          req.Water,
		Garbage:        req.Garbage,
		OtherUtilities: req.OtherUtilities,
		BillingMonth:   month,
	})
	if err != nil {
		if errors.Is(err, services.ErrDuplicateInvoice) {
			response.FailWithMessage(c.Ctx, code.ErrInvoiceDuplicate, err.Error(), nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrValidation, err.Error(), nil)
		return
	}

	invalidateDerivedViews(c.Container)
	response.Created(c.Ctx, invoice)
}

// GenerateBulkInvoices creates one invoice per assigned tenant for a month
// @Summary      Generate bulk invoices
// @Description  Generate invoices for every tenant with a bound unit, skipping houses already invoiced for the month
// @Tags         Invoice
// @Accept       json
// @Produce      json
// @Param        request body BulkInvoiceRequest true "Billing month"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /invoices/bulk [post]
func (c *InvoiceController) GenerateBulkInvoices() {
	var req BulkInvoiceRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request parameters", nil)
		return
	}

	month, err := parseBillingMonth(req.BillingMonth)
	if err != nil {
		response.ParamError(c.Ctx, "billing_month must be YYYY-MM")
		return
	}

	invoiceService := c.Container.GetService("invoice").(services.InterfaceInvoiceService)
	result, err := invoiceService.GenerateBulk(month)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "bulk invoice generation failed", nil)
		return
	}

	if result.Created > 0 {
		invalidateDerivedViews(c.Container)
	}
	response.Success(c.Ctx, result)
}

// MarkInvoicePaid settles an invoice
// @Summary      Mark invoice paid
// @Description  Set an invoice's status to Paid and zero its amount due
// @Tags         Invoice
// @Accept       json
// @Produce      json
// @Param        id path int true "Invoice ID"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /invoices/{id}/pay [post]
func (c *InvoiceController) MarkInvoicePaid() {
	idUint, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "invalid invoice id")
		return
	}

	invoiceService := c.Container.GetService("invoice").(services.InterfaceInvoiceService)
	invoice, err := invoiceService.MarkPaid(uint(idUint))
	if err != nil {
		if err.Error() == "invoice not found" {
			response.NotFound(c.Ctx, err.Error())
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to mark invoice paid", nil)
		return
	}

	invalidateDerivedViews(c.Container)
	response.Success(c.Ctx, invoice)
}

// HandleInvoiceFunc returns a Gin handler for invoice requests
func HandleInvoiceFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewInvoiceController(ctx, container)

		switch method {
		case "getInvoices":
			controller.GetInvoices()
		case "getInvoice":
			controller.GetInvoice()
		case "generateInvoice":
			controller.GenerateInvoice()
		case "generateBulkInvoices":
			controller.GenerateBulkInvoices()
		case "markInvoicePaid":
			controller.MarkInvoicePaid()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}
