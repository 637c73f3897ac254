package controllers

import (
	"strconv"

	"sternkern-rent-nexus/internal/domain/services"
	"sternkern-rent-nexus/internal/domain/services/container"
	"sternkern-rent-nexus/internal/error/code"
	"sternkern-rent-nexus/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfaceReportController defines the report controller interface
type InterfaceReportController interface {
	GetDashboardStats()
	GetRecentActivity()
	ExportMonthlyRevenue()
	ExportTenantStatements()
	ExportMaintenanceCosts()
	ExportOccupancyAnalysis()
}

// ReportController handles dashboard and export requests
type ReportController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewReportController creates a new report controller
func NewReportController(ctx *gin.Context, container *container.ServiceContainer) *ReportController {
	return &ReportController{
		Ctx:       ctx,
		Container: container,
	}
}

// GetDashboardStats returns the dashboard snapshot
// @Summary      Dashboard statistics
// @Description  Unit, tenant, revenue, arrears and maintenance figures for the dashboard
// @Tags         Report
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /reports/dashboard [get]
func (c *ReportController) GetDashboardStats() {
	redisService := c.Container.GetService("redis").(services.InterfaceRedisService)
	if stats, err := redisService.GetDashboardStats(); err == nil && stats != nil {
		response.Success(c.Ctx, stats)
		return
	}

	reportService := c.Container.GetService("report").(services.InterfaceReportService)
	stats, err := reportService.GetDashboardStats()
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to build dashboard stats", nil)
		return
	}

	_ = redisService.CacheDashboardStats(stats, snapshotTTL)
	response.Success(c.Ctx, stats)
}

// GetRecentActivity returns the merged payment/maintenance feed
// @Summary      Recent activity
// @Description  Latest payments and maintenance updates, newest first
// @Tags         Report
// @Accept       json
// @Produce      json
// @Param        limit query int false "Maximum entries, default 6"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /reports/activity [get]
func (c *ReportController) GetRecentActivity() {
	limit, _ := strconv.Atoi(c.Ctx.DefaultQuery("limit", "6"))

	reportService := c.Container.GetService("report").(services.InterfaceReportService)
	items, err := reportService.GetRecentActivity(limit)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to build activity feed", nil)
		return
	}

	response.Success(c.Ctx, items)
}

// sendExport writes a CSV export as a file download
func (c *ReportController) sendExport(export *services.Export) {
	c.Ctx.Header("Content-Disposition", "attachment; filename="+export.Filename)
	c.Ctx.Data(200, "text/csv", export.Data)
}

// ExportMonthlyRevenue downloads revenue summed per calendar month
// @Summary      Export monthly revenue
// @Description  Download monthly_revenue.csv
// @Tags         Report
// @Produce      text/csv
// @Security     BearerAuth
// @Success      200  {string}  string
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /reports/export/revenue [get]
func (c *ReportController) ExportMonthlyRevenue() {
	reportService := c.Container.GetService("report").(services.InterfaceReportService)
	export, err := reportService.ExportMonthlyRevenue()
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to build export", nil)
		return
	}
	c.sendExport(export)
}

// ExportTenantStatements downloads the payment history grouped by tenant
// @Summary      Export tenant statements
// @Description  Download tenant_statements.csv
// @Tags         Report
// @Produce      text/csv
// @Security     BearerAuth
// @Success      200  {string}  string
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /reports/export/statements [get]
func (c *ReportController) ExportTenantStatements() {
	reportService := c.Container.GetService("report").(services.InterfaceReportService)
	export, err := reportService.ExportTenantStatements()
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to build export", nil)
		return
	}
	c.sendExport(export)
}

// ExportMaintenanceCosts downloads maintenance expenses
// @Summary      Export maintenance costs
// @Description  Download maintenance_costs.csv
// @Tags         Report
// @Produce      text/csv
// @Security     BearerAuth
// @Success      200  {string}  string
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /reports/export/maintenance [get]
func (c *ReportController) ExportMaintenanceCosts() {
	reportService := c.Container.GetService("report").(services.InterfaceReportService)
	export, err := reportService.ExportMaintenanceCosts()
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to build export", nil)
		return
	}
	c.sendExport(export)
}

// ExportOccupancyAnalysis downloads the occupancy snapshot
// @Summary      Export occupancy analysis
// @Description  Download occupancy_analysis.csv
// @Tags         Report
// @Produce      text/csv
// @Security     BearerAuth
// @Success      200  {string}  string
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /reports/export/occupancy [get]
func (c *ReportController) ExportOccupancyAnalysis() {
	reportService := c.Container.GetService("report").(services.InterfaceReportService)
	export, err := reportService.ExportOccupancyAnalysis()
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to build export", nil)
		return
	}
	c.sendExport(export)
}

// HandleReportFunc returns a Gin handler for report requests
func HandleReportFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewReportController(ctx, container)

		switch method {
		case "getDashboardStats":
			controller.GetDashboardStats()
		case "getRecentActivity":
			controller.GetRecentActivity()
		case "exportMonthlyRevenue":
			controller.ExportMonthlyRevenue()
		case "exportTenantStatements":
			controller.ExportTenantStatements()
		case "exportMaintenanceCosts":
			controller.ExportMaintenanceCosts()
		case "exportOccupancyAnalysis":
			controller.ExportOccupancyAnalysis()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}
