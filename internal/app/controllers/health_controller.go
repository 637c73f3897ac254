package controllers

import (
	"github.com/gin-gonic/gin"

	"sternkern-rent-nexus/internal/app/middleware"
	"sternkern-rent-nexus/internal/domain/services"
	"sternkern-rent-nexus/internal/domain/services/container"
	"sternkern-rent-nexus/internal/error/response"
)

// HealthCheckController reports process and dependency health
type HealthCheckController struct {
	Container *container.ServiceContainer
}

// NewHealthCheckController creates a health check controller instance
func NewHealthCheckController(container *container.ServiceContainer) *HealthCheckController {
	return &HealthCheckController{Container: container}
}

// Ping is the liveness endpoint
func (h *HealthCheckController) Ping(c *gin.Context) {
	response.Success(c, gin.H{
		"status":  "healthy",
		"message": "pong",
	})
}

// Status reports database and cache connectivity
func (h *HealthCheckController) Status(c *gin.Context) {
	dbStatus := "up"
	if sqlDB, err := h.Container.GetDB().DB(); err != nil || sqlDB.Ping() != nil {
		dbStatus = "down"
	}

	redisStatus := "up"
	redisService := h.Container.GetService("redis").(services.InterfaceRedisService)
	if err := redisService.Ping(); err != nil {
		redisStatus = "down"
	}

	response.Success(c, gin.H{
		"database": dbStatus,
		"redis":    redisStatus,
	})
}

// CacheStats exposes the in-memory response cache statistics
func (h *HealthCheckController) CacheStats(c *gin.Context) {
	response.Success(c, middleware.CacheStats())
}

// HandleHealthFunc returns a Gin handler for health requests
func HandleHealthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewHealthCheckController(container)

		switch method {
		case "ping":
			controller.Ping(ctx)
		case "status":
			controller.Status(ctx)
		case "cacheStats":
			controller.CacheStats(ctx)
		default:
			response.NotFound(ctx, "")
		}
	}
}
