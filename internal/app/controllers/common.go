package controllers

import (
	"sternkern-rent-nexus/internal/app/middleware"
	"sternkern-rent-nexus/internal/domain/services"
	"sternkern-rent-nexus/internal/domain/services/container"
)

// invalidateDerivedViews drops the cached dashboard/billing snapshots and
// the HTTP response cache after any write that changes derived figures.
// Cache errors are swallowed: the next read recomputes from the store.
func invalidateDerivedViews(c *container.ServiceContainer) {
	middleware.PurgeCache()
	if redisService, ok := c.GetService("redis").(services.InterfaceRedisService); ok {
		_ = redisService.InvalidateDerived()
	}
}
