package api

import (
	"rulesconsole/internal/web/middleware"
	"rulesconsole/internal/web/store"

	"github.com/gin-gonic/gin"
)

func RegisterDeviceRoutes(r *gin.Engine, middleware *middleware.MiddlewareManager, db *store.Store) {
	devices := r.Group("/device")
	devices.Use(middleware.RequireAuth())
	{
		devices.GET("/all", func(c *gin.Context) {
			c.JSON(200, gin.H{"status": true, "devices": db.Devices()})
		})
	}
}
