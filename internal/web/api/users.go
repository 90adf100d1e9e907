package api

import (
	"rulesconsole/internal/web/middleware"
	"rulesconsole/internal/web/store"

	"github.com/gin-gonic/gin"
)

func RegisterUserRoutes(r *gin.Engine, middleware *middleware.MiddlewareManager, db *store.Store) {
	users := r.Group("/users")
	users.Use(middleware.RequireAuth())
	{
		users.GET("/all", func(c *gin.Context) {
			c.JSON(200, gin.H{"status": true, "users": db.Users()})
		})
	}
}
