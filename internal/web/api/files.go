package api

import (
	"io"

	"rulesconsole/internal/web/middleware"
	"rulesconsole/internal/web/store"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func RegisterFileRoutes(r *gin.Engine, middleware *middleware.MiddlewareManager, db *store.Store) {
	files := r.Group("/files")
	files.Use(middleware.RequireAuth())
	{
		files.POST("/save", func(c *gin.Context) {
			header, err := c.FormFile("file")
			if err != nil {
				c.JSON(400, gin.H{"error": gin.H{"message": "Missing file"}})
				return
			}
			file, err := header.Open()
			if err != nil {
				log.Errorf("API: failed to open upload: %v", err)
				c.JSON(500, gin.H{"error": gin.H{"message": "Failed to read file"}})
				return
			}
			defer file.Close()

			content, err := io.ReadAll(file)
			if err != nil {
				log.Errorf("API: failed to read upload: %v", err)
				c.JSON(500, gin.H{"error": gin.H{"message": "Failed to read file"}})
				return
			}

			stored := db.SaveFile(header.Filename, content)
			c.JSON(200, gin.H{"fileName": stored})
		})
	}

	// Uploaded images are served back under the public uploads prefix
	r.GET("/uploads/:name", func(c *gin.Context) {
		content, ok := db.File(c.Param("name"))
		if !ok {
			c.JSON(404, gin.H{"error": gin.H{"message": "File not found"}})
			return
		}
		c.Data(200, "application/octet-stream", content)
	})
}
