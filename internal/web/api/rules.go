package api

import (
	"rulesconsole/internal/models"
	"rulesconsole/internal/session"
	"rulesconsole/internal/web/middleware"
	webModels "rulesconsole/internal/web/models"
	"rulesconsole/internal/web/store"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func RegisterRuleRoutes(r *gin.Engine, middleware *middleware.MiddlewareManager, db *store.Store) {
	rules := r.Group("/rules")
	rules.Use(middleware.RequireAuth())
	{
		rules.GET("/all", func(c *gin.Context) {
			c.JSON(200, gin.H{"status": true, "rules": db.Rules()})
		})

		rules.GET("/all/user/:id", func(c *gin.Context) {
			userID := c.Param("id")
			c.JSON(200, gin.H{"status": true, "rules": db.RulesForUser(userID)})
		})

		rules.POST("/create", func(c *gin.Context) {
			if c.GetString("role") == session.RoleCustomer {
				c.JSON(403, gin.H{"error": gin.H{"message": "Permission denied"}})
				return
			}

			var req webModels.AddRuleRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				log.Errorf("API: invalid create rule request: %v", err)
				c.JSON(400, gin.H{"error": gin.H{"message": "Invalid request"}})
				return
			}
			if !db.UserExists(req.UserID) {
				c.JSON(400, gin.H{"error": gin.H{"message": "Unknown user " + req.UserID}})
				return
			}
			if !db.DeviceExists(req.DeviceID) {
				c.JSON(400, gin.H{"error": gin.H{"message": "Unknown device " + req.DeviceID}})
				return
			}
			if req.EmailStatus != models.EmailStatusYes && req.EmailStatus != models.EmailStatusNo {
				c.JSON(400, gin.H{"error": gin.H{"message": "Invalid email status " + req.EmailStatus}})
				return
			}

			rule := models.Rule{
				UserID:      req.UserID,
				UserName:    req.UserName,
				DeviceID:    req.DeviceID,
				DeviceName:  req.DeviceName,
				EmailStatus: req.EmailStatus,
				DateCreated: req.DateCreated,
				TimeCreated: req.TimeCreated,
				DateUpdated: req.DateUpdated,
				TimeUpdated: req.TimeUpdated,
			}
			if req.ImageURL != nil {
				rule.ImageURL = *req.ImageURL
			}
			created := db.AddRule(rule)
			log.Infof("API: created rule %s for user %s", created.ID, created.UserID)

			c.JSON(200, gin.H{"status": true})
		})

		rules.DELETE("/delete/:id", func(c *gin.Context) {
			if c.GetString("role") == session.RoleCustomer {
				c.JSON(403, gin.H{"error": gin.H{"message": "Permission denied"}})
				return
			}

			ruleID := c.Param("id")
			if !db.DeleteRule(ruleID) {
				c.JSON(404, gin.H{"error": gin.H{"message": "Rule not found"}})
				return
			}
			c.JSON(200, gin.H{"status": true})
		})
	}
}
