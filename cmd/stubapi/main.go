package main

import (
	"fmt"

	"rulesconsole/auth"
	"rulesconsole/internal/config"
	"rulesconsole/internal/logging"
	"rulesconsole/internal/models"
	"rulesconsole/internal/session"
	"rulesconsole/internal/web"
	"rulesconsole/internal/web/store"

	log "github.com/sirupsen/logrus"
)

// Stub rules API with seeded users and devices, so the console can run
// without the real backend.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logging.Init(cfg.LogLevel)

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	db := store.New()
	db.SetUsers([]models.User{
		{ID: "u1", FullName: "Alice"},
		{ID: "u2", FullName: "Bob"},
	})
	db.SetDevices([]models.Device{
		{ID: "d1", Title: "Camera-1"},
		{ID: "d2", Title: "Camera-2"},
	})

	authModule := auth.NewAuthModule(cfg.JWTSecret)
	adminToken, err := authModule.GenerateJWT("u2", "Admin")
	if err != nil {
		log.Fatalf("Failed to mint admin token: %v", err)
	}
	customerToken, err := authModule.GenerateJWT("u1", session.RoleCustomer)
	if err != nil {
		log.Fatalf("Failed to mint customer token: %v", err)
	}
	fmt.Println("Admin token:   ", adminToken)
	fmt.Println("Customer token:", customerToken)

	server := web.NewWebServer(db, cfg.JWTSecret)
	log.Infof("Stub rules API listening on %s", cfg.ListenAddr)
	server.Start(cfg.ListenAddr)
}
