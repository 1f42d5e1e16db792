package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"
	"github.com/tasarim-galerisi/backend/internal/router"
	"github.com/tasarim-galerisi/backend/internal/stream"
	"github.com/tasarim-galerisi/backend/pkg/config"
	"github.com/tasarim-galerisi/backend/pkg/firebase"
	"github.com/tasarim-galerisi/backend/validators"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize the audit database
	db, err := config.InitDB(cfg.PostgresConnStr)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.CloseDB() // Ensure database connection is closed when main exits

	// Initialize Firebase
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	firebaseApp, err := firebase.InitFirebase(ctx, cfg.FirebaseCredentialsPath, cfg.FirebaseProjectID)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}
	defer firebaseApp.Close()

	// Start the design snapshot watcher feeding the SSE hub
	hub := stream.NewHub()
	watcher := stream.NewWatcher(firebaseApp.Firestore, hub)
	go func() {
		if err := watcher.Run(ctx); err != nil {
			log.Printf("Design snapshot watcher exited: %v", err)
		}
	}()

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	router.SetupRoutes(e, cfg, db.Postgres, firebaseApp.Firestore, firebaseApp.AuthClient, hub)

	// Validator
	e.Validator = validators.NewValidator()

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
