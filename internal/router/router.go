package router

import (
	"log"

	"cloud.google.com/go/firestore"
	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/tasarim-galerisi/backend/internal/handlers"
	"github.com/tasarim-galerisi/backend/internal/imghost"
	"github.com/tasarim-galerisi/backend/internal/middleware"
	"github.com/tasarim-galerisi/backend/internal/models"
	"github.com/tasarim-galerisi/backend/internal/repositories"
	"github.com/tasarim-galerisi/backend/internal/stream"
	"github.com/tasarim-galerisi/backend/internal/voting"
	"github.com/tasarim-galerisi/backend/pkg/config"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, cfg *config.Config, pgdb *gorm.DB, fsClient *firestore.Client, firebaseAuthClient *auth.Client, hub *stream.Hub) {
	// AutoMigrate PostgreSQL models
	if err := pgdb.AutoMigrate(&models.AuditEntry{}); err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("PostgreSQL auto-migrations completed.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize repositories and collaborators ---
	designRepo := repositories.NewFirestoreDesignRepository(fsClient)
	voteRepo := repositories.NewFirestoreVoteRepository(fsClient)
	trashRepo := repositories.NewFirestoreTrashRepository(fsClient)
	auditRepo := repositories.NewPostgresAuditRepository(pgdb)
	imageHost := imghost.NewImgbbClient(cfg.ImgbbEndpoint, cfg.ImgbbAPIKey)
	engine := voting.NewEngine(designRepo, voteRepo)

	designHandler := handlers.NewDesignHandler(designRepo, imageHost, hub)
	voteHandler := handlers.NewVoteHandler(engine)
	adminHandler := handlers.NewAdminHandler(designRepo, voteRepo, trashRepo, auditRepo)

	// --- Public gallery reads ---
	public := e.Group("/api/v1")
	designHandler.RegisterReadRoutes(public)
	log.Println("Gallery read routes configured.")

	// --- Protected routes (require a verified Firebase ID token) ---
	api := e.Group("/api/v1")
	api.Use(middleware.FirebaseAuthMiddleware(firebaseAuthClient))
	log.Println("Firebase authentication middleware applied to /api/v1 group.")

	designHandler.RegisterWriteRoutes(api)
	voteHandler.RegisterVoteRoutes(api)
	log.Println("Design and vote routes configured.")

	// --- Administrator routes ---
	admin := api.Group("/admin")
	admin.Use(middleware.AdminOnly(cfg.AdminEmails))
	adminHandler.RegisterAdminRoutes(admin)
	log.Println("Administrator routes configured.")

	log.Println("All routes configured.")
}
