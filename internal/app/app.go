package app

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"

	"flashdeck/internal/config"
	"flashdeck/internal/handlers"
	"flashdeck/internal/pdf"
	"flashdeck/internal/repositories"
	"flashdeck/internal/routes"
	"flashdeck/internal/services"
)

func Run() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("config error: ", err)
	}

	// === DB ===
	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		log.Fatal("failed to open database: ", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("failed to close database: %v", err)
		}
	}()

	// === Repos ===
	userRepo := repositories.NewUserRepository(db)
	folderRepo := repositories.NewFolderRepository(db)
	flashcardRepo := repositories.NewFlashcardRepository(db)

	// === Services ===
	authService := services.NewAuthService()
	emailService := services.NewEmailService(
		cfg.Email.SMTPHost,
		cfg.Email.SMTPPort,
		cfg.Email.SMTPUser,
		cfg.Email.SMTPPassword,
		cfg.Email.FromEmail,
		cfg.App.BaseURL,
	)
	userService := services.NewUserService(userRepo, emailService, authService)
	folderService := services.NewFolderService(folderRepo)
	flashcardService := services.NewFlashcardService(flashcardRepo, folderService)
	exportService := services.NewExportService(folderService, flashcardRepo, pdf.NewStudySheetGenerator())

	// === Handlers ===
	authHandler := handlers.NewAuthHandler(userService, cfg.App.JWTSecret)
	folderHandler := handlers.NewFolderHandler(folderService, exportService)
	flashcardHandler := handlers.NewFlashcardHandler(flashcardService)

	// === Gin ===
	router := gin.Default()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	routes.SetupRoutes(router, authHandler, folderHandler, flashcardHandler, cfg.App.JWTSecret)

	// === Run ===
	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("server listening on %s", listenAddr)
	if err := router.Run(listenAddr); err != nil {
		log.Fatal("server failed: ", err)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
