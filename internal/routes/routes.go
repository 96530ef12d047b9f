package routes

import (
	"github.com/gin-gonic/gin"

	"flashdeck/internal/handlers"
	"flashdeck/internal/middleware"
)

func SetupRoutes(
	r *gin.Engine,
	authHandler *handlers.AuthHandler,
	folderHandler *handlers.FolderHandler,
	flashcardHandler *handlers.FlashcardHandler,
	jwtSecret string,
) *gin.Engine {

	// ---- public
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.GET("/verify-email", authHandler.VerifyEmail)
		auth.POST("/resend-verification", authHandler.ResendVerification)
		auth.POST("/forgot-password", authHandler.ForgotPassword)
		auth.POST("/reset-password", authHandler.ResetPassword)
	}

	// ---- protected
	protected := r.Group("/api", middleware.AuthMiddleware(jwtSecret))

	folders := protected.Group("/folders")
	{
		folders.GET("", folderHandler.List)
		folders.POST("", folderHandler.Create)
		folders.PUT("/:id", folderHandler.Update)
		folders.DELETE("/:id", folderHandler.Delete)
		folders.GET("/:id/export", folderHandler.Export)
	}

	flashcards := protected.Group("/flashcards")
	{
		flashcards.GET("", flashcardHandler.List)
		flashcards.POST("", flashcardHandler.Create)
		flashcards.PUT("/:id", flashcardHandler.Update)
		flashcards.DELETE("/:id", flashcardHandler.Delete)
		flashcards.PATCH("/:id/move", flashcardHandler.Move)
	}

	return r
}
