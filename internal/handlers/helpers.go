package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"flashdeck/internal/middleware"
	"flashdeck/internal/services"
)

func currentUserID(c *gin.Context) (string, bool) {
	v, ok := c.Get(middleware.ContextUserID)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

// respondValidation enumerates every violated rule in one response.
func respondValidation(c *gin.Context, ve *services.ValidationError) {
	if len(ve.Errors) == 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Errors[0]})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "Validation failed",
		"details": ve.Errors,
	})
}

// respondResourceError maps the shared service sentinels for folder and
// flashcard operations; anything unknown becomes a generic 500 with the
// detail kept server-side.
func respondResourceError(c *gin.Context, err error, fallback string) {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		respondValidation(c, ve)
	case errors.Is(err, services.ErrFolderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Folder not found"})
	case errors.Is(err, services.ErrFlashcardNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Flashcard not found"})
	case errors.Is(err, services.ErrAccessDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
	default:
		// detail stays server-side
		log.Printf("[handlers] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
