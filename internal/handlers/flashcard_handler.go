package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"flashdeck/internal/models"
	"flashdeck/internal/services"
)

type FlashcardHandler struct {
	cards services.FlashcardService
}

func NewFlashcardHandler(cards services.FlashcardService) *FlashcardHandler {
	return &FlashcardHandler{cards: cards}
}

// @Summary      List flashcards, optionally scoped to one folder
// @Tags         Flashcards
// @Produce      json
// @Security     BearerAuth
// @Param        folder_id  query  string  false  "Folder filter"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/flashcards [get]
func (h *FlashcardHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
		return
	}

	cards, err := h.cards.List(userID, c.Query("folder_id"))
	if err != nil {
		log.Printf("[flashcard][list] user_id=%s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch flashcards"})
		return
	}
	if cards == nil {
		cards = []*models.Flashcard{}
	}
	c.JSON(http.StatusOK, gin.H{"flashcards": cards})
}

// @Summary      Create a flashcard in a folder
// @Tags         Flashcards
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/flashcards [post]
func (h *FlashcardHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
		return
	}

	var req struct {
		FolderID  string `json:"folderId"`
		FrontText string `json:"frontText"`
		BackText  string `json:"backText"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	card, err := h.cards.Create(userID, req.FolderID, req.FrontText, req.BackText)
	if err != nil {
		respondResourceError(c, err, "Failed to create flashcard")
		return
	}
	log.Printf("[flashcard][create] ok id=%s folder_id=%s user_id=%s", card.ID, card.FolderID, userID)
	c.JSON(http.StatusCreated, gin.H{"flashcard": card})
}

// @Summary      Update a flashcard's texts
// @Tags         Flashcards
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/flashcards/{id} [put]
func (h *FlashcardHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
		return
	}

	var req struct {
		FrontText string `json:"frontText"`
		BackText  string `json:"backText"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	card, err := h.cards.Update(userID, c.Param("id"), req.FrontText, req.BackText)
	if err != nil {
		respondResourceError(c, err, "Failed to update flashcard")
		return
	}
	c.JSON(http.StatusOK, gin.H{"flashcard": card})
}

// @Summary      Delete a flashcard
// @Tags         Flashcards
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/flashcards/{id} [delete]
func (h *FlashcardHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
		return
	}

	if err := h.cards.Delete(userID, c.Param("id")); err != nil {
		respondResourceError(c, err, "Failed to delete flashcard")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Flashcard deleted successfully"})
}

// @Summary      Move a flashcard to another folder
// @Tags         Flashcards
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/flashcards/{id}/move [patch]
func (h *FlashcardHandler) Move(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
		return
	}

	var req struct {
		FolderID string `json:"folderId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	card, err := h.cards.Move(userID, c.Param("id"), req.FolderID)
	if err != nil {
		respondResourceError(c, err, "Failed to move flashcard")
		return
	}
	log.Printf("[flashcard][move] ok id=%s folder_id=%s user_id=%s", card.ID, card.FolderID, userID)
	c.JSON(http.StatusOK, gin.H{"flashcard": card})
}
