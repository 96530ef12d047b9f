package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"flashdeck/internal/models"
	"flashdeck/internal/services"
)

type FolderHandler struct {
	folders services.FolderService
	export  services.ExportService
}

func NewFolderHandler(folders services.FolderService, export services.ExportService) *FolderHandler {
	return &FolderHandler{folders: folders, export: export}
}

// @Summary      List folders with flashcard counts
// @Tags         Folders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /api/folders [get]
func (h *FolderHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
		return
	}

	folders, err := h.folders.List(userID)
	if err != nil {
		log.Printf("[folder][list] user_id=%s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch folders"})
		return
	}
	if folders == nil {
		folders = []*models.Folder{}
	}
	c.JSON(http.StatusOK, gin.H{"folders": folders})
}

// @Summary      Create a folder
// @Tags         Folders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /api/folders [post]
func (h *FolderHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
		return
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	folder, err := h.folders.Create(userID, req.Name)
	if err != nil {
		respondResourceError(c, err, "Failed to create folder")
		return
	}
	log.Printf("[folder][create] ok id=%s user_id=%s", folder.ID, userID)
	c.JSON(http.StatusCreated, gin.H{"folder": folder})
}

// @Summary      Rename a folder
// @Tags         Folders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/folders/{id} [put]
func (h *FolderHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
		return
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	folder, err := h.folders.Rename(userID, c.Param("id"), req.Name)
	if err != nil {
		respondResourceError(c, err, "Failed to update folder")
		return
	}
	c.JSON(http.StatusOK, gin.H{"folder": folder})
}

// @Summary      Delete a folder and everything in it
// @Tags         Folders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/folders/{id} [delete]
func (h *FolderHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
		return
	}

	if err := h.folders.Delete(userID, c.Param("id")); err != nil {
		respondResourceError(c, err, "Failed to delete folder")
		return
	}
	log.Printf("[folder][delete] ok id=%s user_id=%s", c.Param("id"), userID)
	c.JSON(http.StatusOK, gin.H{"message": "Folder deleted successfully"})
}

// @Summary      Export a folder as a PDF study sheet
// @Tags         Folders
// @Produce      application/pdf
// @Security     BearerAuth
// @Success      200
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/folders/{id}/export [get]
func (h *FolderHandler) Export(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
		return
	}

	content, filename, err := h.export.ExportFolder(userID, c.Param("id"))
	if err != nil {
		respondResourceError(c, err, "Failed to export folder")
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", content)
}
