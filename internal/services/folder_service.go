package services

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"flashdeck/internal/models"
	"flashdeck/internal/repositories"
)

const maxFolderNameLen = 100

type FolderService interface {
	List(userID string) ([]*models.Folder, error)
	Create(userID, name string) (*models.Folder, error)
	Rename(userID, folderID, name string) (*models.Folder, error)
	Delete(userID, folderID string) error
	// GetOwned loads a folder and enforces the ownership check for it.
	GetOwned(userID, folderID string) (*models.Folder, error)
}

type folderService struct {
	repo repositories.FolderRepository
}

func NewFolderService(repo repositories.FolderRepository) FolderService {
	return &folderService{repo: repo}
}

func validateFolderName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", newValidationError("Folder name is required")
	}
	if utf8.RuneCountInString(name) > maxFolderNameLen {
		return "", newValidationError("Folder name must be 100 characters or less")
	}
	return trimmed, nil
}

func (s *folderService) List(userID string) ([]*models.Folder, error) {
	return s.repo.ListByUser(userID)
}

func (s *folderService) Create(userID, name string) (*models.Folder, error) {
	trimmed, err := validateFolderName(name)
	if err != nil {
		return nil, err
	}
	folder := &models.Folder{
		ID:     uuid.NewString(),
		UserID: userID,
		Name:   trimmed,
	}
	if err := s.repo.Create(folder); err != nil {
		return nil, err
	}
	return folder, nil
}

func (s *folderService) Rename(userID, folderID, name string) (*models.Folder, error) {
	trimmed, err := validateFolderName(name)
	if err != nil {
		return nil, err
	}
	folder, err := s.GetOwned(userID, folderID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateName(folder.ID, trimmed); err != nil {
		return nil, err
	}
	folder.Name = trimmed
	return folder, nil
}

// Delete removes the folder and everything inside it; the repository
// deletes the flashcards in the same transaction.
func (s *folderService) Delete(userID, folderID string) error {
	folder, err := s.GetOwned(userID, folderID)
	if err != nil {
		return err
	}
	return s.repo.Delete(folder.ID)
}

func (s *folderService) GetOwned(userID, folderID string) (*models.Folder, error) {
	folder, err := s.repo.GetByID(folderID)
	if err != nil {
		return nil, err
	}
	if folder == nil {
		return nil, ErrFolderNotFound
	}
	if folder.UserID != userID {
		return nil, ErrAccessDenied
	}
	return folder, nil
}
