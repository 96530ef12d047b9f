package services

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"flashdeck/internal/models"
	"flashdeck/internal/repositories"
)

const maxCardTextLen = 1000

type FlashcardService interface {
	// List returns the user's flashcards, optionally scoped to one
	// folder, newest first.
	List(userID, folderID string) ([]*models.Flashcard, error)
	Create(userID, folderID, frontText, backText string) (*models.Flashcard, error)
	Update(userID, cardID, frontText, backText string) (*models.Flashcard, error)
	Delete(userID, cardID string) error
	Move(userID, cardID, folderID string) (*models.Flashcard, error)
}

type flashcardService struct {
	repo    repositories.FlashcardRepository
	folders FolderService
}

func NewFlashcardService(repo repositories.FlashcardRepository, folders FolderService) FlashcardService {
	return &flashcardService{repo: repo, folders: folders}
}

// validateCardTexts checks both sides at once so the response can list
// every violated constraint.
func validateCardTexts(frontText, backText string) (front, back string, err error) {
	var errs []string
	front = strings.TrimSpace(frontText)
	back = strings.TrimSpace(backText)

	if front == "" {
		errs = append(errs, "Front text is required")
	} else if utf8.RuneCountInString(frontText) > maxCardTextLen {
		errs = append(errs, "Front text must be 1000 characters or less")
	}
	if back == "" {
		errs = append(errs, "Back text is required")
	} else if utf8.RuneCountInString(backText) > maxCardTextLen {
		errs = append(errs, "Back text must be 1000 characters or less")
	}
	if len(errs) > 0 {
		return "", "", &ValidationError{Errors: errs}
	}
	return front, back, nil
}

func (s *flashcardService) List(userID, folderID string) ([]*models.Flashcard, error) {
	return s.repo.ListByUser(userID, folderID)
}

// Create validates the texts before any store access, then requires the
// target folder to exist and belong to the caller.
func (s *flashcardService) Create(userID, folderID, frontText, backText string) (*models.Flashcard, error) {
	if strings.TrimSpace(folderID) == "" {
		return nil, newValidationError("Folder ID is required")
	}
	front, back, err := validateCardTexts(frontText, backText)
	if err != nil {
		return nil, err
	}

	folder, err := s.folders.GetOwned(userID, folderID)
	if err != nil {
		return nil, err
	}

	card := &models.Flashcard{
		ID:        uuid.NewString(),
		UserID:    userID,
		FolderID:  folder.ID,
		FrontText: front,
		BackText:  back,
	}
	if err := s.repo.Create(card); err != nil {
		return nil, err
	}
	card.Folder = &models.FolderSummary{ID: folder.ID, Name: folder.Name}
	return card, nil
}

func (s *flashcardService) Update(userID, cardID, frontText, backText string) (*models.Flashcard, error) {
	front, back, err := validateCardTexts(frontText, backText)
	if err != nil {
		return nil, err
	}
	card, err := s.getOwned(userID, cardID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateTexts(card.ID, front, back); err != nil {
		return nil, err
	}
	card.FrontText = front
	card.BackText = back
	return card, nil
}

func (s *flashcardService) Delete(userID, cardID string) error {
	card, err := s.getOwned(userID, cardID)
	if err != nil {
		return err
	}
	return s.repo.Delete(card.ID)
}

// Move rechecks ownership of both the card and the target folder.
func (s *flashcardService) Move(userID, cardID, folderID string) (*models.Flashcard, error) {
	if strings.TrimSpace(folderID) == "" {
		return nil, newValidationError("Folder ID is required")
	}
	card, err := s.getOwned(userID, cardID)
	if err != nil {
		return nil, err
	}
	target, err := s.folders.GetOwned(userID, folderID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateFolder(card.ID, target.ID); err != nil {
		return nil, err
	}
	card.FolderID = target.ID
	card.Folder = &models.FolderSummary{ID: target.ID, Name: target.Name}
	return card, nil
}

func (s *flashcardService) getOwned(userID, cardID string) (*models.Flashcard, error) {
	card, err := s.repo.GetByID(cardID)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, ErrFlashcardNotFound
	}
	if card.UserID != userID {
		return nil, ErrAccessDenied
	}
	return card, nil
}
