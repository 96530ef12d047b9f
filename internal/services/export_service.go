package services

import (
	"fmt"
	"strings"
	"time"

	"flashdeck/internal/pdf"
	"flashdeck/internal/repositories"
)

type ExportService interface {
	// ExportFolder renders the folder's flashcards as a PDF study sheet.
	// Ownership is checked the same way as any other folder access.
	ExportFolder(userID, folderID string) (content []byte, filename string, err error)
}

type exportService struct {
	folders FolderService
	cards   repositories.FlashcardRepository
	gen     pdf.Generator
}

func NewExportService(folders FolderService, cards repositories.FlashcardRepository, gen pdf.Generator) ExportService {
	return &exportService{folders: folders, cards: cards, gen: gen}
}

func (s *exportService) ExportFolder(userID, folderID string) ([]byte, string, error) {
	folder, err := s.folders.GetOwned(userID, folderID)
	if err != nil {
		return nil, "", err
	}
	cards, err := s.cards.ListByUser(userID, folder.ID)
	if err != nil {
		return nil, "", err
	}

	data := pdf.SheetData{
		FolderName: folder.Name,
		CreatedAt:  time.Now(),
	}
	for _, c := range cards {
		data.Cards = append(data.Cards, pdf.Card{FrontText: c.FrontText, BackText: c.BackText})
	}

	content, err := s.gen.StudySheet(data)
	if err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("%s.pdf", slugify(folder.Name))
	return content, filename, nil
}

func slugify(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('-')
		}
	}
	out := strings.Trim(b.String(), "-")
	if out == "" {
		out = "folder"
	}
	return out
}
