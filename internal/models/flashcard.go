package models

import "time"

type Flashcard struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	FolderID  string    `json:"folderId"`
	FrontText string    `json:"frontText"`
	BackText  string    `json:"backText"`
	CreatedAt time.Time `json:"createdAt"`

	// joined folder summary, present on reads that include it
	Folder *FolderSummary `json:"folder,omitempty"`
}
