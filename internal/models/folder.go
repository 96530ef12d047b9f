package models

import "time"

type Folder struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`

	// filled by list queries only
	FlashcardCount int `json:"flashcardCount"`
}

// FolderSummary is the folder slice embedded into flashcard responses.
type FolderSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
