package repositories

import (
	"database/sql"
	"errors"

	"flashdeck/internal/models"
)

type FlashcardRepository interface {
	Create(card *models.Flashcard) error
	GetByID(id string) (*models.Flashcard, error)
	// ListByUser returns the user's flashcards newest first, each with
	// its folder summary; folderID narrows the result when non-empty.
	ListByUser(userID, folderID string) ([]*models.Flashcard, error)
	UpdateTexts(id, frontText, backText string) error
	UpdateFolder(id, folderID string) error
	Delete(id string) error
}

type flashcardRepository struct {
	DB *sql.DB
}

func NewFlashcardRepository(db *sql.DB) FlashcardRepository {
	return &flashcardRepository{DB: db}
}

func (r *flashcardRepository) Create(card *models.Flashcard) error {
	const q = `
		INSERT INTO flashcards (id, user_id, folder_id, front_text, back_text)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`
	return r.DB.QueryRow(q,
		card.ID, card.UserID, card.FolderID, card.FrontText, card.BackText,
	).Scan(&card.CreatedAt)
}

func (r *flashcardRepository) GetByID(id string) (*models.Flashcard, error) {
	const q = `
		SELECT c.id, c.user_id, c.folder_id, c.front_text, c.back_text, c.created_at,
		       f.id, f.name
		FROM flashcards c
		JOIN folders f ON f.id = c.folder_id
		WHERE c.id = $1
	`
	c := &models.Flashcard{Folder: &models.FolderSummary{}}
	err := r.DB.QueryRow(q, id).Scan(
		&c.ID, &c.UserID, &c.FolderID, &c.FrontText, &c.BackText, &c.CreatedAt,
		&c.Folder.ID, &c.Folder.Name,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *flashcardRepository) ListByUser(userID, folderID string) ([]*models.Flashcard, error) {
	q := `
		SELECT c.id, c.user_id, c.folder_id, c.front_text, c.back_text, c.created_at,
		       f.id, f.name
		FROM flashcards c
		JOIN folders f ON f.id = c.folder_id
		WHERE c.user_id = $1
	`
	args := []any{userID}
	if folderID != "" {
		q += ` AND c.folder_id = $2`
		args = append(args, folderID)
	}
	q += ` ORDER BY c.created_at DESC`

	rows, err := r.DB.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*models.Flashcard
	for rows.Next() {
		c := &models.Flashcard{Folder: &models.FolderSummary{}}
		if err := rows.Scan(
			&c.ID, &c.UserID, &c.FolderID, &c.FrontText, &c.BackText, &c.CreatedAt,
			&c.Folder.ID, &c.Folder.Name,
		); err != nil {
			return nil, err
		}
		res = append(res, c)
	}
	return res, rows.Err()
}

func (r *flashcardRepository) UpdateTexts(id, frontText, backText string) error {
	const q = `
		UPDATE flashcards SET front_text = $1, back_text = $2 WHERE id = $3
	`
	_, err := r.DB.Exec(q, frontText, backText, id)
	return err
}

func (r *flashcardRepository) UpdateFolder(id, folderID string) error {
	_, err := r.DB.Exec(`UPDATE flashcards SET folder_id = $1 WHERE id = $2`, folderID, id)
	return err
}

func (r *flashcardRepository) Delete(id string) error {
	_, err := r.DB.Exec(`DELETE FROM flashcards WHERE id = $1`, id)
	return err
}
