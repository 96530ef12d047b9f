package repositories

import (
	"database/sql"
	"errors"

	"flashdeck/internal/models"
)

type FolderRepository interface {
	Create(folder *models.Folder) error
	GetByID(id string) (*models.Folder, error)
	ListByUser(userID string) ([]*models.Folder, error)
	UpdateName(id, name string) error
	Delete(id string) error
}

type folderRepository struct {
	DB *sql.DB
}

func NewFolderRepository(db *sql.DB) FolderRepository {
	return &folderRepository{DB: db}
}

func (r *folderRepository) Create(folder *models.Folder) error {
	const q = `
		INSERT INTO folders (id, user_id, name)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`
	return r.DB.QueryRow(q, folder.ID, folder.UserID, folder.Name).Scan(&folder.CreatedAt)
}

func (r *folderRepository) GetByID(id string) (*models.Folder, error) {
	const q = `
		SELECT id, user_id, name, created_at
		FROM folders
		WHERE id = $1
	`
	f := &models.Folder{}
	err := r.DB.QueryRow(q, id).Scan(&f.ID, &f.UserID, &f.Name, &f.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (r *folderRepository) ListByUser(userID string) ([]*models.Folder, error) {
	const q = `
		SELECT f.id, f.user_id, f.name, f.created_at, COUNT(c.id)
		FROM folders f
		LEFT JOIN flashcards c ON c.folder_id = f.id
		WHERE f.user_id = $1
		GROUP BY f.id
		ORDER BY f.created_at DESC
	`
	rows, err := r.DB.Query(q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*models.Folder
	for rows.Next() {
		f := &models.Folder{}
		if err := rows.Scan(&f.ID, &f.UserID, &f.Name, &f.CreatedAt, &f.FlashcardCount); err != nil {
			return nil, err
		}
		res = append(res, f)
	}
	return res, rows.Err()
}

func (r *folderRepository) UpdateName(id, name string) error {
	_, err := r.DB.Exec(`UPDATE folders SET name = $1 WHERE id = $2`, name, id)
	return err
}

// Delete removes the folder and all flashcards inside it in one
// transaction, so no orphaned flashcards can survive even without the
// FK cascade.
func (r *folderRepository) Delete(id string) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM flashcards WHERE folder_id = $1`, id); err != nil {
		tx.Rollback()
		return err
	}
	if _, err := tx.Exec(`DELETE FROM folders WHERE id = $1`, id); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}
