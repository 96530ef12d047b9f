package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flashdeck/internal/handlers"
	"flashdeck/internal/models"
	"flashdeck/internal/routes"
	"flashdeck/internal/services"
)

type stubFlashcardService struct {
	listFn   func(userID, folderID string) ([]*models.Flashcard, error)
	createFn func(userID, folderID, frontText, backText string) (*models.Flashcard, error)
	updateFn func(userID, cardID, frontText, backText string) (*models.Flashcard, error)
	deleteFn func(userID, cardID string) error
	moveFn   func(userID, cardID, folderID string) (*models.Flashcard, error)
}

func (s *stubFlashcardService) List(userID, folderID string) ([]*models.Flashcard, error) {
	return s.listFn(userID, folderID)
}
func (s *stubFlashcardService) Create(userID, folderID, frontText, backText string) (*models.Flashcard, error) {
	return s.createFn(userID, folderID, frontText, backText)
}
func (s *stubFlashcardService) Update(userID, cardID, frontText, backText string) (*models.Flashcard, error) {
	return s.updateFn(userID, cardID, frontText, backText)
}
func (s *stubFlashcardService) Delete(userID, cardID string) error {
	return s.deleteFn(userID, cardID)
}
func (s *stubFlashcardService) Move(userID, cardID, folderID string) (*models.Flashcard, error) {
	return s.moveFn(userID, cardID, folderID)
}

func flashcardRouter(cards services.FlashcardService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	return routes.SetupRoutes(r,
		handlers.NewAuthHandler(nil, testSecret),
		handlers.NewFolderHandler(nil, nil),
		handlers.NewFlashcardHandler(cards),
		testSecret,
	)
}

func TestFlashcardList_PassesFolderFilter(t *testing.T) {
	var gotFolder string
	cards := &stubFlashcardService{
		listFn: func(userID, folderID string) ([]*models.Flashcard, error) {
			gotFolder = folderID
			return []*models.Flashcard{{
				ID: "c1", UserID: userID, FolderID: folderID,
				FrontText: "hablar", BackText: "to speak",
				Folder: &models.FolderSummary{ID: folderID, Name: "verbs"},
			}}, nil
		},
	}
	r := flashcardRouter(cards)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, authedRequest(t, http.MethodGet, "/api/flashcards?folder_id=f1", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "f1", gotFolder)
	assert.Contains(t, w.Body.String(), `"folder":{"id":"f1","name":"verbs"}`)
}

func TestFlashcardCreate_Statuses(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"created", nil, http.StatusCreated},
		{"oversized text", &services.ValidationError{Errors: []string{"Front text must be 1000 characters or less"}}, http.StatusBadRequest},
		{"foreign folder", services.ErrAccessDenied, http.StatusForbidden},
		{"missing folder", services.ErrFolderNotFound, http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cards := &stubFlashcardService{
				createFn: func(userID, folderID, frontText, backText string) (*models.Flashcard, error) {
					if tc.err != nil {
						return nil, tc.err
					}
					return &models.Flashcard{ID: "c1", UserID: userID, FolderID: folderID}, nil
				},
			}
			w := httptest.NewRecorder()
			flashcardRouter(cards).ServeHTTP(w, authedRequest(t, http.MethodPost, "/api/flashcards",
				gin.H{"folderId": "f1", "frontText": "a", "backText": "b"}))
			assert.Equal(t, tc.wantCode, w.Code)
		})
	}
}

func TestFlashcardMove_Statuses(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"moved", nil, http.StatusOK},
		{"foreign target", services.ErrAccessDenied, http.StatusForbidden},
		{"missing card", services.ErrFlashcardNotFound, http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cards := &stubFlashcardService{
				moveFn: func(userID, cardID, folderID string) (*models.Flashcard, error) {
					if tc.err != nil {
						return nil, tc.err
					}
					return &models.Flashcard{ID: cardID, UserID: userID, FolderID: folderID}, nil
				},
			}
			w := httptest.NewRecorder()
			flashcardRouter(cards).ServeHTTP(w, authedRequest(t, http.MethodPatch, "/api/flashcards/c1/move",
				gin.H{"folderId": "f2"}))
			assert.Equal(t, tc.wantCode, w.Code)
		})
	}
}

func TestFlashcardDelete_Foreign(t *testing.T) {
	cards := &stubFlashcardService{
		deleteFn: func(userID, cardID string) error { return services.ErrAccessDenied },
	}
	w := httptest.NewRecorder()
	flashcardRouter(cards).ServeHTTP(w, authedRequest(t, http.MethodDelete, "/api/flashcards/c1", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestFlashcardUpdate_OK(t *testing.T) {
	cards := &stubFlashcardService{
		updateFn: func(userID, cardID, frontText, backText string) (*models.Flashcard, error) {
			return &models.Flashcard{ID: cardID, UserID: userID, FrontText: frontText, BackText: backText}, nil
		},
	}
	w := httptest.NewRecorder()
	flashcardRouter(cards).ServeHTTP(w, authedRequest(t, http.MethodPut, "/api/flashcards/c1",
		gin.H{"frontText": "x", "backText": "y"}))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"frontText":"x"`)
}
