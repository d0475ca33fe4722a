package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/cerego-backend/internal/domain"
	"github.com/heartmarshall/cerego-backend/internal/service/flashcard"
)

// --- dependencies ---

type flashcardService interface {
	List(ctx context.Context, language *string) ([]domain.FlashcardWithAuthor, error)
	Stats(ctx context.Context) (domain.FlashcardStats, error)
	Share(ctx context.Context, input flashcard.ShareInput) (flashcard.ShareResult, error)
	Delete(ctx context.Context, flashcardID uuid.UUID) error
	CheckDuplicates(ctx context.Context, words []string) (flashcard.DuplicateCheckResult, error)
}

// FlashcardHandler serves flashcard REST endpoints.
type FlashcardHandler struct {
	svc flashcardService
	log *slog.Logger
}

// NewFlashcardHandler creates a FlashcardHandler.
func NewFlashcardHandler(svc flashcardService, logger *slog.Logger) *FlashcardHandler {
	return &FlashcardHandler{svc: svc, log: logger.With("handler", "flashcard")}
}

type flashcardResponse struct {
	ID         string `json:"id"`
	OwnerID    string `json:"ownerId"`
	Front      string `json:"front"`
	Back       string `json:"back"`
	Language   string `json:"language"`
	AuthorName string `json:"authorName"`
	IsOwner    bool   `json:"isOwner"`
	CreatedAt  string `json:"createdAt"`
}

type flashcardStatsResponse struct {
	TotalCards    int     `json:"totalCards"`
	CardsToReview int     `json:"cardsToReview"`
	AverageLevel  float64 `json:"averageLevel"`
}

// List handles GET /api/flashcards. The language query parameter narrows
// the listing to one target language.
func (h *FlashcardHandler) List(w http.ResponseWriter, r *http.Request) {
	var language *string
	if lang := r.URL.Query().Get("language"); lang != "" {
		language = &lang
	}

	cards, err := h.svc.List(r.Context(), language)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]flashcardResponse, 0, len(cards))
	for _, c := range cards {
		out = append(out, toFlashcardResponse(c))
	}
	writeJSON(w, http.StatusOK, out)
}

// Stats handles GET /api/flashcards/stats.
func (h *FlashcardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, flashcardStatsResponse{
		TotalCards:    stats.TotalCards,
		CardsToReview: stats.CardsToReview,
		AverageLevel:  stats.AverageLevel,
	})
}

// Share handles POST /api/flashcards/{flashcardID}/share.
func (h *FlashcardHandler) Share(w http.ResponseWriter, r *http.Request) {
	flashcardID, err := uuid.Parse(chi.URLParam(r, "flashcardID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid flashcard ID")
		return
	}

	var req shareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Share(r.Context(), flashcard.ShareInput{
		FlashcardID: flashcardID,
		Emails:      req.Emails,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, shareResponse{
		Shared:        result.Shared,
		AlreadyShared: result.AlreadyShared,
		UnknownEmails: result.UnknownEmails,
	})
}

// Delete handles DELETE /api/flashcards/{flashcardID}. Owners delete the
// card itself; share recipients only lose their access to it.
func (h *FlashcardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	flashcardID, err := uuid.Parse(chi.URLParam(r, "flashcardID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid flashcard ID")
		return
	}

	if err := h.svc.Delete(r.Context(), flashcardID); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type extractWordsRequest struct {
	Text string `json:"text"`
}

type extractWordsResponse struct {
	Words []string `json:"words"`
}

// ExtractWords handles POST /api/words/extract.
func (h *FlashcardHandler) ExtractWords(w http.ResponseWriter, r *http.Request) {
	var req extractWordsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	writeJSON(w, http.StatusOK, extractWordsResponse{Words: flashcard.ExtractWords(req.Text)})
}

type checkDuplicatesRequest struct {
	Words []string `json:"words"`
}

type checkDuplicatesResponse struct {
	Duplicates []string `json:"duplicates"`
	Fresh      []string `json:"fresh"`
}

// CheckDuplicates handles POST /api/words/check-duplicates.
func (h *FlashcardHandler) CheckDuplicates(w http.ResponseWriter, r *http.Request) {
	var req checkDuplicatesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.CheckDuplicates(r.Context(), req.Words)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, checkDuplicatesResponse{
		Duplicates: result.Duplicates,
		Fresh:      result.Fresh,
	})
}

func toFlashcardResponse(c domain.FlashcardWithAuthor) flashcardResponse {
	return flashcardResponse{
		ID:         c.ID.String(),
		OwnerID:    c.OwnerID.String(),
		Front:      c.Front,
		Back:       c.Back,
		Language:   c.Language,
		AuthorName: c.AuthorName,
		IsOwner:    c.IsOwner,
		CreatedAt:  c.CreatedAt.Format(timeFormat),
	}
}
