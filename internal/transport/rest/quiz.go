package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/cerego-backend/internal/domain"
)

// --- dependencies ---

type quizService interface {
	ListTypes(ctx context.Context) ([]domain.QuizType, error)
	History(ctx context.Context, limit int) ([]domain.Quiz, error)
	RecordScore(ctx context.Context, quizID uuid.UUID, score float64) error
}

// QuizHandler serves quiz REST endpoints.
type QuizHandler struct {
	svc quizService
	log *slog.Logger
}

// NewQuizHandler creates a QuizHandler.
func NewQuizHandler(svc quizService, logger *slog.Logger) *QuizHandler {
	return &QuizHandler{svc: svc, log: logger.With("handler", "quiz")}
}

type quizTypeResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type quizResponse struct {
	ID          string          `json:"id"`
	FlashcardID string          `json:"flashcardId"`
	QuizTypeID  string          `json:"quizTypeId"`
	Language    string          `json:"language"`
	Content     json.RawMessage `json:"content"`
	Score       *float64        `json:"score,omitempty"`
	CompletedAt *string         `json:"completedAt,omitempty"`
	CreatedAt   string          `json:"createdAt"`
}

// ListTypes handles GET /api/quiz-types.
func (h *QuizHandler) ListTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.svc.ListTypes(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]quizTypeResponse, 0, len(types))
	for _, t := range types {
		out = append(out, quizTypeResponse{ID: t.ID.String(), Name: t.Name.String()})
	}
	writeJSON(w, http.StatusOK, out)
}

// History handles GET /api/quizzes. The limit query parameter caps the
// number of returned quizzes.
func (h *QuizHandler) History(w http.ResponseWriter, r *http.Request) {
	var limit int
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	quizzes, err := h.svc.History(r.Context(), limit)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]quizResponse, 0, len(quizzes))
	for _, q := range quizzes {
		out = append(out, toQuizResponse(q))
	}
	writeJSON(w, http.StatusOK, out)
}

type recordScoreRequest struct {
	Score float64 `json:"score"`
}

// RecordScore handles POST /api/quizzes/{quizID}/score.
func (h *QuizHandler) RecordScore(w http.ResponseWriter, r *http.Request) {
	quizID, err := uuid.Parse(chi.URLParam(r, "quizID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid quiz ID")
		return
	}

	var req recordScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.svc.RecordScore(r.Context(), quizID, req.Score); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func toQuizResponse(q domain.Quiz) quizResponse {
	resp := quizResponse{
		ID:          q.ID.String(),
		FlashcardID: q.FlashcardID.String(),
		QuizTypeID:  q.QuizTypeID.String(),
		Language:    q.Language,
		Content:     json.RawMessage(q.Content),
		Score:       q.Score,
		CreatedAt:   q.CreatedAt.Format(timeFormat),
	}
	if q.CompletedAt != nil {
		completed := q.CompletedAt.Format(timeFormat)
		resp.CompletedAt = &completed
	}
	return resp
}
