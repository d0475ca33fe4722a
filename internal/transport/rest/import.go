package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/cerego-backend/internal/domain"
	"github.com/heartmarshall/cerego-backend/internal/importer"
)

// --- dependencies ---

type importService interface {
	Dispatch(ctx context.Context, input importer.DispatchInput) (*importer.DispatchResult, error)
	Poll(ctx context.Context, taskID uuid.UUID) (*importer.PollResult, error)
	ValidateWords(ctx context.Context, input importer.ValidateWordsInput) ([]string, error)
	GenerateDefinitions(ctx context.Context, input importer.GenerateDefinitionsInput) ([]domain.WordPair, error)
}

// ImportHandler serves the word import REST endpoints.
type ImportHandler struct {
	svc importService
	log *slog.Logger
}

// NewImportHandler creates an ImportHandler.
func NewImportHandler(svc importService, logger *slog.Logger) *ImportHandler {
	return &ImportHandler{svc: svc, log: logger.With("handler", "import")}
}

type wordPairRequest struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

type dispatchRequest struct {
	Words      []wordPairRequest `json:"words"`
	Language   string            `json:"language"`
	CatalogIDs []string          `json:"catalogIds"`
}

type dispatchResponse struct {
	TaskID        string   `json:"taskId"`
	AcceptedWords []string `json:"acceptedWords"`
}

type pollResponse struct {
	Status          string `json:"status"`
	ProgressPercent int    `json:"progressPercent"`
}

// Dispatch handles POST /api/import. It accepts the import synchronously
// and returns a task ID; quiz generation runs in the background.
func (h *ImportHandler) Dispatch(w http.ResponseWriter, r *http.Request) {
	var req dispatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	catalogIDs, err := parseUUIDs(req.CatalogIDs)
	if err != nil {
		writeError(w, http.StatusBadRequest, "catalogIds contains an invalid UUID")
		return
	}

	pairs := make([]domain.WordPair, 0, len(req.Words))
	for _, p := range req.Words {
		pairs = append(pairs, domain.WordPair{Front: p.Front, Back: p.Back})
	}

	result, err := h.svc.Dispatch(r.Context(), importer.DispatchInput{
		Pairs:      pairs,
		Language:   req.Language,
		CatalogIDs: catalogIDs,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusAccepted, dispatchResponse{
		TaskID:        result.TaskID.String(),
		AcceptedWords: result.AcceptedWords,
	})
}

// Poll handles GET /api/import/{taskID}.
func (h *ImportHandler) Poll(w http.ResponseWriter, r *http.Request) {
	taskID, err := uuid.Parse(chi.URLParam(r, "taskID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid task ID")
		return
	}

	result, err := h.svc.Poll(r.Context(), taskID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, pollResponse{
		Status:          result.Status,
		ProgressPercent: result.ProgressPercent,
	})
}

type wordsRequest struct {
	Words    []string `json:"words"`
	Language string   `json:"language"`
}

type validateWordsResponse struct {
	ValidWords []string `json:"validWords"`
}

// ValidateWords handles POST /api/words/validate.
func (h *ImportHandler) ValidateWords(w http.ResponseWriter, r *http.Request) {
	var req wordsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	valid, err := h.svc.ValidateWords(r.Context(), importer.ValidateWordsInput{
		Words:    req.Words,
		Language: req.Language,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, validateWordsResponse{ValidWords: valid})
}

type wordPairResponse struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

type generateDefinitionsResponse struct {
	Pairs []wordPairResponse `json:"pairs"`
}

// GenerateDefinitions handles POST /api/words/definitions.
func (h *ImportHandler) GenerateDefinitions(w http.ResponseWriter, r *http.Request) {
	var req wordsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	pairs, err := h.svc.GenerateDefinitions(r.Context(), importer.GenerateDefinitionsInput{
		Words:    req.Words,
		Language: req.Language,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]wordPairResponse, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, wordPairResponse{Front: p.Front, Back: p.Back})
	}
	writeJSON(w, http.StatusOK, generateDefinitionsResponse{Pairs: out})
}
