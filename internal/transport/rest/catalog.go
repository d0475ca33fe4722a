package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/cerego-backend/internal/domain"
	"github.com/heartmarshall/cerego-backend/internal/service/catalog"
)

// --- dependencies ---

type catalogService interface {
	Create(ctx context.Context, input catalog.CreateInput) (domain.Catalog, error)
	SetVisibility(ctx context.Context, catalogID uuid.UUID, v domain.Visibility) error
	Delete(ctx context.Context, catalogID uuid.UUID, cascadeOwnFlashcards bool) error
	Share(ctx context.Context, input catalog.ShareInput) (catalog.ShareResult, error)
	Unshare(ctx context.Context, catalogID, sharedWithID uuid.UUID) error
	AddToCollection(ctx context.Context, catalogID uuid.UUID) error
	RemoveFromCollection(ctx context.Context, catalogID uuid.UUID) error
}

type catalogLister interface {
	AccessibleCatalogs(ctx context.Context) ([]domain.Catalog, error)
	CollectionCatalogs(ctx context.Context) ([]domain.Catalog, error)
}

// CatalogHandler serves catalog REST endpoints.
type CatalogHandler struct {
	svc    catalogService
	lister catalogLister
	log    *slog.Logger
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(svc catalogService, lister catalogLister, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{svc: svc, lister: lister, log: logger.With("handler", "catalog")}
}

type createCatalogRequest struct {
	Name         string   `json:"name"`
	Description  *string  `json:"description,omitempty"`
	Language     string   `json:"language"`
	Visibility   string   `json:"visibility"`
	FlashcardIDs []string `json:"flashcardIds"`
}

type catalogResponse struct {
	ID          string  `json:"id"`
	OwnerID     string  `json:"ownerId"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Language    string  `json:"language"`
	Visibility  string  `json:"visibility"`
	CreatedAt   string  `json:"createdAt"`
}

type shareRequest struct {
	Emails []string `json:"emails"`
}

type shareResponse struct {
	Shared        []string `json:"shared"`
	AlreadyShared []string `json:"alreadyShared"`
	UnknownEmails []string `json:"unknownEmails"`
}

// List handles GET /api/catalogs.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	catalogs, err := h.lister.AccessibleCatalogs(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCatalogResponses(catalogs))
}

// Collection handles GET /api/collection.
func (h *CatalogHandler) Collection(w http.ResponseWriter, r *http.Request) {
	catalogs, err := h.lister.CollectionCatalogs(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCatalogResponses(catalogs))
}

// Create handles POST /api/catalogs.
func (h *CatalogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCatalogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	flashcardIDs, err := parseUUIDs(req.FlashcardIDs)
	if err != nil {
		writeError(w, http.StatusBadRequest, "flashcardIds contains an invalid UUID")
		return
	}

	created, err := h.svc.Create(r.Context(), catalog.CreateInput{
		Name:         req.Name,
		Description:  req.Description,
		Language:     req.Language,
		Visibility:   domain.Visibility(req.Visibility),
		FlashcardIDs: flashcardIDs,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCatalogResponse(created))
}

type visibilityRequest struct {
	Visibility string `json:"visibility"`
}

// SetVisibility handles PATCH /api/catalogs/{catalogID}/visibility.
func (h *CatalogHandler) SetVisibility(w http.ResponseWriter, r *http.Request) {
	catalogID, err := uuid.Parse(chi.URLParam(r, "catalogID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid catalog ID")
		return
	}

	var req visibilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.svc.SetVisibility(r.Context(), catalogID, domain.Visibility(req.Visibility)); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Delete handles DELETE /api/catalogs/{catalogID}. The cascade query
// parameter also deletes the requester's flashcards that are linked to
// no other catalog.
func (h *CatalogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	catalogID, err := uuid.Parse(chi.URLParam(r, "catalogID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid catalog ID")
		return
	}

	cascade := r.URL.Query().Get("cascade") == "true"

	if err := h.svc.Delete(r.Context(), catalogID, cascade); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Share handles POST /api/catalogs/{catalogID}/share.
func (h *CatalogHandler) Share(w http.ResponseWriter, r *http.Request) {
	catalogID, err := uuid.Parse(chi.URLParam(r, "catalogID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid catalog ID")
		return
	}

	var req shareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Share(r.Context(), catalog.ShareInput{
		CatalogID: catalogID,
		Emails:    req.Emails,
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

// Unshare handles DELETE /api/catalogs/{catalogID}/share/{userID}.
func (h *CatalogHandler) Unshare(w http.ResponseWriter, r *http.Request) {
	catalogID, err := uuid.Parse(chi.URLParam(r, "catalogID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid catalog ID")
		return
	}
	userID, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user ID")
		return
	}

	if err := h.svc.Unshare(r.Context(), catalogID, userID); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddToCollection handles POST /api/collection/{catalogID}.
func (h *CatalogHandler) AddToCollection(w http.ResponseWriter, r *http.Request) {
	catalogID, err := uuid.Parse(chi.URLParam(r, "catalogID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid catalog ID")
		return
	}

	if err := h.svc.AddToCollection(r.Context(), catalogID); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// RemoveFromCollection handles DELETE /api/collection/{catalogID}.
func (h *CatalogHandler) RemoveFromCollection(w http.ResponseWriter, r *http.Request) {
	catalogID, err := uuid.Parse(chi.URLParam(r, "catalogID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid catalog ID")
		return
	}

	if err := h.svc.RemoveFromCollection(r.Context(), catalogID); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toCatalogResponse(c domain.Catalog) catalogResponse {
	return catalogResponse{
		ID:          c.ID.String(),
		OwnerID:     c.OwnerID.String(),
		Name:        c.Name,
		Description: c.Description,
		Language:    c.Language,
		Visibility:  c.Visibility.String(),
		CreatedAt:   c.CreatedAt.Format(timeFormat),
	}
}

func toCatalogResponses(catalogs []domain.Catalog) []catalogResponse {
	out := make([]catalogResponse, 0, len(catalogs))
	for _, c := range catalogs {
		out = append(out, toCatalogResponse(c))
	}
	return out
}

func parseUUIDs(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
