package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/cerego-backend/pkg/ctxutil"
)

type importResumer interface {
	Resume(ctx context.Context) error
}

// AdminHandler serves admin REST endpoints.
type AdminHandler struct {
	importer importResumer
	log      *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(importer importResumer, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		importer: importer,
		log:      logger.With("handler", "admin"),
	}
}

// ResumeImports re-enqueues import units left pending by a previous
// process, the same pass the server runs at startup.
// POST /admin/import/resume
func (h *AdminHandler) ResumeImports(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	if err := h.importer.Resume(r.Context()); err != nil {
		h.log.ErrorContext(r.Context(), "resume imports", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *AdminHandler) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	if !ctxutil.IsAdminCtx(r.Context()) {
		writeError(w, http.StatusForbidden, "admin access required")
		return false
	}
	return true
}
