package handlers

import (
	"net/http"

	"github.com/ahmed-elbehidy/bill-management-system/httpx"
	"github.com/ahmed-elbehidy/bill-management-system/i18n"
	"github.com/ahmed-elbehidy/bill-management-system/internal/logger"
	"github.com/ahmed-elbehidy/bill-management-system/internal/middleware"
	"github.com/ahmed-elbehidy/bill-management-system/internal/models"
	"github.com/ahmed-elbehidy/bill-management-system/internal/report"
	"github.com/ahmed-elbehidy/bill-management-system/internal/ui"
	"github.com/ahmed-elbehidy/bill-management-system/view"
)

// HistoryHandler serves the read-only orders window.
type HistoryHandler struct {
	UI *ui.Controller
}

func NewHistoryHandler(c *ui.Controller) *HistoryHandler {
	return &HistoryHandler{UI: c}
}

// List: GET /orders – HTML report or JSON groups
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	lang := middleware.LangFrom(r)
	groups, err := h.UI.History(r.Context())
	if err != nil {
		logger.GetLogger().Errorw("load order history", "error", err)
		if httpx.WantsJSON(r) {
			httpx.JSONError(w, http.StatusServiceUnavailable, storageErrorCode(err), nil)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = view.Render(w, r, "orders.html", map[string]any{"Error": i18n.T(lang, "history_error")})
		return
	}
	if httpx.WantsJSON(r) {
		if len(groups) == 0 {
			httpx.JSON(w, http.StatusOK, map[string]any{"dates": []models.DateGroup{}, "message": i18n.T(lang, "orders.none")})
			return
		}
		httpx.JSON(w, http.StatusOK, map[string]any{"dates": groups})
		return
	}
	if err := view.Render(w, r, "orders.html", map[string]any{"Report": report.History(groups, report.LabelsFor(lang))}); err != nil {
		logger.GetLogger().Errorw("render orders", "error", err)
		http.Error(w, "template render error", http.StatusInternalServerError)
	}
}
