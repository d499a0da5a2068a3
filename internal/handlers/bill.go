package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/ahmed-elbehidy/bill-management-system/httpx"
	"github.com/ahmed-elbehidy/bill-management-system/internal/logger"
	"github.com/ahmed-elbehidy/bill-management-system/internal/middleware"
	"github.com/ahmed-elbehidy/bill-management-system/internal/report"
	"github.com/ahmed-elbehidy/bill-management-system/internal/services"
	"github.com/ahmed-elbehidy/bill-management-system/internal/store"
	"github.com/ahmed-elbehidy/bill-management-system/internal/ui"
	"github.com/ahmed-elbehidy/bill-management-system/view"
)

// BillHandler serves the ordering screen: HTML forms or JSON.
type BillHandler struct {
	UI *ui.Controller
}

func NewBillHandler(c *ui.Controller) *BillHandler {
	return &BillHandler{UI: c}
}

type formItem struct {
	Index     int
	Name      string
	UnitPrice float64
	Value     string
}

// Index: GET / – menu, quantity fields, bill pane
func (h *BillHandler) Index(w http.ResponseWriter, r *http.Request) {
	st := h.UI.Snapshot()
	items := make([]formItem, 0, h.UI.Menu().Len())
	for i, it := range h.UI.Menu().Items() {
		items = append(items, formItem{Index: i, Name: it.Name, UnitPrice: it.UnitPrice, Value: st.Entries[it.Name]})
	}
	data := map[string]any{
		"Items":    items,
		"BillText": report.Bill(st.Bill, report.LabelsFor(middleware.LangFrom(r))),
		"Phase":    st.Phase.String(),
		"Flash":    middleware.TakeFlash(w, r),
	}
	if err := view.Render(w, r, "index.html", data); err != nil {
		logger.GetLogger().Errorw("render index", "error", err)
		http.Error(w, "template render error", http.StatusInternalServerError)
	}
}

// Menu: GET /menu – menu as JSON
func (h *BillHandler) Menu(w http.ResponseWriter, _ *http.Request) {
	httpx.JSON(w, http.StatusOK, map[string]any{"items": h.UI.Menu().Items()})
}

type totalReq struct {
	Quantities map[string]string `json:"quantities"`
}

type totalResp struct {
	*services.Bill
	Text string `json:"text"`
}

// Total: POST /bill – JSON body {"quantities":{...}} or form fields qty_<index>
func (h *BillHandler) Total(w http.ResponseWriter, r *http.Request) {
	entries := map[string]string{}
	asJSON := httpx.SendsJSON(r)
	if asJSON {
		var req totalReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
			return
		}
		entries = req.Quantities
	} else {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}
		for i, it := range h.UI.Menu().Items() {
			entries[it.Name] = r.PostForm.Get("qty_" + strconv.Itoa(i))
		}
	}

	bill, err := h.UI.Total(r.Context(), entries)
	if err != nil {
		if asJSON || httpx.WantsJSON(r) {
			httpx.JSONError(w, http.StatusServiceUnavailable, storageErrorCode(err), nil)
			return
		}
		middleware.Flash(w, r, "storage_error")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if asJSON || httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusOK, totalResp{Bill: bill, Text: report.Bill(bill, report.LabelsFor(middleware.LangFrom(r)))})
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Reset: POST /reset – clears fields and bill; stored orders stay
func (h *BillHandler) Reset(w http.ResponseWriter, r *http.Request) {
	h.UI.Reset()
	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "reset"})
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func storageErrorCode(err error) string {
	if errors.Is(err, store.ErrStorageCorrupt) {
		return "storage_corrupt"
	}
	return "storage_unavailable"
}
