package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/ahmed-elbehidy/bill-management-system/internal/models"
	"github.com/ahmed-elbehidy/bill-management-system/internal/services"
	"github.com/ahmed-elbehidy/bill-management-system/internal/store"
	"github.com/ahmed-elbehidy/bill-management-system/internal/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupController(t *testing.T) (*ui.Controller, *store.Store) {
	t.Helper()
	s, err := store.Open(context.Background(), fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()), false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	menu := models.NewMenu([]models.MenuItem{{Name: "Pizza", UnitPrice: 8.50}, {Name: "Burger", UnitPrice: 5.00}})
	c := ui.NewController(menu, s, services.NewBillService())
	c.SetClock(func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.Local) })
	return c, s
}

func TestTotalFormRedirectsAndRendersBill(t *testing.T) {
	c, s := setupController(t)
	h := NewBillHandler(c)

	form := url.Values{"qty_0": {"2"}, "qty_1": {""}}
	req := httptest.NewRequest(http.MethodPost, "/bill", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	h.Total(w, req)
	require.Equal(t, http.StatusSeeOther, w.Code)

	lines, err := s.ListItemsForDate(context.Background(), "2024-05-01 12:00:00")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "Pizza", lines[0].Item)

	page := httptest.NewRecorder()
	h.Index(page, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, page.Code)
	body := page.Body.String()
	assert.Contains(t, body, "Pizza          2         8.50           17.00")
	assert.Contains(t, body, "$17.00")
	assert.Contains(t, body, `name="qty_0" value="2"`)
}

func TestTotalJSON(t *testing.T) {
	c, _ := setupController(t)
	h := NewBillHandler(c)

	req := httptest.NewRequest(http.MethodPost, "/bill", strings.NewReader(`{"quantities":{"Pizza":"1","Burger":"3"}}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.Total(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Lines      []services.BillLine `json:"lines"`
		GrandTotal float64             `json:"grand_total"`
		Timestamp  string              `json:"timestamp"`
		Text       string              `json:"text"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Lines, 2)
	assert.Equal(t, 23.50, resp.GrandTotal)
	assert.Equal(t, "2024-05-01 12:00:00", resp.Timestamp)
	assert.Contains(t, resp.Text, "$23.50")
}

func TestTotalInvalidJSON(t *testing.T) {
	c, _ := setupController(t)
	req := httptest.NewRequest(http.MethodPost, "/bill", strings.NewReader(`{`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	NewBillHandler(c).Total(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTotalStorageFailureFlashes(t *testing.T) {
	c, s := setupController(t)
	require.NoError(t, s.Close())
	h := NewBillHandler(c)

	form := url.Values{"qty_0": {"1"}}
	req := httptest.NewRequest(http.MethodPost, "/bill", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	h.Total(w, req)
	require.Equal(t, http.StatusSeeOther, w.Code)
	var flash *http.Cookie
	for _, ck := range w.Result().Cookies() {
		if ck.Name == "flash" {
			flash = ck
		}
	}
	require.NotNil(t, flash)

	jreq := httptest.NewRequest(http.MethodPost, "/bill", strings.NewReader(`{"quantities":{"Pizza":"1"}}`))
	jreq.Header.Set("Content-Type", "application/json")
	jw := httptest.NewRecorder()
	h.Total(jw, jreq)
	assert.Equal(t, http.StatusServiceUnavailable, jw.Code)
	assert.JSONEq(t, `{"error":"storage_unavailable"}`, jw.Body.String())
}

func TestResetClearsStateOnly(t *testing.T) {
	c, s := setupController(t)
	h := NewBillHandler(c)
	_, err := c.Total(context.Background(), map[string]string{"Pizza": "2"})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	h.Reset(w, httptest.NewRequest(http.MethodPost, "/reset", nil))
	assert.Equal(t, http.StatusSeeOther, w.Code)

	st := c.Snapshot()
	assert.Nil(t, st.Bill)
	assert.Empty(t, st.Entries)
	dates, err := s.ListDistinctDates(context.Background())
	require.NoError(t, err)
	assert.Len(t, dates, 1)

	page := httptest.NewRecorder()
	h.Index(page, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotContains(t, page.Body.String(), "17.00")
}

func TestMenuJSON(t *testing.T) {
	c, _ := setupController(t)
	w := httptest.NewRecorder()
	NewBillHandler(c).Menu(w, httptest.NewRequest(http.MethodGet, "/menu", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"items":[{"name":"Pizza","unit_price":8.5},{"name":"Burger","unit_price":5}]}`, w.Body.String())
}

func TestHistoryNoData(t *testing.T) {
	c, _ := setupController(t)
	h := NewHistoryHandler(c)

	w := httptest.NewRecorder()
	h.List(w, httptest.NewRequest(http.MethodGet, "/orders", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No orders found in the database.")

	jreq := httptest.NewRequest(http.MethodGet, "/orders", nil)
	jreq.Header.Set("Accept", "application/json")
	jw := httptest.NewRecorder()
	h.List(jw, jreq)
	assert.JSONEq(t, `{"dates":[],"message":"No orders found in the database."}`, jw.Body.String())
}

func TestHistoryGroupedReport(t *testing.T) {
	c, _ := setupController(t)
	_, err := c.Total(context.Background(), map[string]string{"Pizza": "2", "Burger": "1"})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	NewHistoryHandler(c).List(w, httptest.NewRequest(http.MethodGet, "/orders", nil))
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Date: 2024-05-01 12:00:00")
	assert.Contains(t, body, "$22.00")
	assert.Contains(t, body, "Thank you for visiting us!")

	jreq := httptest.NewRequest(http.MethodGet, "/orders", nil)
	jreq.Header.Set("Accept", "application/json")
	jw := httptest.NewRecorder()
	NewHistoryHandler(c).List(jw, jreq)
	var resp struct {
		Dates []models.DateGroup `json:"dates"`
	}
	require.NoError(t, json.Unmarshal(jw.Body.Bytes(), &resp))
	require.Len(t, resp.Dates, 1)
	assert.Equal(t, 22.00, resp.Dates[0].Subtotal)
	assert.Len(t, resp.Dates[0].Lines, 2)
}

func TestHistoryStorageFailure(t *testing.T) {
	c, s := setupController(t)
	require.NoError(t, s.Close())
	w := httptest.NewRecorder()
	NewHistoryHandler(c).List(w, httptest.NewRequest(http.MethodGet, "/orders", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "Orders could not be loaded.")
}
