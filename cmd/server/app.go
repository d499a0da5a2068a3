package main

import (
	"context"
	"io"
	"net/http"

	"github.com/ahmed-elbehidy/bill-management-system/i18n"
	"github.com/ahmed-elbehidy/bill-management-system/internal/config"
	"github.com/ahmed-elbehidy/bill-management-system/internal/models"
	"github.com/ahmed-elbehidy/bill-management-system/internal/report"
	"github.com/ahmed-elbehidy/bill-management-system/internal/server"
	"github.com/ahmed-elbehidy/bill-management-system/internal/services"
	"github.com/ahmed-elbehidy/bill-management-system/internal/store"
	"github.com/ahmed-elbehidy/bill-management-system/internal/ui"
)

// App wires the menu, the ordering screen state and the HTTP routes.
type App struct {
	handler http.Handler
	ui      *ui.Controller
}

// NewApp creates the application on top of an opened store.
func NewApp(cfg *config.Config, st *store.Store) *App {
	menu := models.NewMenu(cfg.Menu)
	c := ui.NewController(menu, st, services.NewBillService())
	return &App{
		handler: server.New(c, st),
		ui:      c,
	}
}

// ServeHTTP implements http.Handler.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.handler.ServeHTTP(w, r)
}

// PrintHistory writes the Show Orders report as text.
func (a *App) PrintHistory(ctx context.Context, w io.Writer) error {
	groups, err := a.ui.History(ctx)
	if err != nil {
		return err
	}
	if err := report.WriteHistory(w, groups, report.LabelsFor(i18n.DefaultLang)); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}
