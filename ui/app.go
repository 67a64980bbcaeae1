// Package ui serves the faculty allocation dashboard: roster upload, the
// allocation and preference-summary tables, run metrics and CSV downloads.
package ui

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"facalloc/app"
	"facalloc/domain/roster"
	"facalloc/internal"
	"facalloc/internal/config"
)

//go:embed templates/*
var embeddedFiles embed.FS

// App represents the dashboard application
type App struct {
	router    *chi.Mux
	service   *app.AllocationService
	config    *config.Config
	logger    *internal.Logger
	templates *template.Template

	// One roster and one run at a time; this is a single-operator tool.
	mu           sync.RWMutex
	currentTable *roster.Table
	currentFile  string
	lastRun      *app.RunResult
}

// NewApp creates a new dashboard application
func NewApp(cfg *config.Config, service *app.AllocationService, logger *internal.Logger) (*App, error) {
	if logger == nil {
		logger = internal.NewDefaultLogger()
	}

	funcMap := template.FuncMap{
		"add": func(a, b int) int { return a + b },
		"until": func(n int) []int {
			res := make([]int, n)
			for i := range res {
				res[i] = i
			}
			return res
		},
		"cgpa": func(v float64) string { return fmt.Sprintf("%.2f", v) },
	}

	templates, err := template.New("").Funcs(funcMap).ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	a := &App{
		router:    chi.NewRouter(),
		service:   service,
		config:    cfg,
		logger:    logger,
		templates: templates,
	}
	a.setupRoutes()
	return a, nil
}

func (a *App) setupRoutes() {
	a.router.Use(middleware.RequestID)
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)

	a.router.Get("/", a.handleIndex)
	a.router.Post("/upload", a.handleUpload)
	a.router.Post("/allocate", a.handleAllocate)
	a.router.Get("/results", a.handleResults)
	a.router.Get("/download/allocation.csv", a.handleDownloadAllocation)
	a.router.Get("/download/preferences.csv", a.handleDownloadSummary)
	a.router.Get("/api/health", a.handleHealth)
}

// Router exposes the chi mux for serving and for handler tests
func (a *App) Router() http.Handler {
	return a.router
}

// Start starts the web server
func (a *App) Start(addr string) error {
	a.logger.Info("Starting faculty allocation dashboard on http://%s", addr)
	return http.ListenAndServe(addr, a.router)
}

func (a *App) renderTemplate(w http.ResponseWriter, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := a.templates.ExecuteTemplate(w, name, data); err != nil {
		a.logger.Error("template %s: %v", name, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
