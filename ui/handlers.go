package ui

import (
	"html/template"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"facalloc/adapters/tabular"
	"facalloc/app"
	"facalloc/domain/core"
	"facalloc/domain/roster"
	apperrors "facalloc/internal/errors"
)

const previewRows = 10

// indexData feeds the landing/results template
type indexData struct {
	Help         template.HTML
	Error        string
	Uploaded     bool
	Filename     string
	RowCount     int
	Headers      []string
	Preview      []roster.Row
	HasRun       bool
	Run          *app.RunResult
	RankHeaders  []int
	PrefWarnings []roster.Diagnostic
}

func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	a.renderTemplate(w, "index.html", a.pageData(""))
}

// pageData builds the template payload from current state. Caller holds a.mu.
func (a *App) pageData(errMsg string) indexData {
	data := indexData{
		Help:  renderHelp(),
		Error: errMsg,
	}
	if a.currentTable != nil {
		data.Uploaded = true
		data.Filename = a.currentFile
		data.RowCount = a.currentTable.RowCount()
		data.Headers = a.currentTable.Headers
		n := previewRows
		if n > len(a.currentTable.Rows) {
			n = len(a.currentTable.Rows)
		}
		data.Preview = a.currentTable.Rows[:n]
	}
	if a.lastRun != nil {
		data.HasRun = true
		data.Run = a.lastRun
		for i := 1; i <= len(a.lastRun.Faculties); i++ {
			data.RankHeaders = append(data.RankHeaders, i)
		}
		for _, d := range a.lastRun.Diagnostics {
			if d.Severity == roster.SeverityWarning {
				data.PrefWarnings = append(data.PrefWarnings, d)
			}
		}
	}
	return data
}

func (a *App) handleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(a.config.Upload.MaxFileSize); err != nil {
		a.renderError(w, http.StatusBadRequest, "could not parse upload: "+err.Error())
		return
	}
	file, header, err := r.FormFile("roster")
	if err != nil {
		a.renderError(w, http.StatusBadRequest, "no roster file provided")
		return
	}
	defer file.Close()

	uploadCfg := &tabular.UploadConfig{
		MaxFileSize: a.config.Upload.MaxFileSize,
		TempDir:     a.config.Upload.TempDir,
	}
	mimeType := header.Header.Get("Content-Type")
	if err := tabular.ValidateUpload(header.Filename, mimeType, header.Size, uploadCfg); err != nil {
		a.renderError(w, http.StatusBadRequest, err.Error())
		return
	}

	var table *roster.Table
	if strings.EqualFold(filepath.Ext(header.Filename), ".csv") {
		table, err = tabular.ReadCSV(file)
	} else {
		// The Excel reader needs a file path.
		var tempPath string
		tempPath, err = tabular.SaveToTemp(file, header.Filename, a.config.Upload.TempDir)
		if err == nil {
			defer os.Remove(tempPath)
			table, err = tabular.NewDataReader(tempPath).ReadTable()
		}
	}
	if err != nil {
		a.renderError(w, http.StatusBadRequest, "error processing file: "+err.Error())
		return
	}

	a.mu.Lock()
	a.currentTable = table
	a.currentFile = header.Filename
	a.lastRun = nil
	a.mu.Unlock()

	uploadID := core.UploadID(core.NewID())
	a.logger.Info("upload %s: %q accepted (%d rows)", uploadID, header.Filename, table.RowCount())

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (a *App) handleAllocate(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.currentTable == nil {
		a.renderTemplate(w, "index.html", a.pageData("upload a roster before starting allocation"))
		return
	}

	result, err := a.service.Run(r.Context(), a.currentTable, a.currentFile)
	if err != nil {
		// Schema errors carry a display-ready message; nothing partial to show.
		a.renderTemplate(w, "index.html", a.pageData(displayMessage(err)))
		return
	}

	a.lastRun = result
	a.renderTemplate(w, "index.html", a.pageData(""))
}

func (a *App) handleResults(w http.ResponseWriter, r *http.Request) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.lastRun == nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	a.renderTemplate(w, "index.html", a.pageData(""))
}

func (a *App) handleDownloadAllocation(w http.ResponseWriter, r *http.Request) {
	a.mu.RLock()
	run := a.lastRun
	a.mu.RUnlock()

	if run == nil {
		http.Error(w, "no allocation run available", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="student_allocation.csv"`)
	if err := tabular.WriteAllocationCSV(w, run.Allocation); err != nil {
		a.logger.Error("allocation download: %v", err)
	}
}

func (a *App) handleDownloadSummary(w http.ResponseWriter, r *http.Request) {
	a.mu.RLock()
	run := a.lastRun
	a.mu.RUnlock()

	if run == nil {
		http.Error(w, "no allocation run available", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="faculty_preferences.csv"`)
	if err := tabular.WriteSummaryCSV(w, run.Summary); err != nil {
		a.logger.Error("summary download: %v", err)
	}
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func (a *App) renderError(w http.ResponseWriter, status int, msg string) {
	a.logger.Warn("request rejected: %s", msg)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	a.mu.RLock()
	defer a.mu.RUnlock()
	a.renderTemplate(w, "index.html", a.pageData(msg))
}

// displayMessage prefers the human-readable AppError message over the full
// wrapped chain.
func displayMessage(err error) string {
	if appErr, ok := err.(*apperrors.AppError); ok {
		return appErr.Message
	}
	return err.Error()
}
