package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"go.uber.org/zap"

	"github.com/aliskhannn/wordbook/internal/domain/entities"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page names.
const (
	pageIndex      = "index"
	pageAdd        = "add"
	pageDictionary = "dictionary"
	pageError      = "error"
)

type addPage struct {
	CSRFField template.HTML
	Languages []entities.Language
	Form      AddWordForm
	Errors    FieldErrors
}

type dictionaryPage struct {
	Table entities.Table
}

type errorPage struct {
	Status     int
	StatusText string
}

// parseTemplates builds one template set per page on top of the shared layout.
func parseTemplates() (map[string]*template.Template, error) {
	pages := []string{pageIndex, pageAdd, pageDictionary, pageError}

	set := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		tmpl, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+page+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", page, err)
		}
		set[page] = tmpl
	}

	return set, nil
}

// render executes page into a buffer first so a failing template never sends a partial body.
func (h *Handler) render(w http.ResponseWriter, status int, page string, data any) {
	tmpl, ok := h.templates[page]
	if !ok {
		h.logger.Error("unknown template", zap.String("page", page))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		h.logger.Error("failed to render template", zap.String("page", page), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (h *Handler) renderError(w http.ResponseWriter, status int) {
	h.render(w, status, pageError, errorPage{
		Status:     status,
		StatusText: http.StatusText(status),
	})
}
