// Package web serves the word entry form and the dictionary listing over HTTP.
package web

import (
	"html/template"
	"net/http"

	"github.com/gorilla/csrf"
	"go.uber.org/zap"

	"github.com/aliskhannn/wordbook/internal/domain/entities"
)

type Handler struct {
	words     WordService
	logger    *zap.Logger
	forms     *formBinder
	templates map[string]*template.Template
}

func NewHandler(words WordService, logger *zap.Logger) (*Handler, error) {
	templates, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	forms, err := newFormBinder()
	if err != nil {
		return nil, err
	}

	return &Handler{
		words:     words,
		logger:    logger,
		forms:     forms,
		templates: templates,
	}, nil
}

func (h *Handler) home(w http.ResponseWriter, _ *http.Request) {
	h.render(w, http.StatusOK, pageIndex, nil)
}

func (h *Handler) addWordForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, pageAdd, h.newAddPage(r, AddWordForm{}, nil))
}

func (h *Handler) addWord(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.logger.Debug("failed to parse form", zap.Error(err))
		h.renderError(w, http.StatusBadRequest)
		return
	}

	form, fieldErrs, err := h.forms.bindAddWord(r.PostForm)
	if err != nil {
		h.logger.Debug("failed to decode form", zap.Error(err))
		h.renderError(w, http.StatusBadRequest)
		return
	}
	if len(fieldErrs) > 0 {
		h.logger.Debug("invalid word form", zap.Any("errors", fieldErrs))
		h.render(w, http.StatusOK, pageAdd, h.newAddPage(r, form, fieldErrs))
		return
	}

	if _, err := h.words.AddWord(r.Context(), form.Entry()); err != nil {
		h.logger.Error("failed to add word", zap.Error(err))
		h.renderError(w, http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/dictionary", http.StatusSeeOther)
}

func (h *Handler) dictionary(w http.ResponseWriter, r *http.Request) {
	table, err := h.words.Dictionary(r.Context())
	if err != nil {
		h.logger.Error("failed to load dictionary", zap.Error(err))
		h.renderError(w, http.StatusInternalServerError)
		return
	}

	h.render(w, http.StatusOK, pageDictionary, dictionaryPage{Table: table})
}

func (h *Handler) healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (h *Handler) notFound(w http.ResponseWriter, _ *http.Request) {
	h.renderError(w, http.StatusNotFound)
}

func (h *Handler) newAddPage(r *http.Request, form AddWordForm, errs FieldErrors) addPage {
	return addPage{
		CSRFField: csrf.TemplateField(r),
		Languages: entities.Languages(),
		Form:      form,
		Errors:    errs,
	}
}
