package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"pdf-translator/internal/domain"
)

// TranslationHandler handles raw text translation and the language catalog
type TranslationHandler struct {
	translationService domain.TranslationService
	config             domain.Config
	logger             domain.Logger
}

// NewTranslationHandler creates a new translation handler
func NewTranslationHandler(translationService domain.TranslationService, config domain.Config, logger domain.Logger) *TranslationHandler {
	return &TranslationHandler{
		translationService: translationService,
		config:             config,
		logger:             logger,
	}
}

type translateTextRequest struct {
	Text           string `json:"text"`
	SourceLanguage string `json:"source_lang"`
	TargetLanguage string `json:"target_lang"`
}

// TranslateText translates a raw piece of text. The response reports the
// resolved language pair, which may differ from the request when defaults
// were applied.
func (h *TranslationHandler) TranslateText(w http.ResponseWriter, r *http.Request) {
	var req translateTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, "Text is required")
		return
	}

	result, err := h.translationService.TranslateText(r.Context(), req.Text, req.SourceLanguage, req.TargetLanguage)
	if err != nil {
		h.logger.Error("Failed to translate text", err)
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// GetLanguages returns the supported language catalog
func (h *TranslationHandler) GetLanguages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"languages":      domain.SupportedLanguages,
		"default_source": h.config.GetSourceLanguage(),
		"default_target": h.config.GetTargetLanguage(),
	})
}
