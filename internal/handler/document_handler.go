// Package handler provides HTTP handlers for the API.
package handler

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"pdf-translator/internal/domain"
)

// DocumentHandler handles document upload, extraction and translation requests
type DocumentHandler struct {
	translationService domain.TranslationService
	logger             domain.Logger
	maxFileSize        int64
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(translationService domain.TranslationService, logger domain.Logger, maxFileSize int64) *DocumentHandler {
	return &DocumentHandler{
		translationService: translationService,
		logger:             logger,
		maxFileSize:        maxFileSize,
	}
}

// GetInfo returns page count, metadata and size for an uploaded PDF
func (h *DocumentHandler) GetInfo(w http.ResponseWriter, r *http.Request) {
	doc, ok := h.readUpload(w, r)
	if !ok {
		return
	}

	info, err := h.translationService.Inspect(doc)
	if err != nil {
		h.logger.Error("Failed to inspect document", err, "filename", doc.Filename)
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, info)
}

// ExtractText returns the extracted text of the selected pages
func (h *DocumentHandler) ExtractText(w http.ResponseWriter, r *http.Request) {
	doc, ok := h.readUpload(w, r)
	if !ok {
		return
	}

	pages, err := parsePages(r.FormValue("pages"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	extracted, err := h.translationService.ExtractDocument(doc, pages)
	if err != nil {
		h.logger.Error("Failed to extract document", err, "filename", doc.Filename)
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, extracted)
}

// TranslateDocument runs extraction and translation for an uploaded PDF.
// With ?download=1 the translated text is returned as a text/plain
// attachment instead of JSON.
func (h *DocumentHandler) TranslateDocument(w http.ResponseWriter, r *http.Request) {
	doc, ok := h.readUpload(w, r)
	if !ok {
		return
	}

	pages, err := parsePages(r.FormValue("pages"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	opts := domain.TranslateOptions{
		SourceLanguage: r.FormValue("source_lang"),
		TargetLanguage: r.FormValue("target_lang"),
		Method:         domain.TranslationMethod(strings.ToLower(strings.TrimSpace(r.FormValue("method")))),
		Scope:          domain.TranslationScope(strings.ToLower(strings.TrimSpace(r.FormValue("scope")))),
		Pages:          pages,
	}

	result, err := h.translationService.TranslateDocument(r.Context(), doc, opts, nil)
	if err != nil {
		h.logger.Error("Failed to translate document", err, "filename", doc.Filename)
		writeAppError(w, err)
		return
	}

	if isDownloadRequest(r) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.DownloadFilename))
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, result.Combined)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// readUpload validates and reads the multipart "file" field. On failure the
// response has already been written and ok is false.
func (h *DocumentHandler) readUpload(w http.ResponseWriter, r *http.Request) (*domain.UploadedDocument, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize)

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "File is required")
		return nil, false
	}
	defer file.Close()

	// Sanitize filename (strip any path components)
	originalName := strings.TrimSpace(filepath.Base(header.Filename))
	if originalName == "" || originalName == "." || originalName == string(filepath.Separator) {
		originalName = "document.pdf"
	}

	if ext := strings.ToLower(filepath.Ext(originalName)); ext != ".pdf" {
		writeError(w, http.StatusBadRequest, "Unsupported file type. Only PDF (.pdf) files are accepted.")
		return nil, false
	}

	if header.Size > h.maxFileSize {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("File too large. Maximum upload size is %dMB.", h.maxFileSize>>20))
		return nil, false
	}

	data, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error("Failed to read uploaded file", err, "filename", originalName)
		writeError(w, http.StatusBadRequest, "Failed to read uploaded file")
		return nil, false
	}

	return &domain.UploadedDocument{
		Filename: originalName,
		Data:     data,
	}, true
}

// parsePages parses a comma-separated list of 1-based page numbers, e.g.
// "1,3,5". Empty input selects all pages.
func parsePages(raw string) ([]int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	pages := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid page number: %q", part)
		}
		pages = append(pages, n)
	}

	return pages, nil
}

func isDownloadRequest(r *http.Request) bool {
	v := strings.TrimSpace(r.URL.Query().Get("download"))
	return v == "1" || strings.EqualFold(v, "true")
}
