package domain

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// TranslationMethod selects how a document is turned into translated text.
type TranslationMethod string

const (
	// MethodText extracts the embedded text and translates it.
	MethodText TranslationMethod = "text"
	// MethodImage renders each page to an image and lets the model
	// translate it directly. Recommended for Arabic sources, where
	// embedded text extraction often loses diacritics and ligatures.
	MethodImage TranslationMethod = "image"
)

// TranslationScope selects whether pages are translated together or one by one.
type TranslationScope string

const (
	// ScopeCombined translates the concatenated text in paragraph-aligned chunks.
	ScopeCombined TranslationScope = "combined"
	// ScopePages translates each page separately.
	ScopePages TranslationScope = "pages"
)

// UploadedDocument is the raw uploaded file. It only lives for the duration
// of one request.
type UploadedDocument struct {
	Filename string
	Data     []byte
}

// PDFInfo describes an uploaded PDF without extracting its text.
type PDFInfo struct {
	Filename   string  `json:"filename"`
	PageCount  int     `json:"page_count"`
	Title      string  `json:"title,omitempty"`
	Author     string  `json:"author,omitempty"`
	FileSizeKB float64 `json:"file_size_kb"`
}

// PageText is the extracted text of a single page (1-indexed).
type PageText struct {
	PageNumber int    `json:"page_number"`
	Text       string `json:"text"`
}

// ExtractedText is the ordered per-page text of a document plus the
// combined form shown to users.
type ExtractedText struct {
	Pages     []PageText `json:"pages"`
	Combined  string     `json:"combined"`
	PageCount int        `json:"page_count"`
}

// IsEmpty reports whether no page produced any text.
func (e *ExtractedText) IsEmpty() bool {
	for _, p := range e.Pages {
		if strings.TrimSpace(p.Text) != "" {
			return false
		}
	}
	return true
}

// TranslateOptions control a document translation request.
type TranslateOptions struct {
	SourceLanguage string
	TargetLanguage string
	Method         TranslationMethod
	Scope          TranslationScope
	// Pages is the 1-based selection; empty means all pages.
	Pages []int
}

// TextTranslation is the outcome of a raw text translation. The languages
// are the resolved pair, with configured defaults applied when the caller
// left them blank.
type TextTranslation struct {
	SourceLanguage string `json:"source_language"`
	TargetLanguage string `json:"target_language"`
	Translated     string `json:"translated"`
}

// TranslationResult is the outcome of one translation request. It is
// returned to the client and then discarded; nothing is persisted.
type TranslationResult struct {
	ID               string            `json:"id"`
	SourceLanguage   string            `json:"source_language"`
	TargetLanguage   string            `json:"target_language"`
	Method           TranslationMethod `json:"method"`
	Pages            []PageText        `json:"pages,omitempty"`
	Combined         string            `json:"combined"`
	DownloadFilename string            `json:"download_filename"`
	CreatedAt        time.Time         `json:"created_at"`
}

// CombinePages renders per-page texts in the "--- Page N ---" form used for
// display and download.
func CombinePages(pages []PageText) string {
	parts := make([]string, 0, len(pages))
	for _, p := range pages {
		parts = append(parts, fmt.Sprintf("--- Page %d ---\n%s", p.PageNumber, p.Text))
	}
	return strings.Join(parts, "\n\n")
}

// DownloadFilename builds the attachment name for a translated document,
// e.g. "report_translated_20250102_150405.txt".
func DownloadFilename(originalName string, at time.Time) string {
	stem := strings.TrimSuffix(filepath.Base(originalName), filepath.Ext(originalName))
	if stem == "" || stem == "." {
		stem = "translated_document"
		return fmt.Sprintf("%s_%s.txt", stem, at.Format("20060102_150405"))
	}
	return fmt.Sprintf("%s_translated_%s.txt", stem, at.Format("20060102_150405"))
}
