package domain

import "context"

// TextExtractor defines the interface for reading uploaded PDFs.
type TextExtractor interface {
	// Info inspects the document without extracting text.
	Info(doc *UploadedDocument) (*PDFInfo, error)
	// Extract returns the text of the selected 1-based pages; an empty
	// selection means all pages.
	Extract(doc *UploadedDocument, pages []int) (*ExtractedText, error)
	// RenderPage renders one page to a PNG for image-based translation.
	RenderPage(doc *UploadedDocument, pageNumber int) ([]byte, error)
}

// Translator defines the interface for the external translation API.
type Translator interface {
	TranslateText(ctx context.Context, text, sourceLang, targetLang string) (string, error)
	TranslateImage(ctx context.Context, pngData []byte, sourceLang, targetLang string) (string, error)
}

// ProgressFunc reports per-unit progress while a multi-part translation runs.
type ProgressFunc func(current, total int)

// TranslationService defines the use-case operations exposed over HTTP.
type TranslationService interface {
	Inspect(doc *UploadedDocument) (*PDFInfo, error)
	ExtractDocument(doc *UploadedDocument, pages []int) (*ExtractedText, error)
	TranslateDocument(ctx context.Context, doc *UploadedDocument, opts TranslateOptions, progress ProgressFunc) (*TranslationResult, error)
	TranslateText(ctx context.Context, text, sourceLang, targetLang string) (*TextTranslation, error)
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetMaxFileSize() int64
	GetLogLevel() string
	GetAPIKey() string
	GetModel() string
	GetFallbackModel() string
	GetSourceLanguage() string
	GetTargetLanguage() string
	GetMaxChunkSize() int
	Validate() error
}
