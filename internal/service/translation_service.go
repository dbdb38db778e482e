package service

import (
	"context"
	"strings"
	"time"

	"pdf-translator/internal/domain"
	apperrors "pdf-translator/pkg/errors"

	"github.com/google/uuid"
)

// TranslationService orchestrates extraction and translation for one
// uploaded document. It holds no per-request state; every call is an
// independent extract-then-translate sequence.
type TranslationService struct {
	extractor  domain.TextExtractor
	translator domain.Translator
	config     domain.Config
	logger     domain.Logger
}

// NewTranslationService creates a new translation service
func NewTranslationService(
	extractor domain.TextExtractor,
	translator domain.Translator,
	config domain.Config,
	logger domain.Logger,
) *TranslationService {
	return &TranslationService{
		extractor:  extractor,
		translator: translator,
		config:     config,
		logger:     logger,
	}
}

// Inspect returns page count, metadata and size for an uploaded PDF.
func (s *TranslationService) Inspect(doc *domain.UploadedDocument) (*domain.PDFInfo, error) {
	return s.extractor.Info(doc)
}

// ExtractDocument returns the text of the selected pages.
func (s *TranslationService) ExtractDocument(doc *domain.UploadedDocument, pages []int) (*domain.ExtractedText, error) {
	return s.extractor.Extract(doc, pages)
}

// TranslateText translates raw text with the configured language pair
// defaults applied when the caller leaves languages blank. The result
// carries the resolved pair so clients see what was actually used.
func (s *TranslationService) TranslateText(ctx context.Context, text, sourceLang, targetLang string) (*domain.TextTranslation, error) {
	sourceLang, targetLang, err := s.resolveLanguages(sourceLang, targetLang)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, apperrors.NewValidationError("text to translate is empty")
	}

	translated, err := s.translator.TranslateText(ctx, text, sourceLang, targetLang)
	if err != nil {
		return nil, err
	}

	return &domain.TextTranslation{
		SourceLanguage: sourceLang,
		TargetLanguage: targetLang,
		Translated:     translated,
	}, nil
}

// TranslateDocument runs the full pipeline for one upload. Depending on the
// options the document is translated from extracted text (combined chunks or
// page by page) or directly from rendered page images.
func (s *TranslationService) TranslateDocument(
	ctx context.Context,
	doc *domain.UploadedDocument,
	opts domain.TranslateOptions,
	progress domain.ProgressFunc,
) (*domain.TranslationResult, error) {
	sourceLang, targetLang, err := s.resolveLanguages(opts.SourceLanguage, opts.TargetLanguage)
	if err != nil {
		return nil, err
	}

	method := opts.Method
	if method == "" {
		method = domain.MethodText
	}
	scope := opts.Scope
	if scope == "" {
		scope = domain.ScopeCombined
	}

	started := time.Now()
	result := &domain.TranslationResult{
		ID:             uuid.NewString(),
		SourceLanguage: sourceLang,
		TargetLanguage: targetLang,
		Method:         method,
		CreatedAt:      started.UTC(),
	}

	switch method {
	case domain.MethodImage:
		pages, err := s.translatePageImages(ctx, doc, opts.Pages, sourceLang, targetLang, progress)
		if err != nil {
			return nil, err
		}
		result.Pages = pages
		result.Combined = domain.CombinePages(pages)

	case domain.MethodText:
		extracted, err := s.extractor.Extract(doc, opts.Pages)
		if err != nil {
			return nil, err
		}

		if scope == domain.ScopePages {
			pages, err := s.translatePages(ctx, extracted.Pages, sourceLang, targetLang, progress)
			if err != nil {
				return nil, err
			}
			result.Pages = pages
			result.Combined = domain.CombinePages(pages)
		} else {
			combined, err := s.translateCombined(ctx, extracted.Combined, sourceLang, targetLang, progress)
			if err != nil {
				return nil, err
			}
			result.Combined = combined
		}

	default:
		return nil, apperrors.NewValidationError("unknown translation method", string(method))
	}

	result.DownloadFilename = domain.DownloadFilename(doc.Filename, started)

	s.logger.Info("Document translated",
		"id", result.ID,
		"filename", doc.Filename,
		"method", string(method),
		"scope", string(scope),
		"source", sourceLang,
		"target", targetLang,
		"duration_ms", time.Since(started).Milliseconds(),
	)

	return result, nil
}

// translateCombined chunks the concatenated text at paragraph boundaries and
// translates the chunks one after another.
func (s *TranslationService) translateCombined(
	ctx context.Context,
	combined, sourceLang, targetLang string,
	progress domain.ProgressFunc,
) (string, error) {
	chunks := ChunkText(combined, s.config.GetMaxChunkSize())
	if len(chunks) == 0 {
		return "", apperrors.NewExtractionError("no extractable text in the selected pages", domain.ErrNoExtractableText)
	}

	translated := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		s.logger.Debug("Translating chunk", "chunk", i+1, "total", len(chunks))

		out, err := s.translator.TranslateText(ctx, chunk, sourceLang, targetLang)
		if err != nil {
			return "", err
		}
		if out != "" {
			translated = append(translated, out)
		}

		if progress != nil {
			progress(i+1, len(chunks))
		}
	}

	return strings.Join(translated, "\n\n"), nil
}

// translatePages translates each page's text separately. Empty pages stay
// empty so page numbering is preserved.
func (s *TranslationService) translatePages(
	ctx context.Context,
	pages []domain.PageText,
	sourceLang, targetLang string,
	progress domain.ProgressFunc,
) ([]domain.PageText, error) {
	translated := make([]domain.PageText, 0, len(pages))
	for i, page := range pages {
		out := ""
		if strings.TrimSpace(page.Text) != "" {
			var err error
			out, err = s.translator.TranslateText(ctx, page.Text, sourceLang, targetLang)
			if err != nil {
				return nil, err
			}
		}
		translated = append(translated, domain.PageText{
			PageNumber: page.PageNumber,
			Text:       out,
		})

		if progress != nil {
			progress(i+1, len(pages))
		}
	}

	return translated, nil
}

// translatePageImages renders the selected pages and sends each image to the
// vision model.
func (s *TranslationService) translatePageImages(
	ctx context.Context,
	doc *domain.UploadedDocument,
	pageSelection []int,
	sourceLang, targetLang string,
	progress domain.ProgressFunc,
) ([]domain.PageText, error) {
	info, err := s.extractor.Info(doc)
	if err != nil {
		return nil, err
	}

	pages := pageSelection
	if len(pages) == 0 {
		pages = make([]int, info.PageCount)
		for i := range pages {
			pages[i] = i + 1
		}
	}

	translated := make([]domain.PageText, 0, len(pages))
	for i, pageNum := range pages {
		png, err := s.extractor.RenderPage(doc, pageNum)
		if err != nil {
			return nil, err
		}

		out, err := s.translator.TranslateImage(ctx, png, sourceLang, targetLang)
		if err != nil {
			return nil, err
		}

		translated = append(translated, domain.PageText{
			PageNumber: pageNum,
			Text:       out,
		})

		if progress != nil {
			progress(i+1, len(pages))
		}
	}

	return translated, nil
}

// resolveLanguages applies configured defaults and validates the pair.
func (s *TranslationService) resolveLanguages(sourceLang, targetLang string) (string, string, error) {
	if strings.TrimSpace(sourceLang) == "" {
		sourceLang = s.config.GetSourceLanguage()
	}
	if strings.TrimSpace(targetLang) == "" {
		targetLang = s.config.GetTargetLanguage()
	}

	source := domain.NormalizeLanguage(sourceLang)
	target := domain.NormalizeLanguage(targetLang)

	if err := domain.ValidateLanguagePair(sourceLang, targetLang); err != nil {
		return "", "", apperrors.NewValidationError(err.Error())
	}

	return source, target, nil
}
