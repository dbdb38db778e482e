package service

import (
	"bytes"
	"sort"
	"strings"

	"pdf-translator/internal/domain"
	apperrors "pdf-translator/pkg/errors"

	"github.com/gen2brain/go-fitz"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// renderDPI is the resolution used when rasterizing pages for image-based
// translation. 300 DPI keeps diacritics legible for the vision model.
const renderDPI = 300

// PDFExtractor reads uploaded PDFs with go-fitz, after a pdfcpu validation
// pass that rejects corrupt or non-PDF payloads up front.
type PDFExtractor struct {
	logger  domain.Logger
	pdfConf *model.Configuration
}

// NewPDFExtractor creates a new PDF extractor
func NewPDFExtractor(logger domain.Logger) *PDFExtractor {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	return &PDFExtractor{
		logger:  logger,
		pdfConf: conf,
	}
}

// Info inspects the document without extracting text.
func (e *PDFExtractor) Info(doc *domain.UploadedDocument) (*domain.PDFInfo, error) {
	if err := e.validate(doc); err != nil {
		return nil, err
	}

	fdoc, err := fitz.NewFromMemory(doc.Data)
	if err != nil {
		return nil, apperrors.NewExtractionError("failed to open PDF", err)
	}
	defer fdoc.Close()

	meta := fdoc.Metadata()
	info := &domain.PDFInfo{
		Filename:   doc.Filename,
		PageCount:  fdoc.NumPage(),
		FileSizeKB: float64(len(doc.Data)) / 1024,
	}
	if title, ok := meta["title"]; ok {
		info.Title = strings.TrimSpace(title)
	}
	if author, ok := meta["author"]; ok {
		info.Author = strings.TrimSpace(author)
	}

	return info, nil
}

// Extract returns the text of the selected 1-based pages. An empty selection
// means all pages. Pages without text stay as empty strings so page
// numbering is preserved for the client.
func (e *PDFExtractor) Extract(doc *domain.UploadedDocument, pages []int) (*domain.ExtractedText, error) {
	if err := e.validate(doc); err != nil {
		return nil, err
	}

	fdoc, err := fitz.NewFromMemory(doc.Data)
	if err != nil {
		return nil, apperrors.NewExtractionError("failed to open PDF", err)
	}
	defer fdoc.Close()

	numPages := fdoc.NumPage()
	selection, err := resolvePageSelection(pages, numPages)
	if err != nil {
		return nil, err
	}

	extracted := &domain.ExtractedText{
		Pages:     make([]domain.PageText, 0, len(selection)),
		PageCount: numPages,
	}

	for _, pageNum := range selection {
		e.logger.Debug("Extracting page", "page", pageNum, "total", numPages)

		text, err := fdoc.Text(pageNum - 1)
		if err != nil {
			e.logger.Warn("Failed to extract text from page", "page", pageNum, "error", err)
			text = ""
		}

		text = strings.TrimSpace(sanitizeText(text))
		text = joinParagraphs(text)

		extracted.Pages = append(extracted.Pages, domain.PageText{
			PageNumber: pageNum,
			Text:       text,
		})
	}

	if extracted.IsEmpty() {
		return nil, apperrors.NewExtractionError(
			"no extractable text in the selected pages",
			domain.ErrNoExtractableText,
		)
	}

	extracted.Combined = domain.CombinePages(extracted.Pages)
	return extracted, nil
}

// RenderPage renders one 1-based page to a PNG for image-based translation.
func (e *PDFExtractor) RenderPage(doc *domain.UploadedDocument, pageNumber int) ([]byte, error) {
	if err := e.validate(doc); err != nil {
		return nil, err
	}

	fdoc, err := fitz.NewFromMemory(doc.Data)
	if err != nil {
		return nil, apperrors.NewExtractionError("failed to open PDF", err)
	}
	defer fdoc.Close()

	if pageNumber < 1 || pageNumber > fdoc.NumPage() {
		return nil, apperrors.NewExtractionError("page number out of range", domain.ErrPageOutOfRange)
	}

	png, err := fdoc.ImagePNG(pageNumber-1, renderDPI)
	if err != nil {
		return nil, apperrors.NewExtractionError("failed to render page", err)
	}

	return png, nil
}

// validate rejects empty, truncated or non-PDF payloads before any
// extraction work happens.
func (e *PDFExtractor) validate(doc *domain.UploadedDocument) error {
	if doc == nil || len(doc.Data) == 0 {
		return apperrors.NewExtractionError("uploaded file is empty", domain.ErrInvalidFile)
	}

	if err := api.Validate(bytes.NewReader(doc.Data), e.pdfConf); err != nil {
		e.logger.Warn("PDF validation failed", "filename", doc.Filename, "error", err)
		return apperrors.NewExtractionError("file is not a valid PDF", domain.ErrNotAPDF)
	}

	return nil
}

// resolvePageSelection expands an empty selection to all pages and checks
// bounds. The result is sorted and de-duplicated.
func resolvePageSelection(pages []int, numPages int) ([]int, error) {
	if numPages == 0 {
		return nil, apperrors.NewExtractionError("document has no pages", domain.ErrNoExtractableText)
	}

	if len(pages) == 0 {
		all := make([]int, numPages)
		for i := range all {
			all[i] = i + 1
		}
		return all, nil
	}

	seen := make(map[int]bool, len(pages))
	selection := make([]int, 0, len(pages))
	for _, p := range pages {
		if p < 1 || p > numPages {
			return nil, apperrors.NewExtractionError("page number out of range", domain.ErrPageOutOfRange)
		}
		if seen[p] {
			continue
		}
		seen[p] = true
		selection = append(selection, p)
	}
	sort.Ints(selection)

	return selection, nil
}

// joinParagraphs collapses single line breaks inside paragraphs while
// keeping paragraph breaks, which reads better in the dashboard and gives
// the model cleaner input.
func joinParagraphs(text string) string {
	paragraphs := strings.Split(normalizeLineBreaks(text), "\n\n")

	var result []string
	for _, para := range paragraphs {
		para = strings.TrimSpace(strings.ReplaceAll(para, "\n", " "))
		if para != "" {
			result = append(result, para)
		}
	}

	return strings.Join(result, "\n\n")
}
