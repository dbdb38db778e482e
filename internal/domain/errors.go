package domain

import "errors"

// Domain errors
var (
	ErrInvalidFile         = errors.New("invalid file")
	ErrNotAPDF             = errors.New("file is not a valid PDF")
	ErrNoExtractableText   = errors.New("no extractable text in the selected pages")
	ErrPageOutOfRange      = errors.New("page number out of range")
	ErrEmptyText           = errors.New("text is empty")
	ErrMissingCredential   = errors.New("translation API key is missing")
	ErrUnsupportedLanguage = errors.New("unsupported language")
	ErrSameLanguagePair    = errors.New("source and target languages must be different")
)
