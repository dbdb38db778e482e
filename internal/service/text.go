package service

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ChunkText splits text into chunks of at most maxChunkSize characters
// without breaking paragraphs. Paragraphs larger than the limit become a
// chunk of their own rather than being split mid-sentence. The limit counts
// runes, not bytes, so multi-byte scripts fill chunks the same as Latin text.
func ChunkText(text string, maxChunkSize int) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	paragraphs := strings.Split(normalizeLineBreaks(text), "\n\n")

	var chunks []string
	var current strings.Builder
	chunkLen := 0

	for _, paragraph := range paragraphs {
		size := utf8.RuneCountInString(paragraph)
		if chunkLen > 0 && chunkLen+size > maxChunkSize {
			chunks = append(chunks, strings.TrimSpace(current.String()))
			current.Reset()
			chunkLen = 0
		}
		current.WriteString(paragraph)
		current.WriteString("\n\n")
		chunkLen += size + 2
	}

	if strings.TrimSpace(current.String()) != "" {
		chunks = append(chunks, strings.TrimSpace(current.String()))
	}

	return chunks
}

func normalizeLineBreaks(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// arabicRanges covers the Arabic script blocks, including the presentation
// forms that extracted PDF text frequently contains.
var arabicRanges = []struct{ lo, hi rune }{
	{0x0600, 0x06FF}, // Arabic
	{0x0750, 0x077F}, // Arabic Supplement
	{0x0870, 0x089F}, // Arabic Extended-B
	{0x08A0, 0x08FF}, // Arabic Extended-A
	{0xFB50, 0xFDFF}, // Arabic Presentation Forms-A
	{0xFE70, 0xFEFF}, // Arabic Presentation Forms-B
}

// ContainsArabic reports whether the text contains any Arabic-script runes.
func ContainsArabic(text string) bool {
	for _, r := range text {
		for _, rng := range arabicRanges {
			if r >= rng.lo && r <= rng.hi {
				return true
			}
		}
	}
	return false
}

// Common presentation-form ligatures that extraction leaves behind.
var arabicLigatures = strings.NewReplacer(
	"ﻻ", "لا", // lam-alef -> لا
	"ﷲ", "الله", // Allah ligature -> الله
)

// arabicDigits maps Arabic-Indic digits to their Western equivalents.
var arabicDigits = strings.NewReplacer(
	"٠", "0", "١", "1", "٢", "2", "٣", "3", "٤", "4",
	"٥", "5", "٦", "6", "٧", "7", "٨", "8", "٩", "9",
)

// NormalizeArabicText cleans extracted Arabic text before translation:
// tatweel (kashida) stretching is removed, common ligatures are expanded
// and Arabic-Indic digits are westernized so page references survive
// translation intact.
func NormalizeArabicText(text string) string {
	// Strip tatweel; it carries no meaning and confuses the model.
	text = strings.Map(func(r rune) rune {
		if r == 0x0640 {
			return -1
		}
		return r
	}, text)

	text = arabicLigatures.Replace(text)
	return arabicDigits.Replace(text)
}

// sanitizeText drops NULLs, control characters and stray surrogates from
// extracted text so responses always JSON-encode cleanly.
func sanitizeText(text string) string {
	var result strings.Builder
	result.Grow(len(text))

	for _, r := range text {
		switch {
		case r == 0x00:
			continue
		case r == '\t' || r == '\n' || r == '\r':
			result.WriteRune(r)
		case unicode.IsControl(r):
			continue
		case r >= 0xD800 && r <= 0xDFFF:
			continue
		default:
			result.WriteRune(r)
		}
	}

	return result.String()
}
