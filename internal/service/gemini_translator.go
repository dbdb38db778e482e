package service

import (
	"context"
	"fmt"
	"strings"

	"pdf-translator/internal/domain"
	apperrors "pdf-translator/pkg/errors"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Prompt used when the source is Arabic. Religious and cultural terminology
// needs special handling that the generic prompt gets wrong.
const arabicTranslationPrompt = `You are an expert translator specializing in %s to %s translations, with extensive knowledge of Islamic texts and cultural context.

IMPORTANT CONTEXT HANDLING:
1. When encountering unclear or partially extracted words:
   - Analyze the surrounding context carefully
   - Use your knowledge of common %s phrases and expressions
   - Infer the most likely word based on context and religious terminology

2. For Religious Terminology:
   - Keep religious terms in Arabic with translations
   - Use traditional translations for Islamic concepts

3. OUTPUT FORMAT:
   - Maintain paragraph structure
   - Only provide the translation
   - Keep religious terms in Arabic with translations in parentheses`

const genericTranslationPrompt = `You are an expert translator specializing in %s to %s translations.

TRANSLATION GUIDELINES:
1. Maintain the original meaning and tone
2. Use natural %s expressions
3. Preserve technical terms with translations if needed
4. Keep formatting and structure
5. Handle cultural references appropriately

OUTPUT FORMAT:
- Provide only the translation
- Maintain paragraph structure
- Keep original formatting`

const imageTranslationPrompt = `You are an expert translator analyzing a PDF page from %s to %s.
Act as a professional translator.

TRANSLATION REQUIREMENTS:
1. Translate the text from %s to %s
2. Preserve formatting and structure
3. Keep religious/technical terms with translations in parentheses
4. Ensure natural flow in %s

OUTPUT FORMAT:
- Provide ONLY the %s translation
- Maintain paragraph structure
- Use proper %s punctuation
- Do not include the original text`

// refusalPhrases mark responses where the model declined instead of
// translating. Such responses must fail the request, not be returned as a
// "translation".
var refusalPhrases = []string{
	"i am unable to",
	"i cannot fulfill",
	"i cannot answer",
	"i cannot provide",
	"as a large language model",
}

// GeminiTranslator implements domain.Translator against Google's Gemini API.
type GeminiTranslator struct {
	client        *genai.Client
	model         string
	fallbackModel string
	logger        domain.Logger
}

// NewGeminiTranslator creates the translation client. A missing API key is
// an authentication error before any network call is made.
func NewGeminiTranslator(ctx context.Context, config domain.Config, logger domain.Logger) (*GeminiTranslator, error) {
	apiKey := strings.TrimSpace(config.GetAPIKey())
	if apiKey == "" {
		return nil, apperrors.NewAuthenticationError("translation API key is missing; set GOOGLE_API_KEY")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, apperrors.NewTranslationError("failed to create Gemini client", err)
	}

	return &GeminiTranslator{
		client:        client,
		model:         config.GetModel(),
		fallbackModel: config.GetFallbackModel(),
		logger:        logger,
	}, nil
}

// Close releases the underlying API client.
func (t *GeminiTranslator) Close() error {
	if t.client != nil {
		return t.client.Close()
	}
	return nil
}

// TranslateText translates a non-empty piece of text.
func (t *GeminiTranslator) TranslateText(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", apperrors.NewValidationError("text to translate is empty")
	}

	if ContainsArabic(text) {
		text = NormalizeArabicText(text)
	}

	prompt := translationPrompt(sourceLang, targetLang) + "\n\nText to translate:\n" + text
	return t.generate(ctx, sourceLang, genai.Text(prompt))
}

// TranslateImage translates the text visible in a rendered PDF page.
func (t *GeminiTranslator) TranslateImage(ctx context.Context, pngData []byte, sourceLang, targetLang string) (string, error) {
	if len(pngData) == 0 {
		return "", apperrors.NewValidationError("page image is empty")
	}

	prompt := fmt.Sprintf(imageTranslationPrompt,
		sourceLang, targetLang, sourceLang, targetLang, targetLang, targetLang, targetLang)

	return t.generate(ctx, sourceLang, genai.ImageData("png", pngData), genai.Text(prompt))
}

// generate runs one GenerateContent call, trying the fallback model once if
// the primary model fails. No further retries.
func (t *GeminiTranslator) generate(ctx context.Context, sourceLang string, parts ...genai.Part) (string, error) {
	result, err := t.generateWithModel(ctx, t.model, parts...)
	if err == nil {
		return result, nil
	}

	if t.fallbackModel == "" || t.fallbackModel == t.model {
		return "", err
	}

	t.logger.Warn("Primary model failed, trying fallback", "model", t.model, "fallback", t.fallbackModel, "error", err)
	result, fallbackErr := t.generateWithModel(ctx, t.fallbackModel, parts...)
	if fallbackErr != nil {
		return "", err // report the primary failure
	}
	return result, nil
}

func (t *GeminiTranslator) generateWithModel(ctx context.Context, modelName string, parts ...genai.Part) (string, error) {
	model := t.client.GenerativeModel(modelName)
	model.SetTemperature(0.3)

	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		return "", apperrors.NewTranslationError("translation API call failed", err)
	}

	text := responseText(resp)
	if text == "" {
		return "", apperrors.NewTranslationError("empty response from model", nil)
	}

	lower := strings.ToLower(text)
	for _, phrase := range refusalPhrases {
		if strings.Contains(lower, phrase) {
			return "", apperrors.NewTranslationError("model refused to translate", nil)
		}
	}

	return text, nil
}

// responseText concatenates the text parts of the first candidate and strips
// markdown fences the model sometimes wraps output in.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}

	text := strings.TrimSpace(sb.String())
	text = strings.TrimPrefix(text, "```markdown")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

func translationPrompt(sourceLang, targetLang string) string {
	if strings.EqualFold(sourceLang, "arabic") {
		return fmt.Sprintf(arabicTranslationPrompt, sourceLang, targetLang, sourceLang)
	}
	return fmt.Sprintf(genericTranslationPrompt, sourceLang, targetLang, targetLang)
}
