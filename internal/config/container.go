package config

import (
	"context"

	"pdf-translator/internal/domain"
	"pdf-translator/internal/service"
	"pdf-translator/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config             domain.Config
	Logger             domain.Logger
	Extractor          domain.TextExtractor
	Translator         domain.Translator
	TranslationService domain.TranslationService
}

// NewContainer creates a new dependency injection container
func NewContainer(ctx context.Context) (*Container, error) {
	config := NewConfig()
	appLogger := logger.NewLogger(config.GetLogLevel())

	if err := config.Validate(); err != nil {
		return nil, err
	}

	extractor := service.NewPDFExtractor(appLogger)

	translator, err := service.NewGeminiTranslator(ctx, config, appLogger)
	if err != nil {
		return nil, err
	}

	translationService := service.NewTranslationService(extractor, translator, config, appLogger)

	return &Container{
		Config:             config,
		Logger:             appLogger,
		Extractor:          extractor,
		Translator:         translator,
		TranslationService: translationService,
	}, nil
}

// GetConfig returns the configuration instance
func (c *Container) GetConfig() domain.Config {
	return c.Config
}

// GetLogger returns the logger instance
func (c *Container) GetLogger() domain.Logger {
	return c.Logger
}

// GetTranslationService returns the translation service instance
func (c *Container) GetTranslationService() domain.TranslationService {
	return c.TranslationService
}
