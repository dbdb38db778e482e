package config

import "testing"

const defaultMaxFileSize int64 = 50 * 1024 * 1024

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "SERVER_PORT", "MAX_FILE_SIZE", "LOG_LEVEL",
		"GOOGLE_API_KEY", "GEMINI_MODEL", "GEMINI_FALLBACK_MODEL",
		"SOURCE_LANG", "TARGET_LANG", "MAX_CHUNK_SIZE",
	} {
		t.Setenv(key, "")
	}
}

func TestNewConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := NewConfig()

	if cfg.GetServerPort() != "8080" {
		t.Fatalf("expected default server port 8080, got %s", cfg.GetServerPort())
	}
	if cfg.GetMaxFileSize() != defaultMaxFileSize {
		t.Fatalf("expected default max file size %d, got %d", defaultMaxFileSize, cfg.GetMaxFileSize())
	}
	if cfg.GetLogLevel() != "info" {
		t.Fatalf("expected default log level info, got %s", cfg.GetLogLevel())
	}
	if cfg.GetAPIKey() != "" {
		t.Fatalf("expected default api key empty, got %s", cfg.GetAPIKey())
	}
	if cfg.GetModel() != "gemini-2.0-flash" {
		t.Fatalf("expected default model gemini-2.0-flash, got %s", cfg.GetModel())
	}
	if cfg.GetSourceLanguage() != "Arabic" || cfg.GetTargetLanguage() != "Italian" {
		t.Fatalf("expected default pair Arabic->Italian, got %s->%s", cfg.GetSourceLanguage(), cfg.GetTargetLanguage())
	}
	if cfg.GetMaxChunkSize() != 4000 {
		t.Fatalf("expected default chunk size 4000, got %d", cfg.GetMaxChunkSize())
	}
}

func TestNewConfig_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("MAX_FILE_SIZE", "12345")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("GOOGLE_API_KEY", "test-key")
	t.Setenv("GEMINI_MODEL", "gemini-1.5-pro")
	t.Setenv("SOURCE_LANG", "English")
	t.Setenv("TARGET_LANG", "French")
	t.Setenv("MAX_CHUNK_SIZE", "2000")

	cfg := NewConfig()

	if cfg.GetServerPort() != "9090" {
		t.Fatalf("expected server port 9090, got %s", cfg.GetServerPort())
	}
	if cfg.GetMaxFileSize() != 12345 {
		t.Fatalf("expected max file size 12345, got %d", cfg.GetMaxFileSize())
	}
	if cfg.GetAPIKey() != "test-key" {
		t.Fatalf("expected api key test-key, got %s", cfg.GetAPIKey())
	}
	if cfg.GetModel() != "gemini-1.5-pro" {
		t.Fatalf("expected model gemini-1.5-pro, got %s", cfg.GetModel())
	}
	if cfg.GetSourceLanguage() != "English" || cfg.GetTargetLanguage() != "French" {
		t.Fatalf("expected pair English->French, got %s->%s", cfg.GetSourceLanguage(), cfg.GetTargetLanguage())
	}
	if cfg.GetMaxChunkSize() != 2000 {
		t.Fatalf("expected chunk size 2000, got %d", cfg.GetMaxChunkSize())
	}
}

func TestNewConfig_Fallbacks(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_PORT", "9091")
	t.Setenv("MAX_FILE_SIZE", "not-a-number")

	cfg := NewConfig()

	if cfg.GetServerPort() != "9091" {
		t.Fatalf("expected server port 9091, got %s", cfg.GetServerPort())
	}
	if cfg.GetMaxFileSize() != defaultMaxFileSize {
		t.Fatalf("expected default max file size %d, got %d", defaultMaxFileSize, cfg.GetMaxFileSize())
	}
}

func TestValidate_MissingAPIKey(t *testing.T) {
	clearEnv(t)

	cfg := NewConfig()
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error when GOOGLE_API_KEY is missing")
	}
}

func TestValidate_BadLanguagePair(t *testing.T) {
	clearEnv(t)
	t.Setenv("GOOGLE_API_KEY", "test-key")
	t.Setenv("SOURCE_LANG", "Italian")
	t.Setenv("TARGET_LANG", "Italian")

	cfg := NewConfig()
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for identical language pair")
	}
}

func TestValidate_OK(t *testing.T) {
	clearEnv(t)
	t.Setenv("GOOGLE_API_KEY", "test-key")

	cfg := NewConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}
