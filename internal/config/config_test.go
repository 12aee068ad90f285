package config

import "testing"

func TestLoadUsesDefaultsWhenEnvUnset(t *testing.T) {
	for _, key := range []string{"PORT", "DB_PATH", "SECRET_KEY", "GEMINI_API_KEY", "COOKIE_SECURE"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.SecretKey == "" {
		t.Fatal("expected a fallback secret key")
	}
	if cfg.CookieSecure {
		t.Fatal("expected insecure cookies by default")
	}
}

func TestLoadReadsEnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("DATASET_PATH", "/tmp/override.csv")

	cfg := Load()
	if cfg.Port != "9999" {
		t.Fatalf("expected overridden port, got %q", cfg.Port)
	}
	if cfg.GeminiAPIKey != "test-key" {
		t.Fatalf("expected overridden API key, got %q", cfg.GeminiAPIKey)
	}
	if !cfg.CookieSecure {
		t.Fatal("expected secure cookies when COOKIE_SECURE=true")
	}
	if cfg.DatasetPath != "/tmp/override.csv" {
		t.Fatalf("expected dataset override, got %q", cfg.DatasetPath)
	}
}
