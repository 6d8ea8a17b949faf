package llm

import "testing"

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "openai"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error with no API key")
	}

	cfg.OpenAI.APIKey = "sk-test"
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	cfg.Provider = "mock"
	if err := cfg.Validate(); err != nil {
		t.Errorf("mock needs no key, got: %v", err)
	}

	cfg.Provider = "carrier-pigeon"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("TRIAGETREE_LLM_PROVIDER", "anthropic")
	t.Setenv("ANTHROPIC_API_KEY", "key-123")
	t.Setenv("TRIAGETREE_ANTHROPIC_MODEL", "claude-sonnet")

	cfg := ConfigFromEnv()
	if cfg.Provider != "anthropic" {
		t.Errorf("got provider %q", cfg.Provider)
	}
	if cfg.Anthropic.APIKey != "key-123" {
		t.Errorf("got key %q", cfg.Anthropic.APIKey)
	}
	if cfg.Anthropic.Model != "claude-sonnet" {
		t.Errorf("got model %q", cfg.Anthropic.Model)
	}
	// Unset values keep defaults.
	if cfg.Retry.MaxAttempts != 3 {
		t.Errorf("got max attempts %d", cfg.Retry.MaxAttempts)
	}
}

func TestResolveModel(t *testing.T) {
	models := map[string]string{"friendly": "provider-model-v2"}
	if got := resolveModel("friendly", models); got != "provider-model-v2" {
		t.Errorf("got %q", got)
	}
	if got := resolveModel("custom-model-id", models); got != "custom-model-id" {
		t.Errorf("unknown names pass through, got %q", got)
	}
}
