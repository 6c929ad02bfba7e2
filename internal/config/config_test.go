package config

import "testing"

func TestParseEmptyConfigUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Failed to parse empty config: %v", err)
	}

	if cfg.KeyMappings.CreateProject != "n" {
		t.Errorf("CreateProject = %q, want \"n\"", cfg.KeyMappings.CreateProject)
	}
	if cfg.KeyMappings.Quit != "q" {
		t.Errorf("Quit = %q, want \"q\"", cfg.KeyMappings.Quit)
	}
	if cfg.ColorScheme.Accent == "" {
		t.Error("Expected default accent color")
	}
}

// TestParsePartialConfig ensures user overrides apply while everything not
// mentioned in the file keeps its default.
func TestParsePartialConfig(t *testing.T) {
	t.Parallel()

	data := []byte(`
key_mappings:
  create_project: "c"
theme:
  accent: "#ff0000"
`)

	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Failed to parse config: %v", err)
	}

	if cfg.KeyMappings.CreateProject != "c" {
		t.Errorf("CreateProject = %q, want override \"c\"", cfg.KeyMappings.CreateProject)
	}
	if cfg.KeyMappings.NextProject != "tab" {
		t.Errorf("NextProject = %q, want default \"tab\"", cfg.KeyMappings.NextProject)
	}
	if cfg.ColorScheme.Accent != "#ff0000" {
		t.Errorf("Accent = %q, want override", cfg.ColorScheme.Accent)
	}
	if cfg.ColorScheme.Subtle == "" {
		t.Error("Expected default subtle color to survive override")
	}
}

func TestParseInvalidYaml(t *testing.T) {
	t.Parallel()

	if _, err := Parse([]byte("key_mappings: [not a map")); err == nil {
		t.Error("Expected parse error for malformed yaml")
	}
}
