package branding

import "testing"

func TestEmbeddedValues(t *testing.T) {
	if got := CLIName(); got != "packsmith" {
		t.Errorf("CLIName() = %q, want %q", got, "packsmith")
	}
	if got := HomeDir(); got != ".packsmith" {
		t.Errorf("HomeDir() = %q, want %q", got, ".packsmith")
	}
	if DisplayName() == "" || Description() == "" {
		t.Error("DisplayName and Description should not be empty")
	}
}

func TestEnvVar(t *testing.T) {
	tests := []struct {
		suffix string
		want   string
	}{
		{"verbose", "PACKSMITH_VERBOSE"},
		{"AUTHOR", "PACKSMITH_AUTHOR"},
		{"min_engine_version", "PACKSMITH_MIN_ENGINE_VERSION"},
	}

	for _, tt := range tests {
		if got := EnvVar(tt.suffix); got != tt.want {
			t.Errorf("EnvVar(%q) = %q, want %q", tt.suffix, got, tt.want)
		}
	}
}
