package cmd

import (
	"strings"
	"testing"
)

func TestVersionCommand(t *testing.T) {
	oldVersion := version
	defer func() { version = oldVersion }()

	tests := []struct {
		name string
		ver  string
		want string
	}{
		{"dev default", "dev", "openclaw-search dev"},
		{"semver", "1.2.3", "openclaw-search 1.2.3"},
		{"commit sha", "abc123", "openclaw-search abc123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			version = tt.ver

			stdout, _, err := executeRoot(t, "version")
			if err != nil {
				t.Fatalf("version command failed: %v", err)
			}
			if got := strings.TrimSpace(stdout); got != tt.want {
				t.Errorf("version output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestVersionRejectsArgs(t *testing.T) {
	if _, _, err := executeRoot(t, "version", "extra"); err == nil {
		t.Error("expected error for extra arguments")
	}
}

func TestVersionCommandRegistered(t *testing.T) {
	for _, c := range rootCmd.Commands() {
		if c.Use == "version" {
			return
		}
	}
	t.Error("version command not registered on rootCmd")
}
