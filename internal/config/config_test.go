package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ConfigFileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), ConfigFileName))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != DefaultPort {
		t.Errorf("Port = %d, want %d", cfg.Server.Port, DefaultPort)
	}
	if cfg.Paths.Content != DefaultContentDir {
		t.Errorf("Content = %q, want %q", cfg.Paths.Content, DefaultContentDir)
	}
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
[site]
title = "Treeline"
base_url = "https://treeline.example.com"

[server]
host = "0.0.0.0"
port = 9000

[paths]
content = "docs"

[publish]
bucket = "docs-bucket"
prefix = "site/"
region = "eu-west-1"

[[nav]]
label = "Home"
url = "/"
exact_match = true

[[nav]]
label = "Docs"
url = "/docs"

[[nav.children]]
label = "Install"
url = "/docs/install"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Site.Title != "Treeline" {
		t.Errorf("Title = %q", cfg.Site.Title)
	}
	if got := cfg.Server.Addr(); got != "0.0.0.0:9000" {
		t.Errorf("Addr() = %q", got)
	}
	if cfg.Paths.Content != "docs" {
		t.Errorf("Content = %q", cfg.Paths.Content)
	}
	// Unset paths keep their defaults.
	if cfg.Paths.Output != DefaultOutputDir {
		t.Errorf("Output = %q, want default", cfg.Paths.Output)
	}
	if cfg.Publish.Bucket != "docs-bucket" {
		t.Errorf("Bucket = %q", cfg.Publish.Bucket)
	}

	if len(cfg.Nav) != 2 {
		t.Fatalf("len(Nav) = %d, want 2", len(cfg.Nav))
	}
	if !cfg.Nav[0].ExactMatch {
		t.Error("Home should be exact match")
	}
	if len(cfg.Nav[1].Children) != 1 || cfg.Nav[1].Children[0].URL != "/docs/install" {
		t.Errorf("Docs children = %+v", cfg.Nav[1].Children)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "bad toml", content: "[site\ntitle="},
		{name: "bad port", content: "[server]\nport = 99999"},
		{name: "empty content dir", content: `[paths]` + "\n" + `content = ""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.content)); err == nil {
				t.Error("Load should fail")
			}
		})
	}
}
