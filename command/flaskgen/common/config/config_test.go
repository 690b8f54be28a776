package config

import (
	"os"
	"path/filepath"
	"testing"
)

func write(t *testing.T, directory string, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(directory, "flaskgen.yml"), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
}

func TestLoadMissing(t *testing.T) {
	conf, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to load defaults: %v", err)
	}

	if *conf.Name != "myflaskapp" {
		t.Errorf("Expected default name myflaskapp, got %q", *conf.Name)
	}
	if *conf.Output != "." {
		t.Errorf("Expected default output '.', got %q", *conf.Output)
	}
}

func TestLoadFile(t *testing.T) {
	directory := t.TempDir()
	write(t, directory, "name: demo\noutput: out\n")

	conf, err := Load(directory)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if *conf.Name != "demo" {
		t.Errorf("Expected name demo, got %q", *conf.Name)
	}
	if *conf.Output != "out" {
		t.Errorf("Expected output out, got %q", *conf.Output)
	}
}

func TestLoadInvalid(t *testing.T) {
	directory := t.TempDir()
	write(t, directory, "name: [unclosed\n")

	if _, err := Load(directory); err == nil {
		t.Fatal("Expected error for unparsable config")
	}
}

func TestEnvTemplate(t *testing.T) {
	directory := t.TempDir()
	t.Setenv("FLASKGEN_TEST_NAME", "envapp")
	write(t, directory, "name: {{ env.FLASKGEN_TEST_NAME }}\n")

	conf, err := Load(directory)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if *conf.Name != "envapp" {
		t.Errorf("Expected name envapp, got %q", *conf.Name)
	}
}

func TestEnvTemplateFallback(t *testing.T) {
	directory := t.TempDir()
	write(t, directory, "name: {{ env.FLASKGEN_TEST_UNSET || fallback }}\n")

	conf, err := Load(directory)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if *conf.Name != "fallback" {
		t.Errorf("Expected name fallback, got %q", *conf.Name)
	}
}
