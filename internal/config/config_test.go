package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Loader.MaxThreads != 4 {
		t.Errorf("expected max_threads 4, got %d", cfg.Loader.MaxThreads)
	}
	if !cfg.Loader.CalculateTangents {
		t.Error("expected calculate_tangents to be true by default")
	}
	if !cfg.Loader.JoinIdentical {
		t.Error("expected join_identical to be true by default")
	}
	if cfg.Loader.CombineMeshes {
		t.Error("expected combine_meshes to be false by default")
	}
	if cfg.Loader.Lods {
		t.Error("expected lods to be false by default")
	}

	if cfg.Export.OutputDir != "." {
		t.Errorf("expected output_dir '.', got %s", cfg.Export.OutputDir)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "objtool.yaml")

	yamlData := `loader:
  max_threads: 8
  combine_meshes: true
  lods: true
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(yamlData), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, path); err != nil {
		t.Fatalf("loadFromFile: %v", err)
	}

	if cfg.Loader.MaxThreads != 8 {
		t.Errorf("max_threads = %d, want 8", cfg.Loader.MaxThreads)
	}
	if !cfg.Loader.CombineMeshes {
		t.Error("combine_meshes not applied")
	}
	if !cfg.Loader.Lods {
		t.Error("lods not applied")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("level = %q, want debug", cfg.Logging.Level)
	}

	// values absent from the file keep their defaults
	if !cfg.Loader.CalculateTangents {
		t.Error("calculate_tangents default lost on merge")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "sub", "objtool.yaml")

	cfg := Default()
	cfg.Loader.MaxThreads = 2
	cfg.Logging.Level = "warn"

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loadFromFile: %v", err)
	}

	if loaded.Loader.MaxThreads != 2 {
		t.Errorf("max_threads = %d, want 2", loaded.Loader.MaxThreads)
	}
	if loaded.Logging.Level != "warn" {
		t.Errorf("level = %q, want warn", loaded.Logging.Level)
	}
}
