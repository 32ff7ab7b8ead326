package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestConfigSetPersists(t *testing.T) {
	root := t.TempDir()
	cfg := ForProject(root)

	if err := cfg.Set(KeyProfile, "release"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := cfg.Set("ENV_RUSTFLAGS", "-Dwarnings"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	// A fresh instance must see the values written by the first one
	cfg2 := ForProject(root)
	if err := cfg2.Load(); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if val, err := cfg2.Get(KeyProfile); err != nil || val != "release" {
		t.Errorf("Get(%s) = %q, %v, want %q, nil", KeyProfile, val, err, "release")
	}
	if val := cfg2.GetOrDefault("ENV_RUSTFLAGS", ""); val != "-Dwarnings" {
		t.Errorf("GetOrDefault() = %v, want %v", val, "-Dwarnings")
	}
}

func TestConfigFileIsSorted(t *testing.T) {
	root := t.TempDir()
	cfg := ForProject(root)

	for _, key := range []string{"ZED", "ALPHA", "MID"} {
		if err := cfg.Set(key, "1"); err != nil {
			t.Fatalf("Set(%s) failed: %v", key, err)
		}
	}

	data, err := os.ReadFile(cfg.FilePath())
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}

	var keys []string
	for _, line := range strings.Split(string(data), "\n") {
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		keys = append(keys, strings.SplitN(line, "=", 2)[0])
	}

	want := []string{"ALPHA", "MID", "ZED"}
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("keys in file = %v, want %v", keys, want)
	}
}

func TestConfigLoadRejectsMalformedLine(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, FileName)
	if err := os.WriteFile(path, []byte("# comment\nPROFILE=release\nnot a pair\n"), 0644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	err := New(path).Load()
	if err == nil {
		t.Fatal("Load() error = nil, want error for malformed line")
	}
	if !strings.Contains(err.Error(), "line 3") {
		t.Errorf("Load() error = %v, want it to name line 3", err)
	}
}

func TestConfigGetOrDefault(t *testing.T) {
	cfg := ForProject(t.TempDir())

	tests := []struct {
		name     string
		key      string
		fallback string
		want     string
	}{
		{"defaults table wins over fallback", KeyDistDir, "other", "dist"},
		{"fallback for unknown key", "UNKNOWN", "fallback", "fallback"},
		{"profile default", KeyProfile, "", "debug"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cfg.GetOrDefault(tt.key, tt.fallback); got != tt.want {
				t.Errorf("GetOrDefault(%s) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestConfigGetMissingKey(t *testing.T) {
	cfg := ForProject(t.TempDir())

	if _, err := cfg.Get("NONEXISTENT"); err == nil {
		t.Error("Get() error = nil, want error for non-existent key")
	}
	if cfg.Exists("NONEXISTENT") {
		t.Error("Exists() = true, want false for non-existent key")
	}
}

func TestConfigDelete(t *testing.T) {
	root := t.TempDir()
	cfg := ForProject(root)

	if err := cfg.Set(KeyLocked, "true"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := cfg.Delete(KeyLocked); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if cfg.Exists(KeyLocked) {
		t.Error("key should not exist after Delete()")
	}
	if err := cfg.Delete(KeyLocked); err != nil {
		t.Errorf("Delete() of missing key error = %v, want nil", err)
	}

	if ForProject(root).Exists(KeyLocked) {
		t.Error("deleted key should not be persisted")
	}
}

func TestConfigLoadNonExistent(t *testing.T) {
	cfg := ForProject(t.TempDir())

	if err := cfg.Load(); err != nil {
		t.Errorf("Load() on non-existent file error = %v, want nil", err)
	}
	if _, err := os.Stat(cfg.FilePath()); !os.IsNotExist(err) {
		t.Error("Load() must not create the config file")
	}
}

func TestConfigFilePath(t *testing.T) {
	expectedPath := filepath.Join("/repo", ".xtask.conf")
	cfg := ForProject("/repo")

	if cfg.FilePath() != expectedPath {
		t.Errorf("FilePath() = %v, want %v", cfg.FilePath(), expectedPath)
	}
}
