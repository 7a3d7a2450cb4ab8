package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestHasSourceExt(t *testing.T) {
	cases := []struct {
		path string
		want bool
	}{
		{"main.odds", true},
		{"main.txt", false},
		{"odds", false},
	}
	for _, c := range cases {
		if got := HasSourceExt(c.path); got != c.want {
			t.Errorf("HasSourceExt(%q) = %v, want %v", c.path, got, c.want)
		}
	}
}

func TestTrimSourceExt(t *testing.T) {
	if got := TrimSourceExt("main.odds"); got != "main" {
		t.Errorf("TrimSourceExt(%q) = %q, want %q", "main.odds", got, "main")
	}
	if got := TrimSourceExt("main"); got != "main" {
		t.Errorf("TrimSourceExt(%q) = %q, want %q", "main", got, "main")
	}
}

func TestLoadAppliesDefaultsAndOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".odds.yaml")
	contents := "color: true\nprelude: [\"clamp\"]\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) returned error: %v", path, err)
	}
	if cfg.CacheDir != defaultCacheDir {
		t.Errorf("CacheDir = %q, want default %q", cfg.CacheDir, defaultCacheDir)
	}
	if cfg.Color == nil || !*cfg.Color {
		t.Errorf("Color = %v, want true", cfg.Color)
	}
	if len(cfg.Prelude) != 1 || cfg.Prelude[0] != "clamp" {
		t.Errorf("Prelude = %v, want [clamp]", cfg.Prelude)
	}
}

func TestFindPrefersExplicitThenLocalConfig(t *testing.T) {
	dir := t.TempDir()
	if got := Find(dir, "/explicit/path.yaml"); got != "/explicit/path.yaml" {
		t.Errorf("Find with explicit path = %q, want the explicit path unchanged", got)
	}

	local := filepath.Join(dir, ".odds.yaml")
	if err := os.WriteFile(local, []byte("strict: true\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if got := Find(dir, ""); got != local {
		t.Errorf("Find(%q, \"\") = %q, want %q", dir, got, local)
	}
}
