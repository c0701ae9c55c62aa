package starnav

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingEnvVar(t *testing.T) {
	resetConfigForTest()
	t.Setenv("STARNAV_CONFIG", "")
	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected an error when STARNAV_CONFIG is unset")
	}
}

func TestLoadConfigDefaultsAndMemoization(t *testing.T) {
	resetConfigForTest()
	dir := t.TempDir()
	configBody := "[general]\noutput_path = \"./out\"\n"
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(configBody), 0o644); err != nil {
		t.Fatalf("writing config.toml: %v", err)
	}
	t.Setenv("STARNAV_CONFIG", dir)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.OutputDir != "./out" {
		t.Fatalf("expected output_path from the file, got %q", cfg.OutputDir)
	}
	if cfg.DefaultMaxAccelG != MaxAccelG {
		t.Fatalf("expected the default max accel to fall back to MaxAccelG, got %f", cfg.DefaultMaxAccelG)
	}

	// A changed env var after the first successful load must not
	// affect the memoized result.
	t.Setenv("STARNAV_CONFIG", "")
	cfgAgain, err := LoadConfig()
	if err != nil {
		t.Fatalf("expected the memoized config to be returned, got error: %v", err)
	}
	if cfgAgain.OutputDir != cfg.OutputDir {
		t.Fatalf("expected memoized config, got a re-read: %+v vs %+v", cfgAgain, cfg)
	}
}
