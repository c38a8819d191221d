// Copyright 2026 The vkwsi Authors. All rights reserved.

package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	cfg, err := loadConfig("")
	if err != nil || cfg != defaultConfig() {
		t.Fatalf("loadConfig: empty path\nhave %v, %v\nwant %v, nil", cfg, err, defaultConfig())
	}

	path := filepath.Join(t.TempDir(), "surfinfo.yaml")
	data := "app: my app\nwidth: 800\n"
	if err := os.WriteFile(path, []byte(data), 0666); err != nil {
		t.Fatal(err)
	}
	cfg, err = loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig\nhave %v\nwant nil", err)
	}
	if cfg.App != "my app" || cfg.Width != 800 {
		t.Fatalf("cfg.App, cfg.Width\nhave %s, %d\nwant my app, 800", cfg.App, cfg.Width)
	}
	// Unset fields keep their defaults.
	if cfg.Title != "surfinfo" || cfg.Height != 360 {
		t.Fatalf("cfg.Title, cfg.Height\nhave %s, %d\nwant surfinfo, 360", cfg.Title, cfg.Height)
	}

	if _, err = loadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("loadConfig: missing file\nhave nil\nwant error")
	}
}
