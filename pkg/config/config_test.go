package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wifi_config.json")
	if err := os.WriteFile(path, []byte(`{"interface":"wlp3s0","scan_interval":30}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Interface != "wlp3s0" || cfg.ScanInterval != 30 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.TestHost != "8.8.8.8" || !cfg.AutoCleanup {
		t.Errorf("defaults not kept: %+v", cfg)
	}
}

func TestLoadBadJSONFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wifi_config.json")
	if err := os.WriteFile(path, []byte("{broken"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err == nil {
		t.Error("expected an error for unparseable settings")
	}
	if cfg != Default() {
		t.Errorf("cfg = %+v, want clean defaults after a parse failure", cfg)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wifi_config.json")

	want := Default()
	want.Interface = "wlan1"
	want.ExportFormat = "csv"

	if err := Save(path, want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != want {
		t.Errorf("round trip: got %+v, want %+v", got, want)
	}
}
