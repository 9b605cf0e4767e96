package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Atlas.TileWidth != 32 {
		t.Errorf("expected tile width 32, got %f", cfg.Atlas.TileWidth)
	}
	if cfg.Atlas.TileHeight != 32 {
		t.Errorf("expected tile height 32, got %f", cfg.Atlas.TileHeight)
	}
	if cfg.Atlas.PaddingX != 0 || cfg.Atlas.PaddingY != 0 {
		t.Error("expected zero padding by default")
	}
	if cfg.Atlas.SheetWidth != 1024 || cfg.Atlas.SheetHeight != 1024 {
		t.Errorf("expected 1024x1024 sheet, got %dx%d", cfg.Atlas.SheetWidth, cfg.Atlas.SheetHeight)
	}

	if cfg.Output.Manifest != "atlas.yaml" {
		t.Errorf("expected manifest 'atlas.yaml', got %s", cfg.Output.Manifest)
	}
	if cfg.Output.Sheet != "atlas.png" {
		t.Errorf("expected sheet 'atlas.png', got %s", cfg.Output.Sheet)
	}

	if !cfg.Viewer.VSync {
		t.Error("expected vsync to be true by default")
	}
	if !cfg.Viewer.ShowGrid {
		t.Error("expected show_grid to be true by default")
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
atlas:
  tile_width: 16
  tile_height: 24
  padding_x: 2
  padding_y: 1
  sheet_width: 2048
  sheet_height: 512

output:
  manifest: "out/tiles.yaml"
  sheet: "out/tiles.png"

viewer:
  width: 800
  height: 600
  vsync: false
  show_grid: false

logging:
  level: "debug"
  log_file: "atlastool.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Atlas.TileWidth != 16 {
		t.Errorf("expected tile width 16, got %f", cfg.Atlas.TileWidth)
	}
	if cfg.Atlas.TileHeight != 24 {
		t.Errorf("expected tile height 24, got %f", cfg.Atlas.TileHeight)
	}
	if cfg.Atlas.PaddingX != 2 || cfg.Atlas.PaddingY != 1 {
		t.Errorf("expected padding 2/1, got %f/%f", cfg.Atlas.PaddingX, cfg.Atlas.PaddingY)
	}
	if cfg.Atlas.SheetWidth != 2048 {
		t.Errorf("expected sheet width 2048, got %d", cfg.Atlas.SheetWidth)
	}
	if cfg.Output.Manifest != "out/tiles.yaml" {
		t.Errorf("expected manifest 'out/tiles.yaml', got %s", cfg.Output.Manifest)
	}
	if cfg.Viewer.Width != 800 || cfg.Viewer.Height != 600 {
		t.Errorf("expected viewer 800x600, got %dx%d", cfg.Viewer.Width, cfg.Viewer.Height)
	}
	if cfg.Viewer.VSync {
		t.Error("expected vsync to be false")
	}
	if cfg.Viewer.ShowGrid {
		t.Error("expected show_grid to be false")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "atlastool.log" {
		t.Errorf("expected log file 'atlastool.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
atlas:
  tile_width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name: "debug flag",
			setup: func() {
				*flagDebug = true
			},
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() {
				*flagDebug = false
			},
		},
		{
			name: "tile size flags",
			setup: func() {
				*flagTileW = 48
				*flagTileH = 24
			},
			verify: func(cfg *Config) {
				if cfg.Atlas.TileWidth != 48 {
					t.Errorf("expected tile width 48, got %f", cfg.Atlas.TileWidth)
				}
				if cfg.Atlas.TileHeight != 24 {
					t.Errorf("expected tile height 24, got %f", cfg.Atlas.TileHeight)
				}
			},
			teardown: func() {
				*flagTileW = 0
				*flagTileH = 0
			},
		},
		{
			name: "zero padding flag overrides",
			setup: func() {
				*flagPadX = 0
			},
			verify: func(cfg *Config) {
				if cfg.Atlas.PaddingX != 0 {
					t.Errorf("expected padding 0, got %f", cfg.Atlas.PaddingX)
				}
			},
			teardown: func() {
				*flagPadX = -1
			},
		},
		{
			name: "output flags",
			setup: func() {
				*flagManifest = "custom.yaml"
				*flagSheet = "custom.png"
			},
			verify: func(cfg *Config) {
				if cfg.Output.Manifest != "custom.yaml" {
					t.Errorf("expected manifest 'custom.yaml', got %s", cfg.Output.Manifest)
				}
				if cfg.Output.Sheet != "custom.png" {
					t.Errorf("expected sheet 'custom.png', got %s", cfg.Output.Sheet)
				}
			},
			teardown: func() {
				*flagManifest = ""
				*flagSheet = ""
			},
		},
		{
			name: "no-grid flag",
			setup: func() {
				*flagNoGrid = true
			},
			verify: func(cfg *Config) {
				if cfg.Viewer.ShowGrid {
					t.Error("expected show_grid to be false with no-grid flag")
				}
			},
			teardown: func() {
				*flagNoGrid = false
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
atlas:
  tile_width: 64
  tile_height: 64
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Flag overrides the file value.
	*flagConfig = configPath
	*flagTileW = 16
	defer func() {
		*flagConfig = ""
		*flagTileW = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width from flag, height from file.
	if cfg.Atlas.TileWidth != 16 {
		t.Errorf("expected tile width 16 from flag, got %f", cfg.Atlas.TileWidth)
	}
	if cfg.Atlas.TileHeight != 64 {
		t.Errorf("expected tile height 64 from file, got %f", cfg.Atlas.TileHeight)
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Atlas.TileWidth = 48
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}
	if loaded.Atlas.TileWidth != 48 {
		t.Errorf("expected tile width 48 after reload, got %f", loaded.Atlas.TileWidth)
	}
}
