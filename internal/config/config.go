// Package config handles atlastool configuration loading and management.
package config

// Config holds all atlastool settings.
type Config struct {
	Atlas   AtlasConfig   `yaml:"atlas"`
	Output  OutputConfig  `yaml:"output"`
	Viewer  ViewerConfig  `yaml:"viewer"`
	Logging LoggingConfig `yaml:"logging"`
}

// AtlasConfig holds grid-slicing and packing settings.
type AtlasConfig struct {
	TileWidth  float32 `yaml:"tile_width"`  // grid cell width in pixels
	TileHeight float32 `yaml:"tile_height"` // grid cell height in pixels
	PaddingX   float32 `yaml:"padding_x"`   // margin on both horizontal cell edges
	PaddingY   float32 `yaml:"padding_y"`   // margin on both vertical cell edges

	SheetWidth  int `yaml:"sheet_width"`  // max sheet width for packing
	SheetHeight int `yaml:"sheet_height"` // max sheet height for packing
}

// OutputConfig holds output paths.
type OutputConfig struct {
	Manifest string `yaml:"manifest"` // atlas manifest YAML
	Sheet    string `yaml:"sheet"`    // packed sheet PNG
}

// ViewerConfig holds preview window settings.
type ViewerConfig struct {
	Width    int  `yaml:"width"`
	Height   int  `yaml:"height"`
	VSync    bool `yaml:"vsync"`
	ShowGrid bool `yaml:"show_grid"` // outline atlas rectangles over the sheet
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Atlas: AtlasConfig{
			TileWidth:   32,
			TileHeight:  32,
			PaddingX:    0,
			PaddingY:    0,
			SheetWidth:  1024,
			SheetHeight: 1024,
		},
		Output: OutputConfig{
			Manifest: "atlas.yaml",
			Sheet:    "atlas.png",
		},
		Viewer: ViewerConfig{
			Width:    1024,
			Height:   768,
			VSync:    true,
			ShowGrid: true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
