package config

import "flag"

var (
	flagConfig   = flag.String("config", "", "Path to config file")
	flagDebug    = flag.Bool("debug", false, "Enable debug logging")
	flagTileW    = flag.Float64("tile-width", 0, "Grid cell width in pixels")
	flagTileH    = flag.Float64("tile-height", 0, "Grid cell height in pixels")
	flagPadX     = flag.Float64("padding-x", -1, "Horizontal cell margin in pixels")
	flagPadY     = flag.Float64("padding-y", -1, "Vertical cell margin in pixels")
	flagSheetW   = flag.Int("sheet-width", 0, "Max packed sheet width")
	flagSheetH   = flag.Int("sheet-height", 0, "Max packed sheet height")
	flagManifest = flag.String("manifest", "", "Output manifest path")
	flagSheet    = flag.String("sheet", "", "Output sheet PNG path")
	flagNoGrid   = flag.Bool("no-grid", false, "Hide rectangle outlines in the viewer")
)

// ParseFlags parses command-line flags. Pass the arguments that follow the
// subcommand name.
func ParseFlags(args []string) error {
	return flag.CommandLine.Parse(args)
}

// Args returns the positional arguments left after ParseFlags.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via -config.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagTileW > 0 {
		cfg.Atlas.TileWidth = float32(*flagTileW)
	}
	if *flagTileH > 0 {
		cfg.Atlas.TileHeight = float32(*flagTileH)
	}
	if *flagPadX >= 0 {
		cfg.Atlas.PaddingX = float32(*flagPadX)
	}
	if *flagPadY >= 0 {
		cfg.Atlas.PaddingY = float32(*flagPadY)
	}
	if *flagSheetW > 0 {
		cfg.Atlas.SheetWidth = *flagSheetW
	}
	if *flagSheetH > 0 {
		cfg.Atlas.SheetHeight = *flagSheetH
	}
	if *flagManifest != "" {
		cfg.Output.Manifest = *flagManifest
	}
	if *flagSheet != "" {
		cfg.Output.Sheet = *flagSheet
	}
	if *flagNoGrid {
		cfg.Viewer.ShowGrid = false
	}
}
