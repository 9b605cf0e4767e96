// atlastool is a CLI utility for slicing, packing and previewing texture
// atlases.
package main

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/atlaskit/internal/config"
	"github.com/Faultbox/atlaskit/internal/logger"
	"github.com/Faultbox/atlaskit/internal/viewer"
	"github.com/Faultbox/atlaskit/pkg/atlas"
	"github.com/Faultbox/atlaskit/pkg/math"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	switch command {
	case "help", "-h", "--help":
		printUsage()
		return
	}

	if err := config.ParseFlags(os.Args[2:]); err != nil {
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	args := config.Args()
	switch command {
	case "grid":
		cmdGrid(cfg, args)
	case "pack":
		cmdPack(cfg, args)
	case "info":
		cmdInfo(cfg, args)
	case "view":
		cmdView(cfg, args)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`atlastool - texture atlas utility

Usage:
  atlastool <command> [options] [arguments]

Commands:
  grid <sheet.png>          Slice a sheet into a tile grid, write a manifest
  pack <dir>                Pack all PNGs in a directory into one sheet
  info <manifest.yaml>      Summarize an atlas manifest
  view <sheet.png> [manifest.yaml]
                            Preview a sheet, outlining manifest rectangles

Options:
  -config path              Config file (default ./atlaskit.yaml)
  -tile-width N             Grid cell width in pixels
  -tile-height N            Grid cell height in pixels
  -padding-x N              Horizontal cell margin in pixels
  -padding-y N              Vertical cell margin in pixels
  -sheet-width N            Max packed sheet width
  -sheet-height N           Max packed sheet height
  -manifest path            Output manifest path
  -sheet path               Output sheet PNG path
  -no-grid                  Hide rectangle outlines in the viewer
  -debug                    Enable debug logging

Examples:
  atlastool grid tiles.png -tile-width 16 -tile-height 16
  atlastool pack ./sprites -sheet out/atlas.png -manifest out/atlas.yaml
  atlastool view out/atlas.png out/atlas.yaml`)
}

func cmdGrid(cfg *config.Config, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: atlastool grid [options] <sheet.png>")
		os.Exit(1)
	}

	img, err := loadPNG(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	dims := math.Vec2{
		X: float32(img.Bounds().Dx()),
		Y: float32(img.Bounds().Dy()),
	}

	a, err := atlas.FromGridWithPadding(0,
		math.Vec2{X: cfg.Atlas.TileWidth, Y: cfg.Atlas.TileHeight},
		dims,
		atlas.UniformPadding(math.Vec2{X: cfg.Atlas.PaddingX, Y: cfg.Atlas.PaddingY}),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger.Info("sheet sliced",
		zap.String("sheet", args[0]),
		zap.Int("rects", a.Len()),
	)

	m := atlas.NewManifest(args[0], a, nil)
	if err := m.Save(cfg.Output.Manifest); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s: %.0fx%.0f, %d rectangles of %.0fx%.0f -> %s\n",
		args[0], dims.X, dims.Y, a.Len(),
		cfg.Atlas.TileWidth, cfg.Atlas.TileHeight, cfg.Output.Manifest)
}

func cmdPack(cfg *config.Config, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: atlastool pack [options] <dir>")
		os.Exit(1)
	}

	paths, err := filepath.Glob(filepath.Join(args[0], "*.png"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(paths) == 0 {
		fmt.Fprintf(os.Stderr, "No PNG files in %s\n", args[0])
		os.Exit(1)
	}
	sort.Strings(paths)

	b := atlas.NewBuilder(cfg.Atlas.SheetWidth, cfg.Atlas.SheetHeight)
	ids := make(map[atlas.TextureID]string, len(paths))
	for i, path := range paths {
		img, err := loadPNG(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		id := atlas.TextureID(i + 1)
		if err := b.Add(id, img); err != nil {
			fmt.Fprintf(os.Stderr, "Error adding %s: %v\n", path, err)
			os.Exit(1)
		}
		ids[id] = strings.TrimSuffix(filepath.Base(path), ".png")
		logger.Debug("queued image", zap.String("path", path), zap.Uint64("id", uint64(id)))
	}

	a, sheet, err := b.Build(0)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	names := make(map[string]int, len(ids))
	for id, name := range ids {
		if index, ok := a.TextureIndex(id); ok {
			names[name] = index
		}
	}

	if err := savePNG(cfg.Output.Sheet, sheet); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	m := atlas.NewManifest(cfg.Output.Sheet, a, names)
	if err := m.Save(cfg.Output.Manifest); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger.Info("sheet packed",
		zap.Int("images", a.Len()),
		zap.String("sheet", cfg.Output.Sheet),
		zap.String("manifest", cfg.Output.Manifest),
	)
	fmt.Printf("packed %d images into %s (%.0fx%.0f), manifest %s\n",
		a.Len(), cfg.Output.Sheet, a.Size.X, a.Size.Y, cfg.Output.Manifest)
}

func cmdInfo(cfg *config.Config, args []string) {
	path := cfg.Output.Manifest
	if len(args) > 0 {
		path = args[0]
	}

	m, err := atlas.LoadManifest(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Manifest:  %s\n", path)
	fmt.Printf("Sheet:     %s (%.0fx%.0f)\n", m.Sheet, m.Width, m.Height)
	fmt.Printf("Rects:     %d\n", len(m.Rects))
	if len(m.Names) > 0 {
		names := make([]string, 0, len(m.Names))
		for name := range m.Names {
			names = append(names, name)
		}
		sort.Strings(names)
		fmt.Println("Names:")
		for _, name := range names {
			r := m.Rects[m.Names[name]]
			fmt.Printf("  %3d  %-24s %.0f,%.0f - %.0f,%.0f\n",
				m.Names[name], name, r.MinX, r.MinY, r.MaxX, r.MaxY)
		}
	}
}

func cmdView(cfg *config.Config, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: atlastool view [options] <sheet.png> [manifest.yaml]")
		os.Exit(1)
	}

	sheet, err := loadPNG(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var rects []atlas.Rect
	if len(args) > 1 {
		m, err := atlas.LoadManifest(args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		rects = m.Atlas(0).Rects()
	}

	err = viewer.Run(viewer.Config{
		Title:    "atlaskit - " + filepath.Base(args[0]),
		Width:    cfg.Viewer.Width,
		Height:   cfg.Viewer.Height,
		VSync:    cfg.Viewer.VSync,
		ShowGrid: cfg.Viewer.ShowGrid,
	}, sheet, rects)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadPNG decodes a PNG file into an RGBA image.
func loadPNG(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	if rgba, ok := img.(*image.RGBA); ok {
		return rgba, nil
	}
	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	return rgba, nil
}

// savePNG writes an image to a PNG file, creating parent directories.
func savePNG(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}
	return nil
}
