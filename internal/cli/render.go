package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pixelforge/qrcanvas/pkg/cache"
	"github.com/pixelforge/qrcanvas/pkg/canvas"
	qerrors "github.com/pixelforge/qrcanvas/pkg/errors"
	"github.com/pixelforge/qrcanvas/pkg/qr"
)

// defaultCacheTTL is how long CLI renders stay in the local cache.
const defaultCacheTTL = 7 * 24 * time.Hour

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output      string  // output file path; derived from format when empty
	format      string  // image format; derived from the output extension when empty
	level       string  // error correction level: low, medium, high, highest
	moduleSize  int     // pixels per QR module
	quietZone   int     // quiet zone width in modules; -1 disables
	rounded     bool    // draw modules as rounded rectangles
	cornerRatio float64 // corner radius as a fraction of the module size
	fg          string  // foreground color, RRGGBB or AARRGGBB
	bg          string  // background color, RRGGBB or AARRGGBB
	noCache     bool    // skip the local render cache
}

// renderCommand creates the render command for writing QR code image files.
//
// Default settings:
//   - level: medium error correction
//   - format: png (or taken from the -o extension)
//   - module size and quiet zone: library defaults
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <text>",
		Short: "Encode text and write a QR code image file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default qr.<format>)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "image format: png (default), jpg, gif, bmp, tiff")
	cmd.Flags().StringVarP(&opts.level, "level", "l", "", "error correction: low, medium (default), high, highest")
	cmd.Flags().IntVar(&opts.moduleSize, "module-size", 0, "pixels per module")
	cmd.Flags().IntVar(&opts.quietZone, "quiet-zone", 0, "quiet zone width in modules (-1 disables)")
	cmd.Flags().BoolVar(&opts.rounded, "rounded", false, "draw modules as rounded rectangles")
	cmd.Flags().Float64Var(&opts.cornerRatio, "corner-ratio", 0, "corner radius as fraction of module size")
	cmd.Flags().StringVar(&opts.fg, "fg", "", "foreground color (RRGGBB or AARRGGBB)")
	cmd.Flags().StringVar(&opts.bg, "bg", "", "background color (RRGGBB or AARRGGBB)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "skip the local render cache")

	return cmd
}

// resolveOutput settles the output path and format from the flags.
// The format wins over the extension when both are given.
func resolveOutput(output, format string) (string, string, error) {
	if format == "" && output != "" {
		if ext := strings.TrimPrefix(filepath.Ext(output), "."); ext != "" {
			format = ext
		}
	}
	if format == "" {
		format = canvas.DefaultFormat
	}
	format = strings.ToLower(format)
	if err := qerrors.ValidateFormatName(format); err != nil {
		return "", "", err
	}
	if output == "" {
		output = "qr." + format
	}
	return output, format, nil
}

// renderParams converts the flags into validated render inputs.
func renderParams(opts *renderOpts) (qr.Level, qr.Options, error) {
	level, err := qr.ParseLevel(opts.level)
	if err != nil {
		return 0, qr.Options{}, err
	}

	ro := qr.Options{
		ModuleSize:  opts.moduleSize,
		QuietZone:   opts.quietZone,
		Rounded:     opts.rounded,
		CornerRatio: opts.cornerRatio,
	}
	if opts.fg != "" {
		if ro.Foreground, err = canvas.ParseColor(opts.fg); err != nil {
			return 0, qr.Options{}, err
		}
	}
	if opts.bg != "" {
		if ro.Background, err = canvas.ParseColor(opts.bg); err != nil {
			return 0, qr.Options{}, err
		}
	}
	return level, ro, nil
}

func (c *CLI) runRender(ctx context.Context, text string, opts *renderOpts) error {
	output, format, err := resolveOutput(opts.output, opts.format)
	if err != nil {
		return err
	}
	level, ro, err := renderParams(opts)
	if err != nil {
		return err
	}

	logger := loggerFromContext(ctx)

	store, err := c.newCache(opts.noCache)
	if err != nil {
		printWarning("Cache unavailable, rendering uncached: %v", err)
		store = cache.NewNullCache()
	}
	defer store.Close()

	key := cache.RenderKey(text, cache.RenderKeyOpts{
		Level:       level.String(),
		ModuleSize:  ro.ModuleSize,
		QuietZone:   ro.QuietZone,
		Rounded:     ro.Rounded,
		CornerRatio: ro.CornerRatio,
		Foreground:  uint32(ro.Foreground),
		Background:  uint32(ro.Background),
		Format:      format,
	})

	prog := newProgress(logger)
	sp := newSpinnerWithContext(ctx, "Rendering QR code...")
	sp.Start()

	m, err := qr.Encode(text, level)
	if err != nil {
		sp.Stop()
		return err
	}

	data, cached, err := store.Get(ctx, key)
	if err != nil {
		logger.Debugf("Cache get failed: %v", err)
		cached = false
	}
	if !cached {
		cv, err := qr.Render(m, ro)
		if err != nil {
			sp.Stop()
			return err
		}
		if data, err = cv.Bytes(format); err != nil {
			sp.Stop()
			return err
		}
		if err := store.Set(ctx, key, data, defaultCacheTTL); err != nil {
			logger.Debugf("Cache set failed: %v", err)
		}
	}

	if sp.Cancelled() {
		sp.Stop()
		return ctx.Err()
	}

	if err := os.WriteFile(output, data, 0o644); err != nil {
		sp.StopWithError(fmt.Sprintf("Writing %s failed", output))
		return err
	}
	sp.StopWithSuccess("QR code written")
	prog.done(fmt.Sprintf("Rendered %dx%d modules", m.Size(), m.Size()))

	printFile(output)
	printRenderStats(m.Size(), qr.ImageSize(m, ro), len(data), cached)
	return nil
}
