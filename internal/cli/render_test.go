package cli

import (
	"context"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/pixelforge/qrcanvas/pkg/qr"
)

func TestResolveOutput(t *testing.T) {
	tests := []struct {
		name       string
		output     string
		format     string
		wantOutput string
		wantFormat string
		wantErr    bool
	}{
		{"defaults", "", "", "qr.png", "png", false},
		{"format only", "", "gif", "qr.gif", "gif", false},
		{"output only", "out.bmp", "", "out.bmp", "bmp", false},
		{"format wins over extension", "out.png", "jpg", "out.png", "jpg", false},
		{"uppercase format lowered", "", "PNG", "qr.png", "png", false},
		{"output without extension", "out", "", "out", "png", false},
		{"bad format", "", "p/ng", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, format, err := resolveOutput(tt.output, tt.format)
			if (err != nil) != tt.wantErr {
				t.Fatalf("resolveOutput() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if output != tt.wantOutput {
				t.Errorf("output = %q, want %q", output, tt.wantOutput)
			}
			if format != tt.wantFormat {
				t.Errorf("format = %q, want %q", format, tt.wantFormat)
			}
		})
	}
}

func TestRenderParams(t *testing.T) {
	opts := renderOpts{
		level:      "high",
		moduleSize: 4,
		quietZone:  -1,
		rounded:    true,
		fg:         "ff0000",
		bg:         "#00ff00",
	}
	level, ro, err := renderParams(&opts)
	if err != nil {
		t.Fatalf("renderParams() error = %v", err)
	}
	if level != qr.LevelHigh {
		t.Errorf("level = %v, want %v", level, qr.LevelHigh)
	}
	if ro.ModuleSize != 4 || ro.QuietZone != -1 || !ro.Rounded {
		t.Errorf("unexpected options: %+v", ro)
	}
}

func TestRenderParamsBadColor(t *testing.T) {
	opts := renderOpts{fg: "nope"}
	if _, _, err := renderParams(&opts); err == nil {
		t.Error("expected error for bad foreground color")
	}
}

func TestRunRenderWritesDecodableFile(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "code.png")

	c := New(io.Discard, LogInfo)
	opts := renderOpts{output: out, noCache: true}
	if err := c.runRender(context.Background(), "https://example.com", &opts); err != nil {
		t.Fatalf("runRender() error = %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("opening output: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("output is not a valid PNG: %v", err)
	}
	if img.Bounds().Dx() == 0 {
		t.Error("decoded image is empty")
	}
}

func TestRunRenderUsesCache(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	dir := t.TempDir()

	c := New(io.Discard, LogInfo)

	first := renderOpts{output: filepath.Join(dir, "a.png")}
	if err := c.runRender(context.Background(), "cached text", &first); err != nil {
		t.Fatalf("first runRender() error = %v", err)
	}
	second := renderOpts{output: filepath.Join(dir, "b.png")}
	if err := c.runRender(context.Background(), "cached text", &second); err != nil {
		t.Fatalf("second runRender() error = %v", err)
	}

	a, err := os.ReadFile(filepath.Join(dir, "a.png"))
	if err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(filepath.Join(dir, "b.png"))
	if err != nil {
		t.Fatal(err)
	}
	if string(a) != string(b) {
		t.Error("cached render differs from fresh render")
	}
}

func TestRunRenderDegradesOnBrokenCache(t *testing.T) {
	// A regular file where the cache directory should go makes the file
	// cache unconstructible; rendering must still succeed.
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("XDG_CACHE_HOME", blocker)

	out := filepath.Join(t.TempDir(), "code.png")
	c := New(io.Discard, LogInfo)
	opts := renderOpts{output: out}
	if err := c.runRender(context.Background(), "degraded", &opts); err != nil {
		t.Fatalf("runRender() error = %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("output file missing: %v", err)
	}
}

func TestRunRenderEmptyText(t *testing.T) {
	c := New(io.Discard, LogInfo)
	opts := renderOpts{output: filepath.Join(t.TempDir(), "x.png"), noCache: true}
	if err := c.runRender(context.Background(), "", &opts); err == nil {
		t.Error("expected error for empty text")
	}
}
