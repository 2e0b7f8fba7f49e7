// Command okulusdemo renders a comparison sheet of one image drawn under
// every scale policy, plus a circular and a pressed variant.
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/gogpu/okulus"
)

func main() {
	var (
		input   = flag.String("input", "", "source image (png, jpeg, gif, bmp, tiff, webp); a test pattern is used when empty")
		output  = flag.String("output", "okulus.png", "output file (png, jpeg, bmp, tiff)")
		style   = flag.String("style", "", "style attribute file (.yaml, .yml, .toml)")
		size    = flag.Int("size", 160, "cell size in pixels")
		cols    = flag.Int("cols", 3, "cells per row")
		logFile = flag.String("log", "", "write JSON logs to this file with rotation instead of stderr")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	logger := newLogger(*logFile, *verbose)
	okulus.SetLogger(logger)

	base := okulus.DefaultStyle()
	if *style != "" {
		s, err := okulus.LoadStyleFile(*style)
		if err != nil {
			log.Fatalf("Failed to load style: %v", err)
		}
		base = s
	}

	src, err := openImage(*input)
	if err != nil {
		log.Fatalf("Failed to open input: %v", err)
	}

	face, err := captionFace(12)
	if err != nil {
		log.Fatalf("Failed to load caption font: %v", err)
	}
	defer face.Close()

	sheet, err := renderSheet(src, base, *size, *cols, face)
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}

	if err := saveImage(*output, sheet); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	b := sheet.Bounds()
	logger.Info("sheet saved", "path", *output, "width", b.Dx(), "height", b.Dy())
	log.Printf("Sheet saved to %s (%dx%d)\n", *output, b.Dx(), b.Dy())
}

func newLogger(path string, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	if path == "" {
		return slog.New(slog.NewTextHandler(os.Stderr, opts))
	}
	w := &lumberjack.Logger{Filename: path, MaxSize: 10, MaxBackups: 3, MaxAge: 28, Compress: true}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// openImage decodes path, or returns the built-in test pattern when path
// is empty.
func openImage(path string) (image.Image, error) {
	if path == "" {
		return testPattern(320, 200), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

func saveImage(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := encodeImage(f, filepath.Ext(path), img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func encodeImage(f *os.File, ext string, img image.Image) error {
	switch strings.ToLower(ext) {
	case ".png", "":
		return png.Encode(f, img)
	case ".jpg", ".jpeg":
		return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
	case ".bmp":
		return bmp.Encode(f, img)
	case ".tif", ".tiff":
		return tiff.Encode(f, img, nil)
	}
	return fmt.Errorf("unsupported output format %q", ext)
}
