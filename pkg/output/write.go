package output

import (
	"context"
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/tiff"
	"golang.org/x/sync/errgroup"
)

// ErrUnsupportedFormat is returned for output paths with an unknown extension
var ErrUnsupportedFormat = errors.New("unsupported output format")

// ErrDuplicateOutput is returned when the same destination is named twice
var ErrDuplicateOutput = errors.New("duplicate output path")

// StdoutPath selects standard output, which is always written as PPM
const StdoutPath = "-"

// Encode writes img to w in the named format ("ppm", "png", "tiff")
func Encode(w io.Writer, img *Image, format string) error {
	switch format {
	case "ppm":
		return EncodePPM(w, img)
	case "png":
		return png.Encode(w, img)
	case "tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// FormatForPath picks an encoder name from the file extension
func FormatForPath(path string) (string, error) {
	if path == StdoutPath {
		return "ppm", nil
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ppm":
		return "ppm", nil
	case ".png":
		return "png", nil
	case ".tif", ".tiff":
		return "tiff", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// WriteFile encodes img to path, creating parent directories as needed.
// The path "-" writes PPM to standard output.
func WriteFile(path string, img *Image) error {
	format, err := FormatForPath(path)
	if err != nil {
		return err
	}
	if path == StdoutPath {
		return Encode(os.Stdout, img, format)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := Encode(f, img, format); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

// WriteAll writes img to every path concurrently and returns the first error.
// Formats and destinations are validated before anything is written; each
// destination may appear only once.
func WriteAll(ctx context.Context, img *Image, paths []string) error {
	seen := make(map[string]bool, len(paths))
	for _, path := range paths {
		if _, err := FormatForPath(path); err != nil {
			return err
		}
		key := path
		if path != StdoutPath {
			key = filepath.Clean(path)
		}
		if seen[key] {
			return fmt.Errorf("%w: %q", ErrDuplicateOutput, path)
		}
		seen[key] = true
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return WriteFile(path, img)
		})
	}
	return g.Wait()
}
