package image

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/disintegration/imaging"
)

// ErrUnsupportedFormat is returned for output formats the saver cannot encode.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Format names an output encoding.
type Format string

const (
	FormatPNG  Format = "png"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
	FormatJPEG Format = "jpg"
	FormatGIF  Format = "gif"
)

// ValidFormats returns the output formats in order of preference.
func ValidFormats() []Format {
	return []Format{FormatPNG, FormatBMP, FormatTIFF, FormatJPEG, FormatGIF}
}

// ParseFormat converts a format name or file extension to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.TrimPrefix(strings.ToLower(s), ".") {
	case "png":
		return FormatPNG, nil
	case "bmp":
		return FormatBMP, nil
	case "tif", "tiff":
		return FormatTIFF, nil
	case "jpg", "jpeg":
		return FormatJPEG, nil
	case "gif":
		return FormatGIF, nil
	default:
		return "", fmt.Errorf("%w: %s (valid: %v)", ErrUnsupportedFormat, s, ValidFormats())
	}
}

// Extension returns the file extension, including the dot, for f.
func (f Format) Extension() string {
	return "." + string(f)
}

// SaveOptions controls how derived images are written.
type SaveOptions struct {
	// Dir is the output directory. Empty means next to the source image.
	Dir string
	// Format is the encoding of every written file.
	Format Format
	// JPEGQuality applies to FormatJPEG only (1-100).
	JPEGQuality int
}

// DefaultSaveOptions returns lossless PNG output next to the source.
func DefaultSaveOptions() SaveOptions {
	return SaveOptions{
		Format:      FormatPNG,
		JPEGQuality: 95,
	}
}

// Validate validates the save options.
func (o SaveOptions) Validate() error {
	if !slices.Contains(ValidFormats(), o.Format) {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, o.Format)
	}
	if o.Format == FormatJPEG && (o.JPEGQuality < 1 || o.JPEGQuality > 100) {
		return fmt.Errorf("jpeg quality must be between 1 and 100, got %d", o.JPEGQuality)
	}
	return nil
}

// OutputPath returns where the view named stage of sourcePath is written,
// e.g. "photo.jpg" and "binary" give "photo-binary.png".
func (o SaveOptions) OutputPath(sourcePath, stage string) string {
	dir := o.Dir
	if dir == "" {
		dir = filepath.Dir(sourcePath)
	}
	base := strings.TrimSuffix(filepath.Base(sourcePath), filepath.Ext(sourcePath))
	return filepath.Join(dir, base+"-"+stage+o.Format.Extension())
}

// IsOutputName reports whether path is named like a view written by
// OutputPath for one of stages, whatever its format.
func IsOutputName(path string, stages []string) bool {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	for _, stage := range stages {
		if strings.HasSuffix(base, "-"+stage) {
			return true
		}
	}
	return false
}

// ExcludeOutputs drops the paths that IsOutputName matches, so a directory
// holding earlier results only yields its source images.
func ExcludeOutputs(paths []string, stages []string) []string {
	var sources []string
	for _, p := range paths {
		if !IsOutputName(p, stages) {
			sources = append(sources, p)
		}
	}
	return sources
}

// Saver writes images to disk.
type Saver struct {
	opts SaveOptions
}

// NewSaver creates a Saver after validating opts.
func NewSaver(opts SaveOptions) (*Saver, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Saver{opts: opts}, nil
}

// Save writes img as the stage view of sourcePath and returns the path
// written. The output directory is created when missing.
func (s *Saver) Save(img image.Image, sourcePath, stage string) (string, error) {
	path := s.opts.OutputPath(sourcePath, stage)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil { // #nosec G301 - Output directory needs standard permissions
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	var opts []imaging.EncodeOption
	if s.opts.Format == FormatJPEG {
		opts = append(opts, imaging.JPEGQuality(s.opts.JPEGQuality))
	}
	if err := imaging.Save(img, path, opts...); err != nil {
		return "", fmt.Errorf("failed to write %s image: %w", stage, err)
	}
	return path, nil
}
