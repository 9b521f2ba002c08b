// Package seed chooses the seed of the random source that colours segmented
// regions. Every mode except ModeRandom is reproducible.
package seed

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"image"
	"math/rand"
	"path/filepath"
	"slices"
	"strconv"
	"time"
)

// Mode selects how the seed is derived.
type Mode string

const (
	// ModeManual uses Config.Value. The zero Config is manual seed 0.
	ModeManual Mode = "manual"
	// ModeContent hashes the image dimensions and pixels.
	ModeContent Mode = "content"
	// ModeFilepath hashes the absolute path of the source file.
	ModeFilepath Mode = "filepath"
	// ModeRandom draws a fresh seed on every call.
	ModeRandom Mode = "random"
)

// Config holds configuration for seed selection.
type Config struct {
	Mode  Mode
	Value int64
}

// Calculate derives the seed for img, loaded from path, according to cfg.
func Calculate(img image.Image, path string, cfg Config) (int64, error) {
	switch cfg.Mode {
	case ModeManual, "":
		return cfg.Value, nil
	case ModeContent:
		if img == nil {
			return 0, fmt.Errorf("image is required for content seed mode")
		}
		return ContentSeed(img), nil
	case ModeFilepath:
		if path == "" {
			return 0, fmt.Errorf("image path is required for filepath seed mode")
		}
		return FilepathSeed(path), nil
	case ModeRandom:
		return RandomSeed(), nil
	default:
		return 0, fmt.Errorf("unknown seed mode: %s", cfg.Mode)
	}
}

// ContentSeed hashes the dimensions and every pixel of img, so identical
// pixel data always yields the same seed wherever the file lives.
func ContentSeed(img image.Image) int64 {
	b := img.Bounds()
	h := sha256.New()

	var buf [8]byte
	binary.LittleEndian.PutUint32(buf[0:4], uint32(b.Dx())) // #nosec G115 -- image dimensions are non-negative
	binary.LittleEndian.PutUint32(buf[4:8], uint32(b.Dy())) // #nosec G115 -- image dimensions are non-negative
	h.Write(buf[:])

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, a := img.At(x, y).RGBA()
			buf[0], buf[1], buf[2], buf[3] = byte(r>>8), byte(g>>8), byte(bl>>8), byte(a>>8)
			h.Write(buf[:4])
		}
	}

	return sumToSeed(h.Sum(nil))
}

// FilepathSeed hashes the absolute form of path. If the path cannot be made
// absolute it is hashed as given.
func FilepathSeed(path string) int64 {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	sum := sha256.Sum256([]byte(abs))
	return sumToSeed(sum[:])
}

// RandomSeed returns a seed that differs between calls.
func RandomSeed() int64 {
	// #nosec G404 -- the seed is intentionally non-deterministic
	return time.Now().UnixNano() + int64(rand.Intn(1000000))
}

func sumToSeed(sum []byte) int64 {
	return int64(binary.LittleEndian.Uint64(sum[:8])) // #nosec G115 -- reinterpreting hash bits
}

// ValidModes returns the accepted seed modes.
func ValidModes() []Mode {
	return []Mode{ModeManual, ModeContent, ModeFilepath, ModeRandom}
}

// ParseMode converts a string to a Mode.
func ParseMode(s string) (Mode, error) {
	mode := Mode(s)
	if slices.Contains(ValidModes(), mode) {
		return mode, nil
	}
	return "", fmt.Errorf("invalid seed mode: %s (valid: %v)", s, ValidModes())
}

// ParseValue parses a decimal seed value.
func ParseValue(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid seed value %q: %w", s, err)
	}
	return v, nil
}
