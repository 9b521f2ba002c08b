package image

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// writeTestPNG writes a w×h PNG with a white left half to dir/name.
func writeTestPNG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x < w/2 {
				img.Set(x, y, color.White)
			} else {
				img.Set(x, y, color.Black)
			}
		}
	}

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode %s: %v", path, err)
	}
	return path
}

func TestFileLoaderLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeTestPNG(t, dir, "test.png", 6, 4)

	img, err := NewFileLoader().Load(path)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 6, 4) {
		t.Errorf("Bounds() = %v, want (0,0)-(6,4)", img.Bounds())
	}
	if r, _, _, _ := img.At(0, 0).RGBA(); r != 0xffff {
		t.Errorf("pixel (0,0) red = %#x, want 0xffff", r)
	}
}

func TestFileLoaderLoadErrors(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "garbage.png")
	if err := os.WriteFile(garbage, []byte("not an image"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
	}{
		{name: "empty path", path: ""},
		{name: "missing file", path: filepath.Join(dir, "missing.png")},
		{name: "directory", path: dir},
		{name: "undecodable", path: garbage},
	}

	loader := NewFileLoader()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := loader.Load(tt.path); err == nil {
				t.Errorf("Load(%q) should have returned an error", tt.path)
			}
		})
	}
}

func TestValidateImagePath(t *testing.T) {
	dir := t.TempDir()
	good := writeTestPNG(t, dir, "good.png", 2, 2)
	bad := filepath.Join(dir, "bad.png")
	if err := os.WriteFile(bad, []byte("nope"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{name: "valid file", path: good, wantErr: false},
		{name: "directory", path: dir, wantErr: false},
		{name: "empty", path: "", wantErr: true},
		{name: "missing", path: filepath.Join(dir, "missing.png"), wantErr: true},
		{name: "invalid content", path: bad, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateImagePath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateImagePath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestScanDirectoryForImages(t *testing.T) {
	dir := t.TempDir()
	writeTestPNG(t, dir, "b.png", 2, 2)
	writeTestPNG(t, dir, "a.PNG", 2, 2)
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.png"), 0o755); err != nil {
		t.Fatal(err)
	}

	files, err := ScanDirectoryForImages(dir)
	if err != nil {
		t.Fatalf("ScanDirectoryForImages() returned error: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("found %d files, want 2: %v", len(files), files)
	}
	if filepath.Base(files[0]) != "a.PNG" || filepath.Base(files[1]) != "b.png" {
		t.Errorf("files = %v, want a.PNG then b.png", files)
	}

	if _, err := ScanDirectoryForImages(t.TempDir()); err == nil {
		t.Error("expected an error for a directory without images")
	}
}

func TestResolveImagePaths(t *testing.T) {
	dir := t.TempDir()
	file := writeTestPNG(t, dir, "only.png", 2, 2)

	paths, err := ResolveImagePaths(file)
	if err != nil || len(paths) != 1 || paths[0] != file {
		t.Errorf("ResolveImagePaths(file) = %v, %v", paths, err)
	}

	paths, err = ResolveImagePaths(dir)
	if err != nil || len(paths) != 1 {
		t.Errorf("ResolveImagePaths(dir) = %v, %v", paths, err)
	}

	if _, err := ResolveImagePaths(filepath.Join(dir, "missing")); err == nil {
		t.Error("expected an error for a missing path")
	}
}
