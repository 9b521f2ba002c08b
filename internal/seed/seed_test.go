package seed

import (
	"image"
	"image/color"
	"testing"
)

func testImage(v uint8) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{R: v, G: uint8(x * 10), B: uint8(y * 10), A: 255})
		}
	}
	return img
}

func TestCalculate(t *testing.T) {
	img := testImage(1)

	tests := []struct {
		name    string
		img     image.Image
		path    string
		cfg     Config
		want    int64
		check   bool
		wantErr bool
	}{
		{name: "zero config is seed zero", cfg: Config{}, want: 0, check: true},
		{name: "manual value", cfg: Config{Mode: ModeManual, Value: 42}, want: 42, check: true},
		{name: "empty mode is manual", cfg: Config{Value: 7}, want: 7, check: true},
		{name: "content", img: img, cfg: Config{Mode: ModeContent}, want: ContentSeed(img), check: true},
		{name: "content without image", cfg: Config{Mode: ModeContent}, wantErr: true},
		{name: "filepath", path: "a.png", cfg: Config{Mode: ModeFilepath}, want: FilepathSeed("a.png"), check: true},
		{name: "filepath without path", cfg: Config{Mode: ModeFilepath}, wantErr: true},
		{name: "random", cfg: Config{Mode: ModeRandom}},
		{name: "unknown", cfg: Config{Mode: "dice"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Calculate(tt.img, tt.path, tt.cfg)
			if tt.wantErr {
				if err == nil {
					t.Error("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Calculate() returned error: %v", err)
			}
			if tt.check && got != tt.want {
				t.Errorf("Calculate() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestContentSeed(t *testing.T) {
	if ContentSeed(testImage(1)) != ContentSeed(testImage(1)) {
		t.Error("identical images produced different seeds")
	}
	if ContentSeed(testImage(1)) == ContentSeed(testImage(2)) {
		t.Error("different images produced the same seed")
	}
}

func TestFilepathSeed(t *testing.T) {
	if FilepathSeed("dir/a.png") != FilepathSeed("dir/a.png") {
		t.Error("same path produced different seeds")
	}
	if FilepathSeed("dir/a.png") == FilepathSeed("dir/b.png") {
		t.Error("different paths produced the same seed")
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range ValidModes() {
		got, err := ParseMode(string(m))
		if err != nil || got != m {
			t.Errorf("ParseMode(%q) = %q, %v", m, got, err)
		}
	}
	if _, err := ParseMode("sometimes"); err == nil {
		t.Error("ParseMode should reject unknown modes")
	}
}

func TestParseValue(t *testing.T) {
	if v, err := ParseValue("-12"); err != nil || v != -12 {
		t.Errorf("ParseValue(-12) = %d, %v", v, err)
	}
	if _, err := ParseValue("twelve"); err == nil {
		t.Error("ParseValue should reject non-numeric input")
	}
}
