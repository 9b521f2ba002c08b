package segment

import (
	"image"
	"image/color"
	"testing"
)

func TestBinarize(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 4, 1))
	for x, v := range []uint8{0, 99, 100, 101} {
		gray.SetGray(x, 0, color.Gray{Y: v})
	}

	bin := Binarize(gray, 100)

	want := []uint8{Background, Background, Background, Foreground}
	for x, w := range want {
		if got := bin.GrayAt(x, 0).Y; got != w {
			t.Errorf("pixel %d = %d, want %d", x, got, w)
		}
	}
}

func TestBinarizeTwoValued(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 16, 16))
	for i := range gray.Pix {
		gray.Pix[i] = uint8(i)
	}

	bin := Binarize(gray, 127)

	for i, v := range bin.Pix {
		if v != Background && v != Foreground {
			t.Fatalf("pixel %d = %d, want %d or %d", i, v, Background, Foreground)
		}
		if (v == Foreground) != (gray.Pix[i] > 127) {
			t.Fatalf("pixel %d with intensity %d classified as %d", i, gray.Pix[i], v)
		}
	}
}

func TestBinarizeThreshold255(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 2, 2))
	for i := range gray.Pix {
		gray.Pix[i] = 255
	}

	bin := Binarize(gray, 255)
	for i, v := range bin.Pix {
		if v != Background {
			t.Errorf("pixel %d = %d, want background", i, v)
		}
	}
}

func TestBinarizeNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Binarize(nil) did not panic")
		}
	}()
	Binarize(nil, 0)
}
