package extract

import (
	"image"
	"testing"
)

func TestIsPDF(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		want bool
	}{
		{"pdf header", []byte("%PDF-1.7 rest of file"), true},
		{"png header", []byte("\x89PNG\r\n\x1a\n"), false},
		{"empty", nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := isPDF(tc.data); got != tc.want {
				t.Errorf("isPDF = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestIsHEIC(t *testing.T) {
	ftyp := func(brand string) []byte {
		return append([]byte{0, 0, 0, 0x18, 'f', 't', 'y', 'p'}, []byte(brand)...)
	}
	cases := []struct {
		name string
		data []byte
		want bool
	}{
		{"heic brand", ftyp("heic"), true},
		{"heif brand", ftyp("heif"), true},
		{"mif1 brand", ftyp("mif1"), true},
		{"msf1 brand", ftyp("msf1"), true},
		{"mp4 brand", ftyp("isom"), false},
		{"no ftyp box", []byte("%PDF-1.7 not a container"), false},
		{"too short", []byte{0, 0, 0, 0x18, 'f', 't', 'y', 'p'}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := isHEIC(tc.data); got != tc.want {
				t.Errorf("isHEIC = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestDecodeImageStandardFormats(t *testing.T) {
	img, err := decodeImage(blankPNG(t))
	if err != nil {
		t.Fatalf("decodeImage: %v", err)
	}
	if got := img.Bounds(); got != image.Rect(0, 0, 64, 64) {
		t.Errorf("bounds = %v, want 64x64", got)
	}
}

func TestDecodeImageRejectsGarbage(t *testing.T) {
	if _, err := decodeImage([]byte("definitely not pixels")); err == nil {
		t.Fatal("expected an error")
	}
}

func TestToRGBA(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 8, 8))
	rgba := toRGBA(gray)
	if rgba.Bounds() != gray.Bounds() {
		t.Errorf("bounds = %v, want %v", rgba.Bounds(), gray.Bounds())
	}

	// an image already in RGBA form passes through untouched
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	if toRGBA(src) != src {
		t.Error("RGBA input should be returned as is")
	}
}
