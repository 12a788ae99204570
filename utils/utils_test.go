package utils

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"
)

func pngImage(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, h/2, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestCreateThumb(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		size         uint
		wantX, wantY uint16
	}{
		{"landscape", 1200, 600, 600, 600, 300},
		{"portrait", 300, 900, 300, 100, 300},
		{"smaller than size", 100, 50, 600, 100, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := CreateThumb(tt.size, bytes.NewReader(pngImage(t, tt.w, tt.h)), &out)
			if err != nil {
				t.Fatal(err)
			}
			if got.NewX != tt.wantX || got.NewY != tt.wantY {
				t.Errorf("CreateThumb() = %dx%d, want %dx%d", got.NewX, got.NewY, tt.wantX, tt.wantY)
			}
			if got.ThumbSize != int64(out.Len()) {
				t.Errorf("ThumbSize = %d, written %d", got.ThumbSize, out.Len())
			}
			if _, err := jpeg.Decode(&out); err != nil {
				t.Errorf("thumbnail is not a JPEG: %v", err)
			}
		})
	}
}

func TestCreateThumb_NotAnImage(t *testing.T) {
	var out bytes.Buffer
	if _, err := CreateThumb(100, strings.NewReader("hello"), &out); err == nil {
		t.Error("CreateThumb() accepted text")
	}
}

func TestIsImage(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
		want    bool
	}{
		{"png", pngImage(t, 10, 10), true},
		{"text", []byte("not an image"), false},
		{"empty", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsImage(bytes.NewReader(tt.content)); got != tt.want {
				t.Errorf("IsImage() = %v, want %v", got, tt.want)
			}
		})
	}
}
