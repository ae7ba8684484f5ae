package model

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"sync"
	"testing"
)

func encodePNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.Set(1, 1, color.RGBA{R: 200, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Failed to encode png: %v", err)
	}
	return buf.Bytes()
}

func TestNewDogImage(t *testing.T) {
	img, err := NewDogImage("", "hound-12.jpg", "https://images.dog.ceo/breeds/hound/hound-12.jpg", []byte{1})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if img.Breed != DefaultBreed {
		t.Errorf("Expected breed %q, got %q", DefaultBreed, img.Breed)
	}

	if img.Title() != "hound-12.jpg" {
		t.Errorf("Expected title 'hound-12.jpg', got '%s'", img.Title())
	}
}

func TestNewDogImage_MissingFileName(t *testing.T) {
	_, err := NewDogImage(DefaultBreed, "", "https://images.dog.ceo/", []byte{1, 2, 3})
	if err == nil {
		t.Fatal("Expected error for bytes without file name, got nil")
	}

	if !errors.Is(err, ErrUpstreamProtocol) {
		t.Errorf("Expected ErrUpstreamProtocol, got %v", err)
	}
}

func TestDogImage_Decode(t *testing.T) {
	img, err := NewDogImage(DefaultBreed, "dot.png", "", encodePNG(t))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	decoded, err := img.Decode()
	if err != nil {
		t.Fatalf("Expected decode to succeed, got %v", err)
	}

	if decoded.Bounds().Dx() != 4 || decoded.Bounds().Dy() != 3 {
		t.Errorf("Expected 4x3 image, got %v", decoded.Bounds())
	}

	if img.Format() != "png" {
		t.Errorf("Expected format 'png', got '%s'", img.Format())
	}
}

func TestDogImage_DecodeConcurrent(t *testing.T) {
	img, _ := NewDogImage(DefaultBreed, "dot.png", "", encodePNG(t))

	var wg sync.WaitGroup
	results := make([]image.Image, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = img.Decode()
		}(i)
	}
	wg.Wait()

	for i, r := range results {
		if r != results[0] {
			t.Errorf("Decode result %d differs from first result", i)
		}
	}
}

func TestDogImage_DecodeCorrupt(t *testing.T) {
	img, _ := NewDogImage(DefaultBreed, "broken.jpg", "", []byte("definitely not an image"))

	if _, err := img.Decode(); !errors.Is(err, ErrDecode) {
		t.Errorf("Expected ErrDecode, got %v", err)
	}

	if img.Format() != "" {
		t.Errorf("Expected empty format for corrupt image, got '%s'", img.Format())
	}
}

func TestDecodeImage_Empty(t *testing.T) {
	if _, _, err := DecodeImage(nil); !errors.Is(err, ErrDecode) {
		t.Errorf("Expected ErrDecode for empty payload, got %v", err)
	}
}
