package model

import (
	"bytes"
	"fmt"
	"image"
	"sync"

	// Decoders registered with image.Decode
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DefaultBreed is the breed recorded for every fetched image. The random
// endpoint is not breed specific.
const DefaultBreed = "any"

// DogImage represents one fetched photograph
type DogImage struct {
	Breed    string // always DefaultBreed for the random endpoint
	FileName string // last path segment of URL, e.g. "n02110185_1469.jpg"
	URL      string // resolved image URL
	Bytes    []byte // raw payload as downloaded

	decodeOnce sync.Once
	decoded    image.Image
	format     string
	decodeErr  error
}

// NewDogImage creates an image value. fileName must be non-empty whenever
// data is non-empty.
func NewDogImage(breed, fileName, url string, data []byte) (*DogImage, error) {
	if len(data) > 0 && fileName == "" {
		return nil, fmt.Errorf("%w: image from %q has no file name", ErrUpstreamProtocol, url)
	}
	if breed == "" {
		breed = DefaultBreed
	}
	return &DogImage{
		Breed:    breed,
		FileName: fileName,
		URL:      url,
		Bytes:    data,
	}, nil
}

// Decode returns the bitmap for Bytes. The first call does the work and the
// result is cached, so it is safe to call from several goroutines.
func (d *DogImage) Decode() (image.Image, error) {
	d.decodeOnce.Do(func() {
		d.decoded, d.format, d.decodeErr = DecodeImage(d.Bytes)
	})
	return d.decoded, d.decodeErr
}

// Format returns the detected source format ("jpeg", "png", ...), or an
// empty string if the image has not been decoded or failed to decode.
func (d *DogImage) Format() string {
	if _, err := d.Decode(); err != nil {
		return ""
	}
	return d.format
}

// Title returns the fragment used in the window title
func (d *DogImage) Title() string {
	if d.FileName != "" {
		return d.FileName
	}
	return d.Breed
}

// DecodeImage decodes data in any registered format. Errors wrap ErrDecode.
func DecodeImage(data []byte) (image.Image, string, error) {
	if len(data) == 0 {
		return nil, "", fmt.Errorf("%w: empty payload", ErrDecode)
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return img, format, nil
}
