package save

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"io"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"golang.org/x/image/draw"

	"github.com/ytget/random-dog/internal/config"
	"github.com/ytget/random-dog/internal/model"
	"github.com/ytget/random-dog/internal/platform"
)

// Output naming
const (
	FilePrefix    = "dog_"
	FileSeparator = "_"
	OutputExt     = ".jpeg"
)

// Ensure Service implements Saver at compile time.
var _ Saver = (*Service)(nil)

// Service handles saving images to disk
type Service struct {
	outputDir string
	quality   int
}

// NewService creates a new save service writing into outputDir
func NewService(outputDir string, quality int) *Service {
	if quality < 1 || quality > 100 {
		quality = config.DefaultJPEGQuality
	}
	return &Service{
		outputDir: outputDir,
		quality:   quality,
	}
}

// NewServiceFromConfig creates a save service from the core configuration
func NewServiceFromConfig(cfg config.Config) *Service {
	return NewService(cfg.OutputDir, cfg.JPEGQuality)
}

// OutputDir returns the directory images are written to
func (s *Service) OutputDir() string {
	return s.outputDir
}

// OutputPath returns where an image with breed and fileName is written.
// The same inputs always map to the same path.
func (s *Service) OutputPath(breed, fileName string) string {
	name := FilePrefix + platform.SanitizeFileName(breed) + FileSeparator + platform.SanitizeFileName(fileName) + OutputExt
	return filepath.Join(s.outputDir, name)
}

// Save decodes data, creates the output directory if needed and writes the
// image as JPEG. An existing file at the same path is replaced.
func (s *Service) Save(ctx context.Context, data []byte, breed, fileName string) (string, error) {
	img, format, err := model.DecodeImage(data)
	if err != nil {
		return "", fmt.Errorf("save %s: %w", fileName, err)
	}

	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: save %s: %v", model.ErrIO, fileName, err)
	}

	if err := platform.CreateDirectoryIfNotExists(s.outputDir); err != nil {
		return "", fmt.Errorf("%w: creating %s: %v", model.ErrIO, s.outputDir, err)
	}

	outputPath := s.OutputPath(breed, fileName)
	flat := flatten(img)

	err = platform.WriteFileAtomic(outputPath, func(w io.Writer) error {
		return jpeg.Encode(w, flat, &jpeg.Options{Quality: s.quality})
	})
	if err != nil {
		return "", fmt.Errorf("%w: writing %s: %v", model.ErrIO, outputPath, err)
	}

	log.WithFields(log.Fields{
		"path":   outputPath,
		"source": format,
	}).Info("Saved dog image")

	return outputPath, nil
}

// flatten composites img over white so transparent pixels do not turn black
// in the JPEG output
func flatten(img image.Image) image.Image {
	if opaque, ok := img.(interface{ Opaque() bool }); ok && opaque.Opaque() {
		return img
	}

	bounds := img.Bounds()
	dst := image.NewRGBA(bounds)
	draw.Draw(dst, bounds, image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(dst, bounds, img, bounds.Min, draw.Over)
	return dst
}
