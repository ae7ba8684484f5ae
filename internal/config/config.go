package config

import (
	"fmt"
	"time"

	"github.com/ytget/random-dog/internal/model"
)

// Core defaults. None of these are user configurable.
const (
	DefaultEndpoint     = "https://dog.ceo/api/breeds/image/random"
	DefaultOutputDir    = "Dogs"
	DefaultJPEGQuality  = 90
	DefaultEventBacklog = 16
)

// Config holds the fixed configuration of the fetch/save core
type Config struct {
	Endpoint       string
	OutputDir      string
	Breed          string
	JPEGQuality    int
	RequestTimeout time.Duration // zero means no explicit timeout
	EventBacklog   int
}

// Default returns the configuration the application runs with
func Default() Config {
	return Config{
		Endpoint:     DefaultEndpoint,
		OutputDir:    DefaultOutputDir,
		Breed:        model.DefaultBreed,
		JPEGQuality:  DefaultJPEGQuality,
		EventBacklog: DefaultEventBacklog,
	}
}

// Validate checks that the configuration is usable
func (c Config) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("endpoint is empty")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output directory is empty")
	}
	if c.Breed == "" {
		return fmt.Errorf("breed is empty")
	}
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		return fmt.Errorf("jpeg quality %d out of range 1-100", c.JPEGQuality)
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("request timeout must not be negative")
	}
	if c.EventBacklog < 1 {
		return fmt.Errorf("event backlog must be at least 1")
	}
	return nil
}
