package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/ytget/random-dog/internal/config"
	"github.com/ytget/random-dog/internal/model"
)

// Response status reported by dog.ceo on success
const StatusSuccess = "success"

// Body size limits
const (
	DefaultMaxBodySize int64 = 32 << 20 // largest API or image body accepted
	maxDrainSize       int64 = 64 << 10 // read from error responses before closing
)

// Ensure Service implements Fetcher at compile time.
var _ Fetcher = (*Service)(nil)

// randomImageResponse is the body of the random image endpoint
type randomImageResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// Service fetches random dog images over HTTP
type Service struct {
	client   *http.Client
	endpoint string
	breed    string
	timeout  time.Duration
	lazy     bool
	maxBody  int64
}

// Option configures a Service.
type Option func(*Service)

// WithHTTPClient sets the client used for both requests.
func WithHTTPClient(client *http.Client) Option {
	return func(s *Service) {
		s.client = client
	}
}

// WithEndpoint overrides the random image endpoint.
func WithEndpoint(endpoint string) Option {
	return func(s *Service) {
		s.endpoint = endpoint
	}
}

// WithTimeout bounds a whole fetch (both requests). Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(s *Service) {
		s.timeout = d
	}
}

// WithMaxBodySize caps the size of each response body. Values below 1 keep
// the default.
func WithMaxBodySize(n int64) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxBody = n
		}
	}
}

// WithBreed sets the breed recorded on fetched images.
func WithBreed(breed string) Option {
	return func(s *Service) {
		s.breed = breed
	}
}

// WithLazyDecode leaves decoding to the caller instead of validating the
// bytes before Fetch returns.
func WithLazyDecode() Option {
	return func(s *Service) {
		s.lazy = true
	}
}

// NewService creates a new fetch service
func NewService(opts ...Option) *Service {
	s := &Service{
		endpoint: config.DefaultEndpoint,
		breed:    model.DefaultBreed,
		maxBody:  DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.client == nil {
		s.client = &http.Client{Transport: NewLoggingTransport(nil)}
	}

	return s
}

// NewServiceFromConfig creates a fetch service from the core configuration
func NewServiceFromConfig(cfg config.Config, opts ...Option) *Service {
	base := []Option{
		WithEndpoint(cfg.Endpoint),
		WithBreed(cfg.Breed),
		WithTimeout(cfg.RequestTimeout),
	}
	return NewService(append(base, opts...)...)
}

// Fetch resolves a random image URL, downloads it and, unless lazy decoding
// is enabled, decodes it once so the result is ready for display.
func (s *Service) Fetch(ctx context.Context) (*model.DogImage, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	imageURL, err := s.resolveImageURL(ctx)
	if err != nil {
		return nil, err
	}

	fileName, err := FileNameFromURL(imageURL)
	if err != nil {
		return nil, err
	}

	data, err := s.get(ctx, imageURL)
	if err != nil {
		return nil, err
	}

	img, err := model.NewDogImage(s.breed, fileName, imageURL, data)
	if err != nil {
		return nil, err
	}

	if !s.lazy {
		if _, err := img.Decode(); err != nil {
			return nil, fmt.Errorf("decode %s: %w", fileName, err)
		}
	}

	log.WithFields(log.Fields{
		"file":   fileName,
		"bytes":  len(data),
		"format": formatOrPending(img, s.lazy),
	}).Info("Fetched dog image")

	return img, nil
}

// resolveImageURL asks the API for a random image URL
func (s *Service) resolveImageURL(ctx context.Context) (string, error) {
	body, err := s.get(ctx, s.endpoint)
	if err != nil {
		return "", err
	}

	var resp randomImageResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("%w: decoding response from %s: %v", model.ErrUpstreamProtocol, s.endpoint, err)
	}
	if resp.Status != StatusSuccess {
		return "", fmt.Errorf("%w: response status %q", model.ErrUpstreamProtocol, resp.Status)
	}
	if strings.TrimSpace(resp.Message) == "" {
		return "", fmt.Errorf("%w: response has no message", model.ErrUpstreamProtocol)
	}

	if err := validateImageURL(resp.Message); err != nil {
		return "", err
	}

	return resp.Message, nil
}

// get performs a GET and returns the full body. Transport failures, non-2xx
// statuses and bodies larger than maxBody wrap ErrNetwork.
func (s *Service) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building request for %q: %v", model.ErrUpstreamProtocol, rawURL, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: GET %s: %v", model.ErrNetwork, rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain a bounded amount so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrainSize))
		return nil, fmt.Errorf("%w: GET %s: HTTP %d", model.ErrNetwork, rawURL, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, s.maxBody+1))
	if err != nil {
		return nil, fmt.Errorf("%w: reading body of %s: %v", model.ErrNetwork, rawURL, err)
	}
	if int64(len(body)) > s.maxBody {
		return nil, fmt.Errorf("%w: body of %s exceeds %d bytes", model.ErrNetwork, rawURL, s.maxBody)
	}

	return body, nil
}

// FileNameFromURL returns the text after the last '/' of rawURL
func FileNameFromURL(rawURL string) (string, error) {
	idx := strings.LastIndex(rawURL, "/")
	if idx < 0 {
		return "", fmt.Errorf("%w: image URL %q has no path separator", model.ErrUpstreamProtocol, rawURL)
	}

	name := rawURL[idx+1:]
	if name == "" {
		return "", fmt.Errorf("%w: image URL %q has an empty file name", model.ErrUpstreamProtocol, rawURL)
	}

	return name, nil
}

// validateImageURL checks that the API handed back an absolute http(s) URL
func validateImageURL(rawURL string) error {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%w: invalid image URL %q: %v", model.ErrUpstreamProtocol, rawURL, err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("%w: image URL %q must start with http:// or https://", model.ErrUpstreamProtocol, rawURL)
	}
	if parsedURL.Host == "" {
		return fmt.Errorf("%w: image URL %q has no host", model.ErrUpstreamProtocol, rawURL)
	}

	return nil
}

func formatOrPending(img *model.DogImage, lazy bool) string {
	if lazy {
		return "pending"
	}
	return img.Format()
}
