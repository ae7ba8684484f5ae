package fetch

import (
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

// LoggingTransport wraps an http.RoundTripper to log request and response details.
type LoggingTransport struct {
	Transport http.RoundTripper
	Logger    log.FieldLogger
}

// NewLoggingTransport creates a new LoggingTransport.
// A nil transport falls back to http.DefaultTransport.
func NewLoggingTransport(transport http.RoundTripper) *LoggingTransport {
	if transport == nil {
		transport = http.DefaultTransport
	}
	return &LoggingTransport{
		Transport: transport,
		Logger:    log.StandardLogger(),
	}
}

// RoundTrip executes a single HTTP transaction, logging details at debug level.
func (t *LoggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	startTime := time.Now()

	resp, err := t.Transport.RoundTrip(req)

	entry := t.Logger.WithFields(log.Fields{
		"method":   req.Method,
		"url":      req.URL.String(),
		"duration": time.Since(startTime),
	})

	if err != nil {
		entry.WithError(err).Debug("HTTP request failed")
		return nil, err
	}

	entry.WithFields(log.Fields{
		"status":         resp.StatusCode,
		"content_type":   resp.Header.Get("Content-Type"),
		"content_length": resp.ContentLength,
	}).Debug("HTTP request completed")

	return resp, nil
}
