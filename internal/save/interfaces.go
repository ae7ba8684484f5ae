package save

import "context"

// Saver defines the interface for the image save service.
type Saver interface {
	// Save writes data as JPEG and returns the path it was written to.
	Save(ctx context.Context, data []byte, breed, fileName string) (string, error)
}
