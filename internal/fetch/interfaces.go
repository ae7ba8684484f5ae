package fetch

import (
	"context"

	"github.com/ytget/random-dog/internal/model"
)

// Fetcher defines the interface for the random image fetch service.
type Fetcher interface {
	Fetch(ctx context.Context) (*model.DogImage, error)
}
