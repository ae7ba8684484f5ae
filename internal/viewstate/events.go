package viewstate

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/random-dog/internal/model"
)

// Operation id prefixes
const (
	FetchIDPrefix = "fetch-"
	SaveIDPrefix  = "save-"
)

// Event is anything that can drive a transition
type Event interface {
	isEvent()
}

// NewImageRequested asks for another random image ("search again", "try again")
type NewImageRequested struct{}

// SaveRequested asks to save the image on screen
type SaveRequested struct{}

// FetchCompleted reports the result of a fetch command
type FetchCompleted struct {
	OpID  string
	Image *model.DogImage
	Err   error
}

// SaveCompleted reports the result of a save command
type SaveCompleted struct {
	OpID string
	Path string
	Err  error
}

func (NewImageRequested) isEvent() {}
func (SaveRequested) isEvent()     {}
func (FetchCompleted) isEvent()    {}
func (SaveCompleted) isEvent()     {}

// CommandKind identifies the background operation to run
type CommandKind string

const (
	CommandFetch CommandKind = "fetch"
	CommandSave  CommandKind = "save"
)

// Command is a background operation requested by a transition. Its result
// must be delivered back as exactly one completion event carrying OpID.
type Command struct {
	Kind  CommandKind
	OpID  string
	Image *model.DogImage // set for CommandSave
}

// newOperationID generates a unique operation ID using UUID v7
func newOperationID(prefix string) string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(prefix+"%d", time.Now().UnixNano())
	}
	return prefix + id.String()
}
