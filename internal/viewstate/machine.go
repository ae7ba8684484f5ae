package viewstate

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/ytget/random-dog/internal/fetch"
	"github.com/ytget/random-dog/internal/model"
	"github.com/ytget/random-dog/internal/save"
)

// DefaultBacklog is the event queue size used when none is given
const DefaultBacklog = 16

// Machine drives Transition with real fetch and save services
type Machine struct {
	fetcher fetch.Fetcher
	saver   save.Saver
	events  chan Event

	mu       sync.RWMutex
	current  State
	onUpdate func(State) // callback for UI updates

	startOnce sync.Once
	done      chan struct{}
}

// NewMachine creates a machine. It does nothing until Start is called.
func NewMachine(fetcher fetch.Fetcher, saver save.Saver, backlog int) *Machine {
	if backlog < 1 {
		backlog = DefaultBacklog
	}
	return &Machine{
		fetcher: fetcher,
		saver:   saver,
		events:  make(chan Event, backlog),
		done:    make(chan struct{}),
	}
}

// SetUpdateCallback sets the function called after every effective
// transition. It runs on the machine goroutine, except for the initial
// Loading state which is reported from Start.
func (m *Machine) SetUpdateCallback(callback func(State)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onUpdate = callback
}

// State returns the current state
func (m *Machine) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Done is closed when the event loop has exited
func (m *Machine) Done() <-chan struct{} {
	return m.done
}

// Start enters Loading, begins the first fetch and processes events until
// ctx is cancelled. Calling Start more than once has no effect.
func (m *Machine) Start(ctx context.Context) {
	m.startOnce.Do(func() {
		state, cmd := Init()
		m.apply(state)
		go m.run(ctx)
		m.execute(ctx, cmd)
	})
}

// Dispatch queues a user trigger. It never blocks; if the queue is full the
// trigger is dropped, which is what the busy-state guard would do anyway.
func (m *Machine) Dispatch(ev Event) {
	select {
	case m.events <- ev:
	default:
		log.WithField("event", eventName(ev)).Warn("Event queue full, dropping trigger")
	}
}

// RequestNewImage is shorthand for Dispatch(NewImageRequested{})
func (m *Machine) RequestNewImage() {
	m.Dispatch(NewImageRequested{})
}

// RequestSave is shorthand for Dispatch(SaveRequested{})
func (m *Machine) RequestSave() {
	m.Dispatch(SaveRequested{})
}

// run is the single consumer of the event queue
func (m *Machine) run(ctx context.Context) {
	defer close(m.done)
	for {
		select {
		case <-ctx.Done():
			log.Debug("State machine stopped")
			return
		case ev := <-m.events:
			m.handle(ctx, ev)
		}
	}
}

// handle applies one event
func (m *Machine) handle(ctx context.Context, ev Event) {
	current := m.State()
	next, cmd := Transition(current, ev)

	if next.Version == current.Version {
		log.WithFields(log.Fields{
			"event":  eventName(ev),
			"status": current.Status,
		}).Debug("Ignoring event")
		return
	}

	if next.Status == model.ViewStatusErrored {
		log.WithFields(log.Fields{
			"kind":  next.ErrorKind(),
			"after": current.Status,
		}).WithError(next.Err).Warn("Operation failed")
	}

	m.apply(next)
	m.execute(ctx, cmd)
}

// apply stores s and notifies the callback
func (m *Machine) apply(s State) {
	m.mu.Lock()
	m.current = s
	callback := m.onUpdate
	m.mu.Unlock()

	log.WithFields(log.Fields{
		"status":  s.Status,
		"version": s.Version,
	}).Debug("State changed")

	if callback != nil {
		callback(s)
	}
}

// execute runs cmd on its own goroutine and posts its completion
func (m *Machine) execute(ctx context.Context, cmd *Command) {
	if cmd == nil {
		return
	}

	go func() {
		entry := log.WithFields(log.Fields{"op": cmd.OpID, "kind": cmd.Kind})
		entry.Debug("Starting operation")

		switch cmd.Kind {
		case CommandFetch:
			img, err := m.fetcher.Fetch(ctx)
			m.post(ctx, FetchCompleted{OpID: cmd.OpID, Image: img, Err: err})
		case CommandSave:
			path, err := m.saver.Save(ctx, cmd.Image.Bytes, cmd.Image.Breed, cmd.Image.FileName)
			m.post(ctx, SaveCompleted{OpID: cmd.OpID, Path: path, Err: err})
		default:
			entry.Error("Unknown command")
		}
	}()
}

// post delivers a completion event unless the machine is shutting down
func (m *Machine) post(ctx context.Context, ev Event) {
	select {
	case m.events <- ev:
	case <-ctx.Done():
	}
}

func eventName(ev Event) string {
	switch ev.(type) {
	case NewImageRequested:
		return "new_image_requested"
	case SaveRequested:
		return "save_requested"
	case FetchCompleted:
		return "fetch_completed"
	case SaveCompleted:
		return "save_completed"
	default:
		return "unknown"
	}
}
