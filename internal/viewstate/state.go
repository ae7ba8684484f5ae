package viewstate

import (
	"fmt"

	"github.com/ytget/random-dog/internal/model"
)

// State is one immutable snapshot of what the application shows.
// Only the fields relevant to Status are set.
type State struct {
	Status    model.ViewStatus
	Image     *model.DogImage // Loaded, Saving
	Err       error           // Errored
	SavedPath string          // Saved
	Pending   string          // id of the in-flight command while Loading or Saving
	Version   uint64          // incremented by every effective transition
}

// ErrorKind returns the kind of the stored error
func (s State) ErrorKind() model.ErrorKind {
	return model.KindOf(s.Err)
}

// Init returns the first state and the command that starts the first fetch
func Init() (State, *Command) {
	return State{}.startFetch()
}

// Transition computes the state that follows s when ev arrives. Events that
// do not apply to s (user triggers while busy, completions for an operation
// other than the pending one) return s unchanged and no command.
func Transition(s State, ev Event) (State, *Command) {
	switch ev := ev.(type) {
	case NewImageRequested:
		if s.Status.IsBusy() {
			return s, nil
		}
		return s.startFetch()

	case SaveRequested:
		if !s.Status.CanSave() || s.Image == nil {
			return s, nil
		}
		cmd := &Command{Kind: CommandSave, OpID: newOperationID(SaveIDPrefix), Image: s.Image}
		return s.next(State{Status: model.ViewStatusSaving, Image: s.Image, Pending: cmd.OpID}), cmd

	case FetchCompleted:
		if s.Status != model.ViewStatusLoading || ev.OpID != s.Pending {
			return s, nil
		}
		if ev.Err != nil {
			return s.next(State{Status: model.ViewStatusErrored, Err: ev.Err}), nil
		}
		if ev.Image == nil {
			err := fmt.Errorf("%w: fetch returned no image", model.ErrUpstreamProtocol)
			return s.next(State{Status: model.ViewStatusErrored, Err: err}), nil
		}
		return s.next(State{Status: model.ViewStatusLoaded, Image: ev.Image}), nil

	case SaveCompleted:
		if s.Status != model.ViewStatusSaving || ev.OpID != s.Pending {
			return s, nil
		}
		if ev.Err != nil {
			return s.next(State{Status: model.ViewStatusErrored, Err: ev.Err}), nil
		}
		return s.next(State{Status: model.ViewStatusSaved, SavedPath: ev.Path}), nil
	}

	return s, nil
}

func (s State) startFetch() (State, *Command) {
	cmd := &Command{Kind: CommandFetch, OpID: newOperationID(FetchIDPrefix)}
	return s.next(State{Status: model.ViewStatusLoading, Pending: cmd.OpID}), cmd
}

func (s State) next(n State) State {
	n.Version = s.Version + 1
	return n
}
