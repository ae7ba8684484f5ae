package model

// ViewStatus represents which screen the application is showing
type ViewStatus string

const (
	// ViewStatusLoading means a random image is being fetched
	ViewStatusLoading ViewStatus = "Loading"

	// ViewStatusLoaded means an image is on screen and can be saved
	ViewStatusLoaded ViewStatus = "Loaded"

	// ViewStatusErrored means the last fetch or save failed
	ViewStatusErrored ViewStatus = "Errored"

	// ViewStatusSaving means the current image is being written to disk
	ViewStatusSaving ViewStatus = "Saving"

	// ViewStatusSaved means the image was written successfully
	ViewStatusSaved ViewStatus = "Saved"
)

// String returns the string representation of ViewStatus
func (vs ViewStatus) String() string {
	return string(vs)
}

// IsBusy returns true while a background operation owns the state
func (vs ViewStatus) IsBusy() bool {
	return vs == ViewStatusLoading || vs == ViewStatusSaving
}

// CanSave returns true if a save may be started from this status
func (vs ViewStatus) CanSave() bool {
	return vs == ViewStatusLoaded
}
