package model

// Package model defines domain data structures used across the app: the
// fetched dog image, the view status enum, and the error kinds surfaced by
// fetch and save. Structures are plain values so the UI can render them
// directly and the state machine can replace them on every transition.
