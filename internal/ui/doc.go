package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It renders one view per state of the view state machine and forwards button
// presses to it as triggers. All UI strings are localized via Localization.
