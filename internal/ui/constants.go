package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
)

// Text fragments
const (
	TitleSeparator = " - "
)

// Layout sizing
const (
	WindowWidth  float32 = 650
	WindowHeight float32 = 450

	ImageMinWidth  float32 = 500
	ImageMinHeight float32 = 320

	StatusTextSize float32 = 28
)
