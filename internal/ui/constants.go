// Package ui provides constants for layout calculations and configuration.
package ui

import "time"

// Layout constants for panel sizing
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// TabBarHeight is the height of the tab bar below the header
	TabBarHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// TextareaHeight is the number of lines for the chat input textarea
	TextareaHeight = 3

	// TextareaBorderHeight is the border size around the textarea
	TextareaBorderHeight = 2

	// InputPaddingWidth is the horizontal padding inside the input area (Padding(0, 1) = 1 left + 1 right)
	InputPaddingWidth = 2

	// InputTotalHeight is the total height of the input area (textarea + borders)
	InputTotalHeight = TextareaHeight + TextareaBorderHeight

	// SearchInputHeight is the height of the bordered single-line search box
	SearchInputHeight = 1 + TextareaBorderHeight

	// StatusLineHeight is the height of a panel's one-line status row
	StatusLineHeight = 1

	// DefaultWrapWidth is the default width for text wrapping when viewport width is unknown
	DefaultWrapWidth = 80

	// MinTerminalWidth and MinTerminalHeight keep layout math non-negative
	MinTerminalWidth  = 40
	MinTerminalHeight = 12
)

// Modal dimensions
const (
	// ModalWidth is the default width of modals
	ModalWidth = 60

	// ModalWidthWide is used by modals with wider forms
	ModalWidthWide = 80
)

// Chat limits
const (
	// ChatInputCharLimit caps a single chat message; 0 means unlimited
	ChatInputCharLimit = 0

	// SearchInputCharLimit caps the search query length
	SearchInputCharLimit = 256

	// MaxSuggestions is the number of suggestion shortcuts (alt+1 .. alt+4)
	MaxSuggestions = 4
)

// Animation timing
const (
	// SpinnerInterval is the delay between loading spinner frames
	SpinnerInterval = 120 * time.Millisecond

	// DefaultFlashDuration is how long a footer flash message stays visible
	DefaultFlashDuration = 3 * time.Second
)
