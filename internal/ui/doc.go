// Package ui provides the user interface components for the newsdesk TUI.
//
// # Overview
//
// The ui package implements the visual components of newsdesk using the Bubble Tea
// framework and Lipgloss styling library. It follows the Model-Update-View pattern
// established by Bubble Tea.
//
// # Layout System
//
// The layout is organized as follows:
//
//	┌─────────────────────────────────────────────────────┐
//	│ Header (1 line)                                     │
//	│ Tab bar (1 line)                  ✺ Loading...      │
//	├─────────────────────────────────────────────────────┤
//	│                                                     │
//	│       Active panel: Chat | Summary | Search | News  │
//	│                                                     │
//	├─────────────────────────────────────────────────────┤
//	│ Footer (1 line)                                     │
//	└─────────────────────────────────────────────────────┘
//
// # Components
//
// ViewContext: Singleton that manages centralized layout calculations.
// All size calculations should go through ViewContext to ensure consistency.
//
// Screen: Owns every component below and is the write target of the app
// controller. It activates exactly one tab at a time.
//
// Header: Displays the application title, the backend URL and the chat
// session identifier on a gradient background.
//
// TabBar: The four tabs plus the loading indicator on the right.
//
// Footer: Shows the shortcuts of the active tab, or a transient flash message.
//
// Chat, Summary, Search, News: one panel per tab. Search results and news
// articles are rendered as selectable cards.
//
// Modal: Popup dialogs whose states live in the modals subpackage (alert,
// search options, settings, help).
//
// # Styles
//
// All styles are derived from the active Theme in styles.go and rebuilt by
// SetTheme. The default palette is dark purple with cyan accents.
package ui
