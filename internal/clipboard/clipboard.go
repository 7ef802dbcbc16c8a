// Package clipboard copies article links to the system clipboard.
package clipboard

import (
	"fmt"
	"sync"

	"golang.design/x/clipboard"

	"github.com/zhubert/newsdesk/internal/logger"
)

var (
	mu          sync.Mutex
	initialized bool
	initFn      = clipboard.Init
	writeFn     = func(b []byte) { clipboard.Write(clipboard.FmtText, b) }
	readFn      = func() []byte { return clipboard.Read(clipboard.FmtText) }
)

// Init initializes the clipboard. Safe to call multiple times.
func Init() error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked()
}

func initLocked() error {
	if initialized {
		return nil
	}
	if err := initFn(); err != nil {
		logger.Warn("Clipboard: Failed to initialize: %v", err)
		return fmt.Errorf("failed to initialize clipboard: %w", err)
	}
	initialized = true
	logger.Log("Clipboard: Initialized successfully")
	return nil
}

// WriteText places text on the clipboard.
func WriteText(text string) error {
	mu.Lock()
	defer mu.Unlock()

	if err := initLocked(); err != nil {
		return err
	}
	writeFn([]byte(text))
	logger.Log("Clipboard: Wrote %d bytes of text", len(text))
	return nil
}

// ReadText reads text from the clipboard.
func ReadText() (string, error) {
	mu.Lock()
	defer mu.Unlock()

	if err := initLocked(); err != nil {
		return "", err
	}
	return string(readFn()), nil
}

// SetBackend replaces the system clipboard, e.g. with an in-memory one.
func SetBackend(initialize func() error, write func([]byte), read func() []byte) {
	mu.Lock()
	defer mu.Unlock()
	initFn, writeFn, readFn = initialize, write, read
	initialized = false
}

// ResetBackend restores the system clipboard.
func ResetBackend() {
	mu.Lock()
	defer mu.Unlock()
	initFn = clipboard.Init
	writeFn = func(b []byte) { clipboard.Write(clipboard.FmtText, b) }
	readFn = func() []byte { return clipboard.Read(clipboard.FmtText) }
	initialized = false
}
