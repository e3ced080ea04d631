// Package debug is an opt-in file logger for chasing MIDI traffic
// problems without disturbing the terminal UI.
package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

var (
	mu      sync.Mutex
	file    *os.File
	enabled bool
)

func logPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "apc-mini", "debug.log")
}

// Enable starts debug logging to ~/.config/apc-mini/debug.log.
func Enable() error {
	mu.Lock()
	defer mu.Unlock()

	if enabled {
		return nil
	}

	path := logPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}

	file = f
	enabled = true
	write("debug", "=== debug logging started ===")
	return nil
}

// Disable stops debug logging.
func Disable() {
	mu.Lock()
	defer mu.Unlock()

	if file != nil {
		file.Close()
		file = nil
	}
	enabled = false
}

// Log writes one line to the debug log. Cheap no-op when disabled.
func Log(category, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	if !enabled || file == nil {
		return
	}
	write(category, fmt.Sprintf(format, args...))
}

// write assumes mu is held.
func write(category, msg string) {
	ts := time.Now().Format("15:04:05.000")
	fmt.Fprintf(file, "[%s] %-8s %s\n", ts, category, msg)
	file.Sync() // flush immediately so logs survive a crash
}

var counters = make(map[string]int)

// LogEvery logs only every n-th call with the same category+format, for
// high-frequency events like slider moves.
func LogEvery(n int, category, format string, args ...any) {
	mu.Lock()
	key := category + format
	counters[key]++
	count := counters[key]
	mu.Unlock()

	if count%n == 0 {
		Log(category, format+" (count=%d)", append(args, count)...)
	}
}
