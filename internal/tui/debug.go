package tui

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/weekhead/internal/header"
)

// DebugLogger logs TUI events to a file as JSON lines.
type DebugLogger struct {
	mu      sync.Mutex
	file    *os.File
	enabled bool
	seq     int
}

// Global debug logger instance
var debugLog *DebugLogger

// DebugLogPath is the default path for debug logs
const DebugLogPath = "weekhead-debug.log"

// InitDebugLogger initializes the debug logger if debug mode is enabled.
// An empty path uses DebugLogPath.
func InitDebugLogger(enabled bool, path string) error {
	if !enabled {
		debugLog = &DebugLogger{enabled: false}
		return nil
	}

	if path == "" {
		path = DebugLogPath
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating debug log: %w", err)
	}

	debugLog = &DebugLogger{
		file:    f,
		enabled: true,
	}

	debugLog.log("DEBUG_START", map[string]any{
		"log_file": path,
		"time":     time.Now().Format(time.RFC3339),
	})

	return nil
}

// CloseDebugLogger closes the debug log file.
func CloseDebugLogger() {
	if debugLog != nil && debugLog.file != nil {
		debugLog.log("DEBUG_END", map[string]any{
			"time": time.Now().Format(time.RFC3339),
		})
		_ = debugLog.file.Close()
		debugLog.file = nil
	}
}

// log writes a structured log entry.
func (d *DebugLogger) log(event string, data map[string]any) {
	if d == nil || !d.enabled || d.file == nil {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	entry := map[string]any{
		"seq":   d.seq,
		"ts":    time.Now().Format("15:04:05.000"),
		"event": event,
	}
	for k, v := range data {
		entry[k] = v
	}

	b, _ := json.Marshal(entry)
	_, _ = fmt.Fprintf(d.file, "%s\n", b)
}

// LogKeyPress logs a key press event.
func LogKeyPress(msg tea.KeyMsg) {
	if debugLog == nil || !debugLog.enabled {
		return
	}
	debugLog.log("KEY_PRESS", map[string]any{
		"key": msg.String(),
	})
}

// LogHeaderBuilt logs a rebuilt header.
func LogHeaderBuilt(selected time.Time, localeID string, h header.Header) {
	if debugLog == nil || !debugLog.enabled {
		return
	}
	first, last := "", ""
	if n := len(h.Columns); n > 0 {
		first = h.Columns[0].Date.Format("2006-01-02")
		last = h.Columns[n-1].Date.Format("2006-01-02")
	}
	debugLog.log("HEADER_BUILT", map[string]any{
		"selected": selected.Format("2006-01-02"),
		"days":     h.DayCount.Int(),
		"locale":   localeID,
		"first":    first,
		"last":     last,
		"today":    h.TodayIndex(),
	})
}

// LogError logs an error with context.
func LogError(context string, err error) {
	if debugLog == nil || !debugLog.enabled || err == nil {
		return
	}
	debugLog.log("ERROR", map[string]any{
		"context": context,
		"error":   err.Error(),
	})
}
