package server

import (
	"fmt"
	"log"
	"strings"
	"sync/atomic"
	"time"
)

// Console message levels
const (
	levelInfo    = "info"
	levelWarning = "warning"
	levelError   = "error"
)

// ConsoleMessage is one line of render output forwarded to a streaming client
type ConsoleMessage struct {
	RenderID  string    `json:"renderId"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"`
}

// WebLogger is the core.Logger of a single web render. Every line goes to the
// server log tagged with the render ID; when a console channel is set the line
// is also offered to the client without ever blocking the render.
type WebLogger struct {
	renderID    string
	consoleChan chan<- ConsoleMessage
	dropped     atomic.Int64
}

// NewWebLogger creates a logger for renderID. consoleChan may be nil.
func NewWebLogger(renderID string, consoleChan chan<- ConsoleMessage) *WebLogger {
	return &WebLogger{
		renderID:    renderID,
		consoleChan: consoleChan,
	}
}

// Printf implements core.Logger
func (wl *WebLogger) Printf(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	level := messageLevel(message)

	line := strings.TrimRight(message, "\n")
	if level != levelInfo {
		line = strings.ToUpper(level) + ": " + line
	}
	log.Printf("[%s] %s", wl.renderID, line)

	if wl.consoleChan == nil {
		return
	}
	select {
	case wl.consoleChan <- ConsoleMessage{
		RenderID:  wl.renderID,
		Message:   message,
		Timestamp: time.Now(),
		Level:     level,
	}:
	default:
		wl.dropped.Add(1)
	}
}

// Dropped returns how many lines did not fit in the console channel
func (wl *WebLogger) Dropped() int {
	return int(wl.dropped.Load())
}

// messageLevel classifies a renderer log line by its wording
func messageLevel(message string) string {
	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "error") || strings.Contains(lower, "failed"):
		return levelError
	case strings.Contains(lower, "warning") || strings.Contains(lower, "cancelled"):
		return levelWarning
	default:
		return levelInfo
	}
}
