package logger

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// Logger is a slog.Logger that writes text records to stderr and a log file, and keeps the
// most recent records in memory so the on-screen overlay can show them.
type Logger struct {
	*slog.Logger
	file *os.File
	mem  *lineBuffer
}

// New opens (appending) the log file at path, creating its directory, and returns a logger at level.
// An empty path logs to stderr and memory only.
func New(path string, level slog.Level) (*Logger, error) {
	return newLogger(os.Stderr, path, level)
}

func newLogger(console io.Writer, path string, level slog.Level) (*Logger, error) {
	l := &Logger{mem: &lineBuffer{buf: make([]string, maxLines)}}
	writers := []io.Writer{console, l.mem}
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		l.file = f
		writers = append(writers, f)
	}
	h := slog.NewTextHandler(io.MultiWriter(writers...), &slog.HandlerOptions{Level: level})
	l.Logger = slog.New(h)
	return l, nil
}

// Lines returns a copy of the retained records, oldest first, one per line.
func (l *Logger) Lines() []string {
	return l.mem.lines()
}

// Close closes the log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

// maxLines is how many records the in-memory buffer retains.
const maxLines = 256

// lineBuffer is a ring of the last maxLines records. slog handlers write one record per call.
type lineBuffer struct {
	mu   sync.Mutex
	buf  []string
	next int
	full bool
}

func (b *lineBuffer) Write(p []byte) (int, error) {
	line := string(bytes.TrimRight(p, "\n"))
	b.mu.Lock()
	b.buf[b.next] = line
	b.next = (b.next + 1) % len(b.buf)
	if b.next == 0 {
		b.full = true
	}
	b.mu.Unlock()
	return len(p), nil
}

func (b *lineBuffer) lines() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.full {
		return append([]string(nil), b.buf[:b.next]...)
	}
	out := make([]string, 0, len(b.buf))
	out = append(out, b.buf[b.next:]...)
	return append(out, b.buf[:b.next]...)
}
