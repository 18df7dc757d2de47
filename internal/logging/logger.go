package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

// Level represents logging severity.
type Level int

const (
	// LevelDebug includes detailed debugging information.
	LevelDebug Level = iota
	// LevelInfo includes standard operational information.
	LevelInfo
	// LevelWarn includes warnings about potential issues.
	LevelWarn
	// LevelError includes only error messages.
	LevelError
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel parses a log level string.
func ParseLevel(s string) (Level, error) {
	switch s {
	case "debug", "DEBUG":
		return LevelDebug, nil
	case "info", "INFO", "":
		return LevelInfo, nil
	case "warn", "WARN", "warning", "WARNING":
		return LevelWarn, nil
	case "error", "ERROR":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("invalid log level: %s", s)
	}
}

// Logger provides structured logging for the tray process.
type Logger struct {
	mu       sync.Mutex
	writer   io.Writer
	level    Level
	jsonMode bool

	// For log rotation
	filePath    string
	maxSize     int64 // bytes
	currentSize int64
}

// Config configures the logger.
type Config struct {
	Level    Level
	FilePath string
	JSONMode bool
	MaxSize  int64 // Max file size before rotation (0 = no rotation)
}

// New creates a new Logger.
func New(cfg Config) (*Logger, error) {
	l := &Logger{
		level:    cfg.Level,
		jsonMode: cfg.JSONMode,
		filePath: cfg.FilePath,
		maxSize:  cfg.MaxSize,
	}

	if cfg.FilePath != "" {
		// Ensure directory exists
		dir := filepath.Dir(cfg.FilePath)
		if err := os.MkdirAll(dir, 0700); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}

		f, err := os.OpenFile(cfg.FilePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}

		// Get current file size
		if info, err := f.Stat(); err == nil {
			l.currentSize = info.Size()
		}

		l.writer = f
		l.filePath = cfg.FilePath
	} else {
		l.writer = os.Stderr
	}

	return l, nil
}

// Close closes the logger.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if f, ok := l.writer.(*os.File); ok && f != os.Stderr && f != os.Stdout {
		return f.Close()
	}
	return nil
}

// logEntry represents a JSON log entry.
type logEntry struct {
	Time    string      `json:"time"`
	Level   string      `json:"level"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func (l *Logger) log(level Level, msg string, data interface{}) {
	if level < l.level {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	timestamp := time.Now().Format(time.RFC3339)

	var line string
	if l.jsonMode {
		entry := logEntry{
			Time:    timestamp,
			Level:   level.String(),
			Message: msg,
			Data:    data,
		}
		b, err := json.Marshal(entry)
		if err != nil {
			// Fall back to simple format if JSON marshal fails
			line = fmt.Sprintf("%s [%s] %s\n", timestamp, level.String(), msg)
		} else {
			line = string(b) + "\n"
		}
	} else {
		if data != nil {
			line = fmt.Sprintf("%s [%s] %s %v\n", timestamp, level.String(), msg, data)
		} else {
			line = fmt.Sprintf("%s [%s] %s\n", timestamp, level.String(), msg)
		}
	}

	// Check if rotation needed
	if l.maxSize > 0 && l.filePath != "" {
		l.currentSize += int64(len(line))
		if l.currentSize > l.maxSize {
			l.rotate()
		}
	}

	if _, err := l.writer.Write([]byte(line)); err != nil {
		// Log write errors are non-fatal, but we can't do much about them
		_ = err
	}
}

func (l *Logger) rotate() {
	// Close current file
	if f, ok := l.writer.(*os.File); ok {
		_ = f.Close()
	}

	// Rename current file with timestamp
	rotatedPath := l.filePath + "." + time.Now().Format("20060102-150405")
	if err := os.Rename(l.filePath, rotatedPath); err != nil {
		// Log rotation failure is non-fatal
		_ = err
	}

	// Open new file
	f, err := os.OpenFile(l.filePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		// Fall back to stderr
		l.writer = os.Stderr
		return
	}

	l.writer = f
	l.currentSize = 0

	// Clean up old rotated files (keep last 5)
	l.cleanupOldLogs()
}

func (l *Logger) cleanupOldLogs() {
	dir := filepath.Dir(l.filePath)
	base := filepath.Base(l.filePath)
	pattern := base + ".*"

	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		// Glob failure is non-fatal
		return
	}
	if len(matches) <= 5 {
		return
	}

	// Sort to get oldest first
	sort.Strings(matches)

	// Remove oldest files, keeping last 5
	for i := 0; i < len(matches)-5; i++ {
		_ = os.Remove(matches[i])
	}
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, data ...interface{}) {
	var d interface{}
	if len(data) > 0 {
		d = data[0]
	}
	l.log(LevelDebug, msg, d)
}

// Info logs an info message.
func (l *Logger) Info(msg string, data ...interface{}) {
	var d interface{}
	if len(data) > 0 {
		d = data[0]
	}
	l.log(LevelInfo, msg, d)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, data ...interface{}) {
	var d interface{}
	if len(data) > 0 {
		d = data[0]
	}
	l.log(LevelWarn, msg, d)
}

// Error logs an error message.
func (l *Logger) Error(msg string, data ...interface{}) {
	var d interface{}
	if len(data) > 0 {
		d = data[0]
	}
	l.log(LevelError, msg, d)
}

// GetLevel returns the current log level.
func (l *Logger) GetLevel() Level {
	return l.level
}

// SetLevel sets the log level.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}
