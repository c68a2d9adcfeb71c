// Package logger provides levelled, prefixed logging for the game.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// LogLevel represents the severity level of a log message
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
	FATAL
)

// String returns the string representation of a LogLevel
func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	case FATAL:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a level name to its LogLevel, ignoring case.
func ParseLevel(s string) (LogLevel, error) {
	for l := DEBUG; l <= FATAL; l++ {
		if strings.EqualFold(l.String(), s) {
			return l, nil
		}
	}
	return INFO, fmt.Errorf("unknown log level %q", s)
}

// Logger writes messages at or above its level with a component prefix.
type Logger struct {
	mu     sync.Mutex
	level  LogLevel
	prefix string
	logger *log.Logger
	exit   func(int)
}

// New creates a Logger writing to stdout.
func New(level LogLevel, prefix string) *Logger {
	return &Logger{
		level:  level,
		prefix: prefix,
		logger: log.New(os.Stdout, "", log.LstdFlags),
		exit:   os.Exit,
	}
}

// SetOutput sets the output destination for the logger
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger.SetOutput(w)
}

// SetLevel sets the minimum log level
func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

func (l *Logger) Enabled(level LogLevel) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return level >= l.level
}

func (l *Logger) log(level LogLevel, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if level < l.level {
		return
	}
	l.logger.Printf("[%s] [%s] %s", level, l.prefix, fmt.Sprintf(format, args...))
	if level == FATAL {
		l.exit(1)
	}
}

func (l *Logger) Debug(format string, args ...any) { l.log(DEBUG, format, args...) }

func (l *Logger) Info(format string, args ...any) { l.log(INFO, format, args...) }

func (l *Logger) Warn(format string, args ...any) { l.log(WARN, format, args...) }

func (l *Logger) Error(format string, args ...any) { l.log(ERROR, format, args...) }

// Fatal logs and exits the process.
func (l *Logger) Fatal(format string, args ...any) { l.log(FATAL, format, args...) }

// Default logger instances for different components
var (
	Game   = New(INFO, "GAME")
	Wave   = New(INFO, "WAVE")
	Tower  = New(INFO, "TOWER")
	Config = New(INFO, "CONFIG")
)

func all() []*Logger { return []*Logger{Game, Wave, Tower, Config} }

// SetGlobalLogLevel sets the log level for all default loggers
func SetGlobalLogLevel(level LogLevel) {
	for _, l := range all() {
		l.SetLevel(level)
	}
}

// SetGlobalOutput redirects all default loggers.
func SetGlobalOutput(w io.Writer) {
	for _, l := range all() {
		l.SetOutput(w)
	}
}
