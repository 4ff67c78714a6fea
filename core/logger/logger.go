package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorPurple = "\033[35m"
	colorWhite  = "\033[37m"
	colorGray   = "\033[90m"
)

type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
	FATAL
)

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

func (l LogLevel) color() string {
	switch l {
	case DEBUG:
		return colorGray
	case INFO:
		return colorBlue
	case WARN:
		return colorYellow
	case ERROR:
		return colorRed
	case FATAL:
		return colorPurple
	default:
		return colorWhite
	}
}

type leveledLogger struct {
	mu      sync.RWMutex
	verbose bool
	writers []io.Writer
	colored bool
}

var global = &leveledLogger{
	writers: []io.Writer{os.Stdout},
	colored: true,
}

// SetVerbose enables DEBUG output; everything else is always emitted.
func SetVerbose(verbose bool) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.verbose = verbose
}

func IsVerbose() bool {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.verbose
}

// AddWriter appends an additional log sink, e.g. a --logfile handle.
func AddWriter(w io.Writer) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.writers = append(global.writers, w)
}

// SetWriter replaces all sinks. Used by tests to capture output.
func SetWriter(w io.Writer) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.writers = []io.Writer{w}
}

// SetColored toggles ANSI colors, for non-terminal sinks.
func SetColored(colored bool) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.colored = colored
}

func (ll *leveledLogger) format(level LogLevel, message string) string {
	ts := time.Now().Format("06-01-02 15:04:05")
	if !ll.colored {
		return fmt.Sprintf("[%s] %-5s %s\n", ts, level.String(), message)
	}
	return fmt.Sprintf(
		"%s[%s]%s %s%-5s%s %s\n",
		colorGray, ts, colorReset,
		level.color(), level.String(), colorReset,
		message,
	)
}

func (ll *leveledLogger) log(level LogLevel, format string, args ...interface{}) {
	ll.mu.RLock()
	if level == DEBUG && !ll.verbose {
		ll.mu.RUnlock()
		return
	}
	line := ll.format(level, fmt.Sprintf(format, args...))
	writers := ll.writers
	ll.mu.RUnlock()

	for _, w := range writers {
		fmt.Fprint(w, line)
	}

	if level == FATAL {
		os.Exit(1)
	}
}

func Debug(format string, args ...interface{}) {
	global.log(DEBUG, format, args...)
}

func Info(format string, args ...interface{}) {
	global.log(INFO, format, args...)
}

func Warn(format string, args ...interface{}) {
	global.log(WARN, format, args...)
}

func Error(format string, args ...interface{}) {
	global.log(ERROR, format, args...)
}

func Fatal(format string, args ...interface{}) {
	global.log(FATAL, format, args...)
}
