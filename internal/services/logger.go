// File: internal/services/logger.go
package services

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"
)

// Logger is the common structured logging interface for all services.
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
}

// LogLevel represents the logging threshold.
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// StandardLogger writes leveled key/value logs, as JSON in production and
// plaintext elsewhere.
type StandardLogger struct {
	logger     *log.Logger
	level      LogLevel
	service    string
	structured bool
}

// NewStandardLogger creates a logger for the named service.
func NewStandardLogger(service string, level LogLevel, structured bool) *StandardLogger {
	return &StandardLogger{
		logger:     log.New(os.Stdout, "", 0),
		level:      level,
		service:    service,
		structured: structured,
	}
}

func (p *StandardLogger) Info(msg string, keysAndValues ...interface{}) {
	if p.level <= LogLevelInfo {
		p.log(LogLevelInfo, msg, keysAndValues...)
	}
}

func (p *StandardLogger) Warn(msg string, keysAndValues ...interface{}) {
	if p.level <= LogLevelWarn {
		p.log(LogLevelWarn, msg, keysAndValues...)
	}
}

func (p *StandardLogger) Error(msg string, keysAndValues ...interface{}) {
	if p.level <= LogLevelError {
		p.log(LogLevelError, msg, keysAndValues...)
	}
}

func (p *StandardLogger) Debug(msg string, keysAndValues ...interface{}) {
	if p.level <= LogLevelDebug {
		p.log(LogLevelDebug, msg, keysAndValues...)
	}
}

func (p *StandardLogger) log(level LogLevel, msg string, keysAndValues ...interface{}) {
	timestamp := time.Now().UTC().Format(time.RFC3339)

	if p.structured {
		entry := map[string]interface{}{
			"timestamp": timestamp,
			"level":     level.String(),
			"service":   p.service,
			"message":   msg,
		}
		if len(keysAndValues) > 1 {
			fields := make(map[string]interface{})
			for i := 0; i+1 < len(keysAndValues); i += 2 {
				if key, ok := keysAndValues[i].(string); ok {
					fields[key] = fmt.Sprintf("%v", keysAndValues[i+1])
				}
			}
			if len(fields) > 0 {
				entry["fields"] = fields
			}
		}
		line, _ := json.Marshal(entry)
		p.logger.Println(string(line))
		return
	}

	var kv strings.Builder
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		kv.WriteString(fmt.Sprintf(" %v=%v", keysAndValues[i], keysAndValues[i+1]))
	}
	p.logger.Printf("[%s] %s [%s] %s%s", timestamp, level.String(), p.service, msg, kv.String())
}

// NoOpLogger discards everything; used in tests.
type NoOpLogger struct{}

func (NoOpLogger) Info(msg string, keysAndValues ...interface{})  {}
func (NoOpLogger) Warn(msg string, keysAndValues ...interface{})  {}
func (NoOpLogger) Error(msg string, keysAndValues ...interface{}) {}
func (NoOpLogger) Debug(msg string, keysAndValues ...interface{}) {}

// NewLogger builds a logger from the GO_ENV and LOG_LEVEL environment
// variables: JSON output in production, silence under test.
func NewLogger(service string) Logger {
	env := os.Getenv("GO_ENV")
	if env == "test" {
		return NoOpLogger{}
	}

	level := LogLevelInfo
	switch strings.ToUpper(os.Getenv("LOG_LEVEL")) {
	case "DEBUG":
		level = LogLevelDebug
	case "WARN":
		level = LogLevelWarn
	case "ERROR":
		level = LogLevelError
	}

	return NewStandardLogger(service, level, env == "production")
}
