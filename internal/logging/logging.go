package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultLogFile = "lcdmenu.log"

// LevelEnvVar selects the minimum level written by Error, Warn, Info and
// Debug. Tracing is controlled separately by SetTraceEnabled.
const LevelEnvVar = "LCDMENU_LOG_LEVEL"

var (
	mu           sync.Mutex
	traceEnabled bool
	logPath      = defaultLogFile
	level        = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	logger       *zap.Logger
	tracer       *zap.Logger
)

// Configure sets the log destination. Empty values fall back to the default
// path. Directories are created automatically when missing.
func Configure(path string) {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
	if strings.TrimSpace(path) == "" {
		logPath = defaultLogFile
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
		logPath = defaultLogFile
		return
	}
	logPath = path
}

// SetLevel parses one of debug, info, warn or error. An empty string
// consults LevelEnvVar and otherwise keeps the current level.
func SetLevel(name string) error {
	if name == "" {
		name = os.Getenv(LevelEnvVar)
	}
	if name == "" {
		return nil
	}
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(strings.ToLower(name))); err != nil {
		return fmt.Errorf("log level %q: %w", name, err)
	}
	level.SetLevel(l)
	return nil
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	mu.Lock()
	traceEnabled = enabled
	mu.Unlock()
}

// TraceEnabled reports whether Trace writes anything.
func TraceEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return traceEnabled
}

// Trace appends a structured JSON entry to the shared log when tracing is enabled.
func Trace(event string, payload interface{}) {
	mu.Lock()
	enabled := traceEnabled
	mu.Unlock()
	if !enabled {
		return
	}
	fields := []zap.Field{zap.String("event", event)}
	if payload != nil {
		fields = append(fields, zap.Any("payload", payload))
	}
	traceLogger().Debug("trace", fields...)
}

// Error writes err to the shared log.
func Error(err error) {
	if err == nil {
		return
	}
	Logger().Error(err.Error())
}

// Warn logs msg at warn level.
func Warn(msg string, fields ...zap.Field) {
	Logger().Warn(msg, fields...)
}

// Info logs msg at info level.
func Info(msg string, fields ...zap.Field) {
	Logger().Info(msg, fields...)
}

// Debug logs msg at debug level.
func Debug(msg string, fields ...zap.Field) {
	Logger().Debug(msg, fields...)
}

// Logger returns the level-filtered logger writing to the configured file.
func Logger() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		logger = buildLocked(level)
	}
	return logger
}

// Sync flushes buffered entries.
func Sync() {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
}

func traceLogger() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	if tracer == nil {
		tracer = buildLocked(zap.NewAtomicLevelAt(zapcore.DebugLevel))
	}
	return tracer
}

func buildLocked(lvl zap.AtomicLevel) *zap.Logger {
	encoder := zap.NewProductionEncoderConfig()
	encoder.TimeKey = "time"
	encoder.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg := zap.Config{
		Level:            lvl,
		Encoding:         "json",
		EncoderConfig:    encoder,
		OutputPaths:      []string{logPath},
		ErrorOutputPaths: []string{"stderr"},
	}
	l, err := cfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging failed: %v\n", err)
		return zap.NewNop()
	}
	return l
}

func closeLocked() {
	if logger != nil {
		_ = logger.Sync()
		logger = nil
	}
	if tracer != nil {
		_ = tracer.Sync()
		tracer = nil
	}
}
