package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the process-wide logger. It is a no-op logger until Init is called.
var Log = zap.NewNop()

var level = zap.NewAtomicLevelAt(zap.InfoLevel)

// Init builds the production logger at info level.
func Init() {
	InitWithOptions(false, "info")
}

// InitWithOptions builds the global logger. Development mode switches to the
// console encoder with caller and stacktrace on warnings.
func InitWithOptions(development bool, lvl string) {
	cfg := zap.NewProductionConfig()
	if development {
		cfg = zap.NewDevelopmentConfig()
	}
	if err := SetLevel(lvl); err != nil {
		level.SetLevel(zap.InfoLevel)
	}
	cfg.Level = level
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := cfg.Build()
	if err != nil {
		Log = zap.NewExample()
		Log.Warn("Falling back to example logger", zap.Error(err))
		return
	}
	Log = l
}

// SetLevel changes the level of the global logger at runtime.
func SetLevel(lvl string) error {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(lvl)); err != nil {
		return err
	}
	level.SetLevel(l)
	return nil
}

// Sync flushes buffered log entries.
func Sync() {
	_ = Log.Sync()
}
