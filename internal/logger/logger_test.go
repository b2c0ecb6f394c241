package logger

import (
	"testing"

	"go.uber.org/zap"
)

func TestLogIsUsableBeforeInit(t *testing.T) {
	if Log == nil {
		t.Fatal("Log should default to a no-op logger")
	}
	Log.Info("not initialized yet")
}

func TestInitWithOptions(t *testing.T) {
	InitWithOptions(true, "debug")
	defer func() { Log = zap.NewNop() }()

	if Log == nil {
		t.Fatal("InitWithOptions left Log nil")
	}
	if !Log.Core().Enabled(zap.DebugLevel) {
		t.Error("debug level should be enabled")
	}
}

func TestSetLevel(t *testing.T) {
	if err := SetLevel("warn"); err != nil {
		t.Fatalf("SetLevel(warn) failed: %v", err)
	}
	if level.Enabled(zap.InfoLevel) {
		t.Error("info should be disabled at warn level")
	}

	if err := SetLevel("loud"); err == nil {
		t.Error("SetLevel should reject unknown levels")
	}
	_ = SetLevel("info")
}
