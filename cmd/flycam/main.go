package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"FlyCam/internal/config"
	"FlyCam/internal/engine"
	"FlyCam/internal/logger"

	"go.uber.org/zap"
)

func init() {
	// GLFW and GL calls must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "flycam:", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to a .yaml, .toml or .json config file")
	watch := flag.Bool("watch", false, "reload camera tuning when the config file changes")
	x := flag.Int("x", -1, "window x position (overrides config)")
	y := flag.Int("y", -1, "window y position (overrides config)")
	level := flag.String("log-level", "", "log level: debug, info, warn, error (overrides config)")
	dev := flag.Bool("dev", false, "human-readable development logging")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	} else if *watch {
		return fmt.Errorf("-watch needs -config")
	}
	if *x >= 0 {
		cfg.Window.X = *x
	}
	if *y >= 0 {
		cfg.Window.Y = *y
	}
	if *level != "" {
		cfg.Log.Level = *level
	}
	if *dev {
		cfg.Log.Development = true
	}

	logger.InitWithOptions(cfg.Log.Development, cfg.Log.Level)
	defer logger.Sync()

	flyCam, err := engine.NewFlyCam(cfg)
	if err != nil {
		return err
	}
	if *watch {
		if err := flyCam.Watch(*configPath); err != nil {
			return err
		}
	}

	if err := flyCam.Run(); err != nil {
		logger.Log.Error("FlyCam stopped", zap.Error(err))
		return err
	}
	logger.Log.Info("FlyCam closed")
	return nil
}
