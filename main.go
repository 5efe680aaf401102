package main

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"goxel/app"
	"goxel/config"
	"goxel/engine"
	"goxel/hal"
	"goxel/hal/host"
	"goxel/internal/buildinfo"
	"goxel/internal/logging"
	"goxel/internal/options"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := options.Parse(args, os.Stdout, os.Stderr)
	if err != nil {
		var exit *options.ExitError
		if errors.As(err, &exit) {
			return exit.Code
		}
		fmt.Fprintln(os.Stderr, err)
		return -1
	}

	prefs, err := config.Load(config.Source{})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	log, err := logging.New(logging.Options{Level: prefs.LogLevel, Development: buildinfo.Debug})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer func() { _ = log.Sync() }()

	eng := engine.New(engine.Options{Log: log, Confirm: confirmQuit})
	if cfg.Export != "" {
		return app.RunBatch(cfg, eng, log)
	}

	return host.Run(func(p hal.Platform) int {
		code, err := app.RunInteractive(p, app.Setup{
			Config: cfg,
			Prefs:  prefs,
			Engine: eng,
			Log:    log,
			Debug:  buildinfo.Debug,
		})
		if err != nil {
			log.Fatal("start", zap.Error(err))
		}
		return code
	})
}
