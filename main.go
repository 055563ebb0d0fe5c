/*
Spins three nested cubes. By default a window is opened; with
-backend=software the frames are rendered headless into PNG files.
*/
package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/spincube/engine"
	"github.com/spaghettifunk/spincube/engine/config"
	"github.com/spaghettifunk/spincube/engine/core"
	"github.com/spaghettifunk/spincube/game"
)

func main() {
	configPath := flag.String("config", "", "TOML configuration file, reloaded when it changes")
	backend := flag.String("backend", "", "renderer backend: window or software")
	frames := flag.Uint64("frames", 0, "stop after this many frames (0 runs until closed)")
	out := flag.String("out", "", "directory for software rendered frames")
	flag.Parse()

	cfg := config.Default()
	var watcher *config.Watcher
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			core.LogFatal("loading configuration: %s", err)
		}
		if watcher, err = config.NewWatcher(*configPath); err != nil {
			core.LogWarn("configuration will not be reloaded: %s", err)
			watcher = nil
		}
	}

	// Command line flags win over the file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "backend":
			cfg.Output.Backend = *backend
		case "frames":
			cfg.Output.Frames = *frames
		case "out":
			cfg.Output.Directory = *out
		}
	})

	g := game.NewCubeGame(cfg)

	e, err := engine.New(g.Game, watcher)
	if err != nil {
		panic(err)
	}

	if err := e.Initialize(); err != nil {
		panic(err)
	}

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	go func() {
		// capture sigterm and other system call here
		<-sigCh
		e.Stop()
	}()

	runErr := e.Run()
	if err := e.Shutdown(); err != nil {
		core.LogError("shutdown: %s", err)
	}
	if runErr != nil {
		core.LogFatal("%s", runErr)
	}
}
