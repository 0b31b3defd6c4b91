// SPDX-License-Identifier: Unlicense OR MIT

// Command eglprobe creates and tears down a replay context against the
// driver installed on the machine and reports what it negotiated.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gioui.org/x/eglreplay/internal/egl"
	"gioui.org/x/eglreplay/platform"
)

var (
	configPath = flag.String("config", "", "YAML configuration file")
	verbose    = flag.Bool("v", false, "log at debug level")
)

func main() {
	flag.Parse()
	if err := mainErr(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "eglprobe: %v\n", err)
		os.Exit(1)
	}
}

func mainErr(w io.Writer) error {
	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	level, err := cfg.level()
	if err != nil {
		return err
	}
	if *verbose {
		level = slog.LevelDebug
	}
	platform.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	p, err := openPlatform(cfg)
	if err != nil {
		return err
	}
	return probe(w, p, cfg)
}

func openPlatform(cfg Config) (platform.Platform, error) {
	if cfg.Backend == "egl" && len(cfg.Libraries) > 0 {
		return platform.NewEGL(egl.NewTable(egl.NativeLoader(), cfg.Libraries...)), nil
	}
	return platform.Open(cfg.Backend)
}

func probe(w io.Writer, p platform.Platform, cfg Config) error {
	if !p.PopulateForReplay() {
		return errors.New("driver entry points missing")
	}
	status, replay := p.InitialiseAPI()
	fmt.Fprintf(w, "status: %v\n", status)
	if status != platform.Succeeded {
		return fmt.Errorf("initialisation failed: %v", status)
	}
	defer p.DestroyReplayContext(replay)

	if e, ok := p.(*platform.EGL); ok {
		fmt.Fprintf(w, "egl version: %v\n", e.DriverVersion())
		fmt.Fprintf(w, "egl extensions: %d\n", len(e.Extensions()))
	}
	fmt.Fprintf(w, "context version: %v\n", replay.Version)
	width, height := p.QueryDimensions(replay)
	fmt.Fprintf(w, "replay surface: %dx%d\n", width, height)

	if !p.Activate(replay) {
		return errors.New("couldn't activate the replay context")
	}
	for _, name := range cfg.Functions {
		fmt.Fprintf(w, "%s: %#x\n", name, p.ReplayFunction(name))
	}

	if cfg.OutputContext {
		out := p.MakeOutputWindow(platform.NoWindow{}, false, replay)
		if out.Context == 0 || out.Surface == 0 {
			p.DestroyContext(out)
			return errors.New("couldn't create an output context")
		}
		width, height := p.QueryDimensions(out)
		fmt.Fprintf(w, "output surface: %dx%d (version %v)\n", width, height, out.Version)
		p.Present(out)
		p.DestroyContext(out)
	}
	return nil
}
