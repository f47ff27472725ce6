// Command texbake bakes the ambient occlusion of parameter maps into albedo
// textures and re-encodes every texture bundle under a directory tree as PNG.
//
// It parses arguments and the optional config file, validates paths, and
// either runs system diagnostics (-check) or the batch pipeline.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/backmassage/texbake/internal/check"
	"github.com/backmassage/texbake/internal/config"
	"github.com/backmassage/texbake/internal/display"
	"github.com/backmassage/texbake/internal/logging"
	"github.com/backmassage/texbake/internal/pipeline"
)

// Exit codes.
const (
	exitOK           = 0
	exitBadArguments = 1
	exitMissingInput = 2
)

const lockName = ".texbake.lock"

var errLocked = errors.New("another texbake run holds the output lock")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(argv []string, stdout, stderr io.Writer) int {
	// Phase 1: Bootstrap. The logger doesn't exist yet, so errors go
	// directly to stderr.
	if config.HelpRequested(argv) {
		config.PrintUsage(stdout)
		return exitOK
	}
	args, err := config.ParseArgs(argv)
	if err != nil {
		fmt.Fprintf(stderr, "ERROR: Bad command line arguments (%v)\n", err)
		return exitBadArguments
	}
	if args.Help() {
		config.PrintUsage(stdout)
		return exitOK
	}

	cfg := config.DefaultConfig()
	if path := args.ConfigFile(); path != "" {
		if err := config.LoadFile(&cfg, path); err != nil {
			fmt.Fprintf(stderr, "ERROR: %v\n", err)
			return exitBadArguments
		}
	}
	if err := args.Apply(&cfg); err != nil {
		fmt.Fprintf(stderr, "ERROR: Bad command line arguments (%v)\n", err)
		return exitBadArguments
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "ERROR: %v\n", err)
		return exitBadArguments
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(stderr, "ERROR: %v\n", err)
		return exitBadArguments
	}
	defer log.Close()
	log.SetOutput(stdout, stderr)

	// Phase 2: Logger available.
	display.PrintBanner(stdout)
	if path := log.FilePath(); path != "" {
		log.Info("Logging to %s", path)
	}

	if cfg.CheckOnly {
		if !check.RunCheck(&cfg, log) {
			return exitBadArguments
		}
		return exitOK
	}

	if fi, err := os.Stat(cfg.InputDir); err != nil || !fi.IsDir() {
		log.Error("Missing input directory (%s)", cfg.InputDir)
		return exitMissingInput
	}
	if err := check.CheckDeps(&cfg); err != nil {
		log.Error("%v", err)
		return exitBadArguments
	}
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		log.Error("Cannot create output directory: %v", err)
		return exitBadArguments
	}

	unlock, err := lockOutput(cfg.OutputDir)
	if err != nil {
		log.Error("%v", err)
		return exitBadArguments
	}
	defer unlock()

	if cfg.GeneratePSD {
		log.Warn("PSD output is not supported in this version; writing PNG only")
	}
	log.Debug(cfg.Verbose, "Configuration:\n%s", cfg.String())

	// Phase 3: Walk and process. Bundle failures are logged and counted but
	// never change the exit code.
	pipeline.Run(&cfg, log)
	return exitOK
}

// lockOutput takes the run lock in dir so two runs never write the same
// output tree. The returned func releases it and removes the lock file.
func lockOutput(dir string) (func(), error) {
	path := filepath.Join(dir, lockName)
	lock := flock.New(path)
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock %s: %w", path, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w (%s)", errLocked, path)
	}
	return func() {
		_ = lock.Unlock()
		_ = os.Remove(path)
	}, nil
}
