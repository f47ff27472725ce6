// Package check provides system diagnostics (-check mode) and pre-pipeline
// validation (CheckDeps) of the configured source formats and output root.
package check

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/google/uuid"

	"github.com/backmassage/texbake/internal/config"
	"github.com/backmassage/texbake/internal/probe"
)

// ErrNoDecoder is returned by CheckDeps when a configured source extension
// has no registered decoder.
var ErrNoDecoder = errors.New("no decoder for source extension")

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// RunCheck prints the runtime, the decoder for every configured source
// extension, the worker count and whether the output root is writable.
// It reports false when anything required for a run is missing.
func RunCheck(cfg *config.Config, log Logger) bool {
	log.Info("=== System Check ===")
	log.Info("texbake v%s", config.Version())
	log.Info("Runtime: %s %s/%s, %d CPUs", runtime.Version(), runtime.GOOS, runtime.GOARCH, runtime.NumCPU())
	log.Info("Workers: %d", cfg.Workers)
	log.Debug(cfg.Verbose, "Known decoders: %s", strings.Join(probe.Extensions(), ", "))

	ok := checkDecoders(cfg, log)
	if !checkOutput(cfg.OutputDir, log) {
		ok = false
	}
	return ok
}

func checkDecoders(cfg *config.Config, log Logger) bool {
	ok := true
	for _, ext := range cfg.SourceExtensions {
		if probe.Supported(ext) {
			log.Success("Decoder: .%s", ext)
			continue
		}
		log.Error("No decoder for .%s (known: %s)", ext, strings.Join(probe.Extensions(), ", "))
		ok = false
	}
	return ok
}

// checkOutput creates and removes a probe file in dir. A missing dir is
// only a warning since a run creates it.
func checkOutput(dir string, log Logger) bool {
	fi, err := os.Stat(dir)
	if errors.Is(err, os.ErrNotExist) {
		log.Warn("Output directory does not exist yet: %s", dir)
		return true
	}
	if err != nil {
		log.Error("Cannot stat output directory: %v", err)
		return false
	}
	if !fi.IsDir() {
		log.Error("Output path is not a directory: %s", dir)
		return false
	}
	if err := writeProbe(dir); err != nil {
		log.Error("Output directory not writable: %v", err)
		return false
	}
	log.Success("Output directory writable: %s", dir)
	return true
}

func writeProbe(dir string) error {
	path := filepath.Join(dir, ".texbake-check-"+uuid.NewString())
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return err
	}
	return os.Remove(path)
}

// CheckDeps is the pre-pipeline validation: every configured source
// extension must have a decoder. Returns an error wrapping ErrNoDecoder
// naming the first unsupported extension.
func CheckDeps(cfg *config.Config) error {
	for _, ext := range cfg.SourceExtensions {
		if !probe.Supported(ext) {
			return fmt.Errorf("%w: .%s", ErrNoDecoder, ext)
		}
	}
	return nil
}
