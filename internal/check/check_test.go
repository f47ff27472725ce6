package check

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/backmassage/texbake/internal/config"
)

// recorder collects log lines as "LEVEL text".
type recorder struct {
	lines []string
}

func (r *recorder) add(level, format string, args ...interface{}) {
	r.lines = append(r.lines, level+" "+fmt.Sprintf(format, args...))
}

func (r *recorder) Info(f string, a ...interface{})    { r.add("INFO", f, a...) }
func (r *recorder) Success(f string, a ...interface{}) { r.add("SUCCESS", f, a...) }
func (r *recorder) Warn(f string, a ...interface{})    { r.add("WARN", f, a...) }
func (r *recorder) Error(f string, a ...interface{})   { r.add("ERROR", f, a...) }
func (r *recorder) Debug(v bool, f string, a ...interface{}) {
	if v {
		r.add("DEBUG", f, a...)
	}
}

func (r *recorder) count(level string) int {
	n := 0
	for _, l := range r.lines {
		if strings.HasPrefix(l, level+" ") {
			n++
		}
	}
	return n
}

func testConfig(t *testing.T, exts ...string) config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.InputDir = t.TempDir()
	cfg.OutputDir = cfg.InputDir
	cfg.SourceExtensions = exts
	return cfg
}

func TestCheckDeps(t *testing.T) {
	cfg := testConfig(t, "tga", "png", "bmp", "tif")
	if err := CheckDeps(&cfg); err != nil {
		t.Errorf("CheckDeps() = %v, want nil", err)
	}

	cfg.SourceExtensions = []string{"tga", "dds"}
	err := CheckDeps(&cfg)
	if !errors.Is(err, ErrNoDecoder) {
		t.Fatalf("CheckDeps() = %v, want ErrNoDecoder", err)
	}
	if !strings.Contains(err.Error(), ".dds") {
		t.Errorf("error %q does not name the extension", err)
	}
}

func TestRunCheck_OK(t *testing.T) {
	cfg := testConfig(t, "tga", "png")
	var log recorder
	if !RunCheck(&cfg, &log) {
		t.Fatalf("RunCheck() = false:\n%s", strings.Join(log.lines, "\n"))
	}
	if got := log.count("SUCCESS"); got != 3 {
		t.Errorf("SUCCESS lines = %d, want 3 (two decoders, output):\n%s", got, strings.Join(log.lines, "\n"))
	}
	if log.count("DEBUG") != 0 {
		t.Error("debug lines logged without verbose")
	}
	if !slices.Contains(log.lines, "INFO texbake v"+config.Version()) {
		t.Errorf("version not reported:\n%s", strings.Join(log.lines, "\n"))
	}

	entries, err := os.ReadDir(cfg.OutputDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("probe file left behind: %v", entries)
	}
}

func TestRunCheck_MissingDecoder(t *testing.T) {
	cfg := testConfig(t, "dds")
	var log recorder
	if RunCheck(&cfg, &log) {
		t.Error("RunCheck() = true with an unsupported extension")
	}
	if log.count("ERROR") != 1 {
		t.Errorf("ERROR lines = %d, want 1", log.count("ERROR"))
	}
}

func TestRunCheck_OutputNotCreatedYet(t *testing.T) {
	cfg := testConfig(t, "tga")
	cfg.OutputDir = filepath.Join(cfg.InputDir, "later")
	cfg.Verbose = true
	var log recorder
	if !RunCheck(&cfg, &log) {
		t.Error("RunCheck() = false for a missing output directory")
	}
	if log.count("WARN") != 1 || log.count("DEBUG") != 1 {
		t.Errorf("unexpected log:\n%s", strings.Join(log.lines, "\n"))
	}
}

func TestRunCheck_OutputIsFile(t *testing.T) {
	cfg := testConfig(t, "tga")
	cfg.OutputDir = filepath.Join(cfg.InputDir, "file")
	if err := os.WriteFile(cfg.OutputDir, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	var log recorder
	if RunCheck(&cfg, &log) {
		t.Error("RunCheck() = true when the output path is a file")
	}
}
