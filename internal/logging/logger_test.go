package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/backmassage/texbake/internal/config"
)

func quietConfig() config.Config {
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	return cfg
}

func TestNewLogger_NoFile(t *testing.T) {
	cfg := quietConfig()
	l, err := NewLogger(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()
	if l.FilePath() != "" {
		t.Errorf("FilePath() = %q, want empty", l.FilePath())
	}
	var out, errOut bytes.Buffer
	l.SetOutput(&out, &errOut)
	l.Info("test message")
	if !strings.Contains(out.String(), "[INFO] test message") {
		t.Errorf("stdout = %q", out.String())
	}
}

func TestNewLogger_WithFile(t *testing.T) {
	dir := t.TempDir()
	cfg := quietConfig()
	cfg.LogFile = filepath.Join(dir, "logs", "texbake.log")
	l, err := NewLogger(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	l.SetOutput(&bytes.Buffer{}, &bytes.Buffer{})
	l.Info("to file")
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}
	b, _ := os.ReadFile(cfg.LogFile)
	if !bytes.Contains(b, []byte("INFO")) || !bytes.Contains(b, []byte("to file")) {
		t.Errorf("log file content: %s", string(b))
	}
}

func TestLevels(t *testing.T) {
	cfg := quietConfig()
	l, err := NewLogger(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	var out, errOut bytes.Buffer
	l.SetOutput(&out, &errOut)

	l.Success("done %d", 1)
	l.Warn("odd %s", "name")
	l.Error("broken %s", "bundle")
	l.Debug(false, "hidden")
	l.Debug(true, "shown")

	for _, want := range []string{"[SUCCESS] done 1", "[WARN] odd name", "[DEBUG] shown"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("stdout missing %q:\n%s", want, out.String())
		}
	}
	if strings.Contains(out.String(), "hidden") {
		t.Error("Debug(false) must not log")
	}
	if !strings.Contains(errOut.String(), "[ERROR] broken bundle") || strings.Contains(out.String(), "ERROR") {
		t.Errorf("ERROR lines belong on stderr only; stderr=%q", errOut.String())
	}
}

func TestConcurrentLines(t *testing.T) {
	cfg := quietConfig()
	l, err := NewLogger(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	l.SetOutput(&out, &out)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.Info("worker line")
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 16 {
		t.Fatalf("got %d lines, want 16", len(lines))
	}
	for _, line := range lines {
		if !strings.HasSuffix(line, "[INFO] worker line") {
			t.Errorf("interleaved line %q", line)
		}
	}
}

func TestPrint(t *testing.T) {
	cfg := quietConfig()
	cfg.LogFile = filepath.Join(t.TempDir(), "run.log")
	l, err := NewLogger(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	l.SetOutput(&out, &bytes.Buffer{})
	l.Print("╭──╮\n│ab│\n╰──╯")
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}

	const want = "╭──╮\n│ab│\n╰──╯\n"
	if out.String() != want {
		t.Errorf("stdout = %q, want %q", out.String(), want)
	}
	b, _ := os.ReadFile(cfg.LogFile)
	if string(b) != want {
		t.Errorf("log file = %q, want %q", b, want)
	}
}
