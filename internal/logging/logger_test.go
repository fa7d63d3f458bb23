package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/zero-or-one/speech-preprocessing-toolkit/internal/config"
)

func TestNewLogger_NoFile(t *testing.T) {
	cfg := config.DefaultCommon()
	cfg.LogFile = ""
	l, err := NewLogger(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()
	l.Info("test message")
}

func TestNewLogger_WithFile(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultCommon()
	cfg.LogFile = filepath.Join(dir, "spt.log")
	l, err := NewLogger(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	l.Info("to file")
	l.Warn("watch out")
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}
	b, _ := os.ReadFile(cfg.LogFile)
	if !bytes.Contains(b, []byte("INFO")) || !bytes.Contains(b, []byte("to file")) {
		t.Errorf("log file content: %s", string(b))
	}
	if !bytes.Contains(b, []byte("WARN")) {
		t.Errorf("missing WARN line: %s", string(b))
	}
}

func TestDebugGatedByVerbose(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultCommon()
	cfg.LogFile = filepath.Join(dir, "spt.log")
	l, err := NewLogger(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	l.Debug(false, "hidden")
	l.Debug(true, "shown")
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}
	b, _ := os.ReadFile(cfg.LogFile)
	if bytes.Contains(b, []byte("hidden")) {
		t.Errorf("non-verbose debug line leaked: %s", string(b))
	}
	if !bytes.Contains(b, []byte("shown")) {
		t.Errorf("verbose debug line missing: %s", string(b))
	}
}
