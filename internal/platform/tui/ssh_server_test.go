package tui

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-alarm/internal/alarm"
)

func TestResolveHostKeyCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys", "host_key")

	got, err := resolveHostKey(path)
	if err != nil {
		t.Fatalf("resolveHostKey() failed: %v", err)
	}
	if got != path {
		t.Errorf("resolveHostKey() = %q, expected %q", got, path)
	}
	if info, err := os.Stat(filepath.Dir(path)); err != nil || !info.IsDir() {
		t.Errorf("key directory not created: %v", err)
	}
}

func TestNewSSHServer(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "host_key")

	srv, err := NewSSHServer(cfg, alarm.NewBook(nil), nil, log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewSSHServer() failed: %v", err)
	}
	if srv.Addr() != "127.0.0.1:0" {
		t.Errorf("Addr() = %q", srv.Addr())
	}
}
