package tui

import (
	"io"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestSSHServerReturnsListenError(t *testing.T) {
	// Hold the port so the server cannot bind it.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("net.Listen() failed: %v", err)
	}
	defer ln.Close()

	dir := t.TempDir()
	cfg := DefaultSSHServerConfig()
	cfg.Address = ln.Addr().String()
	cfg.HostKeyPath = filepath.Join(dir, "host_key")
	cfg.DBPath = filepath.Join(dir, "scores.db")

	srv, err := NewSSHServer(cfg, log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewSSHServer() failed: %v", err)
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	select {
	case err := <-errc:
		if err == nil {
			t.Error("ListenAndServe() = nil, expected the bind error")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("ListenAndServe() kept blocking after the listener failed")
	}
}
