package server

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"testing"
	"time"

	"go.uber.org/goleak"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestNewRejectsEmptyAddr(t *testing.T) {
	if _, err := New("  ", http.NotFoundHandler(), discardLogger); err == nil {
		t.Fatal("expected error for empty address")
	}
	if _, err := New(":0", nil, discardLogger); err == nil {
		t.Fatal("expected error for nil handler")
	}
}

func TestServeShutsDownOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	srv, err := New("127.0.0.1:0", handler, discardLogger)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.Serve(ctx, ln)
	}()

	transport := &http.Transport{DisableKeepAlives: true}
	client := &http.Client{Transport: transport, Timeout: 5 * time.Second}
	resp, err := client.Get("http://" + ln.Addr().String() + "/")
	if err != nil {
		cancel()
		t.Fatalf("GET error = %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	transport.CloseIdleConnections()

	if string(body) != "ok" {
		t.Errorf("body = %q, want ok", body)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Serve() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestListenAndServeInvalidAddr(t *testing.T) {
	srv, err := New("not-a-valid-address", http.NotFoundHandler(), discardLogger)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := srv.ListenAndServe(context.Background()); err == nil {
		t.Fatal("expected listen error")
	}
}

func TestCloseNilServer(t *testing.T) {
	var srv *Server
	srv.Close()
}
