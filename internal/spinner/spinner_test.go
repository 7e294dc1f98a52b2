package spinner

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"
)

func containsFrame(output string) bool {
	for _, frame := range defaultFrames {
		if strings.Contains(output, frame) {
			return true
		}
	}
	return false
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	s := New(context.Background(), &buf, "Fetching https://example.com")

	if s == nil {
		t.Fatal("New() returned nil")
	}
	if s.message != "Fetching https://example.com" {
		t.Errorf("message = %q", s.message)
	}
	if len(s.frames) != 10 {
		t.Errorf("Expected 10 frames, got %d", len(s.frames))
	}
	if s.IsActive() {
		t.Error("Spinner should not be active initially")
	}
}

func TestStartStop(t *testing.T) {
	var buf bytes.Buffer
	s := New(context.Background(), &buf, "Fetching...")

	s.Start()
	if !s.IsActive() {
		t.Error("Spinner should be active after Start()")
	}
	s.Start() // second Start is a no-op

	time.Sleep(4 * defaultDelay)
	s.Stop()
	s.Stop() // second Stop is a no-op

	if s.IsActive() {
		t.Error("Spinner should not be active after Stop()")
	}

	output := buf.String()
	if !containsFrame(output) {
		t.Errorf("Expected spinner frames in output, got %q", output)
	}
	if !strings.Contains(output, "Fetching...") {
		t.Error("Expected message to appear in output")
	}
	if !strings.HasSuffix(output, "\r") {
		t.Error("Expected output to end with carriage return")
	}
}

func TestStopWithoutStart(t *testing.T) {
	var buf bytes.Buffer
	s := New(context.Background(), &buf, "Fetching...")
	s.Stop()

	if s.IsActive() {
		t.Error("Spinner should not be active after Stop() without Start()")
	}
	if buf.Len() != 0 {
		t.Errorf("Stop() without Start() wrote %q", buf.String())
	}
}

func TestSetMessage(t *testing.T) {
	var buf bytes.Buffer
	s := New(context.Background(), &buf, "first")
	s.SetMessage("second")

	if s.message != "second" {
		t.Errorf("message = %q, want %q", s.message, "second")
	}
}

func TestContextCancelStopsLoop(t *testing.T) {
	var buf bytes.Buffer
	ctx, cancel := context.WithCancel(context.Background())
	s := New(ctx, &buf, "Fetching...")

	s.Start()
	cancel()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("animation loop kept running after context cancel")
	}
	s.Stop()
}

func TestNilSpinner(t *testing.T) {
	var s *Spinner
	s.Start()
	s.SetMessage("ignored")
	s.Stop()
	if s.IsActive() {
		t.Error("nil spinner should never be active")
	}
}

func TestMaybe(t *testing.T) {
	orig := isTerminal
	t.Cleanup(func() { isTerminal = orig })

	tests := []struct {
		name     string
		terminal bool
		quiet    bool
		wantNil  bool
	}{
		{"terminal", true, false, false},
		{"quiet terminal", true, true, true},
		{"redirected", false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isTerminal = func(io.Writer) bool { return tt.terminal }
			s := Maybe(context.Background(), &bytes.Buffer{}, tt.quiet, "Fetching...")
			if (s == nil) != tt.wantNil {
				t.Errorf("Maybe() = %v, wantNil %v", s, tt.wantNil)
			}
		})
	}
}

func TestTrack(t *testing.T) {
	orig := isTerminal
	t.Cleanup(func() { isTerminal = orig })
	isTerminal = func(io.Writer) bool { return true }

	var buf bytes.Buffer
	boom := errors.New("boom")
	err := Track(context.Background(), &buf, false, "Fetching...", func() error {
		time.Sleep(3 * defaultDelay)
		return boom
	})

	if !errors.Is(err, boom) {
		t.Errorf("Track() error = %v, want %v", err, boom)
	}
	if !containsFrame(buf.String()) {
		t.Errorf("Expected spinner frames in output, got %q", buf.String())
	}
	if !strings.HasSuffix(buf.String(), "\r\033[2K") {
		t.Errorf("Expected the line to be cleared, got %q", buf.String())
	}
}

func TestTrackQuiet(t *testing.T) {
	var buf bytes.Buffer
	called := false
	err := Track(context.Background(), &buf, true, "Fetching...", func() error {
		called = true
		return nil
	})

	if err != nil || !called {
		t.Errorf("Track() = %v, called %v", err, called)
	}
	if buf.Len() != 0 {
		t.Errorf("quiet Track() wrote %q", buf.String())
	}
}
