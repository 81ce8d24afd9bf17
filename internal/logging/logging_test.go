package logger

import (
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
)

// captureStd swaps stdout and stderr for pipes while fn runs.
func captureStd(t *testing.T, fn func()) (string, string) {
	t.Helper()

	origOut, origErr := os.Stdout, os.Stderr
	outR, outW, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create stdout pipe: %v", err)
	}
	errR, errW, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create stderr pipe: %v", err)
	}
	os.Stdout, os.Stderr = outW, errW

	fn()

	outW.Close()
	errW.Close()
	os.Stdout, os.Stderr = origOut, origErr

	stdout, _ := io.ReadAll(outR)
	stderr, _ := io.ReadAll(errR)
	return string(stdout), string(stderr)
}

func TestLoggerLevels(t *testing.T) {
	color.NoColor = true

	tests := []struct {
		name      string
		logger    Logger
		wantInfo  bool
		wantDebug bool
	}{
		{"Quiet", Logger{}, false, false},
		{"Verbose", Logger{Verbose: true}, true, false},
		{"Debug", Logger{Debug: true}, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _ := captureStd(t, func() {
				tt.logger.Infof("loaded %d", 7)
				tt.logger.Debugf("parsed %s", "v_scale")
			})

			if got := strings.Contains(stdout, "[info] loaded 7"); got != tt.wantInfo {
				t.Errorf("info shown = %t, want %t (output %q)", got, tt.wantInfo, stdout)
			}
			if got := strings.Contains(stdout, "[debug] parsed v_scale"); got != tt.wantDebug {
				t.Errorf("debug shown = %t, want %t (output %q)", got, tt.wantDebug, stdout)
			}
		})
	}
}

func TestErrorfAndReturn(t *testing.T) {
	color.NoColor = true
	sentinel := errors.New("boom")

	var err error
	_, stderr := captureStd(t, func() {
		err = Logger{}.ErrorfAndReturn("saving config: %w", sentinel)
	})

	if !errors.Is(err, sentinel) {
		t.Errorf("Expected returned error to wrap sentinel, got %v", err)
	}
	if !strings.Contains(stderr, "[error] saving config: boom") {
		t.Errorf("Expected error on stderr, got %q", stderr)
	}
}
