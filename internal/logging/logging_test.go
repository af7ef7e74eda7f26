package logging

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
)

func TestSetupDisabledByDefault(t *testing.T) {
	os.Unsetenv("TURBOCOW_LOG")

	logFile := Setup()
	if logFile != nil {
		t.Error("expected nil log file when TURBOCOW_LOG is unset")
		logFile.Close()
	}
	if output := log.Writer(); output != io.Discard {
		t.Errorf("expected log output to be io.Discard, got %v", output)
	}
}

func TestSetupEnabled(t *testing.T) {
	t.Setenv("TURBOCOW_LOG", "debug")
	defer os.RemoveAll(logDir)

	logFile := Setup()
	if logFile == nil {
		t.Fatal("expected non-nil log file when TURBOCOW_LOG=debug")
	}
	defer logFile.Close()

	if _, err := os.Stat(logDir); os.IsNotExist(err) {
		t.Error("expected log directory to be created")
	}

	logPath := filepath.Join(logDir, logFileName)
	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		t.Error("expected log file to be created")
	}

	log.Println("test message")

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if info.Size() == 0 {
		t.Error("expected log file to contain content")
	}
}
