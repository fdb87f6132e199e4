package logging

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func TestNewLoggerSingleton(t *testing.T) {
	a := NewLogger("test-component")
	b := NewLogger("test-component")

	if a != b {
		t.Error("NewLogger should return the same entry for the same component")
	}

	if a.Data["component"] != "test-component" {
		t.Error("logger entry should carry the component field")
	}
}

func TestSetLevel(t *testing.T) {
	entry := NewLogger("level-component")
	SetLevel("level-component", logrus.DebugLevel)

	if entry.Logger.GetLevel() != logrus.DebugLevel {
		t.Errorf("expected debug level, got %v", entry.Logger.GetLevel())
	}
}

func TestTextFormatter(t *testing.T) {
	logger := logrus.New()
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	logger.SetFormatter(&TextFormatter{Config: FormatConfig{DisableColors: true}})

	logger.WithField("component", "fmt-test").WithField("path", "a.yaml").Info("loaded")

	out := buf.String()
	if !strings.Contains(out, "[INFO]") {
		t.Errorf("expected level tag in output, got %q", out)
	}
	if !strings.Contains(out, "[fmt-test]") {
		t.Errorf("expected component in output, got %q", out)
	}
	if !strings.Contains(out, "loaded") {
		t.Errorf("expected message in output, got %q", out)
	}
	if !strings.Contains(out, "path=a.yaml") {
		t.Errorf("expected extra fields in output, got %q", out)
	}
	if !strings.Contains(out, time.Now().Format("2006-01-02")) {
		t.Errorf("expected timestamp in output, got %q", out)
	}
}

func TestTextFormatterSimple(t *testing.T) {
	logger := logrus.New()
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	logger.SetFormatter(&TextFormatter{Config: FormatConfig{
		DisableTimestamp: true,
		DisableComponent: true,
		DisableColors:    true,
	}})

	logger.WithField("component", "fmt-test").Warn("careful")

	out := buf.String()
	if strings.Contains(out, "fmt-test") {
		t.Errorf("component should be suppressed, got %q", out)
	}
	if !strings.Contains(out, "[WARN]") {
		t.Errorf("expected shortened warn level, got %q", out)
	}
}
