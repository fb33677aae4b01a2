package logging_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"timearena/internal/platform/logging"
)

func TestNewHonorsLevel(t *testing.T) {
	t.Parallel()
	buf := &bytes.Buffer{}
	logger := logging.New("warn", buf)
	logger.Info("hidden")
	logger.WithField("ban", "Daily Ban").Warn("visible")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info entry should be filtered at warn level: %s", out)
	}
	if !strings.Contains(out, "visible") || !strings.Contains(out, "ban=") {
		t.Fatalf("warn entry missing: %s", out)
	}
}

func TestNewFallsBackToInfo(t *testing.T) {
	t.Parallel()
	logger := logging.New("nonsense", &bytes.Buffer{})
	if logger.GetLevel() != logrus.InfoLevel {
		t.Fatalf("expected info level, got %s", logger.GetLevel())
	}
}
