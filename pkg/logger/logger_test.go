package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestInitFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "angband.log")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_FILE", path)

	Init()
	if Log.GetLevel() != logrus.DebugLevel {
		t.Errorf("level = %v", Log.GetLevel())
	}
	For("ai").Debug("monster woke")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	line := string(data)
	if !strings.Contains(line, `"component":"ai"`) || !strings.Contains(line, `"msg":"monster woke"`) {
		t.Errorf("log line = %q", line)
	}
}

func TestInitBadLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "loud")
	t.Setenv("LOG_FILE", "")

	Init()
	if Log.GetLevel() != logrus.InfoLevel {
		t.Errorf("level = %v, want info", Log.GetLevel())
	}
	if Log.Out != os.Stderr {
		t.Error("без LOG_FILE пишем в stderr")
	}
}
