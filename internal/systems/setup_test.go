package systems

import (
	"os"
	"testing"

	"github.com/angband/angband-sub026/pkg/logger"
)

// Системы пишут в logger.Log с первого шага.
func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}
