// Package version хранит метаданные сборки. Поля заполняются через
// -ldflags "-X github.com/angband/angband-sub026/internal/version.BuildDate=...".
package version

import (
	"fmt"
	"time"
)

var (
	BuildDate   string // YYYY-MM-DD (UTC)
	BuildCommit string
	BuildBranch string
)

// SaveVersion — версия формата сохранений, которую понимает эта сборка.
// Должна совпадать с версией в заголовке storage.
const SaveVersion = 1

// buildEpoch — день, с которого считается номер сборки.
var buildEpoch = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

// VersionInfo — метаданные сборки для /version.
type VersionInfo struct {
	BuildID     int    `json:"buildId"`
	BuildDate   string `json:"buildDate,omitempty"`
	Commit      string `json:"commit,omitempty"`
	Branch      string `json:"branch,omitempty"`
	SaveVersion int    `json:"saveVersion"`
	Error       string `json:"error,omitempty"`
}

// BuildID — число дней от buildEpoch до BuildDate.
func BuildID(date string) (int, error) {
	if date == "" {
		return 0, fmt.Errorf("build date is empty")
	}
	t, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("invalid build date %q: %w", date, err)
	}
	if t.Before(buildEpoch) {
		return 0, fmt.Errorf("build date %s is before %s", date, buildEpoch.Format("2006-01-02"))
	}
	return int(t.Sub(buildEpoch).Hours() / 24), nil
}

func Info() VersionInfo {
	info := VersionInfo{
		BuildDate:   BuildDate,
		Commit:      BuildCommit,
		Branch:      BuildBranch,
		SaveVersion: SaveVersion,
	}
	id, err := BuildID(BuildDate)
	if err != nil {
		info.Error = err.Error()
		return info
	}
	info.BuildID = id
	return info
}

// String — строка для лога при старте сервера.
func String() string {
	info := Info()
	if info.Error != "" {
		return fmt.Sprintf("angband dev build, saves v%d (%s)", info.SaveVersion, info.Error)
	}
	commit := info.Commit
	if commit == "" {
		commit = "unknown"
	}
	return fmt.Sprintf("angband build %d (%s) commit %s, saves v%d", info.BuildID, info.BuildDate, commit, info.SaveVersion)
}
