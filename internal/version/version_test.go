package version

import (
	"strings"
	"testing"
)

func TestBuildID(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		want    int
		wantErr bool
	}{
		{"epoch", "2026-01-01", 0, false},
		{"next day", "2026-01-02", 1, false},
		{"one year", "2027-01-01", 365, false},
		{"leap year included", "2029-01-01", 1096, false},
		{"garbage", "yesterday", 0, true},
		{"empty", "", 0, true},
		{"before epoch", "2025-12-31", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuildID(tt.date)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ожидалась ошибка, id=%d", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("BuildID(%q) = %d, want %d", tt.date, got, tt.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	oldDate, oldCommit := BuildDate, BuildCommit
	defer func() { BuildDate, BuildCommit = oldDate, oldCommit }()

	BuildDate, BuildCommit = "", ""
	if s := String(); !strings.HasPrefix(s, "angband dev build") {
		t.Errorf("dev build: %q", s)
	}

	BuildDate, BuildCommit = "2026-03-01", "abc123"
	info := Info()
	if info.BuildID != 59 || info.Error != "" {
		t.Errorf("info = %+v", info)
	}
	if s := String(); s != "angband build 59 (2026-03-01) commit abc123, saves v1" {
		t.Errorf("String() = %q", s)
	}
}
