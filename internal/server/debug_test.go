package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/angband/angband-sub026/internal/data"
	"github.com/angband/angband-sub026/internal/domain"
	"github.com/angband/angband-sub026/internal/engine"
	"github.com/angband/angband-sub026/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func debugMux(t *testing.T) (*engine.GameService, *http.ServeMux) {
	t.Helper()
	cfg := engine.NewConfig()
	cfg.Seed = 42
	cfg.Depth = 2
	cfg.SaveDir = ""
	inst, err := engine.NewInstance(cfg, data.MustLoadDefault())
	if err != nil {
		t.Fatalf("NewInstance: %v", err)
	}
	svc := engine.NewService(inst)
	mux := http.NewServeMux()
	NewDebugHandler(svc).RegisterRoutes(mux)
	return svc, mux
}

func get(t *testing.T, mux *http.ServeMux, path string, out any) {
	t.Helper()
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("%s: status %d", path, rec.Code)
	}
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("%s: %v", path, err)
	}
}

func TestDebugSessions(t *testing.T) {
	svc, mux := debugMux(t)

	var got struct {
		Subscribers    int    `json:"subscribers"`
		Owner          string `json:"owner"`
		OwnerConnected bool   `json:"ownerConnected"`
	}
	get(t, mux, "/debug/sessions", &got)
	if got.Subscribers != 0 || got.Owner != "" || got.OwnerConnected {
		t.Errorf("пустой сервер: %+v", got)
	}

	svc.Claim("alice")
	get(t, mux, "/debug/sessions", &got)
	if got.Owner != "alice" || got.OwnerConnected {
		t.Errorf("владелец без подписки: %+v", got)
	}

	svc.Hub.Register("alice")
	svc.Hub.Register("watcher")
	get(t, mux, "/debug/sessions", &got)
	if got.Subscribers != 2 || !got.OwnerConnected {
		t.Errorf("две сессии: %+v", got)
	}
}

func TestDebugMonsters(t *testing.T) {
	svc, mux := debugMux(t)

	var want int
	svc.WithLevel(func(l *domain.Level) { want = l.Monsters.Len() })

	var dump []struct {
		ID   string `json:"id"`
		Race string `json:"race"`
		HP   int    `json:"hp"`
	}
	get(t, mux, "/debug/monsters", &dump)
	if len(dump) != want {
		t.Fatalf("monsters = %d, want %d", len(dump), want)
	}
	for _, m := range dump {
		if m.ID == "" || m.Race == "" {
			t.Errorf("пустая запись: %+v", m)
		}
	}
}
