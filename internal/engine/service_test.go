package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/angband/angband-sub026/internal/domain"
	"github.com/angband/angband-sub026/pkg/api"
)

func TestServiceControl(t *testing.T) {
	s := NewService(roomInstance(t))

	if s.Claim("") {
		t.Error("пустой токен не может управлять")
	}
	if !s.Claim("alice") || s.Claim("bob") {
		t.Fatal("управление получает первая сессия")
	}

	if _, err := s.Execute(domain.InternalCommand{Action: domain.ActionWait, Token: "bob"}); !errors.Is(err, ErrNotInControl) {
		t.Errorf("чужой ход: err = %v", err)
	}
	state, err := s.Execute(domain.InternalCommand{Action: domain.ActionInit, Token: "bob"})
	if err != nil || state == nil {
		t.Fatalf("INIT зрителя: %v", err)
	}
	if len(state.Logs) == 0 || state.Logs[0].Text != "You enter a maze of down staircases (50 ft)." {
		t.Errorf("logs = %+v", state.Logs)
	}

	state, err = s.Execute(domain.InternalCommand{Action: domain.ActionWait, Token: "alice"})
	if err != nil {
		t.Fatalf("WAIT владельца: %v", err)
	}
	if state.Turn != 10 || state.Player == nil || len(state.Logs) != 0 {
		t.Errorf("state turn=%d logs=%+v", state.Turn, state.Logs)
	}

	s.Release("alice")
	if !s.Claim("bob") {
		t.Error("после отключения владельца управление свободно")
	}
}

func TestServiceRun(t *testing.T) {
	s := NewService(roomInstance(t))
	s.Claim("alice")
	updates := s.Hub.Register("watcher")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Run(ctx)

	if err := s.ProcessCommand(api.ClientCommand{Action: "DANCE"}); !errors.Is(err, ErrUnknownAction) {
		t.Errorf("DANCE: %v", err)
	}
	if err := s.ProcessCommand(api.ClientCommand{Action: "wait", Token: "alice"}); err != nil {
		t.Fatalf("WAIT: %v", err)
	}

	select {
	case st := <-updates:
		if st.Type != api.TypeUpdate || st.Turn != 10 {
			t.Errorf("update = %s turn %d", st.Type, st.Turn)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("нет рассылки после команды")
	}
}

func TestBuildState(t *testing.T) {
	i := roomInstance(t)
	st := i.BuildState()

	if st.Grid == nil || st.Grid.Width != 12 || st.Grid.Height != 8 {
		t.Fatalf("grid = %+v", st.Grid)
	}
	// Освещенная комната видна целиком.
	if len(st.Map) < 10*6 {
		t.Errorf("tiles = %d, want at least %d", len(st.Map), 10*6)
	}
	if st.Player.Pos != (api.Pos{X: 2, Y: 2}) || st.Player.HP != st.Player.MaxHP {
		t.Errorf("player = %+v", st.Player)
	}
}
