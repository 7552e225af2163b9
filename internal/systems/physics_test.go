package systems

import (
	"testing"

	"codeberg.org/anaseto/gruid"

	"github.com/angband/angband-sub026/internal/domain"
	"github.com/angband/angband-sub026/internal/domain/fixture"
)

// Карта 7x7 с крестом из стен в центре:
// . . . . .
// . . # . .
// . # # # .
// . . # . .
// . . . . .
func crossRoom(t *testing.T) *domain.Level {
	t.Helper()
	l := fixture.Room(7, 7, 1, fixture.Registry())
	for _, p := range []gruid.Point{{X: 3, Y: 2}, {X: 2, Y: 3}, {X: 3, Y: 3}, {X: 4, Y: 3}, {X: 3, Y: 4}} {
		l.Cave.SetFeat(p, domain.FeatWallExtra)
	}
	return l
}

func TestLos(t *testing.T) {
	l := crossRoom(t)

	tests := []struct {
		name string
		p1   gruid.Point
		p2   gruid.Point
		want bool
	}{
		{"Clear horizontal", gruid.Point{X: 1, Y: 1}, gruid.Point{X: 5, Y: 1}, true},
		{"Blocked horizontal", gruid.Point{X: 1, Y: 3}, gruid.Point{X: 5, Y: 3}, false},
		{"Adjacent", gruid.Point{X: 1, Y: 1}, gruid.Point{X: 2, Y: 2}, true},
		{"Blocked diagonal", gruid.Point{X: 1, Y: 1}, gruid.Point{X: 5, Y: 5}, false},
		{"Adjacent wall", gruid.Point{X: 3, Y: 1}, gruid.Point{X: 3, Y: 2}, true},
		{"Behind wall", gruid.Point{X: 3, Y: 1}, gruid.Point{X: 3, Y: 5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Los(l.Cave, tt.p1, tt.p2); got != tt.want {
				t.Errorf("Los(%v, %v) = %v, want %v", tt.p1, tt.p2, got, tt.want)
			}
			if got := Los(l.Cave, tt.p2, tt.p1); got != tt.want {
				t.Errorf("Los(%v, %v) = %v, want %v (обратное направление)", tt.p2, tt.p1, got, tt.want)
			}
		})
	}
}

func TestMoveStepStraightLines(t *testing.T) {
	src := gruid.Point{X: 5, Y: 5}
	tests := []struct {
		dst  gruid.Point
		want gruid.Point
	}{
		{gruid.Point{X: 10, Y: 5}, gruid.Point{X: 6, Y: 5}},
		{gruid.Point{X: 0, Y: 5}, gruid.Point{X: 4, Y: 5}},
		{gruid.Point{X: 5, Y: 0}, gruid.Point{X: 5, Y: 4}},
		{gruid.Point{X: 9, Y: 9}, gruid.Point{X: 6, Y: 6}},
	}
	for _, tt := range tests {
		if got := MoveStep(src, src, tt.dst); got != tt.want {
			t.Errorf("MoveStep(%v -> %v) = %v, want %v", src, tt.dst, got, tt.want)
		}
	}
}

func TestMoveStepReachesTarget(t *testing.T) {
	src := gruid.Point{X: 0, Y: 0}
	dst := gruid.Point{X: 7, Y: 3}
	cur := src
	// Шагов столько, сколько клеток по длинной оси.
	for i := 0; i < 7; i++ {
		next := MoveStep(cur, src, dst)
		if Distance(cur, next) != 1 {
			t.Fatalf("шаг %d: %v -> %v не соседние клетки", i, cur, next)
		}
		cur = next
	}
	if cur != dst {
		t.Errorf("после 7 шагов %v, want %v", cur, dst)
	}
}

func TestMoveStepDegenerateLine(t *testing.T) {
	p := gruid.Point{X: 4, Y: 4}
	if got := MoveStep(p, p, p); got != p {
		t.Errorf("MoveStep(p, p, p) = %v, want %v", got, p)
	}
	if path := ProjectPath(crossRoom(t).Cave, domain.MaxRange, p, p, domain.FlagSet[domain.ProjectFlag]{}); len(path) != 0 {
		t.Errorf("ProjectPath(p, p) = %v, want empty", path)
	}
}

func TestProjectPath(t *testing.T) {
	l := crossRoom(t)
	src := gruid.Point{X: 1, Y: 3}

	path := ProjectPath(l.Cave, domain.MaxRange, src, gruid.Point{X: 5, Y: 3}, domain.FlagSet[domain.ProjectFlag]{})
	if len(path) != 1 || path[0] != (gruid.Point{X: 2, Y: 3}) {
		t.Errorf("путь должен оборваться на стене (2,3), got %v", path)
	}

	if Projectable(l.Cave, src, gruid.Point{X: 5, Y: 3}) {
		t.Error("сквозь стену не стреляют")
	}
	if !Projectable(l.Cave, gruid.Point{X: 1, Y: 1}, gruid.Point{X: 5, Y: 1}) {
		t.Error("по открытому коридору стреляют")
	}
}

func TestCleanShotStopsAtMonster(t *testing.T) {
	l := fixture.Room(10, 5, 1, fixture.Registry(fixture.Race("kobold", 'k', 1)))
	src, dst := gruid.Point{X: 1, Y: 2}, gruid.Point{X: 8, Y: 2}
	l.PlaceMonster(1, gruid.Point{X: 4, Y: 2}, false)

	if !Projectable(l.Cave, src, dst) {
		t.Error("монстр не мешает Projectable")
	}
	if CleanShot(l.Cave, src, dst) {
		t.Error("монстр на пути мешает CleanShot")
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b gruid.Point
		want int
	}{
		{gruid.Point{}, gruid.Point{X: 4}, 4},
		{gruid.Point{}, gruid.Point{X: 4, Y: 3}, 5},
		{gruid.Point{}, gruid.Point{X: 3, Y: 4}, 5},
		{gruid.Point{X: 2, Y: 2}, gruid.Point{X: 2, Y: 2}, 0},
	}
	for _, tt := range tests {
		if got := Distance(tt.a, tt.b); got != tt.want {
			t.Errorf("Distance(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
