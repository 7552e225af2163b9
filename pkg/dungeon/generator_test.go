package dungeon

import (
	"os"
	"testing"

	"codeberg.org/anaseto/gruid"

	"github.com/angband/angband-sub026/internal/data"
	"github.com/angband/angband-sub026/internal/domain"
	"github.com/angband/angband-sub026/pkg/logger"
	"github.com/angband/angband-sub026/pkg/utils"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// reachable — клетки, до которых можно дойти от start (двери и завалы
// считаются проходимыми).
func reachable(c *domain.Cave, start gruid.Point) map[gruid.Point]bool {
	seen := map[gruid.Point]bool{start: true}
	queue := []gruid.Point{start}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				q := p.Shift(dx, dy)
				if seen[q] || !c.InBounds(q) || c.Feat(q) > domain.FeatRubble {
					continue
				}
				seen[q] = true
				queue = append(queue, q)
			}
		}
	}
	return seen
}

func TestGenerate(t *testing.T) {
	reg := data.MustLoadDefault()
	for _, seed := range []int64{1, 7, 42, 1234} {
		l, start := Generate(5, reg, utils.NewRNG(seed))

		// 1. Проверка размеров мира
		if l.Cave.W != MapWidth || l.Cave.H != MapHeight {
			t.Fatalf("seed %d: map size %dx%d", seed, l.Cave.W, l.Cave.H)
		}
		// 2. Игрок не должен появиться в стене
		if l.Cave.Feat(start) != domain.FeatFloor {
			t.Errorf("seed %d: start %v is %s", seed, start, l.Cave.Feat(start).Name())
		}
		// 3. Граница — вечная стена
		for x := 0; x < MapWidth; x++ {
			if !l.Cave.Feat(gruid.Point{X: x, Y: 0}).IsPermanent() {
				t.Fatalf("seed %d: border at x=%d is not permanent", seed, x)
			}
		}
		// 4. Лестница вниз есть и до нее можно дойти
		seen := reachable(l.Cave, start)
		stairs := 0
		for p := range seen {
			if l.Cave.Feat(p) == domain.FeatMore {
				stairs++
			}
		}
		if stairs == 0 {
			t.Errorf("seed %d: no reachable down staircase", seed)
		}
		// 5. Монстры стоят на полу
		if l.Monsters.Len() == 0 {
			t.Errorf("seed %d: no monsters generated", seed)
		}
		for _, h := range l.Monsters.Handles() {
			m := l.Monster(h)
			if !l.Cave.Feat(m.Pos).Passable() {
				t.Errorf("seed %d: monster in a wall at %v", seed, m.Pos)
			}
		}
		if l.Objects.Len() == 0 {
			t.Errorf("seed %d: no objects generated", seed)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	reg := data.MustLoadDefault()
	a, sa := Generate(3, reg, utils.NewRNG(99))
	b, sb := Generate(3, reg, utils.NewRNG(99))
	if sa != sb {
		t.Fatalf("start differs: %v vs %v", sa, sb)
	}
	for y := 0; y < MapHeight; y++ {
		for x := 0; x < MapWidth; x++ {
			p := gruid.Point{X: x, Y: y}
			if a.Cave.Feat(p) != b.Cave.Feat(p) {
				t.Fatalf("feature at %v differs", p)
			}
		}
	}
	if a.Monsters.Len() != b.Monsters.Len() {
		t.Errorf("monster count differs: %d vs %d", a.Monsters.Len(), b.Monsters.Len())
	}
}

func TestWithCavern(t *testing.T) {
	reg := data.MustLoadDefault()
	l, start := NewLevel(20, reg, utils.NewRNG(5)).WithCavern().Build()
	if l.Cave.Feat(start) != domain.FeatFloor {
		t.Fatalf("start %v is not floor", start)
	}
	seen := reachable(l.Cave, start)
	floors := 0
	for y := 0; y < MapHeight; y++ {
		for x := 0; x < MapWidth; x++ {
			p := gruid.Point{X: x, Y: y}
			if (x == 0 || y == 0 || x == MapWidth-1 || y == MapHeight-1) && !l.Cave.Feat(p).IsPermanent() {
				t.Fatalf("border %v is not permanent", p)
			}
			if l.Cave.Feat(p) != domain.FeatFloor {
				continue
			}
			floors++
			if !seen[p] {
				t.Fatalf("floor %v is not connected to start", p)
			}
		}
	}
	if floors < 100 {
		t.Errorf("cavern too small: %d floor cells", floors)
	}
}

func TestGenerateArena(t *testing.T) {
	reg := data.MustLoadDefault()
	l, start := GenerateArena(1, 30, 20, reg, utils.NewRNG(3))
	if start != (gruid.Point{X: 15, Y: 10}) {
		t.Errorf("start = %v", start)
	}
	if !l.Cave.Has(start, domain.InfoGlow) {
		t.Error("arena should be lit")
	}
	if l.Monsters.Len() != 0 {
		t.Errorf("arena has %d monsters", l.Monsters.Len())
	}
	more := 0
	for y := 0; y < 20; y++ {
		for x := 0; x < 30; x++ {
			if l.Cave.Feat(gruid.Point{X: x, Y: y}) == domain.FeatMore {
				more++
			}
		}
	}
	if more != 1 {
		t.Errorf("expected one down staircase, got %d", more)
	}
}

func TestPickRoomKindShallow(t *testing.T) {
	b := NewLevel(0, nil, utils.NewRNG(1))
	for i := 0; i < 100; i++ {
		if k := b.pickRoomKind(); k != RoomSimple {
			t.Fatalf("depth 0 produced room kind %d", k)
		}
	}
}

func TestCreatePlayer(t *testing.T) {
	reg := data.MustLoadDefault()
	p := CreatePlayer("Tester", 5, reg)
	if w := p.Inven[domain.InvenWield]; w.Name != "Dagger" {
		t.Errorf("wielding %q", w.Name)
	}
	if p.Inven[domain.InvenBody].IsEmpty() || p.Inven[domain.InvenLight].IsEmpty() {
		t.Error("body armour and light expected")
	}
	if got := p.Inven[1].Desc(); got != "5 Flasks of oil" {
		t.Errorf("pack slot b = %q", got)
	}
	if p.Gold != 100 {
		t.Errorf("gold = %d", p.Gold)
	}
}

// Тест вспомогательной функции пересечения комнат
func TestRect_Intersects(t *testing.T) {
	r1 := Rect{0, 0, 10, 10}
	r2 := Rect{5, 5, 10, 10} // Пересекается
	r3 := Rect{20, 20, 5, 5} // Не пересекается

	if !r1.Intersects(r2) {
		t.Error("Rects should intersect")
	}

	if r1.Intersects(r3) {
		t.Error("Rects should NOT intersect")
	}
}
