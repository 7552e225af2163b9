package systems

import (
	"testing"

	"codeberg.org/anaseto/gruid"

	"github.com/angband/angband-sub026/internal/domain"
	"github.com/angband/angband-sub026/internal/domain/fixture"
)

func TestMovePlayer(t *testing.T) {
	l := fixture.Room(10, 6, 3, fixture.Registry(fixture.Race("kobold", 'k', 1)))
	p := fixture.Player(l, gruid.Point{X: 2, Y: 2})
	msgs := fixture.Capture(l)

	res := MovePlayer(l, 6)
	if !res.HasMoved || p.Pos != (gruid.Point{X: 3, Y: 2}) {
		t.Fatalf("шаг на восток: %+v, pos %v", res, p.Pos)
	}
	if occ := l.Cave.At(gruid.Point{X: 2, Y: 2}); !occ.IsEmpty() {
		t.Error("старая клетка освобождена")
	}

	// Стена: хода не тратим.
	p2 := gruid.Point{X: 3, Y: 1}
	res = MovePlayer(l, 8)
	if !res.HasMoved {
		t.Fatalf("шаг на север в (3,1) должен пройти: %+v", res)
	}
	if p.Pos != p2 {
		t.Fatalf("pos = %v, want %v", p.Pos, p2)
	}
	res = MovePlayer(l, 8)
	if res.HasMoved || !res.IsWall || res.TookTurn {
		t.Errorf("стена: %+v", res)
	}
	if len(msgs.Lines) == 0 {
		t.Error("нужно сообщение о стене")
	}
}

func TestMovePlayerOpensDoor(t *testing.T) {
	l := fixture.Room(10, 6, 3, fixture.Registry())
	p := fixture.Player(l, gruid.Point{X: 2, Y: 2})
	door := gruid.Point{X: 3, Y: 2}
	l.Cave.SetFeat(door, domain.FeatDoorHead)

	res := MovePlayer(l, 6)
	if !res.OpenedDoor || !res.TookTurn || res.HasMoved {
		t.Errorf("дверь: %+v", res)
	}
	if l.Cave.Feat(door) != domain.FeatOpen {
		t.Errorf("дверь открыта: %v", l.Cave.Feat(door))
	}
	if p.Pos != (gruid.Point{X: 2, Y: 2}) {
		t.Error("открыть дверь — не значит войти")
	}
}

func TestMovePlayerAttacks(t *testing.T) {
	race := fixture.Race("kobold", 'k', 1)
	race.HP = domain.RandomValue{Base: 1000}
	race.AC = 0
	l := fixture.Room(10, 6, 3, fixture.Registry(race))
	fixture.Player(l, gruid.Point{X: 2, Y: 2})
	h := l.PlaceMonster(1, gruid.Point{X: 3, Y: 2}, false)
	m := l.Monster(h)
	m.Visible = true
	m.Sleep = 50

	res := MovePlayer(l, 6)
	if res.Attacked != h || res.HasMoved {
		t.Errorf("удар вместо шага: %+v", res)
	}
	if m.Sleep != 0 {
		t.Error("удар будит монстра")
	}
}

func TestPlayerAttackKills(t *testing.T) {
	race := fixture.Race("kobold", 'k', 1)
	race.HP = domain.RandomValue{Base: 1}
	race.AC = 0
	l := fixture.Room(10, 6, 3, fixture.Registry(race))
	p := fixture.Player(l, gruid.Point{X: 2, Y: 2})
	p.SkillThn = 1000
	p.Inven[domain.InvenWield] = domain.NewObject(l.Reg.Kind(5), 1)
	p.Inven[domain.InvenWield].ToD = 10
	h := l.PlaceMonster(1, gruid.Point{X: 3, Y: 2}, false)
	l.Monster(h).Visible = true
	exp := p.Exp

	// 5% ударов мимо при любом мастерстве: бьем до победы.
	dead := false
	for i := 0; i < 20 && !dead; i++ {
		dead = PlayerAttack(l, h)
	}
	if !dead {
		t.Fatal("монстр с 1 HP должен погибнуть")
	}
	if l.Monster(h) != nil {
		t.Error("погибший монстр удален")
	}
	if p.Exp <= exp {
		t.Error("за убийство дают опыт")
	}
}

func TestPlayerAttackAfraid(t *testing.T) {
	l := fixture.Room(10, 6, 3, fixture.Registry(fixture.Race("kobold", 'k', 1)))
	p := fixture.Player(l, gruid.Point{X: 2, Y: 2})
	msgs := fixture.Capture(l)
	p.Timed[domain.TmdAfraid] = 5
	h := l.PlaceMonster(1, gruid.Point{X: 3, Y: 2}, false)
	l.Monster(h).Visible = true

	if PlayerAttack(l, h) {
		t.Error("испуганный игрок не убивает")
	}
	if msgs.Count("You are too afraid to attack the kobold!") != 1 {
		t.Errorf("messages: %v", msgs.Lines)
	}
}

func TestSlayMult(t *testing.T) {
	l := fixture.Room(10, 6, 3, fixture.Registry(fixture.Race("baby blue dragon", 'd', 9, domain.RFDragon)))
	fixture.Player(l, gruid.Point{X: 2, Y: 2})
	h := l.PlaceMonster(1, gruid.Point{X: 3, Y: 2}, false)
	m := l.Monster(h)
	m.Visible = true

	o := domain.NewObject(l.Reg.Kind(5), 1)
	if got := slayMult(l, &o, m); got != 1 {
		t.Errorf("простое оружие: %d", got)
	}
	o.Flags.Set(domain.OFSlayDragon)
	o.Flags.Set(domain.OFKillDragon)
	if got := slayMult(l, &o, m); got != 5 {
		t.Errorf("KILL_DRAGON: %d, want 5", got)
	}
	if !l.LoreOf(m).Flags.Has(domain.RFDragon) {
		t.Error("множитель раскрывает флаг расы")
	}
}

func TestPlayerPickup(t *testing.T) {
	l := fixture.Room(10, 6, 3, fixture.Registry())
	p := fixture.Player(l, gruid.Point{X: 2, Y: 2})
	msgs := fixture.Capture(l)
	fixture.Obj(l, 9, p.Pos) // медь
	fixture.Obj(l, 2, p.Pos) // зелье

	if n := PlayerPickup(l, false); n != 1 {
		t.Errorf("без команды подбирается только золото: %d", n)
	}
	if p.Gold != 10 {
		t.Errorf("Gold = %d, want 10", p.Gold)
	}
	if msgs.Count("You see a Potion of Cure Light Wounds.") != 1 {
		t.Errorf("messages: %v", msgs.Lines)
	}

	if n := PlayerPickup(l, true); n != 1 {
		t.Errorf("PICKUP берет зелье: %d", n)
	}
	if len(l.Pile(p.Pos)) != 0 {
		t.Error("пол пуст")
	}
	if p.Inven[0].Tval != domain.TvPotion {
		t.Errorf("слот a: %+v", p.Inven[0])
	}
}

func TestTryDropAndWield(t *testing.T) {
	l := fixture.Room(10, 6, 3, fixture.Registry())
	p := fixture.Player(l, gruid.Point{X: 2, Y: 2})
	p.Inven[0] = domain.NewObject(l.Reg.Kind(5), 1) // кинжал
	p.Inven[1] = domain.NewObject(l.Reg.Kind(3), 5) // масло

	msg, err := TryWield(l, 0)
	if err != nil {
		t.Fatalf("TryWield: %v", err)
	}
	if msg != "You are wielding a Dagger." {
		t.Errorf("msg = %q", msg)
	}
	if p.Inven[domain.InvenWield].Tval != domain.TvSword || !p.Inven[0].IsEmpty() {
		t.Error("кинжал переехал в руку")
	}

	if _, err := TryWield(l, 1); err != ErrNotWearable {
		t.Errorf("масло не надевается: %v", err)
	}

	msg, err = TryDrop(l, 1, 2)
	if err != nil {
		t.Fatalf("TryDrop: %v", err)
	}
	if msg != "You drop 2 Flasks of oil (b)." {
		t.Errorf("msg = %q", msg)
	}
	if p.Inven[1].Number != 3 {
		t.Errorf("осталось %d", p.Inven[1].Number)
	}
	if _, err := TryDrop(l, 7, 1); err != ErrEmptySlot {
		t.Errorf("пустой слот: %v", err)
	}
}

func TestTargetNearest(t *testing.T) {
	l := fixture.Room(14, 6, 3, fixture.Registry(fixture.Race("kobold", 'k', 1)))
	fixture.Player(l, gruid.Point{X: 1, Y: 2})
	far := l.PlaceMonster(1, gruid.Point{X: 10, Y: 2}, false)
	near := l.PlaceMonster(1, gruid.Point{X: 5, Y: 3}, false)
	UpdateView(l)
	UpdateMonsters(l)

	h, ok := TargetNearest(l)
	if !ok || h != near {
		t.Errorf("TargetNearest = %v, want %v", h, near)
	}

	l.Monster(near).Visible = false
	h, ok = TargetNearest(l)
	if !ok || h != far {
		t.Errorf("невидимого пропускаем: %v", h)
	}
	if v := ValidateTarget(l, near); v.Valid || v.Message == "" {
		t.Errorf("ValidateTarget(near) = %+v", v)
	}
}

func TestChaseDir(t *testing.T) {
	l := crossRoom(t)
	tests := []struct {
		name     string
		from, to gruid.Point
		want     int
	}{
		{"прямо на восток", gruid.Point{X: 1, Y: 1}, gruid.Point{X: 5, Y: 1}, 6},
		{"диагональ", gruid.Point{X: 1, Y: 5}, gruid.Point{X: 2, Y: 4}, 9},
		{"скольжение вдоль стены", gruid.Point{X: 1, Y: 2}, gruid.Point{X: 5, Y: 4}, 6},
		{"на месте", gruid.Point{X: 1, Y: 1}, gruid.Point{X: 1, Y: 1}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ChaseDir(l, tt.from, tt.to); got != tt.want {
				t.Errorf("ChaseDir(%v, %v) = %d, want %d", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestTunnel(t *testing.T) {
	l := fixture.Room(10, 6, 3, fixture.Registry())
	p := fixture.Player(l, gruid.Point{X: 1, Y: 2})
	msgs := fixture.Capture(l)
	rubble := gruid.Point{X: 2, Y: 2}
	l.Cave.SetFeat(rubble, domain.FeatRubble)
	p.StatCur[domain.StatStr] = 200

	if !Diggable(l.Cave, rubble) {
		t.Fatal("завал можно копать")
	}
	cleared, took := Tunnel(l, 6)
	if !cleared || !took {
		t.Fatalf("Tunnel = %v, %v", cleared, took)
	}
	if l.Cave.Feat(rubble) != domain.FeatFloor {
		t.Errorf("на месте завала %v", l.Cave.Feat(rubble))
	}
	if msgs.Count("You have removed the rubble.") != 1 {
		t.Errorf("сообщения: %v", msgs.Lines)
	}

	// Вечная стена: ход не тратится.
	cleared, took = Tunnel(l, 4)
	if cleared || took {
		t.Errorf("вечная стена: %v, %v", cleared, took)
	}
	if msgs.Count("This seems to be permanent rock.") != 1 {
		t.Errorf("сообщения: %v", msgs.Lines)
	}

	// Пол копать незачем.
	if _, took = Tunnel(l, 6); took {
		t.Error("пол не копается")
	}
}
