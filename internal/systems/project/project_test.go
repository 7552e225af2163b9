package project

import (
	"os"
	"strings"
	"testing"

	"codeberg.org/anaseto/gruid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angband/angband-sub026/internal/core/types"
	"github.com/angband/angband-sub026/internal/domain"
	"github.com/angband/angband-sub026/internal/domain/fixture"
	"github.com/angband/angband-sub026/internal/systems"
	"github.com/angband/angband-sub026/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

var (
	center   = gruid.Point{X: 10, Y: 5}
	allFlags = domain.FlagsOf(domain.PFGrid, domain.PFItem, domain.PFKill)
)

// arena — комната 20×10, игрок в углу, вне досягаемости шаров.
func arena(t *testing.T, races ...domain.Race) (*domain.Level, *fixture.Messages) {
	t.Helper()
	l := fixture.Room(20, 10, 3, fixture.Registry(races...))
	fixture.Player(l, gruid.Point{X: 2, Y: 2})
	return l, fixture.Capture(l)
}

func monsterAt(t *testing.T, l *domain.Level, p gruid.Point) (types.Handle, *domain.Monster) {
	t.Helper()
	h := l.PlaceMonster(1, p, false)
	require.False(t, h.IsNil())
	m := l.Monster(h)
	m.Visible = true
	return h, m
}

func indexOf(lines []string, prefix string) int {
	for i, s := range lines {
		if strings.HasPrefix(s, prefix) {
			return i
		}
	}
	return -1
}

func TestExplodeShells(t *testing.T) {
	l, _ := arena(t)
	b := Explode(l.Cave, center, 2, nil)

	assert.Equal(t, 2, b.Radius())
	assert.Equal(t, []gruid.Point{center}, b.Shell(0))

	in := make(map[gruid.Point]bool, b.Len())
	b.Each(func(dist int, p gruid.Point) bool {
		assert.Equal(t, dist, systems.Distance(center, p), "клетка %v не в своей оболочке", p)
		in[p] = true
		return true
	})

	// В открытой комнате шар симметричен и задевает все клетки в радиусе.
	want := 0
	for y := center.Y - 2; y <= center.Y+2; y++ {
		for x := center.X - 2; x <= center.X+2; x++ {
			p := gruid.Point{X: x, Y: y}
			if systems.Distance(center, p) <= 2 {
				want++
			}
		}
	}
	assert.Equal(t, want, b.Len())
	for p := range in {
		mirror := gruid.Point{X: 2*center.X - p.X, Y: 2*center.Y - p.Y}
		assert.True(t, in[mirror], "нет зеркальной клетки для %v", p)
	}
}

func TestExplodeBeam(t *testing.T) {
	l, _ := arena(t)
	beam := []gruid.Point{{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 7, Y: 5}}
	b := Explode(l.Cave, gruid.Point{X: 7, Y: 5}, 0, beam)

	// Клетки луча идут в нулевой оболочке, эпицентр не дублируется.
	assert.Equal(t, 3, b.Len())
	assert.Equal(t, beam, b.Shell(0))
}

func TestProjectResolutionOrder(t *testing.T) {
	l, msgs := arena(t, fixture.Race("kobold", 'k', 1))
	_, m := monsterAt(t, l, center)
	hp := m.HP

	oh := fixture.Obj(l, 1, center)
	o := l.Object(oh)
	o.Marked = true
	name := o.BaseName()

	Project(l, domain.FromNowhere(), 1, center, 20, domain.GFFire, allFlags)

	assert.Nil(t, l.Object(oh), "свиток сгорел")
	assert.Equal(t, hp-20, m.HP)

	burnt := indexOf(msgs.Lines, "The "+name+" burns up!")
	hit := indexOf(msgs.Lines, "The kobold")
	require.NotEqual(t, -1, burnt, "msgs: %v", msgs.Lines)
	require.NotEqual(t, -1, hit, "msgs: %v", msgs.Lines)
	assert.Less(t, burnt, hit, "предметы разрешаются раньше монстров")
}

func TestProjectDamageFalloff(t *testing.T) {
	l, _ := arena(t, fixture.Race("kobold", 'k', 1))
	_, m := monsterAt(t, l, gruid.Point{X: 12, Y: 5})
	hp := m.HP

	Project(l, domain.FromNowhere(), 2, center, 30, domain.GFFire, allFlags)

	// Расстояние 2: (30+2)/3.
	assert.Equal(t, hp-10, m.HP)
}

func TestProjectUniqueSurvivesMonsterDamage(t *testing.T) {
	l, _ := arena(t, fixture.Race("Grip, Farmer Maggot's Dog", 'C', 2, domain.RFUnique))
	h, m := monsterAt(t, l, center)

	Project(l, domain.FromNowhere(), 0, center, 1000, domain.GFFire, allFlags)

	require.NotNil(t, l.Monster(h), "уникальный не гибнет от чужого урона")
	assert.Equal(t, 0, m.HP)
}

func TestProjectKillsOrdinary(t *testing.T) {
	l, msgs := arena(t, fixture.Race("kobold", 'k', 1))
	h, _ := monsterAt(t, l, center)

	Project(l, domain.FromNowhere(), 0, center, 1000, domain.GFFire, allFlags)

	assert.Nil(t, l.Monster(h))
	assert.Equal(t, 1, msgs.Count("The kobold dies."), "msgs: %v", msgs.Lines)
}

func TestProjectImmunityLore(t *testing.T) {
	l, msgs := arena(t, fixture.Race("green naga", 'n', 5, domain.RFImAcid))
	_, m := monsterAt(t, l, center)
	hp := m.HP

	Project(l, domain.FromNowhere(), 0, center, 90, domain.GFAcid, allFlags)

	assert.Equal(t, hp-10, m.HP, "иммунитет делит урон на 9")
	assert.True(t, l.LoreOf(m).Flags.Has(domain.RFImAcid), "игрок видел реакцию")
	assert.Equal(t, 1, msgs.Count("The green naga resists a lot."))
}

func TestProjectUnseenLeavesNoLore(t *testing.T) {
	l, _ := arena(t, fixture.Race("green naga", 'n', 5, domain.RFImAcid))
	_, m := monsterAt(t, l, center)
	m.Visible = false

	Project(l, domain.FromNowhere(), 0, center, 90, domain.GFAcid, domain.FlagsOf(domain.PFKill))

	assert.False(t, l.LoreOf(m).Flags.Has(domain.RFImAcid))
}

func TestHolyOrbDestroysAnything(t *testing.T) {
	l, _ := arena(t)
	cloak := fixture.Obj(l, 4, center)
	ring := fixture.Obj(l, 6, gruid.Point{X: 11, Y: 5})

	Project(l, domain.FromNowhere(), 1, center, 10, domain.GFHolyOrb, allFlags)

	// Проклятие не требуется: дальше сфера ведет себя как мана.
	assert.Nil(t, l.Object(cloak))
	assert.Nil(t, l.Object(ring))
}

func TestFireSparesMetal(t *testing.T) {
	l, _ := arena(t)
	dagger := fixture.Obj(l, 5, center)
	flask := fixture.Obj(l, 3, center)

	Project(l, domain.FromNowhere(), 0, center, 50, domain.GFFire, allFlags)

	assert.NotNil(t, l.Object(dagger))
	assert.NotNil(t, l.Object(flask), "масло боится холода, не огня")
}

func TestProjectInvalidElement(t *testing.T) {
	l, _ := arena(t, fixture.Race("kobold", 'k', 1))
	_, m := monsterAt(t, l, center)
	hp := m.HP

	assert.False(t, Project(l, domain.FromNowhere(), 1, center, 50, domain.Element(250), allFlags))
	assert.Equal(t, hp, m.HP)
}

func TestIgnoreFlagSurvives(t *testing.T) {
	l, msgs := arena(t)
	oh := fixture.Obj(l, 1, center)
	o := l.Object(oh)
	o.Flags.Set(domain.OFIgnoreFire)
	o.Marked = true

	Project(l, domain.FromNowhere(), 0, center, 50, domain.GFFire, allFlags)

	require.NotNil(t, l.Object(oh))
	assert.Equal(t, 1, msgs.Count("The "+o.BaseName()+" is unaffected!"), "msgs: %v", msgs.Lines)
}

func TestFireballHitsPlayerOnce(t *testing.T) {
	l, _ := arena(t)
	p := l.Player
	before := p.Chp
	at := gruid.Point{X: 4, Y: 2}
	r := systems.Distance(at, p.Pos)
	require.Equal(t, 2, r)

	assert.True(t, Project(l, domain.FromNowhere(), 2, at, 40, domain.GFFire, allFlags))

	// Без защиты урон только ослабляется расстоянием.
	assert.Equal(t, before-(40+r)/(r+1), p.Chp)
}

// Клон в почти полной арене: вставка копии не должна терять изменения
// оригинала, сделанные после нее.
func TestCloneWithCrowdedArena(t *testing.T) {
	l, msgs := arena(t, fixture.Race("kobold", 'k', 1))
	var filler []gruid.Point
	for x := 1; x <= 18; x++ {
		filler = append(filler, gruid.Point{X: x, Y: 1}, gruid.Point{X: x, Y: 8})
		if x != 2 {
			filler = append(filler, gruid.Point{X: x, Y: 2})
		}
		if x <= 9 {
			filler = append(filler, gruid.Point{X: x, Y: 7})
		}
	}
	require.Len(t, filler, 62)
	for _, p := range filler {
		monsterAt(t, l, p)
	}
	_, m := monsterAt(t, l, center)
	require.Equal(t, 63, l.Monsters.Len())
	m.Sleep = 50
	m.HP = 1
	speed := m.Speed

	Project(l, domain.FromNowhere(), 0, center, 0, domain.GFOldClone, domain.FlagsOf(domain.PFKill, domain.PFJump))

	assert.Equal(t, 64, l.Monsters.Len(), "копия появилась")
	assert.Equal(t, speed+10, m.Speed, "оригинал ускорен")
	assert.Equal(t, 0, m.Sleep, "оригинал разбужен")
	assert.Equal(t, m.MaxHP, m.HP)
	assert.Equal(t, 1, msgs.Count("The kobold spawns!"), "msgs: %v", msgs.Lines)
}

func TestMonsterStatusSaves(t *testing.T) {
	tests := []struct {
		name  string
		race  domain.Race
		typ   domain.Element
		power int
		check func(t *testing.T, m *domain.Monster)
		msg   string
	}{
		{
			name: "sleep lands", race: fixture.Race("kobold", 'k', 1), typ: domain.GFOldSleep, power: 20,
			check: func(t *testing.T, m *domain.Monster) { assert.Equal(t, 500, m.Sleep) },
			msg:   "The kobold falls asleep!",
		},
		{
			name: "sleep saved", race: fixture.Race("mature white dragon", 'd', 50), typ: domain.GFOldSleep, power: 1,
			check: func(t *testing.T, m *domain.Monster) { assert.Equal(t, 0, m.Sleep) },
			msg:   "The mature white dragon is unaffected!",
		},
		{
			name: "no sleep flag", race: fixture.Race("floating eye", 'e', 1, domain.RFNoSleep), typ: domain.GFOldSleep, power: 100,
			check: func(t *testing.T, m *domain.Monster) { assert.Equal(t, 0, m.Sleep) },
			msg:   "The floating eye is unaffected!",
		},
		{
			name: "confusion lands", race: fixture.Race("kobold", 'k', 1), typ: domain.GFOldConf, power: 20,
			check: func(t *testing.T, m *domain.Monster) { assert.Positive(t, m.Confused) },
			msg:   "The kobold looks confused.",
		},
		{
			name: "confusion saved", race: fixture.Race("mature white dragon", 'd', 50), typ: domain.GFOldConf, power: 1,
			check: func(t *testing.T, m *domain.Monster) { assert.Zero(t, m.Confused) },
			msg:   "The mature white dragon is unaffected!",
		},
		{
			name: "unique never sleeps", race: fixture.Race("Grip, Farmer Maggot's Dog", 'C', 2, domain.RFUnique), typ: domain.GFOldSleep, power: 100,
			check: func(t *testing.T, m *domain.Monster) { assert.Equal(t, 0, m.Sleep) },
			msg:   "Grip, Farmer Maggot's Dog is unaffected!",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, msgs := arena(t, tt.race)
			_, m := monsterAt(t, l, center)
			hp := m.HP

			Project(l, domain.FromNowhere(), 0, center, tt.power, tt.typ, domain.FlagsOf(domain.PFKill))

			tt.check(t, m)
			assert.Equal(t, hp, m.HP, "статусные эффекты не ранят")
			assert.Equal(t, 1, msgs.Count(tt.msg), "msgs: %v", msgs.Lines)
		})
	}
}

func TestPolymorphResisted(t *testing.T) {
	tests := []struct {
		name string
		race domain.Race
		msg  string
	}{
		{"unique", fixture.Race("Grip, Farmer Maggot's Dog", 'C', 2, domain.RFUnique), "Grip, Farmer Maggot's Dog is unaffected!"},
		{"level save", fixture.Race("mature white dragon", 'd', 50), "The mature white dragon maintains the same shape!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, msgs := arena(t, tt.race)
			h, m := monsterAt(t, l, center)

			Project(l, domain.FromNowhere(), 0, center, 1, domain.GFOldPoly, domain.FlagsOf(domain.PFKill))

			require.NotNil(t, l.Monster(h), "монстр не заменен")
			assert.Equal(t, 1, m.Race)
			assert.Equal(t, 1, msgs.Count(tt.msg), "msgs: %v", msgs.Lines)
		})
	}
}

func TestTeleportAwayMovesMonster(t *testing.T) {
	l, msgs := arena(t, fixture.Race("kobold", 'k', 1))
	h, m := monsterAt(t, l, center)

	Project(l, domain.FromNowhere(), 0, center, 10, domain.GFAwayAll, domain.FlagsOf(domain.PFKill))

	require.NotNil(t, l.Monster(h))
	assert.NotEqual(t, center, m.Pos)
	_, left := l.Cave.At(center).Monster()
	assert.False(t, left, "старая клетка свободна")
	got, _ := l.Cave.At(m.Pos).Monster()
	assert.Equal(t, h, got, "клетка знает о новом месте")
	assert.Equal(t, 1, msgs.Count("The kobold disappears!"), "msgs: %v", msgs.Lines)
}
