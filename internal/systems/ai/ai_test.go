package ai

import (
	"os"
	"testing"

	"codeberg.org/anaseto/gruid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angband/angband-sub026/internal/core/types"
	"github.com/angband/angband-sub026/internal/domain"
	"github.com/angband/angband-sub026/internal/domain/fixture"
	"github.com/angband/angband-sub026/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// setup — комната 20×10, игрок в (9,5), монстр расы race в (5,5).
func setup(t *testing.T, race domain.Race) (*domain.Level, types.Handle, *fixture.Messages) {
	t.Helper()
	l := fixture.Room(20, 10, 7, fixture.Registry(race))
	fixture.Player(l, gruid.Point{X: 9, Y: 5})
	h := l.PlaceMonster(1, gruid.Point{X: 5, Y: 5}, false)
	require.False(t, h.IsNil())
	return l, h, fixture.Capture(l)
}

func TestMoveDirs(t *testing.T) {
	tests := []struct {
		name string
		off  gruid.Point
		want int
	}{
		{"target east", gruid.Point{X: -5}, 6},
		{"target west", gruid.Point{X: 5}, 4},
		{"target north", gruid.Point{Y: 5}, 8},
		{"target south", gruid.Point{Y: -5}, 2},
		{"target south-west", gruid.Point{X: 3, Y: -3}, 1},
		{"target north-east", gruid.Point{X: -3, Y: 3}, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mm := moveDirs(tt.off)
			assert.Equal(t, tt.want, mm[0])
			// Запасные направления не повторяют основное.
			for _, d := range mm[1:] {
				assert.NotEqual(t, mm[0], d)
			}
		})
	}
}

func TestDistOffsets(t *testing.T) {
	assert.Len(t, distOffsets[1], 8)
	for d := 1; d < 10; d++ {
		require.NotEmpty(t, distOffsets[d])
		for _, off := range distOffsets[d] {
			assert.Equal(t, d, domain.Distance(gruid.Point{}, off))
		}
	}
}

func TestMonWillRun(t *testing.T) {
	l := fixture.Room(20, 10, 1, fixture.Registry(fixture.Race("kobold", 'k', 1)))
	p := fixture.Player(l, gruid.Point{X: 2, Y: 5})
	h := l.PlaceMonster(1, gruid.Point{X: 15, Y: 5}, false)
	m := l.Monster(h)

	m.Afraid = 5
	assert.True(t, MonWillRun(l, h), "испуганный монстр бежит")

	m.Afraid = 0
	p.Lev = 50
	assert.True(t, MonWillRun(l, h), "слабый монстр бежит от сильного игрока")

	p.Lev = 1
	assert.False(t, MonWillRun(l, h))

	// Вблизи никто не пугается.
	l.Swap(m.Pos, gruid.Point{X: 5, Y: 5})
	p.Lev = 50
	assert.False(t, MonWillRun(l, h))
}

func TestGetMovesFleeAway(t *testing.T) {
	l := fixture.Room(20, 10, 1, fixture.Registry(fixture.Race("kobold", 'k', 1)))
	fixture.Player(l, gruid.Point{X: 2, Y: 5})
	h := l.PlaceMonster(1, gruid.Point{X: 15, Y: 5}, false)
	l.Monster(h).Afraid = 10

	mm, ok := GetMoves(l, h)
	require.True(t, ok)
	assert.Equal(t, 6, mm[0], "испуганный монстр уходит от игрока")
}

func TestSleepingMonsterWakesUp(t *testing.T) {
	l, h, msgs := setup(t, fixture.Race("jackal", 'C', 1))
	p := l.Player
	p.SkillStl = 0 // максимальный шум: монстр всегда слышит
	m := l.Monster(h)
	m.Visible = true
	m.Sleep = 100

	// Расстояние 4: сон уменьшается на 100/4.
	ProcessMonster(l, h)
	assert.Equal(t, 75, m.Sleep)
	assert.Equal(t, gruid.Point{X: 5, Y: 5}, m.Pos, "спящий не ходит")
	assert.Equal(t, 1, l.LoreOf(m).Ignore)
	assert.Zero(t, msgs.Count("The jackal wakes up."))

	m.Sleep = 10
	ProcessMonster(l, h)
	assert.Zero(t, m.Sleep)
	assert.Equal(t, 1, msgs.Count("The jackal wakes up."))
	assert.Equal(t, 1, l.LoreOf(m).Wake)
	assert.Equal(t, gruid.Point{X: 6, Y: 5}, m.Pos, "проснувшийся сразу идет к игроку")

	ProcessMonster(l, h)
	assert.Equal(t, 1, msgs.Count("The jackal wakes up."), "сообщение о пробуждении одно")
}

func TestKillWallMonsterTunnels(t *testing.T) {
	l, h, _ := setup(t, fixture.Race("umber hulk", 'X', 16, domain.RFKillWall))
	wall := gruid.Point{X: 6, Y: 5}
	l.Cave.SetFeat(wall, domain.FeatWallExtra)

	ProcessMonster(l, h)

	assert.Equal(t, domain.FeatFloor, l.Cave.Feat(wall))
	assert.Equal(t, wall, l.Monster(h).Pos)
	occ, ok := l.Cave.At(wall).Monster()
	require.True(t, ok)
	assert.Equal(t, h, occ)
	assert.True(t, l.Cave.At(gruid.Point{X: 5, Y: 5}).IsEmpty())
}

func TestMonsterOpensDoor(t *testing.T) {
	l, h, _ := setup(t, fixture.Race("orc", 'o', 5, domain.RFOpenDoor))
	door := gruid.Point{X: 6, Y: 5}
	l.Cave.SetFeat(door, domain.FeatDoorHead)

	ProcessMonster(l, h)

	assert.Equal(t, domain.FeatOpen, l.Cave.Feat(door))
	assert.Equal(t, gruid.Point{X: 5, Y: 5}, l.Monster(h).Pos, "открыть дверь — значит потратить ход")
}

func TestMonsterBashesDoor(t *testing.T) {
	l, h, msgs := setup(t, fixture.Race("troll", 'T', 20, domain.RFBashDoor))
	door := gruid.Point{X: 6, Y: 5}
	l.Cave.SetFeat(door, domain.FeatDoorHead)
	m := l.Monster(h)
	m.HP, m.MaxHP = 10000, 10000

	for i := 0; i < 20 && l.Cave.Feat(door).IsClosedDoor(); i++ {
		ProcessMonster(l, h)
	}

	f := l.Cave.Feat(door)
	assert.True(t, f == domain.FeatOpen || f == domain.FeatBroken, "дверь выбита: %v", f)
	assert.Equal(t, door, m.Pos)
	assert.Equal(t, 1, msgs.Count("You hear a door burst open!"))
}

func TestMonsterCrushesItems(t *testing.T) {
	l, h, msgs := setup(t, fixture.Race("ogre", 'O', 10, domain.RFKillItem))
	at := gruid.Point{X: 6, Y: 5}
	fixture.Obj(l, 2, at)
	l.Cave.SetInfo(at, domain.InfoView)

	ProcessMonster(l, h)

	assert.Equal(t, at, l.Monster(h).Pos)
	assert.Empty(t, l.Pile(at))
	assert.Len(t, msgs.Lines, 1)
}

func TestMonsterPicksUpItems(t *testing.T) {
	l, h, _ := setup(t, fixture.Race("kobold thief", 'k', 3, domain.RFTakeItem))
	at := gruid.Point{X: 6, Y: 5}
	oh := fixture.Obj(l, 1, at)

	ProcessMonster(l, h)

	assert.Empty(t, l.Pile(at))
	assert.Equal(t, oh, l.Monster(h).Held)
	assert.Equal(t, h, l.Object(oh).HeldBy)
}

func TestRemoveBadSpellsImmunePlayer(t *testing.T) {
	race := fixture.Race("dark elven mage", 'h', 10, domain.RFSmart)
	l, h, _ := setup(t, race)
	l.Opts.SmartCheat = true
	l.Player.Intrinsic.Set(domain.OFImAcid)

	f := spells(domain.SpellBoAcid, domain.SpellBrAcid, domain.SpellBaAcid, domain.SpellBoFire)
	got := RemoveBadSpells(l, h, f)

	assert.False(t, got.HasAny(domain.SpellBoAcid, domain.SpellBrAcid, domain.SpellBaAcid))
	assert.True(t, got.Has(domain.SpellBoFire))
}

func TestRemoveBadSpellsStupidIgnoresKnowledge(t *testing.T) {
	l, h, _ := setup(t, fixture.Race("rot grub", 'w', 1, domain.RFStupid))
	l.Opts.SmartCheat = true
	l.Player.Intrinsic.Set(domain.OFImAcid)

	f := spells(domain.SpellBoAcid)
	assert.Equal(t, f, RemoveBadSpells(l, h, f))
}

func TestChooseSpellEscapesWhenHurt(t *testing.T) {
	l, h, _ := setup(t, fixture.Race("illusionist", 'p', 12))
	l.Opts.SmartMonsters = true
	m := l.Monster(h)
	m.HP = 1

	s := ChooseSpell(l, h, spells(domain.SpellBlink, domain.SpellBoFire))
	assert.Equal(t, domain.SpellBlink, s)
}

func TestMakeAttackNormal(t *testing.T) {
	t.Run("never blow", func(t *testing.T) {
		l, h, _ := setup(t, fixture.Race("floating eye", 'e', 1, domain.RFNeverBlow))
		assert.False(t, MakeAttackNormal(l, h))
	})

	t.Run("harmless touch", func(t *testing.T) {
		race := fixture.Race("white jelly", 'j', 10)
		race.Blows = []domain.Blow{{Method: domain.BlowTouch, Effect: domain.BlowEffNone}}
		l, h, msgs := setup(t, race)
		l.Monster(h).Visible = true
		hp := l.Player.Chp

		require.True(t, MakeAttackNormal(l, h))
		assert.Equal(t, 1, msgs.Count("The white jelly touches you."))
		assert.Equal(t, hp, l.Player.Chp)
	})
}

func TestProcessMonstersEnergy(t *testing.T) {
	l, h, _ := setup(t, fixture.Race("jackal", 'C', 1))
	l.Player.SkillStl = 0
	m := l.Monster(h)
	m.Sleep = 100

	m.Energy = 50
	ProcessMonsters(l, 100)
	assert.Equal(t, 50, m.Energy)
	assert.Equal(t, 100, m.Sleep, "без энергии монстр не действует")
	assert.False(t, m.MFlags.Has(domain.MFBorn))

	m.Energy = 150
	ProcessMonsters(l, 100)
	assert.Equal(t, 50, m.Energy)
	assert.Equal(t, 75, m.Sleep)

	GrantEnergy(l)
	assert.Equal(t, 50+domain.ExtractEnergy(m.Speed), m.Energy)
}

func TestUnliteArea(t *testing.T) {
	l, _, msgs := setup(t, fixture.Race("jackal", 'C', 1))

	unliteArea(l, 0, 3)

	assert.Equal(t, 1, msgs.Count("Darkness surrounds you."))
	assert.False(t, l.Cave.Has(gruid.Point{X: 1, Y: 1}, domain.InfoGlow), "гаснет вся комната")
	assert.False(t, l.Cave.Has(gruid.Point{X: 18, Y: 8}, domain.InfoGlow))
}

func TestTrapCreation(t *testing.T) {
	l, _, _ := setup(t, fixture.Race("jackal", 'C', 1))
	p := l.Player.Pos

	require.True(t, trapCreation(l))
	assert.Equal(t, domain.FeatInvis, l.Cave.Feat(p.Add(gruid.Point{X: 1})))
	assert.Equal(t, domain.FeatInvis, l.Cave.Feat(p.Add(gruid.Point{X: -1, Y: -1})))
	assert.Equal(t, domain.FeatFloor, l.Cave.Feat(p))
}

func TestDeathName(t *testing.T) {
	tests := []struct {
		race domain.Race
		want string
	}{
		{fixture.Race("kobold", 'k', 2), "a kobold"},
		{fixture.Race("orc archer", 'o', 5), "an orc archer"},
		{fixture.Race("Grip, Farmer Maggot's Dog", 'C', 2, domain.RFUnique), "Grip, Farmer Maggot's Dog"},
		{domain.Race{}, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, deathName(&tt.race))
	}
}

func TestCastSourcePower(t *testing.T) {
	l, h, _ := setup(t, fixture.Race("dark elven priest", 'h', 20))
	cc := &castCtx{l: l, h: h, rlev: 20}

	bolt := cc.source(domain.SpellBoNeth)
	assert.True(t, bolt.Is(h))
	assert.Equal(t, 20, bolt.Power)
	assert.False(t, bolt.Strong())

	br := cc.source(domain.SpellBrNeth)
	assert.True(t, br.Is(h))
	assert.Equal(t, domain.BreathPower, br.Power)
	assert.True(t, br.Strong())
}
