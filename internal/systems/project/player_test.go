package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angband/angband-sub026/internal/domain"
)

var playerFlags = domain.FlagsOf(domain.PFKill, domain.PFJump)

func TestCheckForResistTiers(t *testing.T) {
	tests := []struct {
		name  string
		flags []domain.ObjFlag
		opp   bool
		want  int
	}{
		{name: "без защиты", want: ResistNone},
		{name: "сопротивление", flags: []domain.ObjFlag{domain.OFResFire}, want: 1},
		{name: "временная защита", opp: true, want: 1},
		{name: "сопротивление и временная", flags: []domain.ObjFlag{domain.OFResFire}, opp: true, want: 2},
		{name: "иммунитет", flags: []domain.ObjFlag{domain.OFImFire, domain.OFVulnFire}, opp: true, want: ResistImmune},
		{name: "уязвимость", flags: []domain.ObjFlag{domain.OFVulnFire}, want: ResistVulnerable},
		{name: "уязвимость и сопротивление", flags: []domain.ObjFlag{domain.OFVulnFire, domain.OFResFire}, want: ResistNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, _ := arena(t)
			p := l.Player
			p.Intrinsic = domain.FlagsOf(tt.flags...)
			if tt.opp {
				p.Timed[domain.TmdOppFire] = 10
			}
			assert.Equal(t, tt.want, CheckForResist(p, domain.GFFire))
		})
	}
}

func TestCheckForResistEquipment(t *testing.T) {
	l, _ := arena(t)
	o := domain.NewObject(l.Reg.Kind(6), 1)
	o.Flags.Set(domain.OFResFire)

	l.Player.Inven[0] = o
	assert.Equal(t, ResistNone, CheckForResist(l.Player, domain.GFFire), "в рюкзаке не защищает")

	l.Player.Inven[domain.InvenLeft] = o
	assert.Equal(t, 1, CheckForResist(l.Player, domain.GFFire))
}

func TestAdjustDamTiers(t *testing.T) {
	tests := []struct {
		resist int
		want   int
	}{
		{ResistImmune, 0},
		{2, 10},
		{1, 30},
		{ResistNone, 90},
		{ResistVulnerable, 120},
	}
	l, _ := arena(t)
	prev := -1
	for _, tt := range tests {
		got := AdjustDam(l, domain.GFFire, 90, tt.resist)
		assert.Equal(t, tt.want, got, "resist %d", tt.resist)
		assert.Greater(t, got, prev, "урон растет с ослаблением защиты")
		prev = got
	}
}

func TestAdjustDamAcidArmour(t *testing.T) {
	l, msgs := arena(t)
	assert.Equal(t, 90, AdjustDam(l, domain.GFAcid, 90, ResistNone), "без доспеха")

	for _, slot := range armourSlots {
		l.Player.Inven[slot] = domain.NewObject(l.Reg.Kind(8), 1)
	}
	assert.Equal(t, 45, AdjustDam(l, domain.GFAcid, 90, ResistNone))
	assert.Equal(t, 1, msgs.Count("Your Soft Leather Armour is damaged!"))

	worn := 0
	for _, slot := range armourSlots {
		worn += l.Player.Inven[slot].ToA
	}
	assert.Equal(t, -1, worn, "разъеден ровно один предмет")

	assert.Equal(t, 45, AdjustDam(l, domain.GFHolyOrb, 90, ResistNone), "святая сфера вдвое слабее")
}

func TestNetherDrain(t *testing.T) {
	tests := []struct {
		name  string
		power int
		want  int
	}{
		{name: "слабый источник", power: 10, want: 9600},
		{name: "на границе силы", power: domain.StrongPower - 1, want: 9600},
		{name: "сильный источник", power: domain.StrongPower, want: 9200},
		{name: "дыхание", power: domain.BreathPower, want: 9200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, msgs := arena(t)
			p := l.Player
			p.Exp, p.MaxExp = 10000, 10000

			who := domain.FromNowhere().WithPower(tt.power)
			require.True(t, Project(l, who, 0, p.Pos, 30, domain.GFNether, playerFlags))

			assert.Equal(t, tt.want, p.Exp)
			assert.Equal(t, 10000, p.MaxExp)
			assert.Equal(t, 1, msgs.Count("You feel your life draining away!"))
		})
	}
}

func TestNetherHoldLife(t *testing.T) {
	l, msgs := arena(t)
	p := l.Player
	p.Exp, p.MaxExp = 10000, 10000
	p.Intrinsic.Set(domain.OFHoldLife)

	who := domain.FromNowhere().WithPower(domain.BreathPower)
	Project(l, who, 0, p.Pos, 30, domain.GFNether, playerFlags)

	kept := msgs.Count("You keep hold of your life force!")
	slipped := msgs.Count("You feel your life slipping away!")
	require.Equal(t, 1, kept+slipped)
	if kept == 1 {
		assert.Equal(t, 10000, p.Exp)
	} else {
		assert.Equal(t, 10000-2*(200+10000/1000*2), p.Exp)
	}
}

func TestNetherStrongSapsManaAndEnergy(t *testing.T) {
	l, msgs := arena(t)
	p := l.Player
	p.Mhp, p.Chp = 20000, 20000
	p.Msp, p.Csp = 100, 100
	p.Exp, p.MaxExp = 100000, 100000

	who := domain.FromNowhere().WithPower(domain.BreathPower)
	for i := 0; i < 10 && (p.Csp == 100 || p.Energy != 0); i++ {
		p.Energy = 50
		Project(l, who, 0, p.Pos, 1000, domain.GFNether, playerFlags)
	}

	assert.Less(t, p.Csp, 100)
	assert.GreaterOrEqual(t, p.Csp, 0)
	assert.Equal(t, 0, p.Energy)
	assert.Positive(t, msgs.Count("Your mind is dulled."))
	assert.Positive(t, msgs.Count("Your energy is sapped!"))
}

func TestNetherWeakKeepsManaAndEnergy(t *testing.T) {
	l, msgs := arena(t)
	p := l.Player
	p.Mhp, p.Chp = 20000, 20000
	p.Msp, p.Csp = 100, 100
	p.Energy = 50
	p.Exp, p.MaxExp = 100000, 100000

	who := domain.FromNowhere().WithPower(10)
	for i := 0; i < 10; i++ {
		Project(l, who, 0, p.Pos, 1000, domain.GFNether, playerFlags)
	}

	assert.Equal(t, 100, p.Csp)
	assert.Equal(t, 50, p.Energy)
	assert.Zero(t, msgs.Count("Your mind is dulled."))
	assert.Zero(t, msgs.Count("Your energy is sapped!"))
}

func TestNetherResisted(t *testing.T) {
	l, _ := arena(t)
	p := l.Player
	p.Exp, p.MaxExp = 10000, 10000
	p.Intrinsic.Set(domain.OFResNethr)

	Project(l, domain.FromNowhere().WithPower(domain.BreathPower), 0, p.Pos, 30, domain.GFNether, playerFlags)
	assert.Equal(t, 10000, p.Exp)
}

func TestInvenDamageCarried(t *testing.T) {
	l, msgs := arena(t)
	p := l.Player
	kind := l.Reg.Kind

	p.Inven[0] = domain.NewObject(kind(1), 3)
	p.Inven[1] = domain.NewObject(kind(5), 1)
	p.Inven[2] = domain.NewObject(kind(4), 1)
	p.Inven[3] = domain.NewObject(kind(2), 2)
	p.Inven[4] = domain.NewObject(kind(1), 1)
	p.Inven[4].Flags.Set(domain.OFIgnoreAcid)
	p.Inven[5] = domain.NewObject(kind(1), 1)
	p.Inven[5].Artifact = "of Thrain"

	require.Equal(t, 3, InvenDamage(l, domain.GFAcid, 10000))

	assert.True(t, p.Inven[0].IsEmpty(), "свитки сгорели")
	assert.Equal(t, 1, msgs.Count("All of your Scroll of Light (a) were destroyed!"))

	assert.Equal(t, 1, p.Inven[1].Number, "оружие не гибнет")
	assert.Equal(t, -1, p.Inven[1].ToH)
	assert.Equal(t, -1, p.Inven[1].ToD)
	assert.Equal(t, -1, p.Inven[2].ToA)

	assert.Equal(t, 2, p.Inven[3].Number, "зелья кислоты не боятся")
	assert.Equal(t, 1, p.Inven[4].Number, "защищенный свиток цел")
	assert.Equal(t, 1, p.Inven[5].Number, "артефакт цел")
}

func TestInvenDamageNoChance(t *testing.T) {
	l, msgs := arena(t)
	l.Player.Inven[0] = domain.NewObject(l.Reg.Kind(1), 5)

	assert.Zero(t, InvenDamage(l, domain.GFAcid, 0))
	assert.Zero(t, InvenDamage(l, domain.GFMissile, 10000), "стихия не портит вещи")
	assert.Equal(t, 5, l.Player.Inven[0].Number)
	assert.Empty(t, msgs.Lines)
}
