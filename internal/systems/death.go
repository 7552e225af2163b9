package systems

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/angband/angband-sub026/internal/core/types"
	"github.com/angband/angband-sub026/internal/domain"
	"github.com/angband/angband-sub026/pkg/logger"
)

// MonsterDeath выбрасывает то, что монстр нес, и добычу по флагам расы.
func MonsterDeath(l *domain.Level, h types.Handle) {
	m := l.Monster(h)
	if m == nil {
		return
	}
	r := l.RaceOf(m)
	at := m.Pos

	// Сначала ноша: предметы уходят из стопки монстра на пол.
	for oh := m.Held; !oh.IsNil(); {
		o := l.Object(oh)
		if o == nil {
			break
		}
		next := o.Next
		obj := *o
		obj.Next, obj.HeldBy = types.NilHandle, types.NilHandle
		l.Objects.Remove(oh)
		DropNear(l, obj, at)
		oh = next
	}
	m.Held = types.NilHandle

	f := &r.Flags
	n := 0
	if f.Has(domain.RFDrop60) && l.RNG.Int0(100) < 60 {
		n++
	}
	if f.Has(domain.RFDrop90) && l.RNG.Int0(100) < 90 {
		n++
	}
	if f.Has(domain.RFDrop1D2) {
		n += l.RNG.Damroll(1, 2)
	}
	if f.Has(domain.RFDrop2D2) {
		n += l.RNG.Damroll(2, 2)
	}
	if f.Has(domain.RFDrop3D2) {
		n += l.RNG.Damroll(3, 2)
	}
	if f.Has(domain.RFDrop4D2) {
		n += l.RNG.Damroll(4, 2)
	}

	good := f.Has(domain.RFDropGood)
	great := f.Has(domain.RFDropGreat)
	level := max(1, (l.Depth+r.Level)/2)
	dumpItem, dumpGold := 0, 0
	for j := 0; j < n; j++ {
		gold := f.Has(domain.RFOnlyGold) || (!f.Has(domain.RFOnlyItem) && l.RNG.Int0(100) < 50)
		if gold {
			DropNear(l, MakeGold(l, level), at)
			dumpGold++
			continue
		}
		if o, ok := MakeObject(l, level, good, great); ok {
			DropNear(l, o, at)
			dumpItem++
		}
	}

	if m.Visible && (dumpItem > 0 || dumpGold > 0) {
		lore := l.LoreOf(m)
		lore.NoteFlag(dropFlag(f))
	}
}

func dropFlag(f *domain.FlagSet[domain.RaceFlag]) domain.RaceFlag {
	for _, d := range []domain.RaceFlag{domain.RFDrop60, domain.RFDrop90, domain.RFDrop1D2,
		domain.RFDrop2D2, domain.RFDrop3D2, domain.RFDrop4D2} {
		if f.Has(d) {
			return d
		}
	}
	return domain.RFNone
}

// MonTakeHit наносит монстру урон от игрока. Возвращает (погиб, испугался).
// note — сообщение о смерти вида « dies.»; пустое — стандартное «You have slain».
func MonTakeHit(l *domain.Level, h types.Handle, dam int, note string) (dead, fear bool) {
	m := l.Monster(h)
	if m == nil {
		return false, false
	}
	r := l.RaceOf(m)

	m.Sleep = 0
	m.HP -= dam

	if m.HP < 0 {
		name := l.MonName(m)
		switch {
		case note != "":
			l.Msg("%s%s", name, note)
		case !m.Visible:
			l.Msg("You have killed %s.", name)
		case r.Unusual():
			l.Msg("You have destroyed %s.", name)
		default:
			l.Msg("You have slain %s.", name)
		}

		if p := l.Player; p != nil && p.Lev > 0 {
			GainExp(l, r.Mexp*r.Level/p.Lev)
		}

		lore := l.LoreOf(m)
		if m.Visible || r.Unique() {
			lore.Pkills++
		}

		logger.Log.WithFields(logrus.Fields{
			"component": "monster",
			"race":      r.Name,
			"pos":       m.Pos,
			"by":        "player",
		}).Info("monster killed")

		MonsterDeath(l, h)
		l.DeleteMonster(h)
		return true, false
	}

	return false, scaredByDamage(l, m, dam)
}

// scaredByDamage — боль снимает страх или пугает раненого монстра.
func scaredByDamage(l *domain.Level, m *domain.Monster, dam int) bool {
	r := l.RaceOf(m)
	if m.Afraid > 0 && dam > 0 {
		tmp := l.RNG.Int1(dam)
		if tmp < m.Afraid {
			m.Afraid -= tmp
			return false
		}
		m.Afraid = 0
		return false
	}
	if m.Afraid > 0 || r.Flags.Has(domain.RFNoFear) {
		return false
	}
	percentage := 100 * m.HP / max(1, m.MaxHP)
	lowHP := l.RNG.Int1(10) >= percentage
	bigHit := dam >= m.HP && l.RNG.Int0(100) < 80
	if !lowHP && !bigHit {
		return false
	}
	t := l.RNG.Int1(10)
	if dam >= m.HP && percentage > 7 {
		t += 20
	} else {
		t += (11 - percentage) * 5
	}
	m.Afraid = t
	return true
}

// KillByMonster убивает монстра, добитого не игроком: без опыта.
func KillByMonster(l *domain.Level, h types.Handle, note string) {
	m := l.Monster(h)
	if m == nil {
		return
	}
	if note != "" && m.Visible {
		l.Msg("%s%s", l.MonName(m), note)
	}
	logger.Log.WithFields(logrus.Fields{
		"component": "monster",
		"race":      l.RaceOf(m).Name,
		"pos":       m.Pos,
		"by":        "monster",
	}).Info("monster killed")
	MonsterDeath(l, h)
	l.DeleteMonster(h)
}

type painScale [7]string

var (
	painJelly = painScale{"barely notices.", "flinches.", "squelches.", "quivers in pain.",
		"writhes about.", "writhes in agony.", "jerks limply."}
	painHound = painScale{"shrugs off the attack.", "snarls with pain.", "yelps in pain.",
		"howls in pain.", "howls in agony.", "writhes in agony.", "yelps feebly."}
	painSqueal = painScale{"ignores the attack.", "grunts with pain.", "squeals in pain.",
		"shrieks in pain.", "shrieks in agony.", "writhes in agony.", "cries out feebly."}
	painOther = painScale{"shrugs off the attack.", "grunts with pain.", "cries out in pain.",
		"screams in pain.", "screams in agony.", "writhes in agony.", "cries out feebly."}
)

// MessagePain сообщает, как монстр отреагировал на урон dam.
func MessagePain(l *domain.Level, h types.Handle, dam int) {
	m := l.Monster(h)
	if m == nil {
		return
	}
	name := l.MonName(m)
	if dam == 0 {
		l.Msg("%s is unharmed.", name)
		return
	}

	newHP := m.HP
	oldHP := newHP + dam
	pct := 0
	if oldHP > 0 {
		pct = newHP * 100 / oldHP
	}

	var scale *painScale
	ch := rune(l.RaceOf(m).Char())
	switch {
	case strings.ContainsRune("jmvQ", ch):
		scale = &painJelly
	case strings.ContainsRune("CZ", ch):
		scale = &painHound
	case strings.ContainsRune("FIKMRSXabclqrst", ch):
		scale = &painSqueal
	default:
		scale = &painOther
	}

	var i int
	switch {
	case pct > 95:
		i = 0
	case pct > 75:
		i = 1
	case pct > 50:
		i = 2
	case pct > 35:
		i = 3
	case pct > 20:
		i = 4
	case pct > 10:
		i = 5
	default:
		i = 6
	}
	l.Msg("%s %s", name, scale[i])
}

// Aggravate будит монстров рядом с игроком и ускоряет тех, кто его видит.
func Aggravate(l *domain.Level, who types.Handle) {
	sleep, speed := false, false
	for _, h := range l.Monsters.Handles() {
		if h == who {
			continue
		}
		m := l.Monster(h)
		r := l.RaceOf(m)
		if m.Cdis < domain.MaxSight*2 && m.Sleep > 0 {
			m.Sleep = 0
			sleep = true
		}
		if l.Cave.Has(m.Pos, domain.InfoView) && m.Speed < r.Speed+10 {
			m.Speed = r.Speed + 10
			speed = true
		}
	}
	switch {
	case speed:
		l.Msg("You feel a sudden stirring nearby!")
	case sleep:
		l.Msg("You hear a sudden stirring in the distance!")
	}
}
