package ai

import (
	"github.com/angband/angband-sub026/internal/core/types"
	"github.com/angband/angband-sub026/internal/domain"
	"github.com/angband/angband-sub026/internal/systems"
	"github.com/angband/angband-sub026/internal/systems/project"
)

// blowPower — точность удара по эффекту.
var blowPower = map[domain.BlowEffect]int{
	domain.BlowEffHurt:     60,
	domain.BlowEffPoison:   5,
	domain.BlowEffAcid:     0,
	domain.BlowEffElec:     10,
	domain.BlowEffFire:     10,
	domain.BlowEffCold:     10,
	domain.BlowEffBlind:    2,
	domain.BlowEffConfuse:  10,
	domain.BlowEffTerrify:  10,
	domain.BlowEffParalyze: 2,
	domain.BlowEffExp10:    5,
	domain.BlowEffExp20:    5,
	domain.BlowEffExp40:    5,
	domain.BlowEffExp80:    5,
}

// blowVerb — описание удара и то, может ли он ранить или оглушить.
type blowVerb struct {
	act       string
	cut, stun bool
	// miss — промах заметен игроку.
	miss bool
}

var blowVerbs = map[domain.BlowMethod]blowVerb{
	domain.BlowHit:    {"hits you.", true, true, true},
	domain.BlowTouch:  {"touches you.", false, false, true},
	domain.BlowPunch:  {"punches you.", false, true, true},
	domain.BlowKick:   {"kicks you.", false, true, true},
	domain.BlowClaw:   {"claws you.", true, false, true},
	domain.BlowBite:   {"bites you.", true, false, true},
	domain.BlowSting:  {"stings you.", false, false, true},
	domain.BlowButt:   {"butts you.", false, true, true},
	domain.BlowCrush:  {"crushes you.", false, true, true},
	domain.BlowEngulf: {"engulfs you.", false, false, true},
	domain.BlowCrawl:  {"crawls on you.", false, false, false},
	domain.BlowDrool:  {"drools on you.", false, false, false},
	domain.BlowSpit:   {"spits on you.", false, false, false},
	domain.BlowGaze:   {"gazes at you.", false, false, false},
	domain.BlowWail:   {"wails at you.", false, false, false},
	domain.BlowSpore:  {"releases spores at you.", false, false, false},
	domain.BlowBeg:    {"begs you for money.", false, false, false},
	domain.BlowInsult: {"insults you!", false, false, false},
	domain.BlowMoan:   {"moans.", false, false, false},
}

// expDrain — удержание жизни и сила вытягивания опыта.
var expDrain = map[domain.BlowEffect]struct{ keep, dice int }{
	domain.BlowEffExp10: {95, 10},
	domain.BlowEffExp20: {90, 20},
	domain.BlowEffExp40: {75, 40},
	domain.BlowEffExp80: {50, 80},
}

var blowElements = map[domain.BlowEffect]struct {
	typ  domain.Element
	msg  string
	what domain.Drs
}{
	domain.BlowEffAcid: {domain.GFAcid, "You are covered in acid!", domain.DrsAcid},
	domain.BlowEffElec: {domain.GFElec, "You are struck by electricity!", domain.DrsElec},
	domain.BlowEffFire: {domain.GFFire, "You are enveloped in flames!", domain.DrsFire},
	domain.BlowEffCold: {domain.GFCold, "You are covered with frost!", domain.DrsCold},
}

// checkHit — попадание удара силы power монстра уровня level.
func checkHit(l *domain.Level, power, level int) bool {
	k := l.RNG.Int0(100)
	if k < 10 {
		return k < 5
	}
	i := power + level*3
	return i > 0 && l.RNG.Int1(i) > l.Player.AC()*3/4
}

// monsterCritical — сила раны или оглушения от сильного удара.
func monsterCritical(l *domain.Level, dice, sides, dam int) int {
	total := dice * sides
	if dam < total*19/20 {
		return 0
	}
	if dam < 20 && l.RNG.Int0(100) >= dam {
		return 0
	}
	extra := 0
	if dam >= 20 {
		for l.RNG.Int0(100) < 2 {
			extra++
		}
	}
	switch {
	case dam > 45:
		return 6 + extra
	case dam > 33:
		return 5 + extra
	case dam > 25:
		return 4 + extra
	case dam > 18:
		return 3 + extra
	case dam > 11:
		return 2 + extra
	}
	return 1 + extra
}

func cutAmount(l *domain.Level, k int) int {
	switch k {
	case 0:
		return 0
	case 1:
		return l.RNG.Int1(5)
	case 2:
		return l.RNG.Int1(5) + 5
	case 3:
		return l.RNG.Int1(20) + 20
	case 4:
		return l.RNG.Int1(50) + 50
	case 5:
		return l.RNG.Int1(100) + 100
	case 6:
		return 300
	}
	return 500
}

func stunAmount(l *domain.Level, k int) int {
	switch k {
	case 0:
		return 0
	case 1:
		return l.RNG.Int1(5)
	case 2:
		return l.RNG.Int1(5) + 10
	case 3:
		return l.RNG.Int1(10) + 20
	case 4:
		return l.RNG.Int1(15) + 30
	case 5:
		return l.RNG.Int1(20) + 40
	case 6:
		return 80
	}
	return 150
}

// MakeAttackNormal — рукопашная атака монстра по игроку: до четырех ударов
// расы. Возвращает false, если монстр не умеет бить.
func MakeAttackNormal(l *domain.Level, h types.Handle) bool {
	m := l.Monster(h)
	if m == nil {
		return false
	}
	r := l.RaceOf(m)
	if r.Flags.Has(domain.RFNeverBlow) {
		return false
	}
	p := l.Player
	lore := l.LoreOf(m)
	rlev := max(1, r.Level)
	name := l.MonName(m)
	killer := deathName(r)

	for i, b := range r.Blows {
		if i >= domain.MonsterBlows || b.Method == domain.BlowNone {
			break
		}
		if l.Monster(h) == nil || p.Leaving {
			break
		}

		if b.Effect != domain.BlowEffNone && !checkHit(l, blowPower[b.Effect], rlev) {
			if v := blowVerbs[b.Method]; v.miss && m.Visible {
				l.Msg("%s misses you.", name)
			}
			continue
		}

		// Защита от зла отталкивает злых монстров не выше уровнем.
		if p.Is(domain.TmdProtEvil) && r.Flags.Has(domain.RFEvil) && p.Lev >= rlev &&
			l.RNG.Int0(100)+p.Lev > 50 {
			if m.Visible {
				lore.NoteFlag(domain.RFEvil)
			}
			l.Msg("%s is repelled.", name)
			continue
		}

		v := blowVerbs[b.Method]
		if v.act != "" {
			l.Msg("%s %s", name, v.act)
		}

		dam := applyBlow(l, h, b.Effect, l.RNG.Damroll(b.DD, b.DS), rlev, killer)

		doCut, doStun := v.cut, v.stun
		if doCut && doStun {
			if l.RNG.Int0(100) < 50 {
				doCut = false
			} else {
				doStun = false
			}
		}
		if doCut {
			if k := cutAmount(l, monsterCritical(l, b.DD, b.DS, dam)); k > 0 {
				systems.IncTimed(l, domain.TmdCut, k)
			}
		}
		if doStun {
			if k := stunAmount(l, monsterCritical(l, b.DD, b.DS, dam)); k > 0 {
				systems.IncTimed(l, domain.TmdStun, k)
			}
		}
	}

	if p.IsDead {
		lore.Deaths++
	}
	return true
}

// applyBlow разрешает эффект одного попавшего удара. Возвращает урон,
// от которого считается сила раны или оглушения.
func applyBlow(l *domain.Level, h types.Handle, eff domain.BlowEffect, dam, rlev int, killer string) int {
	p := l.Player

	if e, ok := blowElements[eff]; ok {
		l.Msg(e.msg)
		resist := project.CheckForResist(p, e.typ)
		if resist != project.ResistImmune && dam > 0 {
			raw := dam
			dam = project.AdjustDam(l, e.typ, dam, resist)
			systems.TakeHit(l, dam, killer)
			project.InvenDamage(l, e.typ, min(raw*5, 300))
		}
		systems.UpdateSmartLearn(l, h, e.what)
		return dam
	}

	if d, ok := expDrain[eff]; ok {
		systems.TakeHit(l, dam, killer)
		if !p.IsDead {
			drain := l.RNG.Damroll(d.dice, 6) + (p.Exp/100)*systems.MonDrainLife
			systems.DrainExp(l, d.keep, drain, drain/10)
		}
		return dam
	}

	switch eff {
	case domain.BlowEffNone:
		return 0
	case domain.BlowEffHurt:
		ac := min(p.AC(), 150)
		dam -= dam * ac / 250
		systems.TakeHit(l, dam, killer)
	case domain.BlowEffPoison:
		systems.TakeHit(l, dam, killer)
		if !p.Has(domain.OFResPois) && !p.Is(domain.TmdOppPois) {
			systems.IncTimed(l, domain.TmdPoisoned, l.RNG.Int1(rlev)+5)
		}
		systems.UpdateSmartLearn(l, h, domain.DrsPois)
	case domain.BlowEffBlind:
		systems.TakeHit(l, dam, killer)
		if !p.Has(domain.OFResBlind) {
			systems.IncTimed(l, domain.TmdBlind, 10+l.RNG.Int1(rlev))
		}
		systems.UpdateSmartLearn(l, h, domain.DrsBlind)
	case domain.BlowEffConfuse:
		systems.TakeHit(l, dam, killer)
		if !p.Has(domain.OFResConfu) && !p.Is(domain.TmdOppConf) {
			systems.IncTimed(l, domain.TmdConfused, 3+l.RNG.Int1(rlev))
		}
		systems.UpdateSmartLearn(l, h, domain.DrsConf)
	case domain.BlowEffTerrify:
		systems.TakeHit(l, dam, killer)
		switch {
		case p.Has(domain.OFResFear):
			l.Msg("You stand your ground!")
		case systems.PlayerSaves(l):
			l.Msg("You stand your ground!")
		default:
			systems.IncTimed(l, domain.TmdAfraid, 3+l.RNG.Int1(rlev))
		}
		systems.UpdateSmartLearn(l, h, domain.DrsFear)
	case domain.BlowEffParalyze:
		// Без урона паралич длился бы вечно.
		if p.Is(domain.TmdParalyzed) && dam < 1 {
			dam = 1
		}
		systems.TakeHit(l, dam, killer)
		switch {
		case p.Has(domain.OFFreeAct):
			l.Msg("You are unaffected!")
		case systems.PlayerSaves(l):
			l.Msg("You resist the effects!")
		default:
			systems.IncTimed(l, domain.TmdParalyzed, 3+l.RNG.Int1(rlev))
		}
		systems.UpdateSmartLearn(l, h, domain.DrsFree)
	}
	return dam
}
