package project

import (
	"codeberg.org/anaseto/gruid"
	"github.com/sirupsen/logrus"

	"github.com/angband/angband-sub026/internal/core/types"
	"github.com/angband/angband-sub026/internal/domain"
	"github.com/angband/angband-sub026/internal/systems"
	"github.com/angband/angband-sub026/pkg/logger"
)

// monTimed — временные состояния, которые проекция накладывает на монстра.
type monTimed uint8

const (
	mtSleep monTimed = iota
	mtStun
	mtConf
	mtFear
	mtFast
	mtSlow
	mtMax
)

// monsterCtx — состояние обработчика для одного монстра.
type monsterCtx struct {
	l    *domain.Level
	who  domain.Source
	r    int
	p    gruid.Point
	dam  int
	typ  domain.Element
	seen bool

	h    types.Handle
	m    *domain.Monster
	race *domain.Race
	lore *domain.Lore

	obvious bool
	skipped bool
	// doPoly — превращение. polySave — порог уровня для спасброска,
	// -1 означает спасбросок против силы polyPower.
	doPoly    bool
	polySave  int
	polyPower int
	teleport  int
	hurt      monMsg
	die       monMsg
	timed     [mtMax]int
}

type monsterHandler func(*monsterCtx)

var monsterHandlers = map[domain.Element]monsterHandler{
	domain.GFAcid:    func(mc *monsterCtx) { mc.resistElement(domain.RFImAcid, 9) },
	domain.GFElec:    func(mc *monsterCtx) { mc.resistElement(domain.RFImElec, 9) },
	domain.GFPois:    func(mc *monsterCtx) { mc.resistElement(domain.RFImPois, 9) },
	domain.GFFire:    monFire,
	domain.GFCold:    monCold,
	domain.GFIce:     monIce,
	domain.GFHolyOrb: func(mc *monsterCtx) { mc.resistOther(domain.RFEvil, 2, false, msgHitHard) },
	domain.GFPlasma:  func(mc *monsterCtx) { mc.resistOther(domain.RFResPlas, 3, true, msgResist) },
	domain.GFDisen:   func(mc *monsterCtx) { mc.resistOther(domain.RFResDise, 3, true, msgResist) },
	domain.GFNexus:   func(mc *monsterCtx) { mc.resistOther(domain.RFResNexus, 3, true, msgResist) },
	domain.GFWater:   func(mc *monsterCtx) { mc.resistOther(domain.RFImWater, 0, false, msgImmune) },
	domain.GFNether:  monNether,
	domain.GFChaos:   monChaos,
	domain.GFShard:   func(mc *monsterCtx) { mc.breath(domain.SpellBrShar, 3) },
	domain.GFSound:   monSound,
	domain.GFForce:   monForce,
	domain.GFInertia: func(mc *monsterCtx) { mc.breath(domain.SpellBrIner, 3) },
	domain.GFTime:    func(mc *monsterCtx) { mc.breath(domain.SpellBrTime, 3) },
	domain.GFGravity: monGravity,
	domain.GFDark:    func(mc *monsterCtx) { mc.breath(domain.SpellBrDark, 2) },
	domain.GFLight:   monLight,
	domain.GFLightWeak: func(mc *monsterCtx) {
		mc.hurtOnly(domain.RFHurtLight, msgCringeLight, msgShrivelLight)
	},
	domain.GFKillWall: func(mc *monsterCtx) {
		mc.hurtOnly(domain.RFHurtRock, msgLoseSkin, msgDissolve)
	},
	domain.GFOldDrain:   monOldDrain,
	domain.GFOldPoly:    monOldPoly,
	domain.GFOldClone:   monOldClone,
	domain.GFOldHeal:    monOldHeal,
	domain.GFOldSpeed:   monOldSpeed,
	domain.GFOldSlow:    monOldSlow,
	domain.GFOldSleep:   monOldSleep,
	domain.GFOldConf:    monOldConf,
	domain.GFAwayUndead: func(mc *monsterCtx) { mc.teleportAway(domain.RFUndead) },
	domain.GFAwayEvil:   func(mc *monsterCtx) { mc.teleportAway(domain.RFEvil) },
	domain.GFAwayAll:    monAwayAll,
	domain.GFTurnUndead: func(mc *monsterCtx) { mc.scare(domain.RFUndead) },
	domain.GFTurnEvil:   func(mc *monsterCtx) { mc.scare(domain.RFEvil) },
	domain.GFTurnAll:    monTurnAll,
	domain.GFDispUndead: func(mc *monsterCtx) { mc.dispel(domain.RFUndead) },
	domain.GFDispEvil:   func(mc *monsterCtx) { mc.dispel(domain.RFEvil) },
	domain.GFDispAll: func(mc *monsterCtx) {
		mc.hurt = msgShudder
		mc.die = msgDissolve
	},
}

func (mc *monsterCtx) has(f domain.RaceFlag) bool { return mc.race.Flags.Has(f) }

// note — игрок видит монстра и узнает о флаге.
func (mc *monsterCtx) note(fs ...domain.RaceFlag) {
	if !mc.seen {
		return
	}
	for _, f := range fs {
		mc.lore.NoteFlag(f)
	}
}

// randDivisor — делитель сопротивления d6+6.
func (mc *monsterCtx) randDivisor() int { return mc.l.RNG.Int1(6) + 6 }

// resistElement — иммунитет к стихии делит урон на factor.
func (mc *monsterCtx) resistElement(f domain.RaceFlag, factor int) {
	mc.note(f)
	if mc.has(f) {
		mc.hurt = msgResistALot
		mc.dam /= factor
	}
}

// resistOther умножает урон на factor; reduce дополнительно делит на d6+6.
func (mc *monsterCtx) resistOther(f domain.RaceFlag, factor int, reduce bool, msg monMsg) {
	mc.note(f)
	if !mc.has(f) {
		return
	}
	mc.hurt = msg
	mc.dam *= factor
	if reduce {
		mc.dam /= mc.randDivisor()
	}
}

// hurtImmune — иммунитет делит урон, уязвимость умножает.
func (mc *monsterCtx) hurtImmune(hurtF, immF domain.RaceFlag, hurtFactor, immFactor int, hurt, die monMsg) {
	mc.note(immF, hurtF)
	switch {
	case mc.has(immF):
		mc.hurt = msgResistALot
		mc.dam /= immFactor
	case mc.has(hurtF):
		mc.hurt = hurt
		mc.die = die
		mc.dam *= hurtFactor
	}
}

// hurtOnly — урон только уязвимым.
func (mc *monsterCtx) hurtOnly(f domain.RaceFlag, hurt, die monMsg) {
	mc.note(f)
	if mc.has(f) {
		mc.hurt = hurt
		mc.die = die
		return
	}
	mc.dam = 0
}

// breath — дышащие этой стихией сопротивляются ей.
func (mc *monsterCtx) breath(s domain.Spell, factor int) {
	if !mc.race.Spells.Has(s) {
		return
	}
	if mc.seen {
		mc.lore.Spells.Set(s)
	}
	mc.hurt = msgResist
	mc.dam *= factor
	mc.dam /= mc.randDivisor()
}

// timedDamage — состояние вдобавок к урону. Игрок как источник сильнее.
func (mc *monsterCtx) timedDamage(t monTimed, playerAmount, monsterAmount int) {
	if mc.who.IsPlayer() {
		mc.timed[t] = playerAmount
	} else {
		mc.timed[t] = monsterAmount
	}
}

func (mc *monsterCtx) teleportAway(f domain.RaceFlag) {
	mc.note(f)
	if mc.has(f) {
		if mc.seen {
			mc.obvious = true
		}
		mc.teleport = mc.dam
		mc.hurt = msgDisappear
	} else {
		mc.skipped = true
	}
	mc.dam = 0
}

func (mc *monsterCtx) scare(f domain.RaceFlag) {
	mc.note(f)
	if mc.has(f) {
		if mc.seen {
			mc.obvious = true
		}
		mc.fear()
	} else {
		mc.skipped = true
	}
	mc.dam = 0
}

// fear — испуг силы dam со спасброском по уровню.
func (mc *monsterCtx) fear() {
	power := mc.dam
	mc.dam = 0
	if mc.has(domain.RFNoFear) {
		mc.note(domain.RFNoFear)
		mc.hurt = msgUnaffected
		return
	}
	if systems.MonsterResists(mc.l.RNG, mc.race.Level, power) {
		mc.hurt = msgUnaffected
		return
	}
	mc.timed[mtFear] = mc.l.RNG.Damroll(3, power/2) + 1
}

func (mc *monsterCtx) dispel(f domain.RaceFlag) {
	mc.note(f)
	if mc.has(f) {
		if mc.seen {
			mc.obvious = true
		}
		mc.hurt = msgShudder
		mc.die = msgDissolve
		return
	}
	mc.skipped = true
	mc.dam = 0
}

// stunAmount — оглушение от удара; дальние оболочки слабее.
func (mc *monsterCtx) stunAmount(base, sides int) {
	r := mc.r
	rnd := mc.l.RNG.Int1(sides)
	plev := 0
	if mc.l.Player != nil {
		plev = mc.l.Player.Lev
	}
	mc.timedDamage(mtStun, (base+rnd+r+plev/5)/(r+1), (base+rnd+r)/(r+1))
}

func monFire(mc *monsterCtx) {
	mc.hurtImmune(domain.RFHurtFire, domain.RFImFire, 2, 9, msgCatchFire, msgDisintegrates)
}

func monCold(mc *monsterCtx) {
	mc.hurtImmune(domain.RFHurtCold, domain.RFImCold, 2, 9, msgBadlyFrozen, msgFreezeShatter)
}

func monIce(mc *monsterCtx) {
	mc.stunAmount(0, 15)
	monCold(mc)
}

func monSound(mc *monsterCtx) {
	mc.stunAmount(10, 15)
	mc.breath(domain.SpellBrSoun, 2)
}

func monForce(mc *monsterCtx) {
	mc.stunAmount(0, 15)
	mc.breath(domain.SpellBrWall, 3)
}

// Нежить не боится нетера, злые сопротивляются.
func monNether(mc *monsterCtx) {
	if mc.seen {
		mc.lore.NoteFlag(domain.RFUndead)
		mc.lore.NoteFlag(domain.RFResNeth)
		if !mc.has(domain.RFUndead) {
			if mc.race.Spells.Has(domain.SpellBrNeth) {
				mc.lore.Spells.Set(domain.SpellBrNeth)
			} else {
				mc.lore.NoteFlag(domain.RFEvil)
			}
		}
	}
	switch {
	case mc.has(domain.RFUndead):
		mc.hurt = msgImmune
		mc.dam = 0
	case mc.has(domain.RFResNeth):
		mc.hurt = msgResist
		mc.dam *= 3
		mc.dam /= mc.randDivisor()
	case mc.has(domain.RFEvil):
		mc.dam /= 2
		mc.hurt = msgResistSomewhat
	}
}

// Хаос путает и превращает; дышащие хаосом устойчивы к превращению.
func monChaos(mc *monsterCtx) {
	r := mc.r
	rnd := 5 + mc.l.RNG.Int1(11)
	plev := 0
	if mc.l.Player != nil {
		plev = mc.l.Player.Lev
	}
	mc.doPoly = !mc.race.Spells.Has(domain.SpellBrChao)
	mc.polySave = mc.l.RNG.Int1(90)
	mc.timedDamage(mtConf, (rnd+r+plev/5)/(r+1), (rnd+r)/(r+1))
	mc.breath(domain.SpellBrChao, 3)
	mc.hurt = msgNone
}

func monGravity(mc *monsterCtx) {
	if mc.l.RNG.Int1(127) > mc.race.Level {
		mc.teleport = 10
	}
	if mc.race.Spells.Has(domain.SpellBrGrav) {
		mc.teleport = 0
	}
	mc.breath(domain.SpellBrGrav, 3)
}

func monLight(mc *monsterCtx) {
	mc.note(domain.RFHurtLight)
	switch {
	case mc.race.Spells.Has(domain.SpellBrLite):
		if mc.seen {
			mc.lore.Spells.Set(domain.SpellBrLite)
		}
		mc.hurt = msgResist
		mc.dam *= 2
		mc.dam /= mc.randDivisor()
	case mc.has(domain.RFHurtLight):
		mc.hurt = msgCringeLight
		mc.die = msgShrivelLight
		mc.dam *= 2
	}
}

func monOldDrain(mc *monsterCtx) {
	mc.note(domain.RFUndead, domain.RFDemon)
	if mc.race.Flags.HasAny(domain.RFDemon, domain.RFUndead, domain.RFNonliving) {
		mc.hurt = msgUnaffected
		mc.obvious = false
		mc.dam = 0
	}
}

// Превращение: сила в dam, урона нет.
func monOldPoly(mc *monsterCtx) {
	mc.doPoly = true
	mc.polySave = -1
	mc.polyPower = mc.dam
	mc.dam = 0
}

func monOldClone(mc *monsterCtx) {
	mc.m.HP = mc.m.MaxHP
	mc.timed[mtFast] = 1
	if systems.MultiplyMonster(mc.l, mc.h) {
		mc.hurt = msgSpawn
	}
	mc.dam = 0
}

func monOldHeal(mc *monsterCtx) {
	mc.m.Sleep = 0
	mc.m.Heal(mc.dam)
	mc.hurt = msgHealthier
	mc.dam = 0
}

func monOldSpeed(mc *monsterCtx) {
	mc.timed[mtFast] = 1
	mc.dam = 0
}

func monOldSlow(mc *monsterCtx) {
	power := mc.dam
	mc.dam = 0
	if mc.race.Unique() || systems.MonsterResists(mc.l.RNG, mc.race.Level, power) {
		mc.hurt = msgUnaffected
		return
	}
	mc.timed[mtSlow] = 1
}

func monOldSleep(mc *monsterCtx) {
	power := mc.dam
	mc.dam = 0
	if mc.has(domain.RFNoSleep) {
		mc.note(domain.RFNoSleep)
		mc.hurt = msgUnaffected
		return
	}
	if mc.race.Unique() || systems.MonsterResists(mc.l.RNG, mc.race.Level, power) {
		mc.hurt = msgUnaffected
		return
	}
	mc.timed[mtSleep] = 500
}

func monOldConf(mc *monsterCtx) {
	power := mc.dam
	mc.dam = 0
	if mc.has(domain.RFNoConf) {
		mc.note(domain.RFNoConf)
		mc.hurt = msgUnaffected
		return
	}
	if mc.race.Unique() || systems.MonsterResists(mc.l.RNG, mc.race.Level, power) {
		mc.hurt = msgUnaffected
		return
	}
	mc.timed[mtConf] = power
}

func monAwayAll(mc *monsterCtx) {
	mc.teleport = mc.dam
	mc.dam = 0
	mc.hurt = msgDisappear
}

func monTurnAll(mc *monsterCtx) {
	mc.fear()
}

// msg выводит реакцию монстра, если игрок его видит.
func (mc *monsterCtx) msg(name string, m monMsg) {
	if m == msgNone {
		return
	}
	mc.l.Msg("%s%s", name, m)
}

// monsterAttack — урон от монстра или ловушки: уникальных не добивает,
// опыта не дает.
func (mc *monsterCtx) monsterAttack(name string) bool {
	m := mc.m
	dam := mc.dam
	if mc.race.Unique() && dam > m.HP {
		dam = m.HP
	}
	m.Sleep = 0
	m.HP -= dam

	if m.HP < 0 {
		die := mc.die
		if !mc.seen {
			die = msgDie
		}
		systems.KillByMonster(mc.l, mc.h, die.String())
		return true
	}
	switch {
	case mc.hurt != msgNone && mc.seen:
		mc.msg(name, mc.hurt)
	case dam > 0:
		systems.MessagePain(mc.l, mc.h, dam)
	}
	return false
}

// playerAttack — урон от игрока: опыт, добыча, страх.
func (mc *monsterCtx) playerAttack(name string) bool {
	die := mc.die
	if !mc.seen {
		die = msgDie
	}
	note := ""
	if mc.dam > mc.m.HP {
		note = die.String()
	}
	dead, fear := systems.MonTakeHit(mc.l, mc.h, mc.dam, note)
	if dead {
		return true
	}
	switch {
	case mc.seen && mc.hurt != msgNone:
		mc.msg(name, mc.hurt)
	case mc.dam > 0:
		systems.MessagePain(mc.l, mc.h, mc.dam)
	}
	if mc.seen && fear {
		mc.msg(name, msgFleeInTerror)
	}
	return false
}

// sideEffects — превращение, телепорт или временные состояния выжившего.
func (mc *monsterCtx) sideEffects(name string) {
	l, m := mc.l, mc.m
	switch {
	case mc.doPoly:
		if mc.race.Unique() {
			mc.msg(name, msgUnaffected)
			return
		}
		if mc.seen {
			mc.obvious = true
		}
		var resisted bool
		if mc.polySave < 0 {
			resisted = systems.MonsterResists(l.RNG, mc.race.Level, mc.polyPower)
		} else {
			resisted = mc.race.Level > mc.polySave
		}
		if resisted {
			if mc.typ == domain.GFOldPoly {
				mc.msg(name, msgMaintainShape)
			} else {
				mc.msg(name, msgUnaffected)
			}
			return
		}
		n := systems.PolyRace(l, m.Race)
		if n == m.Race {
			mc.msg(name, msgUnaffected)
			return
		}
		mc.msg(name, msgChange)
		at := m.Pos
		l.DeleteMonster(mc.h)
		mc.h = systems.PlaceMonsterAux(l, n, at, false, false)
		mc.m = l.Monster(mc.h)

	case mc.teleport > 0:
		systems.TeleportAway(l, mc.h, mc.teleport)

	default:
		mc.applyTimed(name)
	}
}

func (mc *monsterCtx) applyTimed(name string) {
	l, m := mc.l, mc.m
	t := &mc.timed
	applied := false

	if t[mtStun] > 0 {
		if mc.has(domain.RFNoStun) {
			mc.note(domain.RFNoStun)
		} else if m.Stunned > 0 {
			m.Stunned += t[mtStun]/2 + 1
			mc.msg(name, msgMoreDazed)
			applied = true
		} else {
			m.Stunned = t[mtStun]
			mc.msg(name, msgDazed)
			applied = true
		}
	}
	if t[mtConf] > 0 {
		if mc.has(domain.RFNoConf) {
			mc.note(domain.RFNoConf)
		} else {
			amount := l.RNG.Damroll(3, t[mtConf]/2) + 1
			if m.Confused > 0 {
				m.Confused += amount / 2
				mc.msg(name, msgMoreConfused)
			} else {
				m.Confused = amount
				mc.msg(name, msgConfused)
			}
			applied = true
		}
	}
	if t[mtSleep] > 0 {
		amount := t[mtSleep]
		if mc.who.IsPlayer() && l.Player != nil {
			amount = 500 + l.Player.Lev*10
		}
		m.Sleep += amount
		mc.msg(name, msgFallAsleep)
		applied = true
	}
	if t[mtFear] > 0 {
		m.Afraid += t[mtFear]
		mc.msg(name, msgFleeInTerror)
		applied = true
	}
	if t[mtFast] > 0 {
		if m.Speed < mc.race.Speed+20 {
			m.Speed += 10
		}
		mc.msg(name, msgFaster)
		applied = true
	}
	if t[mtSlow] > 0 {
		if m.Speed > 60 {
			m.Speed -= 10
		}
		mc.msg(name, msgSlower)
		applied = true
	}
	if applied && mc.seen {
		mc.obvious = true
	}
}

// projectM применяет проекцию к монстру в клетке p.
func projectM(l *domain.Level, who domain.Source, r int, p gruid.Point, dam int, typ domain.Element, obvious bool) bool {
	c := l.Cave
	// Стены защищают монстров.
	if !c.Floor(p) {
		return false
	}
	h, m := l.MonsterAt(p)
	if m == nil {
		return false
	}
	if who.Is(h) {
		return false
	}

	mc := monsterCtx{
		l:       l,
		who:     who,
		r:       r,
		p:       p,
		dam:     (dam + r) / (r + 1),
		typ:     typ,
		seen:    m.Visible,
		h:       h,
		m:       m,
		race:    l.RaceOf(m),
		lore:    l.LoreOf(m),
		obvious: obvious,
		die:     msgDie,
	}
	name := l.MonName(m)
	if mc.race.Unusual() {
		mc.die = msgDestroyed
	}

	handler, ok := monsterHandlers[typ]
	if ok {
		handler(&mc)
	} else if !typ.Valid() {
		logger.Log.WithFields(logrus.Fields{
			"component": "project",
			"element":   int(typ),
		}).Warn("unknown damage type")
		return false
	}

	if info := typ.Info(); info.ForceObv && mc.seen {
		mc.obvious = true
	}
	if mc.skipped {
		return false
	}

	if mc.dam > m.HP {
		mc.hurt = mc.die
	}

	if logger.Log.IsLevelEnabled(logrus.DebugLevel) {
		logger.Log.WithFields(logrus.Fields{
			"component": "project",
			"element":   typ,
			"race":      mc.race.Name,
			"dam":       mc.dam,
			"dist":      r,
		}).Debug("monster hit")
	}

	var died bool
	if who.IsPlayer() {
		died = mc.playerAttack(name)
	} else {
		died = mc.monsterAttack(name)
	}
	if !died {
		mc.sideEffects(name)
		l.Update |= domain.UpdMonsters
	}
	return mc.obvious
}
