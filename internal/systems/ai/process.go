package ai

import (
	"codeberg.org/anaseto/gruid"
	"github.com/sirupsen/logrus"

	"github.com/angband/angband-sub026/internal/core/types"
	"github.com/angband/angband-sub026/internal/domain"
	"github.com/angband/angband-sub026/internal/systems"
	"github.com/angband/angband-sub026/pkg/logger"
)

// moveResult — что произошло за попытку сделать шаг.
type moveResult struct {
	doTurn, doMove, doView bool

	openDoor, bashDoor bool
	takeItem, killItem bool
	moveBody, killBody bool
	passWall, killWall bool
}

// wearOff уменьшает счетчик состояния и сообщает, прошло ли оно.
func wearOff(v *int, d int) bool {
	if *v > d {
		*v -= d
		return false
	}
	*v = 0
	return true
}

// ProcessMonster — один ход монстра: сон, оглушение, замешательство,
// страх, размножение, заклинание и, наконец, движение или атака.
func ProcessMonster(l *domain.Level, h types.Handle) {
	m := l.Monster(h)
	if m == nil {
		return
	}
	r := l.RaceOf(m)
	lore := l.LoreOf(m)
	p := l.Player

	if m.Sleep > 0 {
		notice := int64(l.RNG.Int0(1024))
		if notice*notice*notice > int64(p.Noise()) {
			return
		}
		d := 1
		if m.Cdis < 50 && m.Cdis > 0 {
			d = 100 / m.Cdis
		}
		if m.Sleep > d {
			m.Sleep -= d
			if m.Visible {
				lore.Ignore++
			}
			return
		}
		m.Sleep = 0
		if m.Visible {
			l.Msg("%s wakes up.", l.MonName(m))
			lore.Wake++
		}
		// Проснувшийся монстр действует уже в этот ход.
	}

	if m.Stunned > 0 {
		d := 1
		if l.RNG.Int0(5000) <= r.Level*r.Level {
			d = m.Stunned
		}
		if wearOff(&m.Stunned, d) && m.Visible {
			l.Msg("%s is no longer stunned.", l.MonName(m))
		}
		if m.Stunned > 0 {
			return
		}
	}

	if m.Confused > 0 {
		d := l.RNG.Int1(r.Level/10 + 1)
		if wearOff(&m.Confused, d) && m.Visible {
			l.Msg("%s is no longer confused.", l.MonName(m))
		}
	}

	if m.Afraid > 0 {
		d := l.RNG.Int1(r.Level/10 + 1)
		if wearOff(&m.Afraid, d) && m.Visible {
			l.Msg("%s recovers %s courage.", l.MonName(m), r.Possessive())
		}
	}

	if r.Flags.Has(domain.RFMultiply) && l.NumRepro < domain.MaxRepro {
		k := 0
		for y := m.Pos.Y - 1; y <= m.Pos.Y+1; y++ {
			for x := m.Pos.X - 1; x <= m.Pos.X+1; x++ {
				q := m.Pos
				q.X, q.Y = x, y
				if !l.Cave.InBounds(q) {
					continue
				}
				if _, ok := l.Cave.At(q).Monster(); ok {
					k++
				}
			}
		}
		if k < 4 && (k == 0 || l.RNG.Int0(k*domain.MonMultAdj) == 0) {
			if systems.MultiplyMonster(l, h) {
				if m.Visible {
					lore.NoteFlag(domain.RFMultiply)
				}
				return
			}
		}
	}

	if MakeAttackSpell(l, h) {
		return
	}
	// Заклинание могло убить монстра или переместить его.
	if m = l.Monster(h); m == nil {
		return
	}

	stagger := false
	if m.Confused > 0 {
		stagger = true
	} else if r.Flags.HasAny(domain.RFRand25, domain.RFRand50) {
		chance := 0
		if r.Flags.Has(domain.RFRand25) {
			chance += 25
		}
		if r.Flags.Has(domain.RFRand50) {
			chance += 50
		}
		if l.RNG.Int0(100) < chance {
			if m.Visible {
				if r.Flags.Has(domain.RFRand25) {
					lore.NoteFlag(domain.RFRand25)
				}
				if r.Flags.Has(domain.RFRand50) {
					lore.NoteFlag(domain.RFRand50)
				}
			}
			stagger = true
		}
	}

	var mm [5]int
	if !stagger {
		var ok bool
		if mm, ok = GetMoves(l, h); !ok {
			return
		}
	}

	var res moveResult
	for i := 0; i < 5; i++ {
		d := mm[i]
		if stagger {
			d = systems.DDD[l.RNG.Int0(8)]
		}
		tryMove(l, h, m.Pos.Add(systems.Dir(d)), &res)
		if res.doTurn || l.Monster(h) == nil || p.Leaving {
			break
		}
	}
	if m = l.Monster(h); m == nil {
		return
	}

	if l.Opts.SmartMonsters && !res.doTurn && !res.doMove {
		if MakeAttackSpell(l, h) {
			return
		}
	}

	if res.doView {
		l.Update |= domain.UpdView | domain.UpdMonsters | domain.UpdFlow
	}

	if m.Visible {
		learned := []struct {
			did bool
			f   domain.RaceFlag
		}{
			{res.openDoor, domain.RFOpenDoor},
			{res.bashDoor, domain.RFBashDoor},
			{res.takeItem, domain.RFTakeItem},
			{res.killItem, domain.RFKillItem},
			{res.moveBody, domain.RFMoveBody},
			{res.killBody, domain.RFKillBody},
			{res.passWall, domain.RFPassWall},
			{res.killWall, domain.RFKillWall},
		}
		for _, e := range learned {
			if e.did {
				lore.NoteFlag(e.f)
			}
		}
	}

	// Загнанный в угол монстр перестает бояться.
	if !res.doTurn && !res.doMove && m.Afraid > 0 {
		m.Afraid = 0
		if m.Visible {
			l.Msg("%s turns to fight!", l.MonName(m))
		}
	}
}

// tryMove — попытка шагнуть в клетку n.
func tryMove(l *domain.Level, h types.Handle, n gruid.Point, res *moveResult) {
	m := l.Monster(h)
	r := l.RaceOf(m)
	lore := l.LoreOf(m)
	c := l.Cave
	if !c.InBounds(n) {
		return
	}
	old := m.Pos
	feat := c.Feat(n)
	doMove := false

	switch {
	case c.Floor(n):
		doMove = true
	case feat.IsPermanent():
	case r.Flags.Has(domain.RFPassWall):
		doMove = true
		res.passWall = true
	case r.Flags.Has(domain.RFKillWall):
		doMove = true
		res.killWall = true
		c.ClearInfo(n, domain.InfoMark)
		c.SetFeat(n, domain.FeatFloor)
		if systems.PlayerHasLos(l, n) {
			res.doView = true
		}
	case feat.IsClosedDoor() || feat == domain.FeatSecret:
		res.doTurn = true
		doMove = openDoor(l, m, r, n, res)
	}

	if doMove && c.Feat(n) == domain.FeatGlyph {
		doMove = false
		if l.RNG.Int1(domain.BreakGlyph) < r.Level {
			if c.Has(n, domain.InfoMark) {
				l.Msg("The rune of protection is broken!")
			}
			c.ClearInfo(n, domain.InfoMark)
			c.SetFeat(n, domain.FeatFloor)
			doMove = true
		}
	}

	occ := c.At(n)
	if doMove && occ.IsPlayer() {
		doMove = false
		if r.Flags.Has(domain.RFNeverBlow) {
			if m.Visible {
				lore.NoteFlag(domain.RFNeverBlow)
			}
		} else {
			MakeAttackNormal(l, h)
			res.doTurn = true
		}
	}

	if doMove && r.Flags.Has(domain.RFNeverMove) {
		if m.Visible {
			lore.NoteFlag(domain.RFNeverMove)
		}
		doMove = false
	}

	if oh, ok := occ.Monster(); doMove && ok {
		doMove = false
		other := l.Monster(oh)
		or := l.RaceOf(other)
		switch {
		case r.Flags.Has(domain.RFKillBody) && r.Mexp > or.Mexp:
			res.killBody = true
			doMove = true
			logger.Log.WithFields(logrus.Fields{
				"component": "monster_ai",
				"killer":    r.Name,
				"victim":    or.Name,
			}).Debug("monster kills weaker monster")
			l.DeleteMonster(oh)
		case r.Flags.Has(domain.RFMoveBody) && r.Mexp > or.Mexp && c.Floor(old):
			res.moveBody = true
			doMove = true
		}
	}

	if !doMove {
		return
	}
	res.doTurn = true
	res.doMove = true
	l.Swap(old, n)
	pickupItems(l, h, r, n, res)
}

// openDoor — монстр возится с дверью. Возвращает, прошел ли он насквозь.
func openDoor(l *domain.Level, m *domain.Monster, r *domain.Race, n gruid.Point, res *moveResult) bool {
	c := l.Cave
	feat := c.Feat(n)
	mayBash := true

	if r.Flags.Has(domain.RFOpenDoor) {
		switch {
		case feat == domain.FeatDoorHead || feat == domain.FeatSecret:
			res.openDoor = true
			mayBash = false
		case feat < domain.FeatDoorHead+8:
			// Запертая дверь: монстр пробует отпереть.
			if l.RNG.Int0(m.HP/10) > feat.LockPower() {
				c.SetFeat(n, domain.FeatDoorHead)
				mayBash = false
			}
		}
	}

	doMove := false
	if mayBash && r.Flags.Has(domain.RFBashDoor) {
		k := int(c.Feat(n)-domain.FeatDoorHead) & 7
		if l.RNG.Int0(m.HP/10) > k {
			l.Msg("You hear a door burst open!")
			res.bashDoor = true
			doMove = true
		}
	}

	if res.openDoor || res.bashDoor {
		if res.bashDoor && l.RNG.Int0(100) < 50 {
			c.SetFeat(n, domain.FeatBroken)
		} else {
			c.SetFeat(n, domain.FeatOpen)
		}
		if systems.PlayerHasLos(l, n) {
			res.doView = true
		}
	}
	return doMove
}

// pickupItems — монстр подбирает или давит предметы в новой клетке.
func pickupItems(l *domain.Level, h types.Handle, r *domain.Race, n gruid.Point, res *moveResult) {
	if !r.Flags.HasAny(domain.RFTakeItem, domain.RFKillItem) {
		return
	}
	m := l.Monster(h)
	inView := systems.PlayerHasLos(l, n)
	name := l.MonName(m)
	for _, oh := range l.Pile(n) {
		o := l.Object(oh)
		if o == nil || o.Tval == domain.TvGold {
			continue
		}
		switch {
		case o.IsArtifact() || o.Slays(r):
			if r.Flags.Has(domain.RFTakeItem) {
				res.takeItem = true
				if m.Visible && inView {
					l.Msg("%s tries to pick up %s, but fails.", name, o.Desc())
				}
			}
		case r.Flags.Has(domain.RFTakeItem):
			res.takeItem = true
			if inView {
				l.Msg("%s picks up %s.", name, o.Desc())
			}
			l.GiveToMonster(oh, h)
		default:
			res.killItem = true
			if inView {
				l.Msg("%s crushes %s.", name, o.Desc())
			}
			l.DeleteObject(oh)
		}
	}
}

// GrantEnergy — прирост энергии всем за один игровой ход.
func GrantEnergy(l *domain.Level) {
	if p := l.Player; p != nil {
		p.Energy += domain.ExtractEnergy(p.Speed)
	}
	for _, h := range l.Monsters.Handles() {
		m := l.Monster(h)
		m.Energy += domain.ExtractEnergy(m.Speed)
	}
}

// ProcessMonsters дает ход всем монстрам, накопившим не меньше minEnergy.
// Рожденные в этот ход монстры пропускают его. Монстр действует, только
// если слышит, видит или чует игрока.
func ProcessMonsters(l *domain.Level, minEnergy int) {
	handles := l.Monsters.Handles()
	p := l.Player
	acted := 0
	for i := len(handles) - 1; i >= 0; i-- {
		if p.Leaving {
			break
		}
		h := handles[i]
		m := l.Monster(h)
		if m == nil || !m.Alive() {
			continue
		}
		if m.MFlags.Has(domain.MFBorn) {
			m.MFlags.Clear(domain.MFBorn)
			continue
		}
		if m.Energy < minEnergy {
			continue
		}
		m.Energy -= domain.TurnEnergy

		r := l.RaceOf(m)
		c := l.Cave
		test := m.Cdis <= r.Aaf || systems.PlayerHasLos(l, m.Pos)
		if !test && l.Opts.FlowBySound {
			cost := c.FlowCost(m.Pos)
			test = c.FlowWhen(m.Pos) == c.FlowWhen(p.Pos) && cost < domain.FlowDepth && cost < r.Aaf
		}
		if !test {
			continue
		}
		ProcessMonster(l, h)
		acted++
	}

	if acted > 0 && logger.Log.IsLevelEnabled(logrus.TraceLevel) {
		logger.Log.WithFields(logrus.Fields{
			"component":  "monster_ai",
			"turn":       l.Turn,
			"acted":      acted,
			"min_energy": minEnergy,
		}).Trace("monsters processed")
	}
}
