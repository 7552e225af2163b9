package systems

import (
	"github.com/sirupsen/logrus"

	"github.com/angband/angband-sub026/internal/core/types"
	"github.com/angband/angband-sub026/internal/domain"
	"github.com/angband/angband-sub026/pkg/logger"
)

// BthPlusAdj — вес бонуса к попаданию в шансе удара.
const BthPlusAdj = 3

// slayRule — множитель урона оружия против расы с флагом race.
type slayRule struct {
	obj  domain.ObjFlag
	race domain.RaceFlag
	mult int
}

var slayRules = []slayRule{
	{domain.OFSlayAnimal, domain.RFAnimal, 2},
	{domain.OFSlayEvil, domain.RFEvil, 2},
	{domain.OFSlayUndead, domain.RFUndead, 3},
	{domain.OFSlayDemon, domain.RFDemon, 3},
	{domain.OFSlayOrc, domain.RFOrc, 3},
	{domain.OFSlayTroll, domain.RFTroll, 3},
	{domain.OFSlayGiant, domain.RFGiant, 3},
	{domain.OFSlayDragon, domain.RFDragon, 3},
	{domain.OFKillDragon, domain.RFDragon, 5},
}

// TestHitNorm — попадание в ближнем бою: 5% всегда, 5% никогда,
// иначе шанс против 3/4 брони. Невидимую цель задеть вдвое труднее.
func TestHitNorm(l *domain.Level, chance, ac int, vis bool) bool {
	k := l.RNG.Int0(100)
	if k < 10 {
		return k < 5
	}
	if !vis {
		chance /= 2
	}
	return chance > 0 && l.RNG.Int0(chance) >= ac*3/4
}

// slayMult — лучший множитель оружия против монстра. Замеченный
// множитель попадает в знания о расе.
func slayMult(l *domain.Level, o *domain.Object, m *domain.Monster) int {
	r := l.RaceOf(m)
	mult := 1
	for _, s := range slayRules {
		if !o.Flags.Has(s.obj) || !r.Flags.Has(s.race) {
			continue
		}
		if m.Visible {
			l.LoreOf(m).NoteFlag(s.race)
		}
		mult = max(mult, s.mult)
	}
	return mult
}

// playerBlows — число ударов за ход.
func playerBlows(p *domain.Player) int {
	return min(4, 1+p.Lev/15)
}

// PlayerAttack — рукопашная атака игрока по монстру h.
// Возвращает true, если монстр погиб.
func PlayerAttack(l *domain.Level, h types.Handle) bool {
	m := l.Monster(h)
	if m == nil {
		return false
	}
	p := l.Player
	r := l.RaceOf(m)
	name := l.MonName(m)

	combatLogger := logger.Log.WithFields(logrus.Fields{
		"component": "combat_system",
		"target":    r.Name,
		"pos":       m.Pos,
	})

	// Бьем — значит будим.
	m.Sleep = 0

	if p.Is(domain.TmdAfraid) {
		l.Msg("You are too afraid to attack %s!", name)
		return false
	}

	w := &p.Inven[domain.InvenWield]
	chance := p.SkillThn + w.ToH*BthPlusAdj

	blows := playerBlows(p)
	for i := 0; i < blows; i++ {
		if !TestHitNorm(l, chance, r.AC, m.Visible) {
			l.Msg("You miss %s.", name)
			continue
		}
		l.Msg("You hit %s.", name)

		dam := 1
		if !w.IsEmpty() {
			dam = l.RNG.Damroll(w.DD, w.DS) * slayMult(l, w, m)
			dam += w.ToD
		}
		dam = max(0, dam)

		dead, fear := MonTakeHit(l, h, dam, "")
		combatLogger.WithFields(logrus.Fields{
			"blow":   i + 1,
			"damage": dam,
			"dead":   dead,
		}).Debug("Attack resolved.")
		if dead {
			return true
		}

		MessagePain(l, h, dam)
		if fear && m.Visible {
			l.Msg("%s flees in terror!", name)
		}
	}
	return false
}
