package systems

import (
	"github.com/sirupsen/logrus"

	"github.com/angband/angband-sub026/internal/domain"
	"github.com/angband/angband-sub026/pkg/logger"
)

// Периоды обслуживания мира в игровых ходах.
const (
	WorldPeriod = 10
	RegenPeriod = 100
)

// cutDamage — потеря здоровья от раны за период по ее тяжести.
func cutDamage(cut int) int {
	switch {
	case cut > 1000:
		return 200
	case cut > 200:
		return 80
	case cut > 100:
		return 32
	case cut > 50:
		return 16
	case cut > 25:
		return 7
	case cut > 10:
		return 3
	}
	return 1
}

// ProcessWorld — обслуживание мира раз в WorldPeriod ходов: яд и раны,
// восстановление здоровья, истечение временных эффектов. Раз в
// RegenPeriod ходов лечатся монстры.
func ProcessWorld(l *domain.Level) {
	p := l.Player
	if p != nil && !p.IsDead {
		processPlayer(l, p)
	}
	if l.Turn%RegenPeriod == 0 {
		RegenMonsters(l)
	}
}

func processPlayer(l *domain.Level, p *domain.Player) {
	if p.Is(domain.TmdPoisoned) {
		TakeHit(l, 1, "poison")
	}
	if p.Is(domain.TmdCut) {
		TakeHit(l, cutDamage(p.Timed[domain.TmdCut]), "a fatal wound")
	}
	if p.IsDead {
		return
	}

	// Раненый и отравленный сам не лечится.
	if !p.Is(domain.TmdPoisoned) && !p.Is(domain.TmdCut) && p.Chp < p.Mhp {
		n := max(1, p.Mhp/100)
		if p.Has(domain.OFRegen) {
			n *= 2
		}
		HealPlayer(l, n)
	}

	for t := domain.TmdFast; t < domain.TmdMax; t++ {
		if p.Timed[t] == 0 {
			continue
		}
		dec := 1
		// Оглушение и раны проходят быстрее у крепких.
		if t == domain.TmdStun || t == domain.TmdCut {
			dec = max(1, p.StatCur[domain.StatCon]/6-1)
		}
		DecTimed(l, t, dec)
	}
}

// RegenMonsters — монстры восстанавливают по проценту здоровья,
// регенерирующие вдвое.
func RegenMonsters(l *domain.Level) {
	healed := 0
	for _, h := range l.Monsters.Handles() {
		m := l.Monster(h)
		if m.HP >= m.MaxHP {
			continue
		}
		frac := max(1, m.MaxHP/100)
		if r := l.RaceOf(m); r != nil && r.Flags.Has(domain.RFRegenerate) {
			frac *= 2
		}
		if m.Heal(frac) {
			healed++
		}
	}
	if healed > 0 && logger.Log.IsLevelEnabled(logrus.TraceLevel) {
		logger.Log.WithFields(logrus.Fields{
			"component": "upkeep",
			"turn":      l.Turn,
			"healed":    healed,
		}).Trace("monsters regenerated")
	}
}
