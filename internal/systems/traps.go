package systems

import (
	"codeberg.org/anaseto/gruid"
	"github.com/sirupsen/logrus"

	"github.com/angband/angband-sub026/internal/domain"
	"github.com/angband/angband-sub026/pkg/logger"
)

// Виды ловушек по смещению от FeatTrapHead.
const (
	trapDoor = iota
	trapPit
	trapSpikedPit
	trapPoisonPit
	trapSummon
	trapTeleport
	trapFire
	trapAcid
	trapDartSlow
	trapDartStr
	trapDartDex
	trapDartCon
	trapGasBlind
	trapGasConf
	trapGasPois
	trapGasSleep
)

// checkTrapHit — дротик попадает с силой 125 против брони.
func checkTrapHit(l *domain.Level, power int) bool {
	k := l.RNG.Int0(100)
	if k < 10 {
		return k < 5
	}
	return power > 0 && l.RNG.Int1(power) >= l.Player.AC()*3/4
}

// HitTrap срабатывает ловушку под игроком.
func HitTrap(l *domain.Level, at gruid.Point) {
	p := l.Player
	f := l.Cave.Feat(at)
	if !f.IsTrap() {
		return
	}
	kind := int(f - domain.FeatTrapHead)

	logger.Log.WithFields(logrus.Fields{
		"component": "trap",
		"kind":      kind,
		"pos":       at,
	}).Debug("trap triggered")

	switch kind {
	case trapDoor:
		l.Msg("You fall through a trap door!")
		TakeHit(l, l.RNG.Damroll(2, 8), "a trap door")
		if !p.IsDead && l.Depth < domain.MaxDepth-1 {
			p.NewDepth = l.Depth + 1
			p.Leaving = true
		}
	case trapPit:
		l.Msg("You fall into a pit!")
		TakeHit(l, l.RNG.Damroll(2, 6), "a pit")
	case trapSpikedPit, trapPoisonPit:
		l.Msg("You fall into a spiked pit!")
		dam := l.RNG.Damroll(2, 6)
		if l.RNG.Int0(100) < 50 {
			l.Msg("You are impaled!")
			dam *= 2
			if kind == trapPoisonPit && !p.Has(domain.OFResPois) && !p.Is(domain.TmdOppPois) {
				IncTimed(l, domain.TmdPoisoned, l.RNG.Int1(dam))
			} else {
				IncTimed(l, domain.TmdCut, l.RNG.Int1(dam))
			}
		}
		TakeHit(l, dam, "a spiked pit")
	case trapSummon:
		l.Msg("You are enveloped in a cloud of smoke!")
		l.Cave.SetFeat(at, domain.FeatFloor)
		for i := 0; i < 2+l.RNG.Int1(3); i++ {
			SummonSpecific(l, at, l.Depth, SummonAny, 0)
		}
	case trapTeleport:
		l.Msg("You hit a teleport trap!")
		TeleportPlayer(l, 100)
	case trapFire:
		l.Msg("You are enveloped in flames!")
		TakeHit(l, l.RNG.Damroll(4, 6), "a fire trap")
	case trapAcid:
		l.Msg("You are splashed with acid!")
		TakeHit(l, l.RNG.Damroll(4, 6), "an acid trap")
	case trapDartSlow, trapDartStr, trapDartDex, trapDartCon:
		if !checkTrapHit(l, 125) {
			l.Msg("A small dart barely misses you.")
			return
		}
		l.Msg("A small dart hits you!")
		TakeHit(l, l.RNG.Damroll(1, 4), "a dart trap")
		switch kind {
		case trapDartSlow:
			IncTimed(l, domain.TmdSlow, l.RNG.Int0(20)+20)
		case trapDartStr:
			DecStat(l, domain.StatStr, false)
		case trapDartDex:
			DecStat(l, domain.StatDex, false)
		case trapDartCon:
			DecStat(l, domain.StatCon, false)
		}
	case trapGasBlind:
		l.Msg("You are surrounded by a black gas!")
		if !p.Has(domain.OFResBlind) {
			IncTimed(l, domain.TmdBlind, l.RNG.Int0(50)+25)
		}
	case trapGasConf:
		l.Msg("You are surrounded by a gas of scintillating colors!")
		if !p.Has(domain.OFResConfu) {
			IncTimed(l, domain.TmdConfused, l.RNG.Int0(20)+10)
		}
	case trapGasPois:
		l.Msg("You are surrounded by a pungent green gas!")
		if !p.Has(domain.OFResPois) && !p.Is(domain.TmdOppPois) {
			IncTimed(l, domain.TmdPoisoned, l.RNG.Int0(20)+10)
		}
	case trapGasSleep:
		l.Msg("You are surrounded by a strange white mist!")
		if !p.Has(domain.OFFreeAct) {
			IncTimed(l, domain.TmdParalyzed, l.RNG.Int0(10)+5)
		}
	}
}
