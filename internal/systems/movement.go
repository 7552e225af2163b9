package systems

import (
	"codeberg.org/anaseto/gruid"
	"github.com/sirupsen/logrus"

	"github.com/angband/angband-sub026/internal/core/types"
	"github.com/angband/angband-sub026/internal/domain"
	"github.com/angband/angband-sub026/pkg/logger"
)

// MovementResult - чем закончилась попытка шага игрока
type MovementResult struct {
	To         gruid.Point
	HasMoved   bool
	Attacked   types.Handle // Если врезались в монстра (атака)
	IsWall     bool         // Если врезались в стену или дверь
	OpenedDoor bool
	// TookTurn — попытка стоила хода (в стену шагнуть можно бесплатно).
	TookTurn bool
}

// MovePlayer — шаг игрока в направлении dir (1..9). В монстра — атака,
// в закрытую дверь — попытка открыть, в стену — сообщение без траты хода.
func MovePlayer(l *domain.Level, dir int) MovementResult {
	p := l.Player
	c := l.Cave

	// Растерянный игрок идет куда попало.
	if p.Confused() && (dir == 5 || l.RNG.Int0(100) < 40) {
		dir = DDD[l.RNG.Int0(8)]
	}
	to := p.Pos.Add(Dir(dir))
	res := MovementResult{To: to}
	if dir == 5 || !c.InBounds(to) {
		res.IsWall = true
		return res
	}

	if h, m := l.MonsterAt(to); m != nil {
		res.Attacked = h
		res.TookTurn = true
		PlayerAttack(l, h)
		return res
	}

	f := c.Feat(to)
	if !f.Passable() {
		res.IsWall = true
		switch {
		case f.IsClosedDoor():
			res.TookTurn = true
			res.OpenedDoor = openDoor(l, to)
		case !c.Has(to, domain.InfoMark):
			// Незнакомую преграду игрок нащупывает.
			c.SetInfo(to, domain.InfoMark)
			l.Msg("You feel %s blocking your way.", blockerName(f))
		default:
			l.Msg("There is %s blocking your way.", blockerName(f))
		}
		return res
	}

	l.Swap(p.Pos, to)
	res.HasMoved = true
	res.TookTurn = true
	l.Update |= domain.UpdView | domain.UpdFlow | domain.UpdMonsters

	if f == domain.FeatInvis {
		l.Msg("You found a trap.")
		PickTrap(l, to)
		f = c.Feat(to)
	}
	PlayerPickup(l, false)
	if f.IsTrap() {
		HitTrap(l, to)
	}

	if logger.Log.IsLevelEnabled(logrus.TraceLevel) {
		logger.Log.WithFields(logrus.Fields{
			"component": "movement_system",
			"to":        to,
		}).Trace("player moved")
	}
	return res
}

func blockerName(f domain.Feature) string {
	switch {
	case f == domain.FeatRubble:
		return "a pile of rubble"
	case f.IsClosedDoor():
		return "a door"
	}
	return "a wall"
}

// openDoor открывает закрытую дверь или пробует вскрыть замок.
func openDoor(l *domain.Level, at gruid.Point) bool {
	f := l.Cave.Feat(at)
	lock := f.LockPower()
	if lock == 0 {
		l.Cave.SetFeat(at, domain.FeatOpen)
		l.Update |= domain.UpdView | domain.UpdFlow
		return true
	}
	// Заклиненную дверь не открыть.
	if f >= domain.FeatDoorHead+0x08 {
		l.Msg("The door appears to be stuck.")
		return false
	}
	j := l.Player.SkillThn/2 - lock*4
	if j < 2 {
		j = 2
	}
	if l.RNG.Int0(100) < j {
		l.Msg("You have picked the lock.")
		l.Cave.SetFeat(at, domain.FeatOpen)
		l.Update |= domain.UpdView | domain.UpdFlow
		GainExp(l, 1)
		return true
	}
	l.Msg("You failed to pick the lock.")
	return false
}
