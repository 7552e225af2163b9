package systems

import (
	"codeberg.org/anaseto/gruid"
	"github.com/sirupsen/logrus"

	"github.com/angband/angband-sub026/internal/domain"
	"github.com/angband/angband-sub026/pkg/logger"
)

// DiggingSkill — умение копать: сила плюс бонус кирки.
func DiggingSkill(p *domain.Player) int {
	d := p.StatCur[domain.StatStr] * 2
	if w := &p.Inven[domain.InvenWield]; w.Tval == domain.TvDigging {
		d += w.Pval * 20
	}
	return d
}

// Tunnel — игрок копает в направлении dir. Возвращает true, если проход
// расчищен. Попытка всегда стоит хода, кроме вечной стены и пустоты.
func Tunnel(l *domain.Level, dir int) (cleared, tookTurn bool) {
	p := l.Player
	at := p.Pos.Add(Dir(dir))
	c := l.Cave
	f := c.Feat(at)

	switch {
	case dir == 5 || f.Passable():
		l.Msg("You see nothing there to tunnel.")
		return false, false
	case f.IsPermanent():
		l.Msg("This seems to be permanent rock.")
		return false, false
	case f.IsClosedDoor():
		l.Msg("You cannot tunnel through doors.")
		return false, false
	}
	if h, m := l.MonsterAt(at); m != nil {
		PlayerAttack(l, h)
		return false, true
	}

	digging := DiggingSkill(p)
	switch {
	case f == domain.FeatRubble:
		if digging <= l.RNG.Int0(200) {
			l.Msg("You dig in the rubble.")
			return false, true
		}
		c.SetFeat(at, domain.FeatFloor)
		l.Msg("You have removed the rubble.")
		if l.RNG.Int0(100) < 10 && PlaceObject(l, at, l.Depth, false, false) {
			l.Msg("You have found something!")
		}
	case f.IsVein():
		quartz := f == domain.FeatQuartz || f == domain.FeatQuartzH || f == domain.FeatQuartzK
		need := 10 + l.RNG.Int0(400)
		if quartz {
			need = 20 + l.RNG.Int0(800)
		}
		if digging <= need {
			l.Msg("You tunnel into the %s.", f.Name())
			return false, true
		}
		c.SetFeat(at, domain.FeatFloor)
		if f.HasTreasure() {
			PlaceGold(l, at, l.Depth)
			l.Msg("You have found something!")
		} else {
			l.Msg("You have finished the tunnel.")
		}
	case f == domain.FeatSecret:
		// Потайная дверь копается как гранит, но находится как дверь.
		if digging <= 40+l.RNG.Int0(1600) {
			l.Msg("You tunnel into the granite wall.")
			if l.RNG.Int0(100) < 25 {
				l.Msg("You have found a secret door.")
				c.SetFeat(at, domain.FeatDoorHead)
			}
			return false, true
		}
		c.SetFeat(at, domain.FeatFloor)
		l.Msg("You have finished the tunnel.")
	default:
		if digging <= 40+l.RNG.Int0(1600) {
			l.Msg("You tunnel into the granite wall.")
			return false, true
		}
		c.SetFeat(at, domain.FeatFloor)
		l.Msg("You have finished the tunnel.")
	}

	l.Update |= domain.UpdView | domain.UpdFlow | domain.UpdMonsters
	logger.Log.WithFields(logrus.Fields{
		"component": "tunnel",
		"pos":       at,
		"feat":      f.Name(),
	}).Debug("tunnel cleared")
	return true, true
}

// Diggable — клетку стоит копать: завал или жила.
func Diggable(c *domain.Cave, p gruid.Point) bool {
	f := c.Feat(p)
	return f == domain.FeatRubble || f.IsVein()
}
