package systems

import (
	"codeberg.org/anaseto/gruid"
	"github.com/sirupsen/logrus"

	"github.com/angband/angband-sub026/internal/core/types"
	"github.com/angband/angband-sub026/internal/domain"
	"github.com/angband/angband-sub026/pkg/logger"
)

const (
	teleportTries = 500
	teleportMax   = 200
	// pickTries ограничивает выбор точки на кольце: на пустой карте
	// поиск иначе не закончится.
	pickTries = 10000
)

// findTeleport ищет пустую клетку на расстоянии [dis/2, dis] от from.
// После каждой неудачной серии дальность удваивается, минимум делится пополам.
func findTeleport(l *domain.Level, from gruid.Point, dis int, ok func(gruid.Point) bool) (gruid.Point, bool) {
	c := l.Cave
	lo := dis / 2
	for round := 0; ; round++ {
		dis = min(dis, teleportMax)
		for i := 0; i < teleportTries; i++ {
			var q gruid.Point
			found := false
			for k := 0; k < pickTries; k++ {
				q = gruid.Point{X: l.RNG.Spread(from.X, dis), Y: l.RNG.Spread(from.Y, dis)}
				if d := Distance(from, q); d >= lo && d <= dis {
					found = true
					break
				}
			}
			if !found || !c.InBoundsFully(q) || !c.Empty(q) || !ok(q) {
				continue
			}
			return q, true
		}
		if dis >= teleportMax && lo == 0 {
			return from, false
		}
		dis *= 2
		lo /= 2
	}
}

// TeleportAway переносит монстра на расстояние около dis.
func TeleportAway(l *domain.Level, h types.Handle, dis int) bool {
	m := l.Monster(h)
	if m == nil {
		return false
	}
	to, ok := findTeleport(l, m.Pos, dis, func(q gruid.Point) bool {
		return l.Cave.Feat(q) != domain.FeatGlyph
	})
	if !ok {
		return false
	}
	l.Swap(m.Pos, to)
	l.Update |= domain.UpdMonsters
	return true
}

// TeleportPlayer переносит игрока на расстояние около dis, не в хранилище.
func TeleportPlayer(l *domain.Level, dis int) bool {
	p := l.Player
	to, ok := findTeleport(l, p.Pos, dis, func(q gruid.Point) bool {
		return !l.Cave.Has(q, domain.InfoIcky)
	})
	if !ok {
		return false
	}
	l.Swap(p.Pos, to)
	l.Update |= domain.UpdView | domain.UpdFlow | domain.UpdDistance
	return true
}

// TeleportPlayerTo переносит игрока в ближайшую к target пустую клетку.
// Радиус поиска растет, когда все клетки кольца перепробованы.
func TeleportPlayerTo(l *domain.Level, target gruid.Point) bool {
	c := l.Cave
	p := l.Player
	dis, ctr := 0, 0
	for tries := 0; tries < teleportTries*teleportMax; tries++ {
		q := gruid.Point{X: l.RNG.Spread(target.X, dis), Y: l.RNG.Spread(target.Y, dis)}
		if c.InBoundsFully(q) && c.Empty(q) {
			l.Swap(p.Pos, q)
			l.Update |= domain.UpdView | domain.UpdFlow | domain.UpdDistance
			return true
		}
		ctr++
		if ctr > 4*dis*dis+4*dis+1 {
			ctr = 0
			dis++
		}
	}
	return false
}

// TeleportPlayerLevel отправляет игрока на уровень выше или ниже.
func TeleportPlayerLevel(l *domain.Level) {
	p := l.Player
	up := l.Depth > 0
	down := l.Depth < domain.MaxDepth-1
	if up && down {
		if l.RNG.Int0(100) < 50 {
			up = false
		} else {
			down = false
		}
	}

	switch {
	case up:
		l.Msg("You rise up through the ceiling.")
		p.NewDepth = l.Depth - 1
	case down:
		l.Msg("You sink through the floor.")
		p.NewDepth = l.Depth + 1
	default:
		l.Msg("Nothing happens.")
		return
	}
	p.Leaving = true
	logger.Log.WithFields(logrus.Fields{
		"component": "player",
		"from":      l.Depth,
		"to":        p.NewDepth,
	}).Info("level teleport")
}
