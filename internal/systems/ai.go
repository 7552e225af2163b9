package systems

import (
	"codeberg.org/anaseto/gruid"
	"github.com/sirupsen/logrus"

	"github.com/angband/angband-sub026/internal/domain"
	"github.com/angband/angband-sub026/pkg/logger"
)

// ChaseDir выбирает шаг игрока-автопилота от from к to.
// Сначала прямой путь, затем «скольжение» вдоль приоритетной оси.
// Возвращает 0, если все три варианта упираются в стену.
func ChaseDir(l *domain.Level, from, to gruid.Point) int {
	dxRaw := to.X - from.X
	dyRaw := to.Y - from.Y

	stepX := sign(dxRaw)
	stepY := sign(dyRaw)
	if stepX == 0 && stepY == 0 {
		return 0
	}

	// Попытка 1: Идеальный путь
	if canStep(l, from, stepX, stepY) {
		return DirOf(stepX, stepY)
	}

	// Попытка 2: Smart Sliding (выбор приоритетной оси)
	tryXFirst := abs(dxRaw) > abs(dyRaw)

	var dir int
	if tryXFirst {
		switch {
		case stepX != 0 && canStep(l, from, stepX, 0):
			dir = DirOf(stepX, 0)
		case stepY != 0 && canStep(l, from, 0, stepY):
			dir = DirOf(0, stepY)
		}
	} else {
		switch {
		case stepY != 0 && canStep(l, from, 0, stepY):
			dir = DirOf(0, stepY)
		case stepX != 0 && canStep(l, from, stepX, 0):
			dir = DirOf(stepX, 0)
		}
	}

	if dir == 0 && logger.Log.IsLevelEnabled(logrus.DebugLevel) {
		logger.Log.WithFields(logrus.Fields{
			"component": "chase",
			"from":      from,
			"to":        to,
		}).Debug("path is blocked")
	}
	return dir
}

// canStep — в клетку можно шагнуть или ударить: пол, дверь или монстр.
func canStep(l *domain.Level, from gruid.Point, dx, dy int) bool {
	q := from.Add(gruid.Point{X: dx, Y: dy})
	if !l.Cave.InBounds(q) {
		return false
	}
	f := l.Cave.Feat(q)
	return f.Passable() || f.IsClosedDoor()
}
