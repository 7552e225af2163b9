package systems

import (
	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
	"github.com/sirupsen/logrus"

	"github.com/angband/angband-sub026/internal/domain"
	"github.com/angband/angband-sub026/pkg/logger"
)

// flowPath — соседи для поля запаха: все клетки, кроме завалов и стен.
// Двери (включая потайные) пропускают запах.
type flowPath struct {
	c   *domain.Cave
	nbs paths.Neighbors
}

func (fp *flowPath) Neighbors(p gruid.Point) []gruid.Point {
	return fp.nbs.All(p, fp.open)
}

func (fp *flowPath) open(p gruid.Point) bool {
	return fp.c.InBounds(p) && fp.c.Feat(p) < domain.FeatRubble
}

// UpdateFlow пересчитывает поле звука и запаха от игрока на FlowDepth шагов.
// Клетки, до которых дошел поиск, получают When=FlowN и Cost=число шагов.
func UpdateFlow(l *domain.Level) {
	if l.Player == nil {
		return
	}
	c := l.Cave
	if l.Paths == nil {
		l.Paths = paths.NewPathRange(c.Range())
	}

	l.FlowN++
	if l.FlowN == 0 {
		// Переполнение счетчика: старые метки больше не отличить.
		for i := range c.When {
			c.When[i] = 0
		}
		l.FlowN = 1
	}

	fp := &flowPath{c: c}
	nodes := l.Paths.BreadthFirstMap(fp, []gruid.Point{l.Player.Pos}, domain.FlowDepth)
	for _, n := range nodes {
		c.SetFlow(n.P, l.FlowN, n.Cost)
	}

	if logger.Log.IsLevelEnabled(logrus.DebugLevel) {
		logger.Log.WithFields(logrus.Fields{
			"component": "flow_system",
			"flow_n":    l.FlowN,
			"cells":     len(nodes),
		}).Debug("flow field updated")
	}
}

// FlowFresh — клетка помечена последним обновлением поля.
func FlowFresh(l *domain.Level, p gruid.Point) bool {
	return l.Cave.FlowWhen(p) == l.FlowN && l.FlowN != 0
}

// HandleUpdates выполняет отложенные пересчеты после хода.
func HandleUpdates(l *domain.Level) {
	if l.Update&domain.UpdView != 0 {
		UpdateView(l)
		l.Update |= domain.UpdMonsters
	}
	if l.Update&domain.UpdFlow != 0 {
		UpdateFlow(l)
	}
	if l.Update&(domain.UpdMonsters|domain.UpdDistance) != 0 {
		UpdateMonsters(l)
	}
	l.Update = 0
}
