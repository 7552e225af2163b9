package systems

import (
	"codeberg.org/anaseto/gruid"
	"github.com/sirupsen/logrus"

	"github.com/angband/angband-sub026/internal/domain"
	"github.com/angband/angband-sub026/pkg/logger"
)

// Мультипликаторы для трансформации координат в 8 октантов
var multipliers = [4][8]int{
	{1, 0, 0, -1, -1, 0, 0, 1},
	{0, 1, -1, 0, 0, -1, 1, 0},
	{0, 1, 1, 0, 0, -1, -1, 0},
	{1, 0, 0, 1, -1, 0, 0, -1},
}

// LightRadius — радиус света игрока: 2 с источником света, иначе 1.
func LightRadius(p *domain.Player) int {
	if !p.Inven[domain.InvenLight].IsEmpty() {
		return 2
	}
	return 1
}

// UpdateView пересчитывает поле зрения игрока: InfoView для клеток в
// пределах MaxSight, InfoSeen — для освещенных из них. Увиденные
// интересные клетки запоминаются (InfoMark).
func UpdateView(l *domain.Level) {
	c := l.Cave
	p := l.Player
	if p == nil {
		return
	}

	for i := range c.Info {
		c.Info[i] &^= domain.InfoView | domain.InfoSeen
	}

	light := LightRadius(p)
	blind := p.Blind()
	seen := 0

	mark := func(q gruid.Point) {
		if !c.InBounds(q) {
			return
		}
		c.SetInfo(q, domain.InfoView)
		if blind {
			return
		}
		if c.Has(q, domain.InfoGlow) || Distance(q, p.Pos) <= light {
			c.SetInfo(q, domain.InfoSeen)
			seen++
			if !c.Feat(q).Boring() || c.Has(q, domain.InfoGlow) {
				c.SetInfo(q, domain.InfoMark)
			}
			for _, oh := range l.Pile(q) {
				l.Object(oh).Marked = true
			}
		}
	}

	mark(p.Pos)
	for i := 0; i < 8; i++ {
		castLight(c, p.Pos, 1, 1.0, 0.0, domain.MaxSight,
			multipliers[0][i], multipliers[1][i],
			multipliers[2][i], multipliers[3][i], mark)
	}

	if logger.Log.IsLevelEnabled(logrus.DebugLevel) {
		logger.Log.WithFields(logrus.Fields{
			"component":    "fov_system",
			"observer_pos": p.Pos,
			"seen":         seen,
		}).Debug("FOV calculation complete.")
	}
}

func castLight(c *domain.Cave, o gruid.Point, row int, start, end float64, radius, xx, xy, yx, yy int, mark func(gruid.Point)) {
	if start < end {
		return
	}

	radiusSq := float64(radius * radius)

	for j := row; j <= radius; j++ {
		dx, dy := -j-1, -j
		blocked := false
		newStart := start

		for {
			dx++
			if dx > 0 {
				break
			}

			// Расчет наклонов (Slopes)
			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			// Трансформация координат в глобальные
			q := gruid.Point{X: o.X + dx*xx + dy*xy, Y: o.Y + dx*yx + dy*yy}

			if float64(dx*dx+dy*dy) < radiusSq {
				mark(q)
			}

			wall := !c.Floor(q)
			if blocked {
				// Идем вдоль стены
				if wall {
					newStart = rSlope
					continue
				}
				blocked = false
				start = newStart
			} else if wall && j < radius {
				// Наткнулись на стену: следующий ряд сканируем рекурсивно
				blocked = true
				castLight(c, o, j+1, start, lSlope, radius, xx, xy, yx, yy, mark)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}

// PlayerHasLos — клетка в поле зрения игрока (player_has_los_bold).
func PlayerHasLos(l *domain.Level, q gruid.Point) bool {
	return l.Cave.Has(q, domain.InfoView)
}

// UpdateMonsters пересчитывает видимость монстров и расстояние до игрока.
func UpdateMonsters(l *domain.Level) {
	p := l.Player
	if p == nil {
		return
	}
	flags := p.Flags()
	light := LightRadius(p)
	for _, h := range l.Monsters.Handles() {
		m := l.Monster(h)
		r := l.RaceOf(m)
		m.Cdis = Distance(m.Pos, p.Pos)

		vis := false
		switch {
		case flags.Has(domain.OFTelepathy) && !r.Flags.HasAny(domain.RFEmptyMind):
			vis = true
		case p.Blind() || m.Cdis > domain.MaxSight:
		case l.Cave.Has(m.Pos, domain.InfoView):
			lit := l.Cave.Has(m.Pos, domain.InfoGlow) || m.Cdis <= light
			hidden := r.Flags.Has(domain.RFInvisible) && !flags.Has(domain.OFSeeInvis) && !p.Is(domain.TmdSInvis)
			vis = lit && !hidden
		}

		if vis && !m.Visible {
			l.LoreOf(m).Sights++
		}
		m.Visible = vis
		m.MFlags.SetTo(domain.MFView, l.Cave.Has(m.Pos, domain.InfoView))
	}
}
