package ai

import (
	"codeberg.org/anaseto/gruid"

	"github.com/angband/angband-sub026/internal/domain"
	"github.com/angband/angband-sub026/internal/systems"
	"github.com/angband/angband-sub026/internal/systems/project"
)

// unliteArea — тьма вокруг игрока: слабая тьма радиуса rad и гашение комнаты.
func unliteArea(l *domain.Level, dam, rad int) {
	p := l.Player
	if !p.Blind() {
		l.Msg("Darkness surrounds you.")
	}
	flg := domain.FlagsOf(domain.PFGrid, domain.PFKill)
	project.Project(l, domain.FromPlayer(), rad, p.Pos, dam, domain.GFDarkWeak, flg)
	unliteRoom(l, p.Pos)
}

// unliteRoom гасит комнату, в которой стоит start: все связанные клетки
// комнаты и стены вокруг них.
func unliteRoom(l *domain.Level, start gruid.Point) {
	c := l.Cave
	if !c.Has(start, domain.InfoRoom) {
		return
	}
	seen := map[gruid.Point]bool{start: true}
	queue := []gruid.Point{start}
	for len(queue) > 0 {
		q := queue[0]
		queue = queue[1:]

		c.ClearInfo(q, domain.InfoGlow)
		if c.Feat(q).Boring() {
			c.ClearInfo(q, domain.InfoMark)
		}
		// Стены гаснут, но поиск через них не идет.
		if !c.Floor(q) {
			continue
		}
		for i := 0; i < 8; i++ {
			n := q.Add(systems.DirDDD(i))
			if seen[n] || !c.InBounds(n) || !c.Has(n, domain.InfoRoom) {
				continue
			}
			seen[n] = true
			queue = append(queue, n)
		}
	}
	l.Update |= domain.UpdView | domain.UpdMonsters
}

// trapCreation ставит ловушки во все голые клетки вокруг игрока.
func trapCreation(l *domain.Level) bool {
	p := l.Player
	made := false
	for i := 0; i < 8; i++ {
		q := p.Pos.Add(systems.DirDDD(i))
		if !l.Cave.InBoundsFully(q) || !l.Cave.Naked(q) {
			continue
		}
		if systems.PlaceTrap(l, q) {
			made = true
		}
	}
	return made
}

// loseAllInfo — игрок забывает карту и замеченные предметы.
func loseAllInfo(l *domain.Level) bool {
	c := l.Cave
	for i := range c.Info {
		c.Info[i] &^= domain.InfoMark
	}
	for _, h := range l.Objects.Handles() {
		if o := l.Object(h); o != nil {
			o.Marked = false
		}
	}
	l.Update |= domain.UpdView | domain.UpdMonsters
	return true
}
