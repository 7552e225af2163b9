package systems

import (
	"codeberg.org/anaseto/gruid"
	"github.com/sirupsen/logrus"

	"github.com/angband/angband-sub026/internal/core/types"
	"github.com/angband/angband-sub026/internal/domain"
	"github.com/angband/angband-sub026/pkg/logger"
)

// Монеты и камни по возрастанию ценности.
var (
	coinNames  = []string{"copper", "copper", "copper", "silver", "silver", "silver", "garnets", "garnets", "gold", "gold", "gold", "opals", "opals", "sapphires", "sapphires", "rubies", "rubies", "diamonds"}
	coinValues = []int{3, 4, 5, 6, 7, 8, 9, 10, 12, 14, 16, 18, 20, 24, 28, 32, 40, 80}
)

// greatObj — шанс 1/greatObj на «отличный» предмет или сокровище.
const greatObj = 20

// MakeGold создает кучку сокровищ для глубины level.
func MakeGold(l *domain.Level, level int) domain.Object {
	i := (l.RNG.Int1(level+2)+2)/2 - 1
	if l.RNG.OneIn(greatObj) {
		i += l.RNG.Int1(level + 1)
	}
	i = max(0, min(i, len(coinValues)-1))
	base := coinValues[i]
	return domain.Object{
		Name:   coinNames[i],
		Tval:   domain.TvGold,
		Sval:   i,
		Number: 1,
		Pval:   base + 8*l.RNG.Int1(base) + l.RNG.Int1(8),
	}
}

// MakeObject создает случайный предмет не глубже level. Хорошие и
// отличные предметы выбираются среди оружия и брони и получают бонусы.
func MakeObject(l *domain.Level, level int, good, great bool) (domain.Object, bool) {
	if l.Reg == nil {
		return domain.Object{}, false
	}
	if l.RNG.OneIn(greatObj) {
		level = 1 + level*domain.MaxDepth/l.RNG.Int1(domain.MaxDepth)
	}

	var pool []*domain.ObjectKind
	for i := 1; i < len(l.Reg.Kinds); i++ {
		k := &l.Reg.Kinds[i]
		if k.Tval == domain.TvGold || k.Level > level {
			continue
		}
		if good || great {
			probe := domain.Object{Tval: k.Tval}
			if !probe.IsWeapon() && !probe.IsArmour() {
				continue
			}
		}
		pool = append(pool, k)
	}
	if len(pool) == 0 {
		return domain.Object{}, false
	}

	k := pool[l.RNG.Pick(len(pool))]
	n := 1
	switch k.Tval {
	case domain.TvShot, domain.TvArrow, domain.TvBolt, domain.TvSpike:
		n = l.RNG.Damroll(6, 7)
	case domain.TvFlask, domain.TvPotion, domain.TvScroll, domain.TvFood:
		if l.RNG.OneIn(4) {
			n = l.RNG.Int1(3)
		}
	}
	o := domain.NewObject(k, n)
	applyMagic(l, &o, level, good, great)
	return o, true
}

func applyMagic(l *domain.Level, o *domain.Object, level int, good, great bool) {
	bonus := 0
	switch {
	case great:
		bonus = l.RNG.Int1(5) + level/5 + 5
	case good:
		bonus = l.RNG.Int1(5) + level/10
	case l.RNG.Percent(10 + level/2):
		bonus = l.RNG.Int1(3)
	case l.RNG.Percent(5):
		bonus = -l.RNG.Int1(5)
		o.Flags.Set(domain.OFCursed)
	}
	switch {
	case o.IsWeapon():
		o.ToH = bonus
		o.ToD = bonus
	case o.IsArmour():
		o.ToA = bonus
	}
}

// DropNear кладет предмет в ближайшую подходящую клетку не дальше 3 от p,
// видимую из p. Если места нет, предмет пропадает.
func DropNear(l *domain.Level, o domain.Object, p gruid.Point) types.Handle {
	c := l.Cave
	for d := 0; d <= 3; d++ {
		var cands []gruid.Point
		for y := p.Y - d; y <= p.Y+d; y++ {
			for x := p.X - d; x <= p.X+d; x++ {
				q := gruid.Point{X: x, Y: y}
				if !c.InBounds(q) || Distance(p, q) != d {
					continue
				}
				f := c.Feat(q)
				if !f.Passable() || f.IsTrap() || f == domain.FeatGlyph || !Los(c, p, q) {
					continue
				}
				cands = append(cands, q)
			}
		}
		if len(cands) > 0 {
			return l.DropObject(o, cands[l.RNG.Pick(len(cands))])
		}
	}
	if o.Number > 1 {
		l.Msg("The %s disappear.", o.BaseName())
	} else {
		l.Msg("The %s disappears.", o.BaseName())
	}
	logger.Log.WithFields(logrus.Fields{
		"component": "treasure",
		"object":    o.BaseName(),
		"pos":       p,
	}).Debug("no room to drop object")
	return types.NilHandle
}

// PlaceObject создает предмет прямо в клетке p, если она чистая.
func PlaceObject(l *domain.Level, p gruid.Point, level int, good, great bool) bool {
	if !l.Cave.Naked(p) {
		return false
	}
	o, ok := MakeObject(l, level, good, great)
	if !ok {
		return false
	}
	return !l.DropObject(o, p).IsNil()
}

// PlaceGold кладет сокровище в клетку p, если она чистая.
func PlaceGold(l *domain.Level, p gruid.Point, level int) bool {
	if !l.Cave.Naked(p) {
		return false
	}
	return !l.DropObject(MakeGold(l, level), p).IsNil()
}

// PlaceTrap прячет ловушку в чистой клетке p.
func PlaceTrap(l *domain.Level, p gruid.Point) bool {
	if !l.Cave.Naked(p) {
		return false
	}
	l.Cave.SetFeat(p, domain.FeatInvis)
	return true
}

// PickTrap раскрывает спрятанную ловушку: выбирает ее вид.
func PickTrap(l *domain.Level, p gruid.Point) {
	if l.Cave.Feat(p) != domain.FeatInvis {
		return
	}
	n := int(domain.FeatTrapTail-domain.FeatTrapHead) + 1
	l.Cave.SetFeat(p, domain.FeatTrapHead+domain.Feature(l.RNG.Int0(n)))
}
