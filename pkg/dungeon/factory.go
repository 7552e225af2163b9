package dungeon

import (
	"github.com/angband/angband-sub026/internal/domain"
)

// starterKit — стартовое снаряжение: класс, подкласс, количество, слот
// (-1 — в рюкзак).
var starterKit = []struct {
	tval   domain.Tval
	sval   int
	number int
	slot   int
}{
	{domain.TvSword, 4, 1, domain.InvenWield},
	{domain.TvSoftArmor, 8, 1, domain.InvenBody},
	{domain.TvLight, 0, 1, domain.InvenLight},
	{domain.TvPotion, 1, 3, -1},
	{domain.TvFlask, 0, 5, -1},
	{domain.TvFood, 1, 4, -1},
	{domain.TvScroll, 2, 2, -1},
}

// CreatePlayer создает персонажа уровня lev со стартовым снаряжением.
// Виды, которых нет в справочнике, пропускаются.
func CreatePlayer(name string, lev int, reg *domain.Registry) *domain.Player {
	p := domain.NewPlayer(name, lev)
	if reg == nil {
		return p
	}
	pack := 0
	for _, it := range starterKit {
		k := reg.KindByTval(it.tval, it.sval)
		if k == nil {
			continue
		}
		o := domain.NewObject(k, it.number)
		if it.slot >= 0 {
			p.Inven[it.slot] = o
			continue
		}
		p.Inven[pack] = o
		pack++
	}
	p.Gold = 100
	return p
}
