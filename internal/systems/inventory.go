package systems

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/angband/angband-sub026/internal/domain"
	"github.com/angband/angband-sub026/pkg/logger"
)

var (
	ErrNothingHere = errors.New("there is nothing here to pick up")
	ErrEmptySlot   = errors.New("you have nothing in that slot")
	ErrNotWearable = errors.New("you cannot wield that")
)

// slotLabel — буква слота рюкзака для сообщений.
func slotLabel(i int) byte { return byte('a' + i) }

// invenCarry кладет предмет в рюкзак: в стопку того же вида или в
// первый пустой слот. Возвращает слот или -1, если места нет.
func invenCarry(p *domain.Player, o domain.Object) int {
	empty := -1
	for i := 0; i < domain.InvenPack; i++ {
		s := &p.Inven[i]
		if s.IsEmpty() {
			if empty < 0 {
				empty = i
			}
			continue
		}
		if s.Kind == o.Kind && !s.IsArtifact() && !o.IsArtifact() &&
			s.ToH == o.ToH && s.ToD == o.ToD && s.ToA == o.ToA && s.Pval == o.Pval {
			s.Number += o.Number
			return i
		}
	}
	if empty < 0 {
		return -1
	}
	o.Pos, o.Next, o.HeldBy = p.Pos, 0, 0
	p.Inven[empty] = o
	return empty
}

// PlayerPickup подбирает золото под ногами всегда, а остальное — только
// если pickup (команда PICKUP); иначе лишь сообщает, что лежит.
// Возвращает число подобранных предметов.
func PlayerPickup(l *domain.Level, pickup bool) int {
	p := l.Player
	taken := 0
	for _, oh := range l.Pile(p.Pos) {
		o := l.Object(oh)
		if o.Tval == domain.TvGold {
			value := o.Pval * max(1, o.Number)
			l.Msg("You have found %d gold pieces worth of %s.", value, o.BaseName())
			p.Gold += value
			l.DeleteObject(oh)
			taken++
			continue
		}
		if !pickup {
			l.Msg("You see %s.", o.Desc())
			continue
		}
		slot := invenCarry(p, *o)
		if slot < 0 {
			l.Msg("You have no room for %s.", o.Desc())
			continue
		}
		l.Msg("You have %s (%c).", p.Inven[slot].Desc(), slotLabel(slot))
		l.DeleteObject(oh)
		taken++
	}
	if taken > 0 {
		logger.Log.WithFields(logrus.Fields{
			"component": "inventory",
			"taken":     taken,
			"gold":      p.Gold,
		}).Debug("player picked up items")
	}
	return taken
}

// TryDrop выкладывает count предметов из слота рюкзака на пол рядом с игроком.
func TryDrop(l *domain.Level, slot, count int) (string, error) {
	p := l.Player
	if slot < 0 || slot >= domain.InvenTotal || p.Inven[slot].IsEmpty() {
		return "", ErrEmptySlot
	}
	o := &p.Inven[slot]
	if count <= 0 || count > o.Number {
		count = o.Number
	}
	dropped := *o
	dropped.Number = count
	o.Number -= count
	if o.Number <= 0 {
		p.Inven[slot] = domain.Object{}
	}
	if DropNear(l, dropped, p.Pos).IsNil() {
		return "", fmt.Errorf("drop %s: no room on the floor", dropped.Desc())
	}
	return fmt.Sprintf("You drop %s (%c).", dropped.Desc(), slotLabel(slot)), nil
}

// wieldSlot — слот экипировки для предмета или -1.
func wieldSlot(p *domain.Player, o *domain.Object) int {
	switch o.Tval {
	case domain.TvSword, domain.TvHafted, domain.TvPolearm, domain.TvDigging:
		return domain.InvenWield
	case domain.TvBow:
		return domain.InvenBow
	case domain.TvRing:
		if p.Inven[domain.InvenRight].IsEmpty() {
			return domain.InvenRight
		}
		return domain.InvenLeft
	case domain.TvAmulet:
		return domain.InvenNeck
	case domain.TvLight:
		return domain.InvenLight
	case domain.TvSoftArmor, domain.TvHardArmor, domain.TvDragArmor:
		return domain.InvenBody
	case domain.TvCloak:
		return domain.InvenOuter
	case domain.TvShield:
		return domain.InvenArm
	case domain.TvHelm, domain.TvCrown:
		return domain.InvenHead
	case domain.TvGloves:
		return domain.InvenHands
	case domain.TvBoots:
		return domain.InvenFeet
	}
	return -1
}

// TryWield надевает предмет из слота рюкзака. Снятое возвращается в рюкзак.
func TryWield(l *domain.Level, slot int) (string, error) {
	p := l.Player
	if slot < 0 || slot >= domain.InvenPack || p.Inven[slot].IsEmpty() {
		return "", ErrEmptySlot
	}
	o := &p.Inven[slot]
	to := wieldSlot(p, o)
	if to < 0 {
		return "", ErrNotWearable
	}
	if old := &p.Inven[to]; !old.IsEmpty() && old.IsCursed() {
		return "", fmt.Errorf("the %s you are wearing appears to be cursed", old.BaseName())
	}

	item := *o
	item.Number = 1
	o.Number--
	if o.Number <= 0 {
		p.Inven[slot] = domain.Object{}
	}

	old := p.Inven[to]
	p.Inven[to] = item
	if !old.IsEmpty() && invenCarry(p, old) < 0 {
		DropNear(l, old, p.Pos)
	}
	l.Update |= domain.UpdView | domain.UpdMonsters

	verb := "You are wearing"
	if to == domain.InvenWield || to == domain.InvenBow {
		verb = "You are wielding"
	}
	return fmt.Sprintf("%s %s.", verb, item.Desc()), nil
}
