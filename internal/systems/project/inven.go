package project

import (
	"github.com/sirupsen/logrus"

	"github.com/angband/angband-sub026/internal/domain"
	"github.com/angband/angband-sub026/pkg/logger"
)

// slotLabel — буква слота рюкзака.
func slotLabel(i int) byte {
	if i < domain.InvenPack {
		return byte('a' + i)
	}
	return byte('a' + i - domain.InvenWield)
}

// InvenDamage портит уязвимые к стихии предметы в рюкзаке.
// cperc — шанс на каждый предмет в сотых долях процента.
// Оружие и броня теряют бонусы, остальное гибнет. Возвращает число погибших.
func InvenDamage(l *domain.Level, typ domain.Element, cperc int) int {
	info := typ.Info()
	if info == nil || info.ObjHates == domain.OFNone {
		return 0
	}
	p := l.Player
	killed := 0
	for i := 0; i < domain.InvenPack; i++ {
		o := &p.Inven[i]
		if o.IsEmpty() || o.IsArtifact() {
			continue
		}
		if !o.Hates(info.ObjHates, info.ObjIgnore) {
			continue
		}

		chance := cperc
		damaged := false
		switch {
		case o.IsWeapon():
			if l.RNG.Int0(10000) >= cperc {
				continue
			}
			o.ToH--
			o.ToD--
			damaged = true
		case o.IsArmour():
			if l.RNG.Int0(10000) >= cperc {
				continue
			}
			o.ToA--
			damaged = true
		case o.Tval == domain.TvRod:
			chance /= 4
		}

		amt := 0
		if damaged {
			amt = o.Number
		} else {
			for j := 0; j < o.Number; j++ {
				if l.RNG.Int0(10000) < chance {
					amt++
				}
			}
		}
		if amt == 0 {
			continue
		}

		prefix := "Y"
		if o.Number > 1 {
			switch {
			case amt == o.Number:
				prefix = "All of y"
			case amt > 1:
				prefix = "Some of y"
			default:
				prefix = "One of y"
			}
		}
		was := "was"
		if amt > 1 {
			was = "were"
		}
		what := "destroyed"
		if damaged {
			what = "damaged"
		}
		l.Msg("%sour %s (%c) %s %s!", prefix, o.BaseName(), slotLabel(i), was, what)
		if damaged {
			continue
		}

		logger.Log.WithFields(logrus.Fields{
			"component": "project",
			"element":   typ,
			"object":    o.BaseName(),
			"amount":    amt,
		}).Debug("inventory item destroyed")
		o.Number -= amt
		if o.Number <= 0 {
			*o = domain.Object{}
		}
		killed += amt
	}
	return killed
}

// armourSlots — куда может попасть кислота.
var armourSlots = [...]int{domain.InvenBody, domain.InvenArm, domain.InvenOuter,
	domain.InvenHands, domain.InvenHead, domain.InvenFeet}

// minusAC — кислота разъедает случайную часть доспеха. Возвращает true,
// если доспех принял удар на себя.
func minusAC(l *domain.Level) bool {
	o := &l.Player.Inven[armourSlots[l.RNG.Int0(len(armourSlots))]]
	if o.IsEmpty() || o.AC+o.ToA <= 0 {
		return false
	}
	if o.Flags.Has(domain.OFIgnoreAcid) {
		l.Msg("Your %s is unaffected!", o.BaseName())
		return true
	}
	l.Msg("Your %s is damaged!", o.BaseName())
	o.ToA--
	return true
}

var disenchantSlots = [...]int{domain.InvenWield, domain.InvenBow, domain.InvenBody, domain.InvenOuter,
	domain.InvenArm, domain.InvenHead, domain.InvenHands, domain.InvenFeet}

// ApplyDisenchant снимает бонусы со случайного надетого предмета.
// Артефакты сопротивляются в 60% случаев.
func ApplyDisenchant(l *domain.Level) bool {
	t := disenchantSlots[l.RNG.Int0(len(disenchantSlots))]
	o := &l.Player.Inven[t]
	if o.IsEmpty() {
		return false
	}
	if o.ToH <= 0 && o.ToD <= 0 && o.ToA <= 0 {
		return false
	}
	name := o.BaseName()
	if o.IsArtifact() && l.RNG.Int0(100) < 60 {
		s := "s"
		if o.Number != 1 {
			s = ""
		}
		l.Msg("Your %s (%c) resist%s disenchantment!", name, slotLabel(t), s)
		return true
	}

	if t == domain.InvenWield || t == domain.InvenBow {
		if o.ToH > 0 {
			o.ToH--
		}
		if o.ToH > 5 && l.RNG.Int0(100) < 20 {
			o.ToH--
		}
		if o.ToD > 0 {
			o.ToD--
		}
		if o.ToD > 5 && l.RNG.Int0(100) < 20 {
			o.ToD--
		}
	} else {
		if o.ToA > 0 {
			o.ToA--
		}
		if o.ToA > 5 && l.RNG.Int0(100) < 20 {
			o.ToA--
		}
	}

	was := "was"
	if o.Number != 1 {
		was = "were"
	}
	l.Msg("Your %s (%c) %s disenchanted!", name, slotLabel(t), was)
	return true
}
