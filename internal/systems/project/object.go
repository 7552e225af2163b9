package project

import (
	"codeberg.org/anaseto/gruid"
	"github.com/sirupsen/logrus"

	"github.com/angband/angband-sub026/internal/domain"
	"github.com/angband/angband-sub026/pkg/logger"
)

// objectCtx — состояние обработчика для одного предмета стопки.
type objectCtx struct {
	l   *domain.Level
	o   *domain.Object
	typ domain.Element

	obvious  bool
	doKill   bool
	ignore   bool
	noteKill string
}

type objectHandler func(*objectCtx)

var objectHandlers = map[domain.Element]objectHandler{
	domain.GFAcid:     func(oc *objectCtx) { oc.elemental(domain.OFHatesAcid, domain.OFIgnoreAcid, "melts", "melt") },
	domain.GFElec:     objElec,
	domain.GFFire:     objFire,
	domain.GFCold:     objCold,
	domain.GFPlasma:   func(oc *objectCtx) { objFire(oc); objElec(oc) },
	domain.GFMeteor:   func(oc *objectCtx) { objFire(oc); objCold(oc) },
	domain.GFIce:      objShatter,
	domain.GFForce:    objShatter,
	domain.GFSound:    objShatter,
	domain.GFShard:    objShatter,
	domain.GFMana:     objMana,
	domain.GFHolyOrb:  objHolyOrb,
	domain.GFKillDoor: objChest,
	domain.GFKillTrap: objChest,
}

// verb выбирает форму глагола по количеству предметов.
func (oc *objectCtx) verb(one, many string) string {
	if oc.o.Number > 1 {
		return many
	}
	return one
}

// elemental — предмет гибнет, если уязвим к стихии; ignore спасает.
func (oc *objectCtx) elemental(hate, ignore domain.ObjFlag, one, many string) {
	if !oc.o.Flags.Has(hate) {
		return
	}
	oc.doKill = true
	oc.noteKill = oc.verb(one, many)
	oc.ignore = ignore != domain.OFNone && oc.o.Flags.Has(ignore)
}

func objElec(oc *objectCtx) {
	oc.elemental(domain.OFHatesElec, domain.OFIgnoreElec, "is destroyed", "are destroyed")
}

func objFire(oc *objectCtx) {
	oc.elemental(domain.OFHatesFire, domain.OFIgnoreFire, "burns up", "burn up")
}

func objCold(oc *objectCtx) {
	oc.elemental(domain.OFHatesCold, domain.OFIgnoreCold, "shatters", "shatter")
}

// Удар бьет склянки, защита от холода не помогает.
func objShatter(oc *objectCtx) {
	oc.elemental(domain.OFHatesCold, domain.OFNone, "shatters", "shatter")
}

// Мана уничтожает все.
func objMana(oc *objectCtx) {
	oc.doKill = true
	oc.noteKill = oc.verb("is destroyed", "are destroyed")
}

// Святая сфера уничтожает проклятое и дальше ведет себя как мана.
func objHolyOrb(oc *objectCtx) {
	if oc.o.IsCursed() {
		oc.doKill = true
		oc.noteKill = oc.verb("is destroyed", "are destroyed")
	}
	objMana(oc)
}

// Сундуки отпираются.
func objChest(oc *objectCtx) {
	o := oc.o
	if o.Tval != domain.TvChest || o.Pval <= 0 {
		return
	}
	o.Pval = 0
	if o.Marked {
		oc.l.Msg("Click!")
		oc.obvious = true
	}
}

// projectO применяет проекцию к стопке предметов в клетке.
func projectO(l *domain.Level, who domain.Source, r int, p gruid.Point, dam int, typ domain.Element) bool {
	handler, ok := objectHandlers[typ]
	if !ok {
		return false
	}

	obvious := false
	for _, h := range l.Pile(p) {
		o := l.Object(h)
		if o == nil {
			continue
		}
		oc := objectCtx{l: l, o: o, typ: typ, obvious: obvious}
		handler(&oc)
		obvious = oc.obvious
		if !oc.doKill {
			continue
		}

		name := o.BaseName()
		if o.Marked {
			obvious = true
		}
		if o.IsArtifact() || oc.ignore {
			if o.Marked {
				l.Msg("The %s %s unaffected!", name, oc.verb("is", "are"))
			}
			continue
		}
		if o.Marked && oc.noteKill != "" {
			l.Msg("The %s %s!", name, oc.noteKill)
		}
		logger.Log.WithFields(logrus.Fields{
			"component": "project",
			"element":   typ,
			"object":    name,
			"pos":       p,
		}).Debug("object destroyed")
		l.DeleteObject(h)
	}
	return obvious
}
