package ai

import (
	"github.com/angband/angband-sub026/internal/domain"
)

type spellSet = domain.FlagSet[domain.Spell]

// spellRange — все заклинания с lo по hi включительно.
func spellRange(lo, hi domain.Spell) spellSet {
	var s spellSet
	for sp := lo; sp <= hi; sp++ {
		s.Set(sp)
	}
	return s
}

func spells(ss ...domain.Spell) spellSet { return domain.FlagsOf(ss...) }

// Группы заклинаний, по которым умный монстр выбирает тактику.
var (
	maskInnate = spellRange(domain.SpellShriek, domain.SpellInnateEnd-1)

	maskBolt = spellRange(domain.SpellArrow1, domain.SpellArrow4).
			Union(spellRange(domain.SpellBoAcid, domain.SpellMissile)).
			Union(spells(domain.SpellBoulder))

	maskBreath = spellRange(domain.SpellBrAcid, domain.SpellBrMana)
	maskBall   = spellRange(domain.SpellBaAcid, domain.SpellBaDark)

	maskSummon = spellRange(domain.SpellSKin, domain.SpellSHiDemon)

	maskAttack = maskBolt.Union(maskBreath).Union(maskBall).
			Union(spellRange(domain.SpellDrainMana, domain.SpellCause4)).
			Union(spellRange(domain.SpellScare, domain.SpellHold))

	maskEscape = spells(domain.SpellBlink, domain.SpellTport, domain.SpellTeleAway, domain.SpellTeleLevel)
	maskTactic = spells(domain.SpellBlink)
	maskHaste  = spells(domain.SpellHaste)
	maskHeal   = spells(domain.SpellHeal)

	maskAnnoy = spells(domain.SpellShriek, domain.SpellDrainMana, domain.SpellMindBlast,
			domain.SpellBrainSmash, domain.SpellTeleTo, domain.SpellDarkness, domain.SpellTraps,
			domain.SpellForget).
			Union(spellRange(domain.SpellScare, domain.SpellHold))

	// maskInt — отчаянный умный монстр колдует только это.
	maskInt = spellRange(domain.SpellScare, domain.SpellHold).
		Union(spells(domain.SpellBlink, domain.SpellTport, domain.SpellTeleLevel,
			domain.SpellTeleAway, domain.SpellHeal, domain.SpellHaste, domain.SpellTraps)).
		Union(spellRange(domain.SpellSMonster, domain.SpellSUnique))
)
