package domain

import (
	"strings"

	"github.com/angband/angband-sub026/internal/core/types"
)

// RaceFlag — свойство расы монстров.
type RaceFlag uint8

const (
	RFNone RaceFlag = iota
	RFUnique
	RFMale
	RFFemale
	RFNeverBlow
	RFNeverMove
	RFRand25
	RFRand50
	RFOnlyGold
	RFOnlyItem
	RFDrop60
	RFDrop90
	RFDrop1D2
	RFDrop2D2
	RFDrop3D2
	RFDrop4D2
	RFDropGood
	RFDropGreat
	RFStupid
	RFSmart
	RFInvisible
	RFColdBlood
	RFEmptyMind
	RFWeirdMind
	RFMultiply
	RFRegenerate
	RFPowerful
	RFOpenDoor
	RFBashDoor
	RFPassWall
	RFKillWall
	RFMoveBody
	RFKillBody
	RFTakeItem
	RFKillItem
	RFOrc
	RFTroll
	RFGiant
	RFDragon
	RFDemon
	RFUndead
	RFEvil
	RFAnimal
	RFNonliving
	RFHurtLight
	RFHurtRock
	RFHurtFire
	RFHurtCold
	RFImAcid
	RFImElec
	RFImFire
	RFImCold
	RFImPois
	RFImWater
	RFResNeth
	RFResPlas
	RFResNexus
	RFResDise
	RFNoFear
	RFNoStun
	RFNoConf
	RFNoSleep
	RFFriends
	RFEscort
	RFMax
)

var raceFlagNames = []string{
	"", "UNIQUE", "MALE", "FEMALE", "NEVER_BLOW", "NEVER_MOVE", "RAND_25", "RAND_50",
	"ONLY_GOLD", "ONLY_ITEM", "DROP_60", "DROP_90", "DROP_1D2", "DROP_2D2", "DROP_3D2",
	"DROP_4D2", "DROP_GOOD", "DROP_GREAT", "STUPID", "SMART", "INVISIBLE", "COLD_BLOOD",
	"EMPTY_MIND", "WEIRD_MIND", "MULTIPLY", "REGENERATE", "POWERFUL", "OPEN_DOOR",
	"BASH_DOOR", "PASS_WALL", "KILL_WALL", "MOVE_BODY", "KILL_BODY", "TAKE_ITEM",
	"KILL_ITEM", "ORC", "TROLL", "GIANT", "DRAGON", "DEMON", "UNDEAD", "EVIL", "ANIMAL",
	"NONLIVING", "HURT_LIGHT", "HURT_ROCK", "HURT_FIRE", "HURT_COLD", "IM_ACID", "IM_ELEC",
	"IM_FIRE", "IM_COLD", "IM_POIS", "IM_WATER", "RES_NETH", "RES_PLAS", "RES_NEXUS",
	"RES_DISE", "NO_FEAR", "NO_STUN", "NO_CONF", "NO_SLEEP", "FRIENDS", "ESCORT",
}

func (f RaceFlag) String() string { return nameOf(raceFlagNames, f) }

func ParseRaceFlags(list []string) (FlagSet[RaceFlag], error) {
	return ParseFlags[RaceFlag]("race flag", raceFlagNames, list)
}

func RaceFlagNames(s FlagSet[RaceFlag]) []string { return FlagNames(raceFlagNames, s) }

// Spell — заклинание или врожденная атака монстра.
// Все до SpellInnateEnd — «врожденные» (дыхание, стрелы, крик).
type Spell uint8

const (
	SpellNone Spell = iota
	SpellShriek
	SpellArrow1
	SpellArrow2
	SpellArrow3
	SpellArrow4
	SpellBrAcid
	SpellBrElec
	SpellBrFire
	SpellBrCold
	SpellBrPois
	SpellBrNeth
	SpellBrLite
	SpellBrDark
	SpellBrConf
	SpellBrSoun
	SpellBrChao
	SpellBrDise
	SpellBrNexu
	SpellBrTime
	SpellBrIner
	SpellBrGrav
	SpellBrShar
	SpellBrPlas
	SpellBrWall
	SpellBrMana
	SpellBoulder
	SpellInnateEnd

	SpellBaAcid
	SpellBaElec
	SpellBaFire
	SpellBaCold
	SpellBaPois
	SpellBaNeth
	SpellBaWate
	SpellBaMana
	SpellBaDark
	SpellDrainMana
	SpellMindBlast
	SpellBrainSmash
	SpellCause1
	SpellCause2
	SpellCause3
	SpellCause4
	SpellBoAcid
	SpellBoElec
	SpellBoFire
	SpellBoCold
	SpellBoPois
	SpellBoNeth
	SpellBoWate
	SpellBoMana
	SpellBoPlas
	SpellBoIcee
	SpellMissile
	SpellScare
	SpellBlind
	SpellConf
	SpellSlow
	SpellHold
	SpellHaste
	SpellHeal
	SpellBlink
	SpellTport
	SpellTeleTo
	SpellTeleAway
	SpellTeleLevel
	SpellDarkness
	SpellTraps
	SpellForget
	SpellSKin
	SpellSMonster
	SpellSMonsters
	SpellSAnimal
	SpellSSpider
	SpellSHound
	SpellSHydra
	SpellSAngel
	SpellSDemon
	SpellSUndead
	SpellSDragon
	SpellSHiUndead
	SpellSHiDragon
	SpellSWraith
	SpellSUnique
	SpellSHiDemon
	SpellMax
)

var spellNames = func() []string {
	n := make([]string, SpellMax)
	innate := []string{"", "SHRIEK", "ARROW_1", "ARROW_2", "ARROW_3", "ARROW_4", "BR_ACID",
		"BR_ELEC", "BR_FIRE", "BR_COLD", "BR_POIS", "BR_NETH", "BR_LITE", "BR_DARK", "BR_CONF",
		"BR_SOUN", "BR_CHAO", "BR_DISE", "BR_NEXU", "BR_TIME", "BR_INER", "BR_GRAV", "BR_SHAR",
		"BR_PLAS", "BR_WALL", "BR_MANA", "BOULDER"}
	copy(n, innate)
	rest := []string{"BA_ACID", "BA_ELEC", "BA_FIRE", "BA_COLD", "BA_POIS", "BA_NETH",
		"BA_WATE", "BA_MANA", "BA_DARK", "DRAIN_MANA", "MIND_BLAST", "BRAIN_SMASH", "CAUSE_1",
		"CAUSE_2", "CAUSE_3", "CAUSE_4", "BO_ACID", "BO_ELEC", "BO_FIRE", "BO_COLD", "BO_POIS",
		"BO_NETH", "BO_WATE", "BO_MANA", "BO_PLAS", "BO_ICEE", "MISSILE", "SCARE", "BLIND",
		"CONF", "SLOW", "HOLD", "HASTE", "HEAL", "BLINK", "TPORT", "TELE_TO", "TELE_AWAY",
		"TELE_LEVEL", "DARKNESS", "TRAPS", "FORGET", "S_KIN", "S_MONSTER", "S_MONSTERS",
		"S_ANIMAL", "S_SPIDER", "S_HOUND", "S_HYDRA", "S_ANGEL", "S_DEMON", "S_UNDEAD",
		"S_DRAGON", "S_HI_UNDEAD", "S_HI_DRAGON", "S_WRAITH", "S_UNIQUE", "S_HI_DEMON"}
	copy(n[SpellBaAcid:], rest)
	return n
}()

func (s Spell) String() string { return nameOf(spellNames, s) }

// Innate — врожденная атака (не проваливается, частота freq_innate).
func (s Spell) Innate() bool { return s > SpellNone && s < SpellInnateEnd }

// Breath — дыхание стихией.
func (s Spell) Breath() bool { return s >= SpellBrAcid && s <= SpellBrMana }

func ParseSpells(list []string) (FlagSet[Spell], error) {
	return ParseFlags[Spell]("spell", spellNames, list)
}

func SpellNames(s FlagSet[Spell]) []string { return FlagNames(spellNames, s) }

// BlowMethod — способ рукопашной атаки.
type BlowMethod uint8

const (
	BlowNone BlowMethod = iota
	BlowHit
	BlowTouch
	BlowPunch
	BlowKick
	BlowClaw
	BlowBite
	BlowSting
	BlowButt
	BlowCrush
	BlowEngulf
	BlowCrawl
	BlowDrool
	BlowSpit
	BlowGaze
	BlowWail
	BlowSpore
	BlowBeg
	BlowInsult
	BlowMoan
)

var blowMethodNames = []string{"", "HIT", "TOUCH", "PUNCH", "KICK", "CLAW", "BITE", "STING",
	"BUTT", "CRUSH", "ENGULF", "CRAWL", "DROOL", "SPIT", "GAZE", "WAIL", "SPORE", "BEG",
	"INSULT", "MOAN"}

func (m BlowMethod) String() string { return nameOf(blowMethodNames, m) }

func ParseBlowMethod(s string) (BlowMethod, bool) {
	return lookupName[BlowMethod](blowMethodNames, s)
}

// BlowEffect — эффект удара.
type BlowEffect uint8

const (
	BlowEffNone BlowEffect = iota
	BlowEffHurt
	BlowEffPoison
	BlowEffAcid
	BlowEffElec
	BlowEffFire
	BlowEffCold
	BlowEffBlind
	BlowEffConfuse
	BlowEffTerrify
	BlowEffParalyze
	BlowEffExp10
	BlowEffExp20
	BlowEffExp40
	BlowEffExp80
)

var blowEffectNames = []string{"", "HURT", "POISON", "ACID", "ELEC", "FIRE", "COLD", "BLIND",
	"CONFUSE", "TERRIFY", "PARALYZE", "EXP_10", "EXP_20", "EXP_40", "EXP_80"}

func (e BlowEffect) String() string { return nameOf(blowEffectNames, e) }

func ParseBlowEffect(s string) (BlowEffect, bool) {
	if s == "" {
		return BlowEffNone, true
	}
	return lookupName[BlowEffect](blowEffectNames, s)
}

type Blow struct {
	Method BlowMethod `json:"method"`
	Effect BlowEffect `json:"effect"`
	DD     int        `json:"dd"`
	DS     int        `json:"ds"`
}

// MonsterBlows — максимум ударов у расы.
const MonsterBlows = 4

// Race — запись справочника монстров. Только для чтения во время игры.
type Race struct {
	Index int         `json:"index"`
	Name  string      `json:"name"`
	Glyph types.Glyph `json:"glyph"`
	Level int         `json:"level"`
	// Rarity — 0 означает «не генерировать случайно».
	Rarity int         `json:"rarity"`
	Speed  int         `json:"speed"`
	HP     RandomValue `json:"hp"`
	AC     int         `json:"ac"`
	Sleep  int         `json:"sleep"`
	// Aaf — радиус, в котором монстр замечает игрока.
	Aaf  int `json:"aaf"`
	Mexp int `json:"mexp"`

	FreqInnate int `json:"freqInnate"`
	FreqSpell  int `json:"freqSpell"`

	Flags  FlagSet[RaceFlag] `json:"flags"`
	Spells FlagSet[Spell]    `json:"spells"`
	Blows  []Blow            `json:"blows"`
}

func (r *Race) Char() byte { return r.Glyph.Char() }

func (r *Race) Unique() bool { return r.Flags.Has(RFUnique) }

// Unusual — неживое существо: «уничтожен» вместо «умер».
func (r *Race) Unusual() bool {
	return r.Flags.HasAny(RFDemon, RFUndead, RFNonliving) || strings.ContainsRune("Evg", rune(r.Char()))
}

// Possessive возвращает «his/her/its» для сообщений.
func (r *Race) Possessive() string {
	switch {
	case r.Flags.Has(RFFemale):
		return "her"
	case r.Flags.Has(RFMale):
		return "his"
	}
	return "its"
}

// Lore — знания игрока о расе.
type Lore struct {
	Sights int `json:"sights"`
	Deaths int `json:"deaths"`
	Pkills int `json:"pkills"`
	// Wake/Ignore — сколько раз монстр просыпался или не замечал игрока.
	Wake   int `json:"wake"`
	Ignore int `json:"ignore"`

	CastInnate int `json:"castInnate"`
	CastSpell  int `json:"castSpell"`

	Flags  FlagSet[RaceFlag] `json:"flags"`
	Spells FlagSet[Spell]    `json:"spells"`
}

// NoteFlag запоминает отсутствие/наличие флага — игрок видел реакцию.
func (l *Lore) NoteFlag(f RaceFlag) {
	if f != RFNone {
		l.Flags.Set(f)
	}
}

func (l *Lore) LearnSpell(s Spell) {
	l.Spells.Set(s)
	if s.Innate() {
		l.CastInnate++
	} else {
		l.CastSpell++
	}
}
