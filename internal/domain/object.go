package domain

import (
	"strconv"
	"strings"

	"codeberg.org/anaseto/gruid"

	"github.com/angband/angband-sub026/internal/core/types"
	"github.com/angband/angband-sub026/internal/core/types/enums"
)

// ObjFlag — свойство предмета. Те же флаги описывают защиты игрока:
// собственные (расовые) плюс надетая экипировка.
type ObjFlag uint8

const (
	OFNone ObjFlag = iota
	OFResAcid
	OFResElec
	OFResFire
	OFResCold
	OFResPois
	OFResFear
	OFResLight
	OFResDark
	OFResBlind
	OFResConfu
	OFResSound
	OFResShard
	OFResNexus
	OFResNethr
	OFResChaos
	OFResDisen
	OFImAcid
	OFImElec
	OFImFire
	OFImCold
	OFVulnAcid
	OFVulnElec
	OFVulnFire
	OFVulnCold
	OFFreeAct
	OFHoldLife
	OFSeeInvis
	OFTelepathy
	OFSustStr
	OFSustInt
	OFSustWis
	OFSustDex
	OFSustCon
	OFSustChr
	OFHatesAcid
	OFHatesElec
	OFHatesFire
	OFHatesCold
	OFIgnoreAcid
	OFIgnoreElec
	OFIgnoreFire
	OFIgnoreCold
	OFCursed
	OFSlayAnimal
	OFSlayEvil
	OFSlayUndead
	OFSlayDemon
	OFSlayOrc
	OFSlayTroll
	OFSlayGiant
	OFSlayDragon
	OFKillDragon
	OFRegen
	OFMax
)

var objFlagNames = []string{
	"", "RES_ACID", "RES_ELEC", "RES_FIRE", "RES_COLD", "RES_POIS", "RES_FEAR", "RES_LIGHT",
	"RES_DARK", "RES_BLIND", "RES_CONFU", "RES_SOUND", "RES_SHARD", "RES_NEXUS", "RES_NETHR",
	"RES_CHAOS", "RES_DISEN", "IM_ACID", "IM_ELEC", "IM_FIRE", "IM_COLD", "VULN_ACID",
	"VULN_ELEC", "VULN_FIRE", "VULN_COLD", "FREE_ACT", "HOLD_LIFE", "SEE_INVIS", "TELEPATHY",
	"SUST_STR", "SUST_INT", "SUST_WIS", "SUST_DEX", "SUST_CON", "SUST_CHR",
	"HATES_ACID", "HATES_ELEC", "HATES_FIRE", "HATES_COLD",
	"IGNORE_ACID", "IGNORE_ELEC", "IGNORE_FIRE", "IGNORE_COLD", "CURSED",
	"SLAY_ANIMAL", "SLAY_EVIL", "SLAY_UNDEAD", "SLAY_DEMON", "SLAY_ORC", "SLAY_TROLL",
	"SLAY_GIANT", "SLAY_DRAGON", "KILL_DRAGON", "REGEN",
}

func (f ObjFlag) String() string { return nameOf(objFlagNames, f) }

// ParseObjFlags разбирает список имен свойств предмета.
func ParseObjFlags(list []string) (FlagSet[ObjFlag], error) {
	return ParseFlags[ObjFlag]("object flag", objFlagNames, list)
}

// ObjFlagNames — имена флагов множества.
func ObjFlagNames(s FlagSet[ObjFlag]) []string { return FlagNames(objFlagNames, s) }

// Tval — класс предмета.
type Tval uint8

const (
	TvNone Tval = iota
	TvSkeleton
	TvBottle
	TvJunk
	TvSpike
	TvChest
	TvShot
	TvArrow
	TvBolt
	TvBow
	TvDigging
	TvHafted
	TvPolearm
	TvSword
	TvBoots
	TvGloves
	TvHelm
	TvCrown
	TvShield
	TvCloak
	TvSoftArmor
	TvHardArmor
	TvDragArmor
	TvLight
	TvAmulet
	TvRing
	TvStaff
	TvWand
	TvRod
	TvScroll
	TvPotion
	TvFlask
	TvFood
	TvMagicBook
	TvPrayerBook
	TvGold
	TvMax
)

var tvalNames = []string{
	"", "SKELETON", "BOTTLE", "JUNK", "SPIKE", "CHEST", "SHOT", "ARROW", "BOLT", "BOW",
	"DIGGING", "HAFTED", "POLEARM", "SWORD", "BOOTS", "GLOVES", "HELM", "CROWN", "SHIELD",
	"CLOAK", "SOFT_ARMOR", "HARD_ARMOR", "DRAG_ARMOR", "LIGHT", "AMULET", "RING", "STAFF",
	"WAND", "ROD", "SCROLL", "POTION", "FLASK", "FOOD", "MAGIC_BOOK", "PRAYER_BOOK", "GOLD",
}

func (t Tval) String() string { return nameOf(tvalNames, t) }

func ParseTval(s string) (Tval, bool) { return lookupName[Tval](tvalNames, s) }

// Category — грубая категория класса для клиентов и дампов.
func (t Tval) Category() enums.ItemCategory {
	switch t {
	case TvDigging, TvHafted, TvPolearm, TvSword, TvBow:
		return enums.ItemCategoryWeapon
	case TvShot, TvArrow, TvBolt:
		return enums.ItemCategoryAmmo
	case TvBoots, TvGloves, TvHelm, TvCrown, TvShield, TvCloak, TvSoftArmor, TvHardArmor, TvDragArmor:
		return enums.ItemCategoryArmor
	case TvRing, TvAmulet:
		return enums.ItemCategoryJewelry
	case TvLight:
		return enums.ItemCategoryLight
	case TvWand, TvStaff, TvRod:
		return enums.ItemCategoryDevice
	case TvScroll:
		return enums.ItemCategoryScroll
	case TvPotion, TvFlask:
		return enums.ItemCategoryPotion
	case TvMagicBook, TvPrayerBook:
		return enums.ItemCategoryBook
	case TvFood:
		return enums.ItemCategoryFood
	case TvChest:
		return enums.ItemCategoryContainer
	case TvGold:
		return enums.ItemCategoryGold
	case TvNone:
		return enums.ItemCategoryUnknown
	}
	return enums.ItemCategoryMisc
}

// Первая «хорошая» книга: книги с младшими sval горят.
const SvBookMinGood = 4

// BaseFlags — врожденные уязвимости класса предметов.
func BaseFlags(tv Tval, sval int) FlagSet[ObjFlag] {
	var s FlagSet[ObjFlag]
	switch tv {
	case TvArrow, TvBolt, TvBow, TvHafted, TvPolearm:
		s.Set(OFHatesAcid)
		s.Set(OFHatesFire)
	case TvSword, TvHelm, TvCrown, TvShield, TvHardArmor, TvShot, TvDigging:
		s.Set(OFHatesAcid)
	case TvBoots, TvGloves, TvCloak, TvSoftArmor:
		s.Set(OFHatesAcid)
		s.Set(OFHatesFire)
	case TvStaff, TvScroll, TvChest:
		s.Set(OFHatesAcid)
		s.Set(OFHatesFire)
	case TvSkeleton, TvJunk:
		s.Set(OFHatesAcid)
	case TvBottle:
		s.Set(OFHatesAcid)
		s.Set(OFHatesCold)
	case TvLight:
		s.Set(OFHatesFire)
	case TvMagicBook, TvPrayerBook:
		if sval < SvBookMinGood {
			s.Set(OFHatesFire)
		}
	case TvPotion, TvFlask:
		s.Set(OFHatesCold)
	case TvRing, TvWand:
		s.Set(OFHatesElec)
	}
	return s
}

// Object — экземпляр предмета. Принадлежит ровно одному владельцу:
// клетке пола (Pos), монстру (HeldBy) или слоту инвентаря игрока.
type Object struct {
	Kind   int    `json:"kind"`
	Name   string `json:"name"`
	Tval   Tval   `json:"tval"`
	Sval   int    `json:"sval"`
	Number int    `json:"number"`
	Pval   int    `json:"pval,omitempty"`

	AC  int `json:"ac,omitempty"`
	ToH int `json:"toH,omitempty"`
	ToD int `json:"toD,omitempty"`
	ToA int `json:"toA,omitempty"`
	DD  int `json:"dd,omitempty"`
	DS  int `json:"ds,omitempty"`

	Flags    FlagSet[ObjFlag] `json:"flags"`
	Artifact string           `json:"artifact,omitempty"`
	Ego      string           `json:"ego,omitempty"`

	// Marked — игрок знает об этом предмете на полу.
	Marked bool        `json:"marked,omitempty"`
	Pos    gruid.Point `json:"pos"`
	HeldBy types.Handle `json:"heldBy,omitempty"`
	// Next — следующий предмет в стопке (на полу или у монстра).
	Next types.Handle `json:"next,omitempty"`
}

// IsEmpty — пустой слот инвентаря.
func (o *Object) IsEmpty() bool { return o == nil || o.Tval == TvNone || o.Number <= 0 }

func (o *Object) IsArtifact() bool { return o.Artifact != "" }

func (o *Object) IsCursed() bool { return o.Flags.Has(OFCursed) }

// Hates — предмет уязвим к стихии и не защищен от нее.
func (o *Object) Hates(hate, ignore ObjFlag) bool {
	return hate != OFNone && o.Flags.Has(hate) && (ignore == OFNone || !o.Flags.Has(ignore))
}

func (o *Object) IsWeapon() bool {
	switch o.Tval {
	case TvBow, TvSword, TvHafted, TvPolearm, TvDigging:
		return true
	}
	return false
}

func (o *Object) IsArmour() bool {
	switch o.Tval {
	case TvHelm, TvCrown, TvShield, TvBoots, TvGloves, TvCloak, TvSoftArmor, TvHardArmor, TvDragArmor:
		return true
	}
	return false
}

// BaseName — имя без артикля и количества, «~» раскрывается во множественное число.
func (o *Object) BaseName() string {
	if o.Number > 1 {
		return strings.ReplaceAll(o.Name, "~", "s")
	}
	return strings.ReplaceAll(o.Name, "~", "")
}

// Desc — имя с количеством или артиклем: «3 Flasks of oil», «a Dagger», «the Phial».
func (o *Object) Desc() string {
	name := o.BaseName()
	if o.IsArtifact() {
		return "the " + name + " " + o.Artifact
	}
	if o.Number > 1 {
		return strconv.Itoa(o.Number) + " " + name
	}
	if name != "" && strings.ContainsRune("AEIOUaeiou", rune(name[0])) {
		return "an " + name
	}
	return "a " + name
}

// Slays — оружие особенно опасно для расы (монстр его не поднимет).
func (o *Object) Slays(r *Race) bool {
	f := &r.Flags
	switch {
	case o.Flags.Has(OFSlayDragon) && f.Has(RFDragon),
		o.Flags.Has(OFKillDragon) && f.Has(RFDragon),
		o.Flags.Has(OFSlayTroll) && f.Has(RFTroll),
		o.Flags.Has(OFSlayGiant) && f.Has(RFGiant),
		o.Flags.Has(OFSlayOrc) && f.Has(RFOrc),
		o.Flags.Has(OFSlayDemon) && f.Has(RFDemon),
		o.Flags.Has(OFSlayUndead) && f.Has(RFUndead),
		o.Flags.Has(OFSlayAnimal) && f.Has(RFAnimal),
		o.Flags.Has(OFSlayEvil) && f.Has(RFEvil):
		return true
	}
	return false
}

// ObjectKind — запись справочника предметов.
type ObjectKind struct {
	Index  int              `json:"index"`
	Name   string           `json:"name"`
	Tval   Tval             `json:"tval"`
	Sval   int              `json:"sval"`
	Level  int              `json:"level"`
	Pval   int              `json:"pval"`
	AC     int              `json:"ac"`
	DD     int              `json:"dd"`
	DS     int              `json:"ds"`
	Weight int              `json:"weight"`
	Flags  FlagSet[ObjFlag] `json:"flags"`
}

// NewObject создает предмет вида k в количестве n.
func NewObject(k *ObjectKind, n int) Object {
	return Object{
		Kind:   k.Index,
		Name:   k.Name,
		Tval:   k.Tval,
		Sval:   k.Sval,
		Number: n,
		Pval:   k.Pval,
		AC:     k.AC,
		DD:     k.DD,
		DS:     k.DS,
		Flags:  BaseFlags(k.Tval, k.Sval).Union(k.Flags),
	}
}
