package domain

import (
	"strings"

	"github.com/angband/angband-sub026/pkg/utils"
)

// Element — тип воздействия проекции (стихия или мета-эффект).
// Определяет диспетчеризацию во всех обработчиках: пол, предметы, монстры, игрок.
type Element uint8

const (
	GFArrow Element = iota
	GFMissile
	GFMana
	GFHolyOrb
	GFLightWeak
	GFDarkWeak
	GFWater
	GFPlasma
	GFMeteor
	GFIce
	GFGravity
	GFInertia
	GFForce
	GFTime
	GFAcid
	GFElec
	GFFire
	GFCold
	GFPois
	GFLight
	GFDark
	GFConfu
	GFSound
	GFShard
	GFNexus
	GFNether
	GFChaos
	GFDisen
	GFKillWall
	GFKillDoor
	GFKillTrap
	GFMakeWall
	GFMakeDoor
	GFMakeTrap
	GFAwayUndead
	GFAwayEvil
	GFAwayAll
	GFTurnUndead
	GFTurnEvil
	GFTurnAll
	GFDispUndead
	GFDispEvil
	GFDispAll
	GFOldClone
	GFOldPoly
	GFOldHeal
	GFOldSpeed
	GFOldSlow
	GFOldConf
	GFOldSleep
	GFOldDrain
	GFMax
)

// RandomValue — значение вида base + dice×d(sides).
type RandomValue struct {
	Base  int `json:"base"`
	Dice  int `json:"dice"`
	Sides int `json:"sides"`
}

func (v RandomValue) Roll(rng *utils.RNG) int {
	return v.Base + rng.Damroll(v.Dice, v.Sides)
}

// ElementInfo — строка таблицы стихий: как она взаимодействует с защитами
// игрока, монстров и предметов.
type ElementInfo struct {
	Name string
	// Desc — чем «попало», когда игрок не видит источник. Пусто — без сообщения.
	Desc string

	Resist ObjFlag
	// Num/Denom — множитель урона на каждый уровень сопротивления.
	Num   int
	Denom RandomValue
	// ForceObv — монстр на виду делает эффект очевидным независимо от обработчика.
	ForceObv bool

	Opp        Timed
	Immunity   ObjFlag
	SideImmune bool
	Vuln       ObjFlag

	MonRes  RaceFlag
	MonVuln RaceFlag

	ObjHates  ObjFlag
	ObjIgnore ObjFlag
}

var rv3 = RandomValue{Base: 3}
var rv6d6 = RandomValue{Base: 6, Dice: 1, Sides: 6}

var elementTable = [GFMax]ElementInfo{
	GFArrow:     {Name: "ARROW", Desc: "something sharp", ForceObv: true, SideImmune: true},
	GFMissile:   {Name: "MISSILE", Desc: "something", ForceObv: true, SideImmune: true},
	GFMana:      {Name: "MANA", Desc: "something", ForceObv: true, SideImmune: true},
	GFHolyOrb:   {Name: "HOLY_ORB", Desc: "something", ForceObv: true, SideImmune: true},
	GFLightWeak: {Name: "LIGHT_WEAK", ForceObv: true, SideImmune: true, MonVuln: RFHurtLight},
	GFDarkWeak:  {Name: "DARK_WEAK", SideImmune: true},
	GFWater:     {Name: "WATER", Desc: "water", ForceObv: true, SideImmune: true, MonRes: RFImWater},
	GFPlasma:    {Name: "PLASMA", Desc: "something", ForceObv: true, SideImmune: true, MonRes: RFResPlas},
	GFMeteor:    {Name: "METEOR", Desc: "something", ForceObv: true, SideImmune: true},
	GFIce: {Name: "ICE", Desc: "something sharp", Resist: OFResCold, Num: 1, Denom: rv3, ForceObv: true,
		Opp: TmdOppCold, Immunity: OFImCold, Vuln: OFVulnCold, MonRes: RFImCold, MonVuln: RFHurtCold,
		ObjHates: OFHatesCold, ObjIgnore: OFIgnoreCold},
	GFGravity: {Name: "GRAVITY", Desc: "something strange", ForceObv: true, SideImmune: true},
	GFInertia: {Name: "INERTIA", Desc: "something strange", ForceObv: true, SideImmune: true},
	GFForce:   {Name: "FORCE", Desc: "something hard", ForceObv: true, SideImmune: true},
	GFTime:    {Name: "TIME", Desc: "something strange", ForceObv: true, SideImmune: true},
	GFAcid: {Name: "ACID", Desc: "acid", Resist: OFResAcid, Num: 1, Denom: rv3, ForceObv: true,
		Opp: TmdOppAcid, Immunity: OFImAcid, SideImmune: true, Vuln: OFVulnAcid, MonRes: RFImAcid,
		ObjHates: OFHatesAcid, ObjIgnore: OFIgnoreAcid},
	GFElec: {Name: "ELEC", Desc: "lightning", Resist: OFResElec, Num: 1, Denom: rv3, ForceObv: true,
		Opp: TmdOppElec, Immunity: OFImElec, SideImmune: true, Vuln: OFVulnElec, MonRes: RFImElec,
		ObjHates: OFHatesElec, ObjIgnore: OFIgnoreElec},
	GFFire: {Name: "FIRE", Desc: "fire", Resist: OFResFire, Num: 1, Denom: rv3, ForceObv: true,
		Opp: TmdOppFire, Immunity: OFImFire, SideImmune: true, Vuln: OFVulnFire, MonRes: RFImFire,
		MonVuln: RFHurtFire, ObjHates: OFHatesFire, ObjIgnore: OFIgnoreFire},
	GFCold: {Name: "COLD", Desc: "cold", Resist: OFResCold, Num: 1, Denom: rv3, ForceObv: true,
		Opp: TmdOppCold, Immunity: OFImCold, SideImmune: true, Vuln: OFVulnCold, MonRes: RFImCold,
		MonVuln: RFHurtCold, ObjHates: OFHatesCold, ObjIgnore: OFIgnoreCold},
	GFPois: {Name: "POIS", Desc: "poison", Resist: OFResPois, Num: 1, Denom: rv3, ForceObv: true,
		Opp: TmdOppPois, SideImmune: true, MonRes: RFImPois},
	GFLight: {Name: "LIGHT", Desc: "something", Resist: OFResLight, Num: 4, Denom: rv6d6, ForceObv: true,
		SideImmune: true, MonVuln: RFHurtLight},
	GFDark: {Name: "DARK", Desc: "something", Resist: OFResDark, Num: 4, Denom: rv6d6, ForceObv: true,
		SideImmune: true},
	GFConfu: {Name: "CONFU", Desc: "something", Resist: OFResConfu, Num: 6, Denom: rv6d6,
		Opp: TmdOppConf, SideImmune: true},
	GFSound: {Name: "SOUND", Desc: "noise", Resist: OFResSound, Num: 5, Denom: rv6d6, ForceObv: true,
		SideImmune: true},
	GFShard: {Name: "SHARD", Desc: "something sharp", Resist: OFResShard, Num: 6, Denom: rv6d6,
		ForceObv: true, SideImmune: true},
	GFNexus: {Name: "NEXUS", Desc: "something strange", Resist: OFResNexus, Num: 6, Denom: rv6d6,
		ForceObv: true, SideImmune: true, MonRes: RFResNexus},
	GFNether: {Name: "NETHER", Desc: "something cold", Resist: OFResNethr, Num: 6, Denom: rv6d6,
		ForceObv: true, SideImmune: true, MonRes: RFResNeth},
	GFChaos: {Name: "CHAOS", Desc: "something strange", Resist: OFResChaos, Num: 6, Denom: rv6d6,
		ForceObv: true, SideImmune: true},
	GFDisen: {Name: "DISEN", Desc: "something strange", Resist: OFResDisen, Num: 6, Denom: rv6d6,
		ForceObv: true, SideImmune: true, MonRes: RFResDise},
	GFKillWall:   {Name: "KILL_WALL", SideImmune: true},
	GFKillDoor:   {Name: "KILL_DOOR", SideImmune: true},
	GFKillTrap:   {Name: "KILL_TRAP", SideImmune: true},
	GFMakeWall:   {Name: "MAKE_WALL", SideImmune: true},
	GFMakeDoor:   {Name: "MAKE_DOOR", SideImmune: true},
	GFMakeTrap:   {Name: "MAKE_TRAP", SideImmune: true},
	GFAwayUndead: {Name: "AWAY_UNDEAD", SideImmune: true},
	GFAwayEvil:   {Name: "AWAY_EVIL", SideImmune: true},
	GFAwayAll:    {Name: "AWAY_ALL", ForceObv: true, SideImmune: true},
	GFTurnUndead: {Name: "TURN_UNDEAD", SideImmune: true},
	GFTurnEvil:   {Name: "TURN_EVIL", SideImmune: true},
	GFTurnAll:    {Name: "TURN_ALL", SideImmune: true},
	GFDispUndead: {Name: "DISP_UNDEAD", SideImmune: true},
	GFDispEvil:   {Name: "DISP_EVIL", SideImmune: true},
	GFDispAll:    {Name: "DISP_ALL", ForceObv: true, SideImmune: true},
	GFOldClone:   {Name: "OLD_CLONE", ForceObv: true, SideImmune: true},
	GFOldPoly:    {Name: "OLD_POLY", SideImmune: true},
	GFOldHeal:    {Name: "OLD_HEAL", ForceObv: true, SideImmune: true},
	GFOldSpeed:   {Name: "OLD_SPEED", ForceObv: true, SideImmune: true},
	GFOldSlow:    {Name: "OLD_SLOW", ForceObv: true, SideImmune: true},
	GFOldConf:    {Name: "OLD_CONF", SideImmune: true},
	GFOldSleep:   {Name: "OLD_SLEEP", SideImmune: true},
	GFOldDrain:   {Name: "OLD_DRAIN", ForceObv: true, SideImmune: true},
}

// Valid — известный ли это тип.
func (e Element) Valid() bool {
	return e < GFMax
}

// Info возвращает строку таблицы. Для неизвестного типа — nil.
func (e Element) Info() *ElementInfo {
	if !e.Valid() {
		return nil
	}
	return &elementTable[e]
}

func (e Element) String() string {
	if !e.Valid() {
		return "UNKNOWN"
	}
	return elementTable[e].Name
}

// MarshalText пишет имя стихии вместо числа.
func (e Element) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

func (e *Element) UnmarshalText(b []byte) error {
	v, ok := ParseElement(string(b))
	if !ok {
		return &ParseError{What: "element", Value: string(b)}
	}
	*e = v
	return nil
}

// ParseElement ищет стихию по имени ("FIRE", "fire", "GF_FIRE").
func ParseElement(s string) (Element, bool) {
	name := strings.TrimPrefix(strings.ToUpper(s), "GF_")
	for i := range elementTable {
		if elementTable[i].Name == name {
			return Element(i), true
		}
	}
	return GFMax, false
}
