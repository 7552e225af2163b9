package domain

import "codeberg.org/anaseto/gruid"

// Stat — одна из шести характеристик.
type Stat uint8

const (
	StatStr Stat = iota
	StatInt
	StatWis
	StatDex
	StatCon
	StatChr
	StatMax
)

var statNames = []string{"strength", "intelligence", "wisdom", "dexterity", "constitution", "charisma"}

func (s Stat) String() string { return nameOf(statNames, s) }

// SustainFlag — флаг, защищающий характеристику от вытягивания.
func (s Stat) SustainFlag() ObjFlag { return OFSustStr + ObjFlag(s) }

// Timed — временный эффект на игроке.
type Timed uint8

const (
	TmdNone Timed = iota
	TmdFast
	TmdSlow
	TmdBlind
	TmdParalyzed
	TmdConfused
	TmdAfraid
	TmdImage
	TmdPoisoned
	TmdCut
	TmdStun
	TmdProtEvil
	TmdInvuln
	TmdHero
	TmdShero
	TmdShield
	TmdBlessed
	TmdSInvis
	TmdOppAcid
	TmdOppElec
	TmdOppFire
	TmdOppCold
	TmdOppPois
	TmdOppConf
	TmdMax
)

var timedNames = []string{"", "FAST", "SLOW", "BLIND", "PARALYZED", "CONFUSED", "AFRAID",
	"IMAGE", "POISONED", "CUT", "STUN", "PROTEVIL", "INVULN", "HERO", "SHERO", "SHIELD",
	"BLESSED", "SINVIS", "OPP_ACID", "OPP_ELEC", "OPP_FIRE", "OPP_COLD", "OPP_POIS", "OPP_CONF"}

func (t Timed) String() string { return nameOf(timedNames, t) }

// Слоты инвентаря. До InvenPack — рюкзак, дальше — экипировка.
const (
	InvenPack  = 23
	InvenWield = 24
	InvenBow   = 25
	InvenLeft  = 26
	InvenRight = 27
	InvenNeck  = 28
	InvenLight = 29
	InvenBody  = 30
	InvenOuter = 31
	InvenArm   = 32
	InvenHead  = 33
	InvenHands = 34
	InvenFeet  = 35
	InvenTotal = 36
)

// Player — единственный персонаж уровня.
type Player struct {
	Name string      `json:"name"`
	Pos  gruid.Point `json:"pos"`

	Lev    int `json:"lev"`
	Exp    int `json:"exp"`
	MaxExp int `json:"maxExp"`

	Chp int `json:"chp"`
	Mhp int `json:"mhp"`
	Csp int `json:"csp"`
	Msp int `json:"msp"`

	StatCur [StatMax]int `json:"statCur"`
	StatMax [StatMax]int `json:"statMax"`

	Speed  int `json:"speed"`
	Energy int `json:"energy"`

	// Навыки: спасбросок, скрытность, рукопашная.
	SkillSav int `json:"skillSav"`
	SkillStl int `json:"skillStl"`
	SkillThn int `json:"skillThn"`

	Intrinsic FlagSet[ObjFlag]   `json:"intrinsic"`
	Timed     [TmdMax]int        `json:"timed"`
	Inven     [InvenTotal]Object `json:"inven"`

	Gold int `json:"gold"`

	IsDead   bool   `json:"isDead"`
	DiedFrom string `json:"diedFrom,omitempty"`
	// Leaving — игрок покидает уровень (смерть или телепорт уровня).
	Leaving  bool `json:"leaving"`
	NewDepth int  `json:"newDepth,omitempty"`
}

// Flags — собственные свойства плюс свойства надетой экипировки.
func (p *Player) Flags() FlagSet[ObjFlag] {
	f := p.Intrinsic
	for i := InvenWield; i < InvenTotal; i++ {
		if o := &p.Inven[i]; !o.IsEmpty() {
			f = f.Union(o.Flags)
		}
	}
	return f
}

func (p *Player) Has(f ObjFlag) bool { return f != OFNone && p.Flags().Has(f) }

func (p *Player) Is(t Timed) bool { return t != TmdNone && p.Timed[t] > 0 }

func (p *Player) Blind() bool    { return p.Is(TmdBlind) }
func (p *Player) Confused() bool { return p.Is(TmdConfused) }

// AC — полная броня с учетом бонусов.
func (p *Player) AC() int {
	ac := 0
	for i := InvenWield; i < InvenTotal; i++ {
		if o := &p.Inven[i]; !o.IsEmpty() {
			ac += o.AC + o.ToA
		}
	}
	return ac
}

// Noise — шум, по которому просыпаются монстры: 2^(30 - скрытность).
func (p *Player) Noise() int {
	stl := p.SkillStl
	if stl < 0 {
		stl = 0
	}
	if stl > 30 {
		stl = 30
	}
	return 1 << (30 - stl)
}

// PackSlots — индексы непустых слотов рюкзака.
func (p *Player) PackSlots() []int {
	var out []int
	for i := 0; i < InvenPack; i++ {
		if !p.Inven[i].IsEmpty() {
			out = append(out, i)
		}
	}
	return out
}

// NewPlayer — персонаж по умолчанию для симуляций и тестов.
func NewPlayer(name string, lev int) *Player {
	p := &Player{
		Name:     name,
		Lev:      lev,
		Mhp:      lev * 10,
		Chp:      lev * 10,
		Speed:    110,
		SkillSav: 30 + lev,
		SkillStl: 2,
		SkillThn: 40 + lev*3,
	}
	for s := StatStr; s < StatMax; s++ {
		p.StatCur[s] = 14
		p.StatMax[s] = 14
	}
	return p
}
