package domain

import (
	"codeberg.org/anaseto/gruid"

	"github.com/angband/angband-sub026/internal/core/types"
	"github.com/angband/angband-sub026/internal/core/types/enums"
)

// SmartFlag — то, что монстр знает о защитах игрока.
type SmartFlag uint8

const (
	SMNone SmartFlag = iota
	SMOppAcid
	SMOppElec
	SMOppFire
	SMOppCold
	SMOppPois
	SMResAcid
	SMResElec
	SMResFire
	SMResCold
	SMResPois
	SMResFear
	SMResLite
	SMResDark
	SMResBlind
	SMResConfu
	SMResSound
	SMResShard
	SMResNexus
	SMResNethr
	SMResChaos
	SMResDisen
	SMImmAcid
	SMImmElec
	SMImmFire
	SMImmCold
	SMImmFree
	SMImmMana
	SMMax
)

var smartFlagNames = []string{"", "OPP_ACID", "OPP_ELEC", "OPP_FIRE", "OPP_COLD", "OPP_POIS",
	"RES_ACID", "RES_ELEC", "RES_FIRE", "RES_COLD", "RES_POIS", "RES_FEAR", "RES_LITE",
	"RES_DARK", "RES_BLIND", "RES_CONFU", "RES_SOUND", "RES_SHARD", "RES_NEXUS", "RES_NETHR",
	"RES_CHAOS", "RES_DISEN", "IMM_ACID", "IMM_ELEC", "IMM_FIRE", "IMM_COLD", "IMM_FREE",
	"IMM_MANA"}

func (f SmartFlag) String() string { return nameOf(smartFlagNames, f) }

func SmartFlagNames(s FlagSet[SmartFlag]) []string { return FlagNames(smartFlagNames, s) }

// Drs — вид защиты игрока, о которой монстр может узнать из реакции на атаку.
type Drs uint8

const (
	DrsAcid Drs = iota
	DrsElec
	DrsFire
	DrsCold
	DrsPois
	DrsNeth
	DrsLite
	DrsDark
	DrsFear
	DrsConf
	DrsChaos
	DrsDisen
	DrsBlind
	DrsNexus
	DrsSound
	DrsShard
	DrsFree
	DrsMana
)

// MFlag — служебные флаги экземпляра монстра.
type MFlag uint8

const (
	MFNone MFlag = iota
	// MFView — монстр в поле зрения игрока.
	MFView
	// MFBorn — создан в этот ход, не действует до следующего.
	MFBorn
	// MFNice — не колдует, пока игрок не сделал ход.
	MFNice
	// MFShow — монстр показан игроку (обнаружение).
	MFShow
)

// Monster — живой экземпляр расы на уровне.
type Monster struct {
	Race int         `json:"race"`
	Pos  gruid.Point `json:"pos"`

	HP    int `json:"hp"`
	MaxHP int `json:"maxHp"`

	Sleep   int `json:"sleep"`
	Stunned int `json:"stunned"`
	Confused int `json:"confused"`
	Afraid  int `json:"afraid"`

	// Speed — текущая скорость (110 = нормальная), Energy — накопленная энергия.
	Speed  int `json:"speed"`
	Energy int `json:"energy"`

	// Cdis — текущее расстояние до игрока, пересчитывается при движении.
	Cdis    int  `json:"cdis"`
	Visible bool `json:"visible"`

	MFlags FlagSet[MFlag]     `json:"mflags"`
	Smart  FlagSet[SmartFlag] `json:"smart"`

	// Held — первый предмет, который несет монстр.
	Held types.Handle `json:"held,omitempty"`
}

// Learn запоминает защиты игрока, о которых монстр узнал.
func (m *Monster) Learn(fs ...SmartFlag) {
	for _, f := range fs {
		m.Smart.Set(f)
	}
}

// Forget стирает все знания монстра (забывчивость, заклинание FORGET).
func (m *Monster) Forget() {
	m.Smart = FlagSet[SmartFlag]{}
}

func (m *Monster) Alive() bool { return m.Race > 0 && m.HP >= 0 }

// Mood — сводное состояние для отладочных дампов.
func (m *Monster) Mood() enums.Mood {
	switch {
	case m.Sleep > 0:
		return enums.MoodAsleep
	case m.Stunned > 0:
		return enums.MoodStunned
	case m.Confused > 0:
		return enums.MoodConfused
	case m.Afraid > 0:
		return enums.MoodFleeing
	}
	return enums.MoodHunting
}

// Heal восстанавливает hp, не выше максимума. Возвращает, был ли эффект.
func (m *Monster) Heal(n int) bool {
	if m.HP >= m.MaxHP {
		return false
	}
	m.HP += n
	if m.HP > m.MaxHP {
		m.HP = m.MaxHP
	}
	return true
}
