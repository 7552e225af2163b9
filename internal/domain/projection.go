package domain

import "github.com/angband/angband-sub026/internal/core/types"

// ProjectFlag — поведение проекции.
type ProjectFlag uint8

const (
	PFNone ProjectFlag = iota
	// PFJump — начать прямо в цели, без полета.
	PFJump
	// PFBeam — луч: задевает каждую клетку пути.
	PFBeam
	// PFThru — лететь дальше цели до предела дальности.
	PFThru
	// PFStop — остановиться на первом существе.
	PFStop
	// PFGrid — действовать на рельеф.
	PFGrid
	// PFItem — действовать на предметы.
	PFItem
	// PFKill — действовать на существ.
	PFKill
	// PFHide — не показывать полет.
	PFHide
)

var projectFlagNames = []string{"", "JUMP", "BEAM", "THRU", "STOP", "GRID", "ITEM", "KILL", "HIDE"}

func (f ProjectFlag) String() string { return nameOf(projectFlagNames, f) }

// SourceKind — кто запустил проекцию.
type SourceKind uint8

const (
	SourceNone SourceKind = iota
	SourcePlayer
	SourceMonster
)

// Сила источника, с которой проекция бьет в полную мощь.
const (
	// StrongPower — с этой силы проекция дает побочные эффекты мощных атак.
	StrongPower = 80
	// BreathPower — сила дыхания: всегда мощное.
	BreathPower = 100
)

// Source — источник эффекта: игрок, монстр или ловушка/ничей.
// Power — сила заклинания, обычно уровень заклинателя.
type Source struct {
	Kind  SourceKind   `json:"kind"`
	Mon   types.Handle `json:"mon,omitempty"`
	Power int          `json:"power,omitempty"`
}

// WithPower возвращает копию источника с силой n.
func (s Source) WithPower(n int) Source {
	s.Power = n
	return s
}

// Strong — проекция несет дополнительные побочные эффекты.
func (s Source) Strong() bool { return s.Power >= StrongPower }

func FromPlayer() Source                   { return Source{Kind: SourcePlayer} }
func FromMonster(h types.Handle) Source    { return Source{Kind: SourceMonster, Mon: h} }
func FromNowhere() Source                  { return Source{} }
func (s Source) IsPlayer() bool            { return s.Kind == SourcePlayer }
func (s Source) IsMonster() bool           { return s.Kind == SourceMonster }
func (s Source) Is(h types.Handle) bool    { return s.Kind == SourceMonster && s.Mon == h }
