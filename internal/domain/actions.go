package domain

import (
	"encoding/json"
	"strings"
)

// ActionType - Внутренний числовой идентификатор команды игрока
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionInit
	ActionMove
	ActionAttack
	ActionAim
	ActionWait
	ActionRest
	ActionPickup
	ActionDrop
	ActionWield
	ActionSave
	ActionTunnel
)

// Маппинг для конвертации JSON -> Domain
var actionStringToCmd = map[string]ActionType{
	"INIT":   ActionInit,
	"MOVE":   ActionMove,
	"ATTACK": ActionAttack,
	"AIM":    ActionAim,
	"WAIT":   ActionWait,
	"REST":   ActionRest,
	"PICKUP": ActionPickup,
	"DROP":   ActionDrop,
	"WIELD":  ActionWield,
	"SAVE":   ActionSave,
	"TUNNEL": ActionTunnel,
}

// Маппинг для логов Domain -> String
var actionCmdToString = map[ActionType]string{
	ActionInit:   "INIT",
	ActionMove:   "MOVE",
	ActionAttack: "ATTACK",
	ActionAim:    "AIM",
	ActionWait:   "WAIT",
	ActionRest:   "REST",
	ActionPickup: "PICKUP",
	ActionDrop:   "DROP",
	ActionWield:  "WIELD",
	ActionSave:   "SAVE",
	ActionTunnel: "TUNNEL",
}

// ParseAction конвертирует строку из JSON в ActionType
func ParseAction(s string) ActionType {
	// Делаем нечувствительным к регистру для надежности
	upper := strings.ToUpper(s)
	if val, ok := actionStringToCmd[upper]; ok {
		return val
	}
	return ActionUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (a ActionType) String() string {
	if val, ok := actionCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}

// TakesTurn — команда тратит энергию игрока.
func (a ActionType) TakesTurn() bool {
	switch a {
	case ActionUnknown, ActionInit, ActionSave:
		return false
	}
	return true
}

func (a ActionType) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

func (a *ActionType) UnmarshalText(b []byte) error {
	*a = ParseAction(string(b))
	return nil
}

// InternalCommand - команда для движка: число вместо строки.
type InternalCommand struct {
	Action  ActionType      // Число! Быстро и безопасно.
	Token   string          // Сессия, приславшая команду
	Payload json.RawMessage // Сырые данные (парсятся хендлером)
}
