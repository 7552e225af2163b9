package domain

import "encoding/json"

// ReplayAction - одна команда игрока с ходом, на котором она пришла
type ReplayAction struct {
	Turn    int64           `json:"turn"`
	Action  ActionType      `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// ReplaySession - полная запись партии: сид уровня и лента команд
type ReplaySession struct {
	Depth     int            `json:"depth"`
	Seed      int64          `json:"seed"` // Зерно генерации уровня и рандома
	Timestamp int64          `json:"timestamp"`
	Actions   []ReplayAction `json:"actions"`
}

// Record дописывает команду в ленту.
func (r *ReplaySession) Record(turn int64, a ActionType, payload json.RawMessage) {
	r.Actions = append(r.Actions, ReplayAction{Turn: turn, Action: a, Payload: payload})
}
