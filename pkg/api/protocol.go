package api

import (
	"encoding/json"
)

// --- СЕРВЕР -> КЛИЕНТ ---

// Типы ответов сервера.
const (
	TypeUpdate = "UPDATE"
	TypeError  = "ERROR"
)

// ServerResponse это корневой объект, который сервер отправляет клиенту.
// Отправляется после каждой команды игрока и при подключении наблюдателя.
type ServerResponse struct {
	// Type тип сообщения: UPDATE или ERROR.
	Type string `json:"type"`

	// Turn номер игрового хода.
	Turn  int64 `json:"turn"`
	Depth int   `json:"depth"`

	// Grid метаданные о размере всей карты.
	Grid *GridMeta `json:"grid,omitempty"`

	// Map видимые и исследованные клетки.
	Map []TileView `json:"map,omitempty"`

	Player   *PlayerView   `json:"player,omitempty"`
	Monsters []MonsterView `json:"monsters,omitempty"`

	// Logs новые сообщения с прошлой рассылки.
	Logs []LogEntry `json:"logs,omitempty"`

	// Error текст ошибки для Type == ERROR.
	Error string `json:"error,omitempty"`
}

// GridMeta содержит общие размеры карты.
type GridMeta struct {
	Width  int `json:"w"`
	Height int `json:"h"`
}

// TileView это DTO для одной клетки карты.
type TileView struct {
	X int `json:"x"`
	Y int `json:"y"`

	Symbol string `json:"symbol"`
	Color  string `json:"color"`

	// IsWall true, если клетка непроходима.
	IsWall bool `json:"isWall"`

	// IsVisible клетка в поле зрения, IsExplored когда-либо была замечена.
	IsVisible  bool `json:"isVisible"`
	IsExplored bool `json:"isExplored"`
}

// Pos - координаты на карте.
type Pos struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// MonsterView это DTO для видимого монстра.
type MonsterView struct {
	// ID строковая форма ссылки на монстра, годится для AIM и ATTACK.
	ID     string `json:"id"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
	Color  string `json:"color"`
	Pos    Pos    `json:"pos"`
	HP     int    `json:"hp"`
	MaxHP  int    `json:"maxHp"`
	Mood   string `json:"mood"`
	Dist   int    `json:"dist"`
}

// PlayerView это DTO персонажа.
type PlayerView struct {
	Name   string `json:"name"`
	Pos    Pos    `json:"pos"`
	Level  int    `json:"level"`
	Exp    int    `json:"exp"`
	HP     int    `json:"hp"`
	MaxHP  int    `json:"maxHp"`
	AC     int    `json:"ac"`
	Gold   int    `json:"gold"`
	Energy int    `json:"energy"`
	IsDead bool   `json:"isDead"`

	// Effects активные временные эффекты: "BLIND", "POISONED"...
	Effects []string `json:"effects,omitempty"`

	Inventory []ItemView `json:"inventory,omitempty"`
	Equipment []ItemView `json:"equipment,omitempty"`
}

// ItemView представляет предмет для клиента
type ItemView struct {
	Slot     int    `json:"slot"`
	Label    string `json:"label"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Number   int    `json:"number"`
}

// LogEntry представляет одну запись в игровом логе.
type LogEntry struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Type      string `json:"type"`      // INFO, COMBAT, ERROR, SYSTEM
	Timestamp int64  `json:"timestamp"` // Unix milliseconds
	Turn      int64  `json:"turn"`
}

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand это корневой объект для всех сообщений от клиента к серверу.
type ClientCommand struct {
	// Token сессия клиента. Пустой токен — наблюдатель без права хода.
	Token string `json:"token,omitempty"`

	// Action название действия: MOVE, AIM, WAIT, REST, SAVE...
	Action string `json:"action"`

	// Payload JSON-объект с данными для действия. Его структура зависит от Action.
	Payload json.RawMessage `json:"payload"`
}

// --- Payloads ---

// DirectionPayload используется для действий с направлением (MOVE, TUNNEL).
type DirectionPayload struct {
	Dx int `json:"dx"` // Смещение по X (-1, 0, 1)
	Dy int `json:"dy"` // Смещение по Y (-1, 0, 1)
}

// EntityPayload используется для действий, нацеленных на монстра (ATTACK).
type EntityPayload struct {
	TargetID string `json:"targetId"`
}

// AimPayload — выстрел стихией: болт (Radius 0), шар или луч.
// Цель задается монстром или точкой; без цели берется ближайший монстр.
type AimPayload struct {
	Element  string `json:"element"`
	Dice     string `json:"dice"`
	Radius   int    `json:"radius,omitempty"`
	Beam     bool   `json:"beam,omitempty"`
	TargetID string `json:"targetId,omitempty"`
	Target   *Pos   `json:"target,omitempty"`
}

// RestPayload — отдых на Turns ходов; 0 — пока не восстановится здоровье.
type RestPayload struct {
	Turns int `json:"turns"`
}

// ItemPayload используется для действий с предметами (DROP, WIELD).
type ItemPayload struct {
	Slot  int `json:"slot"`
	Count int `json:"count,omitempty"` // Для DROP - количество предметов в стаке
}
