package handlers

import (
	"encoding/json"

	"github.com/angband/angband-sub026/internal/domain"
)

// Типы сообщений лога.
const (
	MsgInfo   = "INFO"
	MsgCombat = "COMBAT"
	MsgError  = "ERROR"
	MsgSystem = "SYSTEM"
)

// Context передает хендлеру состояние уровня.
// Хендлер меняет уровень напрямую: движок однопоточный.
type Context struct {
	Level *domain.Level

	// Save пишет снимок партии и возвращает путь к файлу.
	// nil — сохранение выключено.
	Save func() (string, error)
}

// Result - возвращает результат выполнения команды.
// Хендлер НЕ пишет в логи движка напрямую, он возвращает данные.
type Result struct {
	Msg     string // Текст лога
	MsgType string // Тип лога (INFO, COMBAT, ERROR)

	// TookTurn — команда потратила ход игрока.
	TookTurn bool
	// Repeat — сколько еще ходов подряд повторять бездействие (отдых).
	Repeat int
	// UntilHealed — повтор прекращается, как только здоровье полное.
	UntilHealed bool

	Event domain.EventType
}

// HandlerFunc - это контракт для любой команды (MOVE, AIM, etc).
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)

// EmptyResult - вспомогательная функция для пустого успешного ответа
func EmptyResult() Result {
	return Result{}
}

// TurnResult — ход потрачен, сообщений нет.
func TurnResult() Result {
	return Result{TookTurn: true}
}
