package domain

// EventType - событие уровня, которое обрабатывает движок после команды
type EventType uint8

const (
	EventNone EventType = iota
	// EventNewLevel — игрок покинул уровень (телепорт уровня).
	EventNewLevel
	// EventPlayerDied — игрок погиб.
	EventPlayerDied
	// EventSaved — снимок уровня записан на диск.
	EventSaved
)

var eventCmdToString = map[EventType]string{
	EventNewLevel:   "NEW_LEVEL",
	EventPlayerDied: "PLAYER_DIED",
	EventSaved:      "LEVEL_SAVED",
}

func (e EventType) String() string {
	if val, ok := eventCmdToString[e]; ok {
		return val
	}
	return "NONE"
}
