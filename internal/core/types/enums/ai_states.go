package enums

// Mood — сводное состояние монстра для отладочных дампов.
type Mood uint8

const (
	MoodUnknown Mood = iota
	MoodAsleep
	MoodHunting
	MoodFleeing
	MoodConfused
	MoodStunned
)

var moodToString = map[Mood]string{
	MoodAsleep:   "ASLEEP",
	MoodHunting:  "HUNTING",
	MoodFleeing:  "FLEEING",
	MoodConfused: "CONFUSED",
	MoodStunned:  "STUNNED",
}

func (m Mood) String() string {
	if val, ok := moodToString[m]; ok {
		return val
	}
	return "UNKNOWN"
}

// MarshalText нужен, чтобы в JSON дампах было имя, а не число.
func (m Mood) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}
