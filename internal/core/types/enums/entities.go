package enums

// Kind — вид сущности, на которую указывает Handle.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindMonster
	KindObject
)

var kindToString = map[Kind]string{
	KindMonster: "MONSTER",
	KindObject:  "OBJECT",
}

// String возвращает строковое представление (для логов и дебага)
func (k Kind) String() string {
	if val, ok := kindToString[k]; ok {
		return val
	}
	return "UNKNOWN"
}
