package domain

import (
	"fmt"
	"strings"
)

// ParseError — неизвестное имя флага или перечисления в данных.
type ParseError struct {
	What  string
	Value string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.What, e.Value)
}

// lookupName ищет имя в таблице без учета регистра.
func lookupName[F Flag](names []string, s string) (F, bool) {
	upper := strings.ToUpper(strings.TrimSpace(s))
	for i, n := range names {
		if n != "" && n == upper {
			return F(i), true
		}
	}
	return 0, false
}

func nameOf[F Flag](names []string, f F) string {
	if int(f) < len(names) && names[f] != "" {
		return names[f]
	}
	return "UNKNOWN"
}

// ParseFlags разбирает список имен в множество. Неизвестное имя — ошибка.
func ParseFlags[F Flag](what string, names []string, list []string) (FlagSet[F], error) {
	var s FlagSet[F]
	for _, n := range list {
		f, ok := lookupName[F](names, n)
		if !ok {
			return s, &ParseError{What: what, Value: n}
		}
		s.Set(f)
	}
	return s, nil
}

// FlagNames — обратное преобразование для дампов.
func FlagNames[F Flag](names []string, s FlagSet[F]) []string {
	list := s.List()
	out := make([]string, 0, len(list))
	for _, f := range list {
		out = append(out, nameOf(names, f))
	}
	return out
}
