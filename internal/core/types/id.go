package types

import (
	"fmt"
	"strconv"

	"github.com/angband/angband-sub026/internal/core/types/enums"
)

// Handle — 64-битная ссылка на слот арены (монстр или предмет).
//
// Handle является value-type: его можно копировать, сравнивать и
// сериализовать без указателей, поэтому уровень целиком сохраняется
// и восстанавливается без фиксапа ссылок.
//
// Формат битов (от старших к младшим):
//
//	[ Depth (8) | Kind (8) | Generation (16) | Index (32) ]
//
// Где:
//   - Depth — глубина уровня, которому принадлежит сущность (монстры
//     никогда не переходят между уровнями)
//   - Kind — вид сущности (монстр, предмет)
//   - Generation — версия слота арены (защита от устаревших ссылок)
//   - Index — индекс слота в арене
type Handle uint64

// NilHandle — пустая ссылка.
const NilHandle Handle = 0

// Конфигурация битов Handle.
const (
	bitsIndex = 32
	bitsGen   = 16
	bitsKind  = 8
	bitsDepth = 8

	shiftGen   = bitsIndex
	shiftKind  = bitsIndex + bitsGen
	shiftDepth = bitsIndex + bitsGen + bitsKind

	maskIndex = (1 << bitsIndex) - 1
	maskGen   = (1 << bitsGen) - 1
	maskKind  = (1 << bitsKind) - 1
	maskDepth = (1 << bitsDepth) - 1
)

// MaxGeneration — после него поколение слота заворачивается в 1 (0 зарезервирован).
const MaxGeneration = maskGen

// PackHandle собирает Handle из составных частей.
// Проверок диапазонов нет.
func PackHandle(depth uint8, kind enums.Kind, gen uint16, index uint32) Handle {
	return Handle(
		(uint64(depth) << shiftDepth) |
			(uint64(kind) << shiftKind) |
			(uint64(gen) << shiftGen) |
			uint64(index),
	)
}

// Index возвращает индекс слота в арене.
func (h Handle) Index() uint32 {
	return uint32(h & maskIndex)
}

// Generation возвращает поколение слота.
func (h Handle) Generation() uint16 {
	return uint16((h >> shiftGen) & maskGen)
}

// Kind возвращает вид сущности.
func (h Handle) Kind() enums.Kind {
	return enums.Kind((h >> shiftKind) & maskKind)
}

// Depth возвращает глубину уровня-владельца.
func (h Handle) Depth() uint8 {
	return uint8((h >> shiftDepth) & maskDepth)
}

func (h Handle) IsNil() bool {
	return h == NilHandle
}

// IsLocal проверяет, что ссылка принадлежит уровню данной глубины.
func (h Handle) IsLocal(depth uint8) bool {
	return h.Depth() == depth
}

// String — для логов и отладки.
func (h Handle) String() string {
	if h.IsNil() {
		return "<nil>"
	}
	return fmt.Sprintf("[%s d=%d gen=%d idx=%d]", h.Kind(), h.Depth(), h.Generation(), h.Index())
}

// MarshalJSON пишет Handle строкой: uint64 не переживает JavaScript.
func (h Handle) MarshalJSON() ([]byte, error) {
	return []byte(`"` + strconv.FormatUint(uint64(h), 10) + `"`), nil
}

// UnmarshalJSON принимает и строку, и число.
func (h *Handle) UnmarshalJSON(data []byte) error {
	s := string(data)

	if len(s) > 1 && s[0] == '"' {
		s = s[1 : len(s)-1]
	}

	if s == "" || s == "null" {
		*h = NilHandle
		return nil
	}

	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return err
	}

	*h = Handle(v)
	return nil
}
