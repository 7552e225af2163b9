package types

import (
	"fmt"
)

// Glyph — упакованный символ расы монстра или вида предмета.
//
//	[0:8]  - ASCII символ
//	[8:32] - RGB-цвет
//
// Символ расы участвует в логике (классы сообщений о боли), цвет нужен
// только отладочным клиентам.
type Glyph uint32

const (
	bitsChar  = 8
	bitsColor = 24

	shiftColor = bitsChar

	maskChar  = (1 << bitsChar) - 1
	maskColor = (1 << bitsColor) - 1
)

// Палитра из шестнадцати базовых цветов, адресуемых буквой (как в файлах данных).
var letterColors = map[byte]uint32{
	'd': 0x000000, // тёмный
	'w': 0xFFFFFF, // белый
	's': 0x808080, // серый
	'o': 0xFF8000, // оранжевый
	'r': 0xC00000, // красный
	'g': 0x008040, // зелёный
	'b': 0x0040FF, // синий
	'u': 0x804000, // бурый
	'D': 0x606060, // тёмно-серый
	'W': 0xC0C0C0, // светло-серый
	'v': 0xFF00FF, // фиолетовый
	'y': 0xFFFF00, // жёлтый
	'R': 0xFF0000, // светло-красный
	'G': 0x00FF00, // светло-зелёный
	'B': 0x00FFFF, // голубой
	'U': 0xC08040, // светло-бурый
}

// MakeGlyph создает Glyph из RGB-цвета и символа.
func MakeGlyph(colorRGB uint32, char byte) Glyph {
	return Glyph((colorRGB&maskColor)<<shiftColor | (uint32(char) & maskChar))
}

// GlyphFromLetter создает Glyph по букве цвета. Неизвестная буква даёт белый.
func GlyphFromLetter(letter byte, char byte) Glyph {
	rgb, ok := letterColors[letter]
	if !ok {
		rgb = letterColors['w']
	}
	return MakeGlyph(rgb, char)
}

// Color извлекает 24-битный RGB-цвет.
func (g Glyph) Color() uint32 {
	return uint32(g>>shiftColor) & maskColor
}

// Char извлекает символ.
func (g Glyph) Char() byte {
	return byte(g & maskChar)
}

// String реализует fmt.Stringer: "Glyph{char='A', color=#FFA500}"
func (g Glyph) String() string {
	char := g.Char()
	charStr := string([]byte{char})

	if char < 32 || char > 126 {
		charStr = fmt.Sprintf("\\x%02X", char)
	}

	return fmt.Sprintf("Glyph{char='%s', color=%s}", charStr, g.HexColor())
}

// HexColor возвращает цвет строкой вида "#00FF00".
func (g Glyph) HexColor() string {
	return fmt.Sprintf("#%06X", g.Color())
}
