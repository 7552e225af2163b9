package types

import (
	"testing"
)

func TestMakeGlyph(t *testing.T) {
	tests := []struct {
		name     string
		colorRGB uint32
		char     byte
		want     Glyph
	}{
		{"orange A", 0xFFA500, 'A', Glyph(0xFFA50041)},
		{"black space", 0x000000, ' ', Glyph(0x00000020)},
		{"red exclamation", 0xFF0000, '!', Glyph(0xFF000021)},
		{"color truncation", 0xAAFFA500, 'A', Glyph(0xFFA50041)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MakeGlyph(tt.colorRGB, tt.char); got != tt.want {
				t.Errorf("MakeGlyph() = %08X, want %08X", uint32(got), uint32(tt.want))
			}
		})
	}
}

func TestGlyphFromLetter(t *testing.T) {
	g := GlyphFromLetter('R', 'Z')
	if g.Char() != 'Z' {
		t.Errorf("Char() = %q, want 'Z'", g.Char())
	}
	if g.Color() != 0xFF0000 {
		t.Errorf("Color() = %06X, want FF0000", g.Color())
	}

	// Неизвестная буква -> белый
	if got := GlyphFromLetter('?', 'k').Color(); got != 0xFFFFFF {
		t.Errorf("unknown letter color = %06X, want FFFFFF", got)
	}
}

func TestGlyph_String(t *testing.T) {
	if got := MakeGlyph(0x00FF00, 'j').String(); got != "Glyph{char='j', color=#00FF00}" {
		t.Errorf("String() = %q", got)
	}
	if got := MakeGlyph(0x000000, '\n').String(); got != "Glyph{char='\\x0A', color=#000000}" {
		t.Errorf("String() = %q", got)
	}
}
