package domain

// Feature — код рельефа клетки. Хранится в rl.Grid пещеры.
type Feature uint8

const (
	FeatNone  Feature = 0x00
	FeatFloor Feature = 0x01
	// FeatInvis — скрытая ловушка, выглядит как пол.
	FeatInvis  Feature = 0x02
	FeatGlyph  Feature = 0x03
	FeatOpen   Feature = 0x04
	FeatBroken Feature = 0x05
	FeatLess   Feature = 0x06
	FeatMore   Feature = 0x07

	FeatTrapHead Feature = 0x10
	FeatTrapTail Feature = 0x1F

	// Двери: HEAD — закрытая, HEAD+1..7 — запертая с силой замка,
	// HEAD+8..15 — заклиненная.
	FeatDoorHead Feature = 0x20
	FeatDoorTail Feature = 0x2F

	FeatSecret    Feature = 0x30
	FeatRubble    Feature = 0x31
	FeatMagma     Feature = 0x32
	FeatQuartz    Feature = 0x33
	FeatMagmaH    Feature = 0x34
	FeatQuartzH   Feature = 0x35
	FeatMagmaK    Feature = 0x36
	FeatQuartzK   Feature = 0x37
	FeatWallExtra Feature = 0x38
	FeatWallInner Feature = 0x39
	FeatWallOuter Feature = 0x3A
	FeatWallSolid Feature = 0x3B
	FeatPermExtra Feature = 0x3C
	FeatPermInner Feature = 0x3D
	FeatPermOuter Feature = 0x3E
	FeatPermSolid Feature = 0x3F
)

// Passable — «пол» в широком смысле: ловушки, открытые двери, лестницы.
// Все, что ниже кода дверей, пропускает взгляд и снаряды.
func (f Feature) Passable() bool { return f < FeatDoorHead }

func (f Feature) IsTrap() bool { return f >= FeatTrapHead && f <= FeatTrapTail }

// IsClosedDoor — закрытая, запертая или заклиненная дверь.
func (f Feature) IsClosedDoor() bool { return f >= FeatDoorHead && f <= FeatDoorTail }

// IsDoor — любая дверь, включая открытые и тайные.
func (f Feature) IsDoor() bool {
	return f.IsClosedDoor() || f == FeatOpen || f == FeatBroken || f == FeatSecret
}

// LockPower — сила замка (0 — не заперта), для заклиненных — сила заклинивания.
func (f Feature) LockPower() int {
	if !f.IsClosedDoor() {
		return 0
	}
	return int(f-FeatDoorHead) & 7
}

func (f Feature) IsPermanent() bool { return f >= FeatPermExtra }

// IsGranite — обычная стена (не жила, не вечная).
func (f Feature) IsGranite() bool { return f >= FeatWallExtra && f < FeatPermExtra }

func (f Feature) IsVein() bool { return f >= FeatMagma && f <= FeatQuartzK }

// HasTreasure — жила с золотом (скрытым или видимым).
func (f Feature) HasTreasure() bool { return f >= FeatMagmaH && f <= FeatQuartzK }

// Boring — клетку не нужно помнить в темноте.
func (f Feature) Boring() bool { return f <= FeatInvis }

func (f Feature) Name() string {
	switch {
	case f == FeatFloor, f == FeatInvis:
		return "floor"
	case f == FeatGlyph:
		return "glyph of warding"
	case f == FeatOpen:
		return "open door"
	case f == FeatBroken:
		return "broken door"
	case f == FeatLess:
		return "up staircase"
	case f == FeatMore:
		return "down staircase"
	case f.IsTrap():
		return "trap"
	case f.IsClosedDoor():
		return "door"
	case f == FeatSecret, f.IsGranite():
		return "granite wall"
	case f == FeatRubble:
		return "pile of rubble"
	case f == FeatMagma, f == FeatMagmaH, f == FeatMagmaK:
		return "magma vein"
	case f == FeatQuartz, f == FeatQuartzH, f == FeatQuartzK:
		return "quartz vein"
	case f.IsPermanent():
		return "permanent wall"
	}
	return "nothing"
}

// Rune — символ для отладочных дампов карты.
func (f Feature) Rune() rune {
	switch {
	case f == FeatFloor, f == FeatInvis:
		return '.'
	case f == FeatGlyph:
		return ';'
	case f == FeatOpen, f == FeatBroken:
		return '\''
	case f == FeatLess:
		return '<'
	case f == FeatMore:
		return '>'
	case f.IsTrap():
		return '^'
	case f.IsClosedDoor():
		return '+'
	case f == FeatRubble:
		return ':'
	case f == FeatMagmaK, f == FeatQuartzK:
		return '*'
	case f.IsVein():
		return '%'
	}
	return '#'
}
