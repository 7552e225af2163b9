package domain

// Размеры и дальности.
const (
	DungeonWid = 198
	DungeonHgt = 66

	// MaxRange — дальность снарядов и заклинаний.
	MaxRange = 18
	// MaxSight — дальность зрения.
	MaxSight = 20
	// FlowDepth — глубина поля запаха.
	FlowDepth = 32
	// MaxBlastGrids — предел клеток одной проекции.
	MaxBlastGrids = 256
)

// Монстры.
const (
	MaxMonsters = 1024
	MaxObjects  = 1024
	// MaxRepro — предел числа размножившихся монстров на уровне.
	MaxRepro = 100
	// MonMultAdj — поправка на тесноту при размножении.
	MonMultAdj = 8
	// BreakGlyph — сила руны защиты.
	BreakGlyph = 550
	// MaxDepth — дно подземелья.
	MaxDepth = 127
)

// Энергия.
const (
	// NormalSpeed — скорость без бонусов.
	NormalSpeed = 110
	// TurnEnergy — энергия на одно действие.
	TurnEnergy = 100
)

// Стоимость действий игрока в энергии.
const (
	TimeCostMove = 100
	TimeCostAim  = 100
	TimeCostWait = 100
	TimeCostRest = 100
)

// extractEnergy — энергия за игровой ход по скорости (110 = 10).
var extractEnergy = [200]int{
	/* Slow */ 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	/* Slow */ 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	/* Slow */ 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	/* Slow */ 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	/* Slow */ 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	/* Slow */ 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	/* Slow */ 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	/* S-40 */ 2, 2, 2, 2, 2, 2, 2, 2, 2, 2,
	/* S-30 */ 2, 2, 2, 2, 2, 2, 2, 3, 3, 3,
	/* S-20 */ 3, 3, 3, 3, 3, 4, 4, 4, 4, 4,
	/* S-10 */ 5, 5, 5, 5, 6, 6, 7, 7, 8, 9,
	/* Norm */ 10, 11, 12, 13, 14, 15, 16, 17, 18, 19,
	/* F+10 */ 20, 21, 22, 23, 24, 25, 26, 27, 28, 29,
	/* F+20 */ 30, 31, 32, 33, 34, 35, 36, 36, 37, 37,
	/* F+30 */ 38, 38, 39, 39, 40, 40, 40, 41, 41, 41,
	/* F+40 */ 42, 42, 42, 43, 43, 43, 44, 44, 44, 44,
	/* F+50 */ 45, 45, 45, 45, 45, 46, 46, 46, 46, 46,
	/* F+60 */ 47, 47, 47, 47, 47, 48, 48, 48, 48, 48,
	/* F+70 */ 49, 49, 49, 49, 49, 49, 49, 49, 49, 49,
	/* F+80 */ 49, 49, 49, 49, 49, 49, 49, 49, 49, 49,
}

// ExtractEnergy — прирост энергии за ход при данной скорости.
func ExtractEnergy(speed int) int {
	if speed < 0 {
		speed = 0
	}
	if speed > 199 {
		speed = 199
	}
	return extractEnergy[speed]
}
