package systems

import "codeberg.org/anaseto/gruid"

// Направления в нотации цифровой клавиатуры: 1..9, 5 — на месте.
var (
	// DDD — восемь направлений: сначала прямые, потом диагонали; девятое — «на месте».
	DDD = [9]int{2, 8, 6, 4, 3, 1, 9, 7, 5}
	DDX = [10]int{0, -1, 0, 1, -1, 0, 1, -1, 0, 1}
	DDY = [10]int{0, 1, 1, 1, 0, 0, 0, -1, -1, -1}
	// DDXDDD/DDYDDD — смещения по порядку DDD.
	DDXDDD = [9]int{0, 0, 1, -1, 1, -1, 1, -1, 0}
	DDYDDD = [9]int{1, -1, 0, 0, 1, 1, -1, -1, 0}
)

// Dir — смещение для направления d (1..9).
func Dir(d int) gruid.Point {
	if d < 0 || d > 9 {
		return gruid.Point{}
	}
	return gruid.Point{X: DDX[d], Y: DDY[d]}
}

// DirDDD — смещение i-го направления по порядку DDD.
func DirDDD(i int) gruid.Point {
	i &= 7
	return gruid.Point{X: DDXDDD[i], Y: DDYDDD[i]}
}

// DirOf — направление (1..9) для единичного смещения; 5, если смещения нет.
func DirOf(dx, dy int) int {
	for d := 1; d <= 9; d++ {
		if DDX[d] == dx && DDY[d] == dy {
			return d
		}
	}
	return 5
}
