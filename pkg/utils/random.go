package utils

import (
	crand "crypto/rand"
	"encoding/hex"
	"math/rand"
)

// RNG — детерминированный генератор уровня. Все броски костей движка
// идут через него, поэтому один сид воспроизводит партию целиком.
type RNG struct {
	r     *rand.Rand
	Seed  int64
	Calls uint64 // сколько раз дёргали генератор (для отладки рассинхрона)
}

func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewSource(seed)), Seed: seed}
}

// ResumeRNG — генератор для загруженной партии. Точное состояние
// math/rand не сохраняется, поэтому поток продолжается от seed+calls:
// одна и та же сохраненная партия всегда продолжается одинаково.
func ResumeRNG(seed int64, calls uint64) *RNG {
	g := NewRNG(seed + int64(calls))
	g.Seed = seed
	g.Calls = calls
	return g
}

// Int0 — случайное число в [0, n). При n <= 0 возвращает 0.
func (g *RNG) Int0(n int) int {
	if n <= 0 {
		return 0
	}
	g.Calls++
	return g.r.Intn(n)
}

// Int1 — случайное число в [1, n].
func (g *RNG) Int1(n int) int {
	return g.Int0(n) + 1
}

// Damroll бросает num костей по sides граней.
func (g *RNG) Damroll(num, sides int) int {
	if sides <= 0 {
		return 0
	}
	sum := 0
	for i := 0; i < num; i++ {
		sum += g.Int1(sides)
	}
	return sum
}

// Spread — значение в [a-d, a+d].
func (g *RNG) Spread(a, d int) int {
	return a + g.Int0(1+d+d) - d
}

// OneIn — истина с вероятностью 1/n.
func (g *RNG) OneIn(n int) bool {
	return g.Int0(n) == 0
}

// Percent — истина с вероятностью p%.
func (g *RNG) Percent(p int) bool {
	return g.Int0(100) < p
}

// Pick возвращает случайный индекс из [0, n).
func (g *RNG) Pick(n int) int {
	return g.Int0(n)
}

// GenerateID создает простой уникальный ID для сессий наблюдателей.
func GenerateID() string {
	b := make([]byte, 8)
	if _, err := crand.Read(b); err != nil {
		panic("failed to generate random ID: " + err.Error())
	}
	return hex.EncodeToString(b)
}
