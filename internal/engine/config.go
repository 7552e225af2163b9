package engine

import (
	"time"

	"github.com/angband/angband-sub026/internal/domain"
)

// Config хранит параметры запуска движка
type Config struct {
	// Seed - мастер-зерно. От него зависят все уровни:
	// сид уровня глубины N = Seed + N.
	Seed  int64
	Depth int

	PlayerName  string
	PlayerLevel int

	// Поведение монстров.
	SmartLearn    bool
	SmartCheat    bool
	SmartPacks    bool
	SmartMonsters bool
	FlowBySound   bool
	FlowBySmell   bool
	// HitpointWarn — порог предупреждения о здоровье в десятых долях.
	HitpointWarn int

	// DataDir - каталог с .lua описаниями рас и предметов. Пусто — встроенные.
	DataDir string
	// SaveDir - куда писать сохранения. Пусто — сохранение выключено.
	SaveDir string
}

// NewConfig создает конфиг по умолчанию (случайный сид)
func NewConfig() Config {
	return Config{
		Seed:         time.Now().UnixNano(),
		Depth:        1,
		PlayerName:   "Adventurer",
		PlayerLevel:  10,
		SmartLearn:   true,
		SmartPacks:   true,
		FlowBySound:  true,
		FlowBySmell:  true,
		HitpointWarn: 3,
	}
}

// Options — опции уровня из конфига.
func (c Config) Options() domain.Options {
	return domain.Options{
		SmartLearn:    c.SmartLearn,
		SmartCheat:    c.SmartCheat,
		SmartPacks:    c.SmartPacks,
		SmartMonsters: c.SmartMonsters,
		FlowBySound:   c.FlowBySound,
		FlowBySmell:   c.FlowBySmell,
		HitpointWarn:  c.HitpointWarn,
	}
}

// LevelSeed — сид уровня глубины depth.
func (c Config) LevelSeed(depth int) int64 {
	return c.Seed + int64(depth)
}
