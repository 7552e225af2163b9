package systems

import (
	"codeberg.org/anaseto/gruid"

	"github.com/angband/angband-sub026/internal/core/types"
	"github.com/angband/angband-sub026/internal/domain"
)

// ValidationResult — результат проверки цели
type ValidationResult struct {
	Target  types.Handle
	Pos     gruid.Point
	Valid   bool
	Message string // Сообщение об ошибке, если Valid == false
}

// ValidateTarget проверяет, можно ли выстрелить в монстра h: он жив,
// виден, в пределах MaxRange и снаряд до него долетает.
func ValidateTarget(l *domain.Level, h types.Handle) ValidationResult {
	m := l.Monster(h)
	if m == nil {
		return ValidationResult{Message: "There is no such monster."}
	}
	if !m.Visible {
		return ValidationResult{Message: "You cannot see that monster."}
	}
	if m.Cdis > domain.MaxRange {
		return ValidationResult{Message: "That monster is out of range."}
	}
	if !Projectable(l.Cave, l.Player.Pos, m.Pos) {
		return ValidationResult{Message: "You have no clear shot."}
	}
	return ValidationResult{Target: h, Pos: m.Pos, Valid: true}
}

// TargetNearest — ближайший монстр, в которого можно выстрелить.
func TargetNearest(l *domain.Level) (types.Handle, bool) {
	best := types.NilHandle
	bestDis := domain.MaxRange + 1
	for _, h := range l.Monsters.Handles() {
		m := l.Monster(h)
		if m.Cdis >= bestDis {
			continue
		}
		if ValidateTarget(l, h).Valid {
			best, bestDis = h, m.Cdis
		}
	}
	return best, !best.IsNil()
}
