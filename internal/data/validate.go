package data

import (
	"fmt"
	"strings"

	"github.com/angband/angband-sub026/internal/domain"
)

// ValidationError собирает все ошибки и предупреждения загрузки.
type ValidationError struct {
	Errors   []string
	Warnings []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d error(s):\n  %s",
		len(e.Errors), strings.Join(e.Errors, "\n  "))
}

func (e *ValidationError) errorf(format string, args ...any) {
	e.Errors = append(e.Errors, fmt.Sprintf(format, args...))
}

func (e *ValidationError) warnf(format string, args ...any) {
	e.Warnings = append(e.Warnings, fmt.Sprintf(format, args...))
}

// validate проверяет согласованность справочника.
func validate(reg *domain.Registry, ve *ValidationError) {
	if len(reg.Races) < 2 {
		ve.errorf("no monster races defined")
	}

	seen := map[string]bool{}
	for i := 1; i < len(reg.Races); i++ {
		r := &reg.Races[i]
		if strings.TrimSpace(r.Name) == "" {
			ve.errorf("monster #%d: empty name", i)
			continue
		}
		if seen[r.Name] {
			ve.errorf("monster %q: duplicate name", r.Name)
		}
		seen[r.Name] = true

		if r.Level < 0 || r.Level >= domain.MaxDepth {
			ve.errorf("monster %q: level %d out of range", r.Name, r.Level)
		}
		if r.Speed <= 0 {
			ve.errorf("monster %q: speed must be positive", r.Name)
		}
		if r.HP.Base+r.HP.Dice*r.HP.Sides <= 0 {
			ve.errorf("monster %q: hp must be positive", r.Name)
		}
		if len(r.Blows) > domain.MonsterBlows {
			ve.errorf("monster %q: %d blows, at most %d allowed", r.Name, len(r.Blows), domain.MonsterBlows)
		}
		if !r.Spells.Empty() && r.FreqSpell == 0 && r.FreqInnate == 0 {
			ve.warnf("monster %q: has spells but no spell_freq", r.Name)
		}
		if r.Rarity == 0 && !r.Unique() {
			ve.warnf("monster %q: rarity 0, never generated at random", r.Name)
		}
		if r.Flags.Has(domain.RFNeverMove) && r.Flags.Has(domain.RFFriends) {
			ve.warnf("monster %q: NEVER_MOVE with FRIENDS", r.Name)
		}
	}

	seen = map[string]bool{}
	gold := false
	for i := 1; i < len(reg.Kinds); i++ {
		k := &reg.Kinds[i]
		if strings.TrimSpace(k.Name) == "" {
			ve.errorf("object #%d: empty name", i)
			continue
		}
		if seen[k.Name] {
			ve.errorf("object %q: duplicate name", k.Name)
		}
		seen[k.Name] = true
		if k.Tval == domain.TvGold {
			gold = true
		}
		probe := domain.Object{Tval: k.Tval}
		if probe.IsWeapon() && k.Tval != domain.TvBow && k.DD*k.DS == 0 {
			ve.warnf("object %q: weapon without damage dice", k.Name)
		}
	}
	if len(reg.Kinds) > 1 && !gold {
		ve.warnf("no GOLD object kinds defined")
	}
}
