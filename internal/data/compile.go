package data

import (
	"fmt"
	"strconv"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/angband/angband-sub026/internal/core/types"
	"github.com/angband/angband-sub026/internal/domain"
)

func getString(tbl *lua.LTable, key string) string {
	if s, ok := tbl.RawGetString(key).(lua.LString); ok {
		return string(s)
	}
	return ""
}

func getNumber(tbl *lua.LTable, key string) float64 {
	if n, ok := tbl.RawGetString(key).(lua.LNumber); ok {
		return float64(n)
	}
	return 0
}

func getInt(tbl *lua.LTable, key string) int { return int(getNumber(tbl, key)) }

// getIntOr — поле или def, если его нет.
func getIntOr(tbl *lua.LTable, key string, def int) int {
	if _, ok := tbl.RawGetString(key).(lua.LNumber); ok {
		return getInt(tbl, key)
	}
	return def
}

func getTable(tbl *lua.LTable, key string) *lua.LTable {
	if t, ok := tbl.RawGetString(key).(*lua.LTable); ok {
		return t
	}
	return nil
}

// getStrings — массив строк; нестроковые элементы пропускаются.
func getStrings(tbl *lua.LTable, key string) []string {
	t := getTable(tbl, key)
	if t == nil {
		return nil
	}
	out := make([]string, 0, t.MaxN())
	for i := 1; i <= t.MaxN(); i++ {
		if s, ok := t.RawGetInt(i).(lua.LString); ok {
			out = append(out, string(s))
		}
	}
	return out
}

// ParseDice разбирает "12d9", "5+2d4" или "7".
func ParseDice(s string) (domain.RandomValue, error) {
	var v domain.RandomValue
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return v, fmt.Errorf("empty dice")
	}
	if base, rest, ok := strings.Cut(s, "+"); ok {
		b, err := strconv.Atoi(base)
		if err != nil {
			return v, fmt.Errorf("dice %q: bad base: %w", s, err)
		}
		v.Base = b
		s = rest
	}
	n, sides, ok := strings.Cut(s, "d")
	if !ok {
		b, err := strconv.Atoi(s)
		if err != nil {
			return v, fmt.Errorf("dice %q: %w", s, err)
		}
		v.Base += b
		return v, nil
	}
	var err error
	if v.Dice, err = strconv.Atoi(n); err != nil {
		return v, fmt.Errorf("dice %q: bad count: %w", s, err)
	}
	if v.Sides, err = strconv.Atoi(sides); err != nil {
		return v, fmt.Errorf("dice %q: bad sides: %w", s, err)
	}
	return v, nil
}

// glyphOf собирает символ из полей glyph ("k") и color ("G").
func glyphOf(tbl *lua.LTable) (types.Glyph, error) {
	g := getString(tbl, "glyph")
	if len(g) != 1 {
		return 0, fmt.Errorf("glyph must be one character, got %q", g)
	}
	c := getString(tbl, "color")
	letter := byte('w')
	if c != "" {
		letter = c[0]
	}
	return types.GlyphFromLetter(letter, g[0]), nil
}

// compile превращает собранные таблицы в справочник. Все ошибки
// накапливаются в ValidationError, индексы начинаются с единицы.
func compile(coll *collector) (*domain.Registry, *ValidationError) {
	ve := &ValidationError{}
	reg := &domain.Registry{
		Races: make([]domain.Race, 1, len(coll.races)+1),
		Kinds: make([]domain.ObjectKind, 1, len(coll.kinds)+1),
	}
	for _, raw := range coll.races {
		r, errs := compileRace(raw)
		for _, e := range errs {
			ve.Errors = append(ve.Errors, fmt.Sprintf("%s: monster %q: %s", raw.file, raw.name, e))
		}
		r.Index = len(reg.Races)
		reg.Races = append(reg.Races, r)
	}
	for _, raw := range coll.kinds {
		k, errs := compileKind(raw)
		for _, e := range errs {
			ve.Errors = append(ve.Errors, fmt.Sprintf("%s: object %q: %s", raw.file, raw.name, e))
		}
		k.Index = len(reg.Kinds)
		reg.Kinds = append(reg.Kinds, k)
	}
	return reg, ve
}

func compileRace(raw rawDef) (domain.Race, []string) {
	tbl := raw.table
	var errs []string
	fail := func(err error) {
		if err != nil {
			errs = append(errs, err.Error())
		}
	}

	r := domain.Race{
		Name:   raw.name,
		Level:  getInt(tbl, "level"),
		Rarity: getIntOr(tbl, "rarity", 1),
		Speed:  getIntOr(tbl, "speed", domain.NormalSpeed),
		AC:     getInt(tbl, "ac"),
		Sleep:  getInt(tbl, "sleep"),
		Aaf:    getIntOr(tbl, "aaf", 20),
		Mexp:   getInt(tbl, "mexp"),
	}

	var err error
	r.Glyph, err = glyphOf(tbl)
	fail(err)

	switch hp := tbl.RawGetString("hp").(type) {
	case lua.LString:
		r.HP, err = ParseDice(string(hp))
		fail(err)
	case lua.LNumber:
		r.HP = domain.RandomValue{Base: int(hp)}
	default:
		errs = append(errs, "hp is required")
	}

	r.Flags, err = domain.ParseRaceFlags(getStrings(tbl, "flags"))
	fail(err)
	r.Spells, err = domain.ParseSpells(getStrings(tbl, "spells"))
	fail(err)

	// spell_freq = N означает «1 раз из N», как S:1_IN_N.
	if n := getInt(tbl, "spell_freq"); n > 0 {
		r.FreqSpell = 100 / n
		r.FreqInnate = 100 / n
	}
	if n := getInt(tbl, "innate_freq"); n > 0 {
		r.FreqInnate = 100 / n
	}

	if blows := getTable(tbl, "blows"); blows != nil {
		for i := 1; i <= blows.MaxN(); i++ {
			bt, ok := blows.RawGetInt(i).(*lua.LTable)
			if !ok {
				errs = append(errs, fmt.Sprintf("blow %d is not a table", i))
				continue
			}
			b, err := compileBlow(bt)
			if err != nil {
				errs = append(errs, fmt.Sprintf("blow %d: %v", i, err))
				continue
			}
			r.Blows = append(r.Blows, b)
		}
	}
	return r, errs
}

// compileBlow принимает как Blow("HIT", "HURT", "1d8"), так и
// позиционную таблицу {"HIT", "HURT", "1d8"}.
func compileBlow(bt *lua.LTable) (domain.Blow, error) {
	method, effect, dice := getString(bt, "method"), getString(bt, "effect"), getString(bt, "dice")
	if method == "" {
		method = lua.LVAsString(bt.RawGetInt(1))
		effect = lua.LVAsString(bt.RawGetInt(2))
		dice = lua.LVAsString(bt.RawGetInt(3))
	}
	var b domain.Blow
	m, ok := domain.ParseBlowMethod(method)
	if !ok {
		return b, fmt.Errorf("unknown blow method %q", method)
	}
	e, ok := domain.ParseBlowEffect(effect)
	if !ok {
		return b, fmt.Errorf("unknown blow effect %q", effect)
	}
	b.Method, b.Effect = m, e
	if dice != "" {
		d, err := ParseDice(dice)
		if err != nil {
			return b, err
		}
		b.DD, b.DS = d.Dice, d.Sides
	}
	return b, nil
}

func compileKind(raw rawDef) (domain.ObjectKind, []string) {
	tbl := raw.table
	var errs []string

	k := domain.ObjectKind{
		Name:   raw.name,
		Sval:   getInt(tbl, "sval"),
		Level:  getInt(tbl, "level"),
		Pval:   getInt(tbl, "pval"),
		AC:     getInt(tbl, "ac"),
		Weight: getInt(tbl, "weight"),
	}
	tv, ok := domain.ParseTval(getString(tbl, "tval"))
	if !ok {
		errs = append(errs, fmt.Sprintf("unknown tval %q", getString(tbl, "tval")))
	}
	k.Tval = tv

	if s := getString(tbl, "dice"); s != "" {
		d, err := ParseDice(s)
		if err != nil {
			errs = append(errs, err.Error())
		}
		k.DD, k.DS = d.Dice, d.Sides
	}

	flags, err := domain.ParseObjFlags(getStrings(tbl, "flags"))
	if err != nil {
		errs = append(errs, err.Error())
	}
	k.Flags = flags
	return k, errs
}
