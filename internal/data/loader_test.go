package data

import (
	"errors"
	"os"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angband/angband-sub026/internal/core/types"
	"github.com/angband/angband-sub026/internal/domain"
	"github.com/angband/angband-sub026/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func TestLoad_Dir(t *testing.T) {
	reg, err := Load("testdata/mini")
	require.NoError(t, err)
	require.Len(t, reg.Races, 3)
	require.Len(t, reg.Kinds, 3)

	orc := reg.Race(1)
	require.NotNil(t, orc)
	assert.Equal(t, 1, orc.Index)
	assert.Equal(t, "test orc", orc.Name)
	assert.Equal(t, types.GlyphFromLetter('G', 'o'), orc.Glyph)
	assert.Equal(t, domain.RandomValue{Base: 2, Dice: 3, Sides: 8}, orc.HP)
	assert.Equal(t, 25, orc.FreqSpell)
	assert.Equal(t, 50, orc.FreqInnate)
	assert.True(t, orc.Spells.Has(domain.SpellArrow1))
	assert.True(t, orc.Spells.Has(domain.SpellBlink))
	assert.True(t, orc.Flags.Has(domain.RFFriends))
	require.Len(t, orc.Blows, 3)
	assert.Equal(t, domain.Blow{Method: domain.BlowHit, Effect: domain.BlowEffHurt, DD: 1, DS: 8}, orc.Blows[0])
	assert.Equal(t, domain.Blow{Method: domain.BlowBite, Effect: domain.BlowEffPoison, DD: 2, DS: 4}, orc.Blows[1])
	assert.Equal(t, domain.Blow{Method: domain.BlowMoan}, orc.Blows[2])

	ghost := reg.RaceByName("test ghost")
	require.NotNil(t, ghost)
	assert.Equal(t, domain.NormalSpeed, ghost.Speed, "speed defaults to normal")
	assert.Equal(t, 1, ghost.Rarity)
	assert.Equal(t, domain.RandomValue{Base: 30}, ghost.HP)
	assert.Equal(t, byte('G'), ghost.Char())

	blade := reg.Kind(1)
	require.NotNil(t, blade)
	assert.Equal(t, domain.TvSword, blade.Tval)
	assert.Equal(t, 2, blade.DD)
	assert.Equal(t, 5, blade.DS)
	assert.True(t, blade.Flags.Has(domain.OFSlayOrc))
	assert.NotNil(t, reg.KindByTval(domain.TvGold, 1))
}

func TestLoad_MissingDir(t *testing.T) {
	_, err := Load("testdata/nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading data directory")
}

func TestLoadDefault(t *testing.T) {
	reg, err := LoadDefault()
	require.NoError(t, err)
	assert.Greater(t, len(reg.Races), 20)
	assert.Greater(t, len(reg.Kinds), 30)

	for _, name := range []string{"water spirit", "water elemental"} {
		r := reg.RaceByName(name)
		require.NotNil(t, r, name)
		assert.True(t, r.Flags.Has(domain.RFImWater), "%s is immune to water", name)
	}

	grip := reg.RaceByName("Grip, Farmer Maggot's Dog")
	require.NotNil(t, grip)
	assert.True(t, grip.Unique())
	assert.Equal(t, 120, grip.Speed)

	worm := reg.RaceByName("Wormtongue, Agent of Saruman")
	require.NotNil(t, worm)
	assert.Equal(t, 20, worm.FreqSpell)
	assert.True(t, worm.Spells.Has(domain.SpellHeal))

	flask := domain.NewObject(reg.KindByTval(domain.TvFlask, 0), 2)
	assert.Equal(t, "2 Flasks of oil", flask.Desc())
}

func TestLoadFS_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "syntax error",
			src:  `Monster "x" {`,
			want: "parsing races.lua",
		},
		{
			name: "sandboxed global",
			src:  `dofile("/etc/passwd")`,
			want: "executing races.lua",
		},
		{
			name: "unknown flag",
			src:  `Monster "x" { glyph = "x", hp = 5, flags = { "FLYING" } }`,
			want: `unknown race flag "FLYING"`,
		},
		{
			name: "unknown spell",
			src:  `Monster "x" { glyph = "x", hp = 5, spell_freq = 2, spells = { "BR_LOVE" } }`,
			want: `unknown spell "BR_LOVE"`,
		},
		{
			name: "bad blow",
			src:  `Monster "x" { glyph = "x", hp = 5, blows = { Blow("HUG") } }`,
			want: `unknown blow method "HUG"`,
		},
		{
			name: "missing hp",
			src:  `Monster "x" { glyph = "x" }`,
			want: "hp is required",
		},
		{
			name: "bad glyph",
			src:  `Monster "x" { glyph = "xx", hp = 5 }`,
			want: "glyph must be one character",
		},
		{
			name: "duplicate",
			src:  `Monster "x" { glyph = "x", hp = 5 } Monster "x" { glyph = "x", hp = 5 }`,
			want: "duplicate name",
		},
		{
			name: "too many blows",
			src: `Monster "x" { glyph = "x", hp = 5, blows = {
				Blow("HIT"), Blow("HIT"), Blow("HIT"), Blow("HIT"), Blow("HIT") } }`,
			want: "5 blows",
		},
		{
			name: "empty monster name",
			src:  `Monster "" { glyph = "x", hp = 5 }`,
			want: "monster #1: empty name",
		},
		{
			name: "blank monster name",
			src:  `Monster "x" { glyph = "x", hp = 5 } Monster "  " { glyph = "y", hp = 5 }`,
			want: "monster #2: empty name",
		},
		{
			name: "empty object name",
			src:  `Monster "x" { glyph = "x", hp = 5 } Object "" { tval = "SWORD", sval = 1 }`,
			want: "object #1: empty name",
		},
		{
			name: "unknown tval",
			src:  `Monster "x" { glyph = "x", hp = 5 } Object "Thing" { tval = "GIZMO" }`,
			want: `unknown tval "GIZMO"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{"races.lua": {Data: []byte(tt.src)}}
			_, err := LoadFS(fsys)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadFS_AggregatesErrors(t *testing.T) {
	fsys := fstest.MapFS{"races.lua": {Data: []byte(`
		Monster "a" { glyph = "a", hp = 5, flags = { "NOPE" } }
		Monster "b" { glyph = "b", speed = 0, hp = 5 }
	`)}}
	_, err := LoadFS(fsys)
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Len(t, ve.Errors, 2)
	assert.Contains(t, err.Error(), "validation failed with 2 error(s)")
}

func TestLoadFS_NoFiles(t *testing.T) {
	_, err := LoadFS(fstest.MapFS{"README.txt": {Data: []byte("hi")}})
	require.Error(t, err)
}

func TestParseDice(t *testing.T) {
	tests := []struct {
		in      string
		want    domain.RandomValue
		wantErr bool
	}{
		{"12d9", domain.RandomValue{Dice: 12, Sides: 9}, false},
		{"5+2d4", domain.RandomValue{Base: 5, Dice: 2, Sides: 4}, false},
		{"7", domain.RandomValue{Base: 7}, false},
		{" 1D6 ", domain.RandomValue{Dice: 1, Sides: 6}, false},
		{"", domain.RandomValue{}, true},
		{"xd4", domain.RandomValue{}, true},
		{"2dz", domain.RandomValue{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDice(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
