package project

import (
	"testing"

	"codeberg.org/anaseto/gruid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angband/angband-sub026/internal/domain"
	"github.com/angband/angband-sub026/internal/domain/fixture"
)

func TestKillWall(t *testing.T) {
	tests := []struct {
		name  string
		feat  domain.Feature
		at    gruid.Point
		want  domain.Feature
		gold  bool
		msg   string
		flows bool
	}{
		{name: "гранит", feat: domain.FeatWallSolid, at: center, want: domain.FeatFloor, msg: "The wall turns into mud!", flows: true},
		{name: "тайная дверь", feat: domain.FeatSecret, at: center, want: domain.FeatFloor, msg: "The wall turns into mud!", flows: true},
		{name: "жила", feat: domain.FeatMagma, at: center, want: domain.FeatFloor, msg: "The vein turns into mud!", flows: true},
		{name: "жила с сокровищем", feat: domain.FeatMagmaK, at: center, want: domain.FeatFloor, gold: true, msg: "You have found something!", flows: true},
		{name: "постоянная стена", feat: domain.FeatPermSolid, at: gruid.Point{X: 0, Y: 5}, want: domain.FeatPermSolid},
		{name: "пол", feat: domain.FeatFloor, at: center, want: domain.FeatFloor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, msgs := arena(t)
			c := l.Cave
			c.SetFeat(tt.at, tt.feat)
			c.SetInfo(tt.at, domain.InfoMark)
			l.Update = 0

			seen := projectF(l, domain.FromPlayer(), 0, tt.at, 0, domain.GFKillWall)

			assert.Equal(t, tt.want, c.Feat(tt.at))
			assert.Equal(t, tt.gold, len(l.Pile(tt.at)) == 1, "золото в жиле")
			assert.Equal(t, tt.flows, l.Update&domain.UpdFlow != 0)
			if tt.msg == "" {
				assert.False(t, seen)
				assert.Empty(t, msgs.Lines)
				assert.True(t, c.Has(tt.at, domain.InfoMark), "память о клетке цела")
				return
			}
			assert.True(t, seen)
			assert.Equal(t, 1, msgs.Count(tt.msg))
			assert.False(t, c.Has(tt.at, domain.InfoMark), "клетка забыта")
		})
	}
}

func TestKillWallUnseen(t *testing.T) {
	l, msgs := arena(t)
	l.Cave.SetFeat(center, domain.FeatWallSolid)

	assert.False(t, projectF(l, domain.FromPlayer(), 0, center, 0, domain.GFKillWall))
	assert.Equal(t, domain.FeatFloor, l.Cave.Feat(center))
	assert.Empty(t, msgs.Lines)
}

func TestMakeDoorOccupied(t *testing.T) {
	l, _ := arena(t, fixture.Race("kobold", 'k', 2))
	h, _ := monsterAt(t, l, center)

	projectF(l, domain.FromPlayer(), 0, center, 0, domain.GFMakeDoor)

	assert.Equal(t, domain.FeatFloor, l.Cave.Feat(center))
	got, ok := l.Cave.At(center).Monster()
	require.True(t, ok)
	assert.Equal(t, h, got)
}

func TestMakeDoorPushesObjects(t *testing.T) {
	l, _ := arena(t)
	obj := fixture.Obj(l, 2, center)
	require.False(t, obj.IsNil())

	projectF(l, domain.FromPlayer(), 0, center, 0, domain.GFMakeDoor)

	assert.Equal(t, domain.FeatDoorHead, l.Cave.Feat(center))
	assert.Empty(t, l.Pile(center))

	moved := 0
	for y := center.Y - 1; y <= center.Y+1; y++ {
		for x := center.X - 1; x <= center.X+1; x++ {
			moved += len(l.Pile(gruid.Point{X: x, Y: y}))
		}
	}
	assert.Equal(t, 1, moved, "зелье легло рядом")
}

func TestMakeDoorOnWall(t *testing.T) {
	l, _ := arena(t)
	l.Cave.SetFeat(center, domain.FeatRubble)

	projectF(l, domain.FromPlayer(), 0, center, 0, domain.GFMakeDoor)
	assert.Equal(t, domain.FeatRubble, l.Cave.Feat(center))
}

func TestLightAndDark(t *testing.T) {
	l, _ := arena(t)
	c := l.Cave
	wall := gruid.Point{X: 5, Y: 5}
	c.SetFeat(wall, domain.FeatWallSolid)
	for _, p := range []gruid.Point{center, wall} {
		c.ClearInfo(p, domain.InfoGlow)
		c.SetInfo(p, domain.InfoMark)
	}

	for _, p := range []gruid.Point{center, wall} {
		projectF(l, domain.FromPlayer(), 0, p, 0, domain.GFLight)
		assert.True(t, c.Has(p, domain.InfoGlow), "светло в %v", p)
	}

	for _, p := range []gruid.Point{center, wall} {
		projectF(l, domain.FromPlayer(), 0, p, 0, domain.GFDarkWeak)
		assert.False(t, c.Has(p, domain.InfoGlow), "темно в %v", p)
	}
	assert.False(t, c.Has(center, domain.InfoMark), "пол забыт")
	assert.True(t, c.Has(wall, domain.InfoMark), "стена помнится")
}
