package storage

import (
	"bytes"
	"encoding/binary"
	"os"
	"testing"

	"codeberg.org/anaseto/gruid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angband/angband-sub026/internal/domain"
	"github.com/angband/angband-sub026/internal/domain/fixture"
	"github.com/angband/angband-sub026/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func sampleLevel(t *testing.T) (*domain.Level, *domain.Registry) {
	t.Helper()
	reg := fixture.Registry(fixture.Race("kobold", 'k', 1))
	l := fixture.Room(12, 8, 5, reg)
	l.Turn = 420
	fixture.Player(l, gruid.Point{X: 2, Y: 2})
	require.False(t, l.PlaceMonster(1, gruid.Point{X: 8, Y: 5}, true).IsNil())
	require.False(t, fixture.Obj(l, 5, gruid.Point{X: 4, Y: 4}).IsNil())
	l.Lore[1].Sights = 3
	l.RNG.Int0(10)
	return l, reg
}

func TestWriteRead(t *testing.T) {
	l, reg := sampleLevel(t)
	calls := l.RNG.Calls
	replay := &domain.ReplaySession{Depth: 1, Seed: 5}
	replay.Record(3, domain.ActionMove, []byte(`{"dx":1,"dy":0}`))

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, NewSave(l, replay)))

	got, err := Read(&buf)
	require.NoError(t, err)
	Attach(got, reg)

	assert.Equal(t, int64(420), got.Header.Turn)
	assert.Equal(t, int32(1), got.Header.Depth)
	assert.Equal(t, int64(5), got.Header.Seed)
	assert.Equal(t, calls, got.RNGCalls)
	assert.Equal(t, calls, got.Level.RNG.Calls)

	gl := got.Level
	require.NotNil(t, gl.Player)
	assert.Equal(t, gruid.Point{X: 2, Y: 2}, gl.Player.Pos)
	assert.True(t, gl.Cave.At(gl.Player.Pos).IsPlayer())
	assert.Equal(t, 1, gl.Monsters.Len())
	assert.Equal(t, 1, gl.Objects.Len())
	assert.Equal(t, 3, gl.Lore[1].Sights)
	assert.Equal(t, domain.FeatPermSolid, gl.Cave.Feat(gruid.Point{}))

	h, m := gl.MonsterAt(gruid.Point{X: 8, Y: 5})
	require.NotNil(t, m)
	assert.Equal(t, "kobold", gl.RaceOf(m).Name)
	assert.Equal(t, m, gl.Monster(h))

	require.NotNil(t, got.Replay)
	require.Len(t, got.Replay.Actions, 1)
	assert.Equal(t, domain.ActionMove, got.Replay.Actions[0].Action)

	// После загрузки арена снова выдает слоты.
	assert.False(t, gl.PlaceMonster(1, gruid.Point{X: 9, Y: 5}, false).IsNil())
}

func TestReadErrors(t *testing.T) {
	l, _ := sampleLevel(t)
	var good bytes.Buffer
	require.NoError(t, Write(&good, NewSave(l, nil)))

	t.Run("magic", func(t *testing.T) {
		b := bytes.Clone(good.Bytes())
		copy(b, "CDRP")
		_, err := Read(bytes.NewReader(b))
		assert.ErrorIs(t, err, ErrInvalidMagic)
	})
	t.Run("version", func(t *testing.T) {
		b := bytes.Clone(good.Bytes())
		binary.LittleEndian.PutUint32(b[4:], 9)
		_, err := Read(bytes.NewReader(b))
		assert.ErrorIs(t, err, ErrUnsupportedVersion)
	})
	t.Run("truncated", func(t *testing.T) {
		b := good.Bytes()[:good.Len()-10]
		_, err := Read(bytes.NewReader(b))
		assert.Error(t, err)
	})
}

func TestServiceSaveLoad(t *testing.T) {
	l, reg := sampleLevel(t)
	svc, err := NewService(t.TempDir())
	require.NoError(t, err)

	path, err := svc.Save(NewSave(l, nil))
	require.NoError(t, err)
	assert.FileExists(t, path)

	got, err := svc.Load(path, reg)
	require.NoError(t, err)
	assert.Equal(t, l.Turn, got.Level.Turn)
	assert.NotZero(t, got.Header.Timestamp)

	_, err = svc.Load(path+".missing", reg)
	assert.Error(t, err)
}
