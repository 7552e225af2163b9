package types

import (
	"encoding/json"
	"testing"

	"github.com/angband/angband-sub026/internal/core/types/enums"
)

// Sinks не дают компилятору выкинуть вычисления.
var (
	sinkHandle Handle
	sinkU8     uint8
	sinkU16    uint16
	sinkU32    uint32
	sinkBool   bool
	sinkBytes  []byte
)

//go:noinline
func packHandleNoInline(depth uint8, kind enums.Kind, gen uint16, index uint32) Handle {
	return PackHandle(depth, kind, gen, index)
}

func BenchmarkPackHandle(b *testing.B) {
	var h Handle
	for i := 0; i < b.N; i++ {
		h = packHandleNoInline(5, enums.KindMonster, uint16(i), uint32(i))
	}
	sinkHandle = h
}

func BenchmarkHandleGetters(b *testing.B) {
	h := packHandleNoInline(5, enums.KindMonster, 3, 4)

	b.Run("Depth", func(b *testing.B) {
		var v uint8
		for i := 0; i < b.N; i++ {
			v = h.Depth()
		}
		sinkU8 = v
	})

	b.Run("Gen", func(b *testing.B) {
		var v uint16
		for i := 0; i < b.N; i++ {
			v = h.Generation()
		}
		sinkU16 = v
	})

	b.Run("Index", func(b *testing.B) {
		var v uint32
		for i := 0; i < b.N; i++ {
			v = h.Index()
		}
		sinkU32 = v
	})

	b.Run("IsLocal", func(b *testing.B) {
		var v bool
		for i := 0; i < b.N; i++ {
			v = h.IsLocal(uint8(i))
		}
		sinkBool = v
	})
}

// Снимок уровня пишет тысячи ссылок, поэтому JSON тоже меряем.
func BenchmarkHandleJSON(b *testing.B) {
	h := packHandleNoInline(12, enums.KindObject, 7, 1234)

	b.Run("Marshal", func(b *testing.B) {
		var out []byte
		for i := 0; i < b.N; i++ {
			out, _ = json.Marshal(h)
		}
		sinkBytes = out
	})

	b.Run("Unmarshal", func(b *testing.B) {
		data, _ := json.Marshal(h)
		var v Handle
		for i := 0; i < b.N; i++ {
			_ = json.Unmarshal(data, &v)
		}
		sinkHandle = v
	})
}
