package types

import (
	"encoding/json"
	"testing"

	"github.com/angband/angband-sub026/internal/core/types/enums"
)

func TestHandle_Generation(t *testing.T) {
	tests := []struct {
		name string
		h    Handle
		want uint16
	}{
		{"Generation zero", Handle(0), 0},
		{"Generation simple", Handle(uint64(1) << shiftGen), 1},
		{"Generation max", Handle(uint64(maskGen) << shiftGen), maskGen},
		{"Generation masked correctly", Handle(uint64(0xFFFFFFFF) << shiftGen), maskGen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.h.Generation(); got != tt.want {
				t.Errorf("Generation() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHandle_Index(t *testing.T) {
	tests := []struct {
		name string
		h    Handle
		want uint32
	}{
		{"Index zero", Handle(0), 0},
		{"Index simple", Handle(42), 42},
		{"Index max", Handle(maskIndex), maskIndex},
		{"Index masked correctly", Handle(uint64(maskIndex) | (1 << shiftGen)), maskIndex},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.h.Index(); got != tt.want {
				t.Errorf("Index() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHandle_Pack(t *testing.T) {
	h := PackHandle(5, enums.KindMonster, 7, 10)

	if h.Depth() != 5 {
		t.Errorf("Depth() = %d, want 5", h.Depth())
	}
	if h.Kind() != enums.KindMonster {
		t.Errorf("Kind() = %v, want MONSTER", h.Kind())
	}
	if h.Generation() != 7 || h.Index() != 10 {
		t.Errorf("unexpected gen/index: %d/%d", h.Generation(), h.Index())
	}
	if !h.IsLocal(5) || h.IsLocal(4) {
		t.Error("IsLocal mismatch")
	}
}

func TestHandle_IsNil(t *testing.T) {
	if !Handle(0).IsNil() || !NilHandle.IsNil() {
		t.Error("zero handle must be nil")
	}
	if PackHandle(1, enums.KindObject, 1, 1).IsNil() {
		t.Error("packed handle must not be nil")
	}
}

func TestHandle_JSON(t *testing.T) {
	h := PackHandle(1, 2, 3, 4)

	data, err := json.Marshal(h)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `"72620556876251140"` {
		t.Errorf("Marshal = %s", data)
	}

	var back Handle
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back != h {
		t.Errorf("roundtrip = %v, want %v", back, h)
	}

	// Числом тоже можно
	if err := json.Unmarshal([]byte(`42`), &back); err != nil || back != Handle(42) {
		t.Errorf("numeric unmarshal = %v, %v", back, err)
	}
}
