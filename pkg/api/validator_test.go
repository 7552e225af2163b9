package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPayloadValidation(t *testing.T) {
	tests := []struct {
		name    string
		payload Validator
		wantErr bool
	}{
		{"шаг", DirectionPayload{Dx: 1, Dy: -1}, false},
		{"нулевой шаг", DirectionPayload{}, true},
		{"длинный шаг", DirectionPayload{Dx: 2}, true},
		{"болт", AimPayload{Element: "FIRE", Dice: "3d6"}, false},
		{"без стихии", AimPayload{Dice: "3d6"}, true},
		{"без костей", AimPayload{Element: "FIRE"}, true},
		{"большой радиус", AimPayload{Element: "FIRE", Dice: "3d6", Radius: 10}, true},
		{"луч с радиусом", AimPayload{Element: "ELEC", Dice: "3d6", Radius: 2, Beam: true}, true},
		{"две цели", AimPayload{Element: "FIRE", Dice: "1d4", TargetID: "7", Target: &Pos{X: 1, Y: 1}}, true},
		{"отдых", RestPayload{Turns: 50}, false},
		{"отдых без конца", RestPayload{Turns: -1}, true},
		{"предмет", ItemPayload{Slot: 2, Count: 1}, false},
		{"отрицательный слот", ItemPayload{Slot: -1}, true},
		{"цель", EntityPayload{TargetID: "12"}, false},
		{"без цели", EntityPayload{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.payload.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
