package domain

import "testing"

func TestParseAction(t *testing.T) {
	tests := []struct {
		input    string
		expected ActionType
	}{
		{"MOVE", ActionMove},
		{"move", ActionMove},
		{"Move", ActionMove},
		{"AIM", ActionAim},
		{"WAIT", ActionWait},
		{"rest", ActionRest},
		{"SAVE", ActionSave},
		{"tunnel", ActionTunnel},
		{"TALK", ActionUnknown},
		{"", ActionUnknown},
	}

	for _, tt := range tests {
		result := ParseAction(tt.input)
		if result != tt.expected {
			t.Errorf("ParseAction(%q) = %v, want %v", tt.input, result, tt.expected)
		}
	}
}

func TestActionType_String(t *testing.T) {
	tests := []struct {
		action   ActionType
		expected string
	}{
		{ActionMove, "MOVE"},
		{ActionAim, "AIM"},
		{ActionUnknown, "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.action.String(); got != tt.expected {
			t.Errorf("ActionType(%d).String() = %q, want %q", tt.action, got, tt.expected)
		}
	}
}

func TestActionType_TakesTurn(t *testing.T) {
	if ActionInit.TakesTurn() || ActionSave.TakesTurn() {
		t.Error("INIT и SAVE не тратят ход")
	}
	if !ActionMove.TakesTurn() || !ActionRest.TakesTurn() {
		t.Error("MOVE и REST тратят ход")
	}
}
