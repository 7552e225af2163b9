package handlers

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/angband/angband-sub026/pkg/api"
)

func echoDir(_ Context, p api.DirectionPayload) (Result, error) {
	return Result{Repeat: p.Dx*10 + p.Dy, TookTurn: true}, nil
}

func TestWithPayload(t *testing.T) {
	h := WithPayload(echoDir)

	res, err := h(Context{}, json.RawMessage(`{"dx":1,"dy":-1}`))
	if err != nil || res.Repeat != 9 {
		t.Fatalf("res = %+v, err = %v", res, err)
	}

	for _, raw := range []string{``, `{"dx":`, `{"dx":0,"dy":0}`} {
		if _, err := h(Context{}, json.RawMessage(raw)); !errors.Is(err, ErrBadPayload) {
			t.Errorf("%q: err = %v", raw, err)
		}
	}
}

func TestWithOptionalPayload(t *testing.T) {
	called := false
	h := WithOptionalPayload(func(_ Context, p api.DirectionPayload) (Result, error) {
		called = true
		if p != (api.DirectionPayload{}) {
			t.Errorf("payload = %+v", p)
		}
		return TurnResult(), nil
	})

	for _, raw := range []string{``, `null`} {
		called = false
		if _, err := h(Context{}, json.RawMessage(raw)); err != nil || !called {
			t.Errorf("%q: err = %v, called = %v", raw, err, called)
		}
	}
	if _, err := h(Context{}, json.RawMessage(`[]`)); !errors.Is(err, ErrBadPayload) {
		t.Errorf("массив вместо объекта: %v", err)
	}
}
