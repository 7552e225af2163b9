package handlers

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/angband/angband-sub026/pkg/api"
)

// ErrBadPayload — payload команды не разобрался или не прошел проверку.
var ErrBadPayload = errors.New("bad command")

// TypedHandlerFunc — хендлер над уже разобранным payload.
type TypedHandlerFunc[T any] func(ctx Context, payload T) (Result, error)

// EmptyHandlerFunc — хендлер команды без данных (INIT, WAIT, PICKUP, SAVE).
type EmptyHandlerFunc func(ctx Context) (Result, error)

// decode разбирает payload в T и зовет Validate, если T его реализует.
func decode[T any](raw json.RawMessage) (T, error) {
	var payload T
	if err := json.Unmarshal(raw, &payload); err != nil {
		return payload, fmt.Errorf("%w: %v", ErrBadPayload, err)
	}
	if v, ok := any(payload).(api.Validator); ok {
		if err := v.Validate(); err != nil {
			return payload, fmt.Errorf("%w: %v", ErrBadPayload, err)
		}
	}
	return payload, nil
}

// WithPayload превращает типизированный хендлер в HandlerFunc.
// Пустой или битый payload — ошибка, ход не тратится.
func WithPayload[T any](handler TypedHandlerFunc[T]) HandlerFunc {
	return func(ctx Context, raw json.RawMessage) (Result, error) {
		payload, err := decode[T](raw)
		if err != nil {
			return Result{}, err
		}
		return handler(ctx, payload)
	}
}

// WithOptionalPayload — то же, но отсутствие payload дает нулевое T (REST без числа ходов).
func WithOptionalPayload[T any](handler TypedHandlerFunc[T]) HandlerFunc {
	return func(ctx Context, raw json.RawMessage) (Result, error) {
		if len(raw) == 0 || string(raw) == "null" {
			var zero T
			return handler(ctx, zero)
		}
		payload, err := decode[T](raw)
		if err != nil {
			return Result{}, err
		}
		return handler(ctx, payload)
	}
}

// WithEmptyPayload игнорирует присланные данные.
func WithEmptyPayload(handler EmptyHandlerFunc) HandlerFunc {
	return func(ctx Context, _ json.RawMessage) (Result, error) {
		return handler(ctx)
	}
}
