package actions

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/angband/angband-sub026/internal/core/types"
	"github.com/angband/angband-sub026/internal/domain"
)

var (
	ErrNoSuchMonster = errors.New("there is no such monster")
	ErrNoTarget      = errors.New("you have no target")
)

// parseHandle разбирает строковую ссылку на монстра из MonsterView.ID.
func parseHandle(id string) (types.Handle, error) {
	v, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		return types.NilHandle, fmt.Errorf("bad target id %q: %w", id, err)
	}
	return types.Handle(v), nil
}

// monsterByID — живой монстр уровня по строковой ссылке.
func monsterByID(l *domain.Level, id string) (types.Handle, *domain.Monster, error) {
	h, err := parseHandle(id)
	if err != nil {
		return h, nil, err
	}
	m := l.Monster(h)
	if m == nil {
		return h, nil, ErrNoSuchMonster
	}
	return h, m, nil
}
