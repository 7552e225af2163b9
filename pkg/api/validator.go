package api

import (
	"errors"
	"fmt"
)

// Пределы параметров команд.
const (
	MaxRadius    = 9
	MaxRestTurns = 9999
)

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

func (p DirectionPayload) Validate() error {
	if p.Dx == 0 && p.Dy == 0 {
		return errors.New("movement vector cannot be zero")
	}
	if p.Dx < -1 || p.Dx > 1 || p.Dy < -1 || p.Dy > 1 {
		return errors.New("movement step too large")
	}
	return nil
}

func (p EntityPayload) Validate() error {
	if p.TargetID == "" {
		return errors.New("targetId is required")
	}
	return nil
}

func (p AimPayload) Validate() error {
	if p.Element == "" {
		return errors.New("element is required")
	}
	if p.Dice == "" {
		return errors.New("dice is required")
	}
	if p.Radius < 0 || p.Radius > MaxRadius {
		return fmt.Errorf("radius %d out of range 0..%d", p.Radius, MaxRadius)
	}
	if p.Beam && p.Radius > 0 {
		return errors.New("beam cannot have a radius")
	}
	if p.TargetID != "" && p.Target != nil {
		return errors.New("targetId and target are mutually exclusive")
	}
	return nil
}

func (p RestPayload) Validate() error {
	if p.Turns < 0 || p.Turns > MaxRestTurns {
		return fmt.Errorf("turns %d out of range 0..%d", p.Turns, MaxRestTurns)
	}
	return nil
}

func (p ItemPayload) Validate() error {
	if p.Slot < 0 {
		return errors.New("slot cannot be negative")
	}
	if p.Count < 0 {
		return errors.New("count cannot be negative")
	}
	return nil
}
