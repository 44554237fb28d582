package api

import (
	"errors"
	"math"
)

// Validator is implemented by payloads that can check themselves.
type Validator interface {
	Validate() error
}

func (p LevelPayload) Validate() error {
	if p.LevelID < 1 {
		return errors.New("levelId must be positive")
	}
	return nil
}

func (p ItemPayload) Validate() error {
	if p.ItemID == "" {
		return errors.New("itemId is required")
	}
	return nil
}

func (p DamagePayload) Validate() error {
	if p.Amount < 0 {
		return errors.New("amount cannot be negative")
	}
	return nil
}

func (p KeyPayload) Validate() error {
	if p.Code == "" {
		return errors.New("code is required")
	}
	return nil
}

func (p LookPayload) Validate() error {
	for _, v := range []float64{p.X, p.Y, p.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.New("look vector must be finite")
		}
	}
	if p.X == 0 && p.Y == 0 && p.Z == 0 {
		return errors.New("look vector cannot be zero")
	}
	return nil
}
