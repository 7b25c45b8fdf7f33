// Package latency simulates the network behaviour of the mock data services:
// a fixed per-call delay, scaled by configuration, and optional random failures.
package latency

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"
)

var ErrInjected = errors.New("injected load failure")

type Simulator struct {
	scale    float64
	failRate float64
	roll     func() float64
}

func New(scale, failureRate float64) *Simulator {
	if scale < 0 {
		scale = 0
	}
	if failureRate < 0 {
		failureRate = 0
	}
	if failureRate > 1 {
		failureRate = 1
	}
	return &Simulator{scale: scale, failRate: failureRate, roll: rand.Float64}
}

// None returns a simulator that neither sleeps nor fails.
func None() *Simulator {
	return New(0, 0)
}

// Wait sleeps for base scaled by the configured factor, then rolls for an injected failure.
// A nil Simulator is a no-op.
func (s *Simulator) Wait(ctx context.Context, base time.Duration) error {
	if s == nil {
		return nil
	}

	if d := time.Duration(float64(base) * s.scale); d > 0 {
		timer := time.NewTimer(d)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	if s.failRate > 0 && s.roll() < s.failRate {
		return ErrInjected
	}
	return nil
}
