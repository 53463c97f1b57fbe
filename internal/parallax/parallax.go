// Package parallax computes the scroll-driven image offset used by the hero
// and project images. The browser runs the same arithmetic each animation
// frame using the settings rendered into the page.
package parallax

import (
	"context"
	"math"
	"sync"
	"time"
)

type Settings struct {
	Factor    float64 `json:"factor"`
	Max       float64 `json:"max"`
	Smoothing float64 `json:"smoothing"`
}

var DefaultSettings = Settings{Factor: 0.25, Max: 120, Smoothing: 0.09}

// snapDistance is how close the offset must be to its target before it snaps.
const snapDistance = 0.01

// Target maps a scroll position to the desired offset, clamped to [0, max].
func Target(scrollY, factor, max float64) float64 {
	if max <= 0 || scrollY <= 0 || factor <= 0 {
		return 0
	}
	return math.Min(scrollY*factor, max)
}

// Step moves current toward target by the smoothing fraction.
func Step(current, target, smoothing float64) float64 {
	if smoothing <= 0 || smoothing > 1 {
		smoothing = 1
	}
	next := current + (target-current)*smoothing
	if math.Abs(target-next) < snapDistance {
		return target
	}
	return next
}

// Animator holds the displayed offset between frames.
type Animator struct {
	settings Settings

	mu     sync.Mutex
	offset float64
}

func NewAnimator(s Settings) *Animator {
	return &Animator{settings: s}
}

// Frame advances one frame for the given scroll position and returns the new
// offset. The result always lies within [0, Max].
func (a *Animator) Frame(scrollY float64) float64 {
	target := Target(scrollY, a.settings.Factor, a.settings.Max)

	a.mu.Lock()
	defer a.mu.Unlock()
	a.offset = clamp(Step(a.offset, target, a.settings.Smoothing), 0, math.Max(a.settings.Max, 0))
	return a.offset
}

func (a *Animator) Offset() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.offset
}

// Run renders one frame per tick until ctx is cancelled or ticks is closed.
func (a *Animator) Run(ctx context.Context, ticks <-chan time.Time, scrollY func() float64, render func(offset float64)) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-ticks:
			if !ok {
				return nil
			}
			render(a.Frame(scrollY()))
		}
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
