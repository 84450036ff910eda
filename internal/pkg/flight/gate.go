// Package flight enforces single-flight per action: at most one in-progress
// generation operation of a given kind, independent of any UI.
package flight

import (
	"errors"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

// ErrInFlight is returned when an operation of the same kind is already
// running.
var ErrInFlight = errors.New("another operation of this kind is already in progress")

type record struct {
	Stage     string
	StartedAt time.Time
}

// Gate tracks in-flight records per action name. Records carry a TTL so a
// flight whose goroutine died cannot wedge the action forever.
type Gate struct {
	mu sync.Mutex
	c  *cache.Cache
}

func NewGate() *Gate {
	return &Gate{
		c: cache.New(5*time.Minute, 1*time.Minute),
	}
}

// Begin claims the action and returns a release func. It fails with
// ErrInFlight while a previous claim is still held.
func (g *Gate) Begin(action string) (func(), error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, found := g.c.Get(action); found {
		return nil, ErrInFlight
	}
	g.c.Set(action, &record{StartedAt: time.Now()}, cache.DefaultExpiration)

	return func() {
		g.mu.Lock()
		defer g.mu.Unlock()
		g.c.Delete(action)
	}, nil
}

// SetStage records progress ("extracting", "analyzing") for UI feedback.
func (g *Gate) SetStage(action, stage string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if x, found := g.c.Get(action); found {
		rec := x.(*record)
		rec.Stage = stage
		g.c.Set(action, rec, cache.DefaultExpiration)
	}
}

// Stage reports the current stage of an in-flight action, if any.
func (g *Gate) Stage(action string) (string, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if x, found := g.c.Get(action); found {
		return x.(*record).Stage, true
	}
	return "", false
}
