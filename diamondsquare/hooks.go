package diamondsquare

import "math"

// HookFunc transforms a value as it is committed to (x, y). It must return
// a finite number; NaN or ±Inf results are discarded with a diagnostic and
// the previous value is kept.
type HookFunc func(x, y int, value float64) float64

// HookID identifies a registered hook. The zero value is never assigned.
type HookID int

type hook struct {
	id HookID
	fn HookFunc
}

// AddHook appends fn to this generator's hook list and returns its ID.
// A nil fn is ignored and yields 0.
func (g *Generator) AddHook(fn HookFunc) HookID {
	if fn == nil {
		return 0
	}
	g.hookID++
	g.hooks = append(g.hooks, hook{id: g.hookID, fn: fn})

	return g.hookID
}

// RemoveHook unregisters the hook with the given ID, preserving the order
// of the rest. Reports whether a hook was removed.
func (g *Generator) RemoveHook(id HookID) bool {
	for i, h := range g.hooks {
		if h.id == id {
			g.hooks = append(g.hooks[:i], g.hooks[i+1:]...)
			return true
		}
	}
	return false
}

// ClearHooks removes every registered hook.
func (g *Generator) ClearHooks() {
	g.hooks = nil
}

// HookCount returns the number of registered hooks.
func (g *Generator) HookCount() int {
	return len(g.hooks)
}

// runHooks threads value through every hook in registration order.
func (g *Generator) runHooks(x, y int, value float64) float64 {
	for _, h := range g.hooks {
		next := h.fn(x, y, value)
		if math.IsNaN(next) || math.IsInf(next, 0) {
			g.diagf("hook %d returned %v at (%d,%d), ignoring it", h.id, next, x, y)
			continue
		}
		value = next
	}

	return value
}
