// Package bounded contains the integer parameter model used for the player
// and team counts. This is part of the Functional Core - no I/O.
//
// Change propagation is an explicit, ordered observer list: every callback is
// a direct synchronous call made in registration order.
package bounded

import (
	"strconv"
	"strings"
)

// ValueFunc observes a committed value change.
type ValueFunc func(value int)

// LimitsFunc observes a limits reconfiguration.
type LimitsFunc func(lower, upper int)

// Value is an integer constrained to the inclusive range [lower, upper].
type Value struct {
	value int
	lower int
	upper int

	onValue  []ValueFunc
	onLimits []LimitsFunc
}

// New creates a Value with the given limits. The start value is clamped into
// range; no observers exist yet so nothing is notified.
func New(start, lower, upper int) *Value {
	lower, upper = repairLimits(lower, upper)
	return &Value{
		value: clamp(start, lower, upper),
		lower: lower,
		upper: upper,
	}
}

// Get returns the current value.
func (v *Value) Get() int { return v.value }

// Limits returns the inclusive bounds.
func (v *Value) Limits() (lower, upper int) { return v.lower, v.upper }

// OnChange registers an observer for committed value changes.
func (v *Value) OnChange(fn ValueFunc) {
	v.onValue = append(v.onValue, fn)
}

// OnLimits registers an observer for limit reconfigurations.
func (v *Value) OnLimits(fn LimitsFunc) {
	v.onLimits = append(v.onLimits, fn)
}

// SetLimits reconfigures the bounds. A collapsed range (upper <= lower) is
// repaired to [lower, lower+1]. The current value is re-clamped and value
// observers hear about it only if it moved; limit observers are always told.
func (v *Value) SetLimits(lower, upper int) {
	v.applyLimits(repairLimits(lower, upper))
}

func (v *Value) applyLimits(lower, upper int) {
	v.lower, v.upper = lower, upper
	for _, fn := range v.onLimits {
		fn(v.lower, v.upper)
	}
	v.commit(clamp(v.value, v.lower, v.upper))
}

// SetUpperLimit keeps the lower bound and replaces the upper one.
func (v *Value) SetUpperLimit(upper int) {
	v.SetLimits(v.lower, upper)
}

// Accepts reports whether candidate is inside the current bounds.
func (v *Value) Accepts(candidate int) bool {
	return candidate >= v.lower && candidate <= v.upper
}

// Set commits candidate when it is in range. Out-of-range input is rejected,
// not clamped. Returns false on rejection.
func (v *Value) Set(candidate int) bool {
	if !v.Accepts(candidate) {
		return false
	}
	v.commit(candidate)
	return true
}

// LinkUpper ties this value's upper limit to source: whenever source changes,
// the upper limit becomes source+offset. With a negative offset the source
// acts as an exclusive bound, so the linked range may shrink to the single
// value lower; it is never widened past source+offset. The link is applied
// immediately.
func (v *Value) LinkUpper(source *Value, offset int) {
	source.OnChange(func(value int) {
		v.linkedUpper(value + offset)
	})
	v.linkedUpper(source.Get() + offset)
}

func (v *Value) linkedUpper(upper int) {
	if upper < v.lower {
		upper = v.lower
	}
	v.applyLimits(v.lower, upper)
}

func (v *Value) commit(value int) {
	if value == v.value {
		return
	}
	v.value = value
	for _, fn := range v.onValue {
		fn(value)
	}
}

// Parse converts user text to a candidate. Surrounding whitespace is ignored.
func Parse(text string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, false
	}
	return n, true
}

func repairLimits(lower, upper int) (int, int) {
	if upper-lower < 1 {
		upper = lower + 1
	}
	return lower, upper
}

func clamp(value, lower, upper int) int {
	if value < lower {
		return lower
	}
	if value > upper {
		return upper
	}
	return value
}
