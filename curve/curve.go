// Package curve provides normalized keyframe gain curves for envelope
// shaping. Curves map positions in [0,1] to values, linearly interpolated
// between sorted keyframes and clamped at both ends.
package curve

import (
	"math"
	"sort"
)

// Key is a single keyframe
type Key struct {
	Pos   float64
	Value float64
}

// Curve is an ordered set of keyframes
// A curve with fewer than 2 keys is not Valid and evaluators should fall
// back to their default shape
type Curve struct {
	keys []Key
}

// New builds a curve from keys, sorting them by position
func New(keys ...Key) *Curve {
	c := &Curve{keys: make([]Key, len(keys))}
	copy(c.keys, keys)
	sort.Slice(c.keys, func(i, j int) bool {
		return c.keys[i].Pos < c.keys[j].Pos
	})
	return c
}

// Valid reports whether the curve has enough keys to evaluate
func (c *Curve) Valid() bool {
	return c != nil && len(c.keys) >= 2
}

// Evaluate returns the interpolated value at pos
// Positions outside the key range clamp to the nearest end key
func (c *Curve) Evaluate(pos float64) float64 {
	if !c.Valid() {
		return 0
	}
	if pos <= c.keys[0].Pos {
		return c.keys[0].Value
	}
	last := len(c.keys) - 1
	if pos >= c.keys[last].Pos {
		return c.keys[last].Value
	}

	// First key strictly beyond pos; the guards above ensure 1 <= i <= last
	i := sort.Search(len(c.keys), func(i int) bool {
		return c.keys[i].Pos > pos
	})
	a, b := c.keys[i-1], c.keys[i]
	span := b.Pos - a.Pos
	if span <= 0 {
		return b.Value
	}
	t := (pos - a.Pos) / span
	return a.Value + (b.Value-a.Value)*t
}

// Linear01 returns the straight ramp from (0,0) to (1,1)
func Linear01() *Curve {
	return New(Key{0, 0}, Key{1, 1})
}

// EaseOut returns a raised-cosine fall from (0,1) to (1,0), sampled densely
// enough that linear segments stay within ~0.1% of the smooth curve
const easeOutKeys = 33

func EaseOut() *Curve {
	keys := make([]Key, easeOutKeys)
	for i := range keys {
		pos := float64(i) / float64(easeOutKeys-1)
		keys[i] = Key{Pos: pos, Value: 0.5 * (1 + math.Cos(math.Pi*pos))}
	}
	return New(keys...)
}
