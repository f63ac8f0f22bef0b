package impulse

import (
	"github.com/lixenwraith/impulse/clock"
	"github.com/lixenwraith/impulse/vmath"
)

// Handle identifies an event slot with a generation check, so a caller
// holding a handle to a recycled slot gets ok=false instead of silently
// touching a different logical event
// The zero Handle is invalid
type Handle struct {
	index uint32
	gen   uint32
}

// slot is one arena cell; gen bumps on every recycle or invalidation
type slot struct {
	event  Event
	gen    uint32
	active bool
	leased bool // handed out by NewEvent, not yet added
}

// Registry coordinates all impulse events for one world/simulation.
// Create one per host context and share it by reference; all methods must
// run on a single update goroutine.
// Slots are allocated individually so a *Event obtained through Get stays
// valid while its handle does, even as the arena grows.
type Registry struct {
	clk    clock.Clock
	slots  []*slot
	active []uint32 // active slot indices, activation order
	free   []uint32 // cleared slots awaiting reuse
}

// NewRegistry creates an empty registry driven by the given clock
func NewRegistry(clk clock.Clock) *Registry {
	return &Registry{clk: clk}
}

// NewEvent leases an event slot, reusing a retired one when available
// The event is in neither the active nor the free set until Add
func (r *Registry) NewEvent() Handle {
	if n := len(r.free); n > 0 {
		idx := r.free[n-1]
		r.free = r.free[:n-1]
		r.slots[idx].leased = true
		return Handle{index: idx, gen: r.slots[idx].gen}
	}
	idx := uint32(len(r.slots))
	s := &slot{gen: 1, leased: true}
	s.event.Clear()
	r.slots = append(r.slots, s)
	return Handle{index: idx, gen: 1}
}

// Get resolves a handle to its event for configuration
// Returns nil, false for stale or invalid handles
func (r *Registry) Get(h Handle) (*Event, bool) {
	s := r.resolve(h)
	if s == nil {
		return nil, false
	}
	return &s.event, true
}

// Add activates a leased event: stamps its start time from the clock and
// appends it to the active set. This is the only writer of StartTime, so
// envelopes always measure elapsed time from activation.
// Stale handles and double adds are no-ops returning false.
func (r *Registry) Add(h Handle) bool {
	s := r.resolve(h)
	if s == nil || !s.leased {
		return false
	}
	s.event.Envelope.Validate()
	s.event.StartTime = r.clk.Now()
	s.leased = false
	s.active = true
	r.active = append(r.active, h.index)
	return true
}

// Cancel cuts an active event short as of the clock's current time
func (r *Registry) Cancel(h Handle, forceNoDecay bool) bool {
	s := r.resolve(h)
	if s == nil || !s.active {
		return false
	}
	s.event.Cancel(r.clk.Now(), forceNoDecay)
	return true
}

// GetImpulseAt returns the combined signal visible at listener position for
// events whose channel mask intersects channelMask: positions sum, rotations
// compose in iteration order (newest first; shake rotations are small enough
// that ordering is below perceptual tolerance). Expired events encountered
// during the pass are cleared and recycled to the free list.
// The clock is read once for the whole pass.
func (r *Registry) GetImpulseAt(listener vmath.Vec3F, channelMask uint64) (vmath.Vec3F, vmath.Quat, bool) {
	now := r.clk.Now()
	pos := vmath.Vec3F{}
	rot := vmath.QIdentity()
	nontrivial := false

	// Backward pass allows in-place removal without skipping entries
	for i := len(r.active) - 1; i >= 0; i-- {
		idx := r.active[i]
		s := r.slots[idx]
		if s.event.Expired(now) {
			s.event.Clear()
			s.active = false
			s.gen++
			r.active = append(r.active[:i], r.active[i+1:]...)
			r.free = append(r.free, idx)
			continue
		}
		if s.event.ChannelMask&channelMask == 0 {
			continue
		}
		p, q, ok := s.event.GetDecayedSignal(now, listener)
		if !ok {
			continue
		}
		pos = vmath.V3FAdd(pos, p)
		rot = vmath.QMul(rot, q)
		nontrivial = true
	}
	return pos, rot, nontrivial
}

// Clear wipes every active event and empties the active set
// Cleared slots are abandoned rather than recycled; their generations bump
// so outstanding handles fail closed
func (r *Registry) Clear() {
	for _, idx := range r.active {
		s := r.slots[idx]
		s.event.Clear()
		s.active = false
		s.gen++
	}
	r.active = r.active[:0]
}

// ActiveCount returns the number of active events
func (r *Registry) ActiveCount() int {
	return len(r.active)
}

// FreeCount returns the number of retired slots awaiting reuse
func (r *Registry) FreeCount() int {
	return len(r.free)
}

func (r *Registry) resolve(h Handle) *slot {
	if h.gen == 0 || int(h.index) >= len(r.slots) {
		return nil
	}
	s := r.slots[h.index]
	if s.gen != h.gen || (!s.active && !s.leased) {
		return nil
	}
	return s
}
