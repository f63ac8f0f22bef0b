// Package impulse mixes transient spatial signals. Events carry a raw
// position/rotation oscillation, an amplitude envelope over time, and a
// distance falloff; a registry sums the signals visible to a listener,
// filtered by channel. Single update goroutine only, no internal locking.
package impulse

import (
	"math"

	"github.com/lixenwraith/impulse/envelope"
	"github.com/lixenwraith/impulse/vmath"
)

// DissipationMode selects the spatial falloff shape beyond an event's radius
type DissipationMode int

const (
	// LinearDecay falls off linearly across the dissipation band
	LinearDecay DissipationMode = iota
	// SoftDecay is a raised-cosine ease across the band
	SoftDecay
	// ExponentialDecay reuses the damped-decay curve as spatial falloff
	ExponentialDecay
)

func (m DissipationMode) String() string {
	switch m {
	case LinearDecay:
		return "linear"
	case SoftDecay:
		return "soft"
	case ExponentialDecay:
		return "exponential"
	}
	return "unknown"
}

// DefaultDissipationDistance is restored by Event.Clear
const DefaultDissipationDistance = 100.0

// SignalSource yields the raw unscaled signal at elapsed seconds since an
// event started. ok is false when the source has nothing at that time.
type SignalSource interface {
	Sample(elapsed float64) (pos vmath.Vec3F, rot vmath.Quat, ok bool)
}

// Event is one active impulse: a raw signal shaped by an envelope in time
// and a dissipation curve in space
// The registry owns active events; callers mutate fields only from the
// update goroutine
type Event struct {
	// StartTime is stamped by Registry.Add, never by the caller
	StartTime float64

	Envelope envelope.Definition
	Source   SignalSource // nil produces no signal

	Position            vmath.Vec3F // world-space origin
	Radius              float64     // full strength inside this distance
	DissipationDistance float64     // falloff band width beyond Radius
	DissipationMode     DissipationMode

	// ChannelMask routes the event; visible to a query iff the masks
	// intersect
	ChannelMask uint64
}

// Expired reports whether the event's envelope has fully elapsed at now
// Hold-forever events never expire on their own
func (e *Event) Expired(now float64) bool {
	d := e.Envelope.Duration()
	return d >= 0 && e.StartTime+d <= now
}

// Cancel truncates the event's remaining lifetime starting at now
// forceNoDecay suppresses the decay tail for a hard stop
func (e *Event) Cancel(now float64, forceNoDecay bool) {
	e.Envelope.HoldForever = false
	e.Envelope.ChangeStopTime(now-e.StartTime, forceNoDecay)
}

// DistanceDecay returns the spatial attenuation factor in [0,1] at the
// given distance from the event origin
func (e *Event) DistanceDecay(distance float64) float64 {
	radius := math.Max(e.Radius, 0)
	if distance < radius {
		return 1
	}
	distance -= radius
	if distance >= e.DissipationDistance {
		return 0
	}
	switch e.DissipationMode {
	case LinearDecay:
		return 1 - distance/e.DissipationDistance
	case SoftDecay:
		return 0.5 * (1 + math.Cos(math.Pi*distance/e.DissipationDistance))
	default:
		return envelope.Damp(1, e.DissipationDistance, distance)
	}
}

// GetDecayedSignal returns the signal perceived at listener position and
// time now: the raw sample scaled by envelope gain and distance decay.
// Position scales linearly; rotation scales by slerp from identity.
// ok is false when there is no source or the source has no signal.
func (e *Event) GetDecayedSignal(now float64, listener vmath.Vec3F) (vmath.Vec3F, vmath.Quat, bool) {
	if e.Source == nil {
		return vmath.Vec3F{}, vmath.QIdentity(), false
	}
	elapsed := now - e.StartTime
	pos, rot, ok := e.Source.Sample(elapsed)
	if !ok {
		return vmath.Vec3F{}, vmath.QIdentity(), false
	}
	scale := e.Envelope.GetValueAt(elapsed) * e.DistanceDecay(vmath.V3FDist(listener, e.Position))
	return vmath.V3FScale(pos, scale), vmath.QSlerpIdentity(rot, scale), true
}

// Clear resets the event to its post-recycle defaults
func (e *Event) Clear() {
	e.StartTime = 0
	e.Envelope.Clear()
	e.Source = nil
	e.Position = vmath.Vec3F{}
	e.Radius = 0
	e.DissipationDistance = DefaultDissipationDistance
	e.DissipationMode = ExponentialDecay
	e.ChannelMask = 0
}
