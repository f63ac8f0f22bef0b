// Package envelope shapes a scalar gain over elapsed time: an attack ramp to
// full strength, an optional hold, and a decay back to zero. Shapes default
// to a critically damped curve when no explicit curve is supplied.
package envelope

// epsilon below which a phase duration is treated as zero
const epsilon = 0.0001

// DurationInfinite is the Duration sentinel for hold-forever envelopes
const DurationInfinite = -1.0

// Shape is a normalized gain curve: domain [0,1] to range [0,1].
// A shape that is not Valid is ignored in favor of the default damped curve.
type Shape interface {
	Evaluate(pos float64) float64
	Valid() bool
}

// Definition describes an attack/hold/decay gain envelope
// The zero value is a null envelope: zero everywhere, zero duration
type Definition struct {
	AttackShape Shape // optional, rising 0 to 1
	DecayShape  Shape // optional, falling 1 to 0

	AttackTime float64 // seconds
	HoldTime   float64 // seconds
	DecayTime  float64 // seconds

	// HoldForever keeps the envelope at full gain after the attack until
	// the stop time is changed externally
	HoldForever bool
}

// Duration returns the total envelope length in seconds, or
// DurationInfinite when HoldForever is set
func (d *Definition) Duration() float64 {
	if d.HoldForever {
		return DurationInfinite
	}
	return d.AttackTime + d.HoldTime + d.DecayTime
}

// GetValueAt returns the gain in [0,1] at elapsed seconds since the
// envelope started. Negative elapsed and anything past the total duration
// return 0.
func (d *Definition) GetValueAt(elapsed float64) float64 {
	if elapsed < 0 {
		return 0
	}
	if elapsed < d.AttackTime && d.AttackTime > epsilon {
		if d.AttackShape != nil && d.AttackShape.Valid() {
			return d.AttackShape.Evaluate(elapsed / d.AttackTime)
		}
		return 1 - Damp(1, d.AttackTime, elapsed)
	}
	elapsed -= d.AttackTime
	if d.HoldForever || elapsed < d.HoldTime {
		return 1
	}
	elapsed -= d.HoldTime
	if elapsed < d.DecayTime && d.DecayTime > epsilon {
		if d.DecayShape != nil && d.DecayShape.Valid() {
			return d.DecayShape.Evaluate(elapsed / d.DecayTime)
		}
		return Damp(1, d.DecayTime, elapsed)
	}
	return 0
}

// ChangeStopTime cuts the envelope short so decay begins at offset seconds.
// A cut landing inside the attack phase zeroes the attack, which jumps the
// gain to full before decaying. TODO: prevent the pop on mid-attack cuts.
// forceNoDecay additionally removes the decay tail for a hard stop.
func (d *Definition) ChangeStopTime(offset float64, forceNoDecay bool) {
	if offset < 0 {
		offset = 0
	}
	if offset < d.AttackTime {
		d.AttackTime = 0
	}
	d.HoldTime = offset - d.AttackTime
	if forceNoDecay {
		d.DecayTime = 0
	}
}

// Clear resets to the null envelope for reuse
func (d *Definition) Clear() {
	d.AttackShape = nil
	d.DecayShape = nil
	d.AttackTime = 0
	d.HoldTime = 0
	d.DecayTime = 0
	d.HoldForever = false
}

// Validate clamps durations to be non-negative
// Call after applying external configuration
func (d *Definition) Validate() {
	if d.AttackTime < 0 {
		d.AttackTime = 0
	}
	if d.HoldTime < 0 {
		d.HoldTime = 0
	}
	if d.DecayTime < 0 {
		d.DecayTime = 0
	}
}
