package impulse

import (
	"github.com/lixenwraith/impulse/curve"
	"github.com/lixenwraith/impulse/vmath"
)

// DefaultChannel is the channel presets broadcast on
const DefaultChannel uint64 = 1

// Presets configure a leased event in place with envelope, source, and
// spatial parameters tuned for common impulse feels. Callers may tweak
// fields afterward, then activate with Registry.Add.

// PresetExplosion is a hard hit with no attack and a damped shake tail
func PresetExplosion(e *Event, at vmath.Vec3F, strength float64) {
	e.Position = at
	e.ChannelMask = DefaultChannel
	e.Radius = 2
	e.DissipationDistance = 40
	e.DissipationMode = ExponentialDecay
	e.Envelope.Clear()
	e.Envelope.DecayTime = 0.7
	e.Source = &ShakeSource{
		Amplitude:         vmath.V3FScale(vmath.Vec3F{X: 0.5, Y: 1, Z: 0.3}, strength),
		Frequency:         9,
		Phase:             vmath.Vec3F{Y: 1.7, Z: 3.1},
		RotationAmplitude: vmath.V3FScale(vmath.Vec3F{X: 0.02, Z: 0.015}, strength),
	}
}

// PresetBump is a single short push in a direction, no oscillation
// The decay follows a raised-cosine curve for a softer settle than the
// default damped tail
func PresetBump(e *Event, at, dir vmath.Vec3F) {
	e.Position = at
	e.ChannelMask = DefaultChannel
	e.Radius = 1
	e.DissipationDistance = 10
	e.DissipationMode = SoftDecay
	e.Envelope.Clear()
	e.Envelope.AttackTime = 0.05
	e.Envelope.DecayTime = 0.2
	e.Envelope.DecayShape = curve.EaseOut()
	e.Source = &ConstantSource{Position: dir}
}

// PresetRumble is a sustained low-frequency noise bed; hold-forever, so it
// runs until cancelled
func PresetRumble(e *Event, at vmath.Vec3F, strength float64) {
	e.Position = at
	e.ChannelMask = DefaultChannel
	e.Radius = 5
	e.DissipationDistance = 60
	e.DissipationMode = LinearDecay
	e.Envelope.Clear()
	e.Envelope.AttackTime = 0.5
	e.Envelope.DecayTime = 1.0
	e.Envelope.HoldForever = true
	e.Source = &NoiseSource{
		Amplitude:         vmath.V3FScale(vmath.Vec3F{X: 0.3, Y: 0.4, Z: 0.3}, strength),
		Frequency:         4,
		Seed:              0x6c69,
		RotationAmplitude: vmath.V3FScale(vmath.Vec3F{X: 0.01, Y: 0.01}, strength),
	}
}

// PresetRecoil kicks opposite dir with a fast attack and medium decay
// Positionless: infinite radius semantics via a listener-local event
func PresetRecoil(e *Event, dir vmath.Vec3F) {
	e.Position = vmath.Vec3F{}
	e.ChannelMask = DefaultChannel
	e.Radius = 0
	e.DissipationDistance = DefaultDissipationDistance
	e.DissipationMode = ExponentialDecay
	e.Envelope.Clear()
	e.Envelope.AttackTime = 0.02
	e.Envelope.DecayTime = 0.3
	e.Source = &ConstantSource{Position: vmath.V3FScale(dir, -1)}
}
