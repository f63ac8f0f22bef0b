package impulse

import (
	"math"

	"github.com/lixenwraith/impulse/vmath"
)

// ShakeSource generates a deterministic per-axis sinusoid: position offsets
// from Amplitude and rotation wobble from RotationAmplitude, both at
// Frequency with per-axis phase offsets to avoid visible axis lockstep
type ShakeSource struct {
	Amplitude vmath.Vec3F // peak position offset per axis
	Frequency float64     // Hz
	Phase     vmath.Vec3F // per-axis phase offset, radians

	// RotationAmplitude is the peak wobble angle per axis, radians
	// Small angles; composed X then Y then Z
	RotationAmplitude vmath.Vec3F

	// Duration bounds the raw signal; <= 0 means unbounded
	// The envelope usually ends the event first
	Duration float64
}

func (s *ShakeSource) Sample(elapsed float64) (vmath.Vec3F, vmath.Quat, bool) {
	if elapsed < 0 || (s.Duration > 0 && elapsed > s.Duration) {
		return vmath.Vec3F{}, vmath.QIdentity(), false
	}
	w := 2 * math.Pi * s.Frequency * elapsed
	pos := vmath.Vec3F{
		X: s.Amplitude.X * math.Sin(w+s.Phase.X),
		Y: s.Amplitude.Y * math.Sin(w+s.Phase.Y),
		Z: s.Amplitude.Z * math.Sin(w+s.Phase.Z),
	}
	rot := eulerWobble(vmath.Vec3F{
		X: s.RotationAmplitude.X * math.Sin(w+s.Phase.X),
		Y: s.RotationAmplitude.Y * math.Sin(w+s.Phase.Y),
		Z: s.RotationAmplitude.Z * math.Sin(w+s.Phase.Z),
	})
	return pos, rot, true
}

// NoiseSource generates band-limited value noise per axis: random keypoints
// at Frequency intervals, smoothly interpolated, fully determined by Seed
type NoiseSource struct {
	Amplitude vmath.Vec3F // peak position offset per axis
	Frequency float64     // keypoints per second
	Seed      uint64

	RotationAmplitude vmath.Vec3F // peak wobble angle per axis, radians
}

func (s *NoiseSource) Sample(elapsed float64) (vmath.Vec3F, vmath.Quat, bool) {
	if elapsed < 0 {
		return vmath.Vec3F{}, vmath.QIdentity(), false
	}
	freq := s.Frequency
	if freq <= 0 {
		freq = 1
	}
	t := elapsed * freq
	k := uint64(t)
	frac := t - float64(k)
	// Hermite smoothing keeps the first derivative continuous at keypoints
	frac = frac * frac * (3 - 2*frac)

	sample := func(axis uint64, amp float64) float64 {
		a := noise01(s.Seed, k, axis)*2 - 1
		b := noise01(s.Seed, k+1, axis)*2 - 1
		return amp * (a + (b-a)*frac)
	}
	pos := vmath.Vec3F{
		X: sample(0, s.Amplitude.X),
		Y: sample(1, s.Amplitude.Y),
		Z: sample(2, s.Amplitude.Z),
	}
	rot := eulerWobble(vmath.Vec3F{
		X: sample(3, s.RotationAmplitude.X),
		Y: sample(4, s.RotationAmplitude.Y),
		Z: sample(5, s.RotationAmplitude.Z),
	})
	return pos, rot, true
}

// ConstantSource yields a fixed raw signal for as long as it is sampled
// Useful for recoil-style pushes where the envelope does all the shaping
type ConstantSource struct {
	Position vmath.Vec3F
	Rotation vmath.Quat
}

func (s *ConstantSource) Sample(elapsed float64) (vmath.Vec3F, vmath.Quat, bool) {
	if elapsed < 0 {
		return vmath.Vec3F{}, vmath.QIdentity(), false
	}
	rot := s.Rotation
	if rot == (vmath.Quat{}) {
		rot = vmath.QIdentity()
	}
	return s.Position, rot, true
}

// eulerWobble composes small per-axis angles into one rotation
func eulerWobble(angles vmath.Vec3F) vmath.Quat {
	q := vmath.QFromAxisAngle(vmath.Vec3F{X: 1}, angles.X)
	q = vmath.QMul(q, vmath.QFromAxisAngle(vmath.Vec3F{Y: 1}, angles.Y))
	q = vmath.QMul(q, vmath.QFromAxisAngle(vmath.Vec3F{Z: 1}, angles.Z))
	return q
}

// noise01 hashes (seed, key, axis) to a float in [0,1)
// splitmix64 finalizer; stateless so equal inputs always agree
func noise01(seed, key, axis uint64) float64 {
	x := seed ^ (key * 0x9e3779b97f4a7c15) ^ (axis * 0xbf58476d1ce4e5b9)
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return float64(x>>11) / (1 << 53)
}
