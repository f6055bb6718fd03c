package animation

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Keyframe is one pose of a transform track
type Keyframe struct {
	Translation core.Vec3
	Rotation    mgl64.Quat
	Scale       core.Vec3
}

// NewKeyframe creates a keyframe from Euler angles in radians, applied as Z·Y·X
func NewKeyframe(translation, eulerAngles, scale core.Vec3) Keyframe {
	return Keyframe{
		Translation: translation,
		Rotation:    mgl64.Mat4ToQuat(core.EulerRotation(eulerAngles)).Normalize(),
		Scale:       scale,
	}
}

// Matrix returns translate * rotate * scale for the keyframe
func (k Keyframe) Matrix() mgl64.Mat4 {
	return core.TRS(k.Translation, k.Rotation, k.Scale)
}

// Track is a cyclic keyframe animation. Frames are evenly spaced over Duration and the
// last frame blends back into the first.
type Track struct {
	Name     string
	Frames   []Keyframe
	Duration float64 // Seconds per cycle
	Mode     Interpolation

	current mgl64.Mat4
}

// NewTrack creates a track positioned at time zero
func NewTrack(name string, duration float64, mode Interpolation, frames ...Keyframe) (*Track, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("track %q has no keyframes", name)
	}
	if duration <= 0 {
		return nil, fmt.Errorf("track %q: duration must be positive, got %f", name, duration)
	}
	t := &Track{Name: name, Frames: frames, Duration: duration, Mode: mode}
	t.SetTime(0)
	return t, nil
}

// SetTime evaluates the track at time seconds, wrapping by the duration
func (t *Track) SetTime(seconds float64) {
	u := math.Mod(seconds/t.Duration, 1)
	if u < 0 {
		u += 1
	}
	t.current = t.Sample(u).Matrix()
}

// Matrix returns the matrix computed by the last SetTime call
func (t *Track) Matrix() mgl64.Mat4 {
	return t.current
}

// Sample blends the keyframes at normalized time u in [0, 1)
func (t *Track) Sample(u float64) Keyframe {
	if len(t.Frames) == 1 {
		return t.Frames[0]
	}
	indices, weights := t.Mode.weights(len(t.Frames), u)

	var translation, scale core.Vec3
	var rotation mgl64.Quat
	reference := t.Frames[indices[1]].Rotation
	for i, index := range indices {
		w := weights[i]
		if w == 0 {
			continue
		}
		frame := t.Frames[index]
		translation = translation.Add(frame.Translation.Multiply(w))
		scale = scale.Add(frame.Scale.Multiply(w))

		// Keep every quaternion in the reference's hemisphere before blending
		q := frame.Rotation
		if q.Dot(reference) < 0 {
			q = q.Scale(-1)
		}
		rotation = rotation.Add(q.Scale(w))
	}

	if t.Mode == Linear {
		// Exact spherical interpolation between the two bracketing frames
		rotation = mgl64.QuatSlerp(t.Frames[indices[1]].Rotation, alignQuat(t.Frames[indices[2]].Rotation, reference), weights[2])
	}
	if rotation.Len() == 0 {
		rotation = reference
	}
	return Keyframe{Translation: translation, Rotation: rotation.Normalize(), Scale: scale}
}

func alignQuat(q, reference mgl64.Quat) mgl64.Quat {
	if q.Dot(reference) < 0 {
		return q.Scale(-1)
	}
	return q
}
