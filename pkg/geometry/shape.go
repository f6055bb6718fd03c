package geometry

import (
	"math"
	"sort"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

var infinity = math.Inf(1)

// candidate is a root of a primitive's surface equation together with the surface
// attributes at that root
type candidate struct {
	t        float64
	normal   core.Vec3
	texCoord core.Vec2
}

// closestCandidate returns the smallest candidate inside rng accepted by valid
func closestCandidate(candidates []candidate, rng core.Interval, valid Validity) (candidate, bool) {
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].t < candidates[j].t })
	for _, c := range candidates {
		if rng.Contains(c.t) && valid.Accepts(c.t) {
			return c, true
		}
	}
	return candidate{}, false
}

// hitInfo fills the intersection record for a chosen candidate
func hitInfo(ray core.Ray, c candidate, m *material.Material) (float64, IntersectionInfo) {
	return c.t, IntersectionInfo{
		Position: ray.At(c.t),
		Normal:   c.normal.Normalize(),
		TexCoord: c.texCoord,
		Material: m,
	}
}

// resolveMaterial looks up a material index in the scene table
func resolveMaterial(shape string, index int, data *SceneData) (*material.Material, error) {
	if err := checkIndex(shape, "material index", index, len(data.Materials)); err != nil {
		return nil, err
	}
	return data.Materials[index], nil
}

// angleCoordinate maps atan2(y, x) to [0, 1)
func angleCoordinate(y, x float64) float64 {
	u := math.Atan2(y, x)/(2*math.Pi) + 0.5
	if u >= 1 {
		u = 0
	}
	return u
}
