package material

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// NoTexture is the texture index of an untextured material
const NoTexture = -1

// Material holds the Whitted shading coefficients of a surface. Materials live in the
// scene's material table and are shared read-only by every shape that references them.
type Material struct {
	Emissive          core.Vec3 // Light emitted by the surface
	Ambient           core.Vec3 // Response to the summed ambient light
	Diffuse           core.Vec3 // Lambertian response
	Specular          core.Vec3 // Phong highlight and mirror reflectivity
	SpecularFallOff   float64   // Phong exponent
	Transparent       core.Vec3 // Transmission color for refraction and shadow rays
	IndexOfRefraction float64

	// TextureIndex refers to the scene's texture table, NoTexture for none.
	// Texture is resolved from it during scene initialization.
	TextureIndex int
	Texture      *Texture
}

// NewMaterial returns an untextured, opaque material with the given diffuse color
func NewMaterial(diffuse core.Vec3) *Material {
	return &Material{
		Diffuse:           diffuse,
		SpecularFallOff:   1,
		IndexOfRefraction: 1,
		TextureIndex:      NoTexture,
	}
}

// HasTexture reports whether the material carries a resolved texture
func (m *Material) HasTexture() bool {
	return m.Texture != nil
}

// Textured returns a copy of the material with its emissive, ambient, diffuse and
// specular colors modulated by the texture sample at uv. Untextured materials are
// returned unchanged.
func (m *Material) Textured(uv core.Vec2) *Material {
	if m.Texture == nil {
		return m
	}
	color := m.Texture.Sample(uv)
	modulated := *m
	modulated.Emissive = m.Emissive.MultiplyVec(color)
	modulated.Ambient = m.Ambient.MultiplyVec(color)
	modulated.Diffuse = m.Diffuse.MultiplyVec(color)
	modulated.Specular = m.Specular.MultiplyVec(color)
	return &modulated
}
