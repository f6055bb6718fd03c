package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Affine wraps a homogeneous 4x4 matrix together with its inverse and the matrix that
// carries surface normals (inverse transpose of the linear part)
type Affine struct {
	Matrix  mgl64.Mat4
	Inverse mgl64.Mat4
	Normal  mgl64.Mat3
}

// NewAffine precomputes the inverse and normal matrices of m. A singular matrix yields
// the zero inverse, which maps every ray to a degenerate one that hits nothing.
func NewAffine(m mgl64.Mat4) Affine {
	inverse := m.Inv()
	return Affine{
		Matrix:  m,
		Inverse: inverse,
		Normal:  inverse.Mat3().Transpose(),
	}
}

// IdentityAffine returns the identity transform
func IdentityAffine() Affine {
	return NewAffine(mgl64.Ident4())
}

// TransformPoint applies the forward transform to a point
func (a Affine) TransformPoint(p Vec3) Vec3 {
	return fromMgl(mgl64.TransformCoordinate(toMgl(p), a.Matrix))
}

// InversePoint applies the inverse transform to a point
func (a Affine) InversePoint(p Vec3) Vec3 {
	return fromMgl(mgl64.TransformCoordinate(toMgl(p), a.Inverse))
}

// InverseDirection applies the linear part of the inverse transform to a direction
func (a Affine) InverseDirection(d Vec3) Vec3 {
	return fromMgl(mgl64.TransformNormal(toMgl(d), a.Inverse))
}

// TransformNormal maps a local normal to world space and renormalizes it
func (a Affine) TransformNormal(n Vec3) Vec3 {
	return fromMgl(a.Normal.Mul3x1(toMgl(n))).Normalize()
}

// TransformBox returns the world-space box bounding the transformed corners of box
func (a Affine) TransformBox(box AABB) AABB {
	if !box.IsValid() {
		return box
	}
	corners := box.Corners()
	for i := range corners {
		corners[i] = a.TransformPoint(corners[i])
	}
	return NewAABBFromPoints(corners[:]...)
}

// EulerRotation returns the rotation Rz * Ry * Rx for the given angles in radians
func EulerRotation(angles Vec3) mgl64.Mat4 {
	rx := mgl64.HomogRotate3DX(angles.X)
	ry := mgl64.HomogRotate3DY(angles.Y)
	rz := mgl64.HomogRotate3DZ(angles.Z)
	return rz.Mul4(ry).Mul4(rx)
}

// TRS builds translate * rotate * scale
func TRS(translation Vec3, rotation mgl64.Quat, scale Vec3) mgl64.Mat4 {
	t := mgl64.Translate3D(translation.X, translation.Y, translation.Z)
	s := mgl64.Scale3D(scale.X, scale.Y, scale.Z)
	return t.Mul4(rotation.Normalize().Mat4()).Mul4(s)
}

// DegToRad converts degrees to radians
func DegToRad(degrees float64) float64 {
	return degrees * math.Pi / 180
}

func toMgl(v Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func fromMgl(v mgl64.Vec3) Vec3 {
	return Vec3{X: v[0], Y: v[1], Z: v[2]}
}

// ToMgl converts a vector to its mathgl representation
func ToMgl(v Vec3) mgl64.Vec3 {
	return toMgl(v)
}

// FromMgl converts a mathgl vector to a Vec3
func FromMgl(v mgl64.Vec3) Vec3 {
	return fromMgl(v)
}
