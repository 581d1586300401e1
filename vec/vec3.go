package vec

import "math"

// Vec3 is a triple of float32s representing a location or direction in 3D
// space. Used by mesh vertices; mirrors the Vec2 API with a z component.
type Vec3 struct {
	X, Y, Z float32
}

// V3 creates a Vec3 from its components.
func V3(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// SqMagnitude returns the squared magnitude of the vector.
// Cheaper than Magnitude, useful for comparisons.
func (v Vec3) SqMagnitude() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Magnitude returns the magnitude of the vector.
func (v Vec3) Magnitude() float32 {
	return float32(math.Sqrt(float64(v.SqMagnitude())))
}

// SqDist returns the squared distance from v to rhs.
func (v Vec3) SqDist(rhs Vec3) float32 {
	return v.Sub(rhs).SqMagnitude()
}

// Dist returns the distance from v to rhs.
func (v Vec3) Dist(rhs Vec3) float32 {
	return v.Sub(rhs).Magnitude()
}

// Normalized returns the vector scaled to magnitude 1.
// A zero vector produces NaN components; callers must avoid that.
func (v Vec3) Normalized() Vec3 {
	return v.Div(v.Magnitude())
}

// Rounded converts to a Vec3Int by truncating each component toward zero.
func (v Vec3) Rounded() Vec3Int {
	return Vec3Int{X: int32(v.X), Y: int32(v.Y), Z: int32(v.Z)}
}

// Neg returns the vector with all components negated.
func (v Vec3) Neg() Vec3 {
	return v.Mul(-1)
}

// Add returns the component-wise sum of v and rhs.
func (v Vec3) Add(rhs Vec3) Vec3 {
	return Vec3{X: v.X + rhs.X, Y: v.Y + rhs.Y, Z: v.Z + rhs.Z}
}

// Sub returns v minus rhs, defined as -(-v + rhs) so the identity
// a-b == -(-a+b) holds exactly.
func (v Vec3) Sub(rhs Vec3) Vec3 {
	return v.Neg().Add(rhs).Neg()
}

// Mul returns the vector scaled by rhs.
func (v Vec3) Mul(rhs float32) Vec3 {
	return Vec3{X: v.X * rhs, Y: v.Y * rhs, Z: v.Z * rhs}
}

// Div returns the vector divided by rhs.
func (v Vec3) Div(rhs float32) Vec3 {
	return Vec3{X: v.X / rhs, Y: v.Y / rhs, Z: v.Z / rhs}
}

// EqualXYZ reports whether the vector equals the raw component triple.
func (v Vec3) EqualXYZ(x, y, z float32) bool {
	return v.X == x && v.Y == y && v.Z == z
}

// Vec3Int is a triple of int32s representing a location or direction in
// 3D space.
type Vec3Int struct {
	X, Y, Z int32
}

// V3i creates a Vec3Int from its components.
func V3i(x, y, z int32) Vec3Int {
	return Vec3Int{X: x, Y: y, Z: z}
}

// SqMagnitude returns the squared magnitude of the vector.
// Cheaper than Magnitude, useful for comparisons.
func (v Vec3Int) SqMagnitude() int32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Magnitude returns the magnitude of the vector.
func (v Vec3Int) Magnitude() float32 {
	return float32(math.Sqrt(float64(v.SqMagnitude())))
}

// SqDist returns the squared distance from v to rhs.
func (v Vec3Int) SqDist(rhs Vec3Int) int32 {
	return v.Sub(rhs).SqMagnitude()
}

// Dist returns the distance from v to rhs.
func (v Vec3Int) Dist(rhs Vec3Int) float32 {
	return v.Sub(rhs).Magnitude()
}

// ToVec3 casts the vector to a Vec3.
func (v Vec3Int) ToVec3() Vec3 {
	return Vec3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}

// Neg returns the vector with all components negated.
func (v Vec3Int) Neg() Vec3Int {
	return v.Mul(-1)
}

// Add returns the component-wise sum of v and rhs.
func (v Vec3Int) Add(rhs Vec3Int) Vec3Int {
	return Vec3Int{X: v.X + rhs.X, Y: v.Y + rhs.Y, Z: v.Z + rhs.Z}
}

// Sub returns v minus rhs, defined as -(-v + rhs) so the identity
// a-b == -(-a+b) holds exactly.
func (v Vec3Int) Sub(rhs Vec3Int) Vec3Int {
	return v.Neg().Add(rhs).Neg()
}

// Mul returns the vector scaled by rhs.
func (v Vec3Int) Mul(rhs int32) Vec3Int {
	return Vec3Int{X: v.X * rhs, Y: v.Y * rhs, Z: v.Z * rhs}
}

// Div returns the vector divided by rhs using integer division.
func (v Vec3Int) Div(rhs int32) Vec3Int {
	return Vec3Int{X: v.X / rhs, Y: v.Y / rhs, Z: v.Z / rhs}
}

// EqualXYZ reports whether the vector equals the raw component triple.
func (v Vec3Int) EqualXYZ(x, y, z int32) bool {
	return v.X == x && v.Y == y && v.Z == z
}
