// Package vec provides the small 2D/3D vector types the engine is built on:
// float and integer vectors plus cardinal directions. All types have value
// semantics; every operation returns a new vector.
package vec

import "math"

// Vec2 is a pair of float32s representing a location or direction in the
// 2D plane. Screen convention applies throughout the engine: +x is right,
// +y is down.
type Vec2 struct {
	X, Y float32
}

// V2 creates a Vec2 from its components.
func V2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// SqMagnitude returns the squared magnitude of the vector.
// Cheaper than Magnitude, useful for comparisons.
func (v Vec2) SqMagnitude() float32 {
	return v.X*v.X + v.Y*v.Y
}

// Magnitude returns the magnitude of the vector.
func (v Vec2) Magnitude() float32 {
	return float32(math.Sqrt(float64(v.SqMagnitude())))
}

// SqDist returns the squared distance from v to rhs.
func (v Vec2) SqDist(rhs Vec2) float32 {
	return v.Sub(rhs).SqMagnitude()
}

// Dist returns the distance from v to rhs.
func (v Vec2) Dist(rhs Vec2) float32 {
	return v.Sub(rhs).Magnitude()
}

// Normalized returns the vector scaled to magnitude 1.
// A zero vector produces NaN components; callers must avoid that.
func (v Vec2) Normalized() Vec2 {
	return v.Div(v.Magnitude())
}

// Rounded converts to a Vec2Int by truncating each component toward zero,
// so (2.9, -2.9) becomes (2, -2). This matches Go's float-to-int
// conversion, not round-to-nearest.
func (v Vec2) Rounded() Vec2Int {
	return Vec2Int{X: int32(v.X), Y: int32(v.Y)}
}

// Neg returns the vector with both components negated.
func (v Vec2) Neg() Vec2 {
	return v.Mul(-1)
}

// Add returns the component-wise sum of v and rhs.
func (v Vec2) Add(rhs Vec2) Vec2 {
	return Vec2{X: v.X + rhs.X, Y: v.Y + rhs.Y}
}

// AddDir returns v plus the unit vector of the given direction.
func (v Vec2) AddDir(d Direction) Vec2 {
	return v.Add(d.Vec2())
}

// Sub returns v minus rhs, defined as -(-v + rhs) so the identity
// a-b == -(-a+b) holds exactly.
func (v Vec2) Sub(rhs Vec2) Vec2 {
	return v.Neg().Add(rhs).Neg()
}

// Mul returns the vector scaled by rhs.
func (v Vec2) Mul(rhs float32) Vec2 {
	return Vec2{X: v.X * rhs, Y: v.Y * rhs}
}

// Div returns the vector divided by rhs.
func (v Vec2) Div(rhs float32) Vec2 {
	return Vec2{X: v.X / rhs, Y: v.Y / rhs}
}

// EqualXY reports whether the vector equals the raw component pair.
func (v Vec2) EqualXY(x, y float32) bool {
	return v.X == x && v.Y == y
}

// Vec2Int is a pair of int32s representing a location or direction in the
// 2D plane.
type Vec2Int struct {
	X, Y int32
}

// V2i creates a Vec2Int from its components.
func V2i(x, y int32) Vec2Int {
	return Vec2Int{X: x, Y: y}
}

// SqMagnitude returns the squared magnitude of the vector.
// Cheaper than Magnitude, useful for comparisons.
func (v Vec2Int) SqMagnitude() int32 {
	return v.X*v.X + v.Y*v.Y
}

// Magnitude returns the magnitude of the vector.
func (v Vec2Int) Magnitude() float32 {
	return float32(math.Sqrt(float64(v.SqMagnitude())))
}

// SqDist returns the squared distance from v to rhs.
func (v Vec2Int) SqDist(rhs Vec2Int) int32 {
	return v.Sub(rhs).SqMagnitude()
}

// Dist returns the distance from v to rhs.
func (v Vec2Int) Dist(rhs Vec2Int) float32 {
	return v.Sub(rhs).Magnitude()
}

// ToVec2 casts the vector to a Vec2.
func (v Vec2Int) ToVec2() Vec2 {
	return Vec2{X: float32(v.X), Y: float32(v.Y)}
}

// Neg returns the vector with both components negated.
func (v Vec2Int) Neg() Vec2Int {
	return v.Mul(-1)
}

// Add returns the component-wise sum of v and rhs.
func (v Vec2Int) Add(rhs Vec2Int) Vec2Int {
	return Vec2Int{X: v.X + rhs.X, Y: v.Y + rhs.Y}
}

// AddDir returns v plus the unit vector of the given direction.
func (v Vec2Int) AddDir(d Direction) Vec2Int {
	return v.Add(d.Vec2Int())
}

// Sub returns v minus rhs, defined as -(-v + rhs) so the identity
// a-b == -(-a+b) holds exactly.
func (v Vec2Int) Sub(rhs Vec2Int) Vec2Int {
	return v.Neg().Add(rhs).Neg()
}

// Mul returns the vector scaled by rhs.
func (v Vec2Int) Mul(rhs int32) Vec2Int {
	return Vec2Int{X: v.X * rhs, Y: v.Y * rhs}
}

// Div returns the vector divided by rhs using integer division.
func (v Vec2Int) Div(rhs int32) Vec2Int {
	return Vec2Int{X: v.X / rhs, Y: v.Y / rhs}
}

// EqualXY reports whether the vector equals the raw component pair.
func (v Vec2Int) EqualXY(x, y int32) bool {
	return v.X == x && v.Y == y
}
