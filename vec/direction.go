package vec

// Direction is a cardinal direction in the 2D plane.
//
// Conversions to a vector use screen coordinates: East is +x and South
// is +y (down).
type Direction int

const (
	// North is the -y direction.
	North Direction = iota
	// South is the +y direction.
	South
	// East is the +x direction.
	East
	// West is the -x direction.
	West
)

// Flipped flips the direction around both the x- and y-axes.
func (d Direction) Flipped() Direction {
	return d.FlipX().FlipY()
}

// FlipX flips the direction around the x-axis.
func (d Direction) FlipX() Direction {
	switch d {
	case East:
		return West
	case West:
		return East
	default:
		return d
	}
}

// FlipY flips the direction around the y-axis.
func (d Direction) FlipY() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	default:
		return d
	}
}

// Neg is the opposite direction, equivalent to Flipped.
func (d Direction) Neg() Direction {
	return d.Flipped()
}

// Vec2 returns the unit Vec2 for the direction.
func (d Direction) Vec2() Vec2 {
	return d.Vec2Int().ToVec2()
}

// Vec2Int returns the unit Vec2Int for the direction.
func (d Direction) Vec2Int() Vec2Int {
	switch d {
	case North:
		return Vec2Int{X: 0, Y: -1}
	case South:
		return Vec2Int{X: 0, Y: 1}
	case East:
		return Vec2Int{X: 1, Y: 0}
	default:
		return Vec2Int{X: -1, Y: 0}
	}
}

// MulF scales the direction's unit vector by rhs.
func (d Direction) MulF(rhs float32) Vec2 {
	return d.Vec2().Mul(rhs)
}

// MulI scales the direction's unit vector by rhs.
func (d Direction) MulI(rhs int32) Vec2Int {
	return d.Vec2Int().Mul(rhs)
}

func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	case West:
		return "West"
	default:
		return "Direction(?)"
	}
}
