package core

// Point is a position in 3D space. It shares the Vec3 layout but only supports
// point arithmetic: Point±Vec3 gives a Point and Point−Point gives a Vec3.
type Point Vec3

// NewPoint creates a point from coordinates
func NewPoint(x, y, z float64) Point {
	return Point(NewVec3(x, y, z))
}

// Vec3 returns the position vector of the point (relative to the origin)
func (p Point) Vec3() Vec3 {
	return Vec3(p)
}

// Add translates the point by a vector
func (p Point) Add(v Vec3) Point {
	return Point(Vec3(p).Add(v))
}

// SubtractVec translates the point by the negated vector
func (p Point) SubtractVec(v Vec3) Point {
	return Point(Vec3(p).Subtract(v))
}

// Subtract returns the displacement from other to p
func (p Point) Subtract(other Point) Vec3 {
	return Vec3(p).Subtract(Vec3(other))
}
