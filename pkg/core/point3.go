package core

// Point3 represents a position in 3D space.
// Points only combine with vectors; the difference of two points is a Vec3.
type Point3 struct {
	X, Y, Z float32
}

// NewPoint3 creates a new Point3
func NewPoint3(x, y, z float32) Point3 {
	return Point3{X: x, Y: y, Z: z}
}

// Add returns the point displaced by v
func (p Point3) Add(v Vec3) Point3 {
	return Point3{p.X + v.X, p.Y + v.Y, p.Z + v.Z}
}

// Subtract returns the point displaced by -v
func (p Point3) Subtract(v Vec3) Point3 {
	return Point3{p.X - v.X, p.Y - v.Y, p.Z - v.Z}
}

// SubtractPoint returns the displacement from other to p
func (p Point3) SubtractPoint(other Point3) Vec3 {
	return Vec3{p.X - other.X, p.Y - other.Y, p.Z - other.Z}
}

// AddAssign moves p by v in place
func (p *Point3) AddAssign(v Vec3) {
	p.X += v.X
	p.Y += v.Y
	p.Z += v.Z
}

// SubtractAssign moves p by -v in place
func (p *Point3) SubtractAssign(v Vec3) {
	p.X -= v.X
	p.Y -= v.Y
	p.Z -= v.Z
}
