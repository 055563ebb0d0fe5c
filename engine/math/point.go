package math

import "fmt"

/**
 * @brief Creates and returns a new point using the supplied values.
 */
func NewPoint3(x, y, z float32) Point3 {
	return Point3{x, y, z}
}

/**
 * @brief Returns the point at (0, 0, 0).
 */
func NewPoint3Origin() Point3 {
	return Point3{0.0, 0.0, 0.0}
}

// Add returns p offset by v.
func (p Point3) Add(v Vector3) Point3 {
	return Point3{
		p.X + v.X,
		p.Y + v.Y,
		p.Z + v.Z}
}

// SubVector returns p offset by -v.
func (p Point3) SubVector(v Vector3) Point3 {
	return Point3{
		p.X - v.X,
		p.Y - v.Y,
		p.Z - v.Z}
}

// Sub returns the displacement from q to p.
func (p Point3) Sub(q Point3) Vector3 {
	return Vector3{
		p.X - q.X,
		p.Y - q.Y,
		p.Z - q.Z}
}

func (p Point3) Scale(s float32) Point3 {
	return Point3{p.X * s, p.Y * s, p.Z * s}
}

func (p Point3) Negated() Point3 {
	return Point3{-p.X, -p.Y, -p.Z}
}

/**
 * @brief Returns the squared distance between p and q.
 */
func (p Point3) DistSq(q Point3) float32 {
	dx, dy, dz := p.X-q.X, p.Y-q.Y, p.Z-q.Z
	return dx*dx + dy*dy + dz*dz
}

/**
 * @brief Returns the distance between p and q.
 */
func (p Point3) Dist(q Point3) float32 {
	return ksqrt(p.DistSq(q))
}

/**
 * @brief Linearly interpolates between a and b: a*(1-t) + b*t. t is not
 * clamped, values outside [0, 1] extrapolate along the line.
 */
func Lerp(t float32, a, b Point3) Point3 {
	return Point3{
		a.X*(1.0-t) + b.X*t,
		a.Y*(1.0-t) + b.Y*t,
		a.Z*(1.0-t) + b.Z*t}
}

func (p Point3) Compare(other Point3, tolerance float32) bool {
	return p.ToVector3().Compare(other.ToVector3(), tolerance)
}

// ToVector3 reinterprets p as a displacement from the origin.
func (p Point3) ToVector3() Vector3 {
	return Vector3{p.X, p.Y, p.Z}
}

// ToArray returns the coordinates in x, y, z order.
func (p Point3) ToArray() [3]float32 {
	return [3]float32{p.X, p.Y, p.Z}
}

// At returns coordinate i (0=x, 1=y, 2=z).
func (p Point3) At(i int) float32 {
	return p.ToArray()[i]
}

func (p Point3) String() string {
	return fmt.Sprintf("{%f,%f,%f}", p.X, p.Y, p.Z)
}

func (p *Point3) Set(x, y, z float32) {
	p.X, p.Y, p.Z = x, y, z
}

func (p *Point3) SetZero() {
	p.X, p.Y, p.Z = 0, 0, 0
}

// SetAt writes coordinate i (0=x, 1=y, 2=z). Any other index panics.
func (p *Point3) SetAt(i int, f float32) {
	switch i {
	case 0:
		p.X = f
	case 1:
		p.Y = f
	case 2:
		p.Z = f
	default:
		panic(fmt.Sprintf("math: Point3 index %d out of range [0:3]", i))
	}
}

func (p *Point3) SetAdd(v Vector3) {
	p.X += v.X
	p.Y += v.Y
	p.Z += v.Z
}

func (p *Point3) SetSub(v Vector3) {
	p.X -= v.X
	p.Y -= v.Y
	p.Z -= v.Z
}

func (p *Point3) SetScale(s float32) {
	p.X *= s
	p.Y *= s
	p.Z *= s
}

func (p *Point3) SetNegate() {
	p.X, p.Y, p.Z = -p.X, -p.Y, -p.Z
}

// SetLerp sets p = Lerp(t, a, b). p may be a or b.
func (p *Point3) SetLerp(t float32, a, b Point3) {
	*p = Lerp(t, a, b)
}
