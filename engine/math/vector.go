package math

import "fmt"

/**
 * @brief Creates and returns a new 3-element vector using the supplied values.
 */
func NewVector3(x, y, z float32) Vector3 {
	return Vector3{x, y, z}
}

/**
 * @brief Returns the unit vector along the X axis (1, 0, 0).
 */
func NewVector3XAxis() Vector3 {
	return Vector3{1.0, 0.0, 0.0}
}

/**
 * @brief Returns the unit vector along the Y axis (0, 1, 0).
 */
func NewVector3YAxis() Vector3 {
	return Vector3{0.0, 1.0, 0.0}
}

/**
 * @brief Returns the unit vector along the Z axis (0, 0, 1).
 */
func NewVector3ZAxis() Vector3 {
	return Vector3{0.0, 0.0, 1.0}
}

/**
 * @brief Returns a vector with all components set to 0.0f.
 */
func NewVector3Zero() Vector3 {
	return Vector3{0.0, 0.0, 0.0}
}

// ------------------------------------------
// Pure operations
// ------------------------------------------

// Add returns v + other.
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{
		v.X + other.X,
		v.Y + other.Y,
		v.Z + other.Z}
}

// Sub returns v - other.
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{
		v.X - other.X,
		v.Y - other.Y,
		v.Z - other.Z}
}

// Mul multiplies v by other component by component.
func (v Vector3) Mul(other Vector3) Vector3 {
	return Vector3{
		v.X * other.X,
		v.Y * other.Y,
		v.Z * other.Z}
}

// Scale returns v multiplied by the scalar s.
func (v Vector3) Scale(s float32) Vector3 {
	return Vector3{
		v.X * s,
		v.Y * s,
		v.Z * s}
}

// Div returns v divided by the scalar f. f must not be zero.
func (v Vector3) Div(f float32) Vector3 {
	return v.Scale(1.0 / f)
}

// Reciprocal returns the vector (f/x, f/y, f/z).
func (v Vector3) Reciprocal(f float32) Vector3 {
	return Vector3{
		f / v.X,
		f / v.Y,
		f / v.Z}
}

// Negated returns -v.
func (v Vector3) Negated() Vector3 {
	return Vector3{-v.X, -v.Y, -v.Z}
}

/**
 * @brief Returns the dot product between v and other.
 */
func (v Vector3) Dot(other Vector3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

/**
 * @brief Returns v (cross) other. The result is orthogonal to both inputs,
 * follows the right-hand rule and is zero for parallel inputs.
 */
func (v Vector3) Cross(other Vector3) Vector3 {
	return Vector3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X}
}

// MagSq returns the squared length of v.
func (v Vector3) MagSq() float32 {
	return v.Dot(v)
}

// Mag returns the length of v.
func (v Vector3) Mag() float32 {
	return ksqrt(v.MagSq())
}

/**
 * @brief Returns a unit length copy of v. The result is NaN or infinite when
 * v has zero length.
 */
func (v Vector3) Normalized() Vector3 {
	return v.Scale(1.0 / v.Mag())
}

/**
 * @brief Compares all elements of v and other and ensures the difference
 * is less than tolerance.
 */
func (v Vector3) Compare(other Vector3, tolerance float32) bool {
	if kabs(v.X-other.X) > tolerance {
		return false
	}
	if kabs(v.Y-other.Y) > tolerance {
		return false
	}
	if kabs(v.Z-other.Z) > tolerance {
		return false
	}
	return true
}

// ToPoint3 reinterprets v as a location.
func (v Vector3) ToPoint3() Point3 {
	return Point3{v.X, v.Y, v.Z}
}

// ToArray returns the components in x, y, z order, ready to hand to an API
// expecting three consecutive floats.
func (v Vector3) ToArray() [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

// At returns component i (0=x, 1=y, 2=z).
func (v Vector3) At(i int) float32 {
	return v.ToArray()[i]
}

func (v Vector3) String() string {
	return fmt.Sprintf("{%f,%f,%f}", v.X, v.Y, v.Z)
}

// ------------------------------------------
// In-place operations
// ------------------------------------------

func (v *Vector3) Set(x, y, z float32) {
	v.X, v.Y, v.Z = x, y, z
}

func (v *Vector3) SetZero() {
	v.X, v.Y, v.Z = 0, 0, 0
}

// SetAt writes component i (0=x, 1=y, 2=z). Any other index panics.
func (v *Vector3) SetAt(i int, f float32) {
	switch i {
	case 0:
		v.X = f
	case 1:
		v.Y = f
	case 2:
		v.Z = f
	default:
		panic(fmt.Sprintf("math: Vector3 index %d out of range [0:3]", i))
	}
}

func (v *Vector3) SetAdd(a Vector3) {
	v.X += a.X
	v.Y += a.Y
	v.Z += a.Z
}

func (v *Vector3) SetSub(a Vector3) {
	v.X -= a.X
	v.Y -= a.Y
	v.Z -= a.Z
}

func (v *Vector3) SetScale(s float32) {
	v.X *= s
	v.Y *= s
	v.Z *= s
}

func (v *Vector3) SetNegate() {
	v.X, v.Y, v.Z = -v.X, -v.Y, -v.Z
}

// SetSum sets v = a + b.
func (v *Vector3) SetSum(a, b Vector3) {
	*v = a.Add(b)
}

// SetDifference sets v = a - b.
func (v *Vector3) SetDifference(a, b Vector3) {
	*v = a.Sub(b)
}

// SetScaled sets v = a * s.
func (v *Vector3) SetScaled(a Vector3, s float32) {
	*v = a.Scale(s)
}

// SetCross sets v = a (cross) b. a and b are copies, so v may be either one.
func (v *Vector3) SetCross(a, b Vector3) {
	*v = a.Cross(b)
}

/**
 * @brief Normalizes v in place to a unit vector. v must not have zero length.
 */
func (v *Vector3) Normalize() {
	v.SetScale(1.0 / v.Mag())
}
