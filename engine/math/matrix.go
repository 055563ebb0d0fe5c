package math

import (
	"fmt"
	"strings"
)

/**
 * @brief Creates a matrix from 16 values. For readability the values are
 * given in row order even though the storage is column-major.
 */
func NewMatrix(m0, m4, m8, m12, // First row
	m1, m5, m9, m13, // Second row
	m2, m6, m10, m14, // Third row
	m3, m7, m11, m15 float32) Matrix { // Fourth row
	var m Matrix
	m.Set(m0, m4, m8, m12,
		m1, m5, m9, m13,
		m2, m6, m10, m14,
		m3, m7, m11, m15)
	return m
}

/**
 * @brief Creates an affine matrix from three basis vectors and a position.
 * The last row is set to 0,0,0,1.
 */
func NewMatrixFromColumns(a, b, c Vector3, d Point3) Matrix {
	var m Matrix
	m.SetColumns(a, b, c, d)
	return m
}

/**
 * @brief Creates a matrix from 16 values already in column-major order.
 */
func NewMatrixFromArray(data [16]float32) Matrix {
	return Matrix{Data: data}
}

/**
 * @brief Creates and returns an identity matrix:
 *
 * {
 *   {1, 0, 0, 0},
 *   {0, 1, 0, 0},
 *   {0, 0, 1, 0},
 *   {0, 0, 0, 1}
 * }
 */
func NewMatrixIdentity() Matrix {
	return Matrix{Data: [16]float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}}
}

// Set assigns all 16 entries, given in row order.
func (mt *Matrix) Set(m0, m4, m8, m12,
	m1, m5, m9, m13,
	m2, m6, m10, m14,
	m3, m7, m11, m15 float32) {
	mt.Data = [16]float32{
		m0, m1, m2, m3,
		m4, m5, m6, m7,
		m8, m9, m10, m11,
		m12, m13, m14, m15,
	}
}

// SetColumns assigns the basis vectors and position and resets the last row
// to 0,0,0,1.
func (mt *Matrix) SetColumns(a, b, c Vector3, d Point3) {
	mt.Data = [16]float32{
		a.X, a.Y, a.Z, 0,
		b.X, b.Y, b.Z, 0,
		c.X, c.Y, c.Z, 0,
		d.X, d.Y, d.Z, 1,
	}
}

// Identity resets mt to the identity matrix.
func (mt *Matrix) Identity() {
	*mt = NewMatrixIdentity()
}

/**
 * @brief Sets mt to m (dot) n. Either argument may point at mt itself: every
 * output cell is accumulated into a local buffer that is only committed once
 * all 16 cells are known.
 */
func (mt *Matrix) Multiply(m, n *Matrix) {
	var out [16]float32
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m.Data[i+k*4] * n.Data[j*4+k]
			}
			out[i+j*4] = sum
		}
	}
	mt.Data = out
}

/**
 * @brief Returns mt * other as a new matrix. Neither operand is modified.
 */
func (mt Matrix) Mul(other Matrix) Matrix {
	var out Matrix
	out.Multiply(&mt, &other)
	return out
}

/**
 * @brief Transforms in by the upper 3x4 block of mt and stores the result in
 * out. The last row is ignored, which is exact for affine matrices. out may
 * be the same point as in.
 */
func (mt *Matrix) TransformPoint(in, out *Point3) {
	x, y, z := in.X, in.Y, in.Z
	d := &mt.Data
	out.X = d[0]*x + d[4]*y + d[8]*z + d[12]
	out.Y = d[1]*x + d[5]*y + d[9]*z + d[13]
	out.Z = d[2]*x + d[6]*y + d[10]*z + d[14]
}

/**
 * @brief Transforms the direction in by the upper-left 3x3 block of mt.
 * Directions are never translated. out may be the same vector as in.
 */
func (mt *Matrix) TransformVector(in, out *Vector3) {
	x, y, z := in.X, in.Y, in.Z
	d := &mt.Data
	out.X = d[0]*x + d[4]*y + d[8]*z
	out.Y = d[1]*x + d[5]*y + d[9]*z
	out.Z = d[2]*x + d[6]*y + d[10]*z
}

/**
 * @brief Full 16 element transform of in, treating it as (x, y, z, 1). The
 * result is homogenized (divided by w) whenever w is not 1. A w of 0 yields
 * infinite coordinates. out may be the same point as in.
 */
func (mt *Matrix) TransformFull(in, out *Point3) {
	x, y, z := in.X, in.Y, in.Z
	d := &mt.Data
	ox := d[0]*x + d[4]*y + d[8]*z + d[12]
	oy := d[1]*x + d[5]*y + d[9]*z + d[13]
	oz := d[2]*x + d[6]*y + d[10]*z + d[14]
	w := d[3]*x + d[7]*y + d[11]*z + d[15]
	if w != 1.0 {
		inv := 1.0 / w
		ox, oy, oz = ox*inv, oy*inv, oz*inv
	}
	out.X, out.Y, out.Z = ox, oy, oz
}

// MulPoint returns mt * p using the affine path.
func (mt Matrix) MulPoint(p Point3) Point3 {
	var out Point3
	mt.TransformPoint(&p, &out)
	return out
}

// MulVector returns mt * v, ignoring translation.
func (mt Matrix) MulVector(v Vector3) Vector3 {
	var out Vector3
	mt.TransformVector(&v, &out)
	return out
}

// MulPointFull returns the homogenized mt * p.
func (mt Matrix) MulPointFull(p Point3) Point3 {
	var out Point3
	mt.TransformFull(&p, &out)
	return out
}

func (mt Matrix) GetA() Vector3 {
	return Vector3{mt.Data[0], mt.Data[1], mt.Data[2]}
}

func (mt Matrix) GetB() Vector3 {
	return Vector3{mt.Data[4], mt.Data[5], mt.Data[6]}
}

func (mt Matrix) GetC() Vector3 {
	return Vector3{mt.Data[8], mt.Data[9], mt.Data[10]}
}

// GetD returns the translation column as a point.
func (mt Matrix) GetD() Point3 {
	return Point3{mt.Data[12], mt.Data[13], mt.Data[14]}
}

func (mt *Matrix) SetA(ax, ay, az float32) {
	mt.Data[0], mt.Data[1], mt.Data[2] = ax, ay, az
}

func (mt *Matrix) SetB(bx, by, bz float32) {
	mt.Data[4], mt.Data[5], mt.Data[6] = bx, by, bz
}

func (mt *Matrix) SetC(cx, cy, cz float32) {
	mt.Data[8], mt.Data[9], mt.Data[10] = cx, cy, cz
}

func (mt *Matrix) SetD(dx, dy, dz float32) {
	mt.Data[12], mt.Data[13], mt.Data[14] = dx, dy, dz
}

/**
 * @brief Transposes mt in place.
 */
func (mt *Matrix) Transpose() {
	d := &mt.Data
	d[1], d[4] = d[4], d[1]
	d[2], d[8] = d[8], d[2]
	d[3], d[12] = d[12], d[3]
	d[6], d[9] = d[9], d[6]
	d[7], d[13] = d[13], d[7]
	d[11], d[14] = d[14], d[11]
}

/**
 * @brief Returns a transposed copy of mt.
 */
func (mt Matrix) Transposed() Matrix {
	mt.Transpose()
	return mt
}

// ToArray returns the 16 elements in column-major order, the layout
// glLoadMatrixf and friends expect.
func (mt Matrix) ToArray() [16]float32 {
	return mt.Data
}

// Compare reports whether every element of mt is within tolerance of other.
func (mt Matrix) Compare(other Matrix, tolerance float32) bool {
	for i := range mt.Data {
		if kabs(mt.Data[i]-other.Data[i]) > tolerance {
			return false
		}
	}
	return true
}

// String prints the matrix one row per line.
func (mt Matrix) String() string {
	var sb strings.Builder
	sb.WriteString("{\n")
	for i := 0; i < 4; i++ {
		fmt.Fprintf(&sb, "%f,%f,%f,%f\n", mt.Data[i], mt.Data[4+i], mt.Data[8+i], mt.Data[12+i])
	}
	sb.WriteString("}")
	return sb.String()
}
