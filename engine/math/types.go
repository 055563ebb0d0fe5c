package math

/**
 * @brief A direction or displacement in 3D space. Vectors have magnitude and
 * orientation but no location, so they are never translated by a Matrix.
 */
type Vector3 struct {
	X, Y, Z float32
}

/**
 * @brief A location in 3D space. Points can be offset by a Vector3 and the
 * difference of two points is a Vector3.
 */
type Point3 struct {
	X, Y, Z float32
}

/**
 * @brief A 4x4 matrix stored in column-major order, used to represent affine
 * and projective transformations.
 *
 *	| Data[0]  Data[4]  Data[8]   Data[12] |
 *	| Data[1]  Data[5]  Data[9]   Data[13] |
 *	| Data[2]  Data[6]  Data[10]  Data[14] |
 *	| Data[3]  Data[7]  Data[11]  Data[15] |
 *
 * The columns A, B and C are the basis vectors and D is the translation.
 * Points are post-multiplied: p' = M * p.
 */
type Matrix struct {
	/** @brief The matrix elements */
	Data [16]float32
}
