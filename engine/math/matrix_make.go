package math

// Rotations are right-handed: a positive angle turns counter-clockwise when
// looking from the positive end of the axis toward the origin. RotateY(π/2)
// takes (1,0,0) to (0,0,-1). The cardinal rotations are built through
// MakeRotateUnitAxis so the two paths always agree on signs.

/**
 * @brief Makes mt a rotation about the X axis. The translational components
 * are set to 0.
 *
 * @param t The angle in radians.
 */
func (mt *Matrix) MakeRotateX(t float32) {
	mt.MakeRotateUnitAxis(NewVector3XAxis(), t)
}

/**
 * @brief Makes mt a rotation about the Y axis. The translational components
 * are set to 0.
 *
 * @param t The angle in radians.
 */
func (mt *Matrix) MakeRotateY(t float32) {
	mt.MakeRotateUnitAxis(NewVector3YAxis(), t)
}

/**
 * @brief Makes mt a rotation about the Z axis. The translational components
 * are set to 0.
 *
 * @param t The angle in radians.
 */
func (mt *Matrix) MakeRotateZ(t float32) {
	mt.MakeRotateUnitAxis(NewVector3ZAxis(), t)
}

/**
 * @brief Makes mt a rotation of t radians about the axis v through the origin
 * (Rodrigues' rotation formula). v must already be unit length; it is neither
 * checked nor normalized here.
 */
func (mt *Matrix) MakeRotateUnitAxis(v Vector3, t float32) {
	c := kcos(t)
	s := ksin(t)
	omc := 1.0 - c

	mt.Identity()
	d := &mt.Data
	d[0] = 1.0 + omc*(v.X*v.X-1.0)
	d[1] = v.Z*s + omc*v.X*v.Y
	d[2] = -v.Y*s + omc*v.Z*v.X

	d[4] = -v.Z*s + omc*v.X*v.Y
	d[5] = 1.0 + omc*(v.Y*v.Y-1.0)
	d[6] = v.X*s + omc*v.Z*v.Y

	d[8] = v.Y*s + omc*v.X*v.Z
	d[9] = -v.X*s + omc*v.Y*v.Z
	d[10] = 1.0 + omc*(v.Z*v.Z-1.0)
}

/**
 * @brief Makes mt a scale matrix in x, y and z. The translational components
 * are set to 0.
 */
func (mt *Matrix) MakeScale(x, y, z float32) {
	mt.Identity()
	mt.Data[0] = x
	mt.Data[5] = y
	mt.Data[10] = z
}

func (mt *Matrix) MakeScaleVector(v Vector3) {
	mt.MakeScale(v.X, v.Y, v.Z)
}

func (mt *Matrix) MakeScaleUniform(s float32) {
	mt.MakeScale(s, s, s)
}

/**
 * @brief Makes mt a translation matrix in x, y and z. The remaining entries
 * are those of the identity.
 */
func (mt *Matrix) MakeTranslate(x, y, z float32) {
	mt.Identity()
	mt.Data[12] = x
	mt.Data[13] = y
	mt.Data[14] = z
}

func (mt *Matrix) MakeTranslateVector(v Vector3) {
	mt.MakeTranslate(v.X, v.Y, v.Z)
}

// Translate makes mt a pure translation by v.
func (mt *Matrix) Translate(v Vector3) {
	mt.MakeTranslateVector(v)
}

/**
 * @brief Makes mt a perspective projection, equivalent to gluPerspective.
 * Unlike every other constructor the last row is (0, 0, -1, 0), so points
 * must go through TransformFull.
 *
 * @param fovRadians The vertical field of view in radians.
 * @param aspectRatio Width divided by height.
 * @param nearClip The near clipping plane distance.
 * @param farClip The far clipping plane distance.
 */
func (mt *Matrix) MakePerspective(fovRadians, aspectRatio, nearClip, farClip float32) {
	f := 1.0 / ktan(fovRadians*0.5)
	mt.Data = [16]float32{}
	mt.Data[0] = f / aspectRatio
	mt.Data[5] = f
	mt.Data[10] = (farClip + nearClip) / (nearClip - farClip)
	mt.Data[11] = -1.0
	mt.Data[14] = (2.0 * farClip * nearClip) / (nearClip - farClip)
}

func NewMatrixRotateX(t float32) Matrix {
	var m Matrix
	m.MakeRotateX(t)
	return m
}

func NewMatrixRotateY(t float32) Matrix {
	var m Matrix
	m.MakeRotateY(t)
	return m
}

func NewMatrixRotateZ(t float32) Matrix {
	var m Matrix
	m.MakeRotateZ(t)
	return m
}

func NewMatrixRotateUnitAxis(axis Vector3, t float32) Matrix {
	var m Matrix
	m.MakeRotateUnitAxis(axis, t)
	return m
}

func NewMatrixScale(x, y, z float32) Matrix {
	var m Matrix
	m.MakeScale(x, y, z)
	return m
}

func NewMatrixScaleUniform(s float32) Matrix {
	var m Matrix
	m.MakeScaleUniform(s)
	return m
}

func NewMatrixTranslate(x, y, z float32) Matrix {
	var m Matrix
	m.MakeTranslate(x, y, z)
	return m
}

func NewMatrixPerspective(fovRadians, aspectRatio, nearClip, farClip float32) Matrix {
	var m Matrix
	m.MakePerspective(fovRadians, aspectRatio, nearClip, farClip)
	return m
}
