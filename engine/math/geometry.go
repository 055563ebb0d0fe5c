package math

/**
 * @brief Returns the unnormalized face normal of the triangle a, b, c wound
 * counter-clockwise: (b - a) x (c - a).
 */
func FaceNormal(a, b, c Point3) Vector3 {
	edge1 := b.Sub(a)
	edge2 := c.Sub(a)
	return edge1.Cross(edge2)
}

/**
 * @brief Reports whether the counter-clockwise triangle a, b, c faces a
 * viewer standing at eye.
 */
func IsFrontFacing(a, b, c, eye Point3) bool {
	return FaceNormal(a, b, c).Dot(eye.Sub(a)) > 0
}
