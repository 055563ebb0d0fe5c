package math_test

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/spincube/engine/math"
)

const tolerance = 1e-5

func requireVectorInDelta(t *testing.T, want, got math.Vector3, delta float32) {
	t.Helper()
	require.InDelta(t, want.X, got.X, float64(delta), "x of %v", got)
	require.InDelta(t, want.Y, got.Y, float64(delta), "y of %v", got)
	require.InDelta(t, want.Z, got.Z, float64(delta), "z of %v", got)
}

func requirePointInDelta(t *testing.T, want, got math.Point3, delta float32) {
	t.Helper()
	requireVectorInDelta(t, want.ToVector3(), got.ToVector3(), delta)
}

func TestVector3_DotCross(t *testing.T) {
	t.Parallel()

	require.Equal(t, float32(32), math.NewVector3(1, 2, 3).Dot(math.NewVector3(4, 5, 6)))
	require.Equal(t, math.NewVector3ZAxis(), math.NewVector3XAxis().Cross(math.NewVector3YAxis()))
	require.Equal(t, math.NewVector3XAxis(), math.NewVector3YAxis().Cross(math.NewVector3ZAxis()))

	a := math.NewVector3(1, -2, 0.5)
	b := math.NewVector3(3, 4, -1)
	require.Equal(t, a.Cross(b).Negated(), b.Cross(a), "cross product is anticommutative")
	require.Equal(t, math.NewVector3Zero(), a.Cross(a.Scale(3)), "parallel inputs")
	require.InDelta(t, 0, a.Cross(b).Dot(a), tolerance)
	require.InDelta(t, 0, a.Cross(b).Dot(b), tolerance)
}

func TestVector3_Magnitude(t *testing.T) {
	t.Parallel()

	v := math.NewVector3(3, 4, 12)
	require.Equal(t, float32(169), v.MagSq())
	require.Equal(t, float32(13), v.Mag())

	n := v.Normalized()
	require.InDelta(t, 1, n.Mag(), tolerance)
	require.Equal(t, float32(13), v.Mag(), "Normalized must not modify its receiver")

	v.Normalize()
	requireVectorInDelta(t, n, v, tolerance)

	z := math.NewVector3Zero()
	z.Normalize()
	require.True(t, math32.IsNaN(z.X) || math32.IsInf(z.X, 0))
}

func TestVector3_Arithmetic(t *testing.T) {
	t.Parallel()

	a := math.NewVector3(1, 2, 3)
	b := math.NewVector3(4, 5, 6)

	require.Equal(t, math.NewVector3(5, 7, 9), a.Add(b))
	require.Equal(t, math.NewVector3(-3, -3, -3), a.Sub(b))
	require.Equal(t, math.NewVector3(2, 4, 6), a.Scale(2))
	require.Equal(t, math.NewVector3(4, 10, 18), a.Mul(b))
	require.Equal(t, math.NewVector3(0.5, 1, 1.5), a.Div(2))
	require.Equal(t, math.NewVector3(6, 3, 2), a.Reciprocal(6))
	require.Equal(t, math.NewVector3(-1, -2, -3), a.Negated())
	require.Equal(t, math.NewVector3(1, 2, 3), a, "pure operations leave the receiver alone")
}

func TestVector3_InPlaceAliasing(t *testing.T) {
	t.Parallel()

	v := math.NewVector3(1, 2, 3)
	v.SetAdd(v)
	require.Equal(t, math.NewVector3(2, 4, 6), v)

	v.SetSub(v)
	require.Equal(t, math.NewVector3Zero(), v)

	v.Set(1, 0, 0)
	w := math.NewVector3(0, 1, 0)
	v.SetCross(v, w)
	require.Equal(t, math.NewVector3ZAxis(), v)

	v.Set(1, 2, 3)
	v.SetSum(v, v)
	require.Equal(t, math.NewVector3(2, 4, 6), v)
	v.SetDifference(v, math.NewVector3(1, 1, 1))
	require.Equal(t, math.NewVector3(1, 3, 5), v)
	v.SetScaled(v, -1)
	require.Equal(t, math.NewVector3(-1, -3, -5), v)
	v.SetNegate()
	v.SetScale(2)
	require.Equal(t, math.NewVector3(2, 6, 10), v)
	v.SetZero()
	require.Equal(t, math.NewVector3Zero(), v)
}

func TestVector3_Indexing(t *testing.T) {
	t.Parallel()

	v := math.NewVector3(7, 8, 9)
	for i, want := range []float32{7, 8, 9} {
		require.Equal(t, want, v.At(i))
	}
	v.SetAt(1, -1)
	require.Equal(t, float32(-1), v.Y)
	require.Equal(t, [3]float32{7, -1, 9}, v.ToArray())

	require.Panics(t, func() { v.SetAt(3, 0) })
	require.Panics(t, func() { _ = v.At(-1) })
}

func TestVector3_Constants(t *testing.T) {
	t.Parallel()

	x := math.NewVector3XAxis()
	x.SetScale(5)
	require.Equal(t, math.NewVector3(1, 0, 0), math.NewVector3XAxis(), "constants are fresh values")
	require.Equal(t, math.NewVector3(0, 1, 0), math.NewVector3YAxis())
	require.Equal(t, math.NewVector3(0, 0, 1), math.NewVector3ZAxis())
	require.Equal(t, "{1.000000,2.000000,3.000000}", math.NewVector3(1, 2, 3).String())
}
