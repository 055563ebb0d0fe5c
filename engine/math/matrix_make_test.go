package math_test

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/spaghettifunk/spincube/engine/math"
)

func randomUnitVector(r *rand.Rand) math.Vector3 {
	for {
		v := math.NewVector3(r.Float32()*2-1, r.Float32()*2-1, r.Float32()*2-1)
		if v.MagSq() > 0.01 {
			return v.Normalized()
		}
	}
}

func TestMakeRotateUnitAxis_Orthonormal(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		axis := randomUnitVector(r)
		theta := (r.Float32()*2 - 1) * 2 * math.K_PI
		m := math.NewMatrixRotateUnitAxis(axis, theta)

		a, b, c := m.GetA(), m.GetB(), m.GetC()
		require.InDelta(t, 1, a.Mag(), tolerance)
		require.InDelta(t, 1, b.Mag(), tolerance)
		require.InDelta(t, 1, c.Mag(), tolerance)
		require.InDelta(t, 0, a.Dot(b), tolerance)
		require.InDelta(t, 0, b.Dot(c), tolerance)
		require.InDelta(t, 0, a.Dot(c), tolerance)
		requireVectorInDelta(t, a.Cross(b), c, tolerance)

		requireVectorInDelta(t, axis, m.MulVector(axis), tolerance)
		require.Equal(t, math.NewPoint3Origin(), m.GetD())
		require.Equal(t, [4]float32{0, 0, 0, 1}, [4]float32{m.Data[3], m.Data[7], m.Data[11], m.Data[15]})
	}
}

func TestMakeRotate_CardinalAxesMatchUnitAxis(t *testing.T) {
	t.Parallel()

	for _, theta := range []float32{0, 0.1, -0.8, math.K_HALF_PI, math.K_PI, 4.2} {
		c, s := math32.Cos(theta), math32.Sin(theta)

		rx := math.NewMatrixRotateX(theta)
		requireMatrixInDelta(t, math.NewMatrixRotateUnitAxis(math.NewVector3XAxis(), theta), rx, tolerance)
		requireMatrixInDelta(t, math.NewMatrix(
			1, 0, 0, 0,
			0, c, -s, 0,
			0, s, c, 0,
			0, 0, 0, 1), rx, tolerance)

		ry := math.NewMatrixRotateY(theta)
		requireMatrixInDelta(t, math.NewMatrixRotateUnitAxis(math.NewVector3YAxis(), theta), ry, tolerance)
		requireMatrixInDelta(t, math.NewMatrix(
			c, 0, s, 0,
			0, 1, 0, 0,
			-s, 0, c, 0,
			0, 0, 0, 1), ry, tolerance)

		rz := math.NewMatrixRotateZ(theta)
		requireMatrixInDelta(t, math.NewMatrixRotateUnitAxis(math.NewVector3ZAxis(), theta), rz, tolerance)
		requireMatrixInDelta(t, math.NewMatrix(
			c, -s, 0, 0,
			s, c, 0, 0,
			0, 0, 1, 0,
			0, 0, 0, 1), rz, tolerance)
	}
}

func TestMakeRotate_RightHanded(t *testing.T) {
	t.Parallel()

	quarter := math.K_HALF_PI
	tests := []struct {
		name string
		m    math.Matrix
		in   math.Point3
		want math.Point3
	}{
		{name: "y_takes_x_to_minus_z", m: math.NewMatrixRotateY(quarter), in: math.NewPoint3(1, 0, 0), want: math.NewPoint3(0, 0, -1)},
		{name: "z_takes_x_to_y", m: math.NewMatrixRotateZ(quarter), in: math.NewPoint3(1, 0, 0), want: math.NewPoint3(0, 1, 0)},
		{name: "x_takes_y_to_z", m: math.NewMatrixRotateX(quarter), in: math.NewPoint3(0, 1, 0), want: math.NewPoint3(0, 0, 1)},
		{name: "diagonal_axis_cycles_basis", m: math.NewMatrixRotateUnitAxis(math.NewVector3(1, 1, 1).Normalized(), 2*math.K_PI/3), in: math.NewPoint3(1, 0, 0), want: math.NewPoint3(0, 1, 0)},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			requirePointInDelta(t, tt.want, tt.m.MulPoint(tt.in), tolerance)
		})
	}
}

func TestMakeScaleAndTranslate(t *testing.T) {
	t.Parallel()

	s := math.NewMatrixScale(2, 3, 4)
	require.Equal(t, math.NewPoint3(2, 3, 4), s.MulPoint(math.NewPoint3(1, 1, 1)))
	require.Equal(t, math.NewPoint3Origin(), s.GetD())

	u := math.NewMatrixScaleUniform(0.5)
	require.Equal(t, math.NewPoint3(0.5, -0.5, 1), u.MulPoint(math.NewPoint3(1, -1, 2)))

	var sv math.Matrix
	sv.MakeScaleVector(math.NewVector3(2, 3, 4))
	require.Equal(t, s, sv)

	tr := math.NewMatrixTranslate(1, 2, 3)
	require.Equal(t, math.NewPoint3(1, 2, 3), tr.GetD())
	require.Equal(t, math.NewPoint3(2, 3, 4), tr.MulPoint(math.NewPoint3(1, 1, 1)))

	var tv math.Matrix
	tv.MakeRotateX(1)
	tv.Translate(math.NewVector3(1, 2, 3))
	require.Equal(t, tr, tv, "Translate resets to a pure translation")

	tv.MakeTranslateVector(math.NewVector3(1, 2, 3))
	require.Equal(t, tr, tv)
}

func TestComposition_OrderMatters(t *testing.T) {
	t.Parallel()

	origin := math.NewPoint3Origin()
	translate := math.NewMatrixTranslate(1, 0, 0)
	rotate := math.NewMatrixRotateZ(math.DegToRad(90))

	// Column-vector convention: the rightmost transform applies first.
	requirePointInDelta(t, math.NewPoint3(1, 0, 0), translate.Mul(rotate).MulPoint(origin), tolerance)
	requirePointInDelta(t, math.NewPoint3(0, 1, 0), rotate.Mul(translate).MulPoint(origin), tolerance)
	require.False(t, translate.Mul(rotate).MulPoint(origin).Compare(rotate.Mul(translate).MulPoint(origin), tolerance))
}

func TestGeometry_FaceOrientation(t *testing.T) {
	t.Parallel()

	a := math.NewPoint3(0, 0, 0)
	b := math.NewPoint3(1, 0, 0)
	c := math.NewPoint3(0, 1, 0)

	require.Equal(t, math.NewVector3(0, 0, 1), math.FaceNormal(a, b, c))
	require.True(t, math.IsFrontFacing(a, b, c, math.NewPoint3(0, 0, 5)))
	require.False(t, math.IsFrontFacing(a, b, c, math.NewPoint3(0, 0, -5)))
	require.False(t, math.IsFrontFacing(a, c, b, math.NewPoint3(0, 0, 5)))
}

func TestUtils(t *testing.T) {
	t.Parallel()

	require.Equal(t, float32(0.001), math.Clamp(float32(0.5), 0, 0.001))
	require.Equal(t, float32(0), math.Clamp(float32(-1), 0, 0.001))
	require.Equal(t, 3, math.Clamp(3, 1, 5))

	require.InDelta(t, math.K_PI, math.DegToRad(180), tolerance)
	require.InDelta(t, 90, math.RadToDeg(math.K_HALF_PI), 1e-4)

	require.InDelta(t, 1, math.WrapAngle(1+math.K_PI_2), 1e-5)
	require.InDelta(t, math.K_PI_2-1, math.WrapAngle(-1), 1e-5)
	require.InDelta(t, 0.5, math.WrapAngle(0.5), 1e-7)
}
