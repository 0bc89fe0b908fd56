package view_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ndview/core"
	"github.com/katalvlaran/ndview/img"
	"github.com/katalvlaran/ndview/view"
)

// grid2D returns a 3×2 image with pixel (x,y) = x + 10y.
func grid2D(t *testing.T) *img.Img[int] {
	t.Helper()
	im, err := img.New[int](3, 2)
	require.NoError(t, err)
	for x := 0; x < 3; x++ {
		for y := 0; y < 2; y++ {
			im.SetAt(x+10*y, x, y)
		}
	}
	return im
}

// grid3D returns a 2×3×4 image with pixel (x,y,z) = x + 10y + 100z.
func grid3D(t *testing.T) *img.Img[int] {
	t.Helper()
	im, err := img.New[int](2, 3, 4)
	require.NoError(t, err)
	for x := 0; x < 2; x++ {
		for y := 0; y < 3; y++ {
			for z := 0; z < 4; z++ {
				im.SetAt(x+10*y+100*z, x, y, z)
			}
		}
	}
	return im
}

// at reads one value through a fresh accessor of v.
func at[T any](v core.RandomAccessible[T], coords ...int) T {
	ra := v.RandomAccess()
	ra.SetPosition(coords)
	return ra.Get()
}

func TestTranslate_Values(t *testing.T) {
	im := grid2D(t)
	tr, err := view.Translate[int](im, 5, -3)
	require.NoError(t, err)

	iv := tr.Interval()
	require.Equal(t, []int{5, -3}, iv.MinCoords())
	require.Equal(t, []int{7, -2}, iv.MaxCoords())

	// Every shifted coordinate aliases the source sample.
	for x := 0; x < 3; x++ {
		for y := 0; y < 2; y++ {
			require.Equal(t, im.At(x, y), at[int](tr, x+5, y-3))
		}
	}

	// A fresh accessor sits at the view origin.
	ra := tr.RandomAccess()
	pos := make([]int, 2)
	ra.Localize(pos)
	require.Equal(t, []int{5, -3}, pos)
	require.Equal(t, im.At(0, 0), ra.Get())

	// Writes go through to the source.
	ra.SetPosition([]int{6, -3})
	ra.Set(99)
	require.Equal(t, 99, im.At(1, 0))
}

func TestZeroMin_RebasesToOrigin(t *testing.T) {
	im := grid2D(t)
	tr, err := view.Translate[int](im, 5, -3)
	require.NoError(t, err)
	zm, err := view.ZeroMin[int](tr)
	require.NoError(t, err)

	require.Equal(t, []int{0, 0}, zm.Interval().MinCoords())
	require.Equal(t, []int{2, 1}, zm.Interval().MaxCoords())
	for x := 0; x < 3; x++ {
		for y := 0; y < 2; y++ {
			require.Equal(t, im.At(x, y), at[int](zm, x, y))
		}
	}
}

func TestPermute_SwapsAxes(t *testing.T) {
	im := grid2D(t)
	pm, err := view.Permute[int](im, 0, 1)
	require.NoError(t, err)

	require.Equal(t, 2, pm.Interval().Size(0))
	require.Equal(t, 3, pm.Interval().Size(1))
	for x := 0; x < 3; x++ {
		for y := 0; y < 2; y++ {
			require.Equal(t, im.At(x, y), at[int](pm, y, x))
		}
	}
}

func TestMoveAxis_CyclesAxes(t *testing.T) {
	im := grid3D(t)
	mv, err := view.MoveAxis[int](im, 0, 2)
	require.NoError(t, err)

	iv := mv.Interval()
	require.Equal(t, []int{3, 4, 2}, []int{iv.Size(0), iv.Size(1), iv.Size(2)})
	for x := 0; x < 2; x++ {
		for y := 0; y < 3; y++ {
			for z := 0; z < 4; z++ {
				require.Equal(t, im.At(x, y, z), at[int](mv, y, z, x))
			}
		}
	}
}

func TestMoveAxis_ToSamePlaceIsIdentity(t *testing.T) {
	im := grid3D(t)
	mv, err := view.MoveAxis[int](im, 1, 1)
	require.NoError(t, err)
	require.True(t, mv.Interval().Equals(im.Interval()))
	require.Equal(t, im.At(1, 2, 3), at[int](mv, 1, 2, 3))
}

func TestRotate_QuarterTurn(t *testing.T) {
	im := grid2D(t) // 3×2
	rot, err := view.Rotate[int](im, 0, 1)
	require.NoError(t, err)

	// Extents swap: 3×2 becomes 2×3.
	iv := rot.Interval()
	require.Equal(t, 2, iv.Size(0))
	require.Equal(t, 3, iv.Size(1))

	// rot(a,b) = im(b, maxY-a): the x axis turned toward the y axis.
	for a := 0; a < 2; a++ {
		for b := 0; b < 3; b++ {
			require.Equal(t, im.At(b, 1-a), at[int](rot, a, b), "rot(%d,%d)", a, b)
		}
	}
}

func TestRotate_TwiceIsPointReflection(t *testing.T) {
	im := grid2D(t)
	rot, err := view.Rotate[int](im, 0, 1)
	require.NoError(t, err)
	rot2, err := view.Rotate[int](rot, 0, 1)
	require.NoError(t, err)

	require.True(t, rot2.Interval().Equals(im.Interval()))
	for x := 0; x < 3; x++ {
		for y := 0; y < 2; y++ {
			require.Equal(t, im.At(2-x, 1-y), at[int](rot2, x, y))
		}
	}
}

func TestFlip_MirrorsOneAxis(t *testing.T) {
	im := grid2D(t)
	fl, err := view.Flip[int](im, 0)
	require.NoError(t, err)

	require.True(t, fl.Interval().Equals(im.Interval()))
	for x := 0; x < 3; x++ {
		for y := 0; y < 2; y++ {
			require.Equal(t, im.At(2-x, y), at[int](fl, x, y))
		}
	}

	// A fresh accessor sits at the view origin, reading the mirrored sample.
	ra := fl.RandomAccess()
	require.Equal(t, 0, ra.Position(0))
	require.Equal(t, im.At(2, 0), ra.Get())

	// Flipping twice is the identity.
	fl2, err := view.Flip[int](fl, 0)
	require.NoError(t, err)
	for x := 0; x < 3; x++ {
		for y := 0; y < 2; y++ {
			require.Equal(t, im.At(x, y), at[int](fl2, x, y))
		}
	}
}

func TestSubsample_Decimates(t *testing.T) {
	im, err := img.New[int](5, 4)
	require.NoError(t, err)
	for x := 0; x < 5; x++ {
		for y := 0; y < 4; y++ {
			im.SetAt(x+10*y, x, y)
		}
	}

	sub, err := view.Subsample[int](im, 2, 3)
	require.NoError(t, err)

	// ceil(5/2)=3, ceil(4/3)=2, rebased to a zero min.
	iv := sub.Interval()
	require.Equal(t, []int{0, 0}, iv.MinCoords())
	require.Equal(t, []int{2, 1}, iv.MaxCoords())
	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			require.Equal(t, im.At(2*i, 3*j), at[int](sub, i, j))
		}
	}
}

func TestHyperSlice_FixesOneAxis(t *testing.T) {
	im := grid3D(t)
	hs, err := view.HyperSlice[int](im, 1, 2)
	require.NoError(t, err)

	require.Equal(t, 2, hs.NumDimensions())
	require.Equal(t, []int{1, 3}, hs.Interval().MaxCoords())
	for x := 0; x < 2; x++ {
		for z := 0; z < 4; z++ {
			require.Equal(t, im.At(x, 2, z), at[int](hs, x, z))
		}
	}

	// Writes land on the fixed slice only.
	ra := hs.RandomAccess()
	ra.SetPosition([]int{1, 3})
	ra.Set(-7)
	require.Equal(t, -7, im.At(1, 2, 3))
	require.NotEqual(t, -7, im.At(1, 1, 3))
}

func TestAddDimension_AliasesSource(t *testing.T) {
	im := grid2D(t)
	ad, err := view.AddDimension[int](im, 0, 2)
	require.NoError(t, err)

	require.Equal(t, 3, ad.NumDimensions())
	require.Equal(t, []int{2, 1, 2}, ad.Interval().MaxCoords())

	// Every coordinate of the added axis reads the same source sample.
	for k := 0; k <= 2; k++ {
		require.Equal(t, im.At(1, 1), at[int](ad, 1, 1, k))
	}

	// Writing through one slice is visible through all of them.
	ra := ad.RandomAccess()
	ra.SetPosition([]int{2, 0, 2})
	ra.Set(55)
	require.Equal(t, 55, im.At(2, 0))
	require.Equal(t, 55, at[int](ad, 2, 0, 0))
}

func TestCrop_RestrictsIteration(t *testing.T) {
	im, err := img.New[int](5, 4)
	require.NoError(t, err)
	for x := 0; x < 5; x++ {
		for y := 0; y < 4; y++ {
			im.SetAt(x+10*y, x, y)
		}
	}
	iv, err := core.NewInterval([]int{1, 1}, []int{3, 2})
	require.NoError(t, err)
	cr, err := view.Crop[int](im, iv)
	require.NoError(t, err)

	// A fresh accessor sits at the crop origin.
	ra := cr.RandomAccess()
	require.Equal(t, 1, ra.Position(0))
	require.Equal(t, 1, ra.Position(1))
	require.Equal(t, im.At(1, 1), ra.Get())

	// Scan order within the crop only: dimension 0 fastest.
	want := []int{11, 12, 13, 21, 22, 23}
	cur := cr.Cursor()
	var got []int
	for cur.HasNext() {
		got = append(got, cur.Next())
	}
	require.Equal(t, want, got)
}

// TestComposedChain_PositionalConsistency drives one accessor through a
// translate→permute→flip→crop chain with relative moves and checks that
// the value under the accessor always equals the value addressed
// absolutely at its reported position.
func TestComposedChain_PositionalConsistency(t *testing.T) {
	im := grid3D(t)

	tr, err := view.Translate[int](im, -1, 2, 0)
	require.NoError(t, err)
	pm, err := view.Permute[int](tr, 0, 2)
	require.NoError(t, err)
	fl, err := view.Flip[int](pm, 1)
	require.NoError(t, err)

	cur := fl.Cursor()
	pos := make([]int, fl.NumDimensions())
	for cur.HasNext() {
		v := cur.Next()
		cur.Localize(pos)
		require.Equal(t, at[int](fl, pos...), v, "at %v", pos)
		require.True(t, fl.Interval().Contains(pos))
	}

	// The same consistency holds for an accessor wandering by moves.
	ra := fl.RandomAccess()
	path := [][2]int{{2, 0}, {1, 1}, {1, 2}, {-1, 0}, {1, 1}}
	for _, step := range path {
		ra.Move(step[0], step[1])
		ra.Localize(pos)
		require.Equal(t, at[int](fl, pos...), ra.Get(), "at %v", pos)
	}
}

func TestTransform_ConstructorErrors(t *testing.T) {
	im := grid2D(t)
	line, err := img.New[int](4)
	require.NoError(t, err)

	tests := []struct {
		name string
		do   func() error
		want error
	}{
		{"TranslateNil", func() error { _, err := view.Translate[int](nil, 1, 2); return err }, view.ErrNilSource},
		{"TranslateArity", func() error { _, err := view.Translate[int](im, 1); return err }, core.ErrDimensionMismatch},
		{"PermuteAxis", func() error { _, err := view.Permute[int](im, 0, 2); return err }, core.ErrDimensionIndex},
		{"MoveAxisNegative", func() error { _, err := view.MoveAxis[int](im, -1, 0); return err }, core.ErrDimensionIndex},
		{"RotateAxis", func() error { _, err := view.Rotate[int](im, 0, 5); return err }, core.ErrDimensionIndex},
		{"FlipAxis", func() error { _, err := view.Flip[int](im, 2); return err }, core.ErrDimensionIndex},
		{"SubsampleStep", func() error { _, err := view.Subsample[int](im, 0, 2); return err }, view.ErrBadStep},
		{"SubsampleArity", func() error { _, err := view.Subsample[int](im, 2); return err }, core.ErrDimensionMismatch},
		{"HyperSlice1D", func() error { _, err := view.HyperSlice[int](line, 0, 1); return err }, core.ErrIncompatibleTransform},
		{"HyperSliceAxis", func() error { _, err := view.HyperSlice[int](im, 3, 0); return err }, core.ErrDimensionIndex},
		{"AddDimensionBounds", func() error { _, err := view.AddDimension[int](im, 3, 1); return err }, core.ErrBadInterval},
		{"CropArity", func() error {
			iv, err := core.NewZeroMin(2, 2, 2)
			if err != nil {
				return err
			}
			_, err = view.Crop[int](im, iv)
			return err
		}, core.ErrDimensionMismatch},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.do(); !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}
}
