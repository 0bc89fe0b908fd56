package view_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ndview/composite"
	"github.com/katalvlaran/ndview/core"
	"github.com/katalvlaran/ndview/img"
	"github.com/katalvlaran/ndview/view"
)

func TestCollapse_FoldsLastAxis(t *testing.T) {
	im := grid3D(t) // 2×3×4, pixel = x + 10y + 100z
	col, err := view.Collapse[int](im)
	require.NoError(t, err)

	require.Equal(t, 2, col.NumDimensions())
	require.Equal(t, 4, col.Length())
	require.Equal(t, []int{1, 2}, col.Interval().MaxCoords())

	ra := col.RandomAccess()
	ra.SetPosition([]int{1, 2})
	vec := ra.Get()
	require.Equal(t, []int{21, 121, 221, 321}, vec.Values())

	// The composite is shared with the accessor: moving it retargets reads.
	ra.Move(-1, 0)
	require.Equal(t, []int{20, 120, 220, 320}, vec.Values())

	// Writes through the composite land in the source.
	vec.Set(2, -5)
	require.Equal(t, -5, im.At(0, 2, 2))
}

func TestCollapse_CursorVisitsEveryPixel(t *testing.T) {
	im := grid3D(t)
	col, err := view.Collapse[int](im)
	require.NoError(t, err)

	seen := 0
	cur := col.Cursor()
	pos := make([]int, 2)
	for cur.HasNext() {
		vec := cur.Next()
		cur.Localize(pos)
		for i := 0; i < col.Length(); i++ {
			require.Equal(t, im.At(pos[0], pos[1], i), vec.Get(i), "at %v sub %d", pos, i)
		}
		seen++
	}
	require.Equal(t, col.Interval().NumElements(), seen)
}

// Unfolding a fold restores the source exactly.
func TestCollapseInflate_RoundTrip(t *testing.T) {
	im := grid3D(t)
	col, err := view.Collapse[int](im)
	require.NoError(t, err)
	inf, err := view.Inflate[int](col)
	require.NoError(t, err)

	require.True(t, inf.Interval().Equals(im.Interval()))

	// Element-for-element, in scan order.
	want := im.Cursor()
	got := inf.Cursor()
	for want.HasNext() {
		require.True(t, got.HasNext())
		require.Equal(t, want.Next(), got.Next())
	}
	require.False(t, got.HasNext())

	// Writes through the inflated view reach the source.
	ra := inf.RandomAccess()
	ra.SetPosition([]int{1, 1, 3})
	ra.Set(777)
	require.Equal(t, 777, im.At(1, 1, 3))
}

// De-interleaving then re-interleaving a channel-first image is the
// identity: moving the channel axis last, folding it, and unfolding it
// back to dimension 0 restores coordinates, values, and scan order.
func TestInterleave_RestoresChannelFirstLayout(t *testing.T) {
	im, err := img.New[int](3, 2, 2) // channel axis first
	require.NoError(t, err)
	for c := 0; c < 3; c++ {
		for x := 0; x < 2; x++ {
			for y := 0; y < 2; y++ {
				im.SetAt(c+10*x+100*y, c, x, y)
			}
		}
	}

	mv, err := view.MoveAxis[int](im, 0, 2)
	require.NoError(t, err)
	col, err := view.Collapse[int](mv)
	require.NoError(t, err)
	il, err := view.Interleave[int](col)
	require.NoError(t, err)

	require.True(t, il.Interval().Equals(im.Interval()))

	want := im.Cursor()
	got := il.Cursor()
	pos := make([]int, 3)
	for want.HasNext() {
		require.True(t, got.HasNext())
		w, g := want.Next(), got.Next()
		got.Localize(pos)
		require.Equal(t, w, g, "at %v", pos)
	}
}

func TestInflate_NewAxisIsZeroBased(t *testing.T) {
	im := grid3D(t)
	// Shift the source so the folded axis has a non-zero min.
	tr, err := view.Translate[int](im, 0, 0, 5)
	require.NoError(t, err)
	col, err := view.Collapse[int](tr)
	require.NoError(t, err)
	inf, err := view.Inflate[int](col)
	require.NoError(t, err)

	iv := inf.Interval()
	require.Equal(t, 0, iv.Min(2))
	require.Equal(t, 3, iv.Max(2))
	require.Equal(t, im.At(1, 2, 3), at[int](inf, 1, 2, 3))
}

// Folding a 1-D source leaves a 0-dimensional view: one pixel, the whole
// line as its vector, and a cursor visiting exactly that one element.
func TestCollapse_OneDimensionalSource(t *testing.T) {
	line, err := img.FromSlice([]int{5, 6, 7, 8}, 4)
	require.NoError(t, err)

	col, err := view.Collapse[int](line)
	require.NoError(t, err)
	require.Equal(t, 0, col.NumDimensions())
	require.Equal(t, 4, col.Length())
	require.Equal(t, 1, col.Interval().NumElements())

	ra := col.RandomAccess()
	require.Equal(t, []int{5, 6, 7, 8}, ra.Get().Values())

	cur := col.Cursor()
	require.True(t, cur.HasNext())
	vec := cur.Next()
	require.Equal(t, []int{5, 6, 7, 8}, vec.Values())
	require.False(t, cur.HasNext())
	require.Equal(t, 0, cur.Remaining())
	require.Nil(t, cur.TrySplit())

	// The round trip holds at d=1 too: unfolding restores the line.
	inf, err := view.Inflate[int](col)
	require.NoError(t, err)
	require.True(t, inf.Interval().Equals(line.Interval()))
	want := line.Cursor()
	got := inf.Cursor()
	for want.HasNext() {
		require.True(t, got.HasNext())
		require.Equal(t, want.Next(), got.Next())
	}
	require.False(t, got.HasNext())
}

func TestCollapse_Errors(t *testing.T) {
	line, err := img.New[int](4)
	require.NoError(t, err)

	_, err = view.Collapse[int](nil)
	require.ErrorIs(t, err, view.ErrNilSource)

	// Only a 0-dimensional source has no axis left to fold.
	zero, err := view.Collapse[int](line)
	require.NoError(t, err)
	_, err = view.Collapse[*composite.Composite[int]](zero)
	require.ErrorIs(t, err, core.ErrIncompatibleTransform)
}

func TestInflate_Errors(t *testing.T) {
	_, err := view.Inflate[int](nil)
	require.ErrorIs(t, err, view.ErrNilSource)

	// An empty source has no element to probe the vector length from.
	im := grid3D(t)
	col, err := view.Collapse[int](im)
	require.NoError(t, err)
	empty, err := core.NewInterval([]int{0, 0}, []int{-1, -1})
	require.NoError(t, err)
	cr, err := view.Crop[*composite.Composite[int]](col, empty)
	require.NoError(t, err)
	_, err = view.Inflate[int](cr)
	require.ErrorIs(t, err, core.ErrIncompatibleTransform)
}
