package composite_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ndview/composite"
	"github.com/katalvlaran/ndview/core"
	"github.com/katalvlaran/ndview/img"
)

// channelImage builds a 3×L image where axis 1 is the folded channel axis,
// pixel (x, c) holding 10*x + c.
func channelImage(t *testing.T, length int) *img.Img[int] {
	t.Helper()
	im, err := img.New[int](3, length)
	require.NoError(t, err)
	for x := 0; x < 3; x++ {
		for c := 0; c < length; c++ {
			im.SetAt(10*x+c, x, c)
		}
	}
	return im
}

func TestComposite_GetSetRoundTrip(t *testing.T) {
	const length = 4
	im := channelImage(t, length)

	ra := im.RandomAccess()
	ra.SetPosition([]int{1, 0})
	c, err := composite.New(ra, 1, 0, length)
	require.NoError(t, err)
	require.Equal(t, length, c.Len())

	// Reads see the backing image.
	for i := 0; i < length; i++ {
		require.Equal(t, 10+i, c.Get(i), "sub-index %d", i)
	}

	// Writes land in the backing image, and read back through Get.
	for i := 0; i < length; i++ {
		c.Set(i, 100+i)
	}
	for i := 0; i < length; i++ {
		require.Equal(t, 100+i, c.Get(i))
		require.Equal(t, 100+i, im.At(1, i))
	}

	// Sub-index order is stable regardless of access order.
	require.Equal(t, 103, c.Get(3))
	require.Equal(t, 100, c.Get(0))
}

func TestComposite_FollowsAccessor(t *testing.T) {
	im := channelImage(t, 3)

	// One composite shared across pixels: repositioning the accessor on the
	// non-folded axis retargets the vector.
	ra := im.RandomAccess()
	ra.SetPosition([]int{0, 0})
	c, err := composite.New(ra, 1, 0, 3)
	require.NoError(t, err)

	require.Equal(t, []int{0, 1, 2}, c.Values())
	ra.Move(2, 0)
	require.Equal(t, []int{20, 21, 22}, c.Values())
}

func TestComposite_ShiftedMin(t *testing.T) {
	im := channelImage(t, 5)
	ra := im.RandomAccess()
	ra.SetPosition([]int{2, 0})

	// Fold only channels 2..4: sub-index 0 is coordinate 2.
	c, err := composite.New(ra, 1, 2, 3)
	require.NoError(t, err)
	require.Equal(t, []int{22, 23, 24}, c.Values())
}

func TestComposite_Errors(t *testing.T) {
	im := channelImage(t, 3)
	ra := im.RandomAccess()

	tests := []struct {
		name   string
		axis   int
		length int
		want   error
	}{
		{"AxisNegative", -1, 3, core.ErrDimensionIndex},
		{"AxisTooLarge", 2, 3, core.ErrDimensionIndex},
		{"ZeroLength", 1, 0, core.ErrIndexOutOfRange},
		{"NegativeLength", 1, -2, core.ErrIndexOutOfRange},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := composite.New(ra, tc.axis, 0, tc.length)
			if !errors.Is(err, tc.want) {
				t.Fatalf("New: got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestComposite_SubIndexPanics(t *testing.T) {
	im := channelImage(t, 3)
	ra := im.RandomAccess()
	ra.SetPosition([]int{0, 0})
	c, err := composite.New(ra, 1, 0, 3)
	require.NoError(t, err)

	for _, i := range []int{-1, 3, 42} {
		func() {
			defer func() {
				r := recover()
				require.NotNil(t, r, "Get(%d) must panic", i)
				err, ok := r.(error)
				require.True(t, ok)
				require.ErrorIs(t, err, core.ErrIndexOutOfRange)
			}()
			c.Get(i)
		}()
	}
}
