package rangestr

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValues(t *testing.T) {
	s := RangeSet{{-2, 1}, {5, 7}}

	want := []int64{-2, -1, 0, 5, 6}
	assert.Equal(t, want, slices.Collect(s.Values()))
	// restartable
	assert.Equal(t, want, slices.Collect(s.Values()))
	assert.Equal(t, want, s.AppendValues(nil))
	assert.Equal(t, []int64{9, -2, -1, 0, 5, 6}, s.AppendValues([]int64{9}))

	assert.Equal(t, []Interval{{-2, 1}, {5, 7}}, slices.Collect(s.Intervals()))
	assert.Empty(t, slices.Collect(RangeSet(nil).Values()))
}

func TestValuesStopsEarly(t *testing.T) {
	s := RangeSet{{0, 1000000}}

	var got []int64
	for n := range s.Values() {
		if n == 3 {
			break
		}
		got = append(got, n)
	}
	assert.Equal(t, []int64{0, 1, 2}, got)

	var first []Interval
	for r := range (RangeSet{{0, 1}, {4, 5}}).Intervals() {
		first = append(first, r)
		break
	}
	assert.Equal(t, []Interval{{0, 1}}, first)
}

func TestInts(t *testing.T) {
	seq, err := Ints("1-5")
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, slices.Collect(seq))

	seq, err = Ints("-2..2", WithDelimiter(".."))
	require.NoError(t, err)
	assert.Equal(t, []int64{-2, -1, 0, 1, 2}, slices.Collect(seq))

	seq, err = Ints("^6-", WithLower(1), WithUpper(10), WithImplicitInclusion(true))
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, slices.Collect(seq))

	seq, err = Ints("^6-", WithLower(1), WithUpper(10))
	require.NoError(t, err)
	assert.Empty(t, slices.Collect(seq))
}

func TestIntsRestartable(t *testing.T) {
	seq, err := Ints("3-5,9")
	require.NoError(t, err)

	want := []int64{3, 4, 5, 9}
	assert.Equal(t, want, slices.Collect(seq))
	assert.Equal(t, want, slices.Collect(seq))
}

func TestIntsFailsBeforeIterating(t *testing.T) {
	for _, src := range []string{"50-", "-50", "1-x"} {
		seq, err := Ints(src)
		require.ErrorIs(t, err, ErrInvalidRange)
		assert.Nil(t, seq)
	}
}

func TestCountMatchesValues(t *testing.T) {
	s, err := Parse("0-9,20-29,^5-24,40,42-44")
	require.NoError(t, err)

	var n int64
	for range s.Values() {
		n++
	}
	assert.Equal(t, s.Count(), n)
	assert.Equal(t, int64(14), n)
}
