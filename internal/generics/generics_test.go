package generics

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	// Sets are created empty.
	s := MakeSet[int](10)
	assert.Len(t, s, 0)

	// Check inserting and recovery.
	s.Insert(3, 7)
	assert.Len(t, s, 2)
	assert.True(t, s.Has(3))
	assert.True(t, s.Has(7))
	assert.False(t, s.Has(5))

	s2 := SetWith(5, 7)
	assert.Len(t, s2, 2)
	assert.True(t, s2.Has(5))
	assert.False(t, s2.Has(3))

	s3 := s.Sub(s2)
	assert.Len(t, s3, 1)
	assert.True(t, s3.Has(3))

	delete(s, 7)
	assert.True(t, s.Equal(s3))
	assert.False(t, s.Equal(s2))
	assert.False(t, s.Equal(SetWith(-3)))

	assert.Equal(t, []int{5, 7}, s2.Sorted(cmp.Compare[int]))
}

func TestArgMin(t *testing.T) {
	idx, value := ArgMin([]float32{7, -3, 2, -3})
	assert.Equal(t, 1, idx)
	assert.Equal(t, float32(-3), value)

	idx, _ = ArgMin([]int{})
	assert.Equal(t, -1, idx)
}

func TestSliceMap(t *testing.T) {
	assert.Equal(t, []int{2, 4, 6}, SliceMap([]int{1, 2, 3}, func(e int) int { return 2 * e }))
}
