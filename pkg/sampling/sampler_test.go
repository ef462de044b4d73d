package sampling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSampler_Uniform(t *testing.T) {
	s := New(42)
	for i := 0; i < 1000; i++ {
		v := s.Uniform(2, 5)
		assert.GreaterOrEqual(t, v, 2.0)
		assert.Less(t, v, 5.0)
	}

	assert.Equal(t, 3.0, s.Uniform(3, 3))
	assert.Equal(t, 3.0, s.Uniform(3, 1))
}

func TestSampler_Skewed(t *testing.T) {
	s := New(7)
	for i := 0; i < 1000; i++ {
		v := s.Skewed(10, 0.2)
		assert.GreaterOrEqual(t, v, 8.0)
		assert.LessOrEqual(t, v, 12.0)
	}
}

func TestSampler_IntBetweenIsInclusive(t *testing.T) {
	s := New(1)
	seen := map[int]bool{}
	for i := 0; i < 2000; i++ {
		v := s.IntBetween(2, 4)
		assert.GreaterOrEqual(t, v, 2)
		assert.LessOrEqual(t, v, 4)
		seen[v] = true
	}
	assert.Len(t, seen, 3)
}

func TestSampler_SameSeedSameSequence(t *testing.T) {
	a := New(99)
	b := New(99)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Uniform(0, 100), b.Uniform(0, 100))
	}
}

func TestSampler_Percent(t *testing.T) {
	s := New(3)
	for i := 0; i < 500; i++ {
		assert.True(t, s.Percent(100))
		assert.False(t, s.Percent(0))
	}
}

func TestSampler_Duration(t *testing.T) {
	s := New(5)
	d := s.Duration(0, 5*time.Second)
	assert.GreaterOrEqual(t, d, time.Duration(0))
	assert.Less(t, d, 5*time.Second)
}

func TestPick(t *testing.T) {
	s := New(11)
	items := []string{"a", "b", "c"}
	for i := 0; i < 100; i++ {
		assert.Contains(t, items, Pick(s, items))
	}
	assert.Equal(t, "", Pick(s, []string{}))
}
