package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPRNG_SameSeedSameSequence(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Intn(5), b.Intn(5))
	}
	require.Equal(t, int64(42), a.Seed())
}

func TestPRNG_ZeroSeedPicksOne(t *testing.T) {
	require.NotZero(t, NewPRNGService(0).Seed())
}

func TestPRNG_CountsDraws(t *testing.T) {
	s := NewPRNGService(7)
	require.Zero(t, s.Draws())
	for i := 0; i < 3; i++ {
		s.Intn(10)
	}
	require.Equal(t, uint64(3), s.Draws())
	require.Equal(t, int64(7), s.Seed())
}
