package alnscore_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/walnuthoram2/ALNS/alnscore"
)

func TestNewRandomSourceDeterministic(t *testing.T) {
	a := alnscore.NewRandomSource(42)
	b := alnscore.NewRandomSource(42)

	for i := 0; i < 100; i++ {
		require.Equal(t, a.Intn(1000), b.Intn(1000))
		require.Equal(t, a.Float64(), b.Float64())
	}
}

func TestNewRandomSourceZeroSeedIsStable(t *testing.T) {
	a := alnscore.NewRandomSource(0)
	b := alnscore.NewRandomSource(0)
	require.Equal(t, a.Int63(), b.Int63())
}

func TestDeriveRandomSourceIndependentStreams(t *testing.T) {
	base1 := alnscore.NewRandomSource(7)
	s1a := alnscore.DeriveRandomSource(base1, 0)
	s1b := alnscore.DeriveRandomSource(base1, 1)
	require.NotEqual(t, s1a.Int63(), s1b.Int63())
}

func TestDeriveRandomSourceDeterministic(t *testing.T) {
	base1 := alnscore.NewRandomSource(7)
	base2 := alnscore.NewRandomSource(7)
	d1 := alnscore.DeriveRandomSource(base1, 5)
	d2 := alnscore.DeriveRandomSource(base2, 5)
	require.Equal(t, d1.Int63(), d2.Int63())
}

func TestDeriveRandomSourceNilBase(t *testing.T) {
	require.NotPanics(t, func() {
		alnscore.DeriveRandomSource(nil, 3)
	})
}
