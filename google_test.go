package tuuid

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromGoogle(t *testing.T) {
	g := uuid.MustParse(sampleString)
	assert.Equal(t, sample, FromGoogle(g))
}

func TestUUID_Google(t *testing.T) {
	g := sample.Google()
	assert.Equal(t, sampleString, g.String())
	assert.Equal(t, sample.Bytes(), g[:])
}

func TestGoogleInteropRoundTrip(t *testing.T) {
	for i := 0; i < 100; i++ {
		id, err := NewV1()
		require.NoError(t, err)

		g := id.Google()
		assert.Equal(t, id.String(), g.String())
		assert.Equal(t, id, FromGoogle(g))
	}
}

func TestParse_MatchesGoogleLayout(t *testing.T) {
	inputs := []string{
		sampleString,
		sequentialString,
		"00000000-0000-0000-0000-000000000000",
		"FFFFFFFF-FFFF-1FFF-BFFF-FFFFFFFFFFFF",
	}

	for _, s := range inputs {
		ours, err := ParseToBytes(s)
		require.NoError(t, err)

		theirs, err := uuid.Parse(s)
		require.NoError(t, err)
		assert.Equal(t, theirs[:], ours[:], s)
	}
}
