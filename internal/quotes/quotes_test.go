package quotes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotationHasQuotes(t *testing.T) {
	rotation := NewRotation()
	require.Greater(t, rotation.Len(), 0)
	assert.NotEmpty(t, rotation.Current())
}

func TestNextCyclesThroughAllQuotes(t *testing.T) {
	rotation := NewRotation()
	first := rotation.Current()

	seen := map[string]bool{first: true}
	for i := 0; i < rotation.Len()-1; i++ {
		quote := rotation.Next()
		assert.NotEmpty(t, quote)
		assert.False(t, seen[quote], "quote repeated before a full cycle: %q", quote)
		seen[quote] = true
	}

	// One more step wraps around to the start.
	assert.Equal(t, first, rotation.Next())
}

func TestParseSkipsCommentsAndBlanks(t *testing.T) {
	list := parse("# header\n\none\n  two  \n# note\nthree\n")
	assert.Equal(t, []string{"one", "two", "three"}, list)
}
