package gameid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/minibingo/internal/randutil"
)

func TestGenerateProducesValidIDs(t *testing.T) {
	for i := 0; i < 100; i++ {
		id := Generate()
		require.NoError(t, Validate(id), "id %q", id)
	}
}

func TestGenerateIsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := Generate()
		assert.False(t, seen[id], "duplicate id %q", id)
		seen[id] = true
	}
}

func TestGenerateWithRandSource(t *testing.T) {
	g := NewGenerator(randutil.New(42))
	id := g.Generate()
	require.NoError(t, Validate(id))
}

func TestValidateRejectsBadIDs(t *testing.T) {
	assert.Error(t, Validate(""))
	assert.Error(t, Validate("short"))
	assert.Error(t, Validate("z1234567890123456789012345"))  // first char > '7'
	assert.Error(t, Validate("01234567890123456789012345i")) // wrong length
	assert.Error(t, Validate("0123456789012345678901234!"))  // bad character
	assert.NoError(t, Validate("01234567890123456789012345"))
}
