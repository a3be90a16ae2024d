package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	t.Parallel()

	a := New()
	b := New()

	assert.Len(t, a, 26)
	assert.Len(t, b, 26)
	assert.NotEqual(t, a, b)

	// Monotonic entropy: later IDs sort after earlier ones.
	assert.Less(t, a, b)
}
