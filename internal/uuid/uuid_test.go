package uuid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eventwire/dispatch/internal/uuid"
)

func TestGoogleUUIDGeneratorUnique(t *testing.T) {
	gen := uuid.NewGoogleUUIDGenerator()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := gen.New()
		assert.NotEmpty(t, id)
		assert.False(t, seen[id], "generated a duplicate id: %s", id)
		seen[id] = true
	}
}

func TestSequentialGenerator(t *testing.T) {
	gen := uuid.NewSequentialGenerator("listener")

	assert.Equal(t, "listener-1", gen.New())
	assert.Equal(t, "listener-2", gen.New())
	assert.Equal(t, "listener-3", gen.New())
}
