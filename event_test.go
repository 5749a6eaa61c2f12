package dispatch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eventwire/dispatch"
)

func TestNewArgsStartsUnstopped(t *testing.T) {
	args := dispatch.NewArgs()
	assert.False(t, args.IsPropagationStopped())
}

func TestStopPropagationSticks(t *testing.T) {
	args := dispatch.NewArgs()

	args.StopPropagation()
	assert.True(t, args.IsPropagationStopped())

	// Stopping twice changes nothing.
	args.StopPropagation()
	assert.True(t, args.IsPropagationStopped())
}

func TestArgsValues(t *testing.T) {
	args := dispatch.NewArgs().
		WithValue("count", 3).
		WithValue("name", "checkout").
		WithValue("dry_run", true)

	count, ok := args.IntValue("count")
	assert.True(t, ok)
	assert.Equal(t, 3, count)

	name, ok := args.StringValue("name")
	assert.True(t, ok)
	assert.Equal(t, "checkout", name)

	dryRun, ok := args.BoolValue("dry_run")
	assert.True(t, ok)
	assert.True(t, dryRun)

	raw, ok := args.Value("count")
	assert.True(t, ok)
	assert.Equal(t, 3, raw)
}

func TestArgsValueMissingOrMistyped(t *testing.T) {
	args := dispatch.NewArgs().WithValue("name", "checkout")

	_, ok := args.Value("missing")
	assert.False(t, ok)

	_, ok = args.IntValue("name")
	assert.False(t, ok)

	_, ok = args.StringValue("missing")
	assert.False(t, ok)

	_, ok = args.BoolValue("name")
	assert.False(t, ok)
}
