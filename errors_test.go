package dispatch_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eventwire/dispatch"
)

func TestMissingHandlerErrorMessage(t *testing.T) {
	err := &dispatch.MissingHandlerError{
		Event:      "user.deleted",
		ListenerID: "subscriber-1",
	}

	assert.Equal(t, `listener subscriber-1 has no handler for event "user.deleted"`, err.Error())
}

func TestMissingHandlerErrorUnwrapsToSentinel(t *testing.T) {
	err := &dispatch.MissingHandlerError{
		Event:      "user.deleted",
		ListenerID: "subscriber-1",
	}

	assert.ErrorIs(t, err, dispatch.ErrMissingHandler)

	var missing *dispatch.MissingHandlerError
	assert.True(t, errors.As(err, &missing))
}

func TestBaseErrorMessage(t *testing.T) {
	assert.Equal(t, "missing handler", dispatch.ErrMissingHandler.Error())
}
