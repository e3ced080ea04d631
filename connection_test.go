package apcmini

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectErrorWrapping(t *testing.T) {
	err := &ConnectError{
		Stage: StageInputPort,
		Err:   fmt.Errorf("%w: no input matching %q", ErrPortNotFound, "APC MINI"),
	}

	assert.True(t, errors.Is(err, ErrPortNotFound))
	assert.Contains(t, err.Error(), "input port lookup")
	assert.Contains(t, err.Error(), "APC MINI")

	var wrapped error = err
	var connErr *ConnectError
	require.True(t, errors.As(wrapped, &connErr))
	assert.Equal(t, StageInputPort, connErr.Stage)
}

func TestConnectErrorStageTags(t *testing.T) {
	underlying := errors.New("driver exploded")
	for _, stage := range []ConnectStage{StageInputPort, StageOutputPort, StageInputOpen, StageOutputOpen} {
		err := &ConnectError{Stage: stage, Err: underlying}
		assert.Contains(t, err.Error(), string(stage))
		assert.True(t, errors.Is(err, underlying))
	}
}
