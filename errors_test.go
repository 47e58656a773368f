package dwavemcp

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorAliases(t *testing.T) {
	var err error = &NotFoundError{ProblemID: "abc"}

	require.True(t, errors.Is(err, ErrNotFound))
	require.Equal(t, "Problem ID abc not found", err.Error())

	var annealerErr AnnealerError
	require.True(t, errors.As(err, &annealerErr))
	require.True(t, annealerErr.IsAnnealerError())
}

func TestSentinelsAreDistinct(t *testing.T) {
	require.False(t, errors.Is(ErrNotFound, ErrInvalidArgument))
	require.False(t, errors.Is(ErrInvalidArgument, ErrUnknownTool))
	require.False(t, errors.Is(&InvalidArgumentError{Reason: "x"}, ErrNotFound))
}
