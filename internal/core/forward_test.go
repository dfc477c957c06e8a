package core

import (
	"context"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pkgdetect/internal/ports"
)

type recordingLocator struct {
	requests []ports.LocateRequest
	fail     string
}

func (l *recordingLocator) Locate(_ context.Context, req ports.LocateRequest) (ports.LocateResult, error) {
	l.requests = append(l.requests, req)
	if req.Name == l.fail {
		return ports.LocateResult{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("delegate miss")
	}
	return ports.LocateResult{Found: true}, nil
}

func TestForwardForcesQuietAndPropagatesRequired(t *testing.T) {
	locator := &recordingLocator{}
	forwarder := NewForwarder(locator)

	require.NoError(t, forwarder.Forward(context.Background(), true, []string{"bar", "baz"}))
	require.Len(t, locator.requests, 2)
	for _, req := range locator.requests {
		assert.True(t, req.Quiet, "quiet must always be forced on")
		assert.True(t, req.Required)
	}
}

func TestForwardOptionalParent(t *testing.T) {
	locator := &recordingLocator{}
	forwarder := NewForwarder(locator)

	require.NoError(t, forwarder.Forward(context.Background(), false, []string{"bar"}))
	require.Len(t, locator.requests, 1)
	assert.False(t, locator.requests[0].Required)
}

func TestForwardPropagatesDelegateFailure(t *testing.T) {
	locator := &recordingLocator{fail: "baz"}
	forwarder := NewForwarder(locator)

	err := forwarder.Forward(context.Background(), true, []string{"bar", "baz", "qux"})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
	// Lookup stops at the first delegate failure.
	assert.Len(t, locator.requests, 2)
}
