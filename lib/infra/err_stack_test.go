package infra

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var initPC = caller()

func caller() Frame {
	var pcs [3]uintptr
	n := runtime.Callers(2, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])
	frame, _ := frames.Next()
	return Frame(frame.PC)
}

func TestFrameFormat(t *testing.T) {
	testcases := []struct {
		Frame
		format string
		want   string
	}{
		{initPC, "%s", "err_stack_test.go"},
		{initPC, "%n", "init"},
		{initPC, "%d", "13"},
		{initPC, "%v", "err_stack_test.go:13"},
		{Frame(0), "%s", "unknownFile"},
		{Frame(0), "%n", "unknownFunc"},
		{Frame(0), "%d", "0"},
	}

	for _, tc := range testcases {
		frameRes := fmt.Sprintf(tc.format, tc.Frame)
		require.Equal(t, tc.want, frameRes)
	}
}

func TestNewErrorStack(t *testing.T) {
	err := NewErrorStack("something broken")
	require.Error(t, err)
	require.Equal(t, "something broken", err.Error())

	verbose := fmt.Sprintf("%+v", err)
	require.True(t, strings.HasPrefix(verbose, "something broken"))
	require.Contains(t, verbose, "err_stack_test.go")
}

func TestWrapErrorStack(t *testing.T) {
	require.NoError(t, WrapErrorStack(nil))

	cause := errors.New("root cause")
	err := WrapErrorStack(cause)
	require.Error(t, err)
	require.Equal(t, "root cause", err.Error())
	require.ErrorIs(t, err, cause)
}

func TestWrapErrorStackWithMessage(t *testing.T) {
	cause := errors.New("root cause")
	err := WrapErrorStackWithMessage(cause, "outer")
	require.Equal(t, "outer: root cause", err.Error())
	require.ErrorIs(t, err, cause)

	err = WrapErrorStackWithMessage(nil, "standalone")
	require.Equal(t, "standalone", err.Error())

	quoted := fmt.Sprintf("%q", err)
	require.Equal(t, "\"standalone\"", quoted)
}
