// SPDX-License-Identifier: MIT

package gcs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindFatal(t *testing.T) {
	assert.True(t, NullArgument.Fatal())
	assert.True(t, IndexOutOfBounds.Fatal())
	assert.True(t, OutOfRange.Fatal())
	assert.True(t, InconsistentIteratorPair.Fatal())
	assert.True(t, AllocationFailure.Fatal())
	assert.False(t, InvalidSize.Fatal())
	assert.False(t, DuplicateKey.Fatal())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "NullArgument", NullArgument.String())
	assert.Equal(t, "DuplicateKey", DuplicateKey.String())
}

func TestAbortPanicsWithFault(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		var f *Fault
		require.True(t, errors.As(r.(error), &f))
		assert.Equal(t, NullArgument, f.Kind)
		assert.Equal(t, "TestOp", f.Op)
	}()
	Abort(NullArgument, "TestOp", "receiver was nil")
	t.Fatal("Abort did not panic")
}

func TestWarnLogsAndReturns(t *testing.T) {
	defer SetLogger(nil)
	Warn(InvalidSize, "Reserve", "n <= cap")
}

func TestFaultErrorMessage(t *testing.T) {
	f := newFault(OutOfRange, "Next", "cursor past end")
	assert.Contains(t, f.Error(), "OutOfRange")
	assert.Contains(t, f.Error(), "Next")
	assert.Contains(t, f.Error(), "cursor past end")
}
