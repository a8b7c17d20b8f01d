package envlock

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuardRestoreIdempotent(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		name    = "ENVLOCK_TEST_IDEMPOTENT"
	)

	g := Lock(Set(name, "once"))
	g.Restore()

	_, exists := os.LookupEnv(name)
	require.False(exists)

	os.Setenv(name, "after")
	defer os.Unsetenv(name)

	// a second restore must not replay the snapshot or release again
	g.Restore()
	assert.Equal("after", os.Getenv(name))

	unheld, ok := TryLock()
	require.True(ok)
	unheld.Restore()
}

func TestGuardRestorePrecedesRelease(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		name    = "ENVLOCK_TEST_RESTORE_ORDER"

		result = make(chan *Guard)
	)

	g := Lock(Set(name, "held"))

	go func() {
		result <- Lock(Set(name, "next"))
	}()

	g.Restore()

	select {
	case next := <-result:
		// the second snapshot must reflect the restored state, never "held"
		require.Len(next.previous, 1)
		assert.Nil(next.previous[0].Value)
		next.Restore()
	case <-time.After(time.Second):
		require.FailNow("Lock blocked unexpectedly after restore")
	}

	_, exists := os.LookupEnv(name)
	assert.False(exists)
}

func TestGuardRestoreOrder(t *testing.T) {
	var (
		assert = assert.New(t)
		first  = "ENVLOCK_TEST_ORDER_FIRST"
		second = "ENVLOCK_TEST_ORDER_SECOND"
	)

	os.Setenv(first, "one")
	defer os.Unsetenv(first)

	g := Lock(Unset(first), Set(second, "two"))

	_, exists := os.LookupEnv(first)
	assert.False(exists)
	assert.Equal("two", os.Getenv(second))

	g.Restore()

	assert.Equal("one", os.Getenv(first))
	_, exists = os.LookupEnv(second)
	assert.False(exists)
}
