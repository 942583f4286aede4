//go:build integration

package rod_test

import (
	"testing"

	"github.com/fwojciec/drawguide/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrowserManager_Browser(t *testing.T) {
	t.Parallel()

	t.Run("replaces browser once max pages are served", func(t *testing.T) {
		t.Parallel()

		manager, err := rod.NewBrowserManager(rod.WithMaxPages(2))
		require.NoError(t, err)
		defer manager.Close()

		first := manager.Browser()
		manager.IncrementPageCount()
		assert.Same(t, first, manager.Browser())

		manager.IncrementPageCount()
		second := manager.Browser()

		require.NotNil(t, second)
		assert.NotSame(t, first, second)
	})

	t.Run("starts counting again after replacement", func(t *testing.T) {
		t.Parallel()

		manager, err := rod.NewBrowserManager(rod.WithMaxPages(2))
		require.NoError(t, err)
		defer manager.Close()

		manager.IncrementPageCount()
		manager.IncrementPageCount()
		replaced := manager.Browser()

		manager.IncrementPageCount()

		assert.Same(t, replaced, manager.Browser())
	})
}

func TestBrowserManager_Close(t *testing.T) {
	t.Parallel()

	manager, err := rod.NewBrowserManager()
	require.NoError(t, err)
	require.NotZero(t, manager.LauncherPID())

	require.NoError(t, manager.Close())
	assert.Zero(t, manager.LauncherPID())
	assert.NoError(t, manager.Close())
}
