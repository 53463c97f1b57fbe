package content

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHolderSwap(t *testing.T) {
	a := &Portfolio{Profile: Profile{Name: "A"}}
	b := &Portfolio{Profile: Profile{Name: "B"}}

	h := NewHolder(a)
	assert.Same(t, a, h.Get())
	h.Set(b)
	assert.Same(t, b, h.Get())
}

func TestWatchReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte("profile:\n  name: Before\n"), 0o644))

	initial, err := LoadFile(path)
	require.NoError(t, err)
	h := NewHolder(initial)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Watch(ctx, path, h, nil) }()
	defer func() {
		cancel()
		require.NoError(t, <-done)
	}()

	// Broken content never replaces a good portfolio.
	require.NoError(t, os.WriteFile(path, []byte("profile: [\n"), 0o644))
	time.Sleep(2 * reloadDelay)
	assert.Equal(t, "Before", h.Get().Profile.Name)

	require.Eventually(t, func() bool {
		if h.Get().Profile.Name == "After" {
			return true
		}
		_ = os.WriteFile(path, []byte("profile:\n  name: After\n"), 0o644)
		return false
	}, 5*time.Second, 50*time.Millisecond)
}

func TestDefaultRoundTripsThroughFile(t *testing.T) {
	want, err := Default()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "portfolio.yaml")
	require.NoError(t, os.WriteFile(path, defaultPortfolio, 0o644))

	got, err := LoadFile(path)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("portfolio mismatch (-want +got):\n%s", diff)
	}
}
