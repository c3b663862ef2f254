package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ulink/internal/adapters/fs"
)

func TestStampRefresher_Refresh(t *testing.T) {
	stamp := filepath.Join(t.TempDir(), "Library", "Ulink", "refresh.stamp")

	r := fs.NewStampRefresher()
	r.SetClock(func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) })

	err := r.Refresh(context.Background(), stamp, []string{
		"Assets/Generated/Controller/Ulink.g.cs",
		"Assets/UI/Generated/Controller/Ulink.g.cs",
	})
	require.NoError(t, err)

	data, err := os.ReadFile(stamp)
	require.NoError(t, err)
	assert.Equal(t,
		"2026-01-02T03:04:05Z\nAssets/Generated/Controller/Ulink.g.cs\nAssets/UI/Generated/Controller/Ulink.g.cs\n",
		string(data))
}

func TestStampRefresher_Refresh_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stamp := filepath.Join(t.TempDir(), "refresh.stamp")
	err := fs.NewStampRefresher().Refresh(ctx, stamp, nil)
	require.ErrorIs(t, err, context.Canceled)

	_, statErr := os.Stat(stamp)
	assert.True(t, os.IsNotExist(statErr))
}
