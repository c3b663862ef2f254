package watcher_test

import (
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ulink/internal/adapters/watcher"
)

type recorder struct {
	mu    sync.Mutex
	calls [][]string
}

func (r *recorder) record(paths []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, paths)
}

func (r *recorder) snapshot() [][]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([][]string(nil), r.calls...)
}

func TestDebouncer_CoalescesBurst(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &recorder{}
		d := watcher.NewDebouncer(100*time.Millisecond, rec.record)

		d.Add("/project/Library/Ulink/registry.yaml")
		d.Add("/project/Library/Ulink/registry.yaml")
		d.Add("/project/Library/Ulink/registry.yaml.tmp")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		calls := rec.snapshot()
		require.Len(t, calls, 1)
		assert.Equal(t, []string{
			"/project/Library/Ulink/registry.yaml",
			"/project/Library/Ulink/registry.yaml.tmp",
		}, calls[0])
	})
}

func TestDebouncer_TimerReset(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &recorder{}
		d := watcher.NewDebouncer(100*time.Millisecond, rec.record)

		d.Add("a")
		time.Sleep(60 * time.Millisecond)
		d.Add("b")
		time.Sleep(60 * time.Millisecond)
		synctest.Wait()
		assert.Empty(t, rec.snapshot())

		time.Sleep(60 * time.Millisecond)
		synctest.Wait()
		require.Len(t, rec.snapshot(), 1)
	})
}

func TestDebouncer_SeparateBursts(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &recorder{}
		d := watcher.NewDebouncer(50*time.Millisecond, rec.record)

		d.Add("a")
		time.Sleep(100 * time.Millisecond)
		synctest.Wait()

		d.Add("b")
		time.Sleep(100 * time.Millisecond)
		synctest.Wait()

		assert.Equal(t, [][]string{{"a"}, {"b"}}, rec.snapshot())
	})
}

func TestDebouncer_Stop(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &recorder{}
		d := watcher.NewDebouncer(50*time.Millisecond, rec.record)

		d.Add("a")
		d.Stop()
		d.Add("b")

		time.Sleep(100 * time.Millisecond)
		synctest.Wait()

		assert.Empty(t, rec.snapshot())
	})
}

func TestDebouncer_NilCallback(t *testing.T) {
	synctest.Test(t, func(_ *testing.T) {
		d := watcher.NewDebouncer(50*time.Millisecond, nil)

		d.Add("a")
		time.Sleep(100 * time.Millisecond)
		synctest.Wait()

		d.Add("b")
		time.Sleep(100 * time.Millisecond)
		synctest.Wait()
	})
}
