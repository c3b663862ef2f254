package app

import (
	"context"
	"fmt"

	"go.trai.ch/ulink/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/ulink/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// Watch runs a pass, then another one each time the host rewrites the registry snapshot,
// until ctx is cancelled. Passes run one at a time; triggers arriving during a
// pass collapse into a single follow-up pass.
func (a *App) Watch(ctx context.Context, opts Options) error {
	s, err := a.open(opts)
	if err != nil {
		return err
	}

	registryPath := s.path(s.settings.Registry)
	state := &watchState{}

	a.watchPass(ctx, s, state, registryPath)

	if err := a.watcher.Start(ctx, registryPath); err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("watching %s", s.rel(registryPath)))

	trigger := make(chan struct{}, 1)
	debouncer := watcher.NewDebouncer(s.settings.Watch.Debounce, func([]string) {
		select {
		case trigger <- struct{}{}:
		default:
		}
	})

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for ev := range a.watcher.Events() {
			debouncer.Add(ev.Path)
		}
		return nil
	})

	g.Go(func() error {
		defer func() {
			debouncer.Stop()
			_ = a.watcher.Stop()
		}()

		for {
			select {
			case <-gctx.Done():
				return nil
			case <-trigger:
				a.watchPass(gctx, s, state, registryPath)
			}
		}
	})

	return g.Wait()
}

// watchState carries the parsed snapshot between passes.
type watchState struct {
	gate     watcher.DigestGate
	registry ports.Registry
}

// watchPass runs a pass for every trigger. The snapshot is parsed again only when
// its content changed. Errors are logged; the loop keeps going.
func (a *App) watchPass(ctx context.Context, s *session, state *watchState, registryPath string) {
	data, err := a.registryLoader.Read(registryPath)
	if err != nil {
		a.logger.Error(err)
		return
	}

	if state.gate.Accept(data) {
		reg, err := a.registryLoader.Parse(data)
		if err != nil {
			state.gate.Forget()
			state.registry = nil
			a.logger.Error(err)
			return
		}
		state.registry = reg

		// A new snapshot may move units, so roots are recomputed.
		s.generator.Cache().Reset()
	} else {
		a.logger.Debug("registry snapshot unchanged, reusing parsed registry")
	}

	report, err := s.generator.Pass(ctx, state.registry)
	a.summarize(report)
	if err != nil {
		a.logger.Error(err)
	}
}
