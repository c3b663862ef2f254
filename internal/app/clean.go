package app

import (
	"context"
	"errors"
	"fmt"

	"go.trai.ch/ulink/internal/core/domain"
)

// Clean removes the generated artifact of every known root and returns the
// project-relative paths it removed. Without a readable registry only the
// default root is cleaned.
func (a *App) Clean(ctx context.Context, opts Options) ([]string, error) {
	s, err := a.open(opts)
	if err != nil {
		return nil, err
	}

	roots := []string{s.settings.DefaultRoot}
	if reg, err := a.loadRegistry(s); err != nil {
		a.logger.Warn(fmt.Sprintf("cleaning default root only: %v", err))
	} else {
		roots = s.generator.Cache().Roots(reg)
	}

	var (
		removed []string
		errs    []error
	)
	for _, root := range roots {
		if err := ctx.Err(); err != nil {
			return removed, err
		}

		rel := domain.ArtifactPath(root, s.settings.GeneratedDir, s.settings.FileName)
		ok, err := a.writer.Remove(s.path(rel))
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if ok {
			removed = append(removed, rel)
			a.logger.Info(fmt.Sprintf("removed %s", rel))
		}
	}

	if len(removed) == 0 && len(errs) == 0 {
		a.logger.Info("nothing to clean")
	}
	return removed, errors.Join(errs...)
}
