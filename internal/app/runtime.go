package app

import (
	"context"
	"fmt"
	"path/filepath"

	"go.trai.ch/ulink/internal/core/domain"
	"go.trai.ch/zerr"
)

// Runtime writes the binder support source into dir, which must belong to the
// assembly that defines Ulink.Runtime. It returns the project-relative path.
func (a *App) Runtime(_ context.Context, opts Options, dir string) (string, error) {
	s, err := a.open(opts)
	if err != nil {
		return "", err
	}

	text, err := a.renderer.RenderRuntime()
	if err != nil {
		return "", err
	}

	target := s.path(dir)
	rel := s.rel(filepath.Join(target, domain.RuntimeFileName))

	changed, err := a.writer.WriteIfChanged(target, domain.RuntimeFileName, text)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to write runtime support"), "path", rel)
	}

	if changed {
		a.logger.Info(fmt.Sprintf("wrote %s", rel))
	} else {
		a.logger.Info(fmt.Sprintf("%s is up to date", rel))
	}
	return rel, nil
}
