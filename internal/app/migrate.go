package app

import (
	"context"
	"fmt"

	"go.trai.ch/ulink/internal/engine/migrate"
)

// MigrateOptions configures a controller identifier migration.
type MigrateOptions struct {
	// Dirs are searched for layout documents. Empty means the default root.
	Dirs []string
	// DryRun reports changes without writing.
	DryRun bool
}

// MigrateReport summarizes a migration run.
type MigrateReport struct {
	Documents int
	Changed   []string
	Changes   int
	Issues    int
}

// Migrate rewrites legacy controller identifiers in layout documents to the
// canonical full type name. Identifiers that cannot be resolved are reported
// and left as they are.
func (a *App) Migrate(ctx context.Context, opts Options, mopts MigrateOptions) (*MigrateReport, error) {
	s, err := a.open(opts)
	if err != nil {
		return nil, err
	}

	reg, err := a.loadRegistry(s)
	if err != nil {
		return nil, err
	}
	controllers := reg.TypesImplementing(s.settings.ControllerCapability)

	search := mopts.Dirs
	if len(search) == 0 {
		search = []string{s.settings.DefaultRoot}
	}
	dirs := make([]string, len(search))
	for i, dir := range search {
		dirs[i] = s.path(dir)
	}

	paths, err := a.documents.Find(dirs)
	if err != nil {
		return nil, err
	}

	report := &MigrateReport{Documents: len(paths)}
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		data, err := a.documents.Read(path)
		if err != nil {
			return report, err
		}

		rel := s.rel(path)
		res := migrate.Rewrite(data, controllers)

		for _, issue := range res.Issues {
			report.Issues++
			a.logger.Warn(fmt.Sprintf("%s:%d: %v", rel, issue.Line, issue.Err))
		}

		if !res.Changed() {
			continue
		}

		for _, c := range res.Changes {
			a.logger.Info(fmt.Sprintf("%s:%d: %s -> %s", rel, c.Line, c.From, c.To))
		}
		report.Changes += len(res.Changes)
		report.Changed = append(report.Changed, rel)

		if mopts.DryRun {
			continue
		}
		if err := a.documents.Write(path, res.Content); err != nil {
			return report, err
		}
	}

	return report, nil
}
