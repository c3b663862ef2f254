// Package generator runs generation passes: scan the registry, group eligible
// types by output root, render and persist one artifact per root.
package generator

import (
	"cmp"
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"sync/atomic"

	"go.trai.ch/ulink/internal/core/domain"
	"go.trai.ch/ulink/internal/core/ports"
	"go.trai.ch/ulink/internal/engine/discovery"
	"go.trai.ch/ulink/internal/engine/roots"
	"go.trai.ch/zerr"
)

// Config holds the per-project inputs of a Generator.
type Config struct {
	// ProjectDir is the directory project-relative roots are resolved against.
	ProjectDir string
	// Settings are the loaded project settings.
	Settings domain.Settings
	// Bindings override domain.DefaultBindings when set.
	Bindings []domain.Binding
}

// Generator owns the pass state machine and the root cache.
type Generator struct {
	renderer  ports.SourceRenderer
	writer    ports.ArtifactWriter
	refresher ports.Refresher
	logger    ports.Logger
	tracer    ports.Tracer

	projectDir string
	settings   domain.Settings
	bindings   []domain.Binding
	cache      *roots.Cache
	state      atomic.Int32

	// pending holds artifact paths written by earlier passes whose refresh
	// signal did not go out. Only touched while a pass holds the state.
	pending []string
}

// NewGenerator creates a new Generator with the given dependencies.
func NewGenerator(
	cfg Config,
	renderer ports.SourceRenderer,
	writer ports.ArtifactWriter,
	refresher ports.Refresher,
	logger ports.Logger,
	tracer ports.Tracer,
) *Generator {
	bindings := cfg.Bindings
	if len(bindings) == 0 {
		bindings = domain.DefaultBindings()
	}

	return &Generator{
		renderer:   renderer,
		writer:     writer,
		refresher:  refresher,
		logger:     logger,
		tracer:     tracer,
		projectDir: cfg.ProjectDir,
		settings:   cfg.Settings,
		bindings:   bindings,
		cache:      roots.NewCache(cfg.Settings.DefaultRoot, cfg.Settings.PinnedUnits),
	}
}

// State returns the current pass state.
func (g *Generator) State() domain.PassState {
	return domain.PassState(g.state.Load())
}

// Cache returns the root cache owned by the generator.
func (g *Generator) Cache() *roots.Cache {
	return g.cache
}

// ArtifactPath returns the project-relative artifact path for root.
func (g *Generator) ArtifactPath(root string) string {
	return domain.ArtifactPath(root, g.settings.GeneratedDir, g.settings.FileName)
}

// Plan runs the scanning phase only. Every binding contributes one section per
// root it has eligible types in; sections keep binding order.
func (g *Generator) Plan(registry ports.Registry) []domain.RootPlan {
	resolve := func(unit string) string {
		return g.cache.Resolve(registry, unit)
	}

	byRoot := make(map[string]*domain.RootPlan)
	for _, b := range g.bindings {
		marked := registry.TypesWithMarker(b.Marker)
		capable := registry.TypesImplementing(b.Constraint.Capability)
		eligible := discovery.Filter(marked, capable, b.Constraint)

		for _, group := range discovery.Group(eligible, resolve) {
			plan, ok := byRoot[group.Root]
			if !ok {
				plan = &domain.RootPlan{Root: group.Root}
				byRoot[group.Root] = plan
			}
			plan.Sections = append(plan.Sections, domain.Section{Kind: b.Kind, Types: group.Types})
		}
	}

	plans := make([]domain.RootPlan, 0, len(byRoot))
	for _, plan := range byRoot {
		plans = append(plans, *plan)
	}
	slices.SortFunc(plans, func(a, b domain.RootPlan) int {
		return cmp.Compare(a.Root, b.Root)
	})
	return plans
}

// Pass runs one generation pass. It is rejected with domain.ErrPassInProgress
// while another pass runs. A root that fails to render or write is logged and
// skipped; the refresh signal fires once when any root changed. Paths whose
// refresh was missed by an earlier pass are signalled again.
func (g *Generator) Pass(ctx context.Context, registry ports.Registry) (*domain.PassReport, error) {
	if !g.state.CompareAndSwap(int32(domain.PassIdle), int32(domain.PassScanning)) {
		return nil, domain.ErrPassInProgress
	}
	defer g.state.Store(int32(domain.PassIdle))

	ctx, span := g.tracer.Start(ctx, "ulink.pass")
	defer span.End()

	_, scanSpan := g.tracer.Start(ctx, "ulink.scan")
	plans := g.Plan(registry)
	scanSpan.SetAttribute("roots", len(plans))
	scanSpan.End()

	g.state.Store(int32(domain.PassWriting))

	report := &domain.PassReport{Roots: make([]domain.RootResult, 0, len(plans))}
	var changed []string
	for _, plan := range plans {
		if err := ctx.Err(); err != nil {
			g.pending = mergePaths(g.pending, changed)
			span.RecordError(err)
			return report, err
		}

		result := g.writeRoot(ctx, plan)
		report.Roots = append(report.Roots, result)

		if result.Err != nil {
			g.logger.Warn(fmt.Sprintf("skipping root %s: %v", plan.Root, result.Err))
			continue
		}
		if result.Changed {
			changed = append(changed, result.Path)
		}
	}

	span.SetAttribute("changed", len(changed))
	report.Changed = len(changed) > 0

	signal := mergePaths(g.pending, changed)
	if len(signal) == 0 {
		return report, nil
	}
	if len(changed) == 0 {
		g.logger.Debug(fmt.Sprintf("re-sending refresh for %d artifacts", len(signal)))
	}

	if err := g.refresher.Refresh(ctx, g.resolvePath(g.settings.RefreshStamp), signal); err != nil {
		g.pending = signal
		span.RecordError(err)
		return report, zerr.Wrap(err, "generation pass finished without refresh")
	}
	g.pending = nil
	report.Refreshed = true
	return report, nil
}

// mergePaths returns the sorted union of both path lists.
func mergePaths(pending, changed []string) []string {
	if len(pending) == 0 {
		return changed
	}
	merged := append(slices.Clone(pending), changed...)
	slices.Sort(merged)
	return slices.Compact(merged)
}

func (g *Generator) writeRoot(ctx context.Context, plan domain.RootPlan) domain.RootResult {
	_, span := g.tracer.Start(ctx, "ulink.write")
	defer span.End()

	names := plan.FullNames()
	result := domain.RootResult{
		Root:  plan.Root,
		Path:  g.ArtifactPath(plan.Root),
		Types: len(names),
	}
	span.SetAttribute("root", plan.Root)
	span.SetAttribute("types", len(names))

	artifact, err := g.Render(plan)
	if err != nil {
		span.RecordError(err)
		result.Err = zerr.With(err, "root", plan.Root)
		return result
	}
	result.Fingerprint = artifact.Fingerprint

	dir := g.resolvePath(filepath.Join(plan.Root, g.settings.GeneratedDir))
	changed, err := g.writer.WriteIfChanged(dir, g.settings.FileName, artifact.Text)
	if err != nil {
		span.RecordError(err)
		result.Err = zerr.With(err, "root", plan.Root)
		return result
	}

	result.Changed = changed
	span.SetAttribute("changed", changed)
	if changed {
		g.logger.Debug(fmt.Sprintf("wrote %s (%d types, fingerprint %s)", result.Path, len(names), artifact.Fingerprint))
	} else {
		g.logger.Debug(fmt.Sprintf("unchanged %s", result.Path))
	}
	return result
}

// Render produces the artifact for one root without touching the disk.
func (g *Generator) Render(plan domain.RootPlan) (domain.GeneratedArtifact, error) {
	text, fingerprint, err := g.renderer.Render(plan.Sections)
	if err != nil {
		return domain.GeneratedArtifact{}, err
	}
	return domain.GeneratedArtifact{
		Root:        plan.Root,
		Path:        g.ArtifactPath(plan.Root),
		Text:        text,
		Fingerprint: fingerprint,
	}, nil
}

// resolvePath joins project-relative paths with the project directory.
func (g *Generator) resolvePath(p string) string {
	if filepath.IsAbs(p) || g.projectDir == "" {
		return p
	}
	return filepath.Join(g.projectDir, p)
}
