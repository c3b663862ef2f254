package app

import (
	"context"

	"go.trai.ch/ulink/internal/core/domain"
)

// RootListing describes the artifact a pass would produce for one root.
type RootListing struct {
	Root        string
	Path        string
	Fingerprint string
	Sections    []domain.Section
}

// List runs the scanning phase only. Nothing is written.
func (a *App) List(_ context.Context, opts Options) ([]RootListing, error) {
	s, err := a.open(opts)
	if err != nil {
		return nil, err
	}

	reg, err := a.loadRegistry(s)
	if err != nil {
		return nil, err
	}

	plans := s.generator.Plan(reg)
	listings := make([]RootListing, 0, len(plans))
	for _, plan := range plans {
		listings = append(listings, RootListing{
			Root:        plan.Root,
			Path:        s.generator.ArtifactPath(plan.Root),
			Fingerprint: domain.Fingerprint(plan.FullNames()),
			Sections:    plan.Sections,
		})
	}
	return listings, nil
}
