// Package discovery selects and partitions the types that receive generated code.
package discovery

import (
	"cmp"
	"slices"

	"go.trai.ch/ulink/internal/core/domain"
)

// Filter returns the eligible subset of the marked candidates, sorted by full
// name. A candidate is eligible when it is a concrete class, appears in capable,
// derives from the constraint's base type, is the first entry of its full name
// (ordered by unit), and has no strict ancestor that is itself eligible.
func Filter(candidates, capable []domain.CandidateType, constraint domain.Constraint) []domain.CandidateType {
	capableSet := make(map[string]struct{}, len(capable))
	for _, c := range capable {
		capableSet[c.FullName] = struct{}{}
	}

	kept := make([]domain.CandidateType, 0, len(candidates))
	for _, c := range candidates {
		if !c.IsConcrete() {
			continue
		}
		if _, ok := capableSet[c.FullName]; !ok {
			continue
		}
		if !c.DerivesFrom(constraint.BaseType) {
			continue
		}
		kept = append(kept, c)
	}

	kept = dedupe(kept)

	eligible := make(map[string]struct{}, len(kept))
	for _, c := range kept {
		eligible[c.FullName] = struct{}{}
	}

	return slices.DeleteFunc(kept, func(c domain.CandidateType) bool {
		return hasEligibleAncestor(c, eligible, constraint.BaseType)
	})
}

// dedupe keeps the first entry per full name after ordering by full name then unit.
func dedupe(types []domain.CandidateType) []domain.CandidateType {
	slices.SortStableFunc(types, func(a, b domain.CandidateType) int {
		return cmp.Or(
			cmp.Compare(a.FullName, b.FullName),
			cmp.Compare(a.Unit, b.Unit),
		)
	})
	return slices.CompactFunc(types, func(a, b domain.CandidateType) bool {
		return a.FullName == b.FullName
	})
}

// hasEligibleAncestor walks the strict ancestors up to the root sentinel or the
// constraint base type.
func hasEligibleAncestor(c domain.CandidateType, eligible map[string]struct{}, stop string) bool {
	for _, ancestor := range c.Ancestors {
		if ancestor == domain.RootSentinel || (stop != "" && ancestor == stop) {
			return false
		}
		if _, ok := eligible[ancestor]; ok {
			return true
		}
	}
	return false
}
