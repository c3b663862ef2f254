package discovery

import (
	"cmp"
	"slices"

	"go.trai.ch/ulink/internal/core/domain"
)

// Group partitions types by the root their unit resolves to. Types within a
// group are ordered by namespace then name, and groups by root.
func Group(types []domain.CandidateType, resolve func(unit string) string) []domain.RootGroup {
	byRoot := make(map[string][]domain.CandidateType)
	for _, t := range types {
		root := resolve(t.Unit)
		byRoot[root] = append(byRoot[root], t)
	}

	groups := make([]domain.RootGroup, 0, len(byRoot))
	for root, members := range byRoot {
		slices.SortFunc(members, compareTypes)
		groups = append(groups, domain.RootGroup{Root: root, Types: members})
	}

	slices.SortFunc(groups, func(a, b domain.RootGroup) int {
		return cmp.Compare(a.Root, b.Root)
	})
	return groups
}

func compareTypes(a, b domain.CandidateType) int {
	return cmp.Or(
		cmp.Compare(a.Namespace, b.Namespace),
		cmp.Compare(a.Name, b.Name),
		cmp.Compare(a.FullName, b.FullName),
	)
}
