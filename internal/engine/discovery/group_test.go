package discovery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ulink/internal/core/domain"
	"go.trai.ch/ulink/internal/engine/discovery"
)

func resolver(roots map[string]string) func(string) string {
	return func(unit string) string {
		if root, ok := roots[unit]; ok {
			return root
		}
		return domain.DefaultRoot
	}
}

func TestGroup_PartitionsByRoot(t *testing.T) {
	types := []domain.CandidateType{
		element("NamespaceB.Baz", "NamespaceB", "Baz", "UnitB"),
		element("NamespaceA.Foo", "NamespaceA", "Foo", "UnitA"),
		element("Loose", "", "Loose", "Assembly-CSharp"),
	}

	groups := discovery.Group(types, resolver(map[string]string{
		"UnitA": "Assets/A",
		"UnitB": "Assets/B",
	}))

	require.Len(t, groups, 3)
	assert.Equal(t, "Assets", groups[0].Root)
	assert.Equal(t, []string{"Loose"}, groups[0].FullNames())
	assert.Equal(t, "Assets/A", groups[1].Root)
	assert.Equal(t, []string{"NamespaceA.Foo"}, groups[1].FullNames())
	assert.Equal(t, "Assets/B", groups[2].Root)
	assert.Equal(t, []string{"NamespaceB.Baz"}, groups[2].FullNames())
}

func TestGroup_OrdersByNamespaceThenName(t *testing.T) {
	types := []domain.CandidateType{
		element("Game.UI.Zeta", "Game.UI", "Zeta", "U"),
		element("Game.Alpha", "Game", "Alpha", "U"),
		element("Game.UI.Beta", "Game.UI", "Beta", "U"),
		element("Global", "", "Global", "U"),
	}

	groups := discovery.Group(types, resolver(nil))

	require.Len(t, groups, 1)
	assert.Equal(t,
		[]string{"Global", "Game.Alpha", "Game.UI.Beta", "Game.UI.Zeta"},
		groups[0].FullNames())
}

func TestGroup_Empty(t *testing.T) {
	assert.Empty(t, discovery.Group(nil, resolver(nil)))
}
