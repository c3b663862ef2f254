package registry_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ulink/internal/adapters/registry"
	"go.trai.ch/ulink/internal/core/domain"
)

func TestNew_DerivesAncestors(t *testing.T) {
	reg, err := registry.New(nil, []domain.CandidateType{
		{FullName: "Game.Foo", Namespace: "Game", Base: "Game.Bar", Markers: []string{"M"}},
		{FullName: "Game.Bar", Namespace: "Game", Base: domain.VisualElementType},
		{FullName: domain.VisualElementType, Base: domain.RootSentinel},
	})
	require.NoError(t, err)

	got := reg.TypesWithMarker("M")
	require.Len(t, got, 1)
	assert.Equal(t, "Foo", got[0].Name)
	assert.Equal(t, domain.KindClass, got[0].Kind)
	assert.Equal(t, []string{"Game.Bar", domain.VisualElementType}, got[0].Ancestors)
}

func TestNew_StopsAtUnknownBase(t *testing.T) {
	reg, err := registry.New(nil, []domain.CandidateType{
		{FullName: "Game.Foo", Base: "UnityEngine.UIElements.Button", Capabilities: []string{"C"}},
	})
	require.NoError(t, err)

	got := reg.TypesImplementing("C")
	require.Len(t, got, 1)
	assert.Equal(t, []string{"UnityEngine.UIElements.Button"}, got[0].Ancestors)
}

func TestNew_ReusesExplicitAncestors(t *testing.T) {
	reg, err := registry.New(nil, []domain.CandidateType{
		{FullName: "Game.Foo", Base: "Game.Bar", Markers: []string{"M"}},
		{
			FullName:  "Game.Bar",
			Base:      "UnityEngine.UIElements.Button",
			Ancestors: []string{"UnityEngine.UIElements.Button", domain.VisualElementType},
		},
	})
	require.NoError(t, err)

	got := reg.TypesWithMarker("M")
	require.Len(t, got, 1)
	assert.Equal(t,
		[]string{"Game.Bar", "UnityEngine.UIElements.Button", domain.VisualElementType},
		got[0].Ancestors)
}

func TestNew_RejectsCycles(t *testing.T) {
	_, err := registry.New(nil, []domain.CandidateType{
		{FullName: "A", Base: "B"},
		{FullName: "B", Base: "A"},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrAncestorChainTooDeep))
}

func TestNew_RejectsUnnamedEntries(t *testing.T) {
	_, err := registry.New(nil, []domain.CandidateType{{Unit: "Game"}})
	assert.True(t, errors.Is(err, domain.ErrInvalidTypeEntry))
}

func TestRegistry_Units(t *testing.T) {
	reg, err := registry.New(map[string]string{
		"Game.UI":         "Assets/UI/Game.UI.asmdef",
		"Game.Core":       "Assets/Core/Game.Core.asmdef",
		"Assembly-CSharp": "",
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"Game.Core", "Game.UI"}, reg.Units())

	def, err := reg.DefinitionFile("Game.UI")
	require.NoError(t, err)
	assert.Equal(t, "Assets/UI/Game.UI.asmdef", def)

	_, err = reg.DefinitionFile("Assembly-CSharp")
	assert.True(t, errors.Is(err, domain.ErrNoDefinitionFile))
}

func TestRegistry_ResultsAreCopies(t *testing.T) {
	reg, err := registry.New(nil, []domain.CandidateType{
		{FullName: "A", Markers: []string{"M"}},
	})
	require.NoError(t, err)

	first := reg.TypesWithMarker("M")
	first[0].FullName = "mutated"

	assert.Equal(t, "A", reg.TypesWithMarker("M")[0].FullName)
}
