package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ulink/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestParseControllerRef(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		encoding domain.RefEncoding
		typeName string
	}{
		{name: "empty", raw: "", encoding: domain.RefEmpty},
		{name: "whitespace", raw: "   ", encoding: domain.RefEmpty},
		{name: "full name", raw: "Game.UI.HealthController", encoding: domain.RefFullName, typeName: "Game.UI.HealthController"},
		{
			name:     "assembly qualified",
			raw:      "Game.UI.HealthController, Game.UI, Version=1.0.0.0, Culture=neutral, PublicKeyToken=null",
			encoding: domain.RefAssemblyQualified,
			typeName: "Game.UI.HealthController",
		},
		{
			name:     "assembly qualified generic",
			raw:      "Game.UI.ListController`1[[Game.Items.Item, Game.Items]], Game.UI",
			encoding: domain.RefAssemblyQualified,
			typeName: "Game.UI.ListController`1[[Game.Items.Item, Game.Items]]",
		},
		{name: "bare name", raw: "HealthController", encoding: domain.RefBareName, typeName: "HealthController"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref := domain.ParseControllerRef(tt.raw)
			assert.Equal(t, tt.encoding, ref.Encoding)
			assert.Equal(t, tt.typeName, ref.TypeName)
		})
	}
}

func TestControllerRef_IsCanonical(t *testing.T) {
	assert.True(t, domain.ParseControllerRef("").IsCanonical())
	assert.True(t, domain.ParseControllerRef("Game.UI.HealthController").IsCanonical())
	assert.False(t, domain.ParseControllerRef(" Game.UI.HealthController ").IsCanonical())
	assert.False(t, domain.ParseControllerRef("Game.UI.HealthController, Game.UI").IsCanonical())
	assert.False(t, domain.ParseControllerRef("HealthController").IsCanonical())
}

func TestControllerRef_Canonicalize(t *testing.T) {
	controllers := []domain.CandidateType{
		{FullName: "Game.UI.HealthController", Namespace: "Game.UI", Name: "HealthController"},
		{FullName: "Game.UI.MenuController", Namespace: "Game.UI", Name: "MenuController"},
		{FullName: "Tools.MenuController", Namespace: "Tools", Name: "MenuController"},
	}

	t.Run("assembly qualified", func(t *testing.T) {
		got, err := domain.ParseControllerRef("Game.UI.HealthController, Game.UI").Canonicalize(controllers)
		require.NoError(t, err)
		assert.Equal(t, "Game.UI.HealthController", got)
	})

	t.Run("bare unique", func(t *testing.T) {
		got, err := domain.ParseControllerRef("HealthController").Canonicalize(controllers)
		require.NoError(t, err)
		assert.Equal(t, "Game.UI.HealthController", got)
	})

	t.Run("bare ambiguous", func(t *testing.T) {
		_, err := domain.ParseControllerRef("MenuController").Canonicalize(controllers)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrAmbiguousControllerRef))

		var zErr *zerr.Error
		require.ErrorAs(t, err, &zErr)
		assert.Equal(t, "Game.UI.MenuController, Tools.MenuController", zErr.Metadata()["candidates"])
	})

	t.Run("bare unknown", func(t *testing.T) {
		_, err := domain.ParseControllerRef("Missing").Canonicalize(controllers)
		assert.True(t, errors.Is(err, domain.ErrUnknownControllerRef))
	})
}
