package app_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ulink/internal/app"
	"go.uber.org/mock/gomock"
)

const legacyDocument = `<ui:UXML xmlns:ui="UnityEngine.UIElements">
    <Game.UI.HealthBar controller-type="Game.UI.HealthController, Game.UI, Version=1.0.0.0, Culture=neutral, PublicKeyToken=null" />
    <Game.UI.HealthBar controller-type="Missing" />
</ui:UXML>
`

const migratedDocument = `<ui:UXML xmlns:ui="UnityEngine.UIElements">
    <Game.UI.HealthBar controller-type="Game.UI.HealthController" />
    <Game.UI.HealthBar controller-type="Missing" />
</ui:UXML>
`

func TestApp_Migrate(t *testing.T) {
	ctrl := gomock.NewController(t)
	project := newProject(t, registryV1)
	writeFile(t, project, "Assets/UI/Hud.uxml", legacyDocument)
	writeFile(t, project, "Assets/UI/Clean.uxml", "<ui:UXML />\n")

	a, log := newApp(t, ctrl, deps{})
	log.EXPECT().Info("Assets/UI/Hud.uxml:2: Game.UI.HealthController, Game.UI, Version=1.0.0.0, Culture=neutral, PublicKeyToken=null -> Game.UI.HealthController")
	log.EXPECT().Warn(gomock.Cond(func(msg string) bool {
		return msg == "Assets/UI/Hud.uxml:3: cannot canonicalize identifier: controller type not found"
	}))

	report, err := a.Migrate(t.Context(), app.Options{ProjectDir: project}, app.MigrateOptions{})
	require.NoError(t, err)

	assert.Equal(t, 2, report.Documents)
	assert.Equal(t, []string{"Assets/UI/Hud.uxml"}, report.Changed)
	assert.Equal(t, 1, report.Changes)
	assert.Equal(t, 1, report.Issues)
	assert.Equal(t, migratedDocument, readFile(t, project, "Assets/UI/Hud.uxml"))
}

func TestApp_Migrate_DryRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	project := newProject(t, registryV1)
	writeFile(t, project, "Assets/UI/Hud.uxml", legacyDocument)

	a, log := newApp(t, ctrl, deps{})
	quietLogger(log)

	report, err := a.Migrate(t.Context(), app.Options{ProjectDir: project}, app.MigrateOptions{DryRun: true})
	require.NoError(t, err)

	assert.Equal(t, []string{"Assets/UI/Hud.uxml"}, report.Changed)
	assert.Equal(t, legacyDocument, readFile(t, project, "Assets/UI/Hud.uxml"))
}

func TestApp_Migrate_Dirs(t *testing.T) {
	ctrl := gomock.NewController(t)
	project := newProject(t, registryV1)
	writeFile(t, project, "Assets/UI/Hud.uxml", legacyDocument)
	writeFile(t, project, "Packages/Game/Menu.uxml", `<A controller-type="HealthController" />`)

	a, log := newApp(t, ctrl, deps{})
	quietLogger(log)

	report, err := a.Migrate(t.Context(), app.Options{ProjectDir: project}, app.MigrateOptions{
		Dirs: []string{"Packages"},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Documents)
	assert.Equal(t, `<A controller-type="Game.UI.HealthController" />`, readFile(t, project, "Packages/Game/Menu.uxml"))
	assert.Equal(t, legacyDocument, readFile(t, project, "Assets/UI/Hud.uxml"))
}
