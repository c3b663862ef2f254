package app_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/ulink/internal/adapters/config"
	"go.trai.ch/ulink/internal/adapters/csharp"
	"go.trai.ch/ulink/internal/adapters/fs"
	"go.trai.ch/ulink/internal/adapters/registry"
	"go.trai.ch/ulink/internal/adapters/telemetry"
	"go.trai.ch/ulink/internal/app"
	"go.trai.ch/ulink/internal/core/domain"
	"go.trai.ch/ulink/internal/core/ports"
	"go.trai.ch/ulink/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const registryV1 = `version: "1"
units:
  - name: Game.UI
    definition: Assets/UI/Game.UI.asmdef
  - name: Assembly-CSharp
types:
  - name: Game.UI.HealthBar
    namespace: Game.UI
    unit: Game.UI
    kind: class
    base: UnityEngine.UIElements.VisualElement
    markers: [Ulink.Runtime.UlinkAttribute]
    capabilities: [UnityEngine.UIElements.UxmlElementAttribute]
  - name: Menu
    unit: Assembly-CSharp
    kind: class
    base: UnityEngine.UIElements.VisualElement
    markers: [Ulink.Runtime.UlinkFactoryAttribute]
    capabilities: [UnityEngine.UIElements.UxmlElementAttribute]
  - name: Game.UI.HealthController
    namespace: Game.UI
    unit: Game.UI
    kind: class
    capabilities: [Ulink.Runtime.IUlinkController]
`

// registryV2 adds Game.UI.ManaBar to the Assets/UI root.
const registryV2 = registryV1 + `  - name: Game.UI.ManaBar
    namespace: Game.UI
    unit: Game.UI
    kind: class
    base: UnityEngine.UIElements.VisualElement
    markers: [Ulink.Runtime.UlinkAttribute]
    capabilities: [UnityEngine.UIElements.UxmlElementAttribute]
`

const (
	uiArtifact     = "Assets/UI/Generated/Controller/Ulink.g.cs"
	assetsArtifact = "Assets/Generated/Controller/Ulink.g.cs"
)

// deps holds the collaborators of an App under test. Nil fields get real adapters.
type deps struct {
	writer    ports.ArtifactWriter
	refresher ports.Refresher
	watcher   ports.Watcher
	log       ports.Logger
}

func newApp(t *testing.T, ctrl *gomock.Controller, d deps) (*app.App, *mocks.MockLogger) {
	t.Helper()

	if d.writer == nil {
		d.writer = fs.NewWriter()
	}
	if d.refresher == nil {
		d.refresher = fs.NewStampRefresher()
	}
	if d.watcher == nil {
		d.watcher = mocks.NewMockWatcher(ctrl)
	}
	var mockLog *mocks.MockLogger
	if d.log == nil {
		mockLog = mocks.NewMockLogger(ctrl)
		d.log = mockLog
	}

	a := app.New(
		config.NewLoader(),
		registry.NewLoader(),
		csharp.NewRenderer(),
		d.writer,
		d.refresher,
		fs.NewDocuments(fs.NewWalker()),
		d.watcher,
		d.log,
		telemetry.NewNoOpTracer(),
	)
	return a, mockLog
}

func quietLogger(log *mocks.MockLogger) {
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
}

func newProject(t *testing.T, snapshot string) string {
	t.Helper()

	dir := t.TempDir()
	writeFile(t, dir, domain.DefaultRegistryPath(), snapshot)
	return dir
}

func writeFile(t *testing.T, dir, rel, content string) {
	t.Helper()

	path := filepath.Join(dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
}

func readFile(t *testing.T, dir, rel string) string {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(dir, rel))
	require.NoError(t, err)
	return string(data)
}
