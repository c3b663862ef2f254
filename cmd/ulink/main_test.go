package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
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

const snapshot = `version: "1"
units:
  - name: Assembly-CSharp
types:
  - name: Menu
    unit: Assembly-CSharp
    kind: class
    base: UnityEngine.UIElements.VisualElement
    markers: [Ulink.Runtime.UlinkFactoryAttribute]
    capabilities: [UnityEngine.UIElements.UxmlElementAttribute]
`

func newProvider(settings ports.SettingsLoader, writer ports.ArtifactWriter, log ports.Logger) ComponentProvider {
	application := app.New(
		settings,
		registry.NewLoader(),
		csharp.NewRenderer(),
		writer,
		fs.NewStampRefresher(),
		fs.NewDocuments(fs.NewWalker()),
		nil,
		log,
		telemetry.NewNoOpTracer(),
	)

	return func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:    application,
			Logger: log,
		}, func() {}, nil
	}
}

func newProject(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, domain.DefaultRegistryPath())
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, []byte(snapshot), domain.FilePerm))
	return dir
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	provider := newProvider(mocks.NewMockSettingsLoader(ctrl), fs.NewWriter(), mockLogger)

	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stdout, stderr, provider)

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "ulink version")
	assert.Empty(t, stderr.String())
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that command failures are logged and exit with 1.
func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLoader := mocks.NewMockSettingsLoader(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)

	loadErr := errors.New("bad settings")
	mockLoader.EXPECT().Load(gomock.Any()).Return(nil, loadErr)
	mockLogger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, loadErr)
	})

	provider := newProvider(mockLoader, fs.NewWriter(), mockLogger)
	exitCode := run(context.Background(), []string{"generate", "-p", t.TempDir()}, new(bytes.Buffer), new(bytes.Buffer), provider)

	assert.Equal(t, 1, exitCode)
}

// TestRun_RootsFailed verifies that skipped roots exit with 1 without a second error report.
func TestRun_RootsFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockWriter := mocks.NewMockArtifactWriter(ctrl)

	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any()).MinTimes(1)
	mockLogger.EXPECT().Error(gomock.Any()).Times(0)
	mockWriter.EXPECT().
		WriteIfChanged(gomock.Any(), domain.ArtifactFileName, gomock.Any()).
		Return(false, domain.ErrArtifactReplaceFailed)

	provider := newProvider(config.NewLoader(), mockWriter, mockLogger)
	exitCode := run(context.Background(), []string{"generate", "-p", newProject(t)}, new(bytes.Buffer), new(bytes.Buffer), provider)

	assert.Equal(t, 1, exitCode)
}
