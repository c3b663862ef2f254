// Package app implements the application layer for ulink.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"go.trai.ch/ulink/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/ulink/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/ulink/internal/core/domain"
	"go.trai.ch/ulink/internal/core/ports"
	"go.trai.ch/ulink/internal/engine/generator"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	settingsLoader ports.SettingsLoader
	registryLoader ports.RegistryLoader
	renderer       ports.SourceRenderer
	writer         ports.ArtifactWriter
	refresher      ports.Refresher
	documents      ports.DocumentStore
	watcher        ports.Watcher
	logger         ports.Logger
	tracer         ports.Tracer

	shutdown func(context.Context) error
	sink     io.WriteCloser
}

// New creates a new App instance.
func New(
	settingsLoader ports.SettingsLoader,
	registryLoader ports.RegistryLoader,
	renderer ports.SourceRenderer,
	writer ports.ArtifactWriter,
	refresher ports.Refresher,
	documents ports.DocumentStore,
	watcher ports.Watcher,
	log ports.Logger,
	tracer ports.Tracer,
) *App {
	return &App{
		settingsLoader: settingsLoader,
		registryLoader: registryLoader,
		renderer:       renderer,
		writer:         writer,
		refresher:      refresher,
		documents:      documents,
		watcher:        watcher,
		logger:         log,
		tracer:         tracer,
	}
}

// Options selects the project a command runs against.
type Options struct {
	// ProjectDir is the host project directory. Empty means the working directory.
	ProjectDir string
	// ConfigPath overrides <ProjectDir>/ulink.yaml.
	ConfigPath string
}

// LogOptions configures logging for one invocation.
type LogOptions struct {
	Verbose bool
	JSON    bool
}

// logControl is implemented by loggers whose output can be reconfigured.
type logControl interface {
	SetVerbose(enable bool)
	SetJSON(enable bool)
	SetFile(w io.Writer)
}

// ConfigureLogging applies the logging flags. Verbose mode also reports pass
// spans with their durations.
func (a *App) ConfigureLogging(opts LogOptions) {
	if lc, ok := a.logger.(logControl); ok {
		lc.SetVerbose(opts.Verbose)
		lc.SetJSON(opts.JSON)
	}

	if opts.Verbose && a.shutdown == nil {
		a.shutdown = telemetry.Setup(a.logger)
	}
}

// Close flushes telemetry and detaches the log file.
func (a *App) Close(ctx context.Context) error {
	var errs []error

	if a.shutdown != nil {
		errs = append(errs, a.shutdown(ctx))
		a.shutdown = nil
	}

	if a.sink != nil {
		if lc, ok := a.logger.(logControl); ok {
			lc.SetFile(nil)
		}
		errs = append(errs, a.sink.Close())
		a.sink = nil
	}

	return errors.Join(errs...)
}

// session is one command's view of a project.
type session struct {
	projectDir string
	settings   domain.Settings
	generator  *generator.Generator
}

// path resolves a project-relative path.
func (s *session) path(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(s.projectDir, p)
}

// rel returns p relative to the project for display.
func (s *session) rel(p string) string {
	if r, err := filepath.Rel(s.projectDir, p); err == nil {
		return filepath.ToSlash(r)
	}
	return filepath.ToSlash(p)
}

func (a *App) open(opts Options) (*session, error) {
	dir := opts.ProjectDir
	if dir == "" {
		dir = "."
	}

	projectDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve project directory"), "path", dir)
	}

	configPath := opts.ConfigPath
	if configPath == "" {
		configPath = filepath.Join(projectDir, domain.SettingsFileName)
	}

	settings, err := a.settingsLoader.Load(configPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load settings")
	}

	a.attachLogFile(settings.Log, projectDir)

	gen := generator.NewGenerator(
		generator.Config{ProjectDir: projectDir, Settings: *settings},
		a.renderer,
		a.writer,
		a.refresher,
		a.logger,
		a.tracer,
	)

	return &session{
		projectDir: projectDir,
		settings:   *settings,
		generator:  gen,
	}, nil
}

func (a *App) attachLogFile(settings domain.LogSettings, projectDir string) {
	lc, ok := a.logger.(logControl)
	if !ok || a.sink != nil {
		return
	}

	sink := logger.NewFileSink(settings, projectDir)
	if sink == nil {
		return
	}
	lc.SetFile(sink)
	a.sink = sink
}

func (a *App) loadRegistry(s *session) (ports.Registry, error) {
	reg, err := a.registryLoader.Load(s.path(s.settings.Registry))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load registry")
	}
	return reg, nil
}

// Generate runs one generation pass.
func (a *App) Generate(ctx context.Context, opts Options) (*domain.PassReport, error) {
	s, err := a.open(opts)
	if err != nil {
		return nil, err
	}

	reg, err := a.loadRegistry(s)
	if err != nil {
		return nil, err
	}

	report, err := s.generator.Pass(ctx, reg)
	a.summarize(report)
	if err != nil {
		return report, err
	}

	if failed := report.Failed(); len(failed) > 0 {
		return report, zerr.With(zerr.Wrap(domain.ErrRootsFailed, "generation pass incomplete"), "failed", len(failed))
	}
	return report, nil
}

func (a *App) summarize(report *domain.PassReport) {
	if report == nil {
		return
	}

	updated := 0
	for _, root := range report.Roots {
		if root.Err == nil && root.Changed {
			updated++
			a.logger.Info(fmt.Sprintf("updated %s (%d types)", root.Path, root.Types))
		}
	}

	if updated == 0 && len(report.Failed()) == 0 {
		a.logger.Info(fmt.Sprintf("up to date (%d roots)", len(report.Roots)))
	}
}
