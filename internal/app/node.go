package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ulink/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/ulink/internal/adapters/csharp"    //nolint:depguard // Wired in app layer
	"go.trai.ch/ulink/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/ulink/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/ulink/internal/adapters/registry"  //nolint:depguard // Wired in app layer
	"go.trai.ch/ulink/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/ulink/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/ulink/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			registry.NodeID,
			csharp.NodeID,
			fs.WriterNodeID,
			fs.RefresherNodeID,
			fs.DocumentsNodeID,
			watcher.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[*logger.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	settingsLoader, err := graft.Dep[ports.SettingsLoader](ctx)
	if err != nil {
		return nil, err
	}

	registryLoader, err := graft.Dep[ports.RegistryLoader](ctx)
	if err != nil {
		return nil, err
	}

	renderer, err := graft.Dep[ports.SourceRenderer](ctx)
	if err != nil {
		return nil, err
	}

	writer, err := graft.Dep[ports.ArtifactWriter](ctx)
	if err != nil {
		return nil, err
	}

	refresher, err := graft.Dep[ports.Refresher](ctx)
	if err != nil {
		return nil, err
	}

	documents, err := graft.Dep[ports.DocumentStore](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[*logger.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return New(settingsLoader, registryLoader, renderer, writer, refresher, documents, w, log, tracer), nil
}
