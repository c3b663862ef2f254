// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/ulink/internal/adapters/config"
	_ "go.trai.ch/ulink/internal/adapters/csharp"
	_ "go.trai.ch/ulink/internal/adapters/fs"
	_ "go.trai.ch/ulink/internal/adapters/logger"
	_ "go.trai.ch/ulink/internal/adapters/registry"
	_ "go.trai.ch/ulink/internal/adapters/telemetry"
	_ "go.trai.ch/ulink/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/ulink/internal/app"
)
