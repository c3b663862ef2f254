package registry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ulink/internal/core/ports"
)

// NodeID is the unique identifier for the registry loader Graft node.
const NodeID graft.ID = "adapter.registry"

func init() {
	graft.Register(graft.Node[ports.RegistryLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.RegistryLoader, error) {
			return NewLoader(), nil
		},
	})
}
