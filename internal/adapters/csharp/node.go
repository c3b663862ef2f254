package csharp

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ulink/internal/core/ports"
)

// NodeID is the unique identifier for the source renderer Graft node.
const NodeID graft.ID = "adapter.csharp"

func init() {
	graft.Register(graft.Node[ports.SourceRenderer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SourceRenderer, error) {
			return NewRenderer(), nil
		},
	})
}
