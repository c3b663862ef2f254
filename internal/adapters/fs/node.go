package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ulink/internal/core/ports"
)

const (
	// WalkerNodeID is the unique identifier for the walker Graft node.
	WalkerNodeID graft.ID = "adapter.fs.walker"
	// WriterNodeID is the unique identifier for the artifact writer Graft node.
	WriterNodeID graft.ID = "adapter.fs.writer"
	// RefresherNodeID is the unique identifier for the refresher Graft node.
	RefresherNodeID graft.ID = "adapter.fs.refresher"
	// DocumentsNodeID is the unique identifier for the document store Graft node.
	DocumentsNodeID graft.ID = "adapter.fs.documents"
)

func init() {
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.ArtifactWriter]{
		ID:        WriterNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ArtifactWriter, error) {
			return NewWriter(), nil
		},
	})

	graft.Register(graft.Node[ports.Refresher]{
		ID:        RefresherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Refresher, error) {
			return NewStampRefresher(), nil
		},
	})

	graft.Register(graft.Node[ports.DocumentStore]{
		ID:        DocumentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID},
		Run: func(ctx context.Context) (ports.DocumentStore, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewDocuments(walker), nil
		},
	})
}
