package cargohome

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cargo-open/internal/adapters/env"
	"go.trai.ch/cargo-open/internal/adapters/fs"
	"go.trai.ch/cargo-open/internal/core/ports"
)

// NodeID is the unique identifier for the source locator Graft node.
const NodeID graft.ID = "adapter.source_locator"

func init() {
	graft.Register(graft.Node[ports.SourceLocator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{env.NodeID, fs.NodeID},
		Run: func(ctx context.Context) (ports.SourceLocator, error) {
			environment, err := graft.Dep[ports.Environment](ctx)
			if err != nil {
				return nil, err
			}
			fsys, err := graft.Dep[fs.FileSystem](ctx)
			if err != nil {
				return nil, err
			}
			return NewLocator(environment, fsys), nil
		},
	})
}
