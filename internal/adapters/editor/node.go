package editor

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cargo-open/internal/adapters/env"
	"go.trai.ch/cargo-open/internal/core/ports"
)

// NodeID is the unique identifier for the editor Graft node.
const NodeID graft.ID = "adapter.editor"

func init() {
	graft.Register(graft.Node[ports.Editor]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{env.NodeID},
		Run: func(ctx context.Context) (ports.Editor, error) {
			environment, err := graft.Dep[ports.Environment](ctx)
			if err != nil {
				return nil, err
			}
			return NewLauncher(environment), nil
		},
	})
}
