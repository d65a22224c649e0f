package detector

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cargo-open/internal/adapters/env"
	"go.trai.ch/cargo-open/internal/core/ports"
)

// NodeID is the unique identifier for the detector Graft node.
const NodeID graft.ID = "adapter.detector"

func init() {
	graft.Register(graft.Node[*Detector]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{env.NodeID},
		Run: func(ctx context.Context) (*Detector, error) {
			environment, err := graft.Dep[ports.Environment](ctx)
			if err != nil {
				return nil, err
			}
			return New(environment), nil
		},
	})
}
