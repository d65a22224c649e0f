package logger

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cargo-open/internal/adapters/detector"
	"go.trai.ch/cargo-open/internal/adapters/env"
	"go.trai.ch/cargo-open/internal/core/ports"
	"go.trai.ch/cargo-open/internal/ui/output"
)

// NodeID is the unique identifier for the logger Graft node.
const NodeID graft.ID = "adapter.logger"

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{env.NodeID, detector.NodeID},
		Run: func(ctx context.Context) (ports.Logger, error) {
			environment, err := graft.Dep[ports.Environment](ctx)
			if err != nil {
				return nil, err
			}
			det, err := graft.Dep[*detector.Detector](ctx)
			if err != nil {
				return nil, err
			}

			lg := New()
			switch det.Detect() {
			case detector.ModeJSON:
				lg.SetJSON(true)
			case detector.ModePretty:
				lg.SetProfile(output.ColorProfile(environment))
			case detector.ModePlain:
			}
			return lg, nil
		},
	})
}
