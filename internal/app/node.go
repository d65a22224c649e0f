package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cargo-open/internal/adapters/cargohome" //nolint:depguard // Wired in app layer
	"go.trai.ch/cargo-open/internal/adapters/editor"    //nolint:depguard // Wired in app layer
	"go.trai.ch/cargo-open/internal/adapters/lockfile"  //nolint:depguard // Wired in app layer
	"go.trai.ch/cargo-open/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/cargo-open/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components holds the objects the command line needs.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			lockfile.NodeID,
			cargohome.NodeID,
			editor.NodeID,
			logger.NodeID,
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
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.LockfileLoader](ctx)
	if err != nil {
		return nil, err
	}

	locator, err := graft.Dep[ports.SourceLocator](ctx)
	if err != nil {
		return nil, err
	}

	ed, err := graft.Dep[ports.Editor](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, locator, ed, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	a, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    a,
		Logger: log,
	}, nil
}
