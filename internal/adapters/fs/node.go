package fs

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the filesystem Graft node.
const NodeID graft.ID = "adapter.filesystem"

func init() {
	graft.Register(graft.Node[FileSystem]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (FileSystem, error) {
			return NewOSFS(), nil
		},
	})
}
