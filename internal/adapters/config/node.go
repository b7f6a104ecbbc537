package config

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID identifies the settings Graft node.
const NodeID graft.ID = "adapter.config"

func init() {
	graft.Register(graft.Node[*Settings]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Settings, error) {
			return Load()
		},
	})
}
