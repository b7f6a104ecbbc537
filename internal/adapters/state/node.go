package state

import (
	"context"

	"github.com/cargotags/cargotags/internal/adapters/config"
	"github.com/cargotags/cargotags/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID identifies the run info store Graft node.
const NodeID graft.ID = "adapter.run_info_store"

func init() {
	graft.Register(graft.Node[ports.RunInfoStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.RunInfoStore, error) {
			settings, err := graft.Dep[*config.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(settings.Layout.StatePath())
		},
	})
}
