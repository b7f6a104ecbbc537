package ctags

import (
	"context"

	"github.com/cargotags/cargotags/internal/adapters/config"
	"github.com/cargotags/cargotags/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID identifies the extractor Graft node.
const NodeID graft.ID = "adapter.extractor"

func init() {
	graft.Register(graft.Node[ports.Extractor]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.Extractor, error) {
			settings, err := graft.Dep[*config.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewExtractor(settings.CtagsBin), nil
		},
	})
}
