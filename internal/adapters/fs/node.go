package fs

import (
	"context"

	"github.com/cargotags/cargotags/internal/adapters/config"
	"github.com/cargotags/cargotags/internal/core/ports"
	"github.com/grindlemire/graft"
)

const (
	// WalkerNodeID identifies the walker Graft node.
	WalkerNodeID graft.ID = "adapter.fs.walker"
	// OracleNodeID identifies the freshness oracle Graft node.
	OracleNodeID graft.ID = "adapter.fs.freshness"
	// LocatorNodeID identifies the manifest locator Graft node.
	LocatorNodeID graft.ID = "adapter.fs.locator"
)

func init() {
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (*Walker, error) {
			settings, err := graft.Dep[*config.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewWalker(settings.Ignore), nil
		},
	})

	graft.Register(graft.Node[ports.Freshness]{
		ID:        OracleNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID},
		Run: func(ctx context.Context) (ports.Freshness, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewOracle(walker), nil
		},
	})

	graft.Register(graft.Node[ports.ProjectLocator]{
		ID:        LocatorNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ProjectLocator, error) {
			return NewLocator(), nil
		},
	})
}
