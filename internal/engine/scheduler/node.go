package scheduler

import (
	"context"

	"github.com/cargotags/cargotags/internal/adapters/cargo"  //nolint:depguard // Wired in engine wiring
	"github.com/cargotags/cargotags/internal/adapters/config" //nolint:depguard // Wired in engine wiring
	"github.com/cargotags/cargotags/internal/adapters/ctags"  //nolint:depguard // Wired in engine wiring
	"github.com/cargotags/cargotags/internal/adapters/fs"     //nolint:depguard // Wired in engine wiring
	"github.com/cargotags/cargotags/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"github.com/cargotags/cargotags/internal/adapters/state"  //nolint:depguard // Wired in engine wiring
	"github.com/cargotags/cargotags/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID identifies the scheduler Graft node.
const NodeID graft.ID = "engine.scheduler"

func init() {
	graft.Register(graft.Node[*Scheduler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			ctags.NodeID,
			cargo.NodeID,
			fs.OracleNodeID,
			state.NodeID,
			logger.NodeID,
			config.NodeID,
		},
		Run: func(ctx context.Context) (*Scheduler, error) {
			extractor, err := graft.Dep[ports.Extractor](ctx)
			if err != nil {
				return nil, err
			}

			oracle, err := graft.Dep[ports.Freshness](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.RunInfoStore](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			settings, err := graft.Dep[*config.Settings](ctx)
			if err != nil {
				return nil, err
			}

			resolver, err := graft.Dep[*cargo.Cargo](ctx)
			if err != nil {
				return nil, err
			}

			return NewScheduler(
				extractor,
				resolver,
				oracle,
				store,
				log,
				settings.Layout,
				settings.Parallelism,
			), nil
		},
	})
}
