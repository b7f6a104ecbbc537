package logger

import (
	"context"

	"github.com/cargotags/cargotags/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID identifies the logger Graft node.
const NodeID graft.ID = "adapter.logger"

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Logger, error) {
			return New(), nil
		},
	})
}
